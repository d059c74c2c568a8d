package handler

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/service"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"
)

// WalletHandler handles wallet creation and lookup endpoints.
// The ledger itself is single-caller; mu serializes HTTP access to it.
type WalletHandler struct {
	mu     *sync.Mutex
	ledger *service.Ledger
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(mu *sync.Mutex, ledger *service.Ledger) *WalletHandler {
	return &WalletHandler{mu: mu, ledger: ledger}
}

// Create handles POST /api/v1/wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	initial := decimal.Zero
	if req.InitialBalance != "" {
		v, err := decimal.NewFromString(req.InitialBalance)
		if err != nil {
			response.Error(c, apperror.Validation("initial_balance must be a decimal number"))
			return
		}
		initial = v
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	w, err := h.ledger.CreateWallet(req.Name, req.Currency, initial)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, walletResponse(w))
}

// List handles GET /api/v1/wallets.
func (h *WalletHandler) List(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	summaries := h.ledger.Summaries()
	out := make([]dto.WalletResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dto.WalletResponse{
			Name:             s.Name,
			Currency:         s.Currency,
			InitialBalance:   s.InitialBalance.String(),
			CurrentBalance:   s.CurrentBalance.String(),
			TransactionCount: s.TransactionCount,
		})
	}
	response.OK(c, out)
}

// Get handles GET /api/v1/wallets/:name.
func (h *WalletHandler) Get(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	w := h.ledger.FindWalletByName(c.Param("name"))
	if w == nil {
		response.Error(c, apperror.ErrNotFound("wallet"))
		return
	}
	response.OK(c, walletResponse(w))
}

func walletResponse(w *domain.Wallet) dto.WalletResponse {
	return dto.WalletResponse{
		Name:             w.Name(),
		Currency:         w.Currency(),
		InitialBalance:   w.InitialBalance().String(),
		CurrentBalance:   w.Balance().String(),
		TransactionCount: len(w.Transactions()),
	}
}
