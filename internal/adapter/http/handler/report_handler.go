package handler

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/service"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"
)

// ReportHandler handles monthly report endpoints.
type ReportHandler struct {
	mu     *sync.Mutex
	ledger *service.Ledger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(mu *sync.Mutex, ledger *service.Ledger) *ReportHandler {
	return &ReportHandler{mu: mu, ledger: ledger}
}

// MonthlyReport handles GET /api/v1/wallets/:name/report?year=&month=.
func (h *ReportHandler) MonthlyReport(c *gin.Context) {
	year, month, err := yearMonthQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	w := h.ledger.FindWalletByName(c.Param("name"))
	if w == nil {
		response.Error(c, apperror.ErrNotFound("wallet"))
		return
	}

	groups := w.TransactionGroupsForMonth(year, month)
	out := dto.MonthlyReportResponse{
		Wallet: w.Name(),
		Year:   year,
		Month:  int(month),
		Groups: make([]dto.TransactionGroupResponse, 0, len(groups)),
	}
	for _, g := range groups {
		out.Groups = append(out.Groups, dto.TransactionGroupResponse{
			Type:         string(g.Type),
			Total:        g.Total.String(),
			Transactions: transactionResponses(g.Transactions),
		})
	}
	response.OK(c, out)
}

// TopExpenses handles GET /api/v1/wallets/:name/expenses/top?year=&month=&n=.
func (h *ReportHandler) TopExpenses(c *gin.Context) {
	year, month, err := yearMonthQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	n := 5
	if raw := c.Query("n"); raw != "" {
		v, convErr := strconv.Atoi(raw)
		if convErr != nil {
			response.Error(c, apperror.Validation("n must be an integer"))
			return
		}
		n = v
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	w := h.ledger.FindWalletByName(c.Param("name"))
	if w == nil {
		response.Error(c, apperror.ErrNotFound("wallet"))
		return
	}

	response.OK(c, dto.TopExpensesResponse{
		Wallet:   w.Name(),
		Year:     year,
		Month:    int(month),
		Expenses: transactionResponses(w.TopExpensesForMonth(year, month, n)),
	})
}

func yearMonthQuery(c *gin.Context) (int, time.Month, error) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return 0, 0, apperror.Validation("year must be an integer")
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, apperror.Validation("month must be an integer between 1 and 12")
	}
	return year, time.Month(month), nil
}

func transactionResponses(txs []*domain.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, dto.TransactionResponse{
			ID:          tx.ID().String(),
			Date:        tx.Date().Format("2006-01-02"),
			Amount:      tx.Amount().String(),
			Type:        string(tx.Type()),
			Description: tx.Description(),
		})
	}
	return out
}
