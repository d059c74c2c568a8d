package handler

import (
	"sync"

	"github.com/gin-gonic/gin"

	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/importer"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"
)

// ImportHandler handles CSV import requests.
type ImportHandler struct {
	mu  *sync.Mutex
	imp *importer.Importer
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(mu *sync.Mutex, imp *importer.Importer) *ImportHandler {
	return &ImportHandler{mu: mu, imp: imp}
}

// Import handles POST /api/v1/import. Row-level issues come back in the
// success payload; only file-level failures produce an error envelope.
func (h *ImportHandler) Import(c *gin.Context) {
	var req dto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	report, err := h.imp.LoadFromCSV(req.Path)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ImportResponse{
		Rows:           report.Rows,
		Imported:       report.Imported,
		WalletsCreated: report.WalletsCreated,
		Diagnostics:    report.Issues,
	})
}
