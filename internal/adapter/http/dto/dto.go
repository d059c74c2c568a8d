// Package dto defines the JSON shapes of the HTTP caller surface.
// Monetary values travel as decimal strings, never floats.
package dto

// CreateWalletRequest is the body of POST /api/v1/wallets.
type CreateWalletRequest struct {
	Name           string `json:"name" binding:"required"`
	Currency       string `json:"currency" binding:"required"`
	InitialBalance string `json:"initial_balance"` // decimal string, defaults to "0"
}

// ImportRequest is the body of POST /api/v1/import.
type ImportRequest struct {
	Path string `json:"path" binding:"required"`
}

// WalletResponse is one wallet summary.
type WalletResponse struct {
	Name             string `json:"name"`
	Currency         string `json:"currency"`
	InitialBalance   string `json:"initial_balance"`
	CurrentBalance   string `json:"current_balance"`
	TransactionCount int    `json:"transaction_count"`
}

// TransactionResponse is one transaction.
type TransactionResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // YYYY-MM-DD
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// TransactionGroupResponse is one per-type group of a monthly report.
type TransactionGroupResponse struct {
	Type         string                `json:"type"`
	Total        string                `json:"total"`
	Transactions []TransactionResponse `json:"transactions"`
}

// MonthlyReportResponse is the grouped monthly report.
type MonthlyReportResponse struct {
	Wallet string                     `json:"wallet"`
	Year   int                        `json:"year"`
	Month  int                        `json:"month"`
	Groups []TransactionGroupResponse `json:"groups"`
}

// TopExpensesResponse lists the ranked expenses of a month.
type TopExpensesResponse struct {
	Wallet   string                `json:"wallet"`
	Year     int                   `json:"year"`
	Month    int                   `json:"month"`
	Expenses []TransactionResponse `json:"expenses"`
}

// ImportResponse reports the outcome of a CSV import.
type ImportResponse struct {
	Rows           int      `json:"rows"`
	Imported       int      `json:"imported"`
	WalletsCreated int      `json:"wallets_created"`
	Diagnostics    []string `json:"diagnostics,omitempty"`
}
