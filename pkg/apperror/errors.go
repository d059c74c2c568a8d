package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
// It marks contract violations and file-level failures; expected
// data-quality conditions are reported as values, never as AppErrors.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Ledger contract violations (LEDGER) ----

func ErrInvalidAmount() *AppError {
	return New("LEDGER_001", "Transaction amount must be greater than zero", http.StatusBadRequest)
}

func ErrInvalidTransactionType(value string) *AppError {
	return New("LEDGER_002", fmt.Sprintf("Invalid transaction type %q", value), http.StatusBadRequest)
}

func ErrInvalidWalletName() *AppError {
	return New("LEDGER_003", "Wallet name must not be empty", http.StatusBadRequest)
}

func ErrInvalidCurrency() *AppError {
	return New("LEDGER_004", "Wallet currency must not be empty", http.StatusBadRequest)
}

func ErrNegativeInitialBalance() *AppError {
	return New("LEDGER_005", "Initial balance must not be negative", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("LEDGER_006", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Import file-level failures (IMPORT) ----

func ErrFileUnreadable(path string, err error) *AppError {
	return Wrap("IMPORT_001", fmt.Sprintf("Cannot read file %q", path), http.StatusBadRequest, err)
}

func ErrFileEmpty(path string) *AppError {
	return New("IMPORT_002", fmt.Sprintf("File %q is empty or contains no data rows", path), http.StatusBadRequest)
}

// ---- System & infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a generic request validation error.
func Validation(message string) *AppError {
	return New("LEDGER_000", message, http.StatusBadRequest)
}
