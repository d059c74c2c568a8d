package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"wallet-ledger/pkg/apperror"
)

// TransactionType represents the kind of money movement.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// ParseTransactionType maps user-supplied tokens onto a TransactionType.
// Accepted (case-insensitive): "income"/"i" and "expense"/"e".
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "i":
		return TransactionTypeIncome, nil
	case "expense", "e":
		return TransactionTypeExpense, nil
	default:
		return "", apperror.ErrInvalidTransactionType(s)
	}
}

// IsValid reports whether t is one of the two known types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is an immutable record of one monetary movement.
// Fields are unexported so a constructed transaction cannot be edited;
// a wallet owns it exclusively once accepted.
type Transaction struct {
	id          uuid.UUID
	date        time.Time
	amount      decimal.Decimal
	txType      TransactionType
	description string
}

// NewTransaction constructs a Transaction. The amount must be strictly
// positive and the type one of the known values; anything else is a
// contract violation, not a recoverable data condition.
func NewTransaction(date time.Time, amount decimal.Decimal, txType TransactionType, description string) (*Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if !txType.IsValid() {
		return nil, apperror.ErrInvalidTransactionType(string(txType))
	}
	return &Transaction{
		id:          uuid.New(),
		date:        date,
		amount:      amount,
		txType:      txType,
		description: description,
	}, nil
}

func (t *Transaction) ID() uuid.UUID           { return t.id }
func (t *Transaction) Date() time.Time         { return t.date }
func (t *Transaction) Amount() decimal.Decimal { return t.amount }
func (t *Transaction) Type() TransactionType   { return t.txType }
func (t *Transaction) Description() string     { return t.description }

// InMonth reports whether the transaction date falls in the given
// calendar year and month.
func (t *Transaction) InMonth(year int, month time.Month) bool {
	return t.date.Year() == year && t.date.Month() == month
}
