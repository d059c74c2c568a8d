package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"wallet-ledger/pkg/apperror"
)

// Wallet is a named single-currency account. Its balance is derived from
// the initial balance plus the accepted transaction history and is
// recomputed on every read, never cached.
type Wallet struct {
	id             uuid.UUID
	name           string
	currency       string
	initialBalance decimal.Decimal

	// Insertion order, append-only. Acceptance of an expense depends on
	// the balance at append time, not on transaction dates.
	transactions []*Transaction
}

// NewWallet constructs a Wallet. Name and currency are trimmed and must be
// non-empty; the initial balance must not be negative.
func NewWallet(name, currency string, initialBalance decimal.Decimal) (*Wallet, error) {
	name = strings.TrimSpace(name)
	currency = strings.TrimSpace(currency)

	if name == "" {
		return nil, apperror.ErrInvalidWalletName()
	}
	if currency == "" {
		return nil, apperror.ErrInvalidCurrency()
	}
	if initialBalance.Sign() < 0 {
		return nil, apperror.ErrNegativeInitialBalance()
	}

	return &Wallet{
		id:             uuid.New(),
		name:           name,
		currency:       currency,
		initialBalance: initialBalance,
	}, nil
}

func (w *Wallet) ID() uuid.UUID                   { return w.id }
func (w *Wallet) Name() string                    { return w.name }
func (w *Wallet) Currency() string                { return w.currency }
func (w *Wallet) InitialBalance() decimal.Decimal { return w.initialBalance }

// Transactions returns the accepted transactions in insertion order.
// The returned slice is a copy; the underlying sequence stays append-only.
func (w *Wallet) Transactions() []*Transaction {
	out := make([]*Transaction, len(w.transactions))
	copy(out, w.transactions)
	return out
}

// Balance computes the current balance:
// initial + sum(income) - sum(expense).
func (w *Wallet) Balance() decimal.Decimal {
	balance := w.initialBalance
	for _, tx := range w.transactions {
		switch tx.Type() {
		case TransactionTypeIncome:
			balance = balance.Add(tx.Amount())
		case TransactionTypeExpense:
			balance = balance.Sub(tx.Amount())
		}
	}
	return balance
}

// TryAddTransaction applies the acceptance policy and appends the
// transaction on success. It reports success plus a human-readable
// rejection reason; callers needing only the flag may ignore the message.
func (w *Wallet) TryAddTransaction(tx *Transaction) (bool, string) {
	if tx == nil {
		return false, "transaction is nil"
	}
	// Construction already guarantees a positive amount; re-checked here so
	// the acceptance policy stands on its own.
	if tx.Amount().Sign() <= 0 {
		return false, "transaction amount must be greater than zero"
	}
	if tx.Type() == TransactionTypeExpense {
		if balance := w.Balance(); tx.Amount().GreaterThan(balance) {
			return false, fmt.Sprintf("insufficient funds: current balance is %s %s", balance.String(), w.currency)
		}
	}
	w.transactions = append(w.transactions, tx)
	return true, ""
}

// AddTransaction is the message-discarding form of TryAddTransaction.
func (w *Wallet) AddTransaction(tx *Transaction) bool {
	ok, _ := w.TryAddTransaction(tx)
	return ok
}

// TransactionsForMonth returns the transactions whose date falls in the
// given calendar year and month, in insertion order. Recomputed on every
// call; an empty result is not an error.
func (w *Wallet) TransactionsForMonth(year int, month time.Month) []*Transaction {
	var out []*Transaction
	for _, tx := range w.transactions {
		if tx.InMonth(year, month) {
			out = append(out, tx)
		}
	}
	return out
}

// TransactionGroup is an ephemeral report-time aggregation of one type's
// transactions for a month.
type TransactionGroup struct {
	Type         TransactionType
	Total        decimal.Decimal
	Transactions []*Transaction
}

// TransactionGroupsForMonth partitions the month's transactions by type.
// Group members are sorted by date ascending (stable, so equal dates keep
// insertion order); groups are ordered by total descending. Only types
// present in the month appear.
func (w *Wallet) TransactionGroupsForMonth(year int, month time.Month) []TransactionGroup {
	byType := make(map[TransactionType][]*Transaction)
	var seen []TransactionType
	for _, tx := range w.TransactionsForMonth(year, month) {
		if _, ok := byType[tx.Type()]; !ok {
			seen = append(seen, tx.Type())
		}
		byType[tx.Type()] = append(byType[tx.Type()], tx)
	}

	groups := make([]TransactionGroup, 0, len(seen))
	for _, txType := range seen {
		members := byType[txType]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Date().Before(members[j].Date())
		})
		total := decimal.Zero
		for _, tx := range members {
			total = total.Add(tx.Amount())
		}
		groups = append(groups, TransactionGroup{
			Type:         txType,
			Total:        total,
			Transactions: members,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total.GreaterThan(groups[j].Total)
	})
	return groups
}

// TopExpensesForMonth returns up to topN expense transactions of the month
// ordered by amount descending. Ties keep insertion order (stable sort).
// topN <= 0 yields an empty result.
func (w *Wallet) TopExpensesForMonth(year int, month time.Month, topN int) []*Transaction {
	if topN <= 0 {
		return nil
	}
	var out []*Transaction
	for _, tx := range w.TransactionsForMonth(year, month) {
		if tx.Type() == TransactionTypeExpense {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount().GreaterThan(out[j].Amount())
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
