package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWallet(t *testing.T, initial string) *Wallet {
	t.Helper()
	w, err := NewWallet("Main", "USD", decimal.RequireFromString(initial))
	require.NoError(t, err)
	return w
}

func mustTx(t *testing.T, date time.Time, amount string, txType TransactionType) *Transaction {
	t.Helper()
	tx, err := NewTransaction(date, decimal.RequireFromString(amount), txType, "")
	require.NoError(t, err)
	return tx
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewWallet_Validation(t *testing.T) {
	tests := []struct {
		name     string
		walletNm string
		currency string
		initial  string
		wantErr  bool
	}{
		{"valid", "Main", "USD", "100", false},
		{"zero initial", "Main", "USD", "0", false},
		{"trims name and currency", "  Main  ", "  USD ", "5", false},
		{"empty name", "", "USD", "0", true},
		{"whitespace name", "   ", "USD", "0", true},
		{"empty currency", "Main", "", "0", true},
		{"whitespace currency", "Main", "  ", "0", true},
		{"negative initial", "Main", "USD", "-0.01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWallet(tt.walletNm, tt.currency, decimal.RequireFromString(tt.initial))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Main", w.Name())
			assert.Equal(t, "USD", w.Currency())
		})
	}
}

func TestWallet_Balance(t *testing.T) {
	w := mustWallet(t, "100.50")

	ok, msg := w.TryAddTransaction(mustTx(t, day(2025, time.September, 5), "25.75", TransactionTypeIncome))
	require.True(t, ok, msg)
	ok, msg = w.TryAddTransaction(mustTx(t, day(2025, time.September, 6), "30.25", TransactionTypeExpense))
	require.True(t, ok, msg)

	assert.True(t, decimal.RequireFromString("96").Equal(w.Balance()), "got %s", w.Balance())
}

func TestWallet_TryAddTransaction_Nil(t *testing.T) {
	w := mustWallet(t, "10")
	ok, msg := w.TryAddTransaction(nil)
	assert.False(t, ok)
	assert.Contains(t, msg, "nil")
	assert.Empty(t, w.Transactions())
}

func TestWallet_TryAddTransaction_InsufficientFunds(t *testing.T) {
	w := mustWallet(t, "10")

	ok, msg := w.TryAddTransaction(mustTx(t, day(2025, time.September, 1), "100", TransactionTypeExpense))
	assert.False(t, ok)
	assert.Contains(t, msg, "insufficient funds")
	assert.Contains(t, msg, "10")
	assert.Contains(t, msg, "USD")

	// Rejected expense leaves the wallet untouched.
	assert.Empty(t, w.Transactions())
	assert.True(t, decimal.NewFromInt(10).Equal(w.Balance()))
}

func TestWallet_TryAddTransaction_ExpenseEqualToBalance(t *testing.T) {
	w := mustWallet(t, "10")
	ok, msg := w.TryAddTransaction(mustTx(t, day(2025, time.September, 1), "10", TransactionTypeExpense))
	assert.True(t, ok, msg)
	assert.True(t, w.Balance().IsZero())
}

func TestWallet_AcceptanceIsAppendOrderDependent(t *testing.T) {
	// An expense dated before an income is still judged against the balance
	// at append time: income accepted first funds a later-appended expense
	// even though the expense carries the earlier date.
	w := mustWallet(t, "0")

	ok, _ := w.TryAddTransaction(mustTx(t, day(2025, time.September, 20), "50", TransactionTypeIncome))
	require.True(t, ok)
	ok, msg := w.TryAddTransaction(mustTx(t, day(2025, time.September, 1), "40", TransactionTypeExpense))
	assert.True(t, ok, msg)

	// And the reverse order is rejected.
	w2 := mustWallet(t, "0")
	ok, msg = w2.TryAddTransaction(mustTx(t, day(2025, time.September, 1), "40", TransactionTypeExpense))
	assert.False(t, ok)
	assert.Contains(t, msg, "insufficient funds")
}

func TestWallet_AddTransaction_SamePolicy(t *testing.T) {
	w := mustWallet(t, "10")
	assert.False(t, w.AddTransaction(mustTx(t, day(2025, time.September, 1), "100", TransactionTypeExpense)))
	assert.True(t, w.AddTransaction(mustTx(t, day(2025, time.September, 1), "5", TransactionTypeExpense)))
	assert.Len(t, w.Transactions(), 1)
}

func TestWallet_TransactionsForMonth_Boundaries(t *testing.T) {
	w := mustWallet(t, "1000")
	aug := mustTx(t, day(2025, time.August, 31), "1", TransactionTypeExpense)
	sep1 := mustTx(t, day(2025, time.September, 1), "2", TransactionTypeExpense)
	sep30 := mustTx(t, day(2025, time.September, 30), "3", TransactionTypeExpense)
	oct := mustTx(t, day(2025, time.October, 1), "4", TransactionTypeExpense)
	for _, tx := range []*Transaction{aug, sep1, sep30, oct} {
		require.True(t, w.AddTransaction(tx))
	}

	got := w.TransactionsForMonth(2025, time.September)
	require.Len(t, got, 2)
	assert.Equal(t, sep1.ID(), got[0].ID())
	assert.Equal(t, sep30.ID(), got[1].ID())

	assert.Empty(t, w.TransactionsForMonth(2025, time.November))
	assert.Empty(t, w.TransactionsForMonth(2024, time.September))
}

func TestWallet_TransactionsForMonth_InsertionOrder(t *testing.T) {
	w := mustWallet(t, "1000")
	late := mustTx(t, day(2025, time.September, 25), "1", TransactionTypeIncome)
	early := mustTx(t, day(2025, time.September, 2), "2", TransactionTypeIncome)
	require.True(t, w.AddTransaction(late))
	require.True(t, w.AddTransaction(early))

	got := w.TransactionsForMonth(2025, time.September)
	require.Len(t, got, 2)
	// No re-sort: insertion order, not date order.
	assert.Equal(t, late.ID(), got[0].ID())
	assert.Equal(t, early.ID(), got[1].ID())
}

func TestWallet_TransactionGroupsForMonth(t *testing.T) {
	w := mustWallet(t, "1000")
	require.True(t, w.AddTransaction(mustTx(t, day(2025, time.September, 10), "200", TransactionTypeExpense)))
	require.True(t, w.AddTransaction(mustTx(t, day(2025, time.September, 3), "50", TransactionTypeIncome)))
	require.True(t, w.AddTransaction(mustTx(t, day(2025, time.September, 1), "100", TransactionTypeExpense)))
	require.True(t, w.AddTransaction(mustTx(t, day(2025, time.October, 1), "999", TransactionTypeIncome)))

	groups := w.TransactionGroupsForMonth(2025, time.September)
	require.Len(t, groups, 2)

	// Expense total 300 > income total 50: expenses first.
	assert.Equal(t, TransactionTypeExpense, groups[0].Type)
	assert.True(t, decimal.NewFromInt(300).Equal(groups[0].Total), "got %s", groups[0].Total)
	assert.Equal(t, TransactionTypeIncome, groups[1].Type)
	assert.True(t, decimal.NewFromInt(50).Equal(groups[1].Total))

	// Members sorted by date ascending within the group.
	require.Len(t, groups[0].Transactions, 2)
	assert.Equal(t, day(2025, time.September, 1), groups[0].Transactions[0].Date())
	assert.Equal(t, day(2025, time.September, 10), groups[0].Transactions[1].Date())
}

func TestWallet_TransactionGroupsForMonth_SingleType(t *testing.T) {
	w := mustWallet(t, "0")
	require.True(t, w.AddTransaction(mustTx(t, day(2025, time.September, 3), "50", TransactionTypeIncome)))

	groups := w.TransactionGroupsForMonth(2025, time.September)
	require.Len(t, groups, 1)
	assert.Equal(t, TransactionTypeIncome, groups[0].Type)
}

func TestWallet_TransactionGroupsForMonth_Empty(t *testing.T) {
	w := mustWallet(t, "0")
	assert.Empty(t, w.TransactionGroupsForMonth(2025, time.September))
}

func TestWallet_TopExpensesForMonth(t *testing.T) {
	w := mustWallet(t, "1000")
	require.True(t, w.AddTransaction(mustTx(t, day(2025, time.September, 1), "10", TransactionTypeExpense)))
	require.True(t, w.AddTransaction(mustTx(t, day(2025, time.September, 2), "30", TransactionTypeExpense)))
	require.True(t, w.AddTransaction(mustTx(t, day(2025, time.September, 3), "20", TransactionTypeExpense)))
	require.True(t, w.AddTransaction(mustTx(t, day(2025, time.September, 4), "500", TransactionTypeIncome)))

	top := w.TopExpensesForMonth(2025, time.September, 2)
	require.Len(t, top, 2)
	assert.True(t, decimal.NewFromInt(30).Equal(top[0].Amount()))
	assert.True(t, decimal.NewFromInt(20).Equal(top[1].Amount()))
}

func TestWallet_TopExpensesForMonth_Bounds(t *testing.T) {
	w := mustWallet(t, "1000")
	require.True(t, w.AddTransaction(mustTx(t, day(2025, time.September, 1), "10", TransactionTypeExpense)))

	assert.Empty(t, w.TopExpensesForMonth(2025, time.September, 0))
	assert.Empty(t, w.TopExpensesForMonth(2025, time.September, -3))
	assert.Len(t, w.TopExpensesForMonth(2025, time.September, 10), 1)
}

func TestWallet_TopExpensesForMonth_StableTies(t *testing.T) {
	w := mustWallet(t, "1000")
	first := mustTx(t, day(2025, time.September, 9), "25", TransactionTypeExpense)
	second := mustTx(t, day(2025, time.September, 1), "25", TransactionTypeExpense)
	require.True(t, w.AddTransaction(first))
	require.True(t, w.AddTransaction(second))

	top := w.TopExpensesForMonth(2025, time.September, 2)
	require.Len(t, top, 2)
	// Stable sort over insertion order keeps ties deterministic.
	assert.Equal(t, first.ID(), top[0].ID())
	assert.Equal(t, second.ID(), top[1].ID())
}
