package service

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"wallet-ledger/internal/core/domain"
)

// Ledger owns the wallet collection. Wallets are kept in insertion order;
// names need not be unique at the storage level, lookup returns the first
// case-insensitive match. Not safe for concurrent use: a single logical
// caller drives it at a time.
type Ledger struct {
	wallets []*domain.Wallet
	log     zerolog.Logger
}

// NewLedger creates an empty Ledger.
func NewLedger(log zerolog.Logger) *Ledger {
	return &Ledger{log: log}
}

// CreateWallet validates via the wallet construction contract and appends
// the new wallet to the collection.
func (l *Ledger) CreateWallet(name, currency string, initialBalance decimal.Decimal) (*domain.Wallet, error) {
	w, err := domain.NewWallet(name, currency, initialBalance)
	if err != nil {
		return nil, err
	}
	l.wallets = append(l.wallets, w)
	l.log.Debug().Str("wallet", w.Name()).Str("currency", w.Currency()).Msg("wallet created")
	return w, nil
}

// FindWalletByName performs a case-insensitive, trim-normalized linear
// search. A nil result means no match; absence is not an error.
func (l *Ledger) FindWalletByName(name string) *domain.Wallet {
	name = strings.TrimSpace(name)
	for _, w := range l.wallets {
		if strings.EqualFold(w.Name(), name) {
			return w
		}
	}
	return nil
}

// Wallets returns the collection in insertion order. The slice is a copy.
func (l *Ledger) Wallets() []*domain.Wallet {
	out := make([]*domain.Wallet, len(l.wallets))
	copy(out, l.wallets)
	return out
}

// Clear discards every wallet. A CSV import replaces state wholesale and
// calls this before loading the first data row.
func (l *Ledger) Clear() {
	if len(l.wallets) > 0 {
		l.log.Debug().Int("wallets", len(l.wallets)).Msg("wallet collection cleared")
	}
	l.wallets = nil
}

// WalletSummary is the read model handed to caller surfaces.
type WalletSummary struct {
	Name             string
	Currency         string
	InitialBalance   decimal.Decimal
	CurrentBalance   decimal.Decimal
	TransactionCount int
}

// Summaries returns one summary per wallet, in insertion order.
func (l *Ledger) Summaries() []WalletSummary {
	out := make([]WalletSummary, 0, len(l.wallets))
	for _, w := range l.wallets {
		out = append(out, WalletSummary{
			Name:             w.Name(),
			Currency:         w.Currency(),
			InitialBalance:   w.InitialBalance(),
			CurrentBalance:   w.Balance(),
			TransactionCount: len(w.Transactions()),
		})
	}
	return out
}
