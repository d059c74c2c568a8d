// Package importer loads wallet transactions from a delimited text file.
// Malformed rows never abort the run: each data line is processed in
// isolation and its problems are collected into a diagnostic aggregate,
// so one bad row costs exactly one row.
package importer

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/service"
	"wallet-ledger/pkg/apperror"
)

// Expected columns: WalletName, Currency, InitialBalance, TransactionDate,
// Amount, Type, Description(optional). Positions matter, header names do not.
const minColumns = 6

// Report aggregates the outcome of one import run. A run that produced
// issues is still a successful run; only file-level failures surface as
// errors from LoadFromCSV.
type Report struct {
	Rows           int // data rows seen (header and blank lines excluded)
	Imported       int // transactions accepted
	WalletsCreated int
	Issues         []string
}

func (r *Report) addIssue(lineNo int, format string, args ...interface{}) {
	r.Issues = append(r.Issues, fmt.Sprintf("line %d: %s", lineNo, fmt.Sprintf(format, args...)))
}

// HasIssues reports whether any row-level diagnostic was recorded.
func (r *Report) HasIssues() bool {
	return len(r.Issues) > 0
}

// Diagnostics returns the aggregate as one line per recorded issue,
// empty when the run was clean.
func (r *Report) Diagnostics() string {
	return strings.Join(r.Issues, "\n")
}

// Importer drives CSV ingestion into a Ledger.
type Importer struct {
	ledger *service.Ledger
	log    zerolog.Logger
}

// New creates an Importer bound to the given ledger.
func New(ledger *service.Ledger, log zerolog.Logger) *Importer {
	return &Importer{ledger: ledger, log: log}
}

// LoadFromCSV reads the file at path and replaces the ledger's wallet
// collection with its contents. Line 1 is always the header. The existing
// collection is cleared only after the file is confirmed to hold data
// rows, so a fatal failure leaves prior state intact. The returned error
// is non-nil only for fatal conditions (unreadable, empty, or header-only
// file); row-level problems land in the report instead.
func (imp *Importer) LoadFromCSV(path string) (*Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperror.ErrFileUnreadable(path, err)
	}

	lines := strings.Split(string(raw), "\n")
	if !hasDataRows(lines) {
		return nil, apperror.ErrFileEmpty(path)
	}

	// Import is wholesale replacement, not a merge.
	imp.ledger.Clear()

	report := &Report{}
	for idx := 1; idx < len(lines); idx++ {
		lineNo := idx + 1
		line := strings.TrimRight(lines[idx], "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		report.Rows++
		imp.processLine(lineNo, line, report)
	}

	imp.log.Info().
		Str("path", path).
		Int("rows", report.Rows).
		Int("imported", report.Imported).
		Int("wallets_created", report.WalletsCreated).
		Int("issues", len(report.Issues)).
		Msg("csv import finished")

	return report, nil
}

// hasDataRows reports whether any non-blank line exists past the header.
// strings.Split always yields at least one element, so lines[1:] is safe.
func hasDataRows(lines []string) bool {
	for _, line := range lines[1:] {
		if strings.TrimSpace(strings.TrimRight(line, "\r")) != "" {
			return true
		}
	}
	return false
}

func (imp *Importer) processLine(lineNo int, line string, report *Report) {
	fields := splitFields(line)
	if len(fields) < minColumns {
		report.addIssue(lineNo, "not enough columns (got %d, need %d)", len(fields), minColumns)
		return
	}

	name := strings.TrimSpace(fields[0])
	wallet := imp.ledger.FindWalletByName(name)
	if wallet == nil {
		initial := decimal.Zero
		if v, perr := parseDecimal(fields[2]); perr == nil {
			initial = v
		} else {
			report.addIssue(lineNo, "invalid initial balance %q, defaulting to 0", fields[2])
		}

		created, cerr := imp.ledger.CreateWallet(name, fields[1], initial)
		if cerr != nil {
			report.addIssue(lineNo, "cannot create wallet %q: %v", name, cerr)
			return
		}
		wallet = created
		report.WalletsCreated++
	}

	// A bad date costs a diagnostic, not the row.
	date, derr := parseDate(fields[3])
	if derr != nil {
		report.addIssue(lineNo, "invalid date %q, using current date", fields[3])
		date = time.Now()
	}

	amount, aerr := parseDecimal(fields[4])
	if aerr != nil {
		report.addIssue(lineNo, "invalid amount %q", fields[4])
		return
	}
	if amount.Sign() <= 0 {
		report.addIssue(lineNo, "invalid amount %q: must be greater than zero", fields[4])
		return
	}

	txType, terr := domain.ParseTransactionType(fields[5])
	if terr != nil {
		report.addIssue(lineNo, "invalid transaction type %q", fields[5])
		return
	}

	description := ""
	if len(fields) > minColumns {
		description = fields[minColumns]
	}

	tx, err := domain.NewTransaction(date, amount, txType, description)
	if err != nil {
		report.addIssue(lineNo, "invalid transaction: %v", err)
		return
	}

	if ok, msg := wallet.TryAddTransaction(tx); !ok {
		report.addIssue(lineNo, "transaction not added: %s", msg)
		return
	}
	report.Imported++
}
