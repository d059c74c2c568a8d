package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"wallet-ledger/config"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/importer"
	"wallet-ledger/internal/service"
	"wallet-ledger/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	ledger := service.NewLedger(log)
	imp := importer.New(ledger, log)

	app := &cli{
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		ledger: ledger,
		imp:    imp,
		topN:   cfg.Report.DefaultTopExpenses,
	}
	app.run()
}

type cli struct {
	in     *bufio.Reader
	out    io.Writer
	ledger *service.Ledger
	imp    *importer.Importer
	topN   int
}

func (a *cli) run() {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "1) Create wallet")
		fmt.Fprintln(a.out, "2) List wallets")
		fmt.Fprintln(a.out, "3) Import from CSV")
		fmt.Fprintln(a.out, "4) Monthly report")
		fmt.Fprintln(a.out, "5) Top expenses")
		fmt.Fprintln(a.out, "6) Quit")

		switch a.prompt("Choose an option: ") {
		case "1":
			a.createWallet()
		case "2":
			a.listWallets()
		case "3":
			a.importCSV()
		case "4":
			a.monthlyReport()
		case "5":
			a.topExpenses()
		case "6", "q", "quit", "exit":
			fmt.Fprintln(a.out, "Bye.")
			return
		default:
			fmt.Fprintln(a.out, "Unknown option.")
		}
	}
}

func (a *cli) prompt(label string) string {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "6" // EOF: quit
	}
	return strings.TrimSpace(line)
}

func (a *cli) createWallet() {
	name := a.prompt("Wallet name: ")
	currency := a.prompt("Currency: ")
	raw := a.prompt("Initial balance [0]: ")

	initial := decimal.Zero
	if raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Fprintf(a.out, "Not a number: %q\n", raw)
			return
		}
		initial = v
	}

	w, err := a.ledger.CreateWallet(name, currency, initial)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot create wallet: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Created wallet %q (%s).\n", w.Name(), w.Currency())
}

func (a *cli) listWallets() {
	summaries := a.ledger.Summaries()
	if len(summaries) == 0 {
		fmt.Fprintln(a.out, "No wallets.")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCURRENCY\tINITIAL\tBALANCE\tTRANSACTIONS")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
			s.Name, s.Currency, s.InitialBalance.String(), s.CurrentBalance.String(), s.TransactionCount)
	}
	tw.Flush()
}

func (a *cli) importCSV() {
	path := a.prompt("CSV path: ")
	report, err := a.imp.LoadFromCSV(path)
	if err != nil {
		fmt.Fprintf(a.out, "Import failed: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Imported %d of %d rows (%d wallets created).\n",
		report.Imported, report.Rows, report.WalletsCreated)
	if report.HasIssues() {
		fmt.Fprintln(a.out, "Issues:")
		fmt.Fprintln(a.out, report.Diagnostics())
	}
}

func (a *cli) pickWalletAndMonth() (*domain.Wallet, int, time.Month, bool) {
	name := a.prompt("Wallet name: ")
	w := a.ledger.FindWalletByName(name)
	if w == nil {
		fmt.Fprintf(a.out, "No wallet named %q.\n", name)
		return nil, 0, 0, false
	}
	year, err := strconv.Atoi(a.prompt("Year: "))
	if err != nil {
		fmt.Fprintln(a.out, "Year must be a number.")
		return nil, 0, 0, false
	}
	month, err := strconv.Atoi(a.prompt("Month (1-12): "))
	if err != nil || month < 1 || month > 12 {
		fmt.Fprintln(a.out, "Month must be a number between 1 and 12.")
		return nil, 0, 0, false
	}
	return w, year, time.Month(month), true
}

func (a *cli) monthlyReport() {
	w, year, month, ok := a.pickWalletAndMonth()
	if !ok {
		return
	}
	groups := w.TransactionGroupsForMonth(year, month)
	if len(groups) == 0 {
		fmt.Fprintf(a.out, "No transactions in %04d-%02d.\n", year, int(month))
		return
	}
	for _, g := range groups {
		fmt.Fprintf(a.out, "%s: total %s %s\n", g.Type, g.Total.String(), w.Currency())
		for _, tx := range g.Transactions {
			fmt.Fprintf(a.out, "  %s  %s  %s\n",
				tx.Date().Format("2006-01-02"), tx.Amount().String(), tx.Description())
		}
	}
}

func (a *cli) topExpenses() {
	w, year, month, ok := a.pickWalletAndMonth()
	if !ok {
		return
	}
	n := a.topN
	if raw := a.prompt(fmt.Sprintf("How many [%d]: ", n)); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(a.out, "Must be a number.")
			return
		}
		n = v
	}
	top := w.TopExpensesForMonth(year, month, n)
	if len(top) == 0 {
		fmt.Fprintln(a.out, "No expenses found.")
		return
	}
	for i, tx := range top {
		fmt.Fprintf(a.out, "%d. %s  %s %s  %s\n",
			i+1, tx.Date().Format("2006-01-02"), tx.Amount().String(), w.Currency(), tx.Description())
	}
}
