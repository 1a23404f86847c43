// Package cmd implements the CLI application to keep the books.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/rafioktavian/keuanganku"
	"github.com/rafioktavian/keuanganku/localdb"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&addCmd{},
	&editCmd{},
	&deleteCmd{},
	&txCmd{},
	&cashflowCmd{},
	&goalsCmd{},
	&addGoalCmd{},
	&investmentsCmd{},
	&addInvestmentCmd{},
	&markCmd{},
	&debtsCmd{},
	&addDebtCmd{},
	&scanCmd{},
	&backupCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", defaultDataDir(), "Path to the data directory holding the table files")

func defaultDataDir() string {
	if dir := os.Getenv("KK_DATA_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".keuanganku"
	}
	return filepath.Join(home, ".keuanganku")
}

// openStore is the central function to open the on-device store.
func openStore() (*localdb.Store, error) {
	return localdb.Open(*dataDir)
}

// openLedger opens the store and wraps it in the consistency engine.
func openLedger() (*keuanganku.Ledger, *localdb.Store, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return keuanganku.NewLedger(store, store), store, nil
}

// parseAmount parses a command-line amount into rupiah.
func parseAmount(s string) (keuanganku.Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return keuanganku.Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return keuanganku.IDR(d), nil
}

// printMarkdown renders a markdown report for the terminal. If styling fails
// (no TTY, unknown terminal) the raw markdown is printed instead.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}
