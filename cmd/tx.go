package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/rafioktavian/keuanganku"
	"github.com/rafioktavian/keuanganku/renderer"
)

type txCmd struct {
	month string
	head  int
	tail  int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `kk tx [-month <YYYY-MM>] [-head <n>] [-tail <n>]

  Lists transactions in ascending date order, with options for filtering and
  limiting the output.

`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.month, "month", "", "Only show transactions of this calendar month.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	all, err := store.Transactions(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var transactions []keuanganku.Transaction
	for _, tx := range all {
		if p.month == "" || tx.Date.MonthKey() == p.month {
			transactions = append(transactions, tx)
		}
	}
	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(transactions))
	return subcommands.ExitSuccess
}

type cashflowCmd struct{}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "monthly income and expense report" }
func (*cashflowCmd) Usage() string {
	return `kk cashflow

  Derives monthly income/expense totals from the transaction history.
  Investment contributions are excluded as capital transfers, and divestment
  proceeds are split into realized profit or loss against the cost basis.

`
}

func (*cashflowCmd) SetFlags(*flag.FlagSet) {}

func (p *cashflowCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	flows, err := ledger.CashFlow(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CashFlowMarkdown(flows))
	return subcommands.ExitSuccess
}
