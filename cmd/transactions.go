package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/rafioktavian/keuanganku"
)

// txFlags are the draft fields shared by add and edit.
type txFlags struct {
	typ         string
	amount      string
	date        string
	category    string
	fundSource  string
	description string
	linkedTo    string
}

func (p *txFlags) register(f *flag.FlagSet) {
	f.StringVar(&p.typ, "t", "expense", "Transaction type (income or expense).")
	f.StringVar(&p.amount, "a", "", "Amount in rupiah.")
	f.StringVar(&p.date, "d", "", "Transaction date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&p.category, "c", "", "Category name. Resolved from the link when linked.")
	f.StringVar(&p.fundSource, "f", "", "Fund source name.")
	f.StringVar(&p.description, "m", "", "Short description.")
	f.StringVar(&p.linkedTo, "link", "", "Satellite link, e.g. goal_1, investment_2, debt_3, receivable_4.")
}

// draft builds the transaction draft from the flags. Validation proper
// happens in the engine; this only converts the raw strings.
func (p *txFlags) draft() (keuanganku.Transaction, error) {
	amount, err := parseAmount(p.amount)
	if err != nil {
		return keuanganku.Transaction{}, err
	}
	var day keuanganku.Date
	if p.date != "" {
		day, err = keuanganku.ParseDate(p.date)
		if err != nil {
			return keuanganku.Transaction{}, err
		}
	}
	return keuanganku.Transaction{
		Type:        keuanganku.TransactionType(p.typ),
		Amount:      amount,
		Date:        day,
		Category:    p.category,
		FundSource:  p.fundSource,
		Description: p.description,
		LinkedTo:    p.linkedTo,
	}, nil
}

type addCmd struct{ txFlags }

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction, updating any linked goal, investment or debt" }
func (*addCmd) Usage() string {
	return `kk add -a <amount> [-t income|expense] [-d <date>] [-c <category>] -f <fund source> [-m <description>] [-link <kind>_<id>]

  Records a transaction. When -link is given the referenced satellite balance
  is updated and the category is derived from the link kind.

Usage Examples:
$ kk add -a 47500 -c "Makanan & Minuman" -f Tunai -m "Warung Padang"
$ kk add -a 100000 -f "Rekening Bank" -link goal_1
$ kk add -t income -a 600000 -f "Rekening Bank" -link investment_2

`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) { p.register(f) }

func (p *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	draft, err := p.draft()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ledger, _, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	tx, err := ledger.Record(ctx, draft)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded transaction %d: %s %s (%s)\n", tx.ID, tx.Type, tx.Amount, tx.Category)
	return subcommands.ExitSuccess
}

type editCmd struct {
	txFlags
	id int64
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace a recorded transaction, reconciling linked balances" }
func (*editCmd) Usage() string {
	return `kk edit -id <n> -a <amount> [-t income|expense] [-d <date>] [-c <category>] -f <fund source> [-m <description>] [-link <kind>_<id>]

  Replaces transaction <n> with the given draft. The old application is
  reversed and the new one applied, so linked balances stay consistent even
  when amount or link change.

`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	p.register(f)
	f.Int64Var(&p.id, "id", 0, "Id of the transaction to edit.")
}

func (p *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	draft, err := p.draft()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ledger, _, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	tx, err := ledger.Edit(ctx, p.id, draft)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated transaction %d: %s %s (%s)\n", tx.ID, tx.Type, tx.Amount, tx.Category)
	return subcommands.ExitSuccess
}

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction, restoring any linked balance" }
func (*deleteCmd) Usage() string {
	return `kk delete <id>...

  Deletes the given transactions. Linked goal, investment and debt balances
  are restored as if the transactions had never been recorded.

`
}

func (*deleteCmd) SetFlags(*flag.FlagSet) {}

func (p *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one transaction id is required")
		return subcommands.ExitUsageError
	}
	ledger, _, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	status := subcommands.ExitSuccess
	for _, arg := range f.Args() {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid transaction id %q\n", arg)
			status = subcommands.ExitFailure
			continue
		}
		if err := ledger.Delete(ctx, id); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("Deleted transaction %d\n", id)
	}
	return status
}
