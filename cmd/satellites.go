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

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list savings goals" }
func (*goalsCmd) Usage() string {
	return `kk goals

  Lists savings goals with their progress.

`
}
func (*goalsCmd) SetFlags(*flag.FlagSet) {}

func (p *goalsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	goals, err := store.Goals(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.GoalsMarkdown(goals))
	return subcommands.ExitSuccess
}

type addGoalCmd struct {
	name   string
	target string
	date   string
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "create a savings goal" }
func (*addGoalCmd) Usage() string {
	return `kk add-goal -name <name> -target <amount> -date <YYYY-MM-DD>

  Creates a savings goal. Fund it with linked transactions:
$ kk add -a 100000 -f Tunai -link goal_<id>

`
}

func (p *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Goal name.")
	f.StringVar(&p.target, "target", "", "Target amount in rupiah.")
	f.StringVar(&p.date, "date", "", "Target date (YYYY-MM-DD).")
}

func (p *addGoalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	target, err := parseAmount(p.target)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	day, err := keuanganku.ParseDate(p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	id, err := store.AddGoal(ctx, keuanganku.Goal{Name: p.name, TargetAmount: target, TargetDate: day})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created goal %d, link transactions with -link goal_%d\n", id, id)
	return subcommands.ExitSuccess
}

type investmentsCmd struct{}

func (*investmentsCmd) Name() string     { return "investments" }
func (*investmentsCmd) Synopsis() string { return "list investment positions" }
func (*investmentsCmd) Usage() string {
	return `kk investments

  Lists positions with cost basis, current value and unrealized gain.

`
}
func (*investmentsCmd) SetFlags(*flag.FlagSet) {}

func (p *investmentsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	invs, err := store.Investments(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.InvestmentsMarkdown(invs))
	return subcommands.ExitSuccess
}

type addInvestmentCmd struct {
	name   string
	typ    string
	amount string
	date   string
}

func (*addInvestmentCmd) Name() string     { return "add-investment" }
func (*addInvestmentCmd) Synopsis() string { return "open an investment position" }
func (*addInvestmentCmd) Usage() string {
	return `kk add-investment -name <name> -type <type> -a <amount> [-date <YYYY-MM-DD>]

  Opens a position with the given purchase amount as both cost basis and
  initial value. Top it up or divest with linked transactions:
$ kk add -a 300000 -f "Rekening Bank" -link investment_<id>
$ kk add -t income -a 600000 -f "Rekening Bank" -link investment_<id>

`
}

func (p *addInvestmentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Position name.")
	f.StringVar(&p.typ, "type", "", "Position type (stock, mutual-fund, crypto, gold...).")
	f.StringVar(&p.amount, "a", "", "Purchase amount in rupiah.")
	f.StringVar(&p.date, "date", "", "Purchase date (YYYY-MM-DD). Defaults to today.")
}

func (p *addInvestmentCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	day := keuanganku.Today()
	if p.date != "" {
		day, err = keuanganku.ParseDate(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	id, err := store.AddInvestment(ctx, keuanganku.Investment{
		Name:          p.name,
		Type:          p.typ,
		InitialAmount: amount,
		CurrentValue:  amount,
		PurchaseDate:  day,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Opened position %d, link transactions with -link investment_%d\n", id, id)
	return subcommands.ExitSuccess
}

type markCmd struct {
	id    int64
	value string
}

func (*markCmd) Name() string     { return "mark" }
func (*markCmd) Synopsis() string { return "update an investment's market value" }
func (*markCmd) Usage() string {
	return `kk mark -id <n> -value <amount>

  Sets the current market value of a position. The cost basis is untouched;
  the difference shows up as unrealized gain or loss.

`
}

func (p *markCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.id, "id", 0, "Id of the position to mark.")
	f.StringVar(&p.value, "value", "", "Current market value in rupiah.")
}

func (p *markCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	value, err := parseAmount(p.value)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	inv, err := store.Investment(ctx, p.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	inv.CurrentValue = value
	if err := store.UpdateInvestment(ctx, inv); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Marked %s at %s\n", inv.Name, inv.CurrentValue)
	return subcommands.ExitSuccess
}

type debtsCmd struct{}

func (*debtsCmd) Name() string     { return "debts" }
func (*debtsCmd) Synopsis() string { return "list debts and receivables" }
func (*debtsCmd) Usage() string {
	return `kk debts

  Lists debts and receivables with their remaining balances.

`
}
func (*debtsCmd) SetFlags(*flag.FlagSet) {}

func (p *debtsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	debts, err := store.Debts(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DebtsMarkdown(debts))
	return subcommands.ExitSuccess
}

type addDebtCmd struct {
	typ         string
	person      string
	amount      string
	due         string
	description string
}

func (*addDebtCmd) Name() string     { return "add-debt" }
func (*addDebtCmd) Synopsis() string { return "record a debt or receivable" }
func (*addDebtCmd) Usage() string {
	return `kk add-debt -type debt|receivable -person <name> -a <amount> [-due <YYYY-MM-DD>] [-m <description>]

  Records money the user owes (debt) or is owed (receivable). Pay it down
  with linked transactions:
$ kk add -a 200000 -f Tunai -link debt_<id>
$ kk add -t income -a 200000 -f Tunai -link receivable_<id>

`
}

func (p *addDebtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.typ, "type", "debt", "Either debt (money owed) or receivable (money lent out).")
	f.StringVar(&p.person, "person", "", "The other party's name.")
	f.StringVar(&p.amount, "a", "", "Principal in rupiah.")
	f.StringVar(&p.due, "due", "", "Due date (YYYY-MM-DD).")
	f.StringVar(&p.description, "m", "", "Short description.")
}

func (p *addDebtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := keuanganku.ParseDebtType(p.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if p.person == "" {
		fmt.Fprintln(os.Stderr, "Error: -person is required")
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	var due keuanganku.Date
	if p.due != "" {
		due, err = keuanganku.ParseDate(p.due)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	id, err := store.AddDebt(ctx, keuanganku.Debt{
		Type:          typ,
		PersonName:    p.person,
		Amount:        amount,
		CurrentAmount: amount,
		DueDate:       due,
		Status:        keuanganku.StatusUnpaid,
		Description:   p.description,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	kind := keuanganku.LinkDebt
	if typ == keuanganku.DebtReceivable {
		kind = keuanganku.LinkReceivable
	}
	fmt.Printf("Recorded %s %d, link payments with -link %s_%d\n", typ, id, kind, id)
	return subcommands.ExitSuccess
}
