// Package renderer formats engine output as markdown for the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rafioktavian/keuanganku"
)

// reportRenderer accumulates a markdown document.
type reportRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *reportRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func newRenderer() *reportRenderer {
	return &reportRenderer{Builder: &strings.Builder{}}
}

// CashFlowMarkdown renders the monthly income/expense report.
func CashFlowMarkdown(flows []keuanganku.CashFlow) string {
	r := newRenderer()
	r.Printf("# Cash Flow\n\n")
	if len(flows) == 0 {
		r.Printf("No transactions recorded yet.\n")
		return r.String()
	}
	r.Printf("| Month | Income | Expense | Net |\n")
	r.Printf("|:---|---:|---:|---:|\n")
	for _, f := range flows {
		r.Printf("| %s | %s | %s | %s |\n", f.Month, f.Income, f.Expense, f.Net().SignedString())
	}
	return r.String()
}

// TransactionsMarkdown renders the transaction history, oldest first.
func TransactionsMarkdown(txs []keuanganku.Transaction) string {
	r := newRenderer()
	r.Printf("# Transactions\n\n")
	if len(txs) == 0 {
		r.Printf("No transactions recorded yet.\n")
		return r.String()
	}
	r.Printf("| ID | Date | Type | Amount | Category | Fund Source | Linked To | Description |\n")
	r.Printf("|---:|:---|:---|---:|:---|:---|:---|:---|\n")
	for _, tx := range txs {
		r.Printf("| %d | %s | %s | %s | %s | %s | %s | %s |\n",
			tx.ID, tx.Date, tx.Type, tx.Amount, tx.Category, tx.FundSource, tx.LinkedTo, tx.Description)
	}
	return r.String()
}

// GoalsMarkdown renders the savings goals with their progress.
func GoalsMarkdown(goals []keuanganku.Goal) string {
	r := newRenderer()
	r.Printf("# Goals\n\n")
	if len(goals) == 0 {
		r.Printf("No goals yet.\n")
		return r.String()
	}
	r.Printf("| ID | Name | Saved | Target | Progress | Target Date |\n")
	r.Printf("|---:|:---|---:|---:|---:|:---|\n")
	for _, g := range goals {
		r.Printf("| %d | %s | %s | %s | %s | %s |\n",
			g.ID, g.Name, g.CurrentAmount, g.TargetAmount, progress(g.CurrentAmount, g.TargetAmount), g.TargetDate)
	}
	return r.String()
}

// InvestmentsMarkdown renders the positions with their unrealized gains.
func InvestmentsMarkdown(invs []keuanganku.Investment) string {
	r := newRenderer()
	r.Printf("# Investments\n\n")
	if len(invs) == 0 {
		r.Printf("No investments yet.\n")
		return r.String()
	}
	r.Printf("| ID | Name | Type | Cost Basis | Current Value | Unrealized | Purchase Date |\n")
	r.Printf("|---:|:---|:---|---:|---:|---:|:---|\n")
	for _, inv := range invs {
		unrealized := inv.CurrentValue.Sub(inv.InitialAmount)
		r.Printf("| %d | %s | %s | %s | %s | %s | %s |\n",
			inv.ID, inv.Name, inv.Type, inv.InitialAmount, inv.CurrentValue, unrealized.SignedString(), inv.PurchaseDate)
	}
	return r.String()
}

// DebtsMarkdown renders debts and receivables with their remaining balances.
func DebtsMarkdown(debts []keuanganku.Debt) string {
	r := newRenderer()
	r.Printf("# Debts & Receivables\n\n")
	if len(debts) == 0 {
		r.Printf("No debts or receivables yet.\n")
		return r.String()
	}
	r.Printf("| ID | Type | Person | Principal | Remaining | Due Date | Status |\n")
	r.Printf("|---:|:---|:---|---:|---:|:---|:---|\n")
	for _, d := range debts {
		r.Printf("| %d | %s | %s | %s | %s | %s | %s |\n",
			d.ID, d.Type, d.PersonName, d.Amount, d.CurrentAmount, d.DueDate, d.Status)
	}
	return r.String()
}

// progress formats saved/target as a percentage. A zero target reads as done.
func progress(current, target keuanganku.Money) string {
	if !target.IsPositive() {
		return "100%"
	}
	pct := current.Ratio(target).Mul(decimal.NewFromInt(100))
	return pct.Round(1).String() + "%"
}
