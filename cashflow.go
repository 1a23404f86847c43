package keuanganku

import (
	"slices"
	"strings"
)

// CashFlow is the derived income/expense total of one calendar month.
// Totals are views; they are never written back to the store.
type CashFlow struct {
	Month   string // calendar month key, e.g. "2025-07"
	Income  Money
	Expense Money
}

// Net returns income minus expense for the month.
func (f CashFlow) Net() Money { return f.Income.Sub(f.Expense) }

// MonthlyCashFlow buckets the transaction history by calendar month and
// totals income and expense per bucket, in ascending month order.
//
// Investment-linked transactions are reclassified as capital movements:
// contributions are excluded from both totals, and divestment proceeds are
// split into realized profit (income) or realized loss (expense) against the
// position's cost basis. The realized figure is recomputed from the
// position's post-sale state, reconstructing the pre-sale value as
// currentValue + proceeds. When the linked position no longer exists the full
// proceeds fall back to income.
//
// The result depends only on the set of transactions, not their order;
// re-running the aggregation over unchanged input yields identical totals.
func MonthlyCashFlow(transactions []Transaction, investments []Investment) []CashFlow {
	byID := make(map[int64]Investment, len(investments))
	for _, inv := range investments {
		byID[inv.ID] = inv
	}

	buckets := make(map[string]CashFlow)
	for _, tx := range transactions {
		key := tx.Date.MonthKey()
		flow := buckets[key]
		flow.Month = key

		switch tx.Purpose {
		case InvestmentContribution:
			// Capital transfer, not consumption.

		case InvestmentDivestment:
			profit, ok := realizedProfit(tx, byID)
			switch {
			case !ok:
				flow.Income = flow.Income.Add(tx.Amount)
			case profit.IsPositive():
				flow.Income = flow.Income.Add(profit)
			case profit.IsNegative():
				flow.Expense = flow.Expense.Add(profit.Neg())
			}

		default:
			if tx.Type == Income {
				flow.Income = flow.Income.Add(tx.Amount)
			} else {
				flow.Expense = flow.Expense.Add(tx.Amount)
			}
		}
		buckets[key] = flow
	}

	flows := make([]CashFlow, 0, len(buckets))
	for _, flow := range buckets {
		flows = append(flows, flow)
	}
	slices.SortFunc(flows, func(a, b CashFlow) int { return strings.Compare(a.Month, b.Month) })
	return flows
}

// realizedProfit recomputes the profit or loss a divestment realized, from
// the linked position's current (post-sale) state. The second return value is
// false when the position cannot be found, in which case the caller treats
// the full proceeds as income.
func realizedProfit(tx Transaction, investments map[int64]Investment) (Money, bool) {
	link, ok, err := tx.Link()
	if !ok || err != nil {
		return Money{}, false
	}
	inv, found := investments[link.ID]
	if !found {
		return Money{}, false
	}
	valueBefore := inv.CurrentValue.Add(tx.Amount)
	if !valueBefore.IsPositive() {
		// Degenerate sale against an empty position: all profit.
		return tx.Amount, true
	}
	proportionSold := tx.Amount.Ratio(valueBefore)
	costOfGoodsSold := inv.InitialAmount.Scale(proportionSold)
	return tx.Amount.Sub(costOfGoodsSold), true
}
