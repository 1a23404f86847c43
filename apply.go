package keuanganku

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
)

// Mutation is a computed satellite update that has not been written yet.
// The two-write sequence of a recording (transaction row, then satellite row)
// is ordered by computing the intent first, committing the transaction, and
// only then committing the mutation.
type Mutation interface {
	Commit(ctx context.Context, store SatelliteStore) error
}

var one = decimal.NewFromInt(1)

type noMutation struct{}

func (noMutation) Commit(context.Context, SatelliteStore) error { return nil }

type goalMutation struct{ goal Goal }

func (m goalMutation) Commit(ctx context.Context, store SatelliteStore) error {
	return store.UpdateGoal(ctx, m.goal)
}

type investmentMutation struct{ inv Investment }

func (m investmentMutation) Commit(ctx context.Context, store SatelliteStore) error {
	return store.UpdateInvestment(ctx, m.inv)
}

type debtMutation struct{ debt Debt }

func (m debtMutation) Commit(ctx context.Context, store SatelliteStore) error {
	return store.UpdateDebt(ctx, m.debt)
}

// purposeFor returns the Purpose implied by a link kind and transaction type,
// or an error when the combination is meaningless (e.g. income into a goal).
func purposeFor(kind LinkKind, typ TransactionType) (Purpose, error) {
	switch kind {
	case LinkGoal:
		if typ == Expense {
			return GoalContribution, nil
		}
	case LinkInvestment:
		if typ == Expense {
			return InvestmentContribution, nil
		}
		return InvestmentDivestment, nil
	case LinkDebt:
		if typ == Expense {
			return DebtPayment, nil
		}
	case LinkReceivable:
		if typ == Income {
			return ReceivablePayment, nil
		}
	}
	return Ordinary, fmt.Errorf("%s link does not accept %s transactions", kind, typ)
}

// ForwardIntent resolves the transaction's link, computes the satellite
// mutation its creation implies, and returns the transaction with Purpose and
// Category filled in. Nothing is written; the caller commits the returned
// Mutation after persisting the transaction row.
//
// A link pointing at a row that no longer exists is not an error: the
// transaction is recorded with its user-chosen category and no satellite is
// touched.
func ForwardIntent(ctx context.Context, store SatelliteStore, tx Transaction) (Transaction, Mutation, error) {
	link, ok, err := tx.Link()
	if err != nil {
		return tx, nil, err
	}
	if !ok {
		tx.Purpose = Ordinary
		return tx, noMutation{}, nil
	}

	purpose, err := purposeFor(link.Kind, tx.Type)
	if err != nil {
		return tx, nil, err
	}
	tx.Purpose = purpose

	var mut Mutation
	switch link.Kind {
	case LinkGoal:
		goal, err := store.Goal(ctx, link.ID)
		if errors.Is(err, ErrNotFound) {
			return forwardMissing(tx, link), noMutation{}, nil
		}
		if err != nil {
			return tx, nil, err
		}
		goal.CurrentAmount = goal.CurrentAmount.Add(tx.Amount)
		mut = goalMutation{goal}

	case LinkInvestment:
		inv, err := store.Investment(ctx, link.ID)
		if errors.Is(err, ErrNotFound) {
			return forwardMissing(tx, link), noMutation{}, nil
		}
		if err != nil {
			return tx, nil, err
		}
		if purpose == InvestmentContribution {
			inv.InitialAmount = inv.InitialAmount.Add(tx.Amount)
			inv.CurrentValue = inv.CurrentValue.Add(tx.Amount)
		} else {
			inv = divest(inv, tx.Amount)
		}
		mut = investmentMutation{inv}

	case LinkDebt, LinkReceivable:
		debt, err := store.Debt(ctx, link.ID)
		if errors.Is(err, ErrNotFound) {
			return forwardMissing(tx, link), noMutation{}, nil
		}
		if err != nil {
			return tx, nil, err
		}
		if debt.linkKind() != link.Kind {
			return tx, nil, fmt.Errorf("link %s points at a %s row", link, debt.Type)
		}
		debt.CurrentAmount = debt.CurrentAmount.Sub(tx.Amount)
		if !debt.CurrentAmount.IsPositive() {
			debt.CurrentAmount = IDR(0)
			debt.Status = StatusPaid
		} else {
			debt.Status = StatusUnpaid
		}
		mut = debtMutation{debt}
	}

	if c := tx.Purpose.Category(); c != "" {
		tx.Category = c
	}
	return tx, mut, nil
}

// divest applies a sale of proceeds `amount` to the position: the cost basis
// shrinks by the proportion of value sold, and the mark shrinks by the
// proceeds, clamped at zero. Realized profit or loss is not stored; the
// aggregator recomputes it from the post-sale state.
func divest(inv Investment, amount Money) Investment {
	valueBefore := inv.CurrentValue
	if valueBefore.IsPositive() {
		proportion := amount.Ratio(valueBefore)
		if proportion.GreaterThan(one) {
			proportion = one
		}
		inv.InitialAmount = inv.InitialAmount.Scale(one.Sub(proportion))
	}
	// When there is no value on the books the proportional reduction is
	// skipped and the whole sale counts as profit.
	inv.CurrentValue = inv.CurrentValue.Sub(amount)
	if inv.CurrentValue.IsNegative() {
		inv.CurrentValue = IDR(0)
	}
	return inv
}

// forwardMissing handles a dangling link at apply time: keep the user-chosen
// category, record the purpose, mutate nothing.
func forwardMissing(tx Transaction, link Link) Transaction {
	log.Printf("%s: linked %s not found, recording without satellite update", tx.Date, link)
	return tx
}

// ApplyForward computes and immediately commits the forward mutation. It is
// the one-step form of ForwardIntent for callers that do not interleave the
// transaction write.
func ApplyForward(ctx context.Context, store SatelliteStore, tx Transaction) (Transaction, error) {
	tx, mut, err := ForwardIntent(ctx, store, tx)
	if err != nil {
		return tx, err
	}
	return tx, mut.Commit(ctx, store)
}
