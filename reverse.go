package keuanganku

import (
	"context"
	"errors"
	"log"
)

// ReverseIntent computes the satellite mutation that undoes the given stored
// transaction, so that after commit the satellite reads as if the transaction
// had never been applied. Nothing is written; the caller removes the
// transaction row first and then commits the returned Mutation.
//
// For goals, debts and receivables the reversal is the exact inverse of the
// forward rule. For divestments it is not a simple negation, because the
// forward step reduces the cost basis proportionally; see undoDivest.
//
// The reversal is exact only when no other transaction touched the same
// satellite between the original application and this reversal. Out-of-order
// deletion of interleaved transactions is not reconciled.
func ReverseIntent(ctx context.Context, store SatelliteStore, tx Transaction) (Mutation, error) {
	link, ok, err := tx.Link()
	if err != nil {
		return nil, err
	}
	if !ok {
		return noMutation{}, nil
	}
	purpose, err := purposeFor(link.Kind, tx.Type)
	if err != nil {
		return nil, err
	}

	switch link.Kind {
	case LinkGoal:
		goal, err := store.Goal(ctx, link.ID)
		if errors.Is(err, ErrNotFound) {
			return reverseMissing(tx, link), nil
		}
		if err != nil {
			return nil, err
		}
		// May go negative if the goal was manually adjusted in between;
		// intentionally not clamped.
		goal.CurrentAmount = goal.CurrentAmount.Sub(tx.Amount)
		return goalMutation{goal}, nil

	case LinkInvestment:
		inv, err := store.Investment(ctx, link.ID)
		if errors.Is(err, ErrNotFound) {
			return reverseMissing(tx, link), nil
		}
		if err != nil {
			return nil, err
		}
		if purpose == InvestmentContribution {
			inv.InitialAmount = inv.InitialAmount.Sub(tx.Amount)
			inv.CurrentValue = inv.CurrentValue.Sub(tx.Amount)
		} else {
			inv = undoDivest(inv, tx.Amount)
		}
		return investmentMutation{inv}, nil

	case LinkDebt, LinkReceivable:
		debt, err := store.Debt(ctx, link.ID)
		if errors.Is(err, ErrNotFound) {
			return reverseMissing(tx, link), nil
		}
		if err != nil {
			return nil, err
		}
		debt.CurrentAmount = debt.CurrentAmount.Add(tx.Amount)
		if debt.CurrentAmount.IsPositive() {
			debt.Status = StatusUnpaid
		}
		return debtMutation{debt}, nil
	}
	return noMutation{}, nil
}

// undoDivest restores a position to its state before a sale of proceeds
// `amount`. The cost basis is recovered by scaling back up with the remaining
// proportion. Once the position was fully liquidated that proportion is zero
// and the original cost basis cannot be recovered; the balance is then
// approximated as initialAmount + amount.
func undoDivest(inv Investment, amount Money) Investment {
	valueAfter := inv.CurrentValue
	valueBefore := valueAfter.Add(amount)
	if valueBefore.IsPositive() && valueAfter.IsPositive() {
		proportionRemaining := valueAfter.Ratio(valueBefore)
		inv.InitialAmount = Money{value: inv.InitialAmount.value.Div(proportionRemaining), cur: inv.InitialAmount.cur}
	} else {
		inv.InitialAmount = inv.InitialAmount.Add(amount)
	}
	inv.CurrentValue = valueBefore
	return inv
}

// reverseMissing handles a satellite deleted before its transaction: there is
// nothing left to restore.
func reverseMissing(tx Transaction, link Link) Mutation {
	log.Printf("%s: linked %s not found, deleting without satellite update", tx.Date, link)
	return noMutation{}
}

// ApplyReverse computes and immediately commits the reverse mutation.
func ApplyReverse(ctx context.Context, store SatelliteStore, tx Transaction) error {
	mut, err := ReverseIntent(ctx, store, tx)
	if err != nil {
		return err
	}
	return mut.Commit(ctx, store)
}
