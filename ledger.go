package keuanganku

import (
	"context"
	"fmt"
)

// Ledger composes the primary transaction table with the satellite ledgers
// and keeps them consistent across create, delete and edit. Both stores are
// injected; the engine holds no global state.
//
// Every operation is a short read-then-write sequence triggered by a single
// interactive user. There is no cross-row transaction: the ordering is always
// compute the satellite intent, write the transaction row, write the
// satellite row. A failure stops the sequence and is reported as one error;
// it cannot undo a write already committed.
type Ledger struct {
	transactions TransactionStore
	satellites   SatelliteStore
}

// NewLedger creates a ledger service over the given stores.
func NewLedger(transactions TransactionStore, satellites SatelliteStore) *Ledger {
	return &Ledger{transactions: transactions, satellites: satellites}
}

// Record validates a draft, applies the forward mutation its link implies,
// and persists the transaction. The returned transaction carries the assigned
// id and the category resolved from the link.
func (l *Ledger) Record(ctx context.Context, draft Transaction) (Transaction, error) {
	draft, err := draft.Validate()
	if err != nil {
		return draft, fmt.Errorf("invalid transaction: %w", err)
	}
	tx, mut, err := ForwardIntent(ctx, l.satellites, draft)
	if err != nil {
		return draft, fmt.Errorf("cannot apply transaction: %w", err)
	}
	id, err := l.transactions.AddTransaction(ctx, tx)
	if err != nil {
		return tx, fmt.Errorf("cannot persist transaction: %w", err)
	}
	tx.ID = id
	if err := mut.Commit(ctx, l.satellites); err != nil {
		// The transaction row is already in; the books are inconsistent
		// until the user retries or deletes it.
		return tx, fmt.Errorf("transaction %d recorded but satellite update failed: %w", id, err)
	}
	return tx, nil
}

// Delete removes a transaction and applies the inverse mutation to its linked
// satellite, restoring the state it had before the transaction was recorded.
func (l *Ledger) Delete(ctx context.Context, id int64) error {
	tx, err := l.transactions.Transaction(ctx, id)
	if err != nil {
		return fmt.Errorf("cannot load transaction %d: %w", id, err)
	}
	mut, err := ReverseIntent(ctx, l.satellites, tx)
	if err != nil {
		return fmt.Errorf("cannot revert transaction %d: %w", id, err)
	}
	if err := l.transactions.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("cannot delete transaction %d: %w", id, err)
	}
	if err := mut.Commit(ctx, l.satellites); err != nil {
		return fmt.Errorf("transaction %d deleted but satellite update failed: %w", id, err)
	}
	return nil
}

// Edit replaces a stored transaction with a new draft, keeping the satellite
// ledgers consistent by reversing the old transaction and forward-applying
// the new one. This is how amount or link changes on a linked transaction are
// supported at all: the stores themselves never reconcile an in-place update.
func (l *Ledger) Edit(ctx context.Context, id int64, draft Transaction) (Transaction, error) {
	old, err := l.transactions.Transaction(ctx, id)
	if err != nil {
		return draft, fmt.Errorf("cannot load transaction %d: %w", id, err)
	}
	draft, err = draft.Validate()
	if err != nil {
		return draft, fmt.Errorf("invalid transaction: %w", err)
	}

	// Undo the old application first, so the forward intent below reads the
	// satellite in its pre-transaction state.
	if err := ApplyReverse(ctx, l.satellites, old); err != nil {
		return draft, fmt.Errorf("cannot revert transaction %d: %w", id, err)
	}

	tx, mut, err := ForwardIntent(ctx, l.satellites, draft)
	if err != nil {
		// Best effort: re-apply the old transaction so the books are not
		// left with the reversal only.
		if _, rerr := ApplyForward(ctx, l.satellites, old); rerr != nil {
			return draft, fmt.Errorf("cannot apply edit and cannot restore transaction %d: %w", id, rerr)
		}
		return draft, fmt.Errorf("cannot apply edit: %w", err)
	}
	tx.ID = id
	if err := l.transactions.UpdateTransaction(ctx, tx); err != nil {
		return tx, fmt.Errorf("cannot persist transaction %d: %w", id, err)
	}
	if err := mut.Commit(ctx, l.satellites); err != nil {
		return tx, fmt.Errorf("transaction %d updated but satellite update failed: %w", id, err)
	}
	return tx, nil
}

// CashFlow derives the monthly income/expense report from the full history.
// It is a read-only view; nothing is written back.
func (l *Ledger) CashFlow(ctx context.Context) ([]CashFlow, error) {
	txs, err := l.transactions.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot load transactions: %w", err)
	}
	invs, err := l.satellites.Investments(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot load investments: %w", err)
	}
	return MonthlyCashFlow(txs, invs), nil
}
