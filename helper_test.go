package keuanganku

import (
	"context"
	"fmt"
	"slices"
)

// memStore is an in-memory Database used by the engine tests.
type memStore struct {
	goals       map[int64]Goal
	investments map[int64]Investment
	debts       map[int64]Debt
	txs         map[int64]Transaction
	nextTxID    int64
}

func newMemStore() *memStore {
	return &memStore{
		goals:       make(map[int64]Goal),
		investments: make(map[int64]Investment),
		debts:       make(map[int64]Debt),
		txs:         make(map[int64]Transaction),
	}
}

func (s *memStore) Goal(_ context.Context, id int64) (Goal, error) {
	g, ok := s.goals[id]
	if !ok {
		return Goal{}, fmt.Errorf("goal %d: %w", id, ErrNotFound)
	}
	return g, nil
}

func (s *memStore) UpdateGoal(_ context.Context, g Goal) error {
	if _, ok := s.goals[g.ID]; !ok {
		return fmt.Errorf("goal %d: %w", g.ID, ErrNotFound)
	}
	s.goals[g.ID] = g
	return nil
}

func (s *memStore) Goals(_ context.Context) ([]Goal, error) {
	return collect(s.goals, func(g Goal) int64 { return g.ID }), nil
}

func (s *memStore) Investment(_ context.Context, id int64) (Investment, error) {
	inv, ok := s.investments[id]
	if !ok {
		return Investment{}, fmt.Errorf("investment %d: %w", id, ErrNotFound)
	}
	return inv, nil
}

func (s *memStore) UpdateInvestment(_ context.Context, inv Investment) error {
	if _, ok := s.investments[inv.ID]; !ok {
		return fmt.Errorf("investment %d: %w", inv.ID, ErrNotFound)
	}
	s.investments[inv.ID] = inv
	return nil
}

func (s *memStore) Investments(_ context.Context) ([]Investment, error) {
	return collect(s.investments, func(i Investment) int64 { return i.ID }), nil
}

func (s *memStore) Debt(_ context.Context, id int64) (Debt, error) {
	d, ok := s.debts[id]
	if !ok {
		return Debt{}, fmt.Errorf("debt %d: %w", id, ErrNotFound)
	}
	return d, nil
}

func (s *memStore) UpdateDebt(_ context.Context, d Debt) error {
	if _, ok := s.debts[d.ID]; !ok {
		return fmt.Errorf("debt %d: %w", d.ID, ErrNotFound)
	}
	s.debts[d.ID] = d
	return nil
}

func (s *memStore) Debts(_ context.Context) ([]Debt, error) {
	return collect(s.debts, func(d Debt) int64 { return d.ID }), nil
}

func (s *memStore) Transaction(_ context.Context, id int64) (Transaction, error) {
	t, ok := s.txs[id]
	if !ok {
		return Transaction{}, fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}
	return t, nil
}

func (s *memStore) AddTransaction(_ context.Context, t Transaction) (int64, error) {
	s.nextTxID++
	t.ID = s.nextTxID
	s.txs[t.ID] = t
	return t.ID, nil
}

func (s *memStore) UpdateTransaction(_ context.Context, t Transaction) error {
	if _, ok := s.txs[t.ID]; !ok {
		return fmt.Errorf("transaction %d: %w", t.ID, ErrNotFound)
	}
	s.txs[t.ID] = t
	return nil
}

func (s *memStore) DeleteTransaction(_ context.Context, id int64) error {
	if _, ok := s.txs[id]; !ok {
		return fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}
	delete(s.txs, id)
	return nil
}

func (s *memStore) Transactions(_ context.Context) ([]Transaction, error) {
	txs := collect(s.txs, func(t Transaction) int64 { return t.ID })
	slices.SortStableFunc(txs, func(a, b Transaction) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
	return txs, nil
}

func collect[T any](m map[int64]T, id func(T) int64) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b T) int {
		switch {
		case id(a) < id(b):
			return -1
		case id(a) > id(b):
			return 1
		default:
			return 0
		}
	})
	return out
}

// Builders for common fixtures.

func testGoal(id int64, current float64) Goal {
	return Goal{ID: id, Name: "Dana Darurat", TargetAmount: IDR(10_000_000), CurrentAmount: IDR(current), TargetDate: MustParseDate("2026-12-31")}
}

func testInvestment(id int64, initial, current float64) Investment {
	return Investment{ID: id, Name: "Reksa Dana", Type: "mutual-fund", InitialAmount: IDR(initial), CurrentValue: IDR(current), PurchaseDate: MustParseDate("2024-01-15")}
}

func testDebt(id int64, typ DebtType, principal, current float64) Debt {
	status := StatusUnpaid
	if current <= 0 {
		status = StatusPaid
	}
	return Debt{ID: id, Type: typ, PersonName: "Budi", Amount: IDR(principal), CurrentAmount: IDR(current), DueDate: MustParseDate("2025-12-01"), Status: status}
}

func expense(amount float64, day, category, linkedTo string) Transaction {
	return Transaction{Type: Expense, Amount: IDR(amount), Date: MustParseDate(day), Category: category, FundSource: "Tunai", LinkedTo: linkedTo}
}

func income(amount float64, day, category, linkedTo string) Transaction {
	return Transaction{Type: Income, Amount: IDR(amount), Date: MustParseDate(day), Category: category, FundSource: "Rekening Bank", LinkedTo: linkedTo}
}
