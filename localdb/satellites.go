package localdb

import (
	"context"
	"fmt"
	"slices"

	"github.com/rafioktavian/keuanganku"
)

func (s *Store) Goal(_ context.Context, id int64) (keuanganku.Goal, error) {
	for _, g := range s.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return keuanganku.Goal{}, fmt.Errorf("goal %d: %w", id, keuanganku.ErrNotFound)
}

func (s *Store) AddGoal(_ context.Context, g keuanganku.Goal) (int64, error) {
	g.ID = nextID(s.goals, func(g keuanganku.Goal) int64 { return g.ID })
	s.goals = append(s.goals, g)
	if err := s.saveGoals(); err != nil {
		return 0, err
	}
	return g.ID, nil
}

func (s *Store) UpdateGoal(_ context.Context, g keuanganku.Goal) error {
	i := slices.IndexFunc(s.goals, func(x keuanganku.Goal) bool { return x.ID == g.ID })
	if i < 0 {
		return fmt.Errorf("goal %d: %w", g.ID, keuanganku.ErrNotFound)
	}
	s.goals[i] = g
	return s.saveGoals()
}

func (s *Store) DeleteGoal(_ context.Context, id int64) error {
	i := slices.IndexFunc(s.goals, func(x keuanganku.Goal) bool { return x.ID == id })
	if i < 0 {
		return fmt.Errorf("goal %d: %w", id, keuanganku.ErrNotFound)
	}
	s.goals = slices.Delete(s.goals, i, i+1)
	return s.saveGoals()
}

func (s *Store) Goals(_ context.Context) ([]keuanganku.Goal, error) {
	return slices.Clone(s.goals), nil
}

func (s *Store) Investment(_ context.Context, id int64) (keuanganku.Investment, error) {
	for _, inv := range s.investments {
		if inv.ID == id {
			return inv, nil
		}
	}
	return keuanganku.Investment{}, fmt.Errorf("investment %d: %w", id, keuanganku.ErrNotFound)
}

func (s *Store) AddInvestment(_ context.Context, inv keuanganku.Investment) (int64, error) {
	inv.ID = nextID(s.investments, func(i keuanganku.Investment) int64 { return i.ID })
	s.investments = append(s.investments, inv)
	if err := s.saveInvestments(); err != nil {
		return 0, err
	}
	return inv.ID, nil
}

func (s *Store) UpdateInvestment(_ context.Context, inv keuanganku.Investment) error {
	i := slices.IndexFunc(s.investments, func(x keuanganku.Investment) bool { return x.ID == inv.ID })
	if i < 0 {
		return fmt.Errorf("investment %d: %w", inv.ID, keuanganku.ErrNotFound)
	}
	s.investments[i] = inv
	return s.saveInvestments()
}

func (s *Store) DeleteInvestment(_ context.Context, id int64) error {
	i := slices.IndexFunc(s.investments, func(x keuanganku.Investment) bool { return x.ID == id })
	if i < 0 {
		return fmt.Errorf("investment %d: %w", id, keuanganku.ErrNotFound)
	}
	s.investments = slices.Delete(s.investments, i, i+1)
	return s.saveInvestments()
}

func (s *Store) Investments(_ context.Context) ([]keuanganku.Investment, error) {
	return slices.Clone(s.investments), nil
}

func (s *Store) Debt(_ context.Context, id int64) (keuanganku.Debt, error) {
	for _, d := range s.debts {
		if d.ID == id {
			return d, nil
		}
	}
	return keuanganku.Debt{}, fmt.Errorf("debt %d: %w", id, keuanganku.ErrNotFound)
}

func (s *Store) AddDebt(_ context.Context, d keuanganku.Debt) (int64, error) {
	d.ID = nextID(s.debts, func(d keuanganku.Debt) int64 { return d.ID })
	s.debts = append(s.debts, d)
	if err := s.saveDebts(); err != nil {
		return 0, err
	}
	return d.ID, nil
}

func (s *Store) UpdateDebt(_ context.Context, d keuanganku.Debt) error {
	i := slices.IndexFunc(s.debts, func(x keuanganku.Debt) bool { return x.ID == d.ID })
	if i < 0 {
		return fmt.Errorf("debt %d: %w", d.ID, keuanganku.ErrNotFound)
	}
	s.debts[i] = d
	return s.saveDebts()
}

func (s *Store) DeleteDebt(_ context.Context, id int64) error {
	i := slices.IndexFunc(s.debts, func(x keuanganku.Debt) bool { return x.ID == id })
	if i < 0 {
		return fmt.Errorf("debt %d: %w", id, keuanganku.ErrNotFound)
	}
	s.debts = slices.Delete(s.debts, i, i+1)
	return s.saveDebts()
}

func (s *Store) Debts(_ context.Context) ([]keuanganku.Debt, error) {
	return slices.Clone(s.debts), nil
}
