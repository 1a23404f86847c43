package keuanganku

import (
	"context"
	"testing"
)

func TestApplyReverseGoal(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.goals[1] = testGoal(1, 350_000)

	if err := ApplyReverse(ctx, store, expense(100_000, "2025-07-01", "", "goal_1")); err != nil {
		t.Fatal(err)
	}
	if got := store.goals[1].CurrentAmount; !got.Equal(IDR(250_000)) {
		t.Errorf("goal balance = %s, want %s", got, IDR(250_000))
	}
}

func TestApplyReverseGoalGoesNegative(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.goals[1] = testGoal(1, 50_000)

	// The goal was adjusted downward after the contribution; the reversal
	// still subtracts the full amount rather than clamping.
	if err := ApplyReverse(ctx, store, expense(100_000, "2025-07-01", "", "goal_1")); err != nil {
		t.Fatal(err)
	}
	if got := store.goals[1].CurrentAmount; !got.Equal(IDR(-50_000)) {
		t.Errorf("goal balance = %s, want %s", got, IDR(-50_000))
	}
}

func TestApplyReverseDivestment(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	// Post-sale state of selling 600 out of {basis 1000, value 1500}.
	store.investments[5] = testInvestment(5, 600, 900)

	if err := ApplyReverse(ctx, store, income(600, "2025-07-03", "", "investment_5")); err != nil {
		t.Fatal(err)
	}
	inv := store.investments[5]
	if !inv.InitialAmount.Equal(IDR(1000)) {
		t.Errorf("cost basis = %s, want %s restored", inv.InitialAmount, IDR(1000))
	}
	if !inv.CurrentValue.Equal(IDR(1500)) {
		t.Errorf("current value = %s, want %s restored", inv.CurrentValue, IDR(1500))
	}
}

func TestApplyReverseFullLiquidation(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	// Selling the whole position left nothing; the pre-sale basis is gone and
	// the reversal falls back to basis + proceeds.
	store.investments[5] = testInvestment(5, 0, 0)

	if err := ApplyReverse(ctx, store, income(1500, "2025-07-03", "", "investment_5")); err != nil {
		t.Fatal(err)
	}
	inv := store.investments[5]
	if !inv.InitialAmount.Equal(IDR(1500)) {
		t.Errorf("cost basis = %s, want the %s approximation", inv.InitialAmount, IDR(1500))
	}
	if !inv.CurrentValue.Equal(IDR(1500)) {
		t.Errorf("current value = %s, want %s", inv.CurrentValue, IDR(1500))
	}
}

func TestApplyReverseDebt(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.debts[3] = testDebt(3, DebtOwed, 500_000, 0)

	if err := ApplyReverse(ctx, store, expense(500_000, "2025-07-04", "", "debt_3")); err != nil {
		t.Fatal(err)
	}
	d := store.debts[3]
	if !d.CurrentAmount.Equal(IDR(500_000)) {
		t.Errorf("outstanding = %s, want %s", d.CurrentAmount, IDR(500_000))
	}
	if d.Status != StatusUnpaid {
		t.Errorf("status = %q, want %q after restoring a balance", d.Status, StatusUnpaid)
	}
}

func TestApplyReverseMissingSatellite(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	if err := ApplyReverse(ctx, store, expense(100_000, "2025-07-07", "", "goal_99")); err != nil {
		t.Fatalf("dangling link must not fail the deletion: %v", err)
	}
}

// Forward followed by reverse of the same transaction restores each satellite
// to its starting state, including the proportional cost basis of a partial
// divestment.
func TestForwardReverseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		seed func(*memStore)
		tx   Transaction
	}{
		{"goal contribution", func(s *memStore) { s.goals[1] = testGoal(1, 250_000) },
			expense(100_000, "2025-07-01", "", "goal_1")},
		{"investment contribution", func(s *memStore) { s.investments[5] = testInvestment(5, 1_000_000, 1_200_000) },
			expense(300_000, "2025-07-02", "", "investment_5")},
		{"partial divestment", func(s *memStore) { s.investments[5] = testInvestment(5, 1000, 1500) },
			income(600, "2025-07-03", "", "investment_5")},
		{"debt payment", func(s *memStore) { s.debts[3] = testDebt(3, DebtOwed, 500_000, 300_000) },
			expense(150_000, "2025-07-04", "", "debt_3")},
		{"receivable payment", func(s *memStore) { s.debts[8] = testDebt(8, DebtReceivable, 400_000, 400_000) },
			income(400_000, "2025-07-05", "", "receivable_8")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := newMemStore()
			tt.seed(store)
			g0, i0, d0 := store.goals[1], store.investments[5], store.debts[3]
			r0 := store.debts[8]

			applied, err := ApplyForward(ctx, store, tt.tx)
			if err != nil {
				t.Fatal(err)
			}
			if err := ApplyReverse(ctx, store, applied); err != nil {
				t.Fatal(err)
			}

			if g, ok := store.goals[1]; ok && !g.CurrentAmount.Equal(g0.CurrentAmount) {
				t.Errorf("goal balance = %s, want %s", g.CurrentAmount, g0.CurrentAmount)
			}
			if i, ok := store.investments[5]; ok {
				if !i.InitialAmount.Equal(i0.InitialAmount) || !i.CurrentValue.Equal(i0.CurrentValue) {
					t.Errorf("investment = %s/%s, want %s/%s", i.InitialAmount, i.CurrentValue, i0.InitialAmount, i0.CurrentValue)
				}
			}
			if d, ok := store.debts[3]; ok {
				if !d.CurrentAmount.Equal(d0.CurrentAmount) || d.Status != d0.Status {
					t.Errorf("debt = %s/%s, want %s/%s", d.CurrentAmount, d.Status, d0.CurrentAmount, d0.Status)
				}
			}
			if r, ok := store.debts[8]; ok {
				if !r.CurrentAmount.Equal(r0.CurrentAmount) || r.Status != r0.Status {
					t.Errorf("receivable = %s/%s, want %s/%s", r.CurrentAmount, r.Status, r0.CurrentAmount, r0.Status)
				}
			}
		})
	}
}
