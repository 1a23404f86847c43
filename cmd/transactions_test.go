package cmd

import (
	"testing"

	"github.com/rafioktavian/keuanganku"
)

func TestTxFlagsDraft(t *testing.T) {
	p := txFlags{
		typ:         "expense",
		amount:      "47500.50",
		date:        "2025-07-14",
		category:    "Makanan & Minuman",
		fundSource:  "Tunai",
		description: "Warung Padang",
	}
	draft, err := p.draft()
	if err != nil {
		t.Fatal(err)
	}
	if draft.Type != keuanganku.Expense {
		t.Errorf("type = %q, want expense", draft.Type)
	}
	if draft.Amount.Decimal().String() != "47500.5" {
		t.Errorf("amount = %s, want 47500.5", draft.Amount.Decimal())
	}
	if draft.Date != keuanganku.MustParseDate("2025-07-14") {
		t.Errorf("date = %s, want 2025-07-14", draft.Date)
	}
}

func TestTxFlagsDraftZeroDate(t *testing.T) {
	p := txFlags{typ: "income", amount: "100"}
	draft, err := p.draft()
	if err != nil {
		t.Fatal(err)
	}
	// The engine substitutes today for a zero date at validation time.
	if !draft.Date.IsZero() {
		t.Errorf("date = %s, want zero", draft.Date)
	}
}

func TestTxFlagsDraftErrors(t *testing.T) {
	for _, p := range []txFlags{
		{typ: "expense", amount: "Rp47.500"},
		{typ: "expense", amount: ""},
		{typ: "expense", amount: "100", date: "14/07/2025"},
	} {
		if _, err := p.draft(); err == nil {
			t.Errorf("draft %+v: expected error", p)
		}
	}
}

func TestParseAmount(t *testing.T) {
	m, err := parseAmount("1500000")
	if err != nil {
		t.Fatal(err)
	}
	if !m.Equal(keuanganku.IDR(1_500_000)) {
		t.Errorf("parseAmount = %s, want %s", m, keuanganku.IDR(1_500_000))
	}
	if _, err := parseAmount("sejuta"); err == nil {
		t.Error("expected error for non-numeric amount")
	}
}
