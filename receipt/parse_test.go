package receipt

import (
	"strings"
	"testing"

	"github.com/rafioktavian/keuanganku"
	"github.com/shopspring/decimal"
)

func TestParseDraft(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Draft
	}{
		{
			"bare object",
			`{"type":"expense","amount":47500,"date":"2025-07-14","category":"Makanan & Minuman","description":"Warung Padang Sederhana","fundSource":"Tunai"}`,
			Draft{IsIncome: false, Amount: decimal.NewFromInt(47500), Date: "2025-07-14", Category: "Makanan & Minuman", Description: "Warung Padang Sederhana", FundSource: "Tunai"},
		},
		{
			"fenced reply",
			"```json\n{\"type\":\"income\",\"amount\":5000000,\"date\":\"2025-07-25\",\"category\":\"Gaji\",\"description\":\"Gaji Bulanan\"}\n```",
			Draft{IsIncome: true, Amount: decimal.NewFromInt(5000000), Date: "2025-07-25", Category: "Gaji", Description: "Gaji Bulanan"},
		},
		{
			"prose around the object",
			`Here is the extracted transaction: {"type":"expense","amount":"12345.50","category":"Belanja","description":"Indomaret"} Let me know if you need anything else.`,
			Draft{Amount: decimal.RequireFromString("12345.50"), Category: "Belanja", Description: "Indomaret"},
		},
		{
			"decimal amount",
			`{"type":"expense","amount":12345.5,"category":"Belanja","description":"Indomaret"}`,
			Draft{Amount: decimal.RequireFromString("12345.5"), Category: "Belanja", Description: "Indomaret"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDraft(tt.raw)
			if err != nil {
				t.Fatal(err)
			}
			if got.IsIncome != tt.want.IsIncome || !got.Amount.Equal(tt.want.Amount) ||
				got.Date != tt.want.Date || got.Category != tt.want.Category ||
				got.Description != tt.want.Description || got.FundSource != tt.want.FundSource {
				t.Errorf("parseDraft = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseDraftErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "sorry, I cannot read this image"},
		{"missing amount", `{"type":"expense","category":"Belanja"}`},
		{"non-numeric amount", `{"type":"expense","amount":"Rp47.500"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseDraft(tt.raw); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDraftTransaction(t *testing.T) {
	d := Draft{
		IsIncome:    false,
		Amount:      decimal.NewFromInt(47500),
		Date:        "2025-07-14",
		Category:    "Makanan & Minuman",
		Description: "Warung Padang Sederhana",
		FundSource:  "Tunai",
	}
	tx := d.Transaction()
	if tx.Type != keuanganku.Expense {
		t.Errorf("type = %q, want expense", tx.Type)
	}
	if !tx.Amount.Equal(keuanganku.IDR(47_500)) {
		t.Errorf("amount = %s, want %s", tx.Amount, keuanganku.IDR(47_500))
	}
	if tx.Date != keuanganku.MustParseDate("2025-07-14") {
		t.Errorf("date = %s, want 2025-07-14", tx.Date)
	}

	// No readable date on the receipt: the draft defaults to today.
	d.Date = ""
	if got := d.Transaction().Date; got != keuanganku.Today() {
		t.Errorf("date = %s, want today", got)
	}
}

func TestBuildPromptListsVocabulary(t *testing.T) {
	vocab := Vocabulary{
		IncomeCategories:  []string{"Gaji", "Bonus"},
		ExpenseCategories: []string{"Makanan & Minuman", "Transportasi"},
		FundSources:       []string{"Tunai", "Rekening Bank"},
	}
	prompt := buildPrompt(vocab)
	for _, want := range []string{"Gaji, Bonus", "Makanan & Minuman, Transportasi", "Tunai, Rekening Bank"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt is missing %q", want)
		}
	}
}
