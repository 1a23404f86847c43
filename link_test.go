package keuanganku

import (
	"errors"
	"testing"
)

func TestParseLink(t *testing.T) {
	tests := []struct {
		in   string
		want Link
	}{
		{"goal_1", Link{LinkGoal, 1}},
		{"investment_42", Link{LinkInvestment, 42}},
		{"debt_7", Link{LinkDebt, 7}},
		{"receivable_19", Link{LinkReceivable, 19}},
	}
	for _, tt := range tests {
		got, err := ParseLink(tt.in)
		if err != nil {
			t.Errorf("ParseLink(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLink(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if got.String() != tt.in {
			t.Errorf("ParseLink(%q).String() = %q, want the input back", tt.in, got.String())
		}
	}
}

func TestParseLinkErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrInvalidLinkFormat},
		{"goal", ErrInvalidLinkFormat},
		{"goal_", ErrInvalidLinkFormat},
		{"goal_abc", ErrInvalidLinkFormat},
		{"_1", ErrInvalidLinkFormat},
		{"goal_-1", ErrInvalidLinkFormat},
		{"stock_12", ErrUnknownLinkKind},
		{"GOAL_1", ErrUnknownLinkKind},
	}
	for _, tt := range tests {
		if _, err := ParseLink(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("ParseLink(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestTransactionLink(t *testing.T) {
	tx := expense(1000, "2025-01-10", "", "goal_3")
	link, ok, err := tx.Link()
	if err != nil || !ok {
		t.Fatalf("Link() = %v, %v, %v", link, ok, err)
	}
	if link != (Link{LinkGoal, 3}) {
		t.Errorf("Link() = %v, want goal_3", link)
	}

	plain := expense(1000, "2025-01-10", "Makanan & Minuman", "")
	if _, ok, err := plain.Link(); ok || err != nil {
		t.Errorf("unlinked transaction: got ok=%v err=%v, want none", ok, err)
	}
}
