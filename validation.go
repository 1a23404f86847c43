package keuanganku

import (
	"errors"
	"fmt"
)

// Validate checks a transaction draft and returns a copy with quick fixes
// applied (a zero date becomes today), or an error describing the first
// failure. Validation is purely local: it rejects the draft before any store
// write, so a rejected draft has no partial effect.
func (t Transaction) Validate() (Transaction, error) {
	if t.Type != Income && t.Type != Expense {
		return t, fmt.Errorf("transaction type must be %q or %q, got %q", Income, Expense, t.Type)
	}
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.Date.IsZero() {
		t.Date = Today()
	}
	if t.FundSource == "" {
		return t, errors.New("transaction fund source is missing")
	}
	if t.LinkedTo == "" && t.Category == "" {
		// Linked drafts get their category from the link kind.
		return t, errors.New("transaction category is missing")
	}
	if t.LinkedTo != "" {
		if _, err := ParseLink(t.LinkedTo); err != nil {
			return t, err
		}
	}
	return t, nil
}
