package receipt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// parseDraft decodes the model's reply. The reply is supposed to be a bare
// JSON object but models wrap it in fences or prose often enough that the
// text is cleaned first, and fields are plucked individually so one malformed
// field does not sink the whole guess.
func parseDraft(raw string) (Draft, error) {
	clean := cleanModelJSON(raw)

	var jobj any
	if err := json.Unmarshal([]byte(clean), &jobj); err != nil {
		return Draft{}, fmt.Errorf("receipt extraction: malformed reply: %w", err)
	}

	amount, err := numberAt(jobj, "$.amount")
	if err != nil {
		return Draft{}, fmt.Errorf("receipt extraction: %w", err)
	}
	d := Draft{
		IsIncome:    stringAt(jobj, "$.type") == "income",
		Amount:      amount,
		Date:        stringAt(jobj, "$.date"),
		Category:    stringAt(jobj, "$.category"),
		Description: stringAt(jobj, "$.description"),
		FundSource:  stringAt(jobj, "$.fundSource"),
	}
	return d, nil
}

// cleanModelJSON strips Markdown fences and surrounding prose, keeping the
// outermost JSON object.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}

func stringAt(jobj any, path string) string {
	v, err := jsonpath.Get(path, jobj)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func numberAt(jobj any, path string) (decimal.Decimal, error) {
	v, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("no %s in reply", path)
	}
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		// Some replies quote the number anyway.
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%s is not a number: %q", path, n)
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%s is not a number: %v", path, v)
	}
}
