// Package receipt turns a photographed receipt, invoice or salary slip into
// a pre-filled transaction draft using a vision model. The guess is always
// reviewed by the user before it is recorded; an extraction failure is a
// recoverable error, never ledger corruption, because it happens strictly
// before any write.
package receipt

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"github.com/rafioktavian/keuanganku"
)

// ModelName is the vision model used for extraction.
const ModelName = "gemini-2.5-flash"

// Vocabulary is the caller's current category and fund-source names; the
// model is constrained to pick from these.
type Vocabulary struct {
	IncomeCategories  []string
	ExpenseCategories []string
	FundSources       []string
}

// Draft is the model's best-effort guess at the transaction on the image.
// Every field may be wrong; the user can override all of them.
type Draft struct {
	IsIncome    bool
	Amount      decimal.Decimal
	Date        string
	Category    string
	Description string
	FundSource  string
}

// Transaction converts the guess to a transaction draft. A missing or
// unparseable date falls back to today.
func (d Draft) Transaction() keuanganku.Transaction {
	typ := keuanganku.Expense
	if d.IsIncome {
		typ = keuanganku.Income
	}
	day, err := keuanganku.ParseDate(d.Date)
	if err != nil {
		day = keuanganku.Today()
	}
	return keuanganku.Transaction{
		Type:        typ,
		Amount:      keuanganku.IDR(d.Amount),
		Date:        day,
		Category:    d.Category,
		FundSource:  d.FundSource,
		Description: d.Description,
	}
}

// Extractor calls the vision model.
type Extractor struct {
	client *genai.Client
	model  string
}

// NewExtractor creates an extractor. Credentials come from the environment
// (GEMINI_API_KEY), resolved by the client itself.
func NewExtractor(ctx context.Context) (*Extractor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Extractor{client: client, model: ModelName}, nil
}

// Extract sends the image to the model and parses its reply into a Draft.
func (e *Extractor) Extract(ctx context.Context, image []byte, mimeType string, vocab Vocabulary) (Draft, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildPrompt(vocab)},
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     image,
					},
				},
			},
		},
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, nil)
	if err != nil {
		return Draft{}, fmt.Errorf("receipt extraction: %w", err)
	}
	raw := resp.Text()
	if raw == "" {
		return Draft{}, fmt.Errorf("receipt extraction: empty response from model")
	}
	return parseDraft(raw)
}

func buildPrompt(vocab Vocabulary) string {
	var b strings.Builder
	b.WriteString("You are a financial assistant expert in analyzing receipts, invoices, and salary slips.\n")
	b.WriteString("Analyze the attached image and extract the transaction details.\n\n")
	b.WriteString("Output STRICT JSON only (no comments, no extra text) with these fields:\n")
	b.WriteString("- \"type\": \"income\" or \"expense\"\n")
	b.WriteString("- \"amount\": number, the final total in Rupiah (Rp12.345,50 becomes 12345.50)\n")
	b.WriteString("- \"date\": string, ISO format \"YYYY-MM-DD\"; if no date is visible, leave it empty\n")
	b.WriteString("- \"category\": string, one of the predefined categories below\n")
	b.WriteString("- \"description\": string, short and clear (the store name, or \"Gaji Bulanan\")\n")
	b.WriteString("- \"fundSource\": string, one of the predefined sources if the payment method is visible, otherwise empty\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- A salary slip is income; a store receipt or invoice is expense.\n")
	b.WriteString("- The category MUST come from the matching list; when ambiguous use \"Lainnya\".\n")
	fmt.Fprintf(&b, "- Income categories: %s\n", strings.Join(vocab.IncomeCategories, ", "))
	fmt.Fprintf(&b, "- Expense categories: %s\n", strings.Join(vocab.ExpenseCategories, ", "))
	fmt.Fprintf(&b, "- Fund sources: %s\n\n", strings.Join(vocab.FundSources, ", "))
	b.WriteString("Return ONLY valid raw JSON.\n")
	b.WriteString("Do NOT wrap the response in code fences.\n")
	b.WriteString("Output must begin with \"{\" and end with \"}\".\n")
	return b.String()
}
