package keuanganku

import "fmt"

// Purpose classifies what a transaction does to the books. It is carried on
// every transaction next to the free-text category, so that satellite dispatch
// and aggregation never depend on user-editable category labels.
type Purpose int

const (
	// Ordinary is plain income or spending with no satellite effect.
	Ordinary Purpose = iota
	// GoalContribution is an expense funding a savings goal.
	GoalContribution
	// InvestmentContribution is an expense buying into an investment (a capital transfer).
	InvestmentContribution
	// InvestmentDivestment is income from a full or partial investment sale.
	InvestmentDivestment
	// DebtPayment is an expense paying down a debt.
	DebtPayment
	// ReceivablePayment is income collecting a receivable.
	ReceivablePayment
)

func (p Purpose) String() string {
	switch p {
	case Ordinary:
		return "ordinary"
	case GoalContribution:
		return "goal-contribution"
	case InvestmentContribution:
		return "investment-contribution"
	case InvestmentDivestment:
		return "investment-divestment"
	case DebtPayment:
		return "debt-payment"
	case ReceivablePayment:
		return "receivable-payment"
	default:
		return "unknown"
	}
}

// ParsePurpose parses a string into a Purpose. The empty string is Ordinary,
// so rows recorded before the purpose tag existed decode cleanly.
func ParsePurpose(s string) (Purpose, error) {
	switch s {
	case "", "ordinary":
		return Ordinary, nil
	case "goal-contribution":
		return GoalContribution, nil
	case "investment-contribution":
		return InvestmentContribution, nil
	case "investment-divestment":
		return InvestmentDivestment, nil
	case "debt-payment":
		return DebtPayment, nil
	case "receivable-payment":
		return ReceivablePayment, nil
	default:
		return 0, fmt.Errorf("unknown purpose: %q", s)
	}
}

// Category returns the canonical category label the original app assigns to
// linked transactions, or "" for Ordinary (the user keeps their own category).
func (p Purpose) Category() string {
	switch p {
	case GoalContribution:
		return "Tabungan Tujuan"
	case InvestmentContribution:
		return "Investasi"
	case InvestmentDivestment:
		return "Divestasi"
	case DebtPayment:
		return "Pembayaran Utang"
	case ReceivablePayment:
		return "Penerimaan Piutang"
	default:
		return ""
	}
}
