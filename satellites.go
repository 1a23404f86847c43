package keuanganku

import "fmt"

// Goal is a savings goal. CurrentAmount is the running sum of all linked
// contributions; it may exceed TargetAmount, there is no clamp.
type Goal struct {
	ID            int64
	Name          string
	TargetAmount  Money
	CurrentAmount Money
	TargetDate    Date
}

// Investment is a position with a cost basis (InitialAmount) and a market
// value (CurrentValue). The mark is updated manually by the user; linked
// contributions and divestments move both fields.
type Investment struct {
	ID            int64
	Name          string
	Type          string
	InitialAmount Money
	CurrentValue  Money
	PurchaseDate  Date
}

// DebtType tells a debt (money the user owes) from a receivable (money owed
// to the user).
type DebtType string

const (
	DebtOwed       DebtType = "debt"
	DebtReceivable DebtType = "receivable"
)

// ParseDebtType parses a string into a DebtType.
func ParseDebtType(s string) (DebtType, error) {
	switch DebtType(s) {
	case DebtOwed:
		return DebtOwed, nil
	case DebtReceivable:
		return DebtReceivable, nil
	default:
		return "", fmt.Errorf("unknown debt type: %q", s)
	}
}

// DebtStatus is derived from the remaining balance: paid iff it reached zero.
type DebtStatus string

const (
	StatusUnpaid DebtStatus = "unpaid"
	StatusPaid   DebtStatus = "paid"
)

// Debt is a debt or receivable. Amount is the original principal and never
// changes; CurrentAmount is the remaining balance, moved only by linked
// payments and their reversals.
type Debt struct {
	ID            int64
	Type          DebtType
	PersonName    string
	Amount        Money
	CurrentAmount Money
	DueDate       Date
	Status        DebtStatus
	Description   string
}

// linkKind returns the link kind a payment against this row must carry.
func (d Debt) linkKind() LinkKind {
	if d.Type == DebtReceivable {
		return LinkReceivable
	}
	return LinkDebt
}

// Category is a named transaction category, typed income or expense.
type Category struct {
	ID   int64
	Name string
	Type TransactionType
}

// FundSource is a named source of funds (cash, bank account, e-wallet...).
type FundSource struct {
	ID   int64
	Name string
}
