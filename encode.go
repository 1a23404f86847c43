package keuanganku

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The *Record types are the wire shape shared by the on-device store and the
// bulk export sink. Amounts travel as plain decimal numbers and dates as ISO
// strings; the conversions below are the only place the mapping lives.

// TransactionRecord is the persisted form of a Transaction.
type TransactionRecord struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	FundSource  string          `json:"fundSource"`
	Description string          `json:"description"`
	LinkedTo    string          `json:"linkedTo,omitempty"`
	Purpose     string          `json:"purpose,omitempty"`
}

// Record converts a Transaction to its wire shape.
func (t Transaction) Record() TransactionRecord {
	r := TransactionRecord{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      t.Amount.Decimal(),
		Date:        t.Date.String(),
		Category:    t.Category,
		FundSource:  t.FundSource,
		Description: t.Description,
		LinkedTo:    t.LinkedTo,
	}
	if t.Purpose != Ordinary {
		r.Purpose = t.Purpose.String()
	}
	return r
}

// Transaction converts a wire record back to the domain type.
func (r TransactionRecord) Transaction() (Transaction, error) {
	day, err := ParseDate(r.Date)
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction %d: %w", r.ID, err)
	}
	purpose, err := ParsePurpose(r.Purpose)
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction %d: %w", r.ID, err)
	}
	// Rows written before the purpose tag carry only the link. Re-derive the
	// purpose from it so linked legacy rows classify like freshly recorded
	// ones; a row whose link no longer parses stays Ordinary.
	if r.Purpose == "" && r.LinkedTo != "" {
		if link, err := ParseLink(r.LinkedTo); err == nil {
			if p, err := purposeFor(link.Kind, TransactionType(r.Type)); err == nil {
				purpose = p
			}
		}
	}
	return Transaction{
		ID:          r.ID,
		Type:        TransactionType(r.Type),
		Amount:      IDR(r.Amount),
		Date:        day,
		Category:    r.Category,
		FundSource:  r.FundSource,
		Description: r.Description,
		LinkedTo:    r.LinkedTo,
		Purpose:     purpose,
	}, nil
}

// GoalRecord is the persisted form of a Goal.
type GoalRecord struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    string          `json:"targetDate"`
}

func (g Goal) Record() GoalRecord {
	return GoalRecord{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.Decimal(),
		CurrentAmount: g.CurrentAmount.Decimal(),
		TargetDate:    g.TargetDate.String(),
	}
}

func (r GoalRecord) Goal() (Goal, error) {
	day, err := ParseDate(r.TargetDate)
	if err != nil {
		return Goal{}, fmt.Errorf("goal %d: %w", r.ID, err)
	}
	return Goal{
		ID:            r.ID,
		Name:          r.Name,
		TargetAmount:  IDR(r.TargetAmount),
		CurrentAmount: IDR(r.CurrentAmount),
		TargetDate:    day,
	}, nil
}

// InvestmentRecord is the persisted form of an Investment.
type InvestmentRecord struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	InitialAmount decimal.Decimal `json:"initialAmount"`
	CurrentValue  decimal.Decimal `json:"currentValue"`
	PurchaseDate  string          `json:"purchaseDate"`
}

func (i Investment) Record() InvestmentRecord {
	return InvestmentRecord{
		ID:            i.ID,
		Name:          i.Name,
		Type:          i.Type,
		InitialAmount: i.InitialAmount.Decimal(),
		CurrentValue:  i.CurrentValue.Decimal(),
		PurchaseDate:  i.PurchaseDate.String(),
	}
}

func (r InvestmentRecord) Investment() (Investment, error) {
	day, err := ParseDate(r.PurchaseDate)
	if err != nil {
		return Investment{}, fmt.Errorf("investment %d: %w", r.ID, err)
	}
	return Investment{
		ID:            r.ID,
		Name:          r.Name,
		Type:          r.Type,
		InitialAmount: IDR(r.InitialAmount),
		CurrentValue:  IDR(r.CurrentValue),
		PurchaseDate:  day,
	}, nil
}

// DebtRecord is the persisted form of a Debt. CurrentAmount is a pointer so
// rows written before the field existed decode as nil and are migrated to the
// original principal.
type DebtRecord struct {
	ID            int64            `json:"id"`
	Type          string           `json:"type"`
	PersonName    string           `json:"personName"`
	Amount        decimal.Decimal  `json:"amount"`
	CurrentAmount *decimal.Decimal `json:"currentAmount,omitempty"`
	DueDate       string           `json:"dueDate"`
	Status        string           `json:"status"`
	Description   string           `json:"description,omitempty"`
}

func (d Debt) Record() DebtRecord {
	current := d.CurrentAmount.Decimal()
	return DebtRecord{
		ID:            d.ID,
		Type:          string(d.Type),
		PersonName:    d.PersonName,
		Amount:        d.Amount.Decimal(),
		CurrentAmount: &current,
		DueDate:       d.DueDate.String(),
		Status:        string(d.Status),
		Description:   d.Description,
	}
}

func (r DebtRecord) Debt() (Debt, error) {
	typ, err := ParseDebtType(r.Type)
	if err != nil {
		return Debt{}, fmt.Errorf("debt %d: %w", r.ID, err)
	}
	day, err := ParseDate(r.DueDate)
	if err != nil {
		return Debt{}, fmt.Errorf("debt %d: %w", r.ID, err)
	}
	// Additive migration: historical rows carry no remaining balance, it
	// defaults to the original principal.
	current := r.Amount
	if r.CurrentAmount != nil {
		current = *r.CurrentAmount
	}
	debt := Debt{
		ID:            r.ID,
		Type:          typ,
		PersonName:    r.PersonName,
		Amount:        IDR(r.Amount),
		CurrentAmount: IDR(current),
		DueDate:       day,
		Status:        DebtStatus(r.Status),
		Description:   r.Description,
	}
	if debt.Status != StatusPaid && debt.Status != StatusUnpaid {
		debt.Status = StatusUnpaid
		if !debt.CurrentAmount.IsPositive() {
			debt.Status = StatusPaid
		}
	}
	return debt, nil
}

// CategoryRecord is the persisted form of a Category.
type CategoryRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func (c Category) Record() CategoryRecord {
	return CategoryRecord{ID: c.ID, Name: c.Name, Type: string(c.Type)}
}

func (r CategoryRecord) Category() Category {
	return Category{ID: r.ID, Name: r.Name, Type: TransactionType(r.Type)}
}

// FundSourceRecord is the persisted form of a FundSource.
type FundSourceRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (f FundSource) Record() FundSourceRecord {
	return FundSourceRecord{ID: f.ID, Name: f.Name}
}

func (r FundSourceRecord) FundSource() FundSource {
	return FundSource{ID: r.ID, Name: r.Name}
}
