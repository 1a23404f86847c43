package keuanganku

// TransactionType distinguishes money flowing in from money flowing out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction is a single row of the primary ledger. Amount is always
// positive; the direction is carried by Type. LinkedTo, when set, names the
// satellite entity this transaction funds or draws from, and Purpose is the
// machine classification derived from the link at record time.
type Transaction struct {
	ID          int64
	Type        TransactionType
	Amount      Money
	Date        Date
	Category    string
	FundSource  string
	Description string
	LinkedTo    string
	Purpose     Purpose
}

// Link parses the transaction's satellite reference. The second return value
// is false when the transaction is not linked to anything.
func (t Transaction) Link() (Link, bool, error) {
	if t.LinkedTo == "" {
		return Link{}, false, nil
	}
	l, err := ParseLink(t.LinkedTo)
	if err != nil {
		return Link{}, true, err
	}
	return l, true, nil
}
