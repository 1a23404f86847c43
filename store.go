package keuanganku

import (
	"context"
	"errors"
)

// ErrNotFound reports a row that does not (or no longer) exist in the store.
// Implementations wrap it so callers can test with errors.Is.
var ErrNotFound = errors.New("record not found")

// GoalStore is the slice of the on-device store holding savings goals.
type GoalStore interface {
	Goal(ctx context.Context, id int64) (Goal, error)
	UpdateGoal(ctx context.Context, g Goal) error
	Goals(ctx context.Context) ([]Goal, error)
}

// InvestmentStore is the slice of the on-device store holding positions.
type InvestmentStore interface {
	Investment(ctx context.Context, id int64) (Investment, error)
	UpdateInvestment(ctx context.Context, inv Investment) error
	Investments(ctx context.Context) ([]Investment, error)
}

// DebtStore is the slice of the on-device store holding debts and receivables.
type DebtStore interface {
	Debt(ctx context.Context, id int64) (Debt, error)
	UpdateDebt(ctx context.Context, d Debt) error
	Debts(ctx context.Context) ([]Debt, error)
}

// SatelliteStore groups the three dependent ledgers the appliers mutate.
// The engine only ever updates balance fields through it; satellite rows are
// created and deleted by direct user action outside the engine.
type SatelliteStore interface {
	GoalStore
	InvestmentStore
	DebtStore
}

// TransactionStore is the primary ledger table.
type TransactionStore interface {
	Transaction(ctx context.Context, id int64) (Transaction, error)
	AddTransaction(ctx context.Context, t Transaction) (int64, error)
	UpdateTransaction(ctx context.Context, t Transaction) error
	DeleteTransaction(ctx context.Context, id int64) error
	// Transactions returns all rows in ascending date order.
	Transactions(ctx context.Context) ([]Transaction, error)
}

// ReferenceStore holds the user's category and fund-source vocabularies.
type ReferenceStore interface {
	Categories(ctx context.Context) ([]Category, error)
	FundSources(ctx context.Context) ([]FundSource, error)
}

// Database is the full on-device store, as seen by bulk consumers such as the
// backup sink.
type Database interface {
	TransactionStore
	SatelliteStore
	ReferenceStore
}
