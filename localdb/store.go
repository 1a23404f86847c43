// Package localdb is the on-device store: one JSON file per table under a
// data directory, loaded whole at open and rewritten whole on every change.
// The volumes of a single-user bookkeeping app stay far below where this
// hurts, and plain files keep the data inspectable and trivially backed up.
package localdb

import (
	"fmt"
	"path/filepath"

	"github.com/rafioktavian/keuanganku"
)

const (
	transactionsFile = "transactions.json"
	goalsFile        = "goals.json"
	investmentsFile  = "investments.json"
	debtsFile        = "debts.json"
	categoriesFile   = "categories.json"
	fundSourcesFile  = "fund_sources.json"
)

// Store implements keuanganku.Database over per-table JSON files.
// It is not safe for concurrent use; the app is single-user and every
// operation runs synchronously from one command invocation.
type Store struct {
	dir string

	transactions []keuanganku.Transaction
	goals        []keuanganku.Goal
	investments  []keuanganku.Investment
	debts        []keuanganku.Debt
	categories   []keuanganku.Category
	fundSources  []keuanganku.FundSource
}

// Open loads every table under dir, creating the directory and seeding the
// default category and fund-source vocabularies on first use. Historical debt
// rows without a remaining balance are migrated as they decode.
func Open(dir string) (*Store, error) {
	s := &Store{dir: dir}

	txRecords, err := readTable[keuanganku.TransactionRecord](s.path(transactionsFile))
	if err != nil {
		return nil, err
	}
	for _, r := range txRecords {
		tx, err := r.Transaction()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", transactionsFile, err)
		}
		s.transactions = append(s.transactions, tx)
	}

	goalRecords, err := readTable[keuanganku.GoalRecord](s.path(goalsFile))
	if err != nil {
		return nil, err
	}
	for _, r := range goalRecords {
		g, err := r.Goal()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", goalsFile, err)
		}
		s.goals = append(s.goals, g)
	}

	invRecords, err := readTable[keuanganku.InvestmentRecord](s.path(investmentsFile))
	if err != nil {
		return nil, err
	}
	for _, r := range invRecords {
		inv, err := r.Investment()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", investmentsFile, err)
		}
		s.investments = append(s.investments, inv)
	}

	debtRecords, err := readTable[keuanganku.DebtRecord](s.path(debtsFile))
	if err != nil {
		return nil, err
	}
	for _, r := range debtRecords {
		d, err := r.Debt()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", debtsFile, err)
		}
		s.debts = append(s.debts, d)
	}

	catRecords, err := readTable[keuanganku.CategoryRecord](s.path(categoriesFile))
	if err != nil {
		return nil, err
	}
	for _, r := range catRecords {
		s.categories = append(s.categories, r.Category())
	}

	fsRecords, err := readTable[keuanganku.FundSourceRecord](s.path(fundSourcesFile))
	if err != nil {
		return nil, err
	}
	for _, r := range fsRecords {
		s.fundSources = append(s.fundSources, r.FundSource())
	}

	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) path(file string) string { return filepath.Join(s.dir, file) }

func (s *Store) saveTransactions() error {
	return writeTable(s.path(transactionsFile), records(s.transactions, keuanganku.Transaction.Record))
}
func (s *Store) saveGoals() error {
	return writeTable(s.path(goalsFile), records(s.goals, keuanganku.Goal.Record))
}
func (s *Store) saveInvestments() error {
	return writeTable(s.path(investmentsFile), records(s.investments, keuanganku.Investment.Record))
}
func (s *Store) saveDebts() error {
	return writeTable(s.path(debtsFile), records(s.debts, keuanganku.Debt.Record))
}
func (s *Store) saveCategories() error {
	return writeTable(s.path(categoriesFile), records(s.categories, keuanganku.Category.Record))
}
func (s *Store) saveFundSources() error {
	return writeTable(s.path(fundSourcesFile), records(s.fundSources, keuanganku.FundSource.Record))
}

func records[T, R any](rows []T, record func(T) R) []R {
	out := make([]R, 0, len(rows))
	for _, row := range rows {
		out = append(out, record(row))
	}
	return out
}

var _ keuanganku.Database = (*Store)(nil)
