package localdb

import (
	"context"
	"fmt"
	"slices"

	"github.com/rafioktavian/keuanganku"
)

func (s *Store) Transaction(_ context.Context, id int64) (keuanganku.Transaction, error) {
	for _, tx := range s.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return keuanganku.Transaction{}, fmt.Errorf("transaction %d: %w", id, keuanganku.ErrNotFound)
}

func (s *Store) AddTransaction(_ context.Context, tx keuanganku.Transaction) (int64, error) {
	tx.ID = nextID(s.transactions, func(t keuanganku.Transaction) int64 { return t.ID })
	s.transactions = append(s.transactions, tx)
	if err := s.saveTransactions(); err != nil {
		return 0, err
	}
	return tx.ID, nil
}

func (s *Store) UpdateTransaction(_ context.Context, tx keuanganku.Transaction) error {
	i := slices.IndexFunc(s.transactions, func(t keuanganku.Transaction) bool { return t.ID == tx.ID })
	if i < 0 {
		return fmt.Errorf("transaction %d: %w", tx.ID, keuanganku.ErrNotFound)
	}
	s.transactions[i] = tx
	return s.saveTransactions()
}

func (s *Store) DeleteTransaction(_ context.Context, id int64) error {
	i := slices.IndexFunc(s.transactions, func(t keuanganku.Transaction) bool { return t.ID == id })
	if i < 0 {
		return fmt.Errorf("transaction %d: %w", id, keuanganku.ErrNotFound)
	}
	s.transactions = slices.Delete(s.transactions, i, i+1)
	return s.saveTransactions()
}

// Transactions returns all rows in ascending date order. Rows sharing a date
// keep their insertion order.
func (s *Store) Transactions(_ context.Context) ([]keuanganku.Transaction, error) {
	txs := slices.Clone(s.transactions)
	slices.SortStableFunc(txs, func(a, b keuanganku.Transaction) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
	return txs, nil
}
