package localdb

import (
	"context"
	"slices"

	"github.com/rafioktavian/keuanganku"
)

// The vocabularies a fresh store starts with, matching the labels the engine
// resolves for linked transactions under "Lainnya"-style free spending.
var (
	seedIncomeCategories  = []string{"Gaji", "Bonus", "Hadiah", "Lainnya"}
	seedExpenseCategories = []string{
		"Makanan & Minuman", "Transportasi", "Tagihan", "Belanja",
		"Hiburan", "Kesehatan", "Pendidikan", "Lainnya",
	}
	seedFundSources = []string{"Tunai", "Rekening Bank", "Dompet Digital", "Kartu Kredit"}
)

// seed writes the default vocabularies on first open. An emptied table is
// indistinguishable from a fresh one and is re-seeded; deleting every
// category is not a supported state.
func (s *Store) seed() error {
	if len(s.categories) == 0 {
		var id int64
		for _, name := range seedIncomeCategories {
			id++
			s.categories = append(s.categories, keuanganku.Category{ID: id, Name: name, Type: keuanganku.Income})
		}
		for _, name := range seedExpenseCategories {
			id++
			s.categories = append(s.categories, keuanganku.Category{ID: id, Name: name, Type: keuanganku.Expense})
		}
		if err := s.saveCategories(); err != nil {
			return err
		}
	}
	if len(s.fundSources) == 0 {
		for i, name := range seedFundSources {
			s.fundSources = append(s.fundSources, keuanganku.FundSource{ID: int64(i + 1), Name: name})
		}
		if err := s.saveFundSources(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Categories(_ context.Context) ([]keuanganku.Category, error) {
	return slices.Clone(s.categories), nil
}

func (s *Store) FundSources(_ context.Context) ([]keuanganku.FundSource, error) {
	return slices.Clone(s.fundSources), nil
}
