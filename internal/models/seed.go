package models

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// DefaultCategories are seeded when the configuration does not list any.
var DefaultCategories = map[string][]string{
	TypeIncome:   {"Gaji", "Bonus", "Dividen"},
	TypeExpense:  {"Makan", "Transportasi", "Tagihan", "Belanja", "Hiburan"},
	TypeTransfer: {"Tabungan", "Investasi"},
}

// Seed creates the lookup types and categories if they do not exist yet.
//
// Types and categories are read-only for API clients, this is the only
// place they are written.
func Seed(db *gorm.DB, categories map[string][]string) error {
	if len(categories) == 0 {
		categories = DefaultCategories
	}

	typeNames := []string{TypeIncome, TypeExpense, TypeTransfer}
	for _, name := range maps.Keys(categories) {
		if !slices.Contains(typeNames, name) {
			typeNames = append(typeNames, name)
		}
	}

	for _, typeName := range typeNames {
		var t Type
		err := db.Where(Type{Name: typeName}).FirstOrCreate(&t).Error
		if err != nil {
			return fmt.Errorf("seeding type %s: %w", typeName, err)
		}

		for _, categoryName := range categories[typeName] {
			err := db.Where(Category{Name: categoryName, TypeID: t.ID}).FirstOrCreate(&Category{}).Error
			if err != nil {
				return fmt.Errorf("seeding category %s: %w", categoryName, err)
			}
		}
	}

	return nil
}
