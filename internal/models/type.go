package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// Type classifies categories and cashflows as income, expense or transfer.
type Type struct {
	DefaultModel
	Name string `gorm:"uniqueIndex"`
}

// The types every installation starts with
const (
	TypeIncome   = "Income"
	TypeExpense  = "Expense"
	TypeTransfer = "Transfer"
)

func (t *Type) BeforeSave(_ *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)
	return nil
}

func (Type) Export() (json.RawMessage, error) {
	return export[Type]()
}
