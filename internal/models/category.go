package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups cashflows and budgets, e.g. "Makan" for food expenses.
type Category struct {
	DefaultModel
	Name   string    `gorm:"uniqueIndex:category_type_name"`
	Type   Type      `json:"-"`
	TypeID uuid.UUID `gorm:"uniqueIndex:category_type_name"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)
	return tx.First(&Type{}, c.TypeID).Error
}

func (Category) Export() (json.RawMessage, error) {
	return export[Category]()
}
