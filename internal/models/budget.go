package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the expected spending for a category in one month.
//
// AllocatedAmount may exceed ExpectedAmount, the over-budget state is
// a display status only.
type Budget struct {
	DefaultModel
	Year            int
	Month           string
	Category        *Category           `json:"-"`
	CategoryID      *uuid.UUID          `gorm:"index"`
	ExpectedAmount  decimal.Decimal     `gorm:"type:DECIMAL(20,8)"`
	AllocatedAmount decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Month = strings.TrimSpace(b.Month)

	if b.CategoryID != nil && *b.CategoryID == uuid.Nil {
		b.CategoryID = nil
	}

	return nil
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)
	return b.checkIntegrity(tx, *b)
}

func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Budget)
	if ok && tx.Statement.Changed("CategoryID") {
		return b.checkIntegrity(tx, toSave)
	}

	return nil
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if b.Year <= 0 {
		return ErrBudgetYearInvalid
	}

	if b.Month == "" {
		return ErrBudgetMonthEmpty
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (b *Budget) checkIntegrity(tx *gorm.DB, toSave Budget) error {
	if toSave.CategoryID == nil {
		return nil
	}

	return tx.First(&Category{}, *toSave.CategoryID).Error
}

func (Budget) Export() (json.RawMessage, error) {
	return export[Budget]()
}

// BudgetRow is a budget joined with its category name.
type BudgetRow struct {
	Budget
	CategoryName string
}

// Budgets returns all budgets with their category names,
// newest period first.
func Budgets(db *gorm.DB) ([]BudgetRow, error) {
	var rows []BudgetRow

	err := db.
		Model(&Budget{}).
		Select("budgets.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = budgets.category_id AND categories.deleted_at IS NULL").
		Order("budgets.year DESC").
		Order("budgets.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
