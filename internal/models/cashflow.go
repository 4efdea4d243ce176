package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cashflow is a single dated transaction with either a credit or a debit.
//
// Month is a denormalized, localized month label for Date.
type Cashflow struct {
	DefaultModel
	Date        time.Time
	Month       string
	Credit      decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	Debit       decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	Description string
	Account     *Account   `json:"-"`
	AccountID   *uuid.UUID `gorm:"index"`
	Category    *Category  `json:"-"`
	CategoryID  *uuid.UUID
	Type        *Type `json:"-"`
	TypeID      *uuid.UUID
}

func (c *Cashflow) BeforeSave(_ *gorm.DB) error {
	c.Description = strings.TrimSpace(c.Description)
	c.Month = strings.TrimSpace(c.Month)
	c.Date = c.Date.In(time.UTC)

	// References are nil, not a pointer to the nil UUID
	for _, id := range []**uuid.UUID{&c.AccountID, &c.CategoryID, &c.TypeID} {
		if *id != nil && **id == uuid.Nil {
			*id = nil
		}
	}

	return nil
}

func (c *Cashflow) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)
	return c.checkIntegrity(tx, *c)
}

func (c *Cashflow) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Cashflow)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("AccountID", "CategoryID", "TypeID") {
		return c.checkIntegrity(tx, toSave)
	}

	return nil
}

func (c *Cashflow) AfterSave(_ *gorm.DB) error {
	if c.Date.IsZero() {
		return ErrCashflowDateEmpty
	}

	if c.Credit.Valid && c.Debit.Valid && !c.Credit.Decimal.IsZero() && !c.Debit.Decimal.IsZero() {
		return ErrCashflowCreditAndDebit
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (c *Cashflow) checkIntegrity(tx *gorm.DB, toSave Cashflow) error {
	if toSave.AccountID != nil {
		if err := tx.First(&Account{}, *toSave.AccountID).Error; err != nil {
			return err
		}
	}

	if toSave.CategoryID != nil {
		if err := tx.First(&Category{}, *toSave.CategoryID).Error; err != nil {
			return err
		}
	}

	if toSave.TypeID != nil {
		if err := tx.First(&Type{}, *toSave.TypeID).Error; err != nil {
			return err
		}
	}

	return nil
}

func (Cashflow) Export() (json.RawMessage, error) {
	return export[Cashflow]()
}

// CashflowRow is a cashflow joined with the display names of the
// resources it references.
type CashflowRow struct {
	Cashflow
	AccountName  string
	CategoryName string
	TypeName     string
}

// Cashflows returns all cashflows with their display names, newest first.
func Cashflows(db *gorm.DB) ([]CashflowRow, error) {
	var rows []CashflowRow

	err := db.
		Model(&Cashflow{}).
		Select("cashflows.*, accounts.name AS account_name, categories.name AS category_name, types.name AS type_name").
		Joins("LEFT JOIN accounts ON accounts.id = cashflows.account_id AND accounts.deleted_at IS NULL").
		Joins("LEFT JOIN categories ON categories.id = cashflows.category_id AND categories.deleted_at IS NULL").
		Joins("LEFT JOIN types ON types.id = cashflows.type_id AND types.deleted_at IS NULL").
		Order("datetime(cashflows.date) DESC").
		Order("cashflows.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
