package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type DebtStrategy string

const (
	DebtStrategyNone      DebtStrategy = ""
	DebtStrategyAvalanche DebtStrategy = "avalanche"
	DebtStrategySnowball  DebtStrategy = "snowball"
)

// Debt is a loan or credit balance that is paid down over time.
type Debt struct {
	DefaultModel
	Name           string
	Balance        decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	InterestRate   decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"` // Yearly interest rate in percent
	MinimumPayment decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	DueDate        *time.Time
	Strategy       DebtStrategy
	Notes          string
}

func (d *Debt) BeforeSave(_ *gorm.DB) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Notes = strings.TrimSpace(d.Notes)
	d.Strategy = DebtStrategy(strings.ToLower(strings.TrimSpace(string(d.Strategy))))

	return nil
}

func (d *Debt) AfterSave(_ *gorm.DB) error {
	if !slices.Contains([]DebtStrategy{DebtStrategyNone, DebtStrategyAvalanche, DebtStrategySnowball}, d.Strategy) {
		return ErrDebtStrategyInvalid
	}

	return nil
}

// Pay decreases the balance by the amount paid.
//
// No payment record is kept. The amount must be positive and
// must not exceed the stored balance, which is read again in the
// same transaction as the update.
func (d *Debt) Pay(db *gorm.DB, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrDebtPaymentNotPositive
	}

	var newBalance decimal.NullDecimal
	err := db.Transaction(func(tx *gorm.DB) error {
		var current Debt
		if err := tx.First(&current, d.ID).Error; err != nil {
			return err
		}

		balance := current.Balance.Decimal
		if !current.Balance.Valid || amount.GreaterThan(balance) {
			return ErrDebtPaymentExceedsBalance
		}

		newBalance = decimal.NewNullDecimal(balance.Sub(amount))
		return tx.Model(&current).Select("Balance").Updates(Debt{Balance: newBalance}).Error
	})
	if err != nil {
		return err
	}

	d.Balance = newBalance
	return nil
}

func (Debt) Export() (json.RawMessage, error) {
	return export[Debt]()
}
