package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Investment is a position in a stock, fund, bond or similar asset.
type Investment struct {
	DefaultModel
	Symbol       string
	Name         string
	Type         string
	Platform     string
	Sector       string
	Quantity     decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	BuyPrice     decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	CurrentPrice decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	Currency     string              // ISO 4217 code, e.g. IDR
}

func (i *Investment) BeforeSave(_ *gorm.DB) error {
	i.Symbol = strings.ToUpper(strings.TrimSpace(i.Symbol))
	i.Name = strings.TrimSpace(i.Name)
	i.Type = strings.TrimSpace(i.Type)
	i.Platform = strings.TrimSpace(i.Platform)
	i.Sector = strings.TrimSpace(i.Sector)
	i.Currency = strings.ToUpper(strings.TrimSpace(i.Currency))

	return nil
}

func (i *Investment) AfterSave(_ *gorm.DB) error {
	if i.Currency != "" && len(i.Currency) != 3 {
		return ErrInvestmentCurrency
	}

	return nil
}

func (Investment) Export() (json.RawMessage, error) {
	return export[Investment]()
}
