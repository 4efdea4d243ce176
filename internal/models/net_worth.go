package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NetWorth is an append-only snapshot of total assets and liabilities.
type NetWorth struct {
	DefaultModel
	CalculatedAt     time.Time       `gorm:"index"`
	TotalAssets      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TotalLiabilities decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	NetWorth         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (NetWorth) TableName() string {
	return "net_worth"
}

func (NetWorth) Export() (json.RawMessage, error) {
	return export[NetWorth]()
}

// NetWorthHistory returns all snapshots, newest first.
func NetWorthHistory(db *gorm.DB) ([]NetWorth, error) {
	var history []NetWorth

	err := db.
		Order("datetime(calculated_at) DESC").
		Order("created_at DESC").
		Find(&history).Error
	if err != nil {
		return nil, err
	}

	return history, nil
}

// NewNetWorthSnapshot computes a snapshot from the current state.
//
// Assets are positive liquid asset balances plus the market value of all
// investments. Liabilities are negative liquid asset balances plus the
// balances of all debts.
func NewNetWorthSnapshot(db *gorm.DB, at time.Time) (NetWorth, error) {
	var assets []LiquidAsset
	if err := db.Find(&assets).Error; err != nil {
		return NetWorth{}, err
	}

	var investments []Investment
	if err := db.Find(&investments).Error; err != nil {
		return NetWorth{}, err
	}

	var debts []Debt
	if err := db.Find(&debts).Error; err != nil {
		return NetWorth{}, err
	}

	totalAssets := decimal.Zero
	totalLiabilities := decimal.Zero

	for _, a := range assets {
		if a.Balance.IsNegative() {
			totalLiabilities = totalLiabilities.Add(a.Balance.Abs())
			continue
		}
		totalAssets = totalAssets.Add(a.Balance)
	}

	for _, i := range investments {
		totalAssets = totalAssets.Add(i.Quantity.Decimal.Mul(i.CurrentPrice.Decimal))
	}

	for _, d := range debts {
		totalLiabilities = totalLiabilities.Add(d.Balance.Decimal)
	}

	snapshot := NetWorth{
		CalculatedAt:     at.In(time.UTC),
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetWorth:         totalAssets.Sub(totalLiabilities),
	}

	err := db.Create(&snapshot).Error
	if err != nil {
		return NetWorth{}, err
	}

	return snapshot, nil
}
