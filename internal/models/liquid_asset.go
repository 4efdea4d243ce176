package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LiquidAsset is the computed balance of an account.
type LiquidAsset struct {
	DefaultModel
	Account   *Account        `json:"-"`
	AccountID *uuid.UUID      `gorm:"uniqueIndex"`
	Balance   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (LiquidAsset) Export() (json.RawMessage, error) {
	return export[LiquidAsset]()
}

// LiquidAssetRow is a liquid asset joined with the name and type
// of its account.
type LiquidAssetRow struct {
	LiquidAsset
	AccountName string
	AccountType AccountType
}

// LiquidAssets returns all liquid assets with their account details.
func LiquidAssets(db *gorm.DB) ([]LiquidAssetRow, error) {
	var rows []LiquidAssetRow

	err := db.
		Model(&LiquidAsset{}).
		Select("liquid_assets.*, accounts.name AS account_name, accounts.type AS account_type").
		Joins("LEFT JOIN accounts ON accounts.id = liquid_assets.account_id AND accounts.deleted_at IS NULL").
		Order("accounts.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// RecalculateLiquidAssets sets the balance of every account to the sum of
// its credits minus the sum of its debits.
//
// All balances are written in a single transaction.
func RecalculateLiquidAssets(db *gorm.DB) ([]LiquidAsset, error) {
	var accounts []Account
	err := db.Order("name ASC").Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	var cashflows []Cashflow
	err = db.Where("account_id IS NOT NULL").Find(&cashflows).Error
	if err != nil {
		return nil, err
	}

	balances := make(map[uuid.UUID]decimal.Decimal, len(accounts))
	for _, c := range cashflows {
		id := *c.AccountID
		balances[id] = balances[id].Add(c.Credit.Decimal).Sub(c.Debit.Decimal)
	}

	assets := make([]LiquidAsset, 0, len(accounts))
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, a := range accounts {
			id := a.ID
			balance := balances[id]

			var asset LiquidAsset
			err := tx.Where(&LiquidAsset{AccountID: &id}).Limit(1).Find(&asset).Error
			if err != nil {
				return err
			}

			if asset.ID == uuid.Nil {
				asset = LiquidAsset{AccountID: &id, Balance: balance}
				err = tx.Create(&asset).Error
			} else {
				err = tx.Model(&asset).Select("Balance").Updates(LiquidAsset{Balance: balance}).Error
			}
			if err != nil {
				return err
			}

			asset.Balance = balance
			assets = append(assets, asset)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return assets, nil
}
