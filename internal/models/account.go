package models

import (
	"encoding/json"
	"strings"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type AccountType string

const (
	AccountTypeChecking   AccountType = "Checking"
	AccountTypeSavings    AccountType = "Savings"
	AccountTypeCredit     AccountType = "Credit"
	AccountTypeInvestment AccountType = "Investment"
)

var AccountTypes = []AccountType{
	AccountTypeChecking,
	AccountTypeSavings,
	AccountTypeCredit,
	AccountTypeInvestment,
}

// Account represents a bank, credit or investment account.
//
// Its balance is not stored on the account, see LiquidAsset.
type Account struct {
	DefaultModel
	Name string
	Type AccountType
}

// BeforeSave trims whitespace from all strings
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Type = AccountType(strings.TrimSpace(string(a.Type)))

	return nil
}

// AfterSave verifies the account after the values have been
// assigned, which also covers partial updates.
func (a *Account) AfterSave(_ *gorm.DB) error {
	if a.Name == "" {
		return ErrAccountNameEmpty
	}

	if !slices.Contains(AccountTypes, a.Type) {
		return ErrAccountTypeInvalid
	}

	return nil
}

func (Account) Export() (json.RawMessage, error) {
	return export[Account]()
}
