package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type JobStability string

const (
	JobStabilityNone     JobStability = ""
	JobStabilityStable   JobStability = "stable"
	JobStabilityModerate JobStability = "moderate"
	JobStabilityUnstable JobStability = "unstable"
)

// DefaultRecommendedRange is used when no range is specified.
const DefaultRecommendedRange = "3-6 months"

// EmergencyFund is the savings buffer for unexpected expenses.
//
// There is at most one emergency fund, it is written with Upsert.
type EmergencyFund struct {
	DefaultModel
	AccumulatedFunds decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	CustomTarget     decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	MonthlyExpenses  decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	JobStability     JobStability
	Dependents       *int
	RecommendedRange string
	FundingDeficit   decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
}

func (e *EmergencyFund) BeforeSave(_ *gorm.DB) error {
	e.JobStability = JobStability(strings.ToLower(strings.TrimSpace(string(e.JobStability))))
	e.RecommendedRange = strings.TrimSpace(e.RecommendedRange)

	if e.RecommendedRange == "" {
		e.RecommendedRange = DefaultRecommendedRange
	}

	return nil
}

func (e *EmergencyFund) AfterSave(_ *gorm.DB) error {
	if !slices.Contains([]JobStability{JobStabilityNone, JobStabilityStable, JobStabilityModerate, JobStabilityUnstable}, e.JobStability) {
		return ErrJobStabilityInvalid
	}

	if e.Dependents != nil && *e.Dependents < 0 {
		return ErrDependentsNegative
	}

	return nil
}

func (EmergencyFund) Export() (json.RawMessage, error) {
	return export[EmergencyFund]()
}

// CurrentEmergencyFund returns the emergency fund.
//
// found is false when the fund has not been set up yet, which is
// not an error.
func CurrentEmergencyFund(db *gorm.DB) (fund EmergencyFund, found bool, err error) {
	tx := db.Order("created_at ASC").Limit(1).Find(&fund)
	if tx.Error != nil {
		return EmergencyFund{}, false, tx.Error
	}

	return fund, tx.RowsAffected > 0, nil
}

// UpsertEmergencyFund replaces the content of the emergency fund,
// creating it if it does not exist yet.
//
// The funding deficit is computed from the values passed in, never
// from stored state.
func UpsertEmergencyFund(db *gorm.DB, fund EmergencyFund) (EmergencyFund, error) {
	target := fund.CustomTarget.Decimal
	accumulated := fund.AccumulatedFunds.Decimal
	fund.FundingDeficit = decimal.NewNullDecimal(decimal.Max(decimal.Zero, target.Sub(accumulated)))

	err := db.Transaction(func(tx *gorm.DB) error {
		current, found, err := CurrentEmergencyFund(tx)
		if err != nil {
			return err
		}

		if !found {
			return tx.Create(&fund).Error
		}

		fund.DefaultModel = current.DefaultModel
		return tx.Save(&fund).Error
	})
	if err != nil {
		return EmergencyFund{}, err
	}

	return fund, nil
}
