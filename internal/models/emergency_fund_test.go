package models_test

import (
	"github.com/moneywise/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestEmergencyFundNotFound() {
	_, found, err := models.CurrentEmergencyFund(models.DB)
	suite.Require().Nil(err)
	suite.Assert().False(found)
}

func (suite *TestSuiteStandard) TestEmergencyFundUpsert() {
	dependents := 2
	fund, err := models.UpsertEmergencyFund(models.DB, models.EmergencyFund{
		AccumulatedFunds: decimal.NewNullDecimal(decimal.NewFromInt(4000000)),
		CustomTarget:     decimal.NewNullDecimal(decimal.NewFromInt(30000000)),
		JobStability:     " Stable",
		Dependents:       &dependents,
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.JobStabilityStable, fund.JobStability)
	suite.Assert().Equal(models.DefaultRecommendedRange, fund.RecommendedRange)
	suite.Assert().True(decimal.NewFromInt(26000000).Equal(fund.FundingDeficit.Decimal))

	updated, err := models.UpsertEmergencyFund(models.DB, models.EmergencyFund{
		AccumulatedFunds: decimal.NewNullDecimal(decimal.NewFromInt(40000000)),
		CustomTarget:     decimal.NewNullDecimal(decimal.NewFromInt(30000000)),
		RecommendedRange: "6-12 months",
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(fund.ID, updated.ID)
	suite.Assert().True(updated.FundingDeficit.Decimal.IsZero())

	var count int64
	suite.Require().Nil(models.DB.Model(&models.EmergencyFund{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)

	current, found, err := models.CurrentEmergencyFund(models.DB)
	suite.Require().Nil(err)
	suite.Require().True(found)
	suite.Assert().Equal("6-12 months", current.RecommendedRange)
	suite.Assert().Nil(current.Dependents)
	suite.Assert().Equal(models.JobStabilityNone, current.JobStability)
}

func (suite *TestSuiteStandard) TestEmergencyFundValidation() {
	negative := -1

	_, err := models.UpsertEmergencyFund(models.DB, models.EmergencyFund{Dependents: &negative})
	suite.Assert().ErrorIs(err, models.ErrDependentsNegative)

	_, err = models.UpsertEmergencyFund(models.DB, models.EmergencyFund{JobStability: "freelance"})
	suite.Assert().ErrorIs(err, models.ErrJobStabilityInvalid)

	_, found, err := models.CurrentEmergencyFund(models.DB)
	suite.Require().Nil(err)
	suite.Assert().False(found)
}
