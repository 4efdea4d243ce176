package models_test

import (
	"time"

	"github.com/moneywise/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestNewNetWorthSnapshot() {
	bca := suite.createTestAccount(models.Account{Name: "BCA"})
	card := suite.createTestAccount(models.Account{Name: "Kartu Kredit", Type: models.AccountTypeCredit})

	_ = suite.createTestCashflow(models.Cashflow{AccountID: &bca.ID, Credit: decimal.NewNullDecimal(decimal.NewFromInt(5000))})
	_ = suite.createTestCashflow(models.Cashflow{AccountID: &card.ID, Debit: decimal.NewNullDecimal(decimal.NewFromInt(300))})
	_, err := models.RecalculateLiquidAssets(models.DB)
	suite.Require().Nil(err)

	suite.Require().Nil(models.DB.Create(&models.Investment{
		Symbol:       "BBCA",
		Quantity:     decimal.NewNullDecimal(decimal.NewFromInt(10)),
		CurrentPrice: decimal.NewNullDecimal(decimal.NewFromInt(100)),
	}).Error)

	_ = suite.createTestDebt(models.Debt{Name: "KTA", Balance: decimal.NewNullDecimal(decimal.NewFromInt(1200))})
	_ = suite.createTestDebt(models.Debt{Name: "Unknown balance"})

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	snapshot, err := models.NewNetWorthSnapshot(models.DB, at)
	suite.Require().Nil(err)

	suite.Assert().True(decimal.NewFromInt(6000).Equal(snapshot.TotalAssets), snapshot.TotalAssets.String())
	suite.Assert().True(decimal.NewFromInt(1500).Equal(snapshot.TotalLiabilities), snapshot.TotalLiabilities.String())
	suite.Assert().True(decimal.NewFromInt(4500).Equal(snapshot.NetWorth), snapshot.NetWorth.String())
	suite.Assert().Equal(at, snapshot.CalculatedAt)
}

func (suite *TestSuiteStandard) TestNetWorthHistoryOrder() {
	first, err := models.NewNetWorthSnapshot(models.DB, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	suite.Require().Nil(err)

	second, err := models.NewNetWorthSnapshot(models.DB, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))
	suite.Require().Nil(err)

	history, err := models.NetWorthHistory(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(history, 2)
	suite.Assert().Equal(second.ID, history[0].ID)
	suite.Assert().Equal(first.ID, history[1].ID)
}
