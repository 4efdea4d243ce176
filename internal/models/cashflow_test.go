package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCashflowTrimWhitespace() {
	cashflow := suite.createTestCashflow(models.Cashflow{
		Description: "  Nasi goreng \t",
		Month:       " Maret ",
	})

	suite.Assert().Equal("Nasi goreng", cashflow.Description)
	suite.Assert().Equal("Maret", cashflow.Month)
}

func (suite *TestSuiteStandard) TestCashflowCreditAndDebit() {
	err := models.DB.Create(&models.Cashflow{
		Date:   time.Now(),
		Credit: decimal.NewNullDecimal(decimal.NewFromInt(100)),
		Debit:  decimal.NewNullDecimal(decimal.NewFromInt(50)),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrCashflowCreditAndDebit)
}

func (suite *TestSuiteStandard) TestCashflowDateEmpty() {
	err := models.DB.Create(&models.Cashflow{
		Credit: decimal.NewNullDecimal(decimal.NewFromInt(100)),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrCashflowDateEmpty)
}

func (suite *TestSuiteStandard) TestCashflowNilReferences() {
	nilID := uuid.Nil
	cashflow := suite.createTestCashflow(models.Cashflow{
		AccountID: &nilID,
	})

	suite.Assert().Nil(cashflow.AccountID)
}

func (suite *TestSuiteStandard) TestCashflowReferenceMissing() {
	missing := uuid.New()
	err := models.DB.Create(&models.Cashflow{
		Date:      time.Now(),
		AccountID: &missing,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCashflowRows() {
	account := suite.createTestAccount(models.Account{Name: "Dompet"})

	var category models.Category
	suite.Require().Nil(models.Seed(models.DB, nil))
	suite.Require().Nil(models.DB.Where(&models.Category{Name: "Makan"}).First(&category).Error)

	older := suite.createTestCashflow(models.Cashflow{
		Date:       time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		AccountID:  &account.ID,
		CategoryID: &category.ID,
		Debit:      decimal.NewNullDecimal(decimal.NewFromInt(25000)),
	})

	newer := suite.createTestCashflow(models.Cashflow{
		Date:  time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
		Debit: decimal.NewNullDecimal(decimal.NewFromInt(10000)),
	})

	rows, err := models.Cashflows(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(rows, 2)

	suite.Assert().Equal(newer.ID, rows[0].ID)
	suite.Assert().Equal("", rows[0].AccountName)

	suite.Assert().Equal(older.ID, rows[1].ID)
	suite.Assert().Equal("Dompet", rows[1].AccountName)
	suite.Assert().Equal("Makan", rows[1].CategoryName)
	suite.Assert().True(rows[1].Debit.Decimal.Equal(decimal.NewFromInt(25000)))
}

func (suite *TestSuiteStandard) TestCashflowsDBFail() {
	suite.CloseDB()

	_, err := models.Cashflows(models.DB)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
