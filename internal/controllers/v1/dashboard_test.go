package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/types"
	"github.com/moneywise/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) getDashboard() v1.DashboardResponse {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/dashboard", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	dashboard := suite.getDashboard()

	suite.Require().NotNil(dashboard.Data)
	suite.Assert().True(dashboard.Data.Balance.NetBalance.IsZero())
	suite.Assert().True(dashboard.Data.Portfolio.TotalValue.IsZero())
	suite.Assert().True(dashboard.Data.Debts.TotalDebt.IsZero())
	suite.Assert().Nil(dashboard.Data.EmergencyFund)
	suite.Assert().Len(dashboard.Data.Cashflows, 0)
	suite.Assert().Len(dashboard.Data.Expenses, 0)
	suite.Assert().NotEmpty(dashboard.Data.Display.Balance)
}

func (suite *TestSuiteStandard) TestDashboard() {
	account := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "BCA"})
	forms := []v1.CashflowCreate{
		{Date: types.NewDate(2024, time.February, 25), Amount: decimal.NewFromInt(10000000), IsCredit: true},
		{Date: types.NewDate(2024, time.February, 26), Amount: decimal.NewFromInt(300000), CategoryID: httputil.ID{UUID: suite.categoryID("Makan")}},
		{Date: types.NewDate(2024, time.March, 2), Amount: decimal.NewFromInt(700000), CategoryID: httputil.ID{UUID: suite.categoryID("Tagihan")}},
		{Date: types.NewDate(2024, time.March, 3), Amount: decimal.NewFromInt(200000), CategoryID: httputil.ID{UUID: suite.categoryID("Makan")}},
	}
	for _, form := range forms {
		form.AccountID = httputil.ID{UUID: account.Data.ID}
		_ = suite.createTestCashflow(suite.T(), form)
	}

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/liquid-assets/recalculate", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	_ = suite.createTestDebt(suite.T(), v1.DebtEditable{Balance: decimal.NewNullDecimal(decimal.NewFromInt(2000000))})
	_ = suite.createTestInvestment(suite.T(), v1.InvestmentEditable{
		Quantity:     decimal.NewNullDecimal(decimal.NewFromInt(10)),
		BuyPrice:     decimal.NewNullDecimal(decimal.NewFromInt(100000)),
		CurrentPrice: decimal.NewNullDecimal(decimal.NewFromInt(150000)),
	})

	r = test.Request(suite.controller, suite.T(), http.MethodPut, "http://example.com/v1/emergency-fund", v1.EmergencyFundEditable{
		AccumulatedFunds: decimal.NewNullDecimal(decimal.NewFromInt(5000000)),
		CustomTarget:     decimal.NewNullDecimal(decimal.NewFromInt(10000000)),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	dashboard := suite.getDashboard().Data

	suite.Assert().True(dashboard.Balance.NetBalance.Equal(decimal.NewFromInt(8800000)), dashboard.Balance.NetBalance.String())
	suite.Assert().True(dashboard.Portfolio.TotalValue.Equal(decimal.NewFromInt(1500000)))
	suite.Assert().True(dashboard.Debts.TotalDebt.Equal(decimal.NewFromInt(2000000)))
	suite.Require().NotNil(dashboard.EmergencyFund)
	suite.Assert().True(dashboard.EmergencyFund.Percentage.Equal(decimal.NewFromInt(50)))

	suite.Require().Len(dashboard.Cashflows, 2)
	suite.Assert().Equal("February", dashboard.Cashflows[0].Month, "Months go from old to new")
	suite.Assert().True(dashboard.Cashflows[0].Income.Equal(decimal.NewFromInt(10000000)))
	suite.Assert().True(dashboard.Cashflows[0].Expense.Equal(decimal.NewFromInt(300000)))
	suite.Assert().Equal("March", dashboard.Cashflows[1].Month)
	suite.Assert().True(dashboard.Cashflows[1].Expense.Equal(decimal.NewFromInt(900000)))

	suite.Require().Len(dashboard.Expenses, 2)
	suite.Assert().Equal("Tagihan", dashboard.Expenses[0].Category, "The largest expense comes first")
	suite.Assert().True(dashboard.Expenses[0].Amount.Equal(decimal.NewFromInt(700000)))
	suite.Assert().Equal("Makan", dashboard.Expenses[1].Category)
	suite.Assert().True(dashboard.Expenses[1].Amount.Equal(decimal.NewFromInt(500000)))

	suite.Assert().Contains(dashboard.Display.Balance, "800")
}

func (suite *TestSuiteStandard) TestDashboardFollowsWrites() {
	suite.Assert().True(suite.getDashboard().Data.Debts.TotalDebt.IsZero())

	_ = suite.createTestDebt(suite.T(), v1.DebtEditable{Balance: decimal.NewNullDecimal(decimal.NewFromInt(500000))})
	suite.Assert().True(suite.getDashboard().Data.Debts.TotalDebt.Equal(decimal.NewFromInt(500000)), "The dashboard must reflect the new debt")
}

func (suite *TestSuiteStandard) TestDashboardDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/dashboard", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
