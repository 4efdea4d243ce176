package v1_test

import (
	"net/http"

	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("http://example.com/v1/cashflows", response.Links.Cashflows)
	suite.Assert().Equal("http://example.com/v1/emergency-fund", response.Links.EmergencyFund)
	suite.Assert().Equal("http://example.com/v1/assistant", response.Links.Assistant)

	r = test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCleanup() {
	_ = suite.createTestCashflow(suite.T(), v1.CashflowCreate{Amount: decimal.NewFromInt(1000)})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: suite.categoryIDParam("Makan")})
	_ = suite.createTestDebt(suite.T(), v1.DebtEditable{})
	_ = suite.createTestInvestment(suite.T(), v1.InvestmentEditable{})

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/liquid-assets/recalculate", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	r = test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/net-worth", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	// Warm the cache
	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/dashboard", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.controller, suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	for _, model := range []any{&models.Account{}, &models.Cashflow{}, &models.Budget{}, &models.Debt{}, &models.Investment{}, &models.LiquidAsset{}, &models.NetWorth{}} {
		var count int64
		suite.Require().Nil(models.DB.Unscoped().Model(model).Count(&count).Error)
		suite.Assert().Equal(int64(0), count, "%T must be deleted", model)
	}

	var categories int64
	suite.Require().Nil(models.DB.Model(&models.Category{}).Count(&categories).Error)
	suite.Assert().Equal(int64(10), categories, "Categories are kept")

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/dashboard", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var dashboard v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &dashboard)
	suite.Assert().True(dashboard.Data.Debts.TotalDebt.IsZero(), "The cache must be dropped")
}

func (suite *TestSuiteStandard) TestCleanupConfirmation() {
	_ = suite.createTestAccount(suite.T(), v1.AccountEditable{})

	for _, query := range []string{"", "?confirm=yes", "?confirm=YES-PLEASE-DELETE-EVERYTHING"} {
		r := test.Request(suite.controller, suite.T(), http.MethodDelete, "http://example.com/v1"+query, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Account{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}
