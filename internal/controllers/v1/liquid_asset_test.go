package v1_test

import (
	"net/http"

	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/test"
	"github.com/shopspring/decimal"
)

// createBalances creates a checking account with a balance of 17,500,000
// and a credit account with a balance of -750,000.
func (suite *TestSuiteStandard) createBalances() (v1.AccountResponse, v1.AccountResponse) {
	checking := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "BCA", Type: models.AccountTypeChecking})
	credit := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Kartu Kredit", Type: models.AccountTypeCredit})

	forms := []v1.CashflowCreate{
		{AccountID: httputil.ID{UUID: checking.Data.ID}, Amount: decimal.NewFromInt(20000000), IsCredit: true},
		{AccountID: httputil.ID{UUID: checking.Data.ID}, Amount: decimal.NewFromInt(2500000)},
		{AccountID: httputil.ID{UUID: credit.Data.ID}, Amount: decimal.NewFromInt(750000)},
	}

	for _, form := range forms {
		_ = suite.createTestCashflow(suite.T(), form)
	}

	return checking, credit
}

func (suite *TestSuiteStandard) TestLiquidAssetsRecalculate() {
	checking, credit := suite.createBalances()

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/liquid-assets", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LiquidAssetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0, "Balances only exist after a recalculation")

	r = test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/liquid-assets/recalculate", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(checking.Data.ID, *response.Data[0].AccountID)
	suite.Assert().Equal("BCA", response.Data[0].AccountName)
	suite.Assert().Equal(models.AccountTypeChecking, response.Data[0].AccountType)
	suite.Assert().True(response.Data[0].Balance.Equal(decimal.NewFromInt(17500000)), response.Data[0].Balance.String())
	suite.Assert().Equal(credit.Data.ID, *response.Data[1].AccountID)
	suite.Assert().True(response.Data[1].Balance.Equal(decimal.NewFromInt(-750000)), response.Data[1].Balance.String())

	suite.Assert().True(response.Summary.TotalAssets.Equal(decimal.NewFromInt(17500000)))
	suite.Assert().True(response.Summary.TotalLiabilities.Equal(decimal.NewFromInt(750000)))
	suite.Assert().True(response.Summary.NetBalance.Equal(decimal.NewFromInt(16750000)))
}

func (suite *TestSuiteStandard) TestLiquidAssetsRecalculateTwice() {
	checking, _ := suite.createBalances()

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/liquid-assets/recalculate", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	_ = suite.createTestCashflow(suite.T(), v1.CashflowCreate{
		AccountID: httputil.ID{UUID: checking.Data.ID},
		Amount:    decimal.NewFromInt(500000),
	})

	r = test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/liquid-assets/recalculate", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/liquid-assets", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LiquidAssetListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2, "Recalculation updates balances in place")
	suite.Assert().True(response.Data[0].Balance.Equal(decimal.NewFromInt(17000000)), response.Data[0].Balance.String())
}

func (suite *TestSuiteStandard) TestLiquidAssetsAccountWithoutCashflows() {
	_ = suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Jenius", Type: models.AccountTypeSavings})

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/liquid-assets/recalculate", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LiquidAssetListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().True(response.Data[0].Balance.IsZero())
}

func (suite *TestSuiteStandard) TestLiquidAssetsOptions() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/liquid-assets", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/liquid-assets/recalculate", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))
}
