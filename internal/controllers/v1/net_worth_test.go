package v1_test

import (
	"net/http"

	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createSnapshot() v1.NetWorthResponse {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/net-worth", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.NetWorthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestNetWorthSnapshot() {
	_, _ = suite.createBalances()

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/liquid-assets/recalculate", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	_ = suite.createTestInvestment(suite.T(), v1.InvestmentEditable{
		Quantity:     decimal.NewNullDecimal(decimal.NewFromInt(100)),
		BuyPrice:     decimal.NewNullDecimal(decimal.NewFromInt(9000)),
		CurrentPrice: decimal.NewNullDecimal(decimal.NewFromInt(10000)),
	})
	_ = suite.createTestDebt(suite.T(), v1.DebtEditable{Balance: decimal.NewNullDecimal(decimal.NewFromInt(1250000))})

	snapshot := suite.createSnapshot()

	// 17,500,000 in the checking account plus 1,000,000 in investments,
	// 750,000 on the credit card plus 1,250,000 of debt
	suite.Assert().True(snapshot.Data.TotalAssets.Equal(decimal.NewFromInt(18500000)), snapshot.Data.TotalAssets.String())
	suite.Assert().True(snapshot.Data.TotalLiabilities.Equal(decimal.NewFromInt(2000000)), snapshot.Data.TotalLiabilities.String())
	suite.Assert().True(snapshot.Data.NetWorth.Equal(decimal.NewFromInt(16500000)))
	suite.Assert().True(snapshot.Data.CalculatedAt.Equal(now))
	suite.Assert().Nil(snapshot.Data.Delta, "The first snapshot has no delta")
}

func (suite *TestSuiteStandard) TestNetWorthHistory() {
	first := suite.createSnapshot()
	suite.Assert().True(first.Data.NetWorth.IsZero())

	_ = suite.createTestInvestment(suite.T(), v1.InvestmentEditable{
		Quantity:     decimal.NewNullDecimal(decimal.NewFromInt(1)),
		CurrentPrice: decimal.NewNullDecimal(decimal.NewFromInt(1000000)),
	})
	second := suite.createSnapshot()
	suite.Require().NotNil(second.Data.Delta)
	suite.Assert().True(second.Data.Delta.Equal(decimal.NewFromInt(1000000)))

	_ = suite.createTestInvestment(suite.T(), v1.InvestmentEditable{
		Symbol:       "TLKM",
		Quantity:     decimal.NewNullDecimal(decimal.NewFromInt(1)),
		CurrentPrice: decimal.NewNullDecimal(decimal.NewFromInt(500000)),
	})
	_ = suite.createSnapshot()

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/net-worth", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.NetWorthListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().True(response.Data[0].NetWorth.Equal(decimal.NewFromInt(1500000)), "Newest snapshot comes first")
	suite.Assert().True(response.Data[0].Delta.Equal(decimal.NewFromInt(500000)))
	suite.Assert().True(response.Data[0].DeltaPercentage.Equal(decimal.NewFromInt(50)))
	suite.Assert().Nil(response.Data[2].Delta)

	suite.Assert().True(response.Summary.Current.Equal(decimal.NewFromInt(1500000)))
	suite.Require().NotNil(response.Summary.Previous)
	suite.Assert().True(response.Summary.Previous.Equal(decimal.NewFromInt(1000000)))
	suite.Assert().True(response.Summary.Change.Change.Equal(decimal.NewFromInt(500000)))
}

func (suite *TestSuiteStandard) TestNetWorthEmpty() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/net-worth", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.NetWorthListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Len(response.Data, 0)
	suite.Assert().True(response.Summary.Current.IsZero())
	suite.Assert().Nil(response.Summary.Previous)
	suite.Assert().Nil(response.Summary.Change)
}

func (suite *TestSuiteStandard) TestNetWorthOptions() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/net-worth", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))
}
