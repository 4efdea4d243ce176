package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/types"
	"github.com/moneywise/backend/test"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestExport() {
	_ = suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "BCA"})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/export", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("GNU Terry Pratchett", response.Clacks)
	suite.Assert().True(response.CreationTime.Equal(now))
	for _, name := range []string{"Account", "Cashflow", "Budget", "Debt", "Investment", "LiquidAsset", "NetWorth", "EmergencyFund", "Setting", "Type", "Category"} {
		suite.Assert().Contains(response.Data, name)
	}
	suite.Assert().Contains(string(response.Data["Account"]), "BCA")
}

func (suite *TestSuiteStandard) TestExportCashflowSpreadsheet() {
	account := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "BCA"})
	_ = suite.createTestCashflow(suite.T(), v1.CashflowCreate{
		Date:        types.NewDate(2024, time.March, 14),
		AccountID:   httputil.ID{UUID: account.Data.ID},
		Amount:      decimal.NewFromInt(150000),
		Description: "Makan siang",
	})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/export/cashflows.xlsx", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("attachment; filename=\"cashflows_20240320.xlsx\"", r.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(r.Body)
	suite.Require().Nil(err)
	defer f.Close()

	rows, err := f.GetRows("Cashflows")
	suite.Require().Nil(err)
	suite.Require().Len(rows, 2)
	suite.Assert().Equal([]string{"Date", "Month", "Description", "Account", "Category", "Type", "Credit", "Debit"}, rows[0])
	suite.Assert().Equal("2024-03-14", rows[1][0])
	suite.Assert().Equal("March", rows[1][1])
	suite.Assert().Equal("Makan siang", rows[1][2])
	suite.Assert().Equal("BCA", rows[1][3])
	suite.Assert().Equal("150000", rows[1][7])
}

func (suite *TestSuiteStandard) TestExportOptions() {
	for _, path := range []string{"http://example.com/v1/export", "http://example.com/v1/export/cashflows.xlsx"} {
		r := test.Request(suite.controller, suite.T(), http.MethodOptions, path, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
	}
}
