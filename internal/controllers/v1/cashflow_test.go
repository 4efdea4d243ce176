package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/internal/types"
	"github.com/moneywise/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCashflowsCreate() {
	account := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "BCA"})

	cashflow := suite.createTestCashflow(suite.T(), v1.CashflowCreate{
		Date:        types.NewDate(2024, time.March, 14),
		AccountID:   httputil.ID{UUID: account.Data.ID},
		TypeID:      httputil.ID{UUID: suite.typeID(models.TypeExpense)},
		CategoryID:  httputil.ID{UUID: suite.categoryID("Makan")},
		Amount:      decimal.NewFromInt(150000),
		Description: "Makan siang",
	})

	suite.Assert().Equal("March", cashflow.Data.Month)
	suite.Assert().True(cashflow.Data.Debit.Decimal.Equal(decimal.NewFromInt(150000)), cashflow.Data.Debit.Decimal.String())
	suite.Assert().True(cashflow.Data.Credit.Decimal.IsZero())
	suite.Assert().Equal("BCA", cashflow.Data.AccountName)
	suite.Assert().Equal("Makan", cashflow.Data.CategoryName)
	suite.Assert().Equal(models.TypeExpense, cashflow.Data.TypeName)

	income := suite.createTestCashflow(suite.T(), v1.CashflowCreate{
		AccountID: httputil.ID{UUID: account.Data.ID},
		Amount:    decimal.NewFromInt(10000000),
		IsCredit:  true,
	})
	suite.Assert().True(income.Data.Credit.Decimal.Equal(decimal.NewFromInt(10000000)))
	suite.Assert().True(income.Data.Debit.Decimal.IsZero())
}

func (suite *TestSuiteStandard) TestCashflowsCreateFails() {
	account := suite.createTestAccount(suite.T(), v1.AccountEditable{})

	tests := []struct {
		name    string
		body    any
		status  int
		errText string
	}{
		{
			"No date",
			`[{ "accountId": "` + account.Data.ID.String() + `", "amount": "100" }]`,
			http.StatusBadRequest,
			"the date of the transaction must be set",
		},
		{
			"Negative amount",
			`[{ "date": "2024-03-14", "amount": "-100" }]`,
			http.StatusBadRequest,
			"the amount must not be negative",
		},
		{
			"Unknown account",
			`[{ "date": "2024-03-14", "accountId": "a3b1e9b4-7e34-4e21-9a6c-33e1e1c1f2a7", "amount": "100" }]`,
			http.StatusNotFound,
			"there is no account matching your query",
		},
		{
			"Invalid date",
			`[{ "date": "14.03.2024", "amount": "100" }]`,
			http.StatusBadRequest,
			"",
		},
		{
			"Invalid account ID",
			`[{ "date": "2024-03-14", "accountId": "not-a-uuid", "amount": "100" }]`,
			http.StatusBadRequest,
			"",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/cashflows", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.errText == "" {
				return
			}

			var response v1.CashflowCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.errText, *response.Data[0].Error)
		})
	}
}

// createCashflowSeries creates one debit of 1000 per day starting at
// March 1st 2024.
func (suite *TestSuiteStandard) createCashflowSeries(count int) v1.AccountResponse {
	account := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "BCA"})

	forms := make([]v1.CashflowCreate, 0, count)
	for i := 0; i < count; i++ {
		forms = append(forms, v1.CashflowCreate{
			Date:        types.NewDate(2024, time.March, i+1),
			AccountID:   httputil.ID{UUID: account.Data.ID},
			Amount:      decimal.NewFromInt(1000),
			Description: fmt.Sprintf("Cashflow %d", i+1),
		})
	}

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/cashflows", forms)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	return account
}

func (suite *TestSuiteStandard) TestCashflowsPagination() {
	_ = suite.createCashflowSeries(12)

	tests := []struct {
		name        string
		query       string
		count       int
		first       string
		page        int
		totalPages  int
		description string
	}{
		{"Default page", "", 10, "Cashflow 12", 1, 2, "Newest cashflows come first"},
		{"Second page", "?page=2", 2, "Cashflow 2", 2, 2, "The last page has the remainder"},
		{"Out of range", "?page=5", 0, "", 5, 2, "Pages beyond the last are empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/cashflows"+tt.query, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CashflowListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.count, tt.description)
			assert.Equal(t, tt.page, response.Pagination.Page.Page)
			assert.Equal(t, 10, response.Pagination.PageSize)
			assert.Equal(t, tt.totalPages, response.Pagination.TotalPages)
			assert.Equal(t, tt.count, response.Pagination.Count)
			assert.Equal(t, 12, response.Pagination.Total)
			assert.True(t, response.Totals.Expense.Equal(decimal.NewFromInt(12000)), "Totals cover all pages, not only the returned one")

			if tt.first != "" {
				assert.Equal(t, tt.first, response.Data[0].Description, tt.description)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCashflowsInvalidQuery() {
	tests := []struct {
		name  string
		query string
	}{
		{"Zero page", "?page=0"},
		{"Negative page", "?page=-1"},
		{"Page not a number", "?page=second"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/cashflows"+tt.query, nil)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCashflowsSearch() {
	account := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Jenius"})

	_ = suite.createTestCashflow(suite.T(), v1.CashflowCreate{
		AccountID:   httputil.ID{UUID: account.Data.ID},
		CategoryID:  httputil.ID{UUID: suite.categoryID("Transportasi")},
		Amount:      decimal.NewFromInt(25000),
		Description: "Ojek ke kantor",
	})
	_ = suite.createTestCashflow(suite.T(), v1.CashflowCreate{
		AccountID:   httputil.ID{UUID: account.Data.ID},
		CategoryID:  httputil.ID{UUID: suite.categoryID("Makan")},
		Amount:      decimal.NewFromInt(50000),
		Description: "Nasi padang",
	})

	tests := []struct {
		search string
		count  int
	}{
		{"ojek", 1},
		{"MAKAN", 1},
		{"jenius", 2},
		{"bioskop", 0},
		{"", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.search, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/cashflows?search=%s", tt.search), nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CashflowListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
			assert.Equal(t, tt.count, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestCashflowsGetSingle() {
	cashflow := suite.createTestCashflow(suite.T(), v1.CashflowCreate{Amount: decimal.NewFromInt(1000)})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, cashflow.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CashflowResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(cashflow.Data.ID, response.Data.ID)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/cashflows/a3b1e9b4-7e34-4e21-9a6c-33e1e1c1f2a7", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.controller, suite.T(), http.MethodOptions, cashflow.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCashflowsUpdate() {
	cashflow := suite.createTestCashflow(suite.T(), v1.CashflowCreate{
		Date:        types.NewDate(2024, time.March, 14),
		Amount:      decimal.NewFromInt(1000),
		Description: "Kopi",
	})

	r := test.Request(suite.controller, suite.T(), http.MethodPatch, cashflow.Data.Links.Self, map[string]any{
		"date": "2024-04-02",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.CashflowResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("2024-04-02", updated.Data.Date.String())
	suite.Assert().Equal("April", updated.Data.Month, "The month must follow the date")
	suite.Assert().Equal("Kopi", updated.Data.Description)

	r = test.Request(suite.controller, suite.T(), http.MethodPatch, cashflow.Data.Links.Self, map[string]any{
		"description": "Kopi susu",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Kopi susu", updated.Data.Description)
	suite.Assert().Equal("April", updated.Data.Month, "The month must not change without a date")

	r = test.Request(suite.controller, suite.T(), http.MethodPatch, cashflow.Data.Links.Self, map[string]any{
		"credit": "500",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.controller, suite.T(), http.MethodPatch, cashflow.Data.Links.Self, map[string]any{
		"categoryId": "a3b1e9b4-7e34-4e21-9a6c-33e1e1c1f2a7",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCashflowsDelete() {
	cashflow := suite.createTestCashflow(suite.T(), v1.CashflowCreate{Amount: decimal.NewFromInt(1000)})

	// Warm the cache
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/cashflows", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.controller, suite.T(), http.MethodDelete, cashflow.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/cashflows", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CashflowListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0)

	r = test.Request(suite.controller, suite.T(), http.MethodDelete, cashflow.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCashflowsDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/cashflows", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
