package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/test"
)

func (suite *TestSuiteStandard) TestTypesGet() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/types", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TypeListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal(models.TypeExpense, response.Data[0].Name)
	suite.Assert().Equal(models.TypeIncome, response.Data[1].Name)
	suite.Assert().Equal(models.TypeTransfer, response.Data[2].Name)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, response.Data[0].Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestTypesReadOnly() {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/types", `[{"name": "Refund"}]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)

	r = test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/types", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCategoriesGet() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 10)
}

func (suite *TestSuiteStandard) TestCategoriesFilterByType() {
	expense := suite.typeID(models.TypeExpense)

	r := test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?type=%s", expense), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 5)
	for _, category := range response.Data {
		suite.Assert().Equal(expense, category.TypeID)
	}

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/categories?type=not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	id := suite.categoryID("Makan")

	r := test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s", id), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Makan", response.Data.Name)
	suite.Assert().Equal(suite.typeID(models.TypeExpense), response.Data.TypeID)

	r = test.Request(suite.controller, suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/categories/%s", id), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/categories/a3b1e9b4-7e34-4e21-9a6c-33e1e1c1f2a7", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
