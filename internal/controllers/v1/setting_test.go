package v1_test

import (
	"net/http"

	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/test"
)

func (suite *TestSuiteStandard) TestWebhookSetting() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/settings/webhook", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WebhookSettingResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("", response.Data.URL)
	suite.Assert().Equal("", response.Data.Active)

	r = test.Request(suite.controller, suite.T(), http.MethodPut, "http://example.com/v1/settings/webhook", v1.WebhookSetting{
		URL: " https://n8n.example.com/webhook/moneywise ",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("https://n8n.example.com/webhook/moneywise", response.Data.URL)
	suite.Assert().Equal("https://n8n.example.com/webhook/moneywise", response.Data.Active, "The webhook must use the new URL immediately")

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/settings/webhook", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("https://n8n.example.com/webhook/moneywise", response.Data.URL, "The cached value must be replaced after a write")

	// An empty URL switches back to the built-in replies
	r = test.Request(suite.controller, suite.T(), http.MethodPut, "http://example.com/v1/settings/webhook", v1.WebhookSetting{})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("", suite.controller.Webhook.URL())
}

func (suite *TestSuiteStandard) TestWebhookSettingInvalidBody() {
	r := test.Request(suite.controller, suite.T(), http.MethodPut, "http://example.com/v1/settings/webhook", `{ "url": 42 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/settings/webhook", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PUT", r.Header().Get("allow"))
}
