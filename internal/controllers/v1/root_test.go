package v1_test

import (
	"net/http"

	v1 "github.com/finora/backend/internal/controllers/v1"
	"github.com/finora/backend/test"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(v1.Links{
		Auth:            "http://example.com/v1/auth",
		Users:           "http://example.com/v1/users/me",
		Categories:      "http://example.com/v1/categories",
		Transactions:    "http://example.com/v1/transactions",
		MonthlyBalances: "http://example.com/v1/monthly-balances",
		MatchRules:      "http://example.com/v1/match-rules",
		Summary:         "http://example.com/v1/summary",
		Charts:          "http://example.com/v1/charts",
		Receipts:        "http://example.com/v1/receipts",
		Currencies:      "http://example.com/v1/currencies",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestRootOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}
