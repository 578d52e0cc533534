package v1_test

import (
	"net/http"

	v1 "github.com/finora/backend/internal/controllers/v1"
	"github.com/finora/backend/internal/currency"
	"github.com/finora/backend/test"
)

func (suite *TestSuiteStandard) TestCurrencies() {
	headers := authHeader(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/currencies", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CurrencyListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(currency.Supported(), response.Data)
	suite.Assert().Contains(response.Data, currency.Currency{Code: "IDR", Symbol: "Rp"})

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/currencies", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/currencies", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}
