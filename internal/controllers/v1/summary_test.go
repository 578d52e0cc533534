package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/finora/backend/internal/controllers/v1"
	"github.com/finora/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSummary() {
	headers := authHeader(suite.T(), v1.SignUpRequest{CountryCode: "ID"})
	food := categoryID(suite.T(), "Food & Drinks")
	salary := categoryID(suite.T(), "Salary")

	createTestTransaction(suite.T(), headers, v1.TransactionEditable{CategoryID: salary, Amount: decimal.NewFromInt(5000000), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)})
	createTestTransaction(suite.T(), headers, v1.TransactionEditable{CategoryID: food, Amount: decimal.NewFromInt(3250000), Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)})
	createTestTransaction(suite.T(), headers, v1.TransactionEditable{CategoryID: food, Amount: decimal.NewFromInt(100), Date: time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC)})

	// Transactions of other users are not part of the summary
	createTestTransaction(suite.T(), authHeader(suite.T()), v1.TransactionEditable{CategoryID: salary, Amount: decimal.NewFromInt(1), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)})

	tests := []struct {
		name             string
		query            string
		period           string
		income           int64
		expense          int64
		balanceFormatted string
	}{
		{"All time", "", "all", 5000000, 3250100, "Rp1,749,900"},
		{"Year", "?year=2024", "2024", 5000000, 3250000, "Rp1,750,000"},
		{"Month", "?month=2024-03", "2024-03", 5000000, 3250000, "Rp1,750,000"},
		{"Month takes precedence", "?year=2023&month=2024-03", "2024-03", 5000000, 3250000, "Rp1,750,000"},
		{"Month without transactions", "?month=2024-04", "2024-04", 0, 0, "Rp0"},
		{"Expenses only", "?year=2023", "2023", 0, 100, "-Rp100"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/summary"+tt.query, "", headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SummaryResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Data)

			assert.Equal(t, tt.period, response.Data.Period)
			assert.Equal(t, "IDR", response.Data.Currency)
			assert.True(t, decimal.NewFromInt(tt.income).Equal(response.Data.Income), "income is %s", response.Data.Income)
			assert.True(t, decimal.NewFromInt(tt.expense).Equal(response.Data.Expense), "expense is %s", response.Data.Expense)
			assert.True(t, decimal.NewFromInt(tt.income-tt.expense).Equal(response.Data.Balance))
			assert.Equal(t, tt.balanceFormatted, response.Data.BalanceFormatted)
		})
	}
}

func (suite *TestSuiteStandard) TestSummaryFormattedInUserCurrency() {
	headers := authHeader(suite.T(), v1.SignUpRequest{CountryCode: "DE"})
	createTestTransaction(suite.T(), headers, v1.TransactionEditable{CategoryID: categoryID(suite.T(), "Salary"), Amount: decimal.NewFromFloat(1234.5)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("EUR", response.Data.Currency)
	suite.Assert().Equal("€1,235", response.Data.IncomeFormatted)
	suite.Assert().Equal("€0", response.Data.ExpenseFormatted)

	// Changing the currency changes the formatting
	r = test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/users/me", map[string]any{"currency": "GBP"}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary", "", headers)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("£1,235", response.Data.IncomeFormatted)
}

func (suite *TestSuiteStandard) TestSummaryFails() {
	headers := authHeader(suite.T())

	for _, query := range []string{"?month=March", "?year=last"} {
		r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary"+query, "", headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/summary", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	suite.CloseDB()
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
