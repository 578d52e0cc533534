package v1_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/finora/backend/internal/charts"
	v1 "github.com/finora/backend/internal/controllers/v1"
	"github.com/finora/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// chart requests a chart and returns its points.
func chart(t *testing.T, headers map[string]string, path string, expectedStatus ...int) v1.ChartResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodGet, "http://example.com/v1/charts"+path, "", headers)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.ChartResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

func assertChartPoint(t *testing.T, p charts.Point, label string, amount int64) {
	assert.Equal(t, label, p.Label)
	assert.True(t, decimal.NewFromInt(amount).Equal(p.Amount), "%s: expected %d, got %s", label, amount, p.Amount)
}

// createChartFixtures books expenses and income across two years.
func (suite *TestSuiteStandard) createChartFixtures(headers map[string]string) {
	food := categoryID(suite.T(), "Food & Drinks")
	salary := categoryID(suite.T(), "Salary")

	createTestTransaction(suite.T(), headers, v1.TransactionEditable{CategoryID: food, Amount: decimal.NewFromInt(10), Date: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)})
	createTestTransaction(suite.T(), headers, v1.TransactionEditable{CategoryID: food, Amount: decimal.NewFromInt(5), Date: time.Date(2024, 2, 1, 19, 0, 0, 0, time.UTC)})
	createTestTransaction(suite.T(), headers, v1.TransactionEditable{CategoryID: food, Amount: decimal.NewFromInt(7), Date: time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)})
	createTestTransaction(suite.T(), headers, v1.TransactionEditable{CategoryID: food, Amount: decimal.NewFromInt(40), Date: time.Date(2023, 11, 3, 12, 0, 0, 0, time.UTC)})
	createTestTransaction(suite.T(), headers, v1.TransactionEditable{CategoryID: salary, Amount: decimal.NewFromInt(1000), Date: time.Date(2024, 2, 25, 12, 0, 0, 0, time.UTC)})
}

func (suite *TestSuiteStandard) TestChartsLinks() {
	headers := authHeader(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/charts", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChartsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(v1.ChartLinks{
		Daily:    "http://example.com/v1/charts/daily",
		Range:    "http://example.com/v1/charts/range",
		Balances: "http://example.com/v1/charts/balances",
		Yearly:   "http://example.com/v1/charts/yearly",
	}, response.Links)

	for _, path := range []string{"", "/daily", "/range", "/balances", "/yearly"} {
		r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/charts"+path, "", headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"), path)
	}
}

func (suite *TestSuiteStandard) TestChartsDaily() {
	headers := authHeader(suite.T())
	suite.createChartFixtures(headers)

	points := chart(suite.T(), headers, "/daily?month=2024-02").Data
	suite.Require().Len(points, 29)
	assertChartPoint(suite.T(), points[0], "Feb 1", 15)
	assertChartPoint(suite.T(), points[1], "Feb 2", 0)
	assertChartPoint(suite.T(), points[24], "Feb 25", 0)
	assertChartPoint(suite.T(), points[28], "Feb 29", 7)

	points = chart(suite.T(), headers, "/daily?month=2024-02&type=income").Data
	suite.Require().Len(points, 29)
	assertChartPoint(suite.T(), points[24], "Feb 25", 1000)

	// Other users see their own transactions only
	points = chart(suite.T(), authHeader(suite.T()), "/daily?month=2024-02").Data
	suite.Require().Len(points, 29)
	assertChartPoint(suite.T(), points[0], "Feb 1", 0)
}

func (suite *TestSuiteStandard) TestChartsRange() {
	headers := authHeader(suite.T())
	suite.createChartFixtures(headers)

	// A full calendar year has one point per month
	points := chart(suite.T(), headers, "/range?fromDate=2024-01-01&untilDate=2024-12-31").Data
	suite.Require().Len(points, 12)
	assertChartPoint(suite.T(), points[0], "Jan 2024", 0)
	assertChartPoint(suite.T(), points[1], "Feb 2024", 22)

	// Anything else has one point per day of the months covered
	points = chart(suite.T(), headers, "/range?fromDate=2023-11-15&untilDate=2024-02-10").Data
	suite.Require().Len(points, 30+31+31+29)
	assertChartPoint(suite.T(), points[2], "3 Nov 2023", 40)
	assertChartPoint(suite.T(), points[len(points)-29], "1 Feb 2024", 15)

	points = chart(suite.T(), headers, "/range?fromDate=2024-02-10&untilDate=2024-01-01").Data
	suite.Assert().Len(points, 0, "A reversed range is empty")
}

func (suite *TestSuiteStandard) TestChartsBalances() {
	headers := authHeader(suite.T())
	suite.createChartFixtures(headers)

	points := chart(suite.T(), headers, "/balances?fromMonth=2023-11&untilMonth=2024-02").Data
	suite.Require().Len(points, 4)
	assertChartPoint(suite.T(), points[0], "Nov 2023", 40)
	assertChartPoint(suite.T(), points[1], "Dec 2023", 0)
	assertChartPoint(suite.T(), points[2], "Jan 2024", 0)
	assertChartPoint(suite.T(), points[3], "Feb 2024", 22)

	points = chart(suite.T(), headers, "/balances?fromMonth=2023-11&untilMonth=2024-02&type=income").Data
	suite.Require().Len(points, 4)
	assertChartPoint(suite.T(), points[3], "Feb 2024", 1000)

	points = chart(suite.T(), headers, "/balances?fromMonth=2024-02&untilMonth=2023-11").Data
	suite.Assert().Len(points, 0, "A reversed range is empty")
}

func (suite *TestSuiteStandard) TestChartsYearly() {
	headers := authHeader(suite.T())
	suite.createChartFixtures(headers)

	points := chart(suite.T(), headers, "/yearly").Data
	suite.Require().Len(points, 2)
	assertChartPoint(suite.T(), points[0], "2023", 40)
	assertChartPoint(suite.T(), points[1], "2024", 22)

	points = chart(suite.T(), headers, "/yearly?type=income").Data
	suite.Require().Len(points, 2)
	assertChartPoint(suite.T(), points[0], "2023", 0)
	assertChartPoint(suite.T(), points[1], "2024", 1000)

	suite.Assert().Len(chart(suite.T(), authHeader(suite.T()), "/yearly").Data, 0)
}

func (suite *TestSuiteStandard) TestChartsFails() {
	headers := authHeader(suite.T())

	tests := []struct {
		name string
		path string
		err  string
	}{
		{"Daily without month", "/daily", "the month query parameter must be set"},
		{"Range without until date", "/range?fromDate=2024-01-01", "the fromDate and untilDate query parameters must be set"},
		{"Range without from date", "/range?untilDate=2024-01-01", "the fromDate and untilDate query parameters must be set"},
		{"Balances without months", "/balances?fromMonth=2024-01", "the fromMonth and untilMonth query parameters must be set"},
		{"Invalid type", "/yearly?type=savings", "the type must be 'income' or 'expense'"},
		{"Unparseable month", "/daily?month=02-2024", ""},
		{"Unparseable date", "/range?fromDate=1.1.2024&untilDate=2024-12-31", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := chart(t, headers, tt.path, http.StatusBadRequest)
			if tt.err != "" {
				assert.Equal(t, tt.err, *response.Error)
			}
		})
	}
}
