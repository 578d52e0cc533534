package v1_test

import (
	"net/http"
	"strings"
	"testing"

	v1 "github.com/finora/backend/internal/controllers/v1"
	"github.com/finora/backend/internal/models"
	"github.com/finora/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	headers := authHeader(suite.T())
	id := categoryID(suite.T(), "Food & Drinks")

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Standard", id.String(), http.StatusOK},
		{"Does not exist", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/categories/"+tt.id, "", headers)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var category v1.CategoryResponse
			test.DecodeResponse(t, &r, &category)
			assert.Equal(t, "Food & Drinks", category.Data.Name)
			assert.Equal(t, models.TypeExpense, category.Data.Type)
			assert.Equal(t, "http://example.com/v1/categories/"+id.String(), category.Data.Links.Self)
			assert.Equal(t, "http://example.com/v1/transactions?category="+id.String(), category.Data.Links.Transactions)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	headers := authHeader(suite.T())

	defaults, err := models.DefaultCategories()
	suite.Require().Nil(err)

	var income, expense int
	for _, c := range defaults {
		if c.Type == models.TypeIncome {
			income++
		} else {
			expense++
		}
	}

	tests := []struct {
		name  string
		query string
		len   int
		total int
	}{
		{"All", "", len(defaults), len(defaults)},
		{"Income", "type=income", income, income},
		{"Expense", "type=expense", expense, expense},
		{"Name contains, ignoring case", "name=INCOME", 3, 3},
		{"Name and type", "name=income&type=expense", 0, 0},
		{"Limited", "type=expense&limit=3", 3, expense},
		{"Offset", "type=income&offset=10", income - 10, income},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/categories?"+tt.query, "", headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var categories v1.CategoryListResponse
			test.DecodeResponse(t, &r, &categories)
			assert.Len(t, categories.Data, tt.len)
			assert.Equal(t, int64(tt.total), categories.Pagination.Total)
			assert.Equal(t, tt.len, categories.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesSortedByName() {
	headers := authHeader(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var categories v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &categories)

	for i := 1; i < len(categories.Data); i++ {
		suite.Assert().True(strings.Compare(categories.Data[i-1].Name, categories.Data[i].Name) < 0, "%s before %s", categories.Data[i-1].Name, categories.Data[i].Name)
	}
}

func (suite *TestSuiteStandard) TestCategoriesInvalidType() {
	headers := authHeader(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories?type=savings", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var categories v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &categories)
	suite.Assert().Equal("the type must be 'income' or 'expense'", *categories.Error)
}

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	headers := authHeader(suite.T())

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/categories", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/categories/"+categoryID(suite.T(), "Salary").String(), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/categories/"+uuid.NewString(), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesDatabaseError() {
	headers := authHeader(suite.T())
	suite.CloseDB()

	// The authentication fails first since it needs the database, too
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
