package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/finora/backend/internal/controllers/v1"
	"github.com/finora/backend/internal/ledger"
	"github.com/finora/backend/internal/models"
	"github.com/finora/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMatchRulesCreate() {
	headers := authHeader(suite.T())
	transportation := categoryID(suite.T(), "Transportation")

	rule := createTestMatchRule(suite.T(), headers, v1.MatchRuleEditable{CategoryID: transportation, Match: "  *grab*  ", Priority: 2})
	suite.Require().NotNil(rule.Data)
	suite.Assert().Equal("*grab*", rule.Data.Match)
	suite.Assert().Equal(uint(2), rule.Data.Priority)
	suite.Assert().Equal(transportation, rule.Data.CategoryID)
	suite.Assert().Equal("http://example.com/v1/match-rules/"+rule.Data.ID.String(), rule.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestMatchRulesCreateFails() {
	headers := authHeader(suite.T())

	tests := []struct {
		name   string
		rule   v1.MatchRuleEditable
		status int
		err    string
	}{
		{"Category does not exist", v1.MatchRuleEditable{CategoryID: uuid.New(), Match: "*"}, http.StatusNotFound, ""},
		{"No category", v1.MatchRuleEditable{Match: "*"}, http.StatusNotFound, ""},
		{"Empty match", v1.MatchRuleEditable{CategoryID: categoryID(suite.T(), "Shopping"), Match: "   "}, http.StatusBadRequest, models.ErrMatchRuleEmpty.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			rule := createTestMatchRule(t, headers, tt.rule, tt.status)
			require.NotNil(t, rule.Error)
			if tt.err != "" {
				assert.Equal(t, tt.err, *rule.Error)
			}
		})
	}

	// The highest status of all rules is used
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/match-rules", []v1.MatchRuleEditable{
		{CategoryID: categoryID(suite.T(), "Shopping"), Match: "*mall*"},
		{CategoryID: categoryID(suite.T(), "Shopping"), Match: ""},
		{CategoryID: uuid.New(), Match: "*"},
	}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.MatchRuleCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 3)
	suite.Assert().NotNil(response.Data[0].Data)
	suite.Assert().NotNil(response.Data[1].Error)
	suite.Assert().NotNil(response.Data[2].Error)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/match-rules", `{ "match": "not a list" }`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMatchRulesGetFilter() {
	headers := authHeader(suite.T())
	shopping := categoryID(suite.T(), "Shopping")
	transportation := categoryID(suite.T(), "Transportation")

	createTestMatchRule(suite.T(), headers, v1.MatchRuleEditable{CategoryID: transportation, Match: "*grab*", Priority: 1})
	createTestMatchRule(suite.T(), headers, v1.MatchRuleEditable{CategoryID: transportation, Match: "*gojek*", Priority: 1})
	createTestMatchRule(suite.T(), headers, v1.MatchRuleEditable{CategoryID: shopping, Match: "*tokopedia*", Priority: 0})

	// Rules of other users are never visible
	other := authHeader(suite.T())
	createTestMatchRule(suite.T(), other, v1.MatchRuleEditable{CategoryID: shopping, Match: "*grab*"})

	tests := []struct {
		name    string
		query   string
		matches []string
	}{
		{"All, by priority and match", "", []string{"*tokopedia*", "*gojek*", "*grab*"}},
		{"Priority", "priority=1", []string{"*gojek*", "*grab*"}},
		{"Match contains", "match=gr", []string{"*grab*"}},
		{"Category", "category=" + shopping.String(), []string{"*tokopedia*"}},
		{"Explicitly empty match", "match=", []string{}},
		{"Limit and offset", "limit=1&offset=1", []string{"*gojek*"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/match-rules?"+tt.query, "", headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.MatchRuleListResponse
			test.DecodeResponse(t, &r, &response)

			matches := make([]string, 0)
			for _, rule := range response.Data {
				matches = append(matches, rule.Match)
			}
			assert.Equal(t, tt.matches, matches)
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesGetSingle() {
	headers := authHeader(suite.T())
	rule := createTestMatchRule(suite.T(), headers, v1.MatchRuleEditable{CategoryID: categoryID(suite.T(), "Shopping"), Match: "*mall*"})

	tests := []struct {
		name    string
		id      string
		headers map[string]string
		status  int
	}{
		{"Standard", rule.Data.ID.String(), headers, http.StatusOK},
		{"Other user", rule.Data.ID.String(), authHeader(suite.T()), http.StatusNotFound},
		{"Does not exist", uuid.NewString(), headers, http.StatusNotFound},
		{"Invalid ID", "NotParseableAsUUID", headers, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/match-rules/"+tt.id, "", tt.headers)
			test.AssertHTTPStatus(t, &r, tt.status)

			r = test.Request(t, http.MethodOptions, "http://example.com/v1/match-rules/"+tt.id, "", tt.headers)
			if tt.status == http.StatusOK {
				test.AssertHTTPStatus(t, &r, http.StatusNoContent)
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			} else {
				test.AssertHTTPStatus(t, &r, tt.status)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesUpdate() {
	headers := authHeader(suite.T())
	rule := createTestMatchRule(suite.T(), headers, v1.MatchRuleEditable{CategoryID: categoryID(suite.T(), "Shopping"), Match: "*mall*", Priority: 4})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Match", map[string]any{"match": " *plaza* "}, http.StatusOK},
		{"Priority to zero", map[string]any{"priority": 0}, http.StatusOK},
		{"Category", map[string]any{"categoryId": categoryID(suite.T(), "Travel").String()}, http.StatusOK},
		{"Empty match", map[string]any{"match": ""}, http.StatusBadRequest},
		{"Category does not exist", map[string]any{"categoryId": uuid.NewString()}, http.StatusNotFound},
		{"Broken body", `{ "priority": "high" }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, rule.Data.Links.Self, tt.body, headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "", headers)
	var updated v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("*plaza*", updated.Data.Match)
	suite.Assert().Equal(uint(0), updated.Data.Priority)
	suite.Assert().Equal(categoryID(suite.T(), "Travel"), updated.Data.CategoryID)

	// Other users cannot update the rule
	r = test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{"match": "*"}, authHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMatchRulesDelete() {
	headers := authHeader(suite.T())
	rule := createTestMatchRule(suite.T(), headers, v1.MatchRuleEditable{CategoryID: categoryID(suite.T(), "Shopping"), Match: "*mall*"})

	r := test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "", authHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/match-rules/NotParseableAsUUID", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestMatchRulesAssignCategory verifies that transactions without a
// category get the category of the first matching rule.
func (suite *TestSuiteStandard) TestMatchRulesAssignCategory() {
	headers := authHeader(suite.T())
	transportation := categoryID(suite.T(), "Transportation")
	food := categoryID(suite.T(), "Food & Drinks")

	createTestMatchRule(suite.T(), headers, v1.MatchRuleEditable{CategoryID: food, Match: "*grabfood*", Priority: 0})
	createTestMatchRule(suite.T(), headers, v1.MatchRuleEditable{CategoryID: transportation, Match: "*grab*", Priority: 1})

	tests := []struct {
		description string
		category    uuid.UUID
	}{
		{"GrabFood Nasi Goreng", food},
		{"Grab ride to the office", transportation},
	}

	for _, tt := range tests {
		suite.T().Run(tt.description, func(t *testing.T) {
			transaction := createTestTransaction(t, headers, v1.TransactionEditable{Amount: decimal.NewFromInt(25000), Description: tt.description})
			require.NotNil(t, transaction.Data)
			assert.Equal(t, tt.category, transaction.Data.CategoryID)
			assert.Equal(t, models.TypeExpense, transaction.Data.Type)
		})
	}

	transaction := createTestTransaction(suite.T(), headers, v1.TransactionEditable{Amount: decimal.NewFromInt(1), Description: "Bus"}, http.StatusBadRequest)
	suite.Require().NotNil(transaction.Error)
	suite.Assert().Equal(ledger.ErrCategoryMissing.Error(), *transaction.Error)
}
