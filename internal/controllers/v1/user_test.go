package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/finora/backend/internal/controllers/v1"
	"github.com/finora/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUserGet() {
	headers := authHeader(suite.T(), v1.SignUpRequest{Email: "ada@example.com", Name: "Ada", CountryCode: "GB"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/me", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var user v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &user)
	suite.Assert().Equal("ada@example.com", user.Data.Email)
	suite.Assert().Equal("Ada", user.Data.Name)
	suite.Assert().Equal("GBP", user.Data.Currency)

	// The hash is never part of a response
	suite.Assert().NotContains(r.Body.String(), "password")
}

func (suite *TestSuiteStandard) TestUserUpdate() {
	headers := authHeader(suite.T(), v1.SignUpRequest{Name: "Ada", CountryCode: "ID"})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/users/me", map[string]any{
		"bio":      "Saving for a trip to Japan",
		"currency": " jpy ",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var user v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &user)
	suite.Assert().Equal("Ada", user.Data.Name, "Fields not in the body are kept")
	suite.Assert().Equal("Saving for a trip to Japan", user.Data.Bio)
	suite.Assert().Equal("JPY", user.Data.Currency)

	// Fields can be cleared
	r = test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/users/me", map[string]any{"bio": ""}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/me", "", headers)
	test.DecodeResponse(suite.T(), &r, &user)
	suite.Assert().Equal("", user.Data.Bio)
	suite.Assert().Equal("JPY", user.Data.Currency)
}

func (suite *TestSuiteStandard) TestUserUpdateFails() {
	headers := authHeader(suite.T())

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Unsupported currency", map[string]any{"currency": "XYZ"}, http.StatusBadRequest},
		{"Malformed currency", map[string]any{"currency": "Rupiah"}, http.StatusBadRequest},
		{"Empty currency", map[string]any{"currency": ""}, http.StatusBadRequest},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest},
		{"Empty body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, "http://example.com/v1/users/me", tt.body, headers)
			test.AssertHTTPStatus(t, &r, tt.status)

			var user v1.UserResponse
			test.DecodeResponse(t, &r, &user)
			require.NotNil(t, user.Error)
			assert.Nil(t, user.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestUserOptions() {
	headers := authHeader(suite.T())

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/users/me", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH", r.Header().Get("allow"))
}
