package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/finora/backend/internal/controllers/v1"
	"github.com/finora/backend/internal/models"
	"github.com/finora/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct horse battery"

// createTestUser signs up a user via the v1 API.
func createTestUser(t *testing.T, request v1.SignUpRequest, expectedStatus ...int) v1.UserResponse {
	if request.Email == "" {
		request.Email = fmt.Sprintf("%s@example.com", uuid.NewString())
	}

	if request.Password == "" {
		request.Password = testPassword
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/sign-up", request)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.UserResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

// signIn signs in via the v1 API.
func signIn(t *testing.T, email, password string, expectedStatus ...int) v1.SessionResponse {
	// Default to 200 OK as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/sign-in", v1.SignInRequest{Email: email, Password: password})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.SessionResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

// authHeader creates a user and returns the Authorization header to
// authenticate as it.
func authHeader(t *testing.T, request ...v1.SignUpRequest) map[string]string {
	var r v1.SignUpRequest
	if len(request) > 0 {
		r = request[0]
	}

	user := createTestUser(t, r)
	session := signIn(t, user.Data.Email, testPassword)
	require.NotNil(t, session.Data)

	return map[string]string{"Authorization": "Bearer " + session.Data.Token}
}

// categoryID returns the ID of the default category with the name.
func categoryID(t *testing.T, name string) uuid.UUID {
	var category models.Category
	require.Nil(t, models.DB.Where(&models.Category{Name: name}).First(&category).Error, "category %s", name)
	return category.ID
}

// createTestTransaction creates a test transaction via the v1 API.
func createTestTransaction(t *testing.T, headers map[string]string, transaction v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	reqBody := []v1.TransactionEditable{transaction}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", reqBody, headers)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var tr v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &tr)
	require.Len(t, tr.Data, 1)

	return tr.Data[0]
}

// createTestMatchRule creates a test match rule via the v1 API.
func createTestMatchRule(t *testing.T, headers map[string]string, matchRule v1.MatchRuleEditable, expectedStatus ...int) v1.MatchRuleResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/match-rules", []v1.MatchRuleEditable{matchRule}, headers)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.MatchRuleCreateResponse
	test.DecodeResponse(t, &r, &response)
	require.Len(t, response.Data, 1)

	return response.Data[0]
}

// monthlyBalances returns the monthly balances matching the query.
func monthlyBalances(t *testing.T, headers map[string]string, query string) []v1.MonthlyBalance {
	r := test.Request(t, http.MethodGet, "http://example.com/v1/monthly-balances"+query, "", headers)
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.MonthlyBalanceListResponse
	test.DecodeResponse(t, &r, &response)

	return response.Data
}
