package v1_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/finora/backend/internal/auth"
	v1 "github.com/finora/backend/internal/controllers/v1"
	"github.com/finora/backend/internal/models"
	"github.com/finora/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAuthSignUp() {
	user := createTestUser(suite.T(), v1.SignUpRequest{
		Email:       "  Ada@Example.com ",
		Name:        "Ada Lovelace",
		CountryCode: "id",
	})

	suite.Require().NotNil(user.Data)
	suite.Assert().Nil(user.Error)
	suite.Assert().Equal("ada@example.com", user.Data.Email)
	suite.Assert().Equal("Ada Lovelace", user.Data.Name)
	suite.Assert().Equal("ID", user.Data.CountryCode)
	suite.Assert().Equal("IDR", user.Data.Currency)
	suite.Assert().Equal("http://example.com/v1/users/me", user.Data.Links.Self)

	// The password is stored as hash only
	var stored models.User
	suite.Require().Nil(models.DB.First(&stored, "id = ?", user.Data.ID).Error)
	suite.Assert().NotEqual(testPassword, stored.PasswordHash)
	suite.Assert().Nil(auth.ComparePassword(stored.PasswordHash, testPassword))
}

func (suite *TestSuiteStandard) TestAuthSignUpDefaultCurrency() {
	user := createTestUser(suite.T(), v1.SignUpRequest{})
	suite.Assert().Equal("", user.Data.CountryCode)
	suite.Assert().Equal("USD", user.Data.Currency)
}

func (suite *TestSuiteStandard) TestAuthSignUpFails() {
	createTestUser(suite.T(), v1.SignUpRequest{Email: "taken@example.com"})

	tests := []struct {
		name    string
		request v1.SignUpRequest
		status  int
		err     string
	}{
		{"Invalid email", v1.SignUpRequest{Email: "not an email", Password: testPassword}, http.StatusBadRequest, "the email address is not valid"},
		{"Email with display name", v1.SignUpRequest{Email: "Ada <ada@example.com>", Password: testPassword}, http.StatusBadRequest, "the email address is not valid"},
		{"Password too short", v1.SignUpRequest{Email: "short@example.com", Password: "1234567"}, http.StatusBadRequest, auth.ErrPasswordTooShort.Error()},
		{"Password too long", v1.SignUpRequest{Email: "long@example.com", Password: strings.Repeat("a", 73)}, http.StatusBadRequest, auth.ErrPasswordTooLong.Error()},
		{"Country code with three letters", v1.SignUpRequest{Email: "deu@example.com", Password: testPassword, CountryCode: "DEU"}, http.StatusBadRequest, "the country code must be an ISO 3166-1 alpha-2 code"},
		{"Country code not a region", v1.SignUpRequest{Email: "region@example.com", Password: testPassword, CountryCode: "1A"}, http.StatusBadRequest, "the country code must be an ISO 3166-1 alpha-2 code"},
		{"Email taken, ignoring case", v1.SignUpRequest{Email: "TAKEN@example.com", Password: testPassword}, http.StatusBadRequest, models.ErrEmailNotUnique.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/sign-up", tt.request)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.UserResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Equal(t, tt.err, *response.Error)
			assert.Nil(t, response.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestAuthSignUpBrokenBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/sign-up", `{ "email": 2 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/sign-up", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAuthSignUpGeocoding() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.Assert().Equal("/reverse", r.URL.Path)
		suite.Assert().Equal("52.52", r.URL.Query().Get("lat"))
		suite.Assert().Equal("13.405", r.URL.Query().Get("lon"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"address": {"country": "Germany", "country_code": "de"}}`))
	}))
	defer server.Close()

	os.Setenv("NOMINATIM_URL", server.URL)
	defer os.Setenv("NOMINATIM_URL", "http://127.0.0.1:1")

	latitude, longitude := 52.52, 13.405
	user := createTestUser(suite.T(), v1.SignUpRequest{Latitude: &latitude, Longitude: &longitude})
	suite.Assert().Equal("DE", user.Data.CountryCode)
	suite.Assert().Equal("EUR", user.Data.Currency)

	// An explicit country code wins over the coordinates
	user = createTestUser(suite.T(), v1.SignUpRequest{CountryCode: "JP", Latitude: &latitude, Longitude: &longitude})
	suite.Assert().Equal("JP", user.Data.CountryCode)
	suite.Assert().Equal("JPY", user.Data.Currency)
}

func (suite *TestSuiteStandard) TestAuthSignUpGeocodingFails() {
	// NOMINATIM_URL points to a closed port
	latitude, longitude := -6.2, 106.816666
	user := createTestUser(suite.T(), v1.SignUpRequest{Latitude: &latitude, Longitude: &longitude})
	suite.Assert().Equal("", user.Data.CountryCode)
	suite.Assert().Equal("USD", user.Data.Currency)
}

func (suite *TestSuiteStandard) TestAuthSignIn() {
	user := createTestUser(suite.T(), v1.SignUpRequest{Email: "grace@example.com", Name: "Grace"})

	session := signIn(suite.T(), " GRACE@example.com", testPassword)
	suite.Require().NotNil(session.Data)
	suite.Assert().NotEmpty(session.Data.Token)
	suite.Assert().True(session.Data.ExpiresAt.After(time.Now()))
	suite.Assert().Equal(user.Data.ID, session.Data.User.ID)
	suite.Assert().Equal("Grace", session.Data.User.Name)

	// The token authenticates requests
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/me", "", map[string]string{"Authorization": "Bearer " + session.Data.Token})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestAuthSignInFails() {
	createTestUser(suite.T(), v1.SignUpRequest{Email: "grace@example.com"})

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"Wrong password", "grace@example.com", "not the password"},
		{"Unknown email", "ada@example.com", testPassword},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			session := signIn(t, tt.email, tt.password, http.StatusUnauthorized)
			require.NotNil(t, session.Error)
			assert.Equal(t, auth.ErrInvalidCredentials.Error(), *session.Error)
			assert.Nil(t, session.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestAuthMiddleware() {
	headers := authHeader(suite.T())

	tests := []struct {
		name    string
		headers map[string]string
		err     string
	}{
		{"No header", map[string]string{}, auth.ErrMissingToken.Error()},
		{"Not a bearer token", map[string]string{"Authorization": "Basic YWRhOmFkYQ=="}, auth.ErrMissingToken.Error()},
		{"Empty bearer token", map[string]string{"Authorization": "Bearer  "}, auth.ErrMissingToken.Error()},
		{"Invalid token", map[string]string{"Authorization": "Bearer not.a.token"}, auth.ErrInvalidToken.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/transactions", "", tt.headers)
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)

			var response struct {
				Error string `json:"error"`
			}
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.err, response.Error)
		})
	}

	// Valid header for comparison
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestAuthDeletedUser() {
	headers := authHeader(suite.T(), v1.SignUpRequest{Email: "gone@example.com"})
	suite.Require().Nil(models.DB.Where(&models.User{Email: "gone@example.com"}).Delete(&models.User{}).Error)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/me", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestAuthOptions() {
	for _, path := range []string{"/v1/auth/sign-up", "/v1/auth/sign-in"} {
		r := test.Request(suite.T(), http.MethodOptions, "http://example.com"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"), path)
	}
}
