package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"testing"

	"github.com/finora/backend/internal/config"
	"github.com/finora/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Request runs a request against a freshly configured router.
//
// The router is built for every request so that changes to the environment
// made with t.Setenv are picked up. body can be a string, a *bytes.Buffer
// or anything that marshals to JSON.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	req, err := http.NewRequest(method, reqURL, requestBody(t, body))
	require.Nil(t, err, "request could not be built")

	for _, h := range headers {
		for name, value := range h {
			req.Header.Set(name, value)
		}
	}

	apiURL, ok := os.LookupEnv("API_URL")
	require.True(t, ok, "environment variable API_URL must be set")

	baseURL, err := url.Parse(apiURL)
	require.Nil(t, err, "environment variable API_URL must be a valid URL")

	r, teardown, err := router.Config(baseURL)
	defer teardown()
	require.Nil(t, err, "router could not be initialized")

	router.AttachRoutes(r.Group("/"), config.Load())

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return *recorder
}

func requestBody(t *testing.T, body any) *bytes.Buffer {
	switch b := body.(type) {
	case string:
		return bytes.NewBufferString(b)
	case *bytes.Buffer:
		return b
	}

	data, err := json.Marshal(body)
	require.Nil(t, err, "request body could not be marshalled")
	return bytes.NewBuffer(data)
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
