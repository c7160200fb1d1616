package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twigs-app/backend/internal/router"
)

// Request serves a single request with a router configured from API_URL.
//
// Every call configures a new router, nothing is shared between requests
// except the database.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	apiURL, ok := os.LookupEnv("API_URL")
	require.True(t, ok, "environment variable API_URL must be set")

	baseURL, err := url.Parse(apiURL)
	require.Nil(t, err, "environment variable API_URL must be a valid URL")

	r, teardown, err := router.Config(baseURL)
	require.Nil(t, err, "Router could not be initialized")
	defer teardown()

	router.AttachRoutes(r.Group("/"))

	return Serve(t, r, method, reqURL, body, headers...)
}

// Serve sends a request to the handler and records the response. Strings are
// sent as they are, all other bodies are encoded as JSON.
func Serve(t *testing.T, handler http.Handler, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	req, err := http.NewRequest(method, reqURL, requestBody(t, body))
	require.Nil(t, err, "Request could not be created")

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	return *recorder
}

func requestBody(t *testing.T, body any) io.Reader {
	switch b := body.(type) {
	case nil:
		return http.NoBody
	case string:
		return strings.NewReader(b)
	}

	encoded, err := json.Marshal(body)
	require.Nil(t, err, "Request body could not be encoded")

	return bytes.NewReader(encoded)
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	require.Nil(t, err, "Unable to parse response from server %q into %v, Request ID: %s", r.Body, reflect.TypeOf(target), r.Result().Header.Get("x-request-id"))
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
