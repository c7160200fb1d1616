package v4_test

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	v4 "github.com/twigs-app/backend/internal/controllers/v4"
	"github.com/twigs-app/backend/test"
)

const usersURL = "http://example.com/v4/users"
const meURL = "http://example.com/v4/users/me"

func basicAuth(username, password string) map[string]string {
	return map[string]string{
		"Authorization": "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password)),
	}
}

func createTestUser(t *testing.T, c v4.UserCreate, expectedStatus ...int) v4.UserResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, usersURL, c)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var u v4.UserResponse
	test.DecodeResponse(t, &r, &u)

	return u
}

func (suite *TestSuiteStandard) TestUsersCreate() {
	user := createTestUser(suite.T(), v4.UserCreate{Username: " alex ", Email: "alex@example.com", Password: "hunter2"})
	suite.Assert().Equal("alex", user.Data.Username)
	suite.Assert().Equal("alex@example.com", user.Data.Email)
	suite.Assert().Equal(meURL, user.Data.Links.Self)
	suite.Assert().NotContains(user.Data.Links.Self, "hunter2")

	tests := []struct {
		name string
		user v4.UserCreate
	}{
		{"Username taken", v4.UserCreate{Username: "alex", Password: "secret"}},
		{"Empty username", v4.UserCreate{Username: " ", Password: "secret"}},
		{"Empty password", v4.UserCreate{Username: "sam"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			u := createTestUser(t, tt.user, http.StatusBadRequest)
			assert.NotNil(t, u.Error)
			assert.Nil(t, u.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestUsersOptions() {
	r := test.Request(suite.T(), http.MethodOptions, usersURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))

	// No authentication needed for preflight requests
	r = test.Request(suite.T(), http.MethodOptions, meURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestUsersMe() {
	_ = createTestUser(suite.T(), v4.UserCreate{Username: "alex", Email: "alex@example.com", Password: "hunter2"})

	tests := []struct {
		name    string
		headers []map[string]string
		status  int
	}{
		{"Valid credentials", []map[string]string{basicAuth("alex", "hunter2")}, http.StatusOK},
		{"Wrong password", []map[string]string{basicAuth("alex", "hunter3")}, http.StatusUnauthorized},
		{"Unknown user", []map[string]string{basicAuth("sam", "hunter2")}, http.StatusUnauthorized},
		{"No credentials", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, meURL, "", tt.headers...)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var u v4.UserResponse
				test.DecodeResponse(t, &r, &u)
				assert.Equal(t, "alex", u.Data.Username)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestUsersChangeEmail() {
	_ = createTestUser(suite.T(), v4.UserCreate{Username: "alex", Email: "alex@example.com", Password: "hunter2"})

	r := test.Request(suite.T(), http.MethodPatch, meURL, map[string]any{"email": "alex@example.org"}, basicAuth("alex", "hunter2"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, meURL, "", basicAuth("alex", "hunter2"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var u v4.UserResponse
	test.DecodeResponse(suite.T(), &r, &u)
	suite.Assert().Equal("alex@example.org", u.Data.Email)
}

func (suite *TestSuiteStandard) TestUsersChangePassword() {
	_ = createTestUser(suite.T(), v4.UserCreate{Username: "alex", Password: "hunter2"})

	tests := []struct {
		name   string
		body   map[string]any
		status int
	}{
		{"Current password missing", map[string]any{"password": "correct horse"}, http.StatusBadRequest},
		{"Current password wrong", map[string]any{"password": "correct horse", "currentPassword": "hunter3"}, http.StatusBadRequest},
		{"New password empty", map[string]any{"password": "", "currentPassword": "hunter2"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, meURL, tt.body, basicAuth("alex", "hunter2"))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodPatch, meURL, map[string]any{"password": "correct horse", "currentPassword": "hunter2"}, basicAuth("alex", "hunter2"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, meURL, "", basicAuth("alex", "hunter2"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.T(), http.MethodGet, meURL, "", basicAuth("alex", "correct horse"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestUsersDelete() {
	_ = createTestUser(suite.T(), v4.UserCreate{Username: "alex", Password: "hunter2"})

	r := test.Request(suite.T(), http.MethodDelete, meURL, "", basicAuth("alex", "hunter3"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.T(), http.MethodDelete, meURL, "", basicAuth("alex", "hunter2"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, meURL, "", basicAuth("alex", "hunter2"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	// The username can be used again
	_ = createTestUser(suite.T(), v4.UserCreate{Username: "alex", Password: "hunter2"})
}

func (suite *TestSuiteStandard) TestUsersDBClosed() {
	_ = createTestUser(suite.T(), v4.UserCreate{Username: "alex", Password: "hunter2"})
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, meURL, "", basicAuth("alex", "hunter2"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	_ = createTestUser(suite.T(), v4.UserCreate{Username: "sam", Password: "hunter2"}, http.StatusInternalServerError)
}
