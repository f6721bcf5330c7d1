package v1_test

import (
	"net/http"
	"strings"

	v1 "github.com/bloggerdesk/backend/internal/controllers/v1"
	"github.com/bloggerdesk/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/login", `{"password": "wrong"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)
}

func (suite *TestSuiteStandard) TestUnauthenticatedRequestsRejected() {
	for _, url := range []string{"/v1/bloggers", "/v1/orders", "/v1/dashboard"} {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, url, nil)
		test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)
	}
}

func (suite *TestSuiteStandard) TestHealthzWithoutLogin() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/healthz", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
}

func (suite *TestSuiteStandard) TestVersionWithoutLogin() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/version", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
}

func (suite *TestSuiteStandard) TestLogout() {
	recorder := suite.request(http.MethodPost, "/v1/logout", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.LoginResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.False(suite.T(), response.Data.Authenticated)

	// The session cookie is re-issued without the login flag. Sessions
	// live in the cookie itself, so the client has to follow the update.
	cookies := recorder.Result().Header.Values("Set-Cookie")
	if assert.NotEmpty(suite.T(), cookies, "Logout did not update the session cookie") {
		suite.cookie = strings.Split(cookies[0], ";")[0]
	}

	recorder = suite.request(http.MethodGet, "/v1/bloggers", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)
}

func (suite *TestSuiteStandard) TestLoginGrantsAccess() {
	recorder := suite.request(http.MethodGet, "/v1/bloggers", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
}
