package controllers_test

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/proyect-bank/backend/internal/auth"
	"github.com/proyect-bank/backend/internal/test"
)

func (suite *TestSuiteStandard) setupLogin() string {
	state := suite.createTestLookup("state", "active")
	suite.createTestProfile("user@example.com", state.ID)
	return suite.login("user@example.com", "hunter2")
}

func (suite *TestSuiteStandard) TestAuthenticatedRequest() {
	token := suite.setupLogin()

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/proyect/profile", "", map[string]string{
		"Authorization": token,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
}

func (suite *TestSuiteStandard) TestAuthenticationTokenFormats() {
	token := suite.setupLogin()

	// Clients send the token raw, quoted or with a Bearer prefix
	for _, header := range []string{
		token,
		`"` + token + `"`,
		"Bearer " + token,
	} {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/proyect/profile", "", map[string]string{
			"Authorization": header,
		})
		test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	}
}

func (suite *TestSuiteStandard) TestAuthenticationMissingToken() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/proyect/profile", "")
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)

	var body message
	test.DecodeResponse(suite.T(), &recorder, &body)
	suite.Assert().Equal("the request is not authorized", body.Message)
}

func (suite *TestSuiteStandard) TestAuthenticationInvalidToken() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/proyect/profile", "", map[string]string{
		"Authorization": "not-a-token",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)

	var body message
	test.DecodeResponse(suite.T(), &recorder, &body)
	suite.Assert().Equal("the token is not valid", body.Message)
}

func (suite *TestSuiteStandard) TestAuthenticationExpiredToken() {
	claims := auth.Claims{
		ProfileID: 1,
		Email:     "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	suite.Require().Nil(err)

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/proyect/profile", "", map[string]string{
		"Authorization": token,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)

	var body message
	test.DecodeResponse(suite.T(), &recorder, &body)
	suite.Assert().Equal("the token has expired", body.Message)
}

func (suite *TestSuiteStandard) TestProtectedRoutes() {
	// All routes behind the authentication middleware
	for _, path := range []string{
		"/proyect/profile",
		"/proyect/profile/1",
		"/proyect/account",
	} {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, path, "")
		test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)
	}
}
