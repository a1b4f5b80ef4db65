package controllers_test

import (
	"net/http"

	"github.com/proyect-bank/backend/internal/test"
)

func (suite *TestSuiteStandard) TestLogin() {
	state := suite.createTestLookup("state", "active")
	suite.createTestProfile("user@example.com", state.ID)

	token := suite.login("user@example.com", "hunter2")
	suite.Assert().NotEmpty(token)
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	state := suite.createTestLookup("state", "active")
	suite.createTestProfile("user@example.com", state.ID)

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/proyect/login", map[string]string{
		"email":    "user@example.com",
		"password": "wrong",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var body message
	test.DecodeResponse(suite.T(), &recorder, &body)
	suite.Assert().Equal("the email or password is incorrect", body.Message)
}

func (suite *TestSuiteStandard) TestLoginUnknownEmail() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/proyect/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "hunter2",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	// Unknown emails get the same message as wrong passwords
	var body message
	test.DecodeResponse(suite.T(), &recorder, &body)
	suite.Assert().Equal("the email or password is incorrect", body.Message)
}

func (suite *TestSuiteStandard) TestLoginValidation() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/proyect/login", map[string]string{
		"password": "hunter2",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var body message
	test.DecodeResponse(suite.T(), &recorder, &body)
	suite.Assert().Equal("the email field is required", body.Message)
}

func (suite *TestSuiteStandard) TestLoginRateLimited() {
	body := map[string]string{
		"email":    "nobody@example.com",
		"password": "wrong",
	}

	for i := 0; i < loginLimit; i++ {
		recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/proyect/login", body)
		test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
	}

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/proyect/login", body)
	test.AssertHTTPStatus(suite.T(), http.StatusTooManyRequests, &recorder)
}
