package controllers_test

import (
	"net/http"

	"github.com/proyect-bank/backend/internal/models"
	"github.com/proyect-bank/backend/internal/test"
)

func (suite *TestSuiteStandard) TestLookupCreateAndList() {
	for _, kind := range []string{"state", "type", "category", "movement", "phase"} {
		recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/proyect/"+kind, map[string]string{"name": "Test Name"})
		test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

		recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/proyect/"+kind, "")
		test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

		var resources []map[string]any
		test.DecodeResponse(suite.T(), &recorder, &resources)
		suite.Require().Len(resources, 1, "kind %s", kind)
		suite.Assert().Equal("Test Name", resources[0]["name"])
		suite.Assert().Equal("test-name", resources[0]["slug"])
	}
}

func (suite *TestSuiteStandard) TestLookupDuplicateName() {
	suite.createTestLookup("state", "active")

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/proyect/state", map[string]string{"name": "active"})
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &recorder)

	var body message
	test.DecodeResponse(suite.T(), &recorder, &body)
	suite.Assert().Equal(models.ErrStateNameNotUnique.Error(), body.Message)
}

func (suite *TestSuiteStandard) TestMovementDuplicateNameAllowed() {
	suite.createTestLookup("movement", "payment")

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/proyect/movement", map[string]string{"name": "payment"})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)
}

func (suite *TestSuiteStandard) TestLookupMissingName() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/proyect/state", map[string]string{})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var body message
	test.DecodeResponse(suite.T(), &recorder, &body)
	suite.Assert().Equal("the name field is required", body.Message)
}
