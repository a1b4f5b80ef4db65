package controllers_test

import (
	"net/http"

	"github.com/proyect-bank/backend/internal/models"
	"github.com/proyect-bank/backend/internal/test"
)

func (suite *TestSuiteStandard) TestCreateAccount() {
	state := suite.createTestLookup("state", "active")
	accountType := suite.createTestLookup("type", "checking")
	profile := suite.createTestProfile("user@example.com", state.ID)

	account := suite.createTestAccount("Main Account", 1000, state.ID, profile.ID, accountType.ID)

	suite.Assert().Equal("main-account", account.Slug)
	suite.Assert().Equal(int64(1000), account.Balance)
}

func (suite *TestSuiteStandard) TestCreateAccountZeroBalance() {
	state := suite.createTestLookup("state", "active")
	accountType := suite.createTestLookup("type", "checking")
	profile := suite.createTestProfile("user@example.com", state.ID)

	// A balance of 0 is valid input, not a missing field
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/proyect/account", map[string]any{
		"name":       "Empty",
		"balance":    0,
		"state_id":   state.ID,
		"profile_id": profile.ID,
		"type_id":    accountType.ID,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)
}

func (suite *TestSuiteStandard) TestCreateAccountUnknownReference() {
	state := suite.createTestLookup("state", "active")
	accountType := suite.createTestLookup("type", "checking")

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/proyect/account", map[string]any{
		"name":       "Main",
		"balance":    1000,
		"state_id":   state.ID,
		"profile_id": 99,
		"type_id":    accountType.ID,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestUpdateAccount() {
	state := suite.createTestLookup("state", "active")
	accountType := suite.createTestLookup("type", "checking")
	profile := suite.createTestProfile("user@example.com", state.ID)
	suite.createTestAccount("Main", 1000, state.ID, profile.ID, accountType.ID)

	recorder := test.Request(suite.T(), suite.router, http.MethodPut, "/proyect/account/1", map[string]any{
		"name":       "Main Renamed",
		"balance":    2000,
		"state_id":   state.ID,
		"profile_id": profile.ID,
		"type_id":    accountType.ID,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var account models.Account
	test.DecodeResponse(suite.T(), &recorder, &account)
	suite.Assert().Equal("main-renamed", account.Slug)
	suite.Assert().Equal(int64(2000), account.Balance)
}

func (suite *TestSuiteStandard) TestGetMissingAccount() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/proyect/account/42", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)

	var body message
	test.DecodeResponse(suite.T(), &recorder, &body)
	suite.Assert().Equal("there is no account matching your query", body.Message)
}

func (suite *TestSuiteStandard) TestCreateBudget() {
	state := suite.createTestLookup("state", "active")
	phase := suite.createTestLookup("phase", "monthly")
	profile := suite.createTestProfile("user@example.com", state.ID)

	budget := suite.createTestBudget("House Fund", 10000, phase.ID, profile.ID)

	suite.Assert().Contains(budget.Slug, "house-fund-")
	suite.Assert().False(budget.StartDate.IsZero())
	suite.Assert().Nil(budget.EndDate)
}

func (suite *TestSuiteStandard) TestCreateBudgetWithDates() {
	state := suite.createTestLookup("state", "active")
	phase := suite.createTestLookup("phase", "monthly")
	profile := suite.createTestProfile("user@example.com", state.ID)

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/proyect/budget", map[string]any{
		"name":       "House Fund",
		"balance":    10000,
		"start_date": "2026-01-01T00:00:00Z",
		"end_date":   "2026-06-30T00:00:00Z",
		"phase_id":   phase.ID,
		"profile_id": profile.ID,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var budget models.Budget
	test.DecodeResponse(suite.T(), &recorder, &budget)
	suite.Assert().Equal("house-fund-20260101", budget.Slug)
	suite.Require().NotNil(budget.EndDate)
}
