package models_test

import (
	"time"

	"github.com/proyect-bank/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCreateDerivesSlug() {
	state := suite.createTestState("Näx Active!")
	suite.Assert().Equal("nax-active", state.Slug)

	profile := suite.createTestProfile("user@example.com", state.ID)
	suite.Assert().Equal("user-example-com", profile.Slug)
}

func (suite *TestSuiteStandard) TestBudgetSlugHasStartDate() {
	state := suite.createTestState("active")
	phase := suite.createTestPhase("monthly")
	profile := suite.createTestProfile("user@example.com", state.ID)

	budget := models.Budget{
		Name:      "House Fund",
		Balance:   10000,
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		PhaseID:   phase.ID,
		ProfileID: profile.ID,
	}
	suite.Require().Nil(models.Create(suite.db, &budget))

	suite.Assert().Equal("house-fund-20260101", budget.Slug)
}

func (suite *TestSuiteStandard) TestBudgetStartDateDefaults() {
	state := suite.createTestState("active")
	phase := suite.createTestPhase("monthly")
	profile := suite.createTestProfile("user@example.com", state.ID)

	budget := suite.createTestBudget("House Fund", 10000, phase.ID, profile.ID)

	suite.Assert().False(budget.StartDate.IsZero())
	suite.Assert().Contains(budget.Slug, "house-fund-")
}

func (suite *TestSuiteStandard) TestDuplicateProfileEmail() {
	state := suite.createTestState("active")
	suite.createTestProfile("user@example.com", state.ID)

	duplicate := models.Profile{Email: "user@example.com", Password: "irrelevant-hash", StateID: state.ID}
	err := models.Create(suite.db, &duplicate)

	suite.Assert().ErrorIs(err, models.ErrAlreadyExists)
	suite.Assert().ErrorIs(err, models.ErrProfileEmailNotUnique)

	// The conflicting row must not have been written
	profiles, err := models.All[models.Profile](suite.db)
	suite.Require().Nil(err)
	suite.Assert().Len(profiles, 1)
}

func (suite *TestSuiteStandard) TestDuplicateAccountName() {
	state := suite.createTestState("active")
	accountType := suite.createTestType("checking")
	profile := suite.createTestProfile("user@example.com", state.ID)
	suite.createTestAccount("Main", 1000, state.ID, profile.ID, accountType.ID)

	duplicate := models.Account{Name: "Main", StateID: state.ID, ProfileID: profile.ID, TypeID: accountType.ID}
	err := models.Create(suite.db, &duplicate)

	suite.Assert().ErrorIs(err, models.ErrAccountNameNotUnique)
}

func (suite *TestSuiteStandard) TestMovementNameNotUnique() {
	suite.createTestMovement("payment")

	// Movement names may repeat
	second := models.Movement{Name: "payment"}
	suite.Assert().Nil(models.Create(suite.db, &second))
}

func (suite *TestSuiteStandard) TestUpdateRederivesSlug() {
	state := suite.createTestState("active")
	accountType := suite.createTestType("checking")
	profile := suite.createTestProfile("user@example.com", state.ID)
	account := suite.createTestAccount("Main", 1000, state.ID, profile.ID, accountType.ID)

	account.Name = "Main Renamed"
	suite.Require().Nil(models.Update(suite.db, &account))
	suite.Assert().Equal("main-renamed", account.Slug)

	reloaded, err := models.One[models.Account](suite.db, account.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("main-renamed", reloaded.Slug)
}

func (suite *TestSuiteStandard) TestUpdateDoesNotConflictWithOwnRow() {
	state := suite.createTestState("active")
	accountType := suite.createTestType("checking")
	profile := suite.createTestProfile("user@example.com", state.ID)
	account := suite.createTestAccount("Main", 1000, state.ID, profile.ID, accountType.ID)

	account.Balance = 2000
	suite.Assert().Nil(models.Update(suite.db, &account))
}

func (suite *TestSuiteStandard) TestProfileWithUnknownState() {
	profile := models.Profile{Email: "user@example.com", Password: "irrelevant-hash", StateID: 99}
	err := models.Create(suite.db, &profile)

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	// Nothing may have been written
	profiles, listErr := models.All[models.Profile](suite.db)
	suite.Require().Nil(listErr)
	suite.Assert().Len(profiles, 0)
}

func (suite *TestSuiteStandard) TestOneNotFound() {
	_, err := models.One[models.Account](suite.db, 42)

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no account matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestOneNotFoundSingularizesIes() {
	_, err := models.One[models.Category](suite.db, 42)

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no category matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestAllOrderAndEmpty() {
	states, err := models.All[models.State](suite.db)
	suite.Require().Nil(err)
	suite.Assert().NotNil(states)
	suite.Assert().Len(states, 0)

	suite.createTestState("first")
	suite.createTestState("second")

	states, err = models.All[models.State](suite.db)
	suite.Require().Nil(err)
	suite.Require().Len(states, 2)
	suite.Assert().Equal("second", states[0].Name)
	suite.Assert().Equal("first", states[1].Name)
}

func (suite *TestSuiteStandard) TestDelete() {
	state := suite.createTestState("active")

	suite.Require().Nil(models.Delete[models.State](suite.db, state.ID))

	_, err := models.One[models.State](suite.db, state.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteMissing() {
	err := models.Delete[models.State](suite.db, 42)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
