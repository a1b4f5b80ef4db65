package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/proyect-bank/backend/internal/httputil"
	"github.com/proyect-bank/backend/internal/models"
)

// BudgetRequest is the body for creating or updating a budget. The
// start date defaults to the current day when unset.
type BudgetRequest struct {
	Name      *string    `json:"name" binding:"required"`
	Balance   *int64     `json:"balance" binding:"required"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	PhaseID   *uint64    `json:"phase_id" binding:"required"`
	ProfileID *uint64    `json:"profile_id" binding:"required"`
}

// GetBudgets returns all budgets, newest first.
func (co Controller) GetBudgets(c *gin.Context) {
	budgets, err := models.All[models.Budget](co.db)
	if err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// GetBudget returns a specific budget.
func (co Controller) GetBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpMessage{Message: err.Error()})
		return
	}

	budget, err := models.One[models.Budget](co.db, uri.ID)
	if err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, budget)
}

// CreateBudget creates a new budget after resolving its phase and
// profile references.
func (co Controller) CreateBudget(c *gin.Context) {
	var body BudgetRequest
	if err := httputil.BindData(c, &body); err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	budget := models.Budget{
		Name:      *body.Name,
		Balance:   *body.Balance,
		EndDate:   body.EndDate,
		PhaseID:   *body.PhaseID,
		ProfileID: *body.ProfileID,
	}

	if body.StartDate != nil {
		budget.StartDate = *body.StartDate
	}

	if err := models.Create(co.db, &budget); err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// UpdateBudget replaces an existing budget, re-running the same
// reference checks and slug derivation as CreateBudget.
func (co Controller) UpdateBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpMessage{Message: err.Error()})
		return
	}

	budget, err := models.One[models.Budget](co.db, uri.ID)
	if err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	var body BudgetRequest
	if err := httputil.BindData(c, &body); err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	budget.Name = *body.Name
	budget.Balance = *body.Balance
	budget.EndDate = body.EndDate
	budget.PhaseID = *body.PhaseID
	budget.ProfileID = *body.ProfileID

	if body.StartDate != nil {
		budget.StartDate = *body.StartDate
	}

	if err := models.Update(co.db, &budget); err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// DeleteBudget deletes a budget.
func (co Controller) DeleteBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpMessage{Message: err.Error()})
		return
	}

	if err := models.Delete[models.Budget](co.db, uri.ID); err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, httpMessage{Message: "the record has been deleted"})
}
