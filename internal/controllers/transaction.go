package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/proyect-bank/backend/internal/httputil"
	"github.com/proyect-bank/backend/internal/models"
)

// TransactionRequest is the body for the transfer operation and for
// transaction updates. Fields are validated in declaration order so
// the first failing field is deterministic.
type TransactionRequest struct {
	Amount      *int64  `json:"amount" binding:"required"`
	SenderID    *uint64 `json:"sender_id" binding:"required"`
	RecipientID *uint64 `json:"recipient_id" binding:"required"`
	BudgetID    *uint64 `json:"budget_id" binding:"required"`
	CategoryID  *uint64 `json:"category_id" binding:"required"`
	MovementID  *uint64 `json:"movement_id" binding:"required"`
}

// GetTransactions returns all transactions, newest first.
func (co Controller) GetTransactions(c *gin.Context) {
	transactions, err := models.All[models.Transaction](co.db)
	if err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// GetTransaction returns a specific transaction.
func (co Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpMessage{Message: err.Error()})
		return
	}

	transaction, err := models.One[models.Transaction](co.db, uri.ID)
	if err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// CreateTransaction performs the transfer operation: it validates the
// referenced accounts, category, budget and movement, then debits the
// sender, credits the recipient and records the transaction in one
// unit of work.
func (co Controller) CreateTransaction(c *gin.Context) {
	var body TransactionRequest
	if err := httputil.BindData(c, &body); err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	transaction, err := models.Transfer(co.db, models.TransferRequest{
		Amount:      *body.Amount,
		SenderID:    *body.SenderID,
		RecipientID: *body.RecipientID,
		BudgetID:    *body.BudgetID,
		CategoryID:  *body.CategoryID,
		MovementID:  *body.MovementID,
	})
	if err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// UpdateTransaction replaces the recorded fields of a transaction and
// re-derives its slug. Account balances are not reconciled
// retroactively.
func (co Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpMessage{Message: err.Error()})
		return
	}

	transaction, err := models.One[models.Transaction](co.db, uri.ID)
	if err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	var body TransactionRequest
	if err := httputil.BindData(c, &body); err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	transaction.Amount = *body.Amount
	transaction.SenderID = *body.SenderID
	transaction.RecipientID = *body.RecipientID
	transaction.BudgetID = *body.BudgetID
	transaction.CategoryID = *body.CategoryID
	transaction.MovementID = *body.MovementID

	if err := models.Update(co.db, &transaction); err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// DeleteTransaction deletes a transaction.
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpMessage{Message: err.Error()})
		return
	}

	if err := models.Delete[models.Transaction](co.db, uri.ID); err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, httpMessage{Message: "the record has been deleted"})
}
