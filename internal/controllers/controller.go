// Package controllers implements the HTTP handlers for the API.
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/proyect-bank/backend/internal/auth"
	"github.com/proyect-bank/backend/internal/models"
	"gorm.io/gorm"
)

// Controller holds the dependencies for all handlers. The database
// handle is injected so that handlers can be tested in isolation.
type Controller struct {
	db      *gorm.DB
	tokens  auth.Tokens
	limiter *RateLimiter
}

// New returns a Controller using the database and token signer passed.
func New(db *gorm.DB, tokens auth.Tokens, loginLimit int, loginWindow time.Duration) Controller {
	return Controller{
		db:      db,
		tokens:  tokens,
		limiter: NewRateLimiter(loginLimit, loginWindow),
	}
}

// RegisterRoutes registers all resource routes with the RouterGroup
// that is passed.
func (co Controller) RegisterRoutes(g *gin.RouterGroup) {
	authenticate := co.Authenticate()

	// Lookup resources only support listing and creation
	registerLookup[models.State](g.Group("/state"), co, func(name string) models.Resource {
		return &models.State{Name: name}
	})
	registerLookup[models.Type](g.Group("/type"), co, func(name string) models.Resource {
		return &models.Type{Name: name}
	})
	registerLookup[models.Category](g.Group("/category"), co, func(name string) models.Resource {
		return &models.Category{Name: name}
	})
	registerLookup[models.Movement](g.Group("/movement"), co, func(name string) models.Resource {
		return &models.Movement{Name: name}
	})
	registerLookup[models.Phase](g.Group("/phase"), co, func(name string) models.Resource {
		return &models.Phase{Name: name}
	})

	profile := g.Group("/profile")
	{
		profile.GET("", authenticate, co.GetProfiles)
		profile.GET("/:id", authenticate, co.GetProfile)
		profile.POST("", co.CreateProfile)
		profile.PUT("/:id", co.UpdateProfile)
		profile.DELETE("/:id", co.DeleteProfile)
	}

	account := g.Group("/account")
	{
		account.GET("", authenticate, co.GetAccounts)
		account.GET("/:id", co.GetAccount)
		account.POST("", co.CreateAccount)
		account.PUT("/:id", co.UpdateAccount)
		account.DELETE("/:id", co.DeleteAccount)
	}

	budget := g.Group("/budget")
	{
		budget.GET("", co.GetBudgets)
		budget.GET("/:id", co.GetBudget)
		budget.POST("", co.CreateBudget)
		budget.PUT("/:id", co.UpdateBudget)
		budget.DELETE("/:id", co.DeleteBudget)
	}

	transaction := g.Group("/transaction")
	{
		transaction.GET("", co.GetTransactions)
		transaction.GET("/:id", co.GetTransaction)
		transaction.POST("", co.CreateTransaction)
		transaction.POST("/operation", co.CreateTransaction)
		transaction.PUT("/:id", co.UpdateTransaction)
		transaction.DELETE("/:id", co.DeleteTransaction)
	}

	g.POST("/login", co.limiter.Middleware(), co.Login)
}

// Healthz returns the application health and, if not healthy, an error.
func (co Controller) Healthz(c *gin.Context) {
	sqlDB, err := co.db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpMessage{Message: models.ErrGeneral.Error()})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, httpMessage{Message: models.ErrGeneral.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
