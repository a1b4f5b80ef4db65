package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/proyect-bank/backend/internal/auth"
	"github.com/proyect-bank/backend/internal/httputil"
	"github.com/proyect-bank/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// LoginRequest is the body for the login operation.
type LoginRequest struct {
	Email    *string `json:"email" binding:"required,email"`
	Password *string `json:"password" binding:"required"`
}

// Login verifies the submitted credentials and returns a signed token.
// Unknown emails and wrong passwords produce the same response so the
// endpoint does not leak which profiles exist.
func (co Controller) Login(c *gin.Context) {
	var body LoginRequest
	if err := httputil.BindData(c, &body); err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	profile, err := models.ProfileByEmail(co.db, *body.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpMessage{Message: errLoginFailed.Error()})
		return
	}

	if err := auth.VerifyPassword(profile.Password, *body.Password); err != nil {
		c.JSON(http.StatusBadRequest, httpMessage{Message: errLoginFailed.Error()})
		return
	}

	token, err := co.tokens.Issue(profile.ID, profile.Email)
	if err != nil {
		log.Error().Err(err).Msg("login")
		c.JSON(http.StatusInternalServerError, httpMessage{Message: models.ErrGeneral.Error()})
		return
	}

	c.JSON(http.StatusOK, httpMessage{Message: token})
}
