package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/proyect-bank/backend/internal/auth"
	"github.com/proyect-bank/backend/internal/httputil"
	"github.com/proyect-bank/backend/internal/models"
)

// ProfileRequest is the body for creating or updating a profile. All
// fields are required, an update replaces the profile.
type ProfileRequest struct {
	Email    *string `json:"email" binding:"required,email"`
	Password *string `json:"password" binding:"required"`
	StateID  *uint64 `json:"state_id" binding:"required"`
}

// GetProfiles returns all profiles, newest first.
func (co Controller) GetProfiles(c *gin.Context) {
	profiles, err := models.All[models.Profile](co.db)
	if err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// GetProfile returns a specific profile.
func (co Controller) GetProfile(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpMessage{Message: err.Error()})
		return
	}

	profile, err := models.One[models.Profile](co.db, uri.ID)
	if err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// CreateProfile creates a new profile. The password is stored as a
// bcrypt hash and the slug is derived from the email.
func (co Controller) CreateProfile(c *gin.Context) {
	var body ProfileRequest
	if err := httputil.BindData(c, &body); err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	hash, err := auth.HashPassword(*body.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpMessage{Message: models.ErrGeneral.Error()})
		return
	}

	profile := models.Profile{
		Email:    *body.Email,
		Password: hash,
		StateID:  *body.StateID,
	}

	if err := models.Create(co.db, &profile); err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// UpdateProfile replaces an existing profile, re-running the same
// reference checks and slug derivation as CreateProfile.
func (co Controller) UpdateProfile(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpMessage{Message: err.Error()})
		return
	}

	profile, err := models.One[models.Profile](co.db, uri.ID)
	if err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	var body ProfileRequest
	if err := httputil.BindData(c, &body); err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	hash, err := auth.HashPassword(*body.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpMessage{Message: models.ErrGeneral.Error()})
		return
	}

	profile.Email = *body.Email
	profile.Password = hash
	profile.StateID = *body.StateID

	if err := models.Update(co.db, &profile); err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// DeleteProfile deletes a profile.
func (co Controller) DeleteProfile(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpMessage{Message: err.Error()})
		return
	}

	if err := models.Delete[models.Profile](co.db, uri.ID); err != nil {
		c.JSON(status(err), httpMessage{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, httpMessage{Message: "the record has been deleted"})
}
