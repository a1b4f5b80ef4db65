package controllers

import (
	"errors"
	"net/http"

	"github.com/proyect-bank/backend/internal/models"
)

// httpMessage is the body for errors and plain confirmations. Every
// error response is {"message": "..."}.
type httpMessage struct {
	Message string `json:"message" example:"there is no account matching your query"`
}

// status returns the appropriate HTTP status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrAlreadyExists) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var errLoginFailed = errors.New("the email or password is incorrect")
