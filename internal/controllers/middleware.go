package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/proyect-bank/backend/internal/auth"
)

// Keys under which the authenticated profile is stored on the request
// context.
const (
	ContextProfileID    = "profileID"
	ContextProfileEmail = "profileEmail"
)

// Authenticate returns a middleware that rejects requests without a
// valid token. Clients send the raw token or "Bearer <token>", with or
// without surrounding quotes.
func (co Controller) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpMessage{Message: auth.ErrTokenMissing.Error()})
			return
		}

		token := strings.Trim(header, `"'`)
		token = strings.TrimPrefix(token, "Bearer ")

		claims, err := co.tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpMessage{Message: err.Error()})
			return
		}

		c.Set(ContextProfileID, claims.ProfileID)
		c.Set(ContextProfileEmail, claims.Email)
		c.Next()
	}
}
