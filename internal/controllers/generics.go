package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/proyect-bank/backend/internal/httputil"
	"github.com/proyect-bank/backend/internal/models"
)

// registerLookup wires the list and create routes for a lookup
// resource whose only editable field is its name. The build function
// constructs the concrete resource from the submitted name.
func registerLookup[T any](g *gin.RouterGroup, co Controller, build func(name string) models.Resource) {
	g.GET("", func(c *gin.Context) {
		resources, err := models.All[T](co.db)
		if err != nil {
			c.JSON(status(err), httpMessage{Message: err.Error()})
			return
		}

		c.JSON(http.StatusOK, resources)
	})

	g.POST("", func(c *gin.Context) {
		var body NameRequest
		if err := httputil.BindData(c, &body); err != nil {
			c.JSON(status(err), httpMessage{Message: err.Error()})
			return
		}

		resource := build(*body.Name)
		if err := models.Create(co.db, resource); err != nil {
			c.JSON(status(err), httpMessage{Message: err.Error()})
			return
		}

		c.JSON(http.StatusCreated, resource)
	})
}
