// Package httputil contains helpers for request handling.
package httputil

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report fields under their json names so that validation messages
	// match the wire format.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// BindData binds the JSON request body to the struct passed.
//
// Validation failures report the first failing field only, in struct
// field order, so that error messages are deterministic for identical
// invalid input.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			return fieldError(fieldErrors[0])
		}

		return ErrInvalidBody
	}

	return nil
}

func fieldError(err validator.FieldError) error {
	switch err.Tag() {
	case "required":
		return fmt.Errorf("the %s field is required", err.Field())
	case "email":
		return fmt.Errorf("the %s field must be a valid email address", err.Field())
	}

	return fmt.Errorf("the %s field is invalid", err.Field())
}
