// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps a validator.Validate instance for Echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a CustomValidator with struct tag validation enabled.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
