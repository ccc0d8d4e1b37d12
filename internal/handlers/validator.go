package handlers

import (
	"github.com/labstack/echo/v4"

	"finledger/internal/validation"
)

// CustomValidator adapts the shared validator to echo's Validator interface
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates the echo validator backed by the shared instance
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate validates the bound request struct
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
