// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "artmarket/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator.Validate instance for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the echo request validator.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks the bound request struct against its validate tags.
// Failures surface as the domain validation error so the error handler
// renders a stable 400 response.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
