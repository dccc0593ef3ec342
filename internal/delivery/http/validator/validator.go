// Package validator adapts go-playground/validator to Echo's Validator.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "storefront/internal/domain/errors"
)

// CustomValidator wraps the validator instance for Echo
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a new CustomValidator
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
