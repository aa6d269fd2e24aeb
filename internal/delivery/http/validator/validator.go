// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	validatorlib "github.com/go-playground/validator/v10"

	domainerrors "critica/internal/domain/errors"
)

// CustomValidator wraps a validator instance for echo.
type CustomValidator struct {
	validate *validatorlib.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{validate: validatorlib.New()}
}

// Validate checks struct tags and reports failures as a validation error the
// error handler renders as a 400.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
