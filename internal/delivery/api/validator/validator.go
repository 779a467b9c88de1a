// Package validator plugs the leafcare rules into echo's Context.Validate.
package validator

import (
	domainerrors "leafcare/internal/domain/errors"
	"leafcare/internal/domain/validation"
	"leafcare/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New returns an echo.Validator backed by the shared validator instance.
func New() echo.Validator {
	return &echoValidator{validate: validation.Validator()}
}

// Validate reports every failing field as one VALIDATION_FAILED error.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(validation.Describe(err)))
	}

	return nil
}
