// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/errors"
)

// requestValidator validates bound request payloads by their struct tags.
type requestValidator struct {
	validate *playground.Validate
}

// New builds the validator echo uses for c.Validate calls.
func New() *requestValidator {
	return &requestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags and folds violations into the domain
// error taxonomy so the error middleware renders them uniformly.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var validationErrs playground.ValidationErrors
		if errors.As(err, &validationErrs) {
			return domainerrors.ErrValidationFailed.WithDetails(validationErrs.Error())
		}

		return errors.Wrap(err, "failed to validate request")
	}

	return nil
}
