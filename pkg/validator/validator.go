package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator is a validator that validates the given struct.
type Validator interface {
	// Validate validates the given struct
	Validate(s any) error
}

type DefaultValidator struct {
	v *validator.Validate
}

// NewDefaultValidator creates a new default validator.
// It returns a new DefaultValidator and an error if the validator registration fails.
func NewDefaultValidator() (*DefaultValidator, error) {
	v := validator.New()

	if err := v.RegisterValidation("enum", validateEnum); err != nil {
		return nil, fmt.Errorf("register enum validator: %w", err)
	}

	return &DefaultValidator{v: v}, nil
}

// MustNewDefaultValidator is like NewDefaultValidator but panics on registration errors.
func MustNewDefaultValidator() *DefaultValidator {
	v, err := NewDefaultValidator()
	if err != nil {
		panic(err)
	}
	return v
}

func (v DefaultValidator) Validate(s any) error {
	return v.v.Struct(s)
}

// IsValidationError checks if the given error is a validation error
func IsValidationError(err error) bool {
	var validationErrs validator.ValidationErrors
	return errors.As(err, &validationErrs)
}

var fieldErrorMessages = map[string]func(fe validator.FieldError) string{
	"required": func(validator.FieldError) string { return "field is required" },
	"unique":   func(validator.FieldError) string { return "must not contain duplicates" },
	"min":      withParam("must be at least %s"),
	"max":      withParam("must be at most %s"),
	"gt":       withParam("must be greater than %s"),
	"gte":      withParam("must be greater than or equal to %s"),
	"lte":      withParam("must be less than or equal to %s"),
	"oneof":    withParam("must be one of [%s]"),
	"enum": func(fe validator.FieldError) string {
		return fmt.Sprintf("invalid enum value: %v", fe.Value())
	},
}

func withParam(format string) func(fe validator.FieldError) string {
	return func(fe validator.FieldError) string {
		return fmt.Sprintf(format, fe.Param())
	}
}

// ValidationErrorMessage returns a human readable message for fe.
func ValidationErrorMessage(fe validator.FieldError) string {
	if msg, ok := fieldErrorMessages[fe.Tag()]; ok {
		return msg(fe)
	}
	return "is invalid"
}

func validateEnum(fl validator.FieldLevel) bool {
	type Enum interface {
		Validate() error
	}

	value, ok := fl.Field().Interface().(Enum)
	if !ok {
		return false
	}

	return value.Validate() == nil
}
