// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// FieldErrors maps a JSON field path (items[0].quantity) to the rule it broke.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+fe[field])
	}

	return "invalid input: " + strings.Join(parts, "; ")
}

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate returns FieldErrors for tag violations.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fields := make(FieldErrors, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldPath(fieldErr.Namespace())] = rule(fieldErr)
	}

	return fields
}

// fieldPath drops the struct name that prefixes a namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}

func rule(fieldErr validator.FieldError) string {
	if fieldErr.Param() == "" {
		return fieldErr.Tag()
	}

	return fieldErr.Tag() + "=" + fieldErr.Param()
}
