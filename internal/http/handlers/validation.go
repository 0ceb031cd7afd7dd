package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validateStruct runs the struct's validate tags and reports every failing field.
func validateStruct(v any) []ValidationError {
	errs := []ValidationError{}

	err := validate.Struct(v)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return append(errs, ValidationError{Description: err.Error()})
	}

	for _, fe := range fieldErrs {
		// Order.Items[0].Quantity -> Items[0].Quantity
		_, field, _ := strings.Cut(fe.StructNamespace(), ".")
		errs = append(errs, ValidationError{Field: field, Description: describe(field, fe)})
	}
	return errs
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s cannot be less than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s check", field, fe.Tag())
	}
}
