package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// humanize turns a json field name into a label: reference_month -> Reference Month.
func humanize(field string) string {
	if i := strings.LastIndex(field, "."); i >= 0 {
		field = field[i+1:]
	}
	return titleCaser.String(strings.ReplaceAll(field, "_", " "))
}

// MapValidationError turns a binding error into a VALIDATION_ERROR. The
// message names the first offending field and details list all of them.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fields := make([]FieldError, 0, len(errs))
		for _, e := range errs {
			fields = append(fields, FieldError{
				Field:   fieldPath(e),
				Rule:    e.Tag(),
				Param:   e.Param(),
				Message: ruleMessage(humanize(e.Field()), e.Tag(), e.Param()),
			})
		}
		return fieldError(fields...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fieldError(FieldError{
			Field:   typeErr.Field,
			Rule:    "type",
			Param:   typeErr.Type.String(),
			Message: fmt.Sprintf("%s must be of type %s", humanize(typeErr.Field), typeErr.Type.String()),
		})
	}

	return New(CodeValidation, "Invalid input", 0)
}

// fieldPath drops the top-level struct name: CreatePayrollRequest.type -> type.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func ruleMessage(label, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", label, strings.Join(strings.Fields(param), ", "))
	case "datetime":
		return fmt.Sprintf("%s must be a date in the format %s", label, param)
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
