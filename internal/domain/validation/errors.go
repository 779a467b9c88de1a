package validation

import (
	"fmt"
	"reflect"
	"strings"

	"leafcare/internal/errors"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed rule, shaped for API responses.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors flattens a validator error. Errors of any other kind become a single entry.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}

	return out
}

// Describe renders err as one human-readable line.
func Describe(err error) string {
	fields := FieldErrors(err)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Field == "" {
			parts = append(parts, f.Message)

			continue
		}
		parts = append(parts, f.Field+" "+f.Message)
	}

	return strings.Join(parts, "; ")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}

		return "must be at most " + fe.Param()
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}

		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "letters":
		return "may only contain letters and spaces"
	case "lettersnum":
		return "may only contain letters, digits and spaces"
	case "imageuri":
		return "must be an image data URI"
	case "httpurl":
		return "must be an http(s) URL"
	case "photo":
		return "must be an image data URI or an http(s) URL"
	case "date":
		return "must be a date in YYYY-MM-DD format"
	case "uuid":
		return "must be a valid identifier"
	default:
		return "failed the " + fe.Tag() + " rule"
	}
}
