package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single violated constraint, shaped for the response
// envelope's errorMessages list.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Format converts a binding/validation error into field-level messages. Every
// violated field produces one entry; non-validator errors collapse into a
// single pathless entry.
func Format(err error) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Path: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, FieldError{
			Path:    fieldPath(e.Field()),
			Message: messageFor(e),
		})
	}
	return out
}

// fieldPath lowercases the leading character so "FirstName" matches the JSON
// key "firstName" clients sent.
func fieldPath(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func messageFor(e validator.FieldError) string {
	path := fieldPath(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", path)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", path)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", path, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", path, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", path, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", path, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", path, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", path, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", path, strings.ReplaceAll(e.Param(), " ", ", "))
	case "url":
		return fmt.Sprintf("%s must be a valid URL", path)
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", path)
	case "eqfield":
		return fmt.Sprintf("%s must match %s", path, fieldPath(e.Param()))
	default:
		return fmt.Sprintf("%s is invalid", path)
	}
}
