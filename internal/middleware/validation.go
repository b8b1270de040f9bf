package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FormatBindingError turns a gin binding failure into messages suitable for
// the error payload. Non-validator errors (malformed JSON and the like) fall
// back to the raw error text.
func FormatBindingError(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, formatValidationError(fe))
	}
	return messages
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return e.Field() + " must be a valid email address"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "len":
		return e.Field() + " must be exactly " + e.Param() + " characters"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "uuid":
		return e.Field() + " must be a valid UUID"
	case "hexadecimal":
		return e.Field() + " must be a hexadecimal string"
	default:
		return e.Field() + " is invalid"
	}
}
