package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	codeValidationFailed = "validation_failed"
	codeSlotTaken        = "slot_taken"
	codeUnknownSlot      = "unknown_slot"
	codeMissingDate      = "missing_date"
	codeInvalidDate      = "invalid_date"
	codeInternalError    = "internal_error"
)

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldErrors flattens a gin binding error into per-field detail. Anything
// that is not a validator error (e.g. malformed JSON) collapses to a
// single body-level entry.
func fieldErrors(err error) []fieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []fieldError{{Field: "body", Message: "invalid request body"}}
	}
	out := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldError{Field: strings.ToLower(fe.Field()), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "datetime":
		if fe.Param() == "2006-01-02" {
			return "must be a valid date in YYYY-MM-DD format"
		}
		return "must be a valid time in HH:MM format"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	}
	return "is invalid"
}
