package models

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrPostNotFound      = errors.New("post not found")
	ErrPostIDRequired    = &ValidationError{Field: "id", Message: "Post ID is required"}
	ErrIDMismatch        = &ValidationError{Field: "id", Message: "Request path id and request body id must match"}
	ErrNoUpdatableFields = &ValidationError{Message: "At least one of title, content or author must be supplied"}
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError converts ozzo validation errors into a ValidationError.
func NewValidationError(err error) *ValidationError {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Message: err.Error()}
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return &ValidationError{
		Field:   strings.Join(fields, ","),
		Message: fieldErrs.Error(),
	}
}
