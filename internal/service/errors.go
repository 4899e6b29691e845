package service

import (
	"errors"

	"github.com/alexanderramin/juku/internal/validation"
)

// ErrAccessDenied is returned when the viewer may not see or change the
// requested student.
var ErrAccessDenied = errors.New("access denied")

// ValidationError lists rejected input fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + validation.Summary(e.Fields)
}

// validateInput runs the struct tags of in and wraps failures.
func validateInput(in any) error {
	if fields := validation.Struct(in); fields != nil {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func fieldError(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
