package model

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports one or more invalid fields on an input record.
// It is returned by service operations when a record fails validation;
// callers match it with errors.As to separate malformed input from
// domain-level rejections, which are sentinel errors.
type ValidationError struct {
	Record string
	Fields []FieldError
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("invalid %s: %s", e.Record, strings.Join(parts, "; "))
}

// NewValidationError wraps field errors for a named record, or returns nil
// when there are none.
func NewValidationError(record string, fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Record: record, Fields: fields}
}
