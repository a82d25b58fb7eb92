package domain

import (
	"errors"
	"strings"
)

// ErrGenerationFailed wraps any failure of the ad-copy generator.
var ErrGenerationFailed = errors.New("ad copy generation failed")

// FieldError describes one invalid field of a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when an input or patch does not satisfy its
// schema. Entity is the human name of the resource ("campaign", "ad", ...).
type ValidationError struct {
	Entity string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid " + e.Entity + " data: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(entity, field, message string) *ValidationError {
	return &ValidationError{Entity: entity, Fields: []FieldError{{Field: field, Message: message}}}
}
