package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/teacher-dashboard/models"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// ValidationError reports every violated field of an input, not just the
// first. The HTTP layer surfaces Fields verbatim in the response envelope.
type ValidationError struct {
	Fields []models.FieldError
}

// Error implements the error interface by joining the per-field messages.
func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}
	return "validation failed: " + strings.Join(messages, ", ")
}
