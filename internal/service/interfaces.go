package service

import (
	"context"

	"github.com/MKhiriev/teacher-dashboard/models"
)

// AuthService handles credential verification and the JWT token lifecycle.
type AuthService interface {
	// Login verifies the supplied credentials against the configured
	// administrator account. Returns the session identity or
	// ErrInvalidCredentials on mismatch.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// CreateToken issues a signed, expiring JWT for the given identity.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	// Any validation failure is normalised to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// StudentService implements the roster operations with field-level input
// validation in front of the repository.
type StudentService interface {
	// List returns all students, optionally restricted to one subject.
	// An unknown subject fails with *ValidationError before any store access.
	List(ctx context.Context, subjectFilter string) ([]models.Student, error)

	// Create validates every input field and inserts the student.
	Create(ctx context.Context, input models.StudentInput) (models.Student, error)

	// Update validates the supplied fields of the patch and applies them.
	// An empty patch fails with ErrNoFieldsToUpdate.
	Update(ctx context.Context, id int64, patch models.StudentPatch) (models.Student, error)

	// Delete removes the student with the given id.
	Delete(ctx context.Context, id int64) error
}

// AnalyticsService computes the derived dashboard summary.
type AnalyticsService interface {
	// Compute performs three independent reads (count, per-subject average,
	// most recent ten) and assembles them into one Analytics value. It is a
	// pure read with no failure mode beyond the store itself.
	Compute(ctx context.Context) (models.Analytics, error)
}
