package store

import (
	"context"

	"github.com/MKhiriev/teacher-dashboard/models"
)

// StudentRepository is the data-access contract for the students table.
//
// List and the three analytics reads never fail with a domain error; any
// error they return is a store failure. The write operations additionally
// return [ErrStudentNotFound] and [ErrEmailAlreadyExists] where documented.
type StudentRepository interface {
	// ListStudents returns all students ordered by creation time, newest
	// first (ties broken by id, i.e. insertion order). A non-empty subject
	// restricts the result to matching rows.
	ListStudents(ctx context.Context, subject string) ([]models.Student, error)

	// GetStudentByID returns the student with the given id or
	// ErrStudentNotFound.
	GetStudentByID(ctx context.Context, id int64) (models.Student, error)

	// CreateStudent inserts a new row and returns the persisted student
	// with its server-assigned id and created_at. Returns
	// ErrEmailAlreadyExists on a unique-index violation.
	CreateStudent(ctx context.Context, input models.StudentInput) (models.Student, error)

	// UpdateStudent applies the non-nil fields of patch to the row with the
	// given id in a single conditional UPDATE and returns the full updated
	// row. Returns ErrStudentNotFound if no row matched and
	// ErrEmailAlreadyExists on a unique-index violation.
	UpdateStudent(ctx context.Context, id int64, patch models.StudentPatch) (models.Student, error)

	// DeleteStudent removes the row with the given id.
	// Returns ErrStudentNotFound if no row matched.
	DeleteStudent(ctx context.Context, id int64) error

	// CountStudents returns the total number of student rows.
	CountStudents(ctx context.Context) (int, error)

	// AverageGradeBySubject returns the raw (unrounded) mean grade for every
	// subject that has at least one student.
	AverageGradeBySubject(ctx context.Context) (map[string]float64, error)

	// RecentStudents returns at most limit students ordered by creation
	// time, newest first.
	RecentStudents(ctx context.Context, limit uint64) ([]models.Student, error)
}
