package models

import "time"

// Subject names accepted for a student record. The database stores the
// subject as plain text; membership is enforced at the validation layer.
const (
	SubjectMath    = "Math"
	SubjectScience = "Science"
	SubjectEnglish = "English"
	SubjectHistory = "History"
)

// Subjects lists every valid subject in a stable order.
// Used by validation error messages and query-parameter checks.
var Subjects = []string{SubjectMath, SubjectScience, SubjectEnglish, SubjectHistory}

// IsValidSubject reports whether s is one of the enumerated subjects.
func IsValidSubject(s string) bool {
	for _, subject := range Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// Student represents a single roster entry as persisted in the "students"
// table.
//
// ID and CreatedAt are assigned by the store on creation and are immutable
// afterwards. Email is unique across all students; the uniqueness is
// enforced by a UNIQUE index so a colliding write fails atomically.
type Student struct {
	// ID is the store-assigned primary key.
	ID int64 `json:"id"`

	// Name is the student's display name, at least two characters long.
	Name string `json:"name"`

	// Email is the student's unique contact address.
	Email string `json:"email"`

	// Subject is one of the enumerated subject names.
	Subject string `json:"subject"`

	// Grade is an integer score in the range [0, 100].
	Grade int `json:"grade"`

	// CreatedAt is set once when the row is inserted and never mutated.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Student model.
func (s Student) TableName() string {
	return "students"
}

// StudentInput carries the client-supplied fields for creating a student.
//
// Grade is a pointer so that an explicit zero grade survives the "required"
// check; a missing grade arrives as nil and is reported as a violation.
// The validate tags are evaluated by go-playground/validator; every failing
// field is reported, not just the first.
type StudentInput struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,oneof=Math Science English History"`
	Grade   *int   `json:"grade" validate:"required,min=0,max=100"`
}

// StudentPatch is a sparse field mask for partial updates.
//
// Only non-nil fields are validated and written; nil fields are left
// untouched in the store. A patch with no fields set is rejected before any
// store access.
type StudentPatch struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Subject *string `json:"subject,omitempty" validate:"omitempty,oneof=Math Science English History"`
	Grade   *int    `json:"grade,omitempty" validate:"omitempty,min=0,max=100"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p StudentPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Subject == nil && p.Grade == nil
}
