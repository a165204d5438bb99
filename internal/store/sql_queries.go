package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/teacher-dashboard/models"
)

const (
	createStudent = `INSERT INTO students (name, email, subject, grade)
    VALUES (?, ?, ?, ?);`

	getStudentByID = `SELECT id, name, email, subject, grade, created_at
    FROM students
    WHERE id = ?;`

	deleteStudent = `DELETE FROM students
    WHERE id = ?;`

	countStudents = `SELECT COUNT(*) FROM students;`

	averageGradeBySubject = `SELECT subject, AVG(grade)
    FROM students
    GROUP BY subject;`
)

// studentColumns is the canonical column order used by every SELECT that
// scans into models.Student.
var studentColumns = []string{"id", "name", "email", "subject", "grade", "created_at"}

// buildListStudentsQuery builds the roster SELECT. Rows are ordered newest
// first; the id tiebreak preserves insertion order for rows created within
// the same timestamp. A non-empty subject adds an equality filter.
func buildListStudentsQuery(subject string) (string, []any, error) {
	builder := sq.Select(studentColumns...).
		From("students").
		OrderBy("created_at DESC", "id DESC")

	if subject != "" {
		builder = builder.Where(sq.Eq{"subject": subject})
	}

	return builder.ToSql()
}

// buildRecentStudentsQuery builds the "most recent additions" SELECT used by
// the analytics aggregation.
func buildRecentStudentsQuery(limit uint64) (string, []any, error) {
	return sq.Select(studentColumns...).
		From("students").
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
}

// buildUpdateStudentQuery translates the patch field mask into a single
// conditional UPDATE. Every set field maps to a fixed parameterised column
// assignment; field names never reach the SQL text from user input. The
// caller detects a missing row via RowsAffected, so existence check and
// write happen in one statement.
func buildUpdateStudentQuery(id int64, patch models.StudentPatch) (string, []any, error) {
	if patch.IsEmpty() {
		return "", nil, ErrBuildingSQLQuery
	}

	builder := sq.Update("students")

	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Email != nil {
		builder = builder.Set("email", *patch.Email)
	}
	if patch.Subject != nil {
		builder = builder.Set("subject", *patch.Subject)
	}
	if patch.Grade != nil {
		builder = builder.Set("grade", *patch.Grade)
	}

	return builder.Where(sq.Eq{"id": id}).ToSql()
}
