package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/teacher-dashboard/internal/logger"
	"github.com/MKhiriev/teacher-dashboard/models"
)

// studentRepository is the SQLite-backed implementation of
// [StudentRepository]. It owns every statement issued against the "students"
// table, both the CRUD path and the analytics reads.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type studentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewStudentRepository constructs a [StudentRepository] backed by the
// provided database connection and logger.
func NewStudentRepository(db *DB, logger *logger.Logger) StudentRepository {
	logger.Debug().Msg("creating student repository")
	return &studentRepository{
		db:     db,
		logger: logger,
	}
}

// ListStudents returns the roster ordered by created_at descending. If
// subject is non-empty the result is restricted to matching rows; subject
// membership in the enumeration is the caller's responsibility.
func (r *studentRepository) ListStudents(ctx context.Context, subject string) ([]models.Student, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListStudentsQuery(subject)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.ListStudents").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.ListStudents").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// GetStudentByID returns the single row matched by primary key or
// [ErrStudentNotFound].
func (r *studentRepository) GetStudentByID(ctx context.Context, id int64) (models.Student, error) {
	log := logger.FromContext(ctx)

	var student models.Student
	row := r.db.QueryRowContext(ctx, getStudentByID, id)

	if err := row.Scan(&student.ID, &student.Name, &student.Email, &student.Subject, &student.Grade, &student.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Student{}, ErrStudentNotFound
		}
		log.Err(err).Str("func", "*studentRepository.GetStudentByID").Msg("error: scanning error")
		return models.Student{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return student, nil
}

// CreateStudent inserts a new row and re-reads it so the caller receives the
// canonical database representation, including the server-assigned id and
// created_at.
//
// Error handling:
//   - unique-index violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *studentRepository) CreateStudent(ctx context.Context, input models.StudentInput) (models.Student, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, createStudent, input.Name, input.Email, input.Subject, *input.Grade)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Student{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*studentRepository.CreateStudent").Msg("error executing insert")
		return models.Student{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.CreateStudent").Msg("error getting last insert id")
		return models.Student{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.GetStudentByID(ctx, id)
}

// UpdateStudent applies the patch in a single conditional UPDATE keyed on id
// and returns the full updated row.
//
// Existence check and write are one statement: RowsAffected == 0 means the
// id does not exist, so there is no gap between check and write.
//
// Error handling:
//   - empty field mask → wrapped [ErrBuildingSQLQuery] (callers should have
//     rejected the patch earlier).
//   - unique-index violation on email → [ErrEmailAlreadyExists].
//   - no row matched → [ErrStudentNotFound].
func (r *studentRepository) UpdateStudent(ctx context.Context, id int64, patch models.StudentPatch) (models.Student, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateStudentQuery(id, patch)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.UpdateStudent").Msg("error building update query")
		return models.Student{}, fmt.Errorf("%w: empty field mask", ErrBuildingSQLQuery)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Student{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*studentRepository.UpdateStudent").Msg("error executing update")
		return models.Student{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.UpdateStudent").Msg("error getting affected rows")
		return models.Student{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Student{}, ErrStudentNotFound
	}

	return r.GetStudentByID(ctx, id)
}

// DeleteStudent removes the row matched by id. RowsAffected == 0 is reported
// as [ErrStudentNotFound].
func (r *studentRepository) DeleteStudent(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteStudent, id)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.DeleteStudent").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.DeleteStudent").Msg("error getting affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// CountStudents returns the total number of rows in the students table.
func (r *studentRepository) CountStudents(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := r.db.QueryRowContext(ctx, countStudents).Scan(&count); err != nil {
		log.Err(err).Str("func", "*studentRepository.CountStudents").Msg("error executing count")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// AverageGradeBySubject returns the raw mean grade per subject. Subjects
// with zero rows simply produce no group and are absent from the map.
func (r *studentRepository) AverageGradeBySubject(ctx context.Context) (map[string]float64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, averageGradeBySubject)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.AverageGradeBySubject").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	averages := make(map[string]float64)
	for rows.Next() {
		var subject string
		var average float64
		if err := rows.Scan(&subject, &average); err != nil {
			log.Err(err).Str("func", "*studentRepository.AverageGradeBySubject").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		averages[subject] = average
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return averages, nil
}

// RecentStudents returns at most limit students, newest first.
func (r *studentRepository) RecentStudents(ctx context.Context, limit uint64) ([]models.Student, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecentStudentsQuery(limit)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.RecentStudents").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.RecentStudents").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// scanStudents drains rows into a slice using the canonical column order of
// studentColumns.
func scanStudents(rows *sql.Rows) ([]models.Student, error) {
	students := make([]models.Student, 0)
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(&student.ID, &student.Name, &student.Email, &student.Subject, &student.Grade, &student.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return students, nil
}
