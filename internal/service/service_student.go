package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/teacher-dashboard/internal/logger"
	"github.com/MKhiriev/teacher-dashboard/internal/store"
	"github.com/MKhiriev/teacher-dashboard/models"
)

// studentService is the concrete implementation of StudentService.
// It validates inputs field by field and delegates persistence to the
// StudentRepository; validation failures short-circuit before any store
// access.
type studentService struct {
	studentRepository store.StudentRepository
	logger            *logger.Logger
}

// NewStudentService constructs a StudentService wired to the given
// repository.
func NewStudentService(studentRepository store.StudentRepository, logger *logger.Logger) StudentService {
	return &studentService{
		studentRepository: studentRepository,
		logger:            logger,
	}
}

// List returns the roster ordered newest first, optionally restricted to a
// single subject. An unknown subject fails with *ValidationError.
func (s *studentService) List(ctx context.Context, subjectFilter string) ([]models.Student, error) {
	log := logger.FromContext(ctx)

	if err := validateSubjectFilter(subjectFilter); err != nil {
		log.Err(err).Str("subject", subjectFilter).Msg("invalid subject filter")
		return nil, err
	}

	students, err := s.studentRepository.ListStudents(ctx, subjectFilter)
	if err != nil {
		log.Err(err).Msg("listing students failed")
		return nil, fmt.Errorf("listing students failed: %w", err)
	}

	return students, nil
}

// Create validates every input field and inserts the student.
//
// Returns the persisted row (with server-assigned id and created_at) or:
//   - *ValidationError listing every violated field.
//   - A wrapped storage error if the insert fails (e.g. email taken — see
//     store.ErrEmailAlreadyExists).
func (s *studentService) Create(ctx context.Context, input models.StudentInput) (models.Student, error) {
	log := logger.FromContext(ctx)

	if err := validateStruct(input); err != nil {
		log.Err(err).Msg("invalid student data provided")
		return models.Student{}, err
	}

	created, err := s.studentRepository.CreateStudent(ctx, input)
	if err != nil {
		log.Err(err).Str("email", input.Email).Msg("student creation ended with error")
		return models.Student{}, fmt.Errorf("student creation ended with error: %w", err)
	}

	return created, nil
}

// Update validates only the fields present in the patch and applies them.
//
// Returns the full updated row or:
//   - ErrNoFieldsToUpdate if the patch is empty.
//   - *ValidationError listing every violated supplied field.
//   - A wrapped storage error (store.ErrStudentNotFound,
//     store.ErrEmailAlreadyExists) if the write fails.
func (s *studentService) Update(ctx context.Context, id int64, patch models.StudentPatch) (models.Student, error) {
	log := logger.FromContext(ctx)

	if patch.IsEmpty() {
		log.Err(ErrNoFieldsToUpdate).Int64("id", id).Msg("empty patch provided")
		return models.Student{}, ErrNoFieldsToUpdate
	}

	if err := validateStruct(patch); err != nil {
		log.Err(err).Int64("id", id).Msg("invalid patch data provided")
		return models.Student{}, err
	}

	updated, err := s.studentRepository.UpdateStudent(ctx, id, patch)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("student update ended with error")
		return models.Student{}, fmt.Errorf("student update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes the student with the given id. Unknown ids surface as
// store.ErrStudentNotFound.
func (s *studentService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.studentRepository.DeleteStudent(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("student deletion ended with error")
		return fmt.Errorf("student deletion ended with error: %w", err)
	}

	return nil
}
