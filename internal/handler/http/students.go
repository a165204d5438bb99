package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/teacher-dashboard/internal/logger"
	"github.com/MKhiriev/teacher-dashboard/internal/service"
	"github.com/MKhiriev/teacher-dashboard/models"
)

func (h *Handler) listStudents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	subject := r.URL.Query().Get("subject")

	students, err := h.services.StudentService.List(ctx, subject)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			log.Err(err).Str("subject", subject).Msg("invalid subject filter")
			writeValidationFailure(w, validationErr.Fields)
			return
		}

		log.Err(err).Msg("unexpected error occurred during listing students")
		writeError(w, "Failed to retrieve students", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, students, fmt.Sprintf("Retrieved %d students", len(students)), http.StatusOK)
}

func (h *Handler) createStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input models.StudentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.StudentService.Create(ctx, input)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			log.Err(err).Msg("invalid student data provided")
			writeValidationFailure(w, validationErr.Fields)
			return
		}

		log.Err(err).Str("email", input.Email).Msg("student creation failed")
		writeError(w, messageFromError(err, "Failed to create student"), statusFromError(err))
		return
	}

	writeSuccess(w, created, "Student created successfully", http.StatusCreated)
}

func (h *Handler) updateStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := studentIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid student id")
		writeError(w, "Invalid student id", http.StatusBadRequest)
		return
	}

	var patch models.StudentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.StudentService.Update(ctx, id, patch)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			log.Err(err).Int64("id", id).Msg("invalid patch data provided")
			writeValidationFailure(w, validationErr.Fields)
			return
		}

		log.Err(err).Int64("id", id).Msg("student update failed")
		writeError(w, messageFromError(err, "Failed to update student"), statusFromError(err))
		return
	}

	writeSuccess(w, updated, "Student updated successfully", http.StatusOK)
}

func (h *Handler) deleteStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := studentIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid student id")
		writeError(w, "Invalid student id", http.StatusBadRequest)
		return
	}

	if err := h.services.StudentService.Delete(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("student deletion failed")
		writeError(w, messageFromError(err, "Failed to delete student"), statusFromError(err))
		return
	}

	writeSuccess(w, nil, "Student deleted successfully", http.StatusOK)
}

// studentIDFromRequest parses the {id} route parameter as a positive
// integer.
func studentIDFromRequest(r *http.Request) (int64, error) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing student id %q: %w", idParam, err)
	}
	if id < 1 {
		return 0, fmt.Errorf("student id must be positive, got %d", id)
	}
	return id, nil
}
