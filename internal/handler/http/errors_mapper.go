package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/teacher-dashboard/internal/service"
	"github.com/MKhiriev/teacher-dashboard/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrNoFieldsToUpdate:        http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrStudentNotFound:    http.StatusNotFound,
	store.ErrEmailAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing message for every error that is
// safe to name. Anything not listed is an internal failure; the caller
// substitutes its own generic "Failed to ..." message so no store detail
// leaks out.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     "Username and password are required",
	service.ErrNoFieldsToUpdate:        "No fields to update",
	service.ErrInvalidCredentials:      "Invalid credentials",
	service.ErrTokenIsExpiredOrInvalid: "Invalid or expired token",

	store.ErrStudentNotFound:    "Student not found",
	store.ErrEmailAlreadyExists: "Email already exists",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError resolves the client-facing message for err, falling back
// to fallback for errors that must stay opaque.
func messageFromError(err error, fallback string) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return fallback
}
