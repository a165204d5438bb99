package http

import (
	"net/http"

	"github.com/MKhiriev/teacher-dashboard/internal/utils"
	"github.com/MKhiriev/teacher-dashboard/models"
)

// writeSuccess writes the uniform success envelope with the given payload,
// message, and HTTP status code.
func writeSuccess(w http.ResponseWriter, data any, message string, statusCode int) {
	utils.WriteJSON(w, models.APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	}, statusCode)
}

// writeError writes the uniform error envelope. Internal detail never
// reaches the client; callers pass a pre-sanitised message.
func writeError(w http.ResponseWriter, errorMessage string, statusCode int) {
	utils.WriteJSON(w, models.APIResponse{
		Success: false,
		Error:   errorMessage,
	}, statusCode)
}

// writeValidationFailure writes the 400 envelope for failed input
// validation: error is always "Validation failed" and the list of
// field-level violations travels in data.
func writeValidationFailure(w http.ResponseWriter, fields []models.FieldError) {
	utils.WriteJSON(w, models.APIResponse{
		Success: false,
		Data:    fields,
		Error:   "Validation failed",
	}, http.StatusBadRequest)
}
