package models

// APIResponse is the uniform envelope returned by every HTTP endpoint.
//
// Success responses carry Data and usually a human-readable Message.
// Error responses carry Error; validation failures additionally carry the
// list of field-level violations in Data.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// FieldError describes a single violated validation rule on a named input
// field. A failed request reports every violated field, not just the first.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
