package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrNoTokenSignKey indicates that no JWT signing secret was provided
	// by any configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")
	// ErrNoAdminCredentials indicates that the administrator username or
	// password hash accepted by the login endpoint is missing.
	ErrNoAdminCredentials = errors.New("admin credentials are not configured")
)
