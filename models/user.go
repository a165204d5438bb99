package models

// User is the session identity attached to authenticated requests.
// It is embedded in the signed token and never persisted server-side.
type User struct {
	// Username is the unique account name used during authentication.
	Username string `json:"username"`
}

// Credentials is the request body of the login endpoint.
// The password is checked against configuration and never stored or logged.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the payload returned by a successful login.
type AuthResponse struct {
	// Token is the signed bearer token the client presents on every
	// subsequent request.
	Token string `json:"token"`

	// User identifies the account the token was issued for.
	User User `json:"user"`
}
