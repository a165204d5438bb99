package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the JWT claim set embedded in every issued token.
//
// Username is the only application-specific claim; the standard registered
// claims (iss, iat, exp) are populated at issue time. Sessions are not
// persisted server-side, so a valid unexpired signature is always accepted.
type TokenClaims struct {
	// Username identifies the authenticated account.
	Username string `json:"username"`

	jwt.RegisteredClaims
}

// Token is the result of issuing or parsing a JWT.
//
// SignedString holds the compact JWS representation
// (base64url-encoded header.payload.signature) ready to be transmitted in
// the "Authorization" header. Username is a parsed copy of the username
// claim so that callers do not need to re-inspect the token.
type Token struct {
	// SignedString is the compact serialized form of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// Username is the account name extracted from the token claims.
	Username string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
