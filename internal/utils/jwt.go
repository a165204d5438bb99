package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/teacher-dashboard/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenLeeway is the clock-skew tolerance applied when validating the "exp"
// claim. Thirty seconds absorbs small clock drift between the issuing and
// verifying process without meaningfully extending the token's 24h window.
const TokenLeeway = 30 * time.Second

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for the given username.
//
// The token carries the username as a custom claim plus the standard
// registered claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or
// zero, or if signing fails.
func GenerateJWTToken(issuer, username string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || username == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.TokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, Username: username}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// the username claim.
//
// Validation includes:
//   - Signature verification with the provided sign key (HS256 only; tokens
//     signed with any other method are rejected)
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim check with [TokenLeeway] of tolerance
//   - Presence of a non-empty username claim
//
// Returns the parsed token or a non-nil error if any validation step fails.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithLeeway(TokenLeeway))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if !token.Valid {
		return models.Token{}, errors.New("token is not valid")
	}
	if claims.Username == "" {
		return models.Token{}, errors.New("empty username claim")
	}

	return models.Token{SignedString: tokenString, Username: claims.Username}, nil
}

// ParseBearerToken extracts the token value from a raw "Authorization"
// header of the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
