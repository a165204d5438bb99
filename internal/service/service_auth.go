package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/teacher-dashboard/internal/config"
	"github.com/MKhiriev/teacher-dashboard/internal/logger"
	"github.com/MKhiriev/teacher-dashboard/internal/utils"
	"github.com/MKhiriev/teacher-dashboard/models"
)

// authService is the concrete implementation of AuthService.
// It verifies login credentials against the single administrator account
// from configuration and manages the JWT token lifecycle. There is no
// server-side session state: a valid, unexpired signature is always
// accepted, and "logout" is purely a client-side act.
type authService struct {
	// adminUsername is the only account name the login endpoint accepts.
	adminUsername string

	// adminPasswordHash is the bcrypt hash the supplied password is
	// compared against. The plaintext never reaches this service.
	adminPasswordHash string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminUsername:     cfg.AdminUsername,
		adminPasswordHash: cfg.AdminPasswordHash,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Login authenticates the supplied credentials.
//
// Returns the session identity or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - ErrInvalidCredentials if the username does not match the configured
//     account or the password fails the bcrypt comparison.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("empty credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if creds.Username != a.adminUsername {
		log.Err(ErrInvalidCredentials).Str("username", creds.Username).Msg("unknown username")
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.adminPasswordHash), []byte(creds.Password)); err != nil {
		log.Err(err).Str("username", creds.Username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return models.User{Username: creds.Username}, nil
}

// CreateToken issues a signed JWT for the given identity.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration. There is no refresh mechanism; re-authentication requires
// a fresh login.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, ErrTokenCreationFailed
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
