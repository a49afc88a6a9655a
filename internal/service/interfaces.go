package service

import (
	"context"
	"time"

	"github.com/aminurdev/cms-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService verifies credentials and registers new accounts.
type AuthService interface {
	// VerifyCredentials succeeds only if a user with the given email
	// exists and the password matches the stored bcrypt hash. No side
	// effects. Both failure cases collapse into ErrInvalidCredentials.
	VerifyCredentials(ctx context.Context, email, password string) (models.User, error)

	// RegisterUser creates an account with a hashed password and the
	// configured default role.
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// FindUser resolves an email to the stored account with role and
	// permissions attached. Returns ErrUserNotFound when no account
	// matches.
	FindUser(ctx context.Context, email string) (models.User, error)
}

// TokenService issues and validates JWT access and refresh tokens.
// It holds no persistent state; all operations are pure
// cryptographic/encoding work over the configured sign key.
type TokenService interface {
	// CreateAccessToken issues a short-lived token carrying the user's
	// email as subject.
	CreateAccessToken(ctx context.Context, user models.User) (string, error)

	// CreateRefreshToken issues a longer-lived token with the same
	// subject and signing mechanism.
	CreateRefreshToken(ctx context.Context, user models.User) (string, error)

	// ParseToken verifies signature, issuer and expiry, and returns the
	// subject. Any validation failure is normalised to ErrTokenDecode.
	ParseToken(ctx context.Context, tokenString string) (string, error)

	// Validate checks signature and expiry and that the subject matches
	// the given user's email.
	Validate(ctx context.Context, tokenString string, user models.User) error

	// ExtractSubject decodes the subject claim without verifying the
	// signature. Used to resolve which user a refresh token belongs to
	// before validating it against that user.
	ExtractSubject(ctx context.Context, tokenString string) (string, error)

	// AccessTokenTTL reports the configured access token lifetime.
	AccessTokenTTL() time.Duration
}

// SessionService composes credential verification, token issuance, the
// token ledger, and menu assembly into the two public auth operations.
type SessionService interface {
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (models.AuthResponse, error)
}
