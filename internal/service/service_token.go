package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aminurdev/cms-auth/internal/config"
	"github.com/aminurdev/cms-auth/internal/logger"
	"github.com/aminurdev/cms-auth/internal/utils"
	"github.com/aminurdev/cms-auth/models"
)

// tokenService is the concrete implementation of TokenService. Both token
// kinds carry the user's email as subject and are signed HMAC-SHA256 with
// the same server-held key; they differ only in lifetime.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// validation.
	tokenIssuer string

	// accessDuration controls how long a newly issued access token
	// remains valid.
	accessDuration time.Duration

	// refreshDuration controls how long a newly issued refresh token
	// remains valid. Always longer than accessDuration.
	refreshDuration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a TokenService populated with signing
// parameters from cfg. The returned service is safe for concurrent use.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		accessDuration:  cfg.AccessTokenDuration,
		refreshDuration: cfg.RefreshTokenDuration,
		logger:          logger,
	}
}

// CreateAccessToken issues a signed short-lived JWT for the given user.
func (t *tokenService) CreateAccessToken(ctx context.Context, user models.User) (string, error) {
	tokenString, err := utils.GenerateJWTToken(t.tokenIssuer, user.Email, t.accessDuration, t.tokenSignKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return tokenString, nil
}

// CreateRefreshToken issues a signed longer-lived JWT for the given user.
func (t *tokenService) CreateRefreshToken(ctx context.Context, user models.User) (string, error) {
	tokenString, err := utils.GenerateJWTToken(t.tokenIssuer, user.Email, t.refreshDuration, t.tokenSignKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return tokenString, nil
}

// ParseToken validates a raw JWT string and returns its subject.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and the expiry. Any validation failure (expired, wrong
// issuer, malformed, mis-signed) is normalised to ErrTokenDecode so that
// callers do not need to inspect low-level JWT errors.
func (t *tokenService) ParseToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, t.tokenSignKey, t.tokenIssuer)
	if err != nil {
		return "", ErrTokenDecode
	}

	return claims.Subject, nil
}

// Validate checks signature, issuer and expiry, and that the token's
// subject equals the given user's email.
//
// Returns ErrTokenDecode on any parse/validation failure and
// ErrTokenSubjectMismatch when the subject belongs to a different user.
func (t *tokenService) Validate(ctx context.Context, tokenString string, user models.User) error {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, t.tokenSignKey, t.tokenIssuer)
	if err != nil {
		return ErrTokenDecode
	}

	if claims.Subject != user.Email {
		return ErrTokenSubjectMismatch
	}

	return nil
}

// ExtractSubject decodes the subject claim without signature verification.
func (t *tokenService) ExtractSubject(ctx context.Context, tokenString string) (string, error) {
	subject, err := utils.ParseSubjectFromJWT(tokenString)
	if err != nil {
		return "", ErrTokenDecode
	}

	return subject, nil
}

// AccessTokenTTL reports the configured access token lifetime.
func (t *tokenService) AccessTokenTTL() time.Duration {
	return t.accessDuration
}
