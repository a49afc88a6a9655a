package service

import (
	"context"
	"testing"
	"time"

	"github.com/aminurdev/cms-auth/internal/config"
	"github.com/aminurdev/cms-auth/internal/logger"
	"github.com/aminurdev/cms-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService() TokenService {
	cfg := config.App{
		TokenSignKey:         "test-sign-key",
		TokenIssuer:          "cms-auth",
		AccessTokenDuration:  24 * time.Hour,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	}

	return NewTokenService(cfg, logger.Nop())
}

func TestTokenService_CreateAndParseAccessToken(t *testing.T) {
	svc := newTestTokenService()
	ctx := context.Background()
	user := models.User{ID: 1, Email: "admin@example.com"}

	tokenString, err := svc.CreateAccessToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	subject, err := svc.ParseToken(ctx, tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.Email, subject)
}

func TestTokenService_CreateAndValidateRefreshToken(t *testing.T) {
	svc := newTestTokenService()
	ctx := context.Background()
	user := models.User{ID: 1, Email: "admin@example.com"}

	tokenString, err := svc.CreateRefreshToken(ctx, user)
	require.NoError(t, err)

	err = svc.Validate(ctx, tokenString, user)
	assert.NoError(t, err)
}

func TestTokenService_ParseToken_WrongKey(t *testing.T) {
	ctx := context.Background()
	user := models.User{ID: 1, Email: "admin@example.com"}

	issuing := newTestTokenService()
	tokenString, err := issuing.CreateAccessToken(ctx, user)
	require.NoError(t, err)

	verifying := NewTokenService(config.App{
		TokenSignKey:         "another-sign-key",
		TokenIssuer:          "cms-auth",
		AccessTokenDuration:  24 * time.Hour,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	}, logger.Nop())

	_, err = verifying.ParseToken(ctx, tokenString)
	assert.ErrorIs(t, err, ErrTokenDecode)
}

func TestTokenService_ParseToken_WrongIssuer(t *testing.T) {
	ctx := context.Background()
	user := models.User{ID: 1, Email: "admin@example.com"}

	issuing := NewTokenService(config.App{
		TokenSignKey:         "test-sign-key",
		TokenIssuer:          "other-service",
		AccessTokenDuration:  24 * time.Hour,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	}, logger.Nop())
	tokenString, err := issuing.CreateAccessToken(ctx, user)
	require.NoError(t, err)

	verifying := newTestTokenService()

	_, err = verifying.ParseToken(ctx, tokenString)
	assert.ErrorIs(t, err, ErrTokenDecode)
}

func TestTokenService_ParseToken_Expired(t *testing.T) {
	ctx := context.Background()
	user := models.User{ID: 1, Email: "admin@example.com"}

	issuing := NewTokenService(config.App{
		TokenSignKey:         "test-sign-key",
		TokenIssuer:          "cms-auth",
		AccessTokenDuration:  -time.Minute,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	}, logger.Nop())
	tokenString, err := issuing.CreateAccessToken(ctx, user)
	require.NoError(t, err)

	verifying := newTestTokenService()

	_, err = verifying.ParseToken(ctx, tokenString)
	assert.ErrorIs(t, err, ErrTokenDecode)
}

func TestTokenService_ParseToken_Garbage(t *testing.T) {
	svc := newTestTokenService()

	_, err := svc.ParseToken(context.Background(), "not-a-jwt-at-all")
	assert.ErrorIs(t, err, ErrTokenDecode)
}

func TestTokenService_Validate_SubjectMismatch(t *testing.T) {
	svc := newTestTokenService()
	ctx := context.Background()

	tokenString, err := svc.CreateRefreshToken(ctx, models.User{ID: 1, Email: "admin@example.com"})
	require.NoError(t, err)

	err = svc.Validate(ctx, tokenString, models.User{ID: 2, Email: "other@example.com"})
	assert.ErrorIs(t, err, ErrTokenSubjectMismatch)
}

func TestTokenService_ExtractSubject_NoVerification(t *testing.T) {
	ctx := context.Background()
	user := models.User{ID: 1, Email: "admin@example.com"}

	// issued under a key the extracting service does not know
	issuing := NewTokenService(config.App{
		TokenSignKey:         "foreign-key",
		TokenIssuer:          "cms-auth",
		AccessTokenDuration:  24 * time.Hour,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	}, logger.Nop())
	tokenString, err := issuing.CreateRefreshToken(ctx, user)
	require.NoError(t, err)

	extracting := newTestTokenService()

	subject, err := extracting.ExtractSubject(ctx, tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.Email, subject)
}

func TestTokenService_AccessTokenTTL(t *testing.T) {
	svc := newTestTokenService()

	assert.Equal(t, 24*time.Hour, svc.AccessTokenTTL())
	assert.Equal(t, int64(86400000), svc.AccessTokenTTL().Milliseconds())
}
