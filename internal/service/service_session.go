package service

import (
	"context"
	"fmt"

	"github.com/aminurdev/cms-auth/internal/logger"
	"github.com/aminurdev/cms-auth/internal/store"
	"github.com/aminurdev/cms-auth/models"
)

// sessionService is the concrete implementation of SessionService. It
// orchestrates the other services and the token ledger into the login
// and refresh use cases.
type sessionService struct {
	authService     AuthService
	tokenService    TokenService
	tokenRepository store.TokenRepository
	menuRepository  store.MenuRepository
	logger          *logger.Logger
}

// NewSessionService wires the session orchestrator out of the credential
// verifier, the token issuer, and the ledger and menu repositories.
func NewSessionService(authService AuthService, tokenService TokenService, tokenRepository store.TokenRepository, menuRepository store.MenuRepository, logger *logger.Logger) SessionService {
	return &sessionService{
		authService:     authService,
		tokenService:    tokenService,
		tokenRepository: tokenRepository,
		menuRepository:  menuRepository,
		logger:          logger,
	}
}

// Login authenticates the submitted credentials and establishes a fresh
// session: a new access token is recorded in the ledger (revoking every
// previously live token of the user in the same transaction), a refresh
// token is issued, and the response is assembled with the user profile,
// role, flattened permissions, and the permission-filtered menu tree.
//
// Returns ErrInvalidCredentials on a bad email/password pair and
// ErrPermissionResolution when the account carries no role. Ledger or
// menu failures abort the login; no partial session leaks out.
func (s *sessionService) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	user, err := s.authService.VerifyCredentials(ctx, request.Email, request.Password)
	if err != nil {
		return models.AuthResponse{}, err
	}

	if user.Role == nil {
		log.Error().Int64("id", user.ID).Msg("authenticated user has no role assigned")
		return models.AuthResponse{}, ErrPermissionResolution
	}

	accessToken, err := s.tokenService.CreateAccessToken(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("access token creation failed")
		return models.AuthResponse{}, err
	}

	if _, err = s.tokenRepository.RevokeAndSave(ctx, user.ID, accessToken); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("token ledger update failed")
		return models.AuthResponse{}, fmt.Errorf("token ledger update failed: %w", err)
	}

	refreshToken, err := s.tokenService.CreateRefreshToken(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("refresh token creation failed")
		return models.AuthResponse{}, err
	}

	menus, err := s.menuRepository.GetAllMenus(ctx)
	if err != nil {
		log.Err(err).Msg("menu lookup failed")
		return models.AuthResponse{}, fmt.Errorf("menu lookup failed: %w", err)
	}

	menuTree, err := BuildMenuTree(menus, user.PermissionIDs())
	if err != nil {
		log.Err(err).Msg("menu tree assembly failed")
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.tokenService.AccessTokenTTL().Milliseconds(),
		User:         &user,
		Role:         user.Role,
		Permissions:  user.Role.Permissions,
		Menus:        menuTree,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
//
// The subject is extracted from the token without signature verification
// first, solely to resolve which user the token claims to belong to; the
// token is then fully validated against that user. The new access token
// replaces the user's live ledger entry transactionally. The refresh
// token itself is not rotated: the caller keeps using the same one until
// it expires.
//
// Returns ErrTokenDecode when the token is malformed, expired or
// mis-signed, ErrUserNotFound when the subject no longer resolves to an
// account, and ErrTokenSubjectMismatch when the validated subject does
// not match the resolved user.
func (s *sessionService) Refresh(ctx context.Context, refreshToken string) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	subject, err := s.tokenService.ExtractSubject(ctx, refreshToken)
	if err != nil {
		log.Err(err).Msg("refresh token subject extraction failed")
		return models.AuthResponse{}, err
	}

	user, err := s.authService.FindUser(ctx, subject)
	if err != nil {
		log.Err(err).Str("subject", subject).Msg("refresh token user resolution failed")
		return models.AuthResponse{}, err
	}

	if err = s.tokenService.Validate(ctx, refreshToken, user); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("refresh token validation failed")
		return models.AuthResponse{}, err
	}

	accessToken, err := s.tokenService.CreateAccessToken(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("access token creation failed")
		return models.AuthResponse{}, err
	}

	if _, err = s.tokenRepository.RevokeAndSave(ctx, user.ID, accessToken); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("token ledger update failed")
		return models.AuthResponse{}, fmt.Errorf("token ledger update failed: %w", err)
	}

	return models.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.tokenService.AccessTokenTTL().Milliseconds(),
	}, nil
}

