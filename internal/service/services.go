package service

import (
	"github.com/aminurdev/cms-auth/internal/config"
	"github.com/aminurdev/cms-auth/internal/logger"
	"github.com/aminurdev/cms-auth/internal/store"
)

// Services bundles every business-logic service of the auth core.
type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	SessionService SessionService
}

// NewServices constructs the full service layer on top of the given
// storages and application config.
func NewServices(storages *store.Storages, cfg config.App, log *logger.Logger) *Services {
	authService := NewAuthService(storages.UserRepository, storages.RoleRepository, cfg, log)
	tokenService := NewTokenService(cfg, log)
	sessionService := NewSessionService(authService, tokenService, storages.TokenRepository, storages.MenuRepository, log)

	return &Services{
		AuthService:    authService,
		TokenService:   tokenService,
		SessionService: sessionService,
	}
}
