package store

import (
	"context"
	"fmt"

	"github.com/aminurdev/cms-auth/internal/config"
	"github.com/aminurdev/cms-auth/internal/logger"
	"github.com/aminurdev/cms-auth/migrations"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository  UserRepository
	RoleRepository  RoleRepository
	MenuRepository  MenuRepository
	TokenRepository TokenRepository
}

// NewStorages connects to PostgreSQL, applies pending schema migrations,
// and constructs all repositories over the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		RoleRepository:  NewRoleRepository(db, log),
		MenuRepository:  NewMenuRepository(db, log),
		TokenRepository: NewTokenRepository(db, log),
	}, nil
}
