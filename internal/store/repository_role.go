package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aminurdev/cms-auth/internal/logger"
	"github.com/aminurdev/cms-auth/models"
)

// roleRepository is the PostgreSQL-backed implementation of [RoleRepository].
// The auth core reads roles only; role CRUD lives elsewhere.
type roleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRoleRepository constructs a [RoleRepository] backed by the provided
// database connection and logger.
func NewRoleRepository(db *DB, logger *logger.Logger) RoleRepository {
	logger.Debug().Msg("creating role repository")
	return &roleRepository{
		db:     db,
		logger: logger,
	}
}

// FindRoleByID retrieves a role by its identifier, without permissions.
// Used at registration to verify the configured default role exists.
//
// Error handling:
//   - No matching row → [ErrNoRoleWasFound].
//   - Scan failure → wrapped in [ErrScanningRow].
func (r *roleRepository) FindRoleByID(ctx context.Context, roleID int64) (models.Role, error) {
	log := logger.FromContext(ctx)

	var role models.Role
	row := r.db.QueryRowContext(ctx, findRoleByID, roleID)
	if err := row.Scan(&role.ID, &role.NameEn, &role.NameBn, &role.CreatedAt, &role.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Role{}, ErrNoRoleWasFound
		}
		log.Err(err).Str("func", "*roleRepository.FindRoleByID").Msg("error: scanning error")
		return models.Role{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return role, nil
}
