package store

import (
	"context"
	"fmt"

	"github.com/aminurdev/cms-auth/internal/logger"
	"github.com/aminurdev/cms-auth/models"
)

// menuRepository is the PostgreSQL-backed implementation of [MenuRepository].
// It returns the flat menu list; parent/child nesting is reconstructed in
// memory by the service layer on every login.
type menuRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMenuRepository constructs a [MenuRepository] backed by the provided
// database connection and logger.
func NewMenuRepository(db *DB, logger *logger.Logger) MenuRepository {
	logger.Debug().Msg("creating menu repository")
	return &menuRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllMenus returns every menu row in ascending ID order. An empty
// table yields an empty slice, not an error.
func (r *menuRepository) GetAllMenus(ctx context.Context) ([]models.Menu, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllMenusQuery()
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.GetAllMenus").Msg("error: building query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.GetAllMenus").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	menus := make([]models.Menu, 0)
	for rows.Next() {
		var menu models.Menu
		if err := rows.Scan(
			&menu.ID, &menu.PermissionID, &menu.ParentID,
			&menu.NameEn, &menu.NameBn, &menu.URL, &menu.Icon,
			&menu.HeaderMenu, &menu.SidebarMenu, &menu.DropdownMenu,
			&menu.Status, &menu.CreatedAt, &menu.UpdatedAt,
		); err != nil {
			log.Err(err).Str("func", "*menuRepository.GetAllMenus").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		menus = append(menus, menu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return menus, nil
}
