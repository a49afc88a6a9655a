package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aminurdev/cms-auth/internal/logger"
	"github.com/aminurdev/cms-auth/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByEmail retrieves a user record whose Email matches the given
// login handle, together with the assigned role and that role's full
// permission set.
//
// The lookup uses the [findUserByEmail] query (LEFT JOIN on roles, so an
// account without a role still resolves) followed by
// [findPermissionsByRole] when a role is present.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped in [ErrScanningRow] / [ErrScanningRows].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	var roleID sql.NullInt64
	var roleNameEn, roleNameBn sql.NullString
	var roleCreatedAt, roleUpdatedAt sql.NullTime

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)
	if err := row.Scan(
		&foundUser.ID, &foundUser.NameEn, &foundUser.NameBn,
		&foundUser.PhoneEn, &foundUser.PhoneBn, &foundUser.Email,
		&foundUser.PasswordHash, &foundUser.CreatedAt, &foundUser.UpdatedAt,
		&roleID, &roleNameEn, &roleNameBn, &roleCreatedAt, &roleUpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if roleID.Valid {
		role := models.Role{
			ID:        roleID.Int64,
			NameEn:    roleNameEn.String,
			NameBn:    roleNameBn.String,
			CreatedAt: roleCreatedAt.Time,
			UpdatedAt: roleUpdatedAt.Time,
		}

		permissions, err := r.findPermissions(ctx, role.ID)
		if err != nil {
			return models.User{}, err
		}
		role.Permissions = permissions

		foundUser.Role = &role
	}

	return foundUser, nil
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account. The role referenced by
// user.Role must already exist; the returned user carries it unchanged.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped in [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var roleID *int64
	if user.Role != nil {
		roleID = &user.Role.ID
	}

	created := user
	row := r.db.QueryRowContext(ctx, createUser,
		user.NameEn, user.NameBn, user.PhoneEn, user.PhoneBn,
		user.Email, user.PasswordHash, roleID,
	)
	if err := row.Scan(
		&created.ID, &created.NameEn, &created.NameBn,
		&created.PhoneEn, &created.PhoneBn, &created.Email,
		&created.PasswordHash, &created.CreatedAt, &created.UpdatedAt,
	); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: user was not created")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// findPermissions loads the flattened permission set granted by a role.
func (r *userRepository) findPermissions(ctx context.Context, roleID int64) ([]models.Permission, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findPermissionsByRole, roleID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findPermissions").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var permissions []models.Permission
	for rows.Next() {
		var permission models.Permission
		if err := rows.Scan(&permission.ID, &permission.GroupTitle, &permission.NameEn, &permission.NameBn); err != nil {
			log.Err(err).Str("func", "*userRepository.findPermissions").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		permissions = append(permissions, permission)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return permissions, nil
}
