package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	findUserByEmail = `SELECT u.id, u.name_en, u.name_bn, u.phone_en, u.phone_bn, u.email, u.password_hash, u.created_at, u.updated_at,
       r.id, r.name_en, r.name_bn, r.created_at, r.updated_at
    FROM users u
    LEFT JOIN roles r ON r.id = u.role_id
    WHERE u.email = $1;`

	createUser = `INSERT INTO users (name_en, name_bn, phone_en, phone_bn, email, password_hash, role_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, name_en, name_bn, phone_en, phone_bn, email, password_hash, created_at, updated_at;`

	findRoleByID = `SELECT id, name_en, name_bn, created_at, updated_at
    FROM roles
    WHERE id = $1;`

	findPermissionsByRole = `SELECT p.id, p.group_title, p.name_en, p.name_bn
    FROM permissions p
    JOIN role_permissions rp ON rp.permission_id = p.id
    WHERE rp.role_id = $1
    ORDER BY p.id;`
)

// psql is the shared squirrel statement builder configured for
// PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectAllMenusQuery builds the SELECT returning every menu row in
// ascending ID order. Status and placement flags are returned as-is; the
// tree builder decides visibility.
func buildSelectAllMenusQuery() (string, []any, error) {
	return psql.
		Select("id", "permission_id", "parent_id", "name_en", "name_bn",
			"url", "icon", "header_menu", "sidebar_menu", "dropdown_menu",
			"status", "created_at", "updated_at").
		From("menus").
		OrderBy("id").
		ToSql()
}

// buildSelectLiveTokensQuery builds the SELECT returning every live
// (neither expired nor revoked) token row owned by the user.
func buildSelectLiveTokensQuery(userID int64) (string, []any, error) {
	return psql.
		Select("id", "user_id", "token", "token_type", "expired", "revoked", "created_at").
		From("tokens").
		Where(sq.Eq{"user_id": userID, "expired": false, "revoked": false}).
		OrderBy("id").
		ToSql()
}

// buildRevokeLiveTokensQuery builds the UPDATE setting both flags on every
// live token row of the user. Rows already flagged are left untouched, so
// repeating the sweep is a no-op.
func buildRevokeLiveTokensQuery(userID int64) (string, []any, error) {
	return psql.
		Update("tokens").
		Set("expired", true).
		Set("revoked", true).
		Where(sq.Eq{"user_id": userID, "expired": false, "revoked": false}).
		ToSql()
}

// buildInsertTokenQuery builds the INSERT recording a freshly issued
// access token with both flags clear.
func buildInsertTokenQuery(userID int64, tokenString, tokenType string) (string, []any, error) {
	return psql.
		Insert("tokens").
		Columns("user_id", "token", "token_type", "expired", "revoked").
		Values(userID, tokenString, tokenType, false, false).
		Suffix("RETURNING id, user_id, token, token_type, expired, revoked, created_at").
		ToSql()
}
