package store

import (
	"context"

	"github.com/aminurdev/cms-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository provides lookup and creation of user accounts. Lookups
// return the user together with the assigned role and that role's full
// permission set, so callers never issue follow-up queries to resolve
// authorization data.
type UserRepository interface {
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

// RoleRepository provides read-only access to roles. The auth core only
// needs it to resolve the default role assigned at registration.
type RoleRepository interface {
	FindRoleByID(ctx context.Context, roleID int64) (models.Role, error)
}

// MenuRepository provides the flat list of all menu records. Tree shape
// is reconstructed in memory by the service layer.
type MenuRepository interface {
	GetAllMenus(ctx context.Context) ([]models.Menu, error)
}

// TokenRepository is the persistence side of the token ledger.
//
// RevokeAndSave runs the revoke-all-live sweep and the insert of the new
// token row in one transaction, so the ordering requirement (revocation
// completes before the new row exists) and the at-most-one-live-token
// invariant both hold under concurrent logins for the same user.
type TokenRepository interface {
	FindAllLiveTokensByUser(ctx context.Context, userID int64) ([]models.Token, error)
	RevokeAllLiveTokens(ctx context.Context, userID int64) (int64, error)
	SaveToken(ctx context.Context, token models.Token) (models.Token, error)
	RevokeAndSave(ctx context.Context, userID int64, tokenString string) (models.Token, error)
}
