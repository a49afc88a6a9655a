package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// NameEn is the user's display name in English.
	NameEn string `json:"name_en"`

	// NameBn is the user's display name in Bengali.
	NameBn string `json:"name_bn,omitempty"`

	// PhoneEn is the contact phone number rendered with Latin digits.
	PhoneEn string `json:"phone_en,omitempty"`

	// PhoneBn is the contact phone number rendered with Bengali digits.
	PhoneBn string `json:"phone_bn,omitempty"`

	// Email is the unique login handle of the account.
	// It is also the subject claim of every token issued for the user.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// Never plaintext, never exposed via JSON.
	PasswordHash string `json:"-"`

	// Role is the single role assigned to the user. Users hold exactly
	// one role; permissions are derived by flattening Role.Permissions.
	// Nil when the account has no role assigned.
	Role *Role `json:"role,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile or role update.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PermissionIDs flattens the user's single role into the list of
// permission identifiers it grants. Returns nil when the user has no
// role or the role carries no permissions.
func (u User) PermissionIDs() []int64 {
	if u.Role == nil || len(u.Role.Permissions) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(u.Role.Permissions))
	for _, permission := range u.Role.Permissions {
		ids = append(ids, permission.ID)
	}

	return ids
}
