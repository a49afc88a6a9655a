package models

import "time"

// Role is the single permission-group assignment held by a User.
// Roles are created and edited by admin CRUD elsewhere; the auth core
// treats them as read-only.
type Role struct {
	// ID is the internal unique identifier of the role.
	ID int64 `json:"id"`

	// NameEn is the role's display name in English.
	NameEn string `json:"name_en"`

	// NameBn is the role's display name in Bengali.
	NameBn string `json:"name_bn,omitempty"`

	// Permissions is the set of permissions granted by this role.
	// Omitted from the role block of the login response; the response
	// carries the flattened permission list separately.
	Permissions []Permission `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Role model.
func (r Role) TableName() string {
	return "roles"
}
