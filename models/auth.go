package models

// LoginRequest carries the credentials submitted to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest carries the refresh token submitted to the
// refresh-token endpoint.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RegisterRequest carries the profile data submitted to the register
// endpoint. New accounts receive the configured default role.
type RegisterRequest struct {
	NameEn   string `json:"name_en"`
	NameBn   string `json:"name_bn"`
	PhoneEn  string `json:"phone_en"`
	PhoneBn  string `json:"phone_bn"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the composed payload returned by the login and
// refresh endpoints. The refresh path populates only the token fields;
// login additionally carries the user, role, flattened permissions and
// the permission-filtered menu tree that drives client navigation.
//
// Null-valued fields are omitted so the two paths share one shape.
type AuthResponse struct {
	// AccessToken is the short-lived credential for subsequent requests.
	AccessToken string `json:"access_token"`

	// RefreshToken is the longer-lived credential used solely to obtain
	// a new access token.
	RefreshToken string `json:"refresh_token"`

	// ExpiresIn is the access token lifetime in milliseconds.
	ExpiresIn int64 `json:"expires_in"`

	// User is the authenticated account. Login path only.
	User *User `json:"user,omitempty"`

	// Role is the user's single role. Login path only.
	Role *Role `json:"role,omitempty"`

	// Permissions is the flattened permission set granted by the role.
	// Login path only.
	Permissions []Permission `json:"permissions,omitempty"`

	// Menus is the permission-filtered forest of root menu entries with
	// nested children. Login path only.
	Menus []Menu `json:"menus,omitempty"`
}
