package service

import "errors"

// Stage-specific error kinds surfaced by the login and refresh use cases.
// Callers branch on these with [errors.Is]; the HTTP layer maps them to
// response statuses. Authentication failures deliberately carry no detail
// about which part of the credential pair was wrong.
var (
	// ErrInvalidCredentials is returned when the submitted email/password
	// pair does not match a stored user. It covers both "no such user"
	// and "wrong password" so neither case leaks.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenDecode is returned when a token is malformed, expired, or
	// signed with the wrong key.
	ErrTokenDecode = errors.New("token is expired or invalid")

	// ErrTokenSubjectMismatch is returned when a refresh token's subject
	// does not match the resolved user's login handle.
	ErrTokenSubjectMismatch = errors.New("token subject mismatch")

	// ErrUserNotFound is returned when the user referenced by a token
	// no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrPermissionResolution is returned when the authenticated user has
	// no role or the role data is inconsistent.
	ErrPermissionResolution = errors.New("unable to resolve permissions")

	// ErrMenuCycle is returned when the flat menu list contains a cyclic
	// parent reference and the tree cannot be assembled.
	ErrMenuCycle = errors.New("cycle detected in menu parent references")

	// ErrInvalidDataProvided is returned when a request is missing
	// required fields (empty email or password).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrTokenCreationFailed is returned when JWT signing fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
