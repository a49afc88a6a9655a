package models

import "time"

// TokenTypeBearer is the only token type the ledger records today.
const TokenTypeBearer = "BEARER"

// Token is a persisted record of an issued access token.
//
// A token row is "live" while both Expired and Revoked are false. The
// ledger guarantees that after any successful login or refresh a user
// has at most one live row; all rows issued earlier carry both flags
// set. Rows are revoked, never deleted, so the audit trail survives
// user removal in the surrounding system.
type Token struct {
	// ID is the internal unique identifier of the token row.
	ID int64 `json:"id"`

	// UserID references the owning user.
	UserID int64 `json:"user_id"`

	// Token is the compact JWS string as handed to the client.
	Token string `json:"token"`

	// TokenType tags the token scheme, always [TokenTypeBearer].
	TokenType string `json:"token_type"`

	// Expired marks the row as superseded by a newer issuance.
	Expired bool `json:"expired"`

	// Revoked marks the row as explicitly invalidated server-side.
	Revoked bool `json:"revoked"`

	// CreatedAt is the issuance timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Token model.
func (t Token) TableName() string {
	return "tokens"
}

// Live reports whether the row still represents a usable access token.
func (t Token) Live() bool {
	return !t.Expired && !t.Revoked
}
