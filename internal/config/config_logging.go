package config

import "github.com/rs/zerolog"

const redactedValue = "[REDACTED]"

// MarshalZerologObject renders the configuration for startup logging.
// TokenSignKey and the database DSN are replaced with a placeholder; the
// DSN embeds credentials and the sign key forges tokens, neither belongs
// in a log stream.
func (c *StructuredConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Str("http_address", c.Server.HTTPAddress).
		Dur("request_timeout", c.Server.RequestTimeout).
		Str("token_issuer", c.App.TokenIssuer).
		Dur("access_token_duration", c.App.AccessTokenDuration).
		Dur("refresh_token_duration", c.App.RefreshTokenDuration).
		Int64("default_role_id", c.App.DefaultRoleID).
		Int("bcrypt_cost", c.App.BcryptCost).
		Str("token_sign_key", redactedValue).
		Str("db_dsn", redactedValue)
}
