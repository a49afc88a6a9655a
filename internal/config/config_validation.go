package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.AccessTokenDuration == 0 || cfg.App.RefreshTokenDuration == 0 {
		return ErrInvalidTokenDurations
	}

	if cfg.App.RefreshTokenDuration <= cfg.App.AccessTokenDuration {
		return ErrInvalidTokenDurations
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
