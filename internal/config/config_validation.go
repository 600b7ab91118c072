package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.App.MasterSecret == "" || cfg.App.KeySalt == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.PasswordHashKey == "" || cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Aggregator.PollInterval <= 0 {
		return ErrInvalidAggregatorConfigs
	}

	return nil
}
