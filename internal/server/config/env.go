package config

import "os"

// parseEnv overlays configuration from environment variables. Empty values
// leave the existing setting untouched.
func parseEnv(config *Config) {
	set := func(dst *string, name string) {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	set(&config.Addr, "ADDRESS")
	set(&config.DatabaseDSN, "DATABASE_DSN")
	set(&config.JWTSecret, "JWT_SECRET")
	set(&config.Origin, "CORS_ORIGIN")
	set(&config.Algorithm, "ENCRYPTION_ALGORITHM")
	set(&config.EncryptionKey, "ENCRYPTION_KEY")
	set(&config.VersionID, "VERSION_ID")
	set(&config.Environment, "APP_ENV")
}
