package config

import (
	"encoding/json"
	"os"

	"github.com/pingreng/pingr-server/internal/flagx"
)

// JsonConfig mirrors Config for JSON unmarshalling. Absent fields leave the
// corresponding setting untouched.
type JsonConfig struct {
	Addr          *string `json:"address"`
	DatabaseDSN   *string `json:"database_dsn"`
	JWTSecret     *string `json:"jwt_secret"`
	Origin        *string `json:"origin"`
	Algorithm     *string `json:"algorithm"`
	EncryptionKey *string `json:"encryption_key"`
	VersionID     *string `json:"version_id"`
	Environment   *string `json:"environment"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags, when given. An unreadable or malformed file panics:
// a half-applied config file is worse than no server.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	apply(&config.Addr, c.Addr)
	apply(&config.DatabaseDSN, c.DatabaseDSN)
	apply(&config.JWTSecret, c.JWTSecret)
	apply(&config.Origin, c.Origin)
	apply(&config.Algorithm, c.Algorithm)
	apply(&config.EncryptionKey, c.EncryptionKey)
	apply(&config.VersionID, c.VersionID)
	apply(&config.Environment, c.Environment)
}
