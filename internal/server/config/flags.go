package config

import (
	"flag"
	"os"

	"github.com/pingreng/pingr-server/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3001")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-o string   allowed CORS origin
//	-g string   encryption algorithm name
//	-k string   encryption key (hex, 32 bytes)
//	-v string   version document id
//	-e string   environment ("development" or "production")
//
// Args are first filtered to the flags handled here so the -c/-config flags
// consumed by the JSON loader do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-o", "-g", "-k", "-v", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.JWTSecret, "s", config.JWTSecret, "jwt secret key")
	fs.StringVar(&config.Origin, "o", config.Origin, "allowed CORS origin")
	fs.StringVar(&config.Algorithm, "g", config.Algorithm, "encryption algorithm")
	fs.StringVar(&config.EncryptionKey, "k", config.EncryptionKey, "encryption key (hex)")
	fs.StringVar(&config.VersionID, "v", config.VersionID, "version document id")
	fs.StringVar(&config.Environment, "e", config.Environment, "environment")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
