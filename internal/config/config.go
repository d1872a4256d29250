// Package config holds runtime settings for the anitrack server,
// populated from the environment with development defaults.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - Addr: bind address for the HTTP API.
//   - SQLitePath: path to the sqlite database file.
//   - RedisConnString: address of the redis instance backing the session store.
//   - Secret: HMAC secret for signing JWTs (HS256). Do not use the test default in prod.
//   - TokenTTL: lifetime of an issued session token.
type Config struct {
	Addr            string
	SQLitePath      string
	RedisConnString string
	Secret          string
	TokenTTL        time.Duration
}

// Load builds a Config from the environment, falling back to insecure
// development defaults for anything unset.
func Load() *Config {
	ttl := time.Hour
	if raw := GetEnv("TOKEN_TTL", ""); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}

	return &Config{
		Addr:            GetEnv("ADDR", ":8080"),
		SQLitePath:      GetEnv("SQLITE_PATH", "./anitrack.db"),
		RedisConnString: GetEnv("REDIS_CONNSTRING", "localhost:6379"),
		Secret:          GetEnv("SECRET", "dev-secret-change-me"),
		TokenTTL:        ttl,
	}
}

// GetEnv retrieves a value from the environment by key,
// returning defaultValue when the key is unset or empty.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
