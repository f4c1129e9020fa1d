// Package config loads application configuration from environment variables.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the API. Database settings describe
// a single MySQL instance; CORSOrigins is the allow-list applied to
// cross-origin requests. None of the fields are required at startup: a
// misconfigured database shows up as failed queries, not a refused boot.
type Config struct {
	Port        string   // HTTP port to listen on
	DBUser      string   // database username
	DBPass      string   // database password (optional)
	DBHost      string   // database host address
	DBPort      string   // database port number
	DBName      string   // database name
	DBTLS       string   // value for the driver's tls parameter ("true", "skip-verify", or empty)
	CORSOrigins []string // origins allowed for cross-origin access
}

// Load reads a .env file when present and then builds a Config from the
// environment. Every value has a usable default so the process always
// starts; connectivity problems surface per request instead.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getenv("APP_PORT", "5000"),
		DBUser:      getenv("DB_USER", "root"),
		DBPass:      os.Getenv("DB_PASS"),
		DBHost:      getenv("DB_HOST", "localhost"),
		DBPort:      getenv("DB_PORT", "3306"),
		DBName:      getenv("DB_NAME", "ticketing"),
		DBTLS:       os.Getenv("DB_TLS"),
		CORSOrigins: splitOrigins(getenv("CORS_ORIGINS", "*")),
	}
}

// splitOrigins turns a comma-separated origin list into a slice, dropping
// empty entries so a trailing comma does not yield an empty origin.
func splitOrigins(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
