package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	ADDRESS          HTTP bind address (e.g., ":5000")
//	DATABASE_DSN     PostgreSQL DSN
//	JWT_SECRET       JWT HMAC secret key
//	TOKEN_VALIDITY   token lifetime as a Go duration (e.g., "8h")
//	BCRYPT_COST      bcrypt work factor
//	ADMIN_EMAIL      bootstrap admin email
//	ADMIN_PASSWORD   bootstrap admin password
//
// Unset variables leave the current value untouched; unparsable durations
// and integers are ignored as well.
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		config.AdminEmail = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		config.AdminPassword = v
	}
}
