package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// parseEnv overlays environment variables onto config. Empty variables are
// ignored, and so are durations that fail to parse.
//
//	HTTP_ADDR          bind address; PORT is used as ":<PORT>" when HTTP_ADDR is unset
//	STORE              postgres | memory
//	DATABASE_URL       PostgreSQL DSN
//	JWT_SECRET         signing secret
//	JWT_ISSUER         iss claim
//	ACCESS_TOKEN_TTL   "1h" or seconds
//	REFRESH_TOKEN_TTL  "168h" or seconds
//	REDIS_ADDR         token cache address
func parseEnv(config *Config) {
	if v := getenv("HTTP_ADDR"); v != "" {
		config.HTTPAddr = v
	} else if port := getenv("PORT"); port != "" {
		config.HTTPAddr = ":" + port
	}

	setString(&config.Store, getenv("STORE"))
	setString(&config.DatabaseDSN, getenv("DATABASE_URL"))
	setString(&config.SecretKey, getenv("JWT_SECRET"))
	setString(&config.Issuer, getenv("JWT_ISSUER"))
	setString(&config.RedisAddr, getenv("REDIS_ADDR"))

	config.AccessTokenValidityDuration = getenvDuration("ACCESS_TOKEN_TTL", config.AccessTokenValidityDuration)
	config.RefreshTokenValidityDuration = getenvDuration("REFRESH_TOKEN_TTL", config.RefreshTokenValidityDuration)
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := getenv(key)
	if v == "" {
		return fallback
	}
	if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	return fallback
}
