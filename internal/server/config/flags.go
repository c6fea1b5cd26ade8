package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/healthsync/internal/flagx"
)

// parseFlags overlays command-line flags onto config:
//
//	-a string    HTTP bind address
//	-m string    store backend (postgres | memory)
//	-d string    PostgreSQL DSN
//	-s string    JWT signing secret
//	-i string    JWT issuer
//	-t duration  access token validity
//	-r duration  refresh token validity
//	-R string    Redis address for the token cache
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-d", "-s", "-i", "-t", "-r", "-R"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.Store, "m", config.Store, "store backend: postgres or memory")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "JWT signing secret")
	fs.StringVar(&config.Issuer, "i", config.Issuer, "JWT issuer")
	fs.DurationVar(&config.AccessTokenValidityDuration, "t", config.AccessTokenValidityDuration, "access token validity")
	fs.DurationVar(&config.RefreshTokenValidityDuration, "r", config.RefreshTokenValidityDuration, "refresh token validity")
	fs.StringVar(&config.RedisAddr, "R", config.RedisAddr, "redis address for token cache")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
