package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/healthsync/internal/flagx"
)

// parseFlags populates Config from command-line flags.
//
//	-a string     base URL of the HealthSync server
//	-T duration   per-request timeout (e.g. 5s)
//
// Unknown flags are filtered out first so the JSON loader's -c/-config
// do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-T"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the server")
	fs.DurationVar(&cfg.RequestTimeout, "T", cfg.RequestTimeout, "request timeout")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
