package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/userkeep/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-f string   user store path
//	-l string   log level
//
// os.Args is filtered through flagx.FilterArgs first so that -c/-config and
// positional arguments do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorePath, "f", cfg.StorePath, "path to the JSON user store")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
