package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/creatorpilot/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-s string   token HMAC secret key
//	-t int      token validity, minutes
//	-q          quiet: disable per-request logging
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-t", "-q"})

	fs := flag.NewFlagSet("fakeapi", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	ttl := fs.Int("t", int(cfg.TokenTTL.Minutes()), "token validity (in minutes)")
	quiet := fs.Bool("q", !cfg.RequestLog, "disable request logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.TokenTTL = time.Duration(*ttl) * time.Minute
	cfg.RequestLog = !*quiet
}
