package config

import (
	"flag"
	"os"
	"time"

	"github.com/mentormatch/mentorauth/internal/flagx"
)

// parseFlags overlays config values from command-line flags.
func parseFlags(c *Config) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	endpoint := fs.String("a", "", "server endpoint address")
	timeout := fs.Int("t", 0, "request timeout in seconds")
	dbPath := fs.String("d", "", "session database path")

	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d"})
	if err := fs.Parse(args); err != nil {
		return
	}

	if *endpoint != "" {
		c.ServerEndpointAddr = *endpoint
	}
	if *timeout > 0 {
		c.RequestTimeout = time.Duration(*timeout) * time.Second
	}
	if *dbPath != "" {
		c.DatabasePath = *dbPath
	}
}
