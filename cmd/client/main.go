package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/mentormatch/mentorauth/internal/buildinfo"
	"github.com/mentormatch/mentorauth/internal/client/cli"
	"github.com/mentormatch/mentorauth/internal/client/config"
	"github.com/mentormatch/mentorauth/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	// keep the REPL on stdout clean, diagnostics go to stderr
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
