// Package cli implements the interactive MentorAuth client: a small REPL
// that registers and authenticates users against the credential service and
// keeps the session cached locally between runs.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/mentormatch/mentorauth/internal/client/api"
	"github.com/mentormatch/mentorauth/internal/client/config"
	"github.com/mentormatch/mentorauth/internal/client/session"
	"github.com/mentormatch/mentorauth/internal/client/storage"
	"github.com/mentormatch/mentorauth/internal/logging"
)

type App struct {
	config   *config.Config
	client   api.Client
	session  *session.Manager
	db       *sql.DB
	reader   *bufio.Reader
	logger   logging.Logger
	userName string
}

// NewApp wires the local SQLite store, the API client, and the session
// manager behind the REPL.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	apiClient := api.NewHTTPClient(c, logger)
	manager := session.NewManager(apiClient, db, logger)

	return &App{
		config:  c,
		client:  apiClient,
		session: manager,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		logger:  logger,
	}, nil
}

// Run checks for a live cached session, then enters the REPL. Resources are
// released when the REPL exits.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	defer a.db.Close()

	if a.session.IsLoggedIn(ctx) {
		if rec, err := a.session.Current(ctx); err == nil && rec != nil {
			a.userName = rec.Identity.Username
			fmt.Printf("Welcome back, %s!\n", a.userName)
		}
	}

	a.Root(ctx)
}
