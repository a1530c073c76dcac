package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mentormatch/mentorauth/internal/client/api"
	sessionrepo "github.com/mentormatch/mentorauth/internal/client/repositories/session"
	"github.com/mentormatch/mentorauth/internal/common"
	"github.com/mentormatch/mentorauth/internal/dbx"
	"github.com/mentormatch/mentorauth/internal/logging"
)

// Manager owns the cached session. It is an explicit object: all state lives
// in the SQLite store it was constructed with, never in package globals.
type Manager struct {
	client api.Client
	db     *sql.DB
	logger logging.Logger
	now    func() time.Time
}

// NewManager constructs a Manager over the given API client and local
// database. The clock defaults to time.Now.
func NewManager(client api.Client, db *sql.DB, logger logging.Logger) *Manager {
	return &Manager{
		client: client,
		db:     db,
		logger: logger.With("module", "session_manager"),
		now:    time.Now,
	}
}

// Login checks local preconditions, authenticates against the server, and
// persists the session record. Nothing is persisted on failure. A server
// rejection comes back as common.ErrInvalidCredentials regardless of its
// cause.
func (m *Manager) Login(ctx context.Context, username string, password string) (*Identity, error) {
	if err := ValidateCredentials(username, password); err != nil {
		return nil, err
	}

	res, err := m.client.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	rec := &Record{
		Identity: Identity{
			ID:       res.User.ID,
			Username: res.User.Username,
			Role:     res.User.Role,
		},
		LastRefreshedAt: m.now(),
		TTLSeconds:      DefaultTTLSeconds,
	}
	if err := m.save(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return &rec.Identity, nil
}

// Current reads the persisted record. A missing key or an undecodable value
// means no session: Current returns (nil, nil) rather than surfacing a
// half-written state as logged in. Storage failures are returned as errors.
func (m *Manager) Current(ctx context.Context) (*Record, error) {
	repo := sessionrepo.NewSQLiteRepository(m.db)

	rawIdentity, err := repo.Get(ctx, sessionrepo.KeyIdentity)
	if err != nil {
		return nil, err
	}
	rawRefreshed, err := repo.Get(ctx, sessionrepo.KeyLastRefreshedAt)
	if err != nil {
		return nil, err
	}
	rawTTL, err := repo.Get(ctx, sessionrepo.KeyTTLSeconds)
	if err != nil {
		return nil, err
	}
	if rawIdentity == nil || rawRefreshed == nil || rawTTL == nil {
		return nil, nil
	}

	var identity Identity
	if err := json.Unmarshal(rawIdentity, &identity); err != nil {
		m.logger.Debug(ctx, "undecodable session identity, treating as logged out", "error", err)
		return nil, nil
	}
	refreshedAt, err := time.Parse(time.RFC3339, string(rawRefreshed))
	if err != nil {
		m.logger.Debug(ctx, "undecodable session timestamp, treating as logged out", "error", err)
		return nil, nil
	}
	ttl, err := strconv.Atoi(string(rawTTL))
	if err != nil || ttl <= 0 {
		m.logger.Debug(ctx, "undecodable session ttl, treating as logged out")
		return nil, nil
	}

	return &Record{Identity: identity, LastRefreshedAt: refreshedAt, TTLSeconds: ttl}, nil
}

// Refresh revalidates the cached identity against the server and slides the
// window forward on success. On any failure, including transport failures,
// the session is cleared and common.ErrSessionInvalid is returned.
func (m *Manager) Refresh(ctx context.Context) error {
	rec, err := m.Current(ctx)
	if err != nil {
		return err
	}
	if rec == nil {
		return common.ErrSessionInvalid
	}

	if err := m.client.Refresh(ctx, rec.Identity.Username); err != nil {
		m.logger.Info(ctx, "refresh failed, clearing session", "username", rec.Identity.Username, "error", err)
		if err := m.Logout(ctx); err != nil {
			return err
		}
		return common.ErrSessionInvalid
	}

	rec.LastRefreshedAt = m.now()
	if err := m.save(ctx, rec); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// IsLoggedIn answers "is there a live session right now". A record whose
// window has elapsed is logged out; a record within the window is refreshed
// against the server, and only a successful refresh counts as logged in.
func (m *Manager) IsLoggedIn(ctx context.Context) bool {
	rec, err := m.Current(ctx)
	if err != nil {
		m.logger.Warn(ctx, "session read failed", "error", err)
		return false
	}
	if rec == nil {
		return false
	}

	if !Valid(rec, m.now()) {
		if err := m.Logout(ctx); err != nil {
			m.logger.Warn(ctx, "session clear failed", "error", err)
		}
		return false
	}

	return m.Refresh(ctx) == nil
}

// Logout clears the cached session. It never contacts the server and is
// idempotent: logging out with no session is not an error.
func (m *Manager) Logout(ctx context.Context) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return sessionrepo.NewSQLiteRepository(tx).Clear(ctx)
	})
}

// save writes all three session keys in one transaction so a crash can
// never leave a torn record behind.
func (m *Manager) save(ctx context.Context, rec *Record) error {
	rawIdentity, err := json.Marshal(rec.Identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := sessionrepo.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, sessionrepo.KeyIdentity, rawIdentity); err != nil {
			return err
		}
		if err := repo.Set(ctx, sessionrepo.KeyLastRefreshedAt, []byte(rec.LastRefreshedAt.UTC().Format(time.RFC3339))); err != nil {
			return err
		}
		return repo.Set(ctx, sessionrepo.KeyTTLSeconds, []byte(strconv.Itoa(rec.TTLSeconds)))
	})
}
