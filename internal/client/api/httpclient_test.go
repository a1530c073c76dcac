package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentormatch/mentorauth/internal/client/config"
	"github.com/mentormatch/mentorauth/internal/logging"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{ServerEndpointAddr: srv.URL, RequestTimeout: 2 * time.Second}
	return NewHTTPClient(cfg, nopLogger{})
}

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@example.com", body["email"])

		json.NewEncoder(w).Encode(LoginResult{
			User:  User{ID: "u-1", Username: "alice", Role: "student"},
			Token: "tok",
		})
	}))

	res, err := c.Login(context.Background(), "alice@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u-1", res.User.ID)
	assert.Equal(t, "alice", res.User.Username)
	assert.Equal(t, "tok", res.Token)
}

func TestLogin_Unauthorized(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
	}))

	_, err := c.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	cfg := &config.Config{ServerEndpointAddr: srv.URL, RequestTimeout: time.Second}
	c := NewHTTPClient(cfg, nopLogger{})

	_, err := c.Login(context.Background(), "alice@example.com", "pw")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRegister_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "user registered",
			"user":    User{ID: "u-1", Email: "a@b.c", Username: "a", Role: "student"},
		})
	}))

	u, err := c.Register(context.Background(), RegisterRequest{Email: "a@b.c", Username: "a", Password: "Abcdefg1!"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, "a", u.Username)
}

func TestRegister_Duplicate(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "email or username already exists"})
	}))

	_, err := c.Register(context.Background(), RegisterRequest{Email: "a@b.c", Username: "a", Password: "pw"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestRegister_ValidationError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "email: invalid email", "field": "email"})
	}))

	_, err := c.Register(context.Background(), RegisterRequest{Email: "bad", Username: "a", Password: "pw"})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "invalid email")
}

func TestRefresh(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "known user", status: http.StatusOK, wantErr: nil},
		{name: "deleted user", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/refresh", r.URL.Path)
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]bool{"ok": tt.status == http.StatusOK})
			}))

			err := c.Refresh(context.Background(), "alice")
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestPing(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	assert.NoError(t, c.Ping(context.Background()))
}

func TestPing_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	cfg := &config.Config{ServerEndpointAddr: srv.URL, RequestTimeout: time.Second}
	c := NewHTTPClient(cfg, nopLogger{})

	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}
