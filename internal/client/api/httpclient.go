package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mentormatch/mentorauth/internal/client/config"
	"github.com/mentormatch/mentorauth/internal/logging"
)

// HTTPClient talks JSON over HTTP to the credential service.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client bound to the endpoint and timeout from cfg.
func NewHTTPClient(cfg *config.Config, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: cfg.ServerEndpointAddr,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		logger:  logger.With("module", "api_client"),
	}
}

type errorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

// postJSON sends body as JSON to path and decodes a 2xx response into out
// (when out is non-nil). Non-2xx statuses are mapped onto the package
// sentinel errors.
func (c *HTTPClient) postJSON(ctx context.Context, path string, body any, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
		}
		return nil
	}

	var er errorResponse
	json.NewDecoder(resp.Body).Decode(&er)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrDuplicate
	case http.StatusBadRequest:
		if er.Message != "" {
			return fmt.Errorf("%w: %s", ErrBadRequest, er.Message)
		}
		return ErrBadRequest
	default:
		c.logger.Warn(ctx, "unexpected status", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
}

// Register creates a new account.
func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var res struct {
		Message string `json:"message"`
		User    User   `json:"user"`
	}
	if err := c.postJSON(ctx, "/register", req, &res); err != nil {
		return nil, err
	}
	return &res.User, nil
}

// Login exchanges credentials for an identity and a token.
func (c *HTTPClient) Login(ctx context.Context, email string, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var res LoginResult
	if err := c.postJSON(ctx, "/login", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Refresh revalidates the account named by username.
func (c *HTTPClient) Refresh(ctx context.Context, username string) error {
	body := map[string]string{"username": username}
	return c.postJSON(ctx, "/refresh", body, nil)
}

// Ping checks server reachability via the health endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
