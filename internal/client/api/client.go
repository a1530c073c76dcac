// Package api provides the client-side gateway to the credential service.
// It hides the HTTP transport behind a small interface so the session layer
// and CLI never deal with requests and status codes directly.
package api

import "context"

// User is the identity the server reports back after registration or login.
// It never carries a password or a password hash.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// RegisterRequest carries the fields needed to create an account.
type RegisterRequest struct {
	ID       string `json:"id,omitempty"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginResult is what a successful login yields: the user identity plus a
// signed access token.
type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Client is the gateway to the credential service.
type Client interface {
	// Register creates a new account and returns the stored identity.
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	// Login exchanges credentials for an identity and a token. Both an
	// unknown email and a wrong password surface as ErrUnauthorized.
	Login(ctx context.Context, email string, password string) (*LoginResult, error)
	// Refresh revalidates the account named by username. ErrUnauthorized
	// means the account no longer exists; ErrUnavailable means the server
	// could not be reached.
	Refresh(ctx context.Context, username string) error
	// Ping checks whether the server is reachable.
	Ping(ctx context.Context) error
	// Close releases any resources held by the client.
	Close() error
}
