package session

import "context"

// Navigator is the navigation side effect the guards drive. The CLI and any
// future UI provide their own implementation.
type Navigator interface {
	// ToAuth switches to the authentication view.
	ToAuth()
	// ToHome switches to the main view.
	ToHome()
}

// RequireAuthenticated keeps authenticated users where they are and sends
// everyone else to the authentication view. It reports whether the caller
// may proceed.
func (m *Manager) RequireAuthenticated(ctx context.Context, nav Navigator) bool {
	if m.IsLoggedIn(ctx) {
		return true
	}
	nav.ToAuth()
	return false
}

// RedirectIfAuthenticated sends already-authenticated users to the main
// view, keeping them off the authentication view. It reports whether a
// redirect happened.
func (m *Manager) RedirectIfAuthenticated(ctx context.Context, nav Navigator) bool {
	if m.IsLoggedIn(ctx) {
		nav.ToHome()
		return true
	}
	return false
}
