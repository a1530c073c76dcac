// Package session implements the client-side session cache: a locally
// persisted record of who is logged in, with a sliding validity window
// renewed by server-side refresh calls. The persisted record is the sole
// source of truth for "logged in"; its absence means logged out.
package session

import "time"

// DefaultTTLSeconds is the validity window granted at login and at every
// successful refresh.
const DefaultTTLSeconds = 3600

// Identity is the denormalized slice of the user record kept on the client,
// enough to render a prompt without a network round trip.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Record is the cached session state.
type Record struct {
	Identity        Identity
	LastRefreshedAt time.Time
	TTLSeconds      int
}

// Valid reports whether the record's sliding window is still open at the
// given instant. It is a pure predicate: it never touches storage or the
// network, and it never mutates the record.
func Valid(rec *Record, now time.Time) bool {
	if rec == nil {
		return false
	}
	return now.Sub(rec.LastRefreshedAt) < time.Duration(rec.TTLSeconds)*time.Second
}
