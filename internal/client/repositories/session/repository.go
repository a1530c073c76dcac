// Package session provides the key-value store backing the cached session
// on the client side.
package session

import (
	"context"
)

// Well-known keys in the session store.
const (
	KeyIdentity        = "identity"
	KeyLastRefreshedAt = "last_refreshed_at"
	KeyTTLSeconds      = "ttl_seconds"
)

// Repository is a small key-value store. Get returns (nil, nil) for a key
// that is absent, so callers can distinguish "no value" from a storage
// failure.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
}
