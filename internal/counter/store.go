// Package counter keeps the site-wide page-view total behind a small Store
// interface with in-memory, Postgres and Redis implementations.
package counter

import (
	"context"
	"errors"
)

// ErrNotConfigured means the selected backend is missing its connection
// settings.
var ErrNotConfigured = errors.New("counter store not configured")

// Store is a single named counter.
type Store interface {
	// Incr adds one and returns the new total.
	Incr(ctx context.Context) (int64, error)
	// Get returns the current total; a counter never incremented reads 0.
	Get(ctx context.Context) (int64, error)
}
