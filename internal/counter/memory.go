package counter

import (
	"context"
	"sync/atomic"
)

// MemoryStore is a process-local counter. It starts at zero on every run.
type MemoryStore struct {
	n atomic.Int64
}

// NewMemoryStore returns a counter at zero.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Incr(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.n.Add(1), nil
}

func (s *MemoryStore) Get(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.n.Load(), nil
}
