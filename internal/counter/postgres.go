package counter

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	embedsql "github.com/gyeh/clinicmap/internal/sql"
)

// Querier is the subset of pgxpool.Pool the Postgres store needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore keeps the counter as one row of clinicmap.views. The table
// is created by db.ApplyMigrations.
type PostgresStore struct {
	q   Querier
	key string
}

// NewPostgresStore returns a store for key; q is usually a *pgxpool.Pool.
func NewPostgresStore(q Querier, key string) *PostgresStore {
	return &PostgresStore{q: q, key: key}
}

func (s *PostgresStore) Incr(ctx context.Context) (int64, error) {
	var total int64
	if err := s.q.QueryRow(ctx, embedsql.IncrCounter, s.key).Scan(&total); err != nil {
		return 0, fmt.Errorf("increment %s: %w", s.key, err)
	}
	return total, nil
}

func (s *PostgresStore) Get(ctx context.Context) (int64, error) {
	var total int64
	err := s.q.QueryRow(ctx, embedsql.GetCounter, s.key).Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", s.key, err)
	}
	return total, nil
}
