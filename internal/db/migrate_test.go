package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

type recordingExecer struct {
	stmts []string
	fail  error
}

func (r *recordingExecer) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	if r.fail != nil {
		return pgconn.CommandTag{}, r.fail
	}
	r.stmts = append(r.stmts, sql)
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

func TestApplyMigrations(t *testing.T) {
	rec := &recordingExecer{}
	n, err := ApplyMigrations(context.Background(), rec, zerolog.Nop())
	if err != nil {
		t.Fatalf("ApplyMigrations: %v", err)
	}
	if n == 0 || n != len(rec.stmts) {
		t.Fatalf("applied %d, executed %d statements", n, len(rec.stmts))
	}
	if !strings.Contains(rec.stmts[0], "CREATE TABLE IF NOT EXISTS clinicmap.views") {
		t.Errorf("first migration should create the views table:\n%s", rec.stmts[0])
	}
}

func TestApplyMigrations_ExecError(t *testing.T) {
	boom := errors.New("boom")
	n, err := ApplyMigrations(context.Background(), &recordingExecer{fail: boom}, zerolog.Nop())
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if n != 0 {
		t.Errorf("applied = %d, want 0", n)
	}
}
