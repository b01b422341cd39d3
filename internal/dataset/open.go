// Package dataset reads raw clinic rows from JSON or Parquet files.
package dataset

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gyeh/clinicmap/internal/model"
)

// Open reads all raw rows from path, choosing the decoder by extension:
// .parquet is read as Parquet, anything else as JSON.
func Open(ctx context.Context, path string) ([]model.RawClinicRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		rows, err := ReadParquet(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", path, err)
		}
		return rows, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	rows, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return rows, nil
}

// FileHash computes the hex-encoded SHA-256 of the file at path, used to tell
// dataset snapshots apart.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for hash: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
