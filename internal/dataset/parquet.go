package dataset

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/clinicmap/internal/model"
)

const readBatchSize = 256

// ParquetReader wraps a parquet GenericReader for streaming RawClinicRow records.
type ParquetReader struct {
	file   *os.File
	pf     *parquet.File
	reader *parquet.GenericReader[model.RawClinicRow]
}

// OpenParquet opens a Parquet file, validates its columns and returns a
// streaming reader.
func OpenParquet(path string) (*ParquetReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	if err := ValidateSchema(pf.Schema()); err != nil {
		f.Close()
		return nil, err
	}

	r := parquet.NewGenericReader[model.RawClinicRow](pf)
	return &ParquetReader{file: f, pf: pf, reader: r}, nil
}

// NumRows returns the total number of rows in the Parquet file.
func (r *ParquetReader) NumRows() int64 {
	return r.reader.NumRows()
}

// Read reads up to len(rows) records into the provided slice.
// Returns the number of rows read and io.EOF when done. Pointer fields of
// non-zero rows are overwritten in place, so clear a reused slice first.
func (r *ParquetReader) Read(rows []model.RawClinicRow) (int, error) {
	n, err := r.reader.Read(rows)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("read parquet rows: %w", err)
	}
	return n, err
}

// Schema returns the schema stored in the file, before any conversion to
// RawClinicRow.
func (r *ParquetReader) Schema() *parquet.Schema {
	return r.pf.Schema()
}

// Close releases all resources.
func (r *ParquetReader) Close() error {
	if err := r.reader.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}

// ReadParquet reads every row of the file.
func ReadParquet(ctx context.Context, path string) ([]model.RawClinicRow, error) {
	reader, err := OpenParquet(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	all := make([]model.RawClinicRow, 0, reader.NumRows())
	buf := make([]model.RawClinicRow, readBatchSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// The reader fills non-nil pointer fields in place; rows already
		// appended to all still share those pointers.
		clear(buf)
		n, readErr := reader.Read(buf)
		all = append(all, buf[:n]...)
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, readErr
		}
	}
	return all, nil
}

// WriteParquet writes rows to path, replacing any existing file.
func WriteParquet(path string, rows []model.RawClinicRow) error {
	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("write parquet %s: %w", path, err)
	}
	return nil
}
