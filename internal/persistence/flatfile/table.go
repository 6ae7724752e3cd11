// Package flatfile persists records as comma-separated rows in UTF-8,
// LF-terminated files, one file per record kind. Full rewrites go through
// a temp-file-then-rename sequence so readers never observe a truncated
// file, and every mutation holds a per-file lock for its critical section.
package flatfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/example/extension-assistant/internal/persistence"
)

// Codec converts between a record and its row form. Decode receives a row
// with exactly len(Fields) columns and should name the offending field in
// any error it returns.
type Codec[T any] struct {
	Filename string
	Fields   []string
	Encode   func(T) []string
	Decode   func([]string) (T, error)
}

// Table is a single flat file holding rows of one record kind.
type Table[T any] struct {
	path  string
	codec Codec[T]
	mu    sync.Mutex
}

// NewTable binds a codec to its file under dir.
func NewTable[T any](dir string, codec Codec[T]) *Table[T] {
	return &Table[T]{path: filepath.Join(dir, codec.Filename), codec: codec}
}

// Load parses every row of the backing file. A missing file is an empty
// table; a malformed row is a fatal load error naming the file, row, and
// field. Load takes no lock: rewrites are atomic renames, so a plain read
// always observes a complete file.
func (t *Table[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.load()
}

func (t *Table[T]) load() ([]T, error) {
	file, err := os.Open(t.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: open %s: %v", persistence.ErrIO, t.codec.Filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", persistence.ErrCorrupt, t.codec.Filename, err)
	}

	records := make([]T, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(t.codec.Fields) {
			return nil, fmt.Errorf("%w: %s: row %d: expected %d fields, found %d",
				persistence.ErrCorrupt, t.codec.Filename, i+1, len(t.codec.Fields), len(row))
		}
		record, err := t.codec.Decode(row)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: row %d: %v", persistence.ErrCorrupt, t.codec.Filename, i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Append serialises the record and adds a single row to the file.
func (t *Table[T]) Append(ctx context.Context, record T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	file, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", persistence.ErrIO, t.codec.Filename, err)
	}
	writer := csv.NewWriter(file)
	if err := writer.Write(t.codec.Encode(record)); err != nil {
		file.Close()
		return fmt.Errorf("%w: append %s: %v", persistence.ErrIO, t.codec.Filename, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("%w: append %s: %v", persistence.ErrIO, t.codec.Filename, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", persistence.ErrIO, t.codec.Filename, err)
	}
	return nil
}

// Rewrite atomically replaces the file contents with the given ordered
// records.
func (t *Table[T]) Rewrite(ctx context.Context, records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rewriteLocked(records)
}

// Upsert replaces the first row matched by match, or appends the record
// when no row matches. The load-replace-rewrite sequence runs under the
// file lock so interleaved upserts cannot lose rows.
func (t *Table[T]) Upsert(ctx context.Context, record T, match func(T) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	records, err := t.load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range records {
		if match(records[i]) {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}
	return t.rewriteLocked(records)
}

func (t *Table[T]) rewriteLocked(records []T) error {
	dir := filepath.Dir(t.path)
	tmp, err := os.CreateTemp(dir, t.codec.Filename+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: temp for %s: %v", persistence.ErrIO, t.codec.Filename, err)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	for _, record := range records {
		if err := writer.Write(t.codec.Encode(record)); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("%w: write %s: %v", persistence.ErrIO, t.codec.Filename, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", persistence.ErrIO, t.codec.Filename, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: sync %s: %v", persistence.ErrIO, t.codec.Filename, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", persistence.ErrIO, t.codec.Filename, err)
	}
	if err := os.Rename(tmpName, t.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename %s: %v", persistence.ErrIO, t.codec.Filename, err)
	}
	return nil
}
