package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"

	"github.com/kailas-cloud/lexidex/internal/db"
)

// Compile-time check: Store implements db.Dictionary.
var _ db.Dictionary = (*Store)(nil)

// DefaultMmapSize is the PRAGMA mmap_size applied when none is configured.
const DefaultMmapSize int64 = 30_000_000_000

// Config holds the dictionary file location.
type Config struct {
	FilePath string
	MmapSize int64
}

// Store is a read-only dictionary backed by a SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens the dictionary file read-only. When the file is missing but
// "<path>.gz" exists, the archive is decompressed next to it first.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.FilePath == "" {
		return nil, &db.Error{Op: db.OpOpen, Err: errors.New("file path is required")}
	}
	if cfg.MmapSize <= 0 {
		cfg.MmapSize = DefaultMmapSize
	}

	if err := ensureFile(cfg.FilePath); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", dsn(cfg))
	if err != nil {
		return nil, &db.Error{Op: db.OpOpen, Err: err}
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, &db.Error{Op: db.OpOpen, Err: err}
	}
	return &Store{db: conn}, nil
}

// NewStoreForTest wraps an already opened handle.
func NewStoreForTest(conn *sql.DB) *Store {
	return &Store{db: conn}
}

func dsn(cfg Config) string {
	v := url.Values{}
	v.Set("mode", "ro")
	v.Add("_pragma", fmt.Sprintf("mmap_size(%d)", cfg.MmapSize))
	v.Add("_pragma", "query_only(1)")
	return "file:" + cfg.FilePath + "?" + v.Encode()
}

func ensureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return &db.Error{Op: db.OpOpen, Err: err}
	}

	gz := path + ".gz"
	if _, err := os.Stat(gz); err != nil {
		return &db.Error{Op: db.OpOpen, Err: fmt.Errorf("%w: %s", db.ErrFileNotFound, path)}
	}
	if err := gunzip(gz, path); err != nil {
		return &db.Error{Op: db.OpUnzip, Err: err}
	}
	return nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close releases the handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Select runs q and scans every row.
func (s *Store) Select(ctx context.Context, q *db.SelectQuery) (*db.SelectResult, error) {
	if err := q.Validate(); err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: fmt.Errorf("%w: %w", db.ErrInvalidQuery, err)}
	}
	stmt, args := render(q)

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: err}
	}
	defer func() { _ = rows.Close() }()

	res := &db.SelectResult{}
	for rows.Next() {
		row, countAll, err := scanRow(rows, q)
		if err != nil {
			return nil, &db.Error{Op: db.OpScan, Err: err}
		}
		res.CountAll = countAll
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpScan, Err: err}
	}
	if q.CountAll && len(res.Rows) == 0 {
		// The page can be empty past the last match.
		n, err := s.count(ctx, q)
		if err != nil {
			return nil, err
		}
		res.CountAll = n
	}
	return res, nil
}

func (s *Store) count(ctx context.Context, q *db.SelectQuery) (int, error) {
	stmt, args := renderCount(q)
	var n int
	if err := s.db.QueryRowContext(ctx, stmt, args...).Scan(&n); err != nil {
		return 0, &db.Error{Op: db.OpSelect, Err: err}
	}
	return n, nil
}

func scanRow(rows *sql.Rows, q *db.SelectQuery) (db.Row, int, error) {
	var (
		id       int64
		length   sql.NullInt64
		countAll int
	)
	values := make([]sql.NullString, len(q.Columns))

	dest := make([]any, 0, len(q.Columns)+3)
	dest = append(dest, &id)
	for i := range values {
		dest = append(dest, &values[i])
	}
	if q.WithLength {
		dest = append(dest, &length)
	}
	if q.CountAll {
		dest = append(dest, &countAll)
	}
	if err := rows.Scan(dest...); err != nil {
		return db.Row{}, 0, err
	}

	fields := make(map[string]string, len(q.Columns))
	for i, c := range q.Columns {
		fields[c] = values[i].String
	}
	return db.Row{OrderedID: id, Length: int(length.Int64), Fields: fields}, countAll, nil
}
