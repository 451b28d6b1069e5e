package db

import "errors"

// Sentinel errors for database operations.
var (
	ErrKeyNotFound  = errors.New("db: key not found")
	ErrFileNotFound = errors.New("db: database file not found")
	ErrInvalidQuery = errors.New("db: invalid query")
)

// Op names used for error context.
const (
	OpOpen   = "OPEN"
	OpUnzip  = "GUNZIP"
	OpPing   = "PING"
	OpSelect = "SELECT"
	OpScan   = "SCAN"
	OpGet    = "GET"
	OpSet    = "SET"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
