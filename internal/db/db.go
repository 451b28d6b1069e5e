package db

import (
	"context"
	"time"
)

// Dictionary is the read-only dictionary store facade.
type Dictionary interface {
	Pinger
	Selecter
	Close() error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Selecter runs select queries over the dictionary table.
type Selecter interface {
	Select(ctx context.Context, q *SelectQuery) (*SelectResult, error)
}

// KVStore provides simple key-value operations.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Cache is a key-value backend for memoized analyzer answers.
type Cache interface {
	Pinger
	KVStore
	Close()
}
