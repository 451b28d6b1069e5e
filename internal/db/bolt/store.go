// Package bolt implements db.Cache on an embedded bbolt file. Each value is
// stored with its expiry and expired keys read as missing.
package bolt

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/kailas-cloud/lexidex/internal/db"
)

// Compile-time check: Store implements db.Cache.
var _ db.Cache = (*Store)(nil)

var bucketCache = []byte("morphology")

// expiry header: unix nanoseconds, 0 = never.
const headerLen = 8

// Store is a bbolt-backed key-value cache.
type Store struct {
	db  *bolt.DB
	now func() time.Time
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	bdb, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, &db.Error{Op: db.OpOpen, Err: fmt.Errorf("bbolt open: %w", err)}
	}
	err = bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCache)
		return err
	})
	if err != nil {
		_ = bdb.Close()
		return nil, &db.Error{Op: db.OpOpen, Err: fmt.Errorf("create bucket: %w", err)}
	}
	return &Store{db: bdb, now: time.Now}, nil
}

// Ping checks that the file is readable.
func (s *Store) Ping(_ context.Context) error {
	err := s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketCache) == nil {
			return fmt.Errorf("bucket %q missing", bucketCache)
		}
		return nil
	})
	if err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() {
	_ = s.db.Close()
}

// Get retrieves a live value by key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketCache).Get([]byte(key))
		if len(v) < headerLen {
			return db.ErrKeyNotFound
		}
		exp := int64(binary.BigEndian.Uint64(v[:headerLen]))
		if exp != 0 && s.now().UnixNano() >= exp {
			return db.ErrKeyNotFound
		}
		// bbolt slices are only valid within tx
		out = make([]byte, len(v)-headerLen)
		copy(out, v[headerLen:])
		return nil
	})
	if err == db.ErrKeyNotFound {
		return nil, err
	}
	if err != nil {
		return nil, &db.Error{Op: db.OpGet, Err: err}
	}
	return out, nil
}

// Set stores a value without expiration.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.SetWithTTL(ctx, key, value, 0)
}

// SetWithTTL stores a value with an expiration. A non-positive ttl means none.
func (s *Store) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	buf := make([]byte, headerLen+len(value))
	if ttl > 0 {
		binary.BigEndian.PutUint64(buf[:headerLen], uint64(s.now().Add(ttl).UnixNano()))
	}
	copy(buf[headerLen:], value)

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCache).Put([]byte(key), buf)
	})
	if err != nil {
		return &db.Error{Op: db.OpSet, Err: err}
	}
	return nil
}
