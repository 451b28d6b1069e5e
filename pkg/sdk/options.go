package lexidex

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	dbPath    string
	dbVersion string
	table     string

	morpheusBinary  string
	morpheusStemlib string
	lookupTimeout   time.Duration

	allowedFields []string
	defaultFields []string
	maxRows       int

	cacheDriver   string // "bolt", "redis" or "valkey"
	cacheAddrs    []string
	cachePassword string
	cachePath     string
	cacheTTL      time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithDictionary sets the SQLite dictionary file and the dataset version
// echoed in every result. "<path>.gz" is unpacked when path is missing.
func WithDictionary(path, version string) Option {
	return optionFunc(func(c *clientConfig) {
		c.dbPath = path
		c.dbVersion = version
	})
}

// WithTable overrides the dictionary table name. Default: "bailly".
func WithTable(name string) Option {
	return optionFunc(func(c *clientConfig) {
		c.table = name
	})
}

// WithMorpheus enables the morphological analyzer. Lookups fall back to
// literal matching when the installation is incomplete.
func WithMorpheus(binaryPath, stemlibPath string) Option {
	return optionFunc(func(c *clientConfig) {
		c.morpheusBinary = binaryPath
		c.morpheusStemlib = stemlibPath
	})
}

// WithLookupTimeout bounds each analyzer call. Default: 100ms.
func WithLookupTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.lookupTimeout = d
	})
}

// WithFields sets the field allow-list and the default selection.
// Defaults outside the allow-list fall back to the whole allow-list.
func WithFields(allowed, defaults []string) Option {
	return optionFunc(func(c *clientConfig) {
		c.allowedFields = allowed
		c.defaultFields = defaults
	})
}

// WithMaxRows caps the rows read per lookup. Default: unbounded.
func WithMaxRows(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxRows = n
	})
}

// WithBoltCache caches analyzer answers in a local bbolt file.
func WithBoltCache(path string, ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheDriver = "bolt"
		c.cachePath = path
		c.cacheTTL = ttl
	})
}

// WithValkeyCache caches analyzer answers in a Valkey instance.
func WithValkeyCache(addr, password string, ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheDriver = "valkey"
		c.cacheAddrs = []string{addr}
		c.cachePassword = password
		c.cacheTTL = ttl
	})
}

// WithRedisCache caches analyzer answers in a Redis instance.
func WithRedisCache(addr, password string, ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheDriver = "redis"
		c.cacheAddrs = []string{addr}
		c.cachePassword = password
		c.cacheTTL = ttl
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
