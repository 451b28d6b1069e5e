package lexidex

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/lexidex/internal/db"
	dbBolt "github.com/kailas-cloud/lexidex/internal/db/bolt"
	dbRedis "github.com/kailas-cloud/lexidex/internal/db/redis"
	"github.com/kailas-cloud/lexidex/internal/db/sqlite"
	"github.com/kailas-cloud/lexidex/internal/domain/field"
	"github.com/kailas-cloud/lexidex/internal/domain/response"
	"github.com/kailas-cloud/lexidex/internal/domain/search/query"
	"github.com/kailas-cloud/lexidex/internal/metrics"
	"github.com/kailas-cloud/lexidex/internal/repository/dictionary"
	"github.com/kailas-cloud/lexidex/internal/repository/morphcache"
	"github.com/kailas-cloud/lexidex/internal/transport/morpheus"
	entryuc "github.com/kailas-cloud/lexidex/internal/usecase/entry"
	healthuc "github.com/kailas-cloud/lexidex/internal/usecase/health"
	lookupuc "github.com/kailas-cloud/lexidex/internal/usecase/lookup"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultCacheTTL         = 24 * time.Hour
)

// defaultFields is the allow-list used when WithFields is not given.
var defaultFields = []string{
	string(field.Word), string(field.URI), string(field.HTMLDefinition),
	string(field.Definition), string(field.HTMLExcerpt), string(field.Excerpt),
}

// Internal interfaces for substitution in tests.
type lookupUseCase interface {
	Lookup(ctx context.Context, req *query.Request) (response.Lookup, error)
}

type entryUseCase interface {
	Get(ctx context.Context, uri string, fields []field.Field, withSiblings bool) (response.Entry, error)
	Random(ctx context.Context, fields []field.Field, lengthRange []int) (response.Random, error)
	Batch(ctx context.Context, fields []field.Field, offset, limit int) (response.Batch, error)
}

// Client is the lexidex SDK entry point.
type Client struct {
	store     db.Dictionary
	cache     db.Cache
	fields    field.Selector
	lookupSvc lookupUseCase
	entrySvc  entryUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New opens the dictionary and, when configured, the analyzer and the
// morphology cache. The context bounds the cache readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{maxRows: lookupuc.Unbounded}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.dbPath == "" {
		return nil, errors.New("lexidex: dictionary path required (use WithDictionary)")
	}
	if len(cfg.allowedFields) == 0 {
		cfg.allowedFields = defaultFields
	}
	selector, err := field.NewSelector(cfg.allowedFields, cfg.defaultFields)
	if err != nil {
		return nil, fmt.Errorf("lexidex: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	store, err := sqlite.Open(ctx, sqlite.Config{FilePath: cfg.dbPath})
	if err != nil {
		return nil, fmt.Errorf("lexidex: open dictionary: %w", err)
	}

	cache, err := createCache(ctx, cfg)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return wireClient(store, cache, selector, cfg, obs), nil
}

func createCache(ctx context.Context, cfg *clientConfig) (db.Cache, error) {
	switch cfg.cacheDriver {
	case "":
		return nil, nil
	case "bolt":
		s, err := dbBolt.NewStore(cfg.cachePath)
		if err != nil {
			return nil, fmt.Errorf("lexidex: create bolt cache: %w", err)
		}
		return s, nil
	case "redis", "valkey":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.cacheAddrs,
			Password: cfg.cachePassword,
		})
		if err != nil {
			return nil, fmt.Errorf("lexidex: create %s cache: %w", cfg.cacheDriver, err)
		}
		if err := s.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			s.Close()
			return nil, fmt.Errorf("lexidex: %s cache not ready: %w", cfg.cacheDriver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("lexidex: unknown cache driver %q", cfg.cacheDriver)
	}
}

func wireClient(
	store db.Dictionary, cache db.Cache, selector field.Selector, cfg *clientConfig, obs *observer,
) *Client {
	repo := dictionary.New(store, cfg.table)

	// Pass a nil interface, not a typed nil pointer, when no analyzer is set.
	var analyzer lookupuc.Analyzer
	var checker healthuc.AnalyzerChecker
	if cfg.morpheusBinary != "" {
		client := morpheus.New(morpheus.Config{
			BinaryPath:  cfg.morpheusBinary,
			StemlibPath: cfg.morpheusStemlib,
			Timeout:     cfg.lookupTimeout,
		}, nil, zap.NewNop())
		analyzer, checker = client, client

		if cache != nil {
			ttl := cfg.cacheTTL
			if ttl <= 0 {
				ttl = defaultCacheTTL
			}
			analyzer = morphcache.New(client, cache, ttl, metrics.MorphologyCacheTotal, zap.NewNop())
		}
	}

	var cachePinger healthuc.DBPinger
	if cache != nil {
		cachePinger = cache
	}

	return &Client{
		store:  store,
		cache:  cache,
		fields: selector,
		lookupSvc: lookupuc.New(repo, analyzer, lookupuc.Config{
			Version: cfg.dbVersion,
			MaxRows: cfg.maxRows,
		}),
		entrySvc:  entryuc.New(repo, cfg.dbVersion),
		healthSvc: healthuc.New(store, checker, cachePinger),
		obs:       obs,
	}
}

// Close releases all resources.
func (c *Client) Close() error {
	if c.cache != nil {
		c.cache.Close()
	}
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			return fmt.Errorf("close dictionary: %w", err)
		}
	}
	return nil
}

func (c *Client) selectFields(names []string) []field.Field {
	return c.fields.Select(strings.Join(names, ","))
}
