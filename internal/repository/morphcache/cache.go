// Package morphcache memoizes analyzer answers in a key-value store.
package morphcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/lexidex/internal/db"
	"github.com/kailas-cloud/lexidex/internal/domain/morph"
)

const cacheKeyPrefix = "lexidex:morph:"

// analyzer is the decorated contract.
type analyzer interface {
	IsNeeded(canonical string) bool
	Lookup(ctx context.Context, canonical string, caseSensitive bool) morph.Result
}

// store is the consumer interface for the morphology cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedAnalyzer caches analyzer results in a key-value store.
type CachedAnalyzer struct {
	inner      analyzer
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator. A zero ttl keeps entries forever.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner analyzer,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedAnalyzer {
	return &CachedAnalyzer{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// IsNeeded delegates to the inner analyzer.
func (c *CachedAnalyzer) IsNeeded(canonical string) bool {
	return c.inner.IsNeeded(canonical)
}

// Lookup returns a cached result or calls the inner analyzer. Empty results
// are not stored: they may come from a timed out call.
func (c *CachedAnalyzer) Lookup(ctx context.Context, canonical string, caseSensitive bool) morph.Result {
	if !c.inner.IsNeeded(canonical) {
		return morph.Result{}
	}

	key := cacheKey(canonical, caseSensitive)
	if res, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return res
	}
	c.incCache("miss")

	res := c.inner.Lookup(ctx, canonical, caseSensitive)
	if !res.IsEmpty() {
		c.putToCache(ctx, key, res)
	}
	return res
}

func (c *CachedAnalyzer) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func cacheKey(canonical string, caseSensitive bool) string {
	mode := "i:"
	if caseSensitive {
		mode = "s:"
	}
	h := sha256.Sum256([]byte(mode + canonical))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

func (c *CachedAnalyzer) getFromCache(ctx context.Context, key string) (morph.Result, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached morphology", zap.String("key", key), zap.Error(err))
		}
		return morph.Result{}, false
	}
	if len(data) == 0 {
		return morph.Result{}, false
	}

	var candidates []morph.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil || len(candidates) == 0 {
		c.logger.Warn("Failed to parse cached morphology", zap.String("key", key), zap.Error(err))
		return morph.Result{}, false
	}
	return morph.FromCandidates(candidates), true
}

func (c *CachedAnalyzer) putToCache(ctx context.Context, key string, res morph.Result) {
	data, err := json.Marshal(res.All())
	if err != nil {
		c.logger.Warn("Failed to encode morphology", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache morphology", zap.String("key", key), zap.Error(err))
	}
}
