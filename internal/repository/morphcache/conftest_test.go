package morphcache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/lexidex/internal/db"
	"github.com/kailas-cloud/lexidex/internal/domain/morph"
)

type mockAnalyzer struct {
	result morph.Result
	needed bool
	calls  int
}

func (m *mockAnalyzer) IsNeeded(string) bool { return m.needed }

func (m *mockAnalyzer) Lookup(context.Context, string, bool) morph.Result {
	m.calls++
	return m.result
}

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

func newTestCachedAnalyzer(t *testing.T, inner *mockAnalyzer) (*CachedAnalyzer, *mockKVStore) {
	t.Helper()
	ms := &mockKVStore{}
	return New(inner, ms, time.Hour, nil, zap.NewNop()), ms
}

var logosResult = morph.FromCandidates([]morph.Candidate{
	{Lemma: "λόγος", WordForm: "λόγος", Stem: "λογ", Ending: "ος"},
	{Lemma: "λέγω", WordForm: "λόγος"},
})
