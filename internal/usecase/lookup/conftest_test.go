package lookup

import (
	"context"
	"strings"
	"testing"

	"github.com/kailas-cloud/lexidex/internal/domain/entry"
	"github.com/kailas-cloud/lexidex/internal/domain/field"
	"github.com/kailas-cloud/lexidex/internal/domain/morph"
	"github.com/kailas-cloud/lexidex/internal/domain/script"
	"github.com/kailas-cloud/lexidex/internal/domain/search/predicate"
	"github.com/kailas-cloud/lexidex/internal/domain/search/query"
)

// --- Mocks ---

type mockRepo struct {
	rows      []entry.Row
	countAll  int
	err       error
	called    bool
	lastPred  predicate.Predicate
	lastLimit int
}

func (m *mockRepo) Lookup(
	_ context.Context, p predicate.Predicate, _ []field.Field, limit int,
) ([]entry.Row, int, error) {
	m.called = true
	m.lastPred = p
	m.lastLimit = limit
	return m.rows, m.countAll, m.err
}

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

// --- Helpers ---

var defaultFields = []field.Field{field.URI, field.Definition}

func row(id int64, word, uri, definition string) entry.Row {
	searchable := script.Canonical(word)
	return entry.Row{
		OrderedID:                 id,
		Word:                      word,
		URI:                       uri,
		Searchable:                searchable,
		SearchableCaseInsensitive: strings.ToLower(searchable),
		Content:                   map[field.Field]string{field.Definition: definition},
	}
}

func newRequest(t *testing.T, raw string, opts query.Options) *query.Request {
	t.Helper()
	if opts.Fields == nil {
		opts.Fields = defaultFields
	}
	req, err := query.New(raw, opts)
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	return &req
}

func prepare(t *testing.T, raw string, caseSensitive bool) query.Normalized {
	t.Helper()
	n, err := query.Prepare(raw, script.Greek, caseSensitive)
	if err != nil {
		t.Fatalf("prepare %q: %v", raw, err)
	}
	return n
}
