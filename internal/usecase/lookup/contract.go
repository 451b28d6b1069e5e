package lookup

import (
	"context"

	"github.com/kailas-cloud/lexidex/internal/domain/entry"
	"github.com/kailas-cloud/lexidex/internal/domain/field"
	"github.com/kailas-cloud/lexidex/internal/domain/morph"
	"github.com/kailas-cloud/lexidex/internal/domain/search/predicate"
)

// Repository reads dictionary rows matching a predicate.
type Repository interface {
	Lookup(
		ctx context.Context, p predicate.Predicate, fields []field.Field, limit int,
	) (rows []entry.Row, countAll int, err error)
}

// Analyzer resolves a canonical form to morphological candidates. Lookup
// never fails; an unusable analyzer yields an empty result.
type Analyzer interface {
	IsNeeded(canonical string) bool
	Lookup(ctx context.Context, canonical string, caseSensitive bool) morph.Result
}
