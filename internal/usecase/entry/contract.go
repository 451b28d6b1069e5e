package entry

import (
	"context"

	"github.com/kailas-cloud/lexidex/internal/domain/entry"
	"github.com/kailas-cloud/lexidex/internal/domain/field"
)

// Repository reads dictionary rows by uri, position or at random.
type Repository interface {
	ByURI(ctx context.Context, uri string, fields []field.Field) ([]entry.Row, error)
	ByIDs(ctx context.Context, fields []field.Field, ids ...int64) ([]entry.Row, error)
	Random(
		ctx context.Context, fields []field.Field, minLen, maxLen int,
	) (row entry.Row, length int, ok bool, err error)
	All(ctx context.Context, fields []field.Field) ([]entry.Row, error)
}
