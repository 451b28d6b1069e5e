package db

import (
	"fmt"

	"github.com/kailas-cloud/lexidex/internal/domain/search/predicate"
)

// SelectBuilder is a fluent builder for dictionary select queries.
type SelectBuilder struct {
	q SelectQuery
}

// NewSelect starts building a select over table, ordered by orderedID.
func NewSelect(table string) *SelectBuilder {
	return &SelectBuilder{q: SelectQuery{Table: table, Order: OrderByID}}
}

// Columns adds result columns. Duplicates and orderedID are skipped.
func (b *SelectBuilder) Columns(cols ...string) *SelectBuilder {
	for _, c := range cols {
		if c == ColumnOrderedID || contains(b.q.Columns, c) {
			continue
		}
		b.q.Columns = append(b.q.Columns, c)
	}
	return b
}

// Match restricts rows to those matching any clause of p.
func (b *SelectBuilder) Match(p predicate.Predicate) *SelectBuilder {
	b.q.Match = p
	return b
}

// IDs restricts rows to the given orderedIDs.
func (b *SelectBuilder) IDs(ids ...int64) *SelectBuilder {
	b.q.IDs = append(b.q.IDs, ids...)
	return b
}

// DefinitionLength bounds length(definition); max 0 leaves it open.
func (b *SelectBuilder) DefinitionLength(minLen, maxLen int) *SelectBuilder {
	b.q.Length = &LengthRange{Min: minLen, Max: maxLen}
	return b
}

// WithCountAll adds the total match count to the result.
func (b *SelectBuilder) WithCountAll() *SelectBuilder {
	b.q.CountAll = true
	return b
}

// WithLength adds length(definition) to every row.
func (b *SelectBuilder) WithLength() *SelectBuilder {
	b.q.WithLength = true
	return b
}

// Random orders rows randomly.
func (b *SelectBuilder) Random() *SelectBuilder {
	b.q.Order = OrderRandom
	return b
}

// Limit caps the number of rows; 0 means no cap.
func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.q.Limit = n
	return b
}

// Offset skips the first n rows.
func (b *SelectBuilder) Offset(n int) *SelectBuilder {
	b.q.Offset = n
	return b
}

// Build validates and returns the query.
func (b *SelectBuilder) Build() (*SelectQuery, error) {
	if err := b.q.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	q := b.q
	return &q, nil
}

// MustBuild calls Build and panics on error.
func (b *SelectBuilder) MustBuild() *SelectQuery {
	q, err := b.Build()
	if err != nil {
		panic(err)
	}
	return q
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
