// Package dictionary reads dictionary rows through the select store.
package dictionary

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/lexidex/internal/db"
	"github.com/kailas-cloud/lexidex/internal/domain"
	"github.com/kailas-cloud/lexidex/internal/domain/entry"
	"github.com/kailas-cloud/lexidex/internal/domain/field"
	"github.com/kailas-cloud/lexidex/internal/domain/search/predicate"
)

// DefaultTable is the dictionary table of the shipped database.
const DefaultTable = "bailly"

// Columns every read needs to group and identify rows.
const (
	columnWord                      = "word"
	columnURI                       = "uri"
	columnSearchable                = "searchable"
	columnSearchableCaseInsensitive = "searchableCaseInsensitive"
)

// store is the consumer interface for dictionary reads (ISP).
type store interface {
	Select(ctx context.Context, q *db.SelectQuery) (*db.SelectResult, error)
}

// Repo implements the row access of the lookup and entry use cases.
type Repo struct {
	store store
	table string
}

// New creates a dictionary repository over table. An empty table name
// selects DefaultTable.
func New(s store, table string) *Repo {
	if table == "" {
		table = DefaultTable
	}
	return &Repo{store: s, table: table}
}

// Lookup returns the rows matching p in orderedID order, at most limit of
// them (0 means all), with the total number of matching rows.
func (r *Repo) Lookup(
	ctx context.Context, p predicate.Predicate, fields []field.Field, limit int,
) (rows []entry.Row, countAll int, err error) {
	q, err := db.NewSelect(r.table).
		Columns(columnWord, columnURI, columnSearchable, columnSearchableCaseInsensitive).
		Columns(contentColumns(fields)...).
		Match(p).
		WithCountAll().
		Limit(limit).
		Build()
	if err != nil {
		return nil, 0, fmt.Errorf("build lookup: %w", err)
	}

	res, err := r.store.Select(ctx, q)
	if err != nil {
		return nil, 0, r.wrap("lookup", err)
	}
	return toRows(res.Rows, fields), res.CountAll, nil
}

// ByURI returns the rows of the entry at uri: the uri itself and its
// numbered homographs.
func (r *Repo) ByURI(ctx context.Context, uri string, fields []field.Field) ([]entry.Row, error) {
	q, err := r.base(fields).Match(predicate.ByURI(uri)).Build()
	if err != nil {
		return nil, fmt.Errorf("build uri select: %w", err)
	}
	res, err := r.store.Select(ctx, q)
	if err != nil {
		return nil, r.wrap("select by uri", err)
	}
	return toRows(res.Rows, fields), nil
}

// ByIDs returns the rows with the given orderedIDs, in orderedID order.
// Unknown ids are skipped.
func (r *Repo) ByIDs(ctx context.Context, fields []field.Field, ids ...int64) ([]entry.Row, error) {
	valid := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id > 0 {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return nil, nil
	}

	q, err := r.base(fields).IDs(valid...).Build()
	if err != nil {
		return nil, fmt.Errorf("build id select: %w", err)
	}
	res, err := r.store.Select(ctx, q)
	if err != nil {
		return nil, r.wrap("select by id", err)
	}
	return toRows(res.Rows, fields), nil
}

// Random picks one row. Positive bounds restrict length(definition) to
// [minLen, maxLen]; maxLen 0 leaves the range open. ok is false when no row
// qualifies.
func (r *Repo) Random(
	ctx context.Context, fields []field.Field, minLen, maxLen int,
) (row entry.Row, length int, ok bool, err error) {
	b := r.base(fields).WithLength().Random().Limit(1)
	if minLen > 0 || maxLen > 0 {
		b = b.DefinitionLength(minLen, maxLen)
	}
	q, err := b.Build()
	if err != nil {
		return entry.Row{}, 0, false, fmt.Errorf("build random select: %w", err)
	}

	res, err := r.store.Select(ctx, q)
	if err != nil {
		return entry.Row{}, 0, false, r.wrap("select random", err)
	}
	if len(res.Rows) == 0 {
		return entry.Row{}, 0, false, nil
	}
	return toRow(res.Rows[0], fields), res.Rows[0].Length, true, nil
}

// All returns every row in orderedID order.
func (r *Repo) All(ctx context.Context, fields []field.Field) ([]entry.Row, error) {
	q, err := r.base(fields).Build()
	if err != nil {
		return nil, fmt.Errorf("build full select: %w", err)
	}
	res, err := r.store.Select(ctx, q)
	if err != nil {
		return nil, r.wrap("select all", err)
	}
	return toRows(res.Rows, fields), nil
}

func (r *Repo) base(fields []field.Field) *db.SelectBuilder {
	return db.NewSelect(r.table).
		Columns(columnWord, columnURI).
		Columns(contentColumns(fields)...)
}

// wrap marks store failures as ErrStoreUnavailable. A rejected query is a
// programming error and keeps its own identity.
func (r *Repo) wrap(op string, err error) error {
	if errors.Is(err, db.ErrInvalidQuery) {
		return fmt.Errorf("%s %s: %w", op, r.table, err)
	}
	return fmt.Errorf("%s %s: %w: %w", op, r.table, domain.ErrStoreUnavailable, err)
}

func contentColumns(fields []field.Field) []string {
	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.IsContent() {
			cols = append(cols, string(f))
		}
	}
	return cols
}

func toRows(rows []db.Row, fields []field.Field) []entry.Row {
	out := make([]entry.Row, len(rows))
	for i, r := range rows {
		out[i] = toRow(r, fields)
	}
	return out
}

func toRow(r db.Row, fields []field.Field) entry.Row {
	content := make(map[field.Field]string, len(fields))
	for _, f := range fields {
		if f.IsContent() {
			content[f] = r.Fields[string(f)]
		}
	}
	return entry.Row{
		OrderedID:                 r.OrderedID,
		Word:                      r.Fields[columnWord],
		URI:                       r.Fields[columnURI],
		Searchable:                r.Fields[columnSearchable],
		SearchableCaseInsensitive: r.Fields[columnSearchableCaseInsensitive],
		Content:                   content,
	}
}
