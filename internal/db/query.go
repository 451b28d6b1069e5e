package db

import (
	"errors"
	"strconv"

	"github.com/kailas-cloud/lexidex/internal/domain/search/predicate"
)

// Bookkeeping columns every dictionary table carries.
const (
	ColumnOrderedID  = "orderedID"
	ColumnDefinition = "definition"
)

// Computed result columns.
const (
	ColumnCountAll = "countAll"
	ColumnLength   = "length"
)

// Order selects the row ordering of a select query.
type Order int

const (
	// OrderByID orders rows by orderedID.
	OrderByID Order = iota
	// OrderRandom picks rows in random order.
	OrderRandom
)

// LengthRange bounds length(definition). Max 0 means no upper bound.
type LengthRange struct {
	Min int
	Max int
}

// SelectQuery is a read over the dictionary table. Non-empty condition
// groups are AND-ed; the clauses of Match are OR-ed.
type SelectQuery struct {
	Table   string
	Columns []string
	Match   predicate.Predicate
	IDs     []int64
	Length  *LengthRange
	// CountAll adds the number of rows matching the conditions, ignoring
	// Limit and Offset.
	CountAll bool
	// WithLength adds length(definition) to every row.
	WithLength bool
	Order      Order
	Limit      int
	Offset     int
}

// SelectResult is the output of a select query.
type SelectResult struct {
	CountAll int
	Rows     []Row
}

// Row is a single dictionary record. Fields holds the requested columns,
// NULL read as "".
type Row struct {
	OrderedID int64
	Length    int
	Fields    map[string]string
}

// Validate checks that the query is well-formed.
func (q *SelectQuery) Validate() error {
	if !IsValidIdentifier(q.Table) {
		return errors.New("table name contains invalid characters")
	}
	seen := make(map[string]bool, len(q.Columns))
	for i, c := range q.Columns {
		if !IsValidIdentifier(c) {
			return errors.New("invalid column name at index " + strconv.Itoa(i))
		}
		if seen[c] {
			return errors.New("duplicate column: " + c)
		}
		seen[c] = true
	}
	for _, c := range q.Match.Clauses() {
		if !IsValidIdentifier(string(c.Column())) {
			return errors.New("invalid match column: " + string(c.Column()))
		}
	}
	if q.Limit < 0 || q.Offset < 0 {
		return errors.New("limit and offset must not be negative")
	}
	if q.Length != nil && q.Length.Max != 0 && q.Length.Max < q.Length.Min {
		return errors.New("length range is inverted")
	}
	return nil
}

// IsValidIdentifier returns true if s matches [a-zA-Z0-9_]+.
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !isAlpha && !isDigit && r != '_' {
			return false
		}
	}
	return true
}
