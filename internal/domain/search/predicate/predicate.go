package predicate

import (
	"strings"

	"github.com/kailas-cloud/lexidex/internal/domain/morph"
	"github.com/kailas-cloud/lexidex/internal/domain/script"
)

// Column is a dictionary column a clause can target.
type Column string

// Filterable columns.
const (
	Searchable                Column = "searchable"
	SearchableCaseInsensitive Column = "searchableCaseInsensitive"
	URI                       Column = "uri"
)

// Operator compares a column with a bound value.
type Operator string

// Supported operators.
const (
	Equal Operator = "="
	Glob  Operator = "GLOB"
)

// Clause is a single "column operator ?" comparison.
type Clause struct {
	column Column
	op     Operator
	value  string
}

// Column returns the target column.
func (c Clause) Column() Column { return c.column }

// Operator returns the comparison operator.
func (c Clause) Operator() Operator { return c.op }

// Value returns the bound value.
func (c Clause) Value() string { return c.value }

// Predicate is a disjunction of clauses.
type Predicate struct {
	clauses []Clause
}

// Clauses returns the OR-joined clauses.
func (p Predicate) Clauses() []Clause { return p.clauses }

// Params returns the bound values in clause order.
func (p Predicate) Params() []any {
	out := make([]any, len(p.clauses))
	for i, c := range p.clauses {
		out[i] = c.value
	}
	return out
}

// IsEmpty reports whether the predicate matches nothing.
func (p Predicate) IsEmpty() bool { return len(p.clauses) == 0 }

// ColumnFor picks the searchable column for the case mode.
func ColumnFor(caseSensitive bool) Column {
	if caseSensitive {
		return Searchable
	}
	return SearchableCaseInsensitive
}

// Build assembles the lookup predicate: the literal branch compares the
// shaped query with '=' or GLOB, and every analyzer lemma adds an equality
// branch on the same column.
func Build(canonical string, isExact, caseSensitive bool, morphology morph.Result) Predicate {
	col := ColumnFor(caseSensitive)
	op := Glob
	if isExact {
		op = Equal
	}
	literal := Pattern(canonical, isExact, caseSensitive)

	p := Predicate{clauses: []Clause{{column: col, op: op, value: literal}}}
	seen := map[string]bool{literal: true}
	for _, lemma := range morphology.Lemmas() {
		v := script.Canonical(lemma)
		if !caseSensitive {
			v = strings.ToLower(v)
		}
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		p.clauses = append(p.clauses, Clause{column: col, op: Equal, value: v})
	}
	return p
}

// globEscaper makes GLOB metacharacters match literally.
var globEscaper = strings.NewReplacer("[", "[[]", "*", "[*]", "?", "[?]")

// ByURI matches an entry uri and its numbered homographs ("uri#1", ...).
func ByURI(uri string) Predicate {
	return Predicate{clauses: []Clause{
		{column: URI, op: Equal, value: uri},
		{column: URI, op: Glob, value: globEscaper.Replace(uri) + "#?"},
	}}
}

// Pattern shapes the literal branch value. Non-exact queries become GLOB
// prefix patterns, or suffix patterns when they end with '$'.
func Pattern(canonical string, isExact, caseSensitive bool) string {
	s := canonical
	if !isExact {
		switch {
		case strings.HasSuffix(s, "$"):
			s = strings.TrimSuffix(s, "$")
			if !strings.HasPrefix(s, "*") {
				s = "*" + s
			}
		case !strings.HasSuffix(s, "*"):
			s += "*"
		}
	}
	if !caseSensitive {
		s = strings.ToLower(s)
	}
	return s
}
