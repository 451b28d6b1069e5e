package lookup

import (
	"strings"

	"github.com/kailas-cloud/lexidex/internal/domain/entry"
	"github.com/kailas-cloud/lexidex/internal/domain/field"
	"github.com/kailas-cloud/lexidex/internal/domain/search/query"
)

// Aggregate groups rows by headword, in order of first appearance, and flags
// every entry and child against the normalized query. morphologyRan tells
// whether lemma branches took part in the predicate.
func Aggregate(rows []entry.Row, n query.Normalized, morphologyRan bool, fields []field.Field) []entry.Entry {
	cs := n.IsCaseSensitive()
	flag := func(e entry.Entry) entry.Entry {
		return e.WithFlags(flagsFor(e.Searchable(cs), n.Canonical(), morphologyRan))
	}

	grouped := entry.GroupRows(rows, fields)
	for i, e := range grouped {
		grouped[i] = flag(e).MapChildren(flag)
	}
	return grouped
}

// flagsFor compares a stored searchable form with the canonical query. A row
// the literal branch cannot reach was surfaced by a lemma branch.
func flagsFor(searchable, canonical string, morphologyRan bool) entry.Flags {
	return entry.Flags{
		IsExact:    searchable == canonical,
		IsMorpheus: morphologyRan && !strings.HasPrefix(searchable, canonical),
	}
}
