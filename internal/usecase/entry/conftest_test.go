package entry

import (
	"context"
	"strings"

	"github.com/kailas-cloud/lexidex/internal/domain/entry"
	"github.com/kailas-cloud/lexidex/internal/domain/field"
)

// memRepo serves rows from memory, in orderedID order.
type memRepo struct {
	rows []entry.Row
	err  error

	lastURI     string
	lastMin     int
	lastMax     int
	randomIndex int
}

func (m *memRepo) ByURI(_ context.Context, uri string, _ []field.Field) ([]entry.Row, error) {
	m.lastURI = uri
	if m.err != nil {
		return nil, m.err
	}
	var out []entry.Row
	for _, r := range m.rows {
		if r.URI == uri || (strings.HasPrefix(r.URI, uri+"#") && len(r.URI) == len(uri)+2) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepo) ByIDs(_ context.Context, _ []field.Field, ids ...int64) ([]entry.Row, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []entry.Row
	for _, r := range m.rows {
		for _, id := range ids {
			if r.OrderedID == id {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (m *memRepo) Random(
	_ context.Context, _ []field.Field, minLen, maxLen int,
) (entry.Row, int, bool, error) {
	m.lastMin, m.lastMax = minLen, maxLen
	if m.err != nil {
		return entry.Row{}, 0, false, m.err
	}
	for i := m.randomIndex; i < len(m.rows); i++ {
		n := len([]rune(m.rows[i].Content[field.Definition]))
		if n >= minLen && (maxLen == 0 || n <= maxLen) {
			return m.rows[i], n, true, nil
		}
	}
	return entry.Row{}, 0, false, nil
}

func (m *memRepo) All(context.Context, []field.Field) ([]entry.Row, error) {
	return m.rows, m.err
}

func row(id int64, word, uri, definition string) entry.Row {
	return entry.Row{
		OrderedID: id,
		Word:      word,
		URI:       uri,
		Content:   map[field.Field]string{field.Definition: definition},
	}
}

func fixture() *memRepo {
	return &memRepo{rows: []entry.Row{
		row(1, "ἀνηπύω", "anêpuô", "crier"),
		row(2, "ἀνήρ", "anêr", "homme"),
		row(3, "ἀνήρεικτος", "anêreiktos", "non brisé"),
		row(4, "εἰμί", "eimi#1", "être"),
		row(5, "εἰμί", "eimi#2", "aller"),
		row(6, "λόγος", "logos", "parole"),
	}}
}

var defaultFields = []field.Field{field.URI, field.Definition}
