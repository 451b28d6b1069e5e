package entry

import (
	"bytes"
	"encoding/json"
	"regexp"

	"github.com/kailas-cloud/lexidex/internal/domain/field"
)

var homographSuffix = regexp.MustCompile(`#\d$`)

// StripHomographSuffix removes a trailing "#<digit>" from an entry uri.
func StripHomographSuffix(uri string) string {
	return homographSuffix.ReplaceAllString(uri, "")
}

// Row is one dictionary record as read from the store.
type Row struct {
	OrderedID                 int64
	Word                      string
	URI                       string
	Searchable                string
	SearchableCaseInsensitive string
	// Content holds the selected content columns.
	Content map[field.Field]string
}

// Value returns the column value for f.
func (r Row) Value(f field.Field) string {
	switch f {
	case field.Word:
		return r.Word
	case field.URI:
		return r.URI
	default:
		return r.Content[f]
	}
}

// SearchableFor returns the stored searchable form for the case mode.
func (r Row) SearchableFor(caseSensitive bool) string {
	if caseSensitive {
		return r.Searchable
	}
	return r.SearchableCaseInsensitive
}

// Flags tell how an entry matched a lookup.
type Flags struct {
	IsExact    bool
	IsMorpheus bool
}

// Entry is a dictionary entry as returned to callers. A homograph group is a
// parent with blank content fields and one child per row.
type Entry struct {
	orderedID int64
	fields    []field.Field
	values    map[field.Field]string
	word      string
	uri       string
	source    Row
	flags     *Flags
	children  []Entry
}

// FromRow builds a single-record entry carrying the selected fields.
func FromRow(r Row, fields []field.Field) Entry {
	values := make(map[field.Field]string, len(fields))
	for _, f := range fields {
		values[f] = r.Value(f)
	}
	return Entry{
		orderedID: r.OrderedID,
		fields:    fields,
		values:    values,
		word:      r.Word,
		uri:       r.URI,
		source:    r,
	}
}

// Group builds the entry for rows sharing one headword. A single row yields a
// plain entry; several rows yield a parent whose content fields are blank,
// whose uri has no homograph suffix, and whose children are the rows.
func Group(rows []Row, fields []field.Field) Entry {
	if len(rows) == 0 {
		return Entry{}
	}
	if len(rows) == 1 {
		return FromRow(rows[0], fields)
	}

	first := rows[0]
	uri := StripHomographSuffix(first.URI)
	values := make(map[field.Field]string, len(fields))
	for _, f := range fields {
		switch f {
		case field.Word:
			values[f] = first.Word
		case field.URI:
			values[f] = uri
		default:
			values[f] = ""
		}
	}

	children := make([]Entry, len(rows))
	for i, r := range rows {
		children[i] = FromRow(r, fields)
	}
	return Entry{
		orderedID: first.OrderedID,
		fields:    fields,
		values:    values,
		word:      first.Word,
		uri:       uri,
		source:    first,
		children:  children,
	}
}

// GroupRows groups rows by headword, in order of first appearance, and
// builds one entry per headword.
func GroupRows(rows []Row, fields []field.Field) []Entry {
	var (
		order  []string
		groups = make(map[string][]Row)
	)
	for _, r := range rows {
		if _, ok := groups[r.Word]; !ok {
			order = append(order, r.Word)
		}
		groups[r.Word] = append(groups[r.Word], r)
	}

	out := make([]Entry, len(order))
	for i, word := range order {
		out[i] = Group(groups[word], fields)
	}
	return out
}

// OrderedID returns the position of the first record of the entry.
func (e Entry) OrderedID() int64 { return e.orderedID }

// Span returns the number of records the entry covers.
func (e Entry) Span() int {
	if len(e.children) > 0 {
		return len(e.children)
	}
	return 1
}

// Word returns the headword.
func (e Entry) Word() string { return e.word }

// URI returns the entry uri.
func (e Entry) URI() string { return e.uri }

// Value returns an emitted field value.
func (e Entry) Value(f field.Field) string { return e.values[f] }

// Fields returns the emitted fields in order.
func (e Entry) Fields() []field.Field { return e.fields }

// Children returns the homograph records.
func (e Entry) Children() []Entry { return e.children }

// Searchable returns the stored searchable form of the first record.
func (e Entry) Searchable(caseSensitive bool) string {
	return e.source.SearchableFor(caseSensitive)
}

// Flags returns the lookup flags, if any were set.
func (e Entry) Flags() (Flags, bool) {
	if e.flags == nil {
		return Flags{}, false
	}
	return *e.flags, true
}

// IsZero reports whether the entry is empty.
func (e Entry) IsZero() bool { return e.word == "" && e.fields == nil }

// WithFlags returns a copy carrying lookup flags. IsMorpheus implies IsExact.
func (e Entry) WithFlags(f Flags) Entry {
	f.IsExact = f.IsExact || f.IsMorpheus
	e.flags = &f
	return e
}

// MapChildren returns a copy whose children are replaced by fn(child).
func (e Entry) MapChildren(fn func(Entry) Entry) Entry {
	if len(e.children) == 0 {
		return e
	}
	children := make([]Entry, len(e.children))
	for i, c := range e.children {
		children[i] = fn(c)
	}
	e.children = children
	return e
}

// WithoutChildren returns a copy without homograph children.
func (e Entry) WithoutChildren() Entry {
	e.children = nil
	return e
}

// AsSibling returns the entry as shown next to another one: no children and
// no homograph suffix on the uri.
func (e Entry) AsSibling() Entry {
	e.children = nil
	e.uri = StripHomographSuffix(e.uri)
	if _, ok := e.values[field.URI]; ok {
		values := make(map[field.Field]string, len(e.values))
		for k, v := range e.values {
			values[k] = v
		}
		values[field.URI] = e.uri
		e.values = values
	}
	return e
}

// MarshalJSON emits the selected fields in selection order, then the lookup
// flags and the children. An empty entry encodes as {}.
func (e Entry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(key string, v any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
		return nil
	}

	for _, f := range e.fields {
		if err := write(string(f), e.values[f]); err != nil {
			return nil, err
		}
	}
	if e.flags != nil {
		if err := write("isExact", e.flags.IsExact); err != nil {
			return nil, err
		}
		if err := write("isMorpheus", e.flags.IsMorpheus); err != nil {
			return nil, err
		}
	}
	if len(e.children) > 0 {
		if err := write("children", e.children); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Siblings are the records adjacent to an entry.
type Siblings struct {
	Previous *Entry `json:"previous,omitempty"`
	Next     *Entry `json:"next,omitempty"`
}
