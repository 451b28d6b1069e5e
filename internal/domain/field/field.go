package field

import (
	"fmt"
	"strings"
	"unicode"
)

// Field is a queryable dictionary column.
type Field string

// Queryable columns.
const (
	Word           Field = "word"
	URI            Field = "uri"
	HTMLDefinition Field = "htmlDefinition"
	Definition     Field = "definition"
	HTMLExcerpt    Field = "htmlExcerpt"
	Excerpt        Field = "excerpt"
)

var known = map[Field]bool{
	Word: true, URI: true, HTMLDefinition: true,
	Definition: true, HTMLExcerpt: true, Excerpt: true,
}

// Parse validates a column name.
func Parse(name string) (Field, error) {
	f := Field(name)
	if !known[f] {
		return "", fmt.Errorf("unknown field %q", name)
	}
	return f, nil
}

// IsContent reports whether the field is blanked on a homograph parent.
func (f Field) IsContent() bool {
	return f != Word && f != URI
}

// SplitList removes every whitespace rune and splits on commas.
func SplitList(s string) []string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// Selector resolves requested field lists against the configured allow-list.
type Selector struct {
	allowed  []Field
	defaults []Field
}

// NewSelector validates the allow-list and defaults. Defaults that are not a
// subset of the allow-list fall back to the whole allow-list.
func NewSelector(allowed, defaults []string) (Selector, error) {
	if len(allowed) == 0 {
		return Selector{}, fmt.Errorf("allowed fields are required")
	}
	s := Selector{}
	for _, name := range allowed {
		f, err := Parse(name)
		if err != nil {
			return Selector{}, fmt.Errorf("allowed fields: %w", err)
		}
		s.allowed = appendUnique(s.allowed, f)
	}

	s.defaults = s.allowed
	if picked, ok := s.pick(defaults); ok {
		s.defaults = picked
	}
	return s, nil
}

// Select parses a comma-separated list. An empty list or one with any
// member outside the allow-list yields the defaults.
func (s Selector) Select(raw string) []Field {
	if picked, ok := s.pick(SplitList(raw)); ok {
		return picked
	}
	return s.Defaults()
}

// Allowed returns the allow-list.
func (s Selector) Allowed() []Field { return append([]Field(nil), s.allowed...) }

// Defaults returns the default selection.
func (s Selector) Defaults() []Field { return append([]Field(nil), s.defaults...) }

func (s Selector) pick(names []string) ([]Field, bool) {
	if len(names) == 0 {
		return nil, false
	}
	out := make([]Field, 0, len(names))
	for _, name := range names {
		f := Field(name)
		if !s.isAllowed(f) {
			return nil, false
		}
		out = appendUnique(out, f)
	}
	return out, true
}

func (s Selector) isAllowed(f Field) bool {
	for _, a := range s.allowed {
		if a == f {
			return true
		}
	}
	return false
}

func appendUnique(list []Field, f Field) []Field {
	for _, x := range list {
		if x == f {
			return list
		}
	}
	return append(list, f)
}
