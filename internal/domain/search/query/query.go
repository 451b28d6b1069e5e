package query

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kailas-cloud/lexidex/internal/domain"
	"github.com/kailas-cloud/lexidex/internal/domain/field"
	"github.com/kailas-cloud/lexidex/internal/domain/script"
)

// Query limits.
const (
	// MaxLength is the exclusive upper bound on query length in runes.
	MaxLength = 50
	// MaxRepeat is the longest allowed run of one character.
	MaxRepeat = 3
)

// Metacharacters.
const (
	ExplicitStart  = '^'
	ExplicitEnd    = '$'
	SingleWildcard = '?'
	Wildcard       = '*'
	Quote          = '"'
)

// Options are the raw lookup parameters.
type Options struct {
	InputMode         script.Mode
	CaseSensitive     bool
	Fields            []field.Field
	Limit             int
	SkipMorpheus      bool
	IncludeMorphology bool
}

// Request is a lookup request with checked parameters. The query text itself
// is validated later, after alphabet conversion.
type Request struct {
	raw               string
	inputMode         script.Mode
	caseSensitive     bool
	fields            []field.Field
	limit             int
	skipMorpheus      bool
	includeMorphology bool
}

// New builds a Request. Fields must be non-empty; a non-positive limit means
// no requested limit.
func New(raw string, opts Options) (Request, error) {
	if len(opts.Fields) == 0 {
		return Request{}, fmt.Errorf("%w: at least one field is required", domain.ErrInvalidParams)
	}
	if opts.InputMode == "" {
		opts.InputMode = script.Greek
	}
	limit := opts.Limit
	if limit < 0 {
		limit = 0
	}
	return Request{
		raw:               strings.TrimSpace(raw),
		inputMode:         opts.InputMode,
		caseSensitive:     opts.CaseSensitive,
		fields:            opts.Fields,
		limit:             limit,
		skipMorpheus:      opts.SkipMorpheus,
		includeMorphology: opts.IncludeMorphology,
	}, nil
}

// Raw returns the trimmed query text.
func (r *Request) Raw() string { return r.raw }

// InputMode returns the script the query was typed in.
func (r *Request) InputMode() script.Mode { return r.inputMode }

// CaseSensitive reports whether matching is case sensitive.
func (r *Request) CaseSensitive() bool { return r.caseSensitive }

// Fields returns the selected fields.
func (r *Request) Fields() []field.Field { return r.fields }

// Limit returns the requested row limit, 0 when none.
func (r *Request) Limit() int { return r.limit }

// SkipMorpheus reports whether the analyzer must not be called.
func (r *Request) SkipMorpheus() bool { return r.skipMorpheus }

// IncludeMorphology reports whether the response carries analyzer output.
func (r *Request) IncludeMorphology() bool { return r.includeMorphology }

// Normalized is the canonical form of a lookup query.
type Normalized struct {
	canonical     string
	isExact       bool
	caseSensitive bool
}

// Canonical returns the searchable query body (metacharacters kept).
func (n Normalized) Canonical() string { return n.canonical }

// IsExactMatch reports whether the query was anchored on both ends.
func (n Normalized) IsExactMatch() bool { return n.isExact }

// IsCaseSensitive reports the case mode.
func (n Normalized) IsCaseSensitive() bool { return n.caseSensitive }

// Prepare converts, validates and normalizes a raw query.
func Prepare(raw string, mode script.Mode, caseSensitive bool) (Normalized, error) {
	searchable := script.Canonical(script.ToGreek(strings.TrimSpace(raw), mode))
	if err := Validate(searchable); err != nil {
		return Normalized{}, err
	}
	body, exact := ParseMatch(searchable)
	body = strings.TrimSpace(body)
	if body == "" {
		return Normalized{}, fmt.Errorf("%w: empty query body", domain.ErrInputRejected)
	}
	if !caseSensitive {
		body = strings.ToLower(body)
	}
	return Normalized{canonical: body, isExact: exact, caseSensitive: caseSensitive}, nil
}

// ParseMatch derives the match mode. "^…$" and "\"…\"" are exact matches with
// both anchors removed; a lone leading anchor is removed and the match stays
// a wildcard one.
func ParseMatch(q string) (string, bool) {
	switch {
	case len(q) >= 2 && q[0] == ExplicitStart && q[len(q)-1] == ExplicitEnd,
		len(q) >= 2 && q[0] == Quote && q[len(q)-1] == Quote:
		return q[1 : len(q)-1], true
	case q == string(Quote):
		return "", true
	case strings.HasPrefix(q, string(ExplicitStart)), strings.HasPrefix(q, string(Quote)):
		return q[1:], false
	default:
		return q, false
	}
}

// Validate checks a converted, diacritic-free query. A single character must
// be a Greek letter. Longer input may only hold Greek letters, whitespace and
// the metacharacters, with '^' first and '$' last, stays under MaxLength runes
// and never repeats a character more than MaxRepeat times in a row.
func Validate(s string) error {
	n := utf8.RuneCountInString(s)
	switch {
	case n == 0:
		return fmt.Errorf("%w: empty query", domain.ErrInputRejected)
	case n == 1:
		r, _ := utf8.DecodeRuneInString(s)
		if !script.IsGreekLetter(r) {
			return fmt.Errorf("%w: %q is not a Greek letter", domain.ErrInputRejected, r)
		}
		return nil
	case n >= MaxLength:
		return fmt.Errorf("%w: query too long (max %d characters)", domain.ErrInputRejected, MaxLength-1)
	}

	var prev rune
	run := 0
	i := 0
	for _, r := range s {
		switch {
		case script.IsGreekLetter(r), unicode.IsSpace(r),
			r == SingleWildcard, r == Wildcard, r == Quote:
		case r == ExplicitStart:
			if i != 0 {
				return fmt.Errorf("%w: '^' allowed only at the start", domain.ErrInputRejected)
			}
		case r == ExplicitEnd:
			if i != n-1 {
				return fmt.Errorf("%w: '$' allowed only at the end", domain.ErrInputRejected)
			}
		default:
			return fmt.Errorf("%w: invalid character %q", domain.ErrInputRejected, r)
		}

		if r == prev {
			run++
		} else {
			run = 1
		}
		if run > MaxRepeat {
			return fmt.Errorf("%w: more than %d identical characters in a row", domain.ErrInputRejected, MaxRepeat)
		}
		prev = r
		i++
	}
	return nil
}
