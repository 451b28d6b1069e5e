// Package script converts Greek text between its native script, TLG beta code
// and Latin transliteration, and reduces it to the canonical searchable form
// stored in the dictionary's searchable columns.
//
// All functions are pure and safe for concurrent use.
package script

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Mode is the script the caller typed the query in.
type Mode string

// Supported input modes.
const (
	Greek           Mode = "greek"
	BetaCode        Mode = "betacode"
	Transliteration Mode = "transliteration"
)

// ParseMode maps a request parameter to a Mode. Unknown values mean Greek.
func ParseMode(s string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case BetaCode:
		return BetaCode
	case Transliteration:
		return Transliteration
	default:
		return Greek
	}
}

// Normalize reduces input to its canonical searchable form: alphabet
// conversion, variant folding, diacritic stripping and, unless caseSensitive,
// case folding. Normalize(Normalize(x)) == Normalize(x) for every mode.
func Normalize(input string, mode Mode, caseSensitive bool) string {
	s := Canonical(ToGreek(input, mode))
	if !caseSensitive {
		s = strings.ToLower(s)
	}
	return s
}

// ToGreek converts input typed in mode into Greek script. Characters that do
// not belong to the source encoding pass through unchanged.
func ToGreek(input string, mode Mode) string {
	switch mode {
	case BetaCode:
		return FromBetaCode(input)
	case Transliteration:
		return FromTransliteration(input)
	default:
		return input
	}
}

// Canonical folds letter variants and strips diacritics, preserving case.
// Marks on Latin letters are kept so that a stripped Latin letter can never
// be mistaken for beta code on a later pass.
func Canonical(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	latin := false
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			if latin {
				b.WriteRune(r)
			}
			continue
		}
		latin = unicode.Is(unicode.Latin, r)
		if v, ok := variants[r]; ok {
			r = v
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}

// StripDiacritics removes accents, breathings, diaeresis, iota subscript and
// vowel-length marks. Letter variants are kept.
func StripDiacritics(s string) string {
	// Chains carry state, so each call builds its own.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// FoldVariants maps orthographic variants (final and lunate sigma, curly beta,
// script theta, ...) onto their standard glyph.
func FoldVariants(s string) string {
	return strings.Map(func(r rune) rune {
		if v, ok := variants[r]; ok {
			return v
		}
		return r
	}, s)
}

// IsGreekLetter reports whether r is a bare Greek letter (digamma included).
func IsGreekLetter(r rune) bool {
	switch {
	case r >= 'α' && r <= 'ω':
		return true
	case r >= 'Α' && r <= 'Ω':
		return r != 0x03A2
	case r == 'ϝ' || r == 'Ϝ':
		return true
	}
	return false
}

// IsCapitalized reports whether the first rune of s is an upper-case letter.
func IsCapitalized(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
