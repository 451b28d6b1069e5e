package script

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ToTransliteration renders Greek words in Latin script: η → ê, ω → ô,
// nasal gamma → n, initial rough breathing → h, digamma → w. Other marks are
// dropped and non-Greek runes pass through.
func ToTransliteration(s string) string {
	runes := []rune(norm.NFD.String(s))

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); {
		if _, ok := greekBase(runes[i]); !ok {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i + 1
		for j < len(runes) {
			if _, ok := greekBase(runes[j]); !ok && !unicode.Is(unicode.Mn, runes[j]) {
				break
			}
			j++
		}
		b.WriteString(transliterateWord(runes[i:j]))
		i = j
	}
	return norm.NFC.String(b.String())
}

type translitLetter struct {
	lower rune
	upper bool
	rough bool
}

func transliterateWord(word []rune) string {
	letters := make([]translitLetter, 0, len(word))
	for _, r := range word {
		if unicode.Is(unicode.Mn, r) {
			if r == markRough && len(letters) > 0 {
				letters[len(letters)-1].rough = true
			}
			continue
		}
		lower, _ := greekBase(r)
		letters = append(letters, translitLetter{lower: lower, upper: unicode.IsUpper(r)})
	}
	if len(letters) == 0 {
		return ""
	}

	aspirated := false
	if letters[0].lower == 'ρ' {
		aspirated = letters[0].rough
	} else {
		for k := 0; k < len(letters) && isGreekVowel(letters[k].lower); k++ {
			aspirated = aspirated || letters[k].rough
		}
	}

	var b strings.Builder
	for k, l := range letters {
		out := greekToLatin[l.lower]
		if l.lower == 'γ' && k+1 < len(letters) && isVelar(letters[k+1].lower) {
			out = "n"
		}
		if k == 0 && aspirated {
			if l.lower == 'ρ' {
				out = "rh"
			} else {
				out = "h" + out
			}
		}
		if l.upper {
			out = capitalize(out)
		}
		b.WriteString(out)
	}
	return b.String()
}

// FromTransliteration converts Latin transliteration back to Greek. Digraphs
// win over single letters, 'h' outside a digraph is a breathing and is
// dropped, and word-final s becomes final sigma. Unknown runes pass through.
func FromTransliteration(s string) string {
	runes := []rune(norm.NFC.String(s))
	lowered := make([]rune, len(runes))
	for i, r := range runes {
		lowered[i] = unicode.ToLower(r)
	}

	var b strings.Builder
	b.Grow(len(s) * 2)
	carryUpper := false
	for i := 0; i < len(runes); {
		upper := carryUpper || unicode.IsUpper(runes[i])
		carryUpper = false

		if lowered[i] == 'h' {
			carryUpper = upper
			i++
			continue
		}

		greek, n := matchLatin(lowered[i:])
		if n == 0 {
			b.WriteRune(runes[i])
			i++
			continue
		}
		i += n
		if greek == "σ" && (i >= len(runes) || !unicode.IsLetter(runes[i])) {
			greek = "ς"
		}
		if upper {
			greek = capitalize(greek)
		}
		b.WriteString(greek)
	}
	return b.String()
}

func matchLatin(in []rune) (string, int) {
	for _, m := range latinToGreek {
		n := 0
		ok := true
		for _, r := range m.latin {
			if n >= len(in) || in[n] != r {
				ok = false
				break
			}
			n++
		}
		if ok {
			return m.greek, n
		}
	}
	return "", 0
}

// NormalizeURI brings an entry identifier to the stored form: Greek is
// transliterated and macron vowels become circumflex vowels.
func NormalizeURI(s string) string {
	return strings.Map(func(r rune) rune {
		if c, ok := macronToCircumflex[r]; ok {
			return c
		}
		return r
	}, ToTransliteration(s))
}

func greekBase(r rune) (rune, bool) {
	lower := unicode.ToLower(r)
	if v, ok := variants[lower]; ok && lower != 'ς' {
		lower = unicode.ToLower(v)
	}
	_, ok := greekToLatin[lower]
	return lower, ok
}

func isGreekVowel(r rune) bool {
	switch r {
	case 'α', 'ε', 'η', 'ι', 'ο', 'υ', 'ω':
		return true
	}
	return false
}

func isVelar(r rune) bool {
	switch r {
	case 'γ', 'κ', 'ξ', 'χ':
		return true
	}
	return false
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
