package script

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ToBetaCode renders Greek text as lower-case TLG beta code. Capitals are
// prefixed with '*' and carry their marks between the asterisk and the letter.
// Runes outside the Greek alphabet pass through.
func ToBetaCode(s string) string {
	runes := []rune(norm.NFD.String(s))

	var b strings.Builder
	b.Grow(len(runes))
	for i := 0; i < len(runes); {
		r := runes[i]
		lower := unicode.ToLower(r)
		if v, ok := variants[lower]; ok {
			lower = unicode.ToLower(v)
		}
		beta, ok := greekToBeta[lower]
		if !ok {
			b.WriteRune(r)
			i++
			continue
		}

		j := i + 1
		for j < len(runes) && unicode.Is(unicode.Mn, runes[j]) {
			j++
		}
		marks := runes[i+1 : j]

		if unicode.IsUpper(r) {
			b.WriteByte('*')
			writeBetaMarks(&b, marks)
			b.WriteRune(beta)
		} else {
			b.WriteRune(beta)
			writeBetaMarks(&b, marks)
		}
		i = j
	}
	return b.String()
}

func writeBetaMarks(b *strings.Builder, marks []rune) {
	for _, m := range markOrder {
		for _, r := range marks {
			if r == m.mark {
				b.WriteRune(m.beta)
				break
			}
		}
	}
}

// FromBetaCode converts beta code to NFC-composed Greek. Beta letters are
// case-insensitive; '*' marks a capital only when it precedes a letter or a
// mark, otherwise it is kept as a literal. A sigma that is not followed by a
// letter becomes final sigma.
func FromBetaCode(s string) string {
	in := []rune(s)

	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(in); i++ {
		r := in[i]

		if r == '*' && i+1 < len(in) && isBetaSymbol(in[i+1]) {
			j := i + 1
			var marks []rune
			for j < len(in) {
				m, ok := betaToMark[in[j]]
				if !ok {
					break
				}
				marks = append(marks, m)
				j++
			}
			if j < len(in) {
				if g, ok := betaLetter(in[j]); ok {
					b.WriteRune(unicode.ToUpper(g))
					for _, m := range marks {
						b.WriteRune(m)
					}
					i = j
					continue
				}
			}
			for _, m := range marks {
				b.WriteRune(m)
			}
			i = j - 1
			continue
		}

		if g, ok := betaLetter(r); ok {
			if g == 'σ' && !letterFollows(in, i+1) {
				g = 'ς'
			}
			b.WriteRune(g)
			continue
		}
		if m, ok := betaToMark[r]; ok {
			b.WriteRune(m)
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}

func betaLetter(r rune) (rune, bool) {
	if r > unicode.MaxASCII {
		return 0, false
	}
	g, ok := betaToGreek[unicode.ToLower(r)]
	return g, ok
}

func isBetaSymbol(r rune) bool {
	if _, ok := betaLetter(r); ok {
		return true
	}
	_, ok := betaToMark[r]
	return ok
}

// letterFollows skips marks from position i and reports whether a beta
// letter comes next.
func letterFollows(in []rune, i int) bool {
	for ; i < len(in); i++ {
		if _, ok := betaToMark[in[i]]; ok {
			continue
		}
		_, ok := betaLetter(in[i])
		return ok
	}
	return false
}
