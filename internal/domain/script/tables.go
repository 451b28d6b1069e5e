package script

// variants folds orthographic variants onto the glyph stored in the
// searchable columns.
var variants = map[rune]rune{
	'ς': 'σ',
	'ϲ': 'σ',
	'Ϲ': 'Σ',
	'ϐ': 'β',
	'ϑ': 'θ',
	'ϕ': 'φ',
	'ϰ': 'κ',
	'ϱ': 'ρ',
	'ϖ': 'π',
	'ϵ': 'ε',
	'ϴ': 'Θ',
	'ϒ': 'Υ',
}

// Beta code letters, lower-case Greek on the right.
var betaToGreek = map[rune]rune{
	'a': 'α', 'b': 'β', 'g': 'γ', 'd': 'δ', 'e': 'ε', 'z': 'ζ',
	'h': 'η', 'q': 'θ', 'i': 'ι', 'k': 'κ', 'l': 'λ', 'm': 'μ',
	'n': 'ν', 'c': 'ξ', 'o': 'ο', 'p': 'π', 'r': 'ρ', 's': 'σ',
	't': 'τ', 'u': 'υ', 'f': 'φ', 'x': 'χ', 'y': 'ψ', 'w': 'ω',
	'v': 'ϝ',
}

var greekToBeta = map[rune]rune{
	'α': 'a', 'β': 'b', 'γ': 'g', 'δ': 'd', 'ε': 'e', 'ζ': 'z',
	'η': 'h', 'θ': 'q', 'ι': 'i', 'κ': 'k', 'λ': 'l', 'μ': 'm',
	'ν': 'n', 'ξ': 'c', 'ο': 'o', 'π': 'p', 'ρ': 'r', 'σ': 's',
	'ς': 's', 'τ': 't', 'υ': 'u', 'φ': 'f', 'χ': 'x', 'ψ': 'y',
	'ω': 'w', 'ϝ': 'v',
}

// Combining marks.
const (
	markSmooth    = '\u0313'
	markRough     = '\u0314'
	markAcute     = '\u0301'
	markGrave     = '\u0300'
	markCircumflx = '\u0342'
	markDiaeresis = '\u0308'
	markIotaSub   = '\u0345'
)

var betaToMark = map[rune]rune{
	')':  markSmooth,
	'(':  markRough,
	'/':  markAcute,
	'\\': markGrave,
	'=':  markCircumflx,
	'+':  markDiaeresis,
	'|':  markIotaSub,
}

// markOrder is the beta code emission order: breathing, diaeresis, accent,
// iota subscript.
var markOrder = []struct {
	mark rune
	beta rune
}{
	{markSmooth, ')'},
	{markRough, '('},
	{markDiaeresis, '+'},
	{markAcute, '/'},
	{markGrave, '\\'},
	{markCircumflx, '='},
	{markIotaSub, '|'},
}

// Transliteration of lower-case Greek letters. Nasal gamma and rough
// breathing are handled by the transliterator itself.
var greekToLatin = map[rune]string{
	'α': "a", 'β': "b", 'γ': "g", 'δ': "d", 'ε': "e", 'ζ': "z",
	'η': "ê", 'θ': "th", 'ι': "i", 'κ': "k", 'λ': "l", 'μ': "m",
	'ν': "n", 'ξ': "x", 'ο': "o", 'π': "p", 'ρ': "r", 'σ': "s",
	'ς': "s", 'ϲ': "s", 'τ': "t", 'υ': "u", 'φ': "ph", 'χ': "ch",
	'ψ': "ps", 'ω': "ô", 'ϝ': "w",
}

// latinToGreek is scanned longest key first.
var latinToGreek = []struct {
	latin string
	greek string
}{
	{"nch", "γχ"},
	{"ng", "γγ"},
	{"nk", "γκ"},
	{"nx", "γξ"},
	{"th", "θ"},
	{"ph", "φ"},
	{"ch", "χ"},
	{"kh", "χ"},
	{"ps", "ψ"},
	{"rh", "ρ"},
	{"a", "α"},
	{"b", "β"},
	{"g", "γ"},
	{"d", "δ"},
	{"e", "ε"},
	{"z", "ζ"},
	{"ê", "η"},
	{"ē", "η"},
	{"i", "ι"},
	{"k", "κ"},
	{"c", "κ"},
	{"l", "λ"},
	{"m", "μ"},
	{"n", "ν"},
	{"x", "ξ"},
	{"o", "ο"},
	{"p", "π"},
	{"r", "ρ"},
	{"s", "σ"},
	{"t", "τ"},
	{"u", "υ"},
	{"y", "υ"},
	{"f", "φ"},
	{"ô", "ω"},
	{"ō", "ω"},
	{"w", "ϝ"},
}

// Macron vowels accepted in URIs, mapped to the stored circumflex form.
var macronToCircumflex = map[rune]rune{
	'ē': 'ê', 'ō': 'ô', 'Ē': 'Ê', 'Ō': 'Ô',
}
