package script

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		mode          Mode
		caseSensitive bool
		want          string
	}{
		{"greek accents", "ἀνήρ", Greek, false, "ανηρ"},
		{"greek case sensitive", "Ἀθῆναι", Greek, true, "Αθηναι"},
		{"greek case folded", "Ἀθῆναι", Greek, false, "αθηναι"},
		{"final sigma", "λόγος", Greek, true, "λογοσ"},
		{"lunate sigma", "λόγοϲ", Greek, true, "λογοσ"},
		{"script theta", "ϑεός", Greek, true, "θεοσ"},
		{"metacharacters kept", "^ἀνήρ$", Greek, false, "^ανηρ$"},
		{"wildcards kept", "ἀν?ρ*", Greek, false, "αν?ρ*"},
		{"quotes kept", "\"ἀνήρ\"", Greek, false, "\"ανηρ\""},
		{"betacode", "a)nh/r", BetaCode, false, "ανηρ"},
		{"betacode capital", "*)aqh=nai", BetaCode, true, "Αθηναι"},
		{"transliteration", "anêr", Transliteration, false, "ανηρ"},
		{"transliteration capital", "Hêrodotos", Transliteration, true, "Ηροδοτοσ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input, tt.mode, tt.caseSensitive); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"ἀνήρ", "Ἀθῆναι", "λόγοϲ", "^ἀνήρ$", "\"ᾠδή\"", "ϝάναξ", "a)nh/r", "*)aqh=nai",
		"lo/g*", "**a", "anêr", "Hêrodotos", "angelos", "ἀν ήρ", "", "*",
	}
	modes := []Mode{Greek, BetaCode, Transliteration}

	for _, in := range inputs {
		for _, m := range modes {
			for _, cs := range []bool{true, false} {
				once := Normalize(in, m, cs)
				twice := Normalize(once, m, cs)
				if once != twice {
					t.Errorf("Normalize(%q, %s, %v): %q then %q", in, m, cs, once, twice)
				}
			}
		}
	}
}

func TestToBetaCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ἀνήρ", "a)nh/r"},
		{"Ἀθῆναι", "*)aqh=nai"},
		{"λόγος", "lo/gos"},
		{"ᾠδή", "w)|dh/"},
		{"ϊ", "i+"},
		{"ἀν*", "a)n*"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToBetaCode(tt.input); got != tt.want {
				t.Errorf("ToBetaCode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromBetaCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a)nh/r", "ἀνήρ"},
		{"*)aqh=nai", "Ἀθῆναι"},
		{"lo/gos", "λόγος"},
		{"LO/GOS", "λόγος"},
		{"*swkra/ths", "Σωκράτης"},
		{"a)nh/r1", "ἀνήρ1"},
		{"*", "*"},
		{"a*", "α*"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			want := norm.NFC.String(tt.want)
			if got := FromBetaCode(tt.input); got != want {
				t.Errorf("FromBetaCode(%q) = %q, want %q", tt.input, got, want)
			}
		})
	}
}

func TestBetaCode_RoundTrip(t *testing.T) {
	for _, in := range []string{"ἀνήρ", "Ἀθῆναι", "λόγος", "ᾠδή", "ἡμέρα"} {
		want := norm.NFC.String(in)
		if got := FromBetaCode(ToBetaCode(in)); got != want {
			t.Errorf("round trip %q = %q", in, got)
		}
	}
}

func TestToTransliteration(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ἀνήρ", "anêr"},
		{"ἄγγελος", "angelos"},
		{"ἄγκυρα", "ankura"},
		{"ὁδός", "hodos"},
		{"οἱ", "hoi"},
		{"Ἡρόδοτος", "Hêrodotos"},
		{"ῥήτωρ", "rhêtôr"},
		{"ψυχή", "psuchê"},
		{"ϝάναξ", "wanax"},
		{"anêr", "anêr"},
		{"ἀνήρ ἀγαθός", "anêr agathos"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToTransliteration(tt.input); got != tt.want {
				t.Errorf("ToTransliteration(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromTransliteration(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"anêr", "ανηρ"},
		{"logos", "λογος"},
		{"Logos", "Λογος"},
		{"angelos", "αγγελος"},
		{"Hêrodotos", "Ηροδοτος"},
		{"psuchê", "ψυχη"},
		{"rhêtôr", "ρητωρ"},
		{"anēr", "ανηρ"},
		{"^anêr$", "^ανηρ$"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := FromTransliteration(tt.input); got != tt.want {
				t.Errorf("FromTransliteration(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeURI(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"anêr", "anêr"},
		{"anēr", "anêr"},
		{"ἀνήρ", "anêr"},
		{"anêr#2", "anêr#2"},
		{"Ōkeanos", "Ôkeanos"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeURI(tt.input); got != tt.want {
				t.Errorf("NormalizeURI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsGreekLetter(t *testing.T) {
	for _, r := range []rune{'α', 'ω', 'Α', 'Ω', 'ϝ', 'Ϝ', 'ς'} {
		if !IsGreekLetter(r) {
			t.Errorf("IsGreekLetter(%q) = false", r)
		}
	}
	for _, r := range []rune{'a', '*', ' ', 'ά', '΢', '1'} {
		if IsGreekLetter(r) {
			t.Errorf("IsGreekLetter(%q) = true", r)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"":                Greek,
		"greek":           Greek,
		"BetaCode":        BetaCode,
		"transliteration": Transliteration,
		"latin":           Greek,
	}
	for in, want := range tests {
		if got := ParseMode(in); got != want {
			t.Errorf("ParseMode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStripDiacritics(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ἄνθρωπος", "ανθρωπος"},
		{"Ἀθῆναι", "Αθηναι"},
		{"ᾠδή", "ωδη"},
		{"ἀΐδιος", "αιδιος"},
		{"ᾱ̓νήρ", "ανηρ"},
		{"λόγοϲ", "λογοϲ"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripDiacritics(tt.input); got != tt.want {
			t.Errorf("StripDiacritics(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	// Decomposed input strips the same way as precomposed.
	if got := StripDiacritics(norm.NFD.String("ἄνθρωπος")); got != "ανθρωπος" {
		t.Errorf("decomposed input = %q", got)
	}
}
