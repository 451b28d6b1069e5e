package morpheus

import (
	"regexp"
	"strings"

	"github.com/kailas-cloud/lexidex/internal/domain/script"
)

// roughPrefix matches what an explicit rough breathing attaches to: a
// leading rho or the leading vowel run, optionally after the capital marker.
var roughPrefix = regexp.MustCompile(`^(\*?)(rh?|[aehiouw]+)`)

// Candidates encodes canonical as the analyzer's stdin. The analyzer assumes
// a smooth breathing when none is written, so every form is followed by its
// rough-breathing variant. Case-insensitive lookups submit both the lower
// case and the capitalized form.
func Candidates(canonical string, caseSensitive bool) string {
	beta := strings.ToLower(script.ToBetaCode(strings.ToLower(canonical)))

	var forms []string
	switch {
	case !caseSensitive:
		forms = []string{beta, "*" + beta}
	case script.IsCapitalized(canonical):
		forms = []string{"*" + beta}
	default:
		forms = []string{beta}
	}

	lines := make([]string, 0, 2*len(forms))
	lines = append(lines, forms...)
	for _, f := range forms {
		if rough := withRoughBreathing(f); rough != f {
			lines = append(lines, rough)
		}
	}
	return strings.Join(lines, "\n")
}

func withRoughBreathing(form string) string {
	m := roughPrefix.FindStringSubmatchIndex(form)
	if m == nil {
		return form
	}
	star, head, rest := form[m[2]:m[3]], form[m[4]:m[5]], form[m[1]:]
	if star != "" {
		return star + "(" + head + rest
	}
	return head + "(" + rest
}
