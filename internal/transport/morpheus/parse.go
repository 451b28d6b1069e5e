package morpheus

import (
	"regexp"
	"strings"

	"github.com/kailas-cloud/lexidex/internal/domain/morph"
	"github.com/kailas-cloud/lexidex/internal/domain/script"
)

// rawMarker separates analyzer records.
var rawMarker = regexp.MustCompile(`:raw.*\s+`)

// Parse converts dictionary-format analyzer output into candidates grouped by
// lemma. Text before the first :raw marker is ignored, as are unknown keys.
func Parse(out string) morph.Result {
	var res morph.Result
	records := rawMarker.Split(out, -1)
	for _, rec := range records[1:] {
		res.Add(parseRecord(rec))
	}
	return res
}

// parseRecord reads a ":key value" sequence. The value is the text between
// the first and second space after the key; the analyzer appends
// grammatical tags after it.
func parseRecord(rec string) morph.Candidate {
	var c morph.Candidate
	parts := strings.Split(rec, ":")
	for _, part := range parts[1:] {
		key, rest, _ := strings.Cut(part, " ")
		raw, _, _ := strings.Cut(rest, " ")
		value := script.FromBetaCode(strings.TrimSpace(raw))
		switch strings.TrimSpace(key) {
		case "workw":
			c.WordForm = value
		case "lem":
			c.Lemma = value
		case "prvb":
			c.Prefix = value
		case "aug1":
			c.Augment = value
		case "stem":
			c.Stem = value
		case "suff":
			c.Suffix = value
		case "end":
			c.Ending = value
		}
	}
	return c
}
