package lexidex

import (
	"github.com/kailas-cloud/lexidex/internal/domain/entry"
	"github.com/kailas-cloud/lexidex/internal/domain/morph"
	"github.com/kailas-cloud/lexidex/internal/domain/response"
	"github.com/kailas-cloud/lexidex/internal/domain/script"
)

// InputMode is the script a query is typed in.
type InputMode string

// Input modes.
const (
	Greek           InputMode = InputMode(script.Greek)
	BetaCode        InputMode = InputMode(script.BetaCode)
	Transliteration InputMode = InputMode(script.Transliteration)
)

// LookupRequest describes one dictionary lookup.
type LookupRequest struct {
	// Query may carry ^ $ " anchors and ? * wildcards.
	Query     string
	InputMode InputMode // default Greek
	// Fields selects the emitted columns. Empty, or any name outside the
	// allow-list, selects the defaults.
	Fields            []string
	CaseSensitive     bool
	Limit             int // 0 = no requested limit
	SkipMorpheus      bool
	IncludeMorphology bool
}

// Result envelopes. They marshal to the same JSON as the HTTP API.
type (
	LookupResult = response.Lookup
	EntryResult  = response.Entry
	RandomResult = response.Random
	BatchResult  = response.Batch
	BatchItem    = response.WithSiblings
)

// Entry is one dictionary entry; homographs carry their records as children.
type Entry = entry.Entry

// Siblings are the records adjacent to an entry.
type Siblings = entry.Siblings

// Morphology maps lemmas to analyzer candidates.
type Morphology = morph.Result
