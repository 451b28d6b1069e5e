package response

import (
	"github.com/kailas-cloud/lexidex/internal/domain/entry"
	"github.com/kailas-cloud/lexidex/internal/domain/morph"
)

// Lookup is the lookup envelope.
type Lookup struct {
	Version    string        `json:"version"`
	Count      int           `json:"count"`
	CountAll   int           `json:"countAll"`
	Morphology *morph.Result `json:"morphology,omitempty"`
	Entries    []entry.Entry `json:"entries"`
}

// EmptyLookup is returned for rejected input and for queries without rows.
func EmptyLookup(version string) Lookup {
	return Lookup{Version: version, Entries: []entry.Entry{}}
}

// Entry is the single-entry envelope.
type Entry struct {
	Version  string         `json:"version"`
	Entry    entry.Entry    `json:"entry"`
	Siblings entry.Siblings `json:"siblings"`
}

// Random is the random-entry envelope.
type Random struct {
	Version string      `json:"version"`
	Length  int         `json:"length"`
	Entry   entry.Entry `json:"entry"`
}

// WithSiblings pairs an entry with its neighbours in a batch.
type WithSiblings struct {
	Entry    entry.Entry    `json:"entry"`
	Siblings entry.Siblings `json:"siblings"`
}

// Batch is the entry batch envelope.
type Batch struct {
	Version string         `json:"version"`
	Entries []WithSiblings `json:"entries"`
}
