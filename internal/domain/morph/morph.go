package morph

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Candidate is one analysis of the queried form, rendered in Greek.
type Candidate struct {
	Lemma    string `json:"lemma"`
	WordForm string `json:"wordForm"`
	Prefix   string `json:"prefix"`
	Augment  string `json:"augment"`
	Stem     string `json:"stem"`
	Suffix   string `json:"suffix"`
	Ending   string `json:"ending"`
}

// LemmaKey strips the trailing homograph digits the analyzer appends to a
// lemma.
func LemmaKey(lemma string) string {
	return strings.TrimRight(lemma, "0123456789")
}

// Result groups candidates by lemma key. Lemma order is first appearance and
// the order of candidates within a lemma is preserved. The zero value is an
// empty result.
type Result struct {
	lemmas  []string
	byLemma map[string][]Candidate
}

// FromCandidates groups a flat candidate list.
func FromCandidates(cs []Candidate) Result {
	var r Result
	for _, c := range cs {
		r.Add(c)
	}
	return r
}

// Add appends a candidate under its lemma key.
func (r *Result) Add(c Candidate) {
	key := LemmaKey(c.Lemma)
	if r.byLemma == nil {
		r.byLemma = make(map[string][]Candidate)
	}
	if _, ok := r.byLemma[key]; !ok {
		r.lemmas = append(r.lemmas, key)
	}
	r.byLemma[key] = append(r.byLemma[key], c)
}

// Lemmas returns the lemma keys in first-appearance order.
func (r Result) Lemmas() []string { return r.lemmas }

// Candidates returns the candidates of one lemma key.
func (r Result) Candidates(lemma string) []Candidate { return r.byLemma[lemma] }

// All flattens the result in order.
func (r Result) All() []Candidate {
	out := make([]Candidate, 0, len(r.lemmas))
	for _, l := range r.lemmas {
		out = append(out, r.byLemma[l]...)
	}
	return out
}

// IsEmpty reports whether the analyzer produced nothing.
func (r Result) IsEmpty() bool { return len(r.lemmas) == 0 }

// MarshalJSON encodes the result as an object keyed by lemma, in order.
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range r.lemmas {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(l)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.byLemma[l])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
