package lexidex

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kailas-cloud/lexidex/internal/db/sqlite"
)

var fixtureRows = []sqlite.FixtureRow{
	{OrderedID: 1, Word: "ἀνηπύω", URI: "anêpuô", Definition: "dire à haute voix"},
	{OrderedID: 2, Word: "ἀνήρ", URI: "anêr", Definition: "homme"},
	{OrderedID: 3, Word: "ἀνήρεικτος", URI: "anêreiktos", Definition: "non brisé"},
	{OrderedID: 4, Word: "εἰμί", URI: "eimi#1", Definition: "être"},
	{OrderedID: 5, Word: "εἰμί", URI: "eimi#2", Definition: "aller"},
	{OrderedID: 6, Word: "λόγος", URI: "logos", Definition: "parole, discours"},
}

// cruncherScript answers every query with the analysis of ἄνδρα.
const cruncherScript = `#!/bin/sh
cat > /dev/null
cat <<'OUT'
:raw a)ndra

:workw a)/ndra
:lem a)nh/r
:prvb 			:aug1 			:stem a)ndr	 :suff 			:end a	 masc acc sg
OUT
`

func writeDictionary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bailly.db")
	if err := sqlite.WriteFixture(path, "bailly", fixtureRows); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// fakeMorpheus installs cruncherScript with an empty stem library.
func fakeMorpheus(t *testing.T) Option {
	t.Helper()
	dir := t.TempDir()
	bin := filepath.Join(dir, "cruncher")
	if err := os.WriteFile(bin, []byte(cruncherScript), 0o700); err != nil {
		t.Fatal(err)
	}
	lib := filepath.Join(dir, "stemlib")
	if err := os.Mkdir(lib, 0o755); err != nil {
		t.Fatal(err)
	}
	return WithMorpheus(bin, lib)
}

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithDictionary(writeDictionary(t), "test")}, opts...)
	c, err := New(context.Background(), opts...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}
