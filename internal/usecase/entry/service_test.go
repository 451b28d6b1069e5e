package entry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/kailas-cloud/lexidex/internal/domain"
)

func TestGet_WithSiblings(t *testing.T) {
	svc := New(fixture(), "v1")

	resp, err := svc.Get(context.Background(), "anêr", defaultFields, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Entry.URI() != "anêr" || len(resp.Entry.Children()) != 0 {
		t.Errorf("entry = %s children=%d", resp.Entry.URI(), len(resp.Entry.Children()))
	}
	if resp.Siblings.Previous.URI() != "anêpuô" || resp.Siblings.Next.URI() != "anêreiktos" {
		t.Errorf("siblings = %s / %s", resp.Siblings.Previous.URI(), resp.Siblings.Next.URI())
	}
}

func TestGet_GreekURIIsTransliterated(t *testing.T) {
	repo := fixture()
	svc := New(repo, "v1")

	resp, err := svc.Get(context.Background(), "ἀνήρ", defaultFields, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastURI != "anêr" {
		t.Errorf("queried uri = %q, want anêr", repo.lastURI)
	}
	if resp.Entry.IsZero() {
		t.Error("expected an entry")
	}
}

func TestGet_HomographsAndSuffix(t *testing.T) {
	for _, uri := range []string{"eimi", "eimi#", "eimi#2"} {
		t.Run(uri, func(t *testing.T) {
			svc := New(fixture(), "v1")
			resp, err := svc.Get(context.Background(), uri, defaultFields, true)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Entry.URI() != "eimi" || len(resp.Entry.Children()) != 2 {
				t.Fatalf("entry = %s children=%d", resp.Entry.URI(), len(resp.Entry.Children()))
			}
			// The group spans ids 4 and 5.
			if resp.Siblings.Previous.URI() != "anêreiktos" || resp.Siblings.Next.URI() != "logos" {
				t.Errorf("siblings = %s / %s", resp.Siblings.Previous.URI(), resp.Siblings.Next.URI())
			}
		})
	}
}

func TestGet_SiblingDropsHomographSuffix(t *testing.T) {
	svc := New(fixture(), "v1")
	resp, err := svc.Get(context.Background(), "anêreiktos", defaultFields, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resp.Siblings.Next.URI(); got != "eimi" {
		t.Errorf("next sibling uri = %q, want eimi", got)
	}
	if len(resp.Siblings.Next.Children()) != 0 {
		t.Error("siblings never carry children")
	}
}

func TestGet_FirstEntryHasEmptyPrevious(t *testing.T) {
	svc := New(fixture(), "v1")
	resp, err := svc.Get(context.Background(), "anêpuô", defaultFields, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := json.Marshal(resp.Siblings)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"previous":{},"next":{"uri":"anêr","definition":"homme"}}`
	if string(data) != want {
		t.Errorf("siblings = %s, want %s", data, want)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := New(fixture(), "v1")
	resp, err := svc.Get(context.Background(), "nope", defaultFields, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"version":"v1","entry":{},"siblings":{}}`; string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestGet_StoreError(t *testing.T) {
	repo := fixture()
	repo.err = fmt.Errorf("select: %w", domain.ErrStoreUnavailable)
	_, err := New(repo, "v1").Get(context.Background(), "anêr", defaultFields, false)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("err = %v, want ErrStoreUnavailable", err)
	}
}

func TestRandom_SortsLengthRange(t *testing.T) {
	repo := fixture()
	svc := New(repo, "v1")

	resp, err := svc.Random(context.Background(), defaultFields, []int{6, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastMin != 5 || repo.lastMax != 6 {
		t.Errorf("range = [%d, %d], want [5, 6]", repo.lastMin, repo.lastMax)
	}
	if resp.Length != 5 || resp.Entry.URI() != "anêpuô" {
		t.Errorf("resp = length %d, uri %s", resp.Length, resp.Entry.URI())
	}
}

func TestRandom_NoMatch(t *testing.T) {
	svc := New(fixture(), "v1")
	resp, err := svc.Random(context.Background(), defaultFields, []int{1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"version":"v1","length":0,"entry":{}}`; string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestBatch_Pagination(t *testing.T) {
	svc := New(fixture(), "v1")

	resp, err := svc.Batch(context.Background(), defaultFields, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Grouped list: anêpuô, anêr, anêreiktos, eimi, logos.
	if len(resp.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(resp.Entries))
	}
	first, second := resp.Entries[0], resp.Entries[1]
	if first.Entry.URI() != "anêreiktos" || second.Entry.URI() != "eimi" {
		t.Errorf("page = %s, %s", first.Entry.URI(), second.Entry.URI())
	}
	if first.Siblings.Next.URI() != "eimi" || len(first.Siblings.Next.Children()) != 0 {
		t.Error("next sibling must be the grouped entry without children")
	}
	if len(second.Entry.Children()) != 2 {
		t.Error("page entries keep their children")
	}
}

func TestBatch_Bounds(t *testing.T) {
	svc := New(fixture(), "v1")

	resp, err := svc.Batch(context.Background(), defaultFields, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Entries) != 5 {
		t.Errorf("entries = %d, want 5", len(resp.Entries))
	}
	if !resp.Entries[0].Siblings.Previous.IsZero() || !resp.Entries[4].Siblings.Next.IsZero() {
		t.Error("list ends must have empty siblings")
	}

	resp, err = svc.Batch(context.Background(), defaultFields, 10, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Entries == nil || len(resp.Entries) != 0 {
		t.Errorf("entries past the end = %v, want empty list", resp.Entries)
	}
}
