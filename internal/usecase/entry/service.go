package entry

import (
	"context"
	"fmt"
	"regexp"
	"slices"

	"github.com/kailas-cloud/lexidex/internal/domain/entry"
	"github.com/kailas-cloud/lexidex/internal/domain/field"
	"github.com/kailas-cloud/lexidex/internal/domain/response"
	"github.com/kailas-cloud/lexidex/internal/domain/script"
)

// uriSuffix is a trailing "#" with an optional homograph digit.
var uriSuffix = regexp.MustCompile(`#\d?$`)

// Service serves single entries, random entries and entry batches.
type Service struct {
	repo    Repository
	version string
}

// New creates an entry service. version is echoed in every response.
func New(repo Repository, version string) *Service {
	return &Service{repo: repo, version: version}
}

// Get returns the entry at uri, its homographs grouped as children, and,
// when withSiblings is set, the records just before and after it.
func (s *Service) Get(
	ctx context.Context, uri string, fields []field.Field, withSiblings bool,
) (response.Entry, error) {
	q := uriSuffix.ReplaceAllString(script.NormalizeURI(uri), "")
	resp := response.Entry{Version: s.version}

	rows, err := s.repo.ByURI(ctx, q, fields)
	if err != nil {
		return response.Entry{}, fmt.Errorf("get entry %q: %w", q, err)
	}
	if len(rows) == 0 {
		return resp, nil
	}

	resp.Entry = entry.Group(rows, fields)
	if !withSiblings {
		return resp, nil
	}

	siblings, err := s.siblings(ctx, resp.Entry, fields)
	if err != nil {
		return response.Entry{}, err
	}
	resp.Siblings = siblings
	return resp, nil
}

// siblings reads the records at orderedID-1 and orderedID+span. A missing
// neighbour is reported as an empty entry.
func (s *Service) siblings(ctx context.Context, e entry.Entry, fields []field.Field) (entry.Siblings, error) {
	prevID := e.OrderedID() - 1
	nextID := e.OrderedID() + int64(e.Span())

	rows, err := s.repo.ByIDs(ctx, fields, prevID, nextID)
	if err != nil {
		return entry.Siblings{}, fmt.Errorf("get siblings: %w", err)
	}

	prev, next := entry.Entry{}, entry.Entry{}
	for _, r := range rows {
		switch r.OrderedID {
		case prevID:
			prev = entry.FromRow(r, fields).AsSibling()
		case nextID:
			next = entry.FromRow(r, fields).AsSibling()
		}
	}
	return entry.Siblings{Previous: &prev, Next: &next}, nil
}

// Random returns one random entry. lengthRange holds zero, one (minimum) or
// two (minimum and maximum, in any order) bounds on the definition length.
func (s *Service) Random(ctx context.Context, fields []field.Field, lengthRange []int) (response.Random, error) {
	minLen, maxLen := 0, 0
	if len(lengthRange) > 0 {
		bounds := slices.Clone(lengthRange)
		slices.Sort(bounds)
		minLen = bounds[0]
		if len(bounds) > 1 {
			maxLen = bounds[1]
		}
	}

	row, length, ok, err := s.repo.Random(ctx, fields, minLen, maxLen)
	if err != nil {
		return response.Random{}, fmt.Errorf("random entry: %w", err)
	}
	resp := response.Random{Version: s.version}
	if ok {
		resp.Length = length
		resp.Entry = entry.FromRow(row, fields)
	}
	return resp, nil
}

// Batch walks the whole dictionary as grouped entries and returns the page
// [offset, offset+limit), each entry with its neighbours in that list.
// limit 0 returns everything from offset on.
func (s *Service) Batch(ctx context.Context, fields []field.Field, offset, limit int) (response.Batch, error) {
	rows, err := s.repo.All(ctx, fields)
	if err != nil {
		return response.Batch{}, fmt.Errorf("entry batch: %w", err)
	}

	all := entry.GroupRows(rows, fields)
	offset = max(offset, 0)
	end := len(all)
	if limit > 0 {
		end = min(offset+limit, len(all))
	}

	resp := response.Batch{Version: s.version, Entries: []response.WithSiblings{}}
	for i := offset; i < end; i++ {
		prev, next := entry.Entry{}, entry.Entry{}
		if i > 0 {
			prev = all[i-1].WithoutChildren()
		}
		if i+1 < len(all) {
			next = all[i+1].WithoutChildren()
		}
		resp.Entries = append(resp.Entries, response.WithSiblings{
			Entry:    all[i],
			Siblings: entry.Siblings{Previous: &prev, Next: &next},
		})
	}
	return resp, nil
}
