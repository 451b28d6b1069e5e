package lexidex

import (
	"context"
	"fmt"
	"time"
)

// Entry returns the entry at uri with its homographs as children and, when
// withSiblings is set, the records just before and after it. A missing
// entry is returned as an empty Entry.
func (c *Client) Entry(ctx context.Context, uri string, fields []string, withSiblings bool) (res EntryResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("entry", start, err, "uri", uri) }()

	res, err = c.entrySvc.Get(ctx, uri, c.selectFields(fields), withSiblings)
	if err != nil {
		return EntryResult{}, fmt.Errorf("entry: %w", err)
	}
	return res, nil
}

// RandomEntry returns one random entry. lengthRange optionally bounds the
// definition length: one value is a minimum, two values a closed range in
// either order.
func (c *Client) RandomEntry(ctx context.Context, fields []string, lengthRange ...int) (res RandomResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("random_entry", start, err) }()

	res, err = c.entrySvc.Random(ctx, c.selectFields(fields), lengthRange)
	if err != nil {
		return RandomResult{}, fmt.Errorf("random entry: %w", err)
	}
	return res, nil
}

// EntryBatch walks the whole dictionary and returns grouped entries
// [offset, offset+limit), each with its neighbours in that walk. Siblings
// carry no children. limit 0 returns everything from offset on.
func (c *Client) EntryBatch(ctx context.Context, fields []string, offset, limit int) (res BatchResult, err error) {
	start := time.Now()
	defer func() {
		c.obs.observe("entry_batch", start, err, "offset", offset, "limit", limit)
	}()

	res, err = c.entrySvc.Batch(ctx, c.selectFields(fields), offset, limit)
	if err != nil {
		return BatchResult{}, fmt.Errorf("entry batch: %w", err)
	}
	return res, nil
}
