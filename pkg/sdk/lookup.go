package lexidex

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/lexidex/internal/domain/script"
	"github.com/kailas-cloud/lexidex/internal/domain/search/query"
)

// Lookup resolves a headword query. Invalid queries yield an empty result,
// not an error; only dictionary failures are returned.
func (c *Client) Lookup(ctx context.Context, req LookupRequest) (res LookupResult, err error) {
	start := time.Now()
	defer func() {
		c.obs.observe("lookup", start, err, "query", req.Query, "count", res.Count)
	}()

	r, err := query.New(req.Query, query.Options{
		InputMode:         script.ParseMode(string(req.InputMode)),
		CaseSensitive:     req.CaseSensitive,
		Fields:            c.selectFields(req.Fields),
		Limit:             req.Limit,
		SkipMorpheus:      req.SkipMorpheus,
		IncludeMorphology: req.IncludeMorphology,
	})
	if err != nil {
		return LookupResult{}, fmt.Errorf("lookup: %w", err)
	}

	res, err = c.lookupSvc.Lookup(ctx, &r)
	if err != nil {
		return LookupResult{}, fmt.Errorf("lookup %q: %w", req.Query, err)
	}
	return res, nil
}
