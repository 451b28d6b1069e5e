package lookup

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/lexidex/internal/domain"
	"github.com/kailas-cloud/lexidex/internal/domain/morph"
	"github.com/kailas-cloud/lexidex/internal/domain/response"
	"github.com/kailas-cloud/lexidex/internal/domain/search/predicate"
	"github.com/kailas-cloud/lexidex/internal/domain/search/query"
	"github.com/kailas-cloud/lexidex/internal/logger"
	"github.com/kailas-cloud/lexidex/internal/metrics"
)

// Unbounded disables the configured row cap.
const Unbounded = -1

// Config holds the lookup settings.
type Config struct {
	// Version is the dataset tag echoed in every response.
	Version string
	// MaxRows caps the page size; Unbounded leaves only the requested limit.
	MaxRows int
}

// Service resolves lookup queries against the dictionary.
type Service struct {
	repo     Repository
	analyzer Analyzer
	cfg      Config
}

// New creates a lookup service. analyzer can be nil.
func New(repo Repository, analyzer Analyzer, cfg Config) *Service {
	return &Service{repo: repo, analyzer: analyzer, cfg: cfg}
}

// Lookup runs the resolution pipeline. Rejected input yields an empty
// envelope; only store failures are returned as errors.
func (s *Service) Lookup(ctx context.Context, req *query.Request) (response.Lookup, error) {
	n, err := query.Prepare(req.Raw(), req.InputMode(), req.CaseSensitive())
	if err != nil {
		if errors.Is(err, domain.ErrInputRejected) {
			metrics.LookupsTotal.WithLabelValues("rejected").Inc()
			logger.FromContext(ctx).Debug("Lookup input rejected",
				zap.String("query", req.Raw()), zap.Error(err))
			return response.EmptyLookup(s.cfg.Version), nil
		}
		return response.Lookup{}, fmt.Errorf("prepare query: %w", err)
	}

	morphology := s.morphology(ctx, req, n)
	p := predicate.Build(n.Canonical(), n.IsExactMatch(), n.IsCaseSensitive(), morphology)

	rows, countAll, err := s.repo.Lookup(ctx, p, req.Fields(), s.limit(req.Limit()))
	if err != nil {
		return response.Lookup{}, fmt.Errorf("lookup rows: %w", err)
	}

	resp := response.EmptyLookup(s.cfg.Version)
	if req.IncludeMorphology() {
		resp.Morphology = &morphology
	}
	if len(rows) == 0 {
		metrics.LookupsTotal.WithLabelValues("empty").Inc()
		return resp, nil
	}

	resp.Count = len(rows)
	resp.CountAll = countAll
	resp.Entries = Aggregate(rows, n, !morphology.IsEmpty(), req.Fields())
	metrics.LookupsTotal.WithLabelValues("ok").Inc()
	return resp, nil
}

func (s *Service) morphology(ctx context.Context, req *query.Request, n query.Normalized) morph.Result {
	if req.SkipMorpheus() || s.analyzer == nil || !s.analyzer.IsNeeded(n.Canonical()) {
		return morph.Result{}
	}
	return s.analyzer.Lookup(ctx, n.Canonical(), n.IsCaseSensitive())
}

// limit is the smaller of the requested limit and MaxRows; 0 means no limit.
func (s *Service) limit(requested int) int {
	switch {
	case s.cfg.MaxRows == Unbounded || s.cfg.MaxRows <= 0:
		return requested
	case requested <= 0 || requested > s.cfg.MaxRows:
		return s.cfg.MaxRows
	default:
		return requested
	}
}
