package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/lexidex/internal/domain"
	"github.com/kailas-cloud/lexidex/internal/domain/field"
	"github.com/kailas-cloud/lexidex/internal/domain/script"
	"github.com/kailas-cloud/lexidex/internal/domain/search/query"
	entryuc "github.com/kailas-cloud/lexidex/internal/usecase/entry"
	healthuc "github.com/kailas-cloud/lexidex/internal/usecase/health"
	lookupuc "github.com/kailas-cloud/lexidex/internal/usecase/lookup"
)

// Server serves the dictionary HTTP API.
type Server struct {
	lookup        *lookupuc.Service
	entries       *entryuc.Service
	health        *healthuc.Service
	fields        field.Selector
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	lookup *lookupuc.Service,
	entries *entryuc.Service,
	health *healthuc.Service,
	fields field.Selector,
	logger *zap.Logger,
) *Server {
	s := &Server{
		lookup:  lookup,
		entries: entries,
		health:  health,
		fields:  fields,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidParams, http.StatusBadRequest, codeBadRequest),
		sentinelHandler(domain.ErrStoreUnavailable, http.StatusServiceUnavailable, codeStoreUnavailable),
	}
	return s
}

// Root handles GET /.
func (s *Server) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, "OK")
}

// Lookup handles GET /lookup/{q}.
func (s *Server) Lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := query.New(pathParam(chi.URLParam(r, "q")), query.Options{
		InputMode:         script.ParseMode(q.Get("inputMode")),
		CaseSensitive:     boolParam(q, "caseSensitive"),
		Fields:            s.fields.Select(q.Get("fields")),
		Limit:             positiveParam(q, "limit"),
		SkipMorpheus:      boolParam(q, "skipMorpheus"),
		IncludeMorphology: boolParam(q, "morphology"),
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp, err := s.lookup.Lookup(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Entry handles GET /entry/{uri}.
func (s *Server) Entry(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp, err := s.entries.Get(r.Context(),
		pathParam(chi.URLParam(r, "uri")),
		s.fields.Select(q.Get("fields")),
		boolParam(q, "siblings"),
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// RandomEntry handles GET /entry/random.
func (s *Server) RandomEntry(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp, err := s.entries.Random(r.Context(),
		s.fields.Select(q.Get("fields")),
		rangeParam(q, "lengthRange"),
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type healthResponse struct {
	Status healthuc.Status                 `json:"status"`
	Checks map[string]healthuc.CheckResult `json:"checks"`
}

// HealthCheck handles GET /health. Only an unreachable dictionary fails it;
// a degraded service still answers lookups.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: report.Status,
		Checks: report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
}
