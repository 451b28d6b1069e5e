package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates an optional component failed; lookups still work
	// without morphology or caching.
	Degraded Status = "degraded"
	// Unhealthy indicates the dictionary store is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
	// CheckDisabled indicates a component that is not installed.
	CheckDisabled CheckResult = "disabled"
)

// Component names used in Report.Checks.
const (
	Database = "database"
	Morpheus = "morpheus"
	Cache    = "cache"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db       DBPinger
	analyzer AnalyzerChecker
	cache    DBPinger
}

// New creates a Service. analyzer and cache can be nil.
func New(db DBPinger, analyzer AnalyzerChecker, cache DBPinger) *Service {
	return &Service{db: db, analyzer: analyzer, cache: cache}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, 3)
	status := Healthy

	if err := s.db.Ping(ctx); err != nil {
		checks[Database] = CheckError
		status = Unhealthy
	} else {
		checks[Database] = CheckOK
	}

	switch {
	case s.analyzer == nil:
		checks[Morpheus] = CheckDisabled
	case s.analyzer.Check(ctx) != nil:
		// A missing analyzer is a deployment choice; lookups run without it.
		checks[Morpheus] = CheckDisabled
	default:
		checks[Morpheus] = CheckOK
	}

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			checks[Cache] = CheckError
			if status == Healthy {
				status = Degraded
			}
		} else {
			checks[Cache] = CheckOK
		}
	}

	return Report{Status: status, Checks: checks}
}
