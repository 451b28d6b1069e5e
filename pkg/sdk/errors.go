package lexidex

import "github.com/kailas-cloud/lexidex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrStoreUnavailable    = domain.ErrStoreUnavailable
	ErrInvalidParams       = domain.ErrInvalidParams
	ErrAnalyzerUnavailable = domain.ErrAnalyzerUnavailable
)
