package health

import "context"

// DBPinger checks dictionary store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// AnalyzerChecker reports whether the morphological analyzer is installed.
type AnalyzerChecker interface {
	Check(ctx context.Context) error
}
