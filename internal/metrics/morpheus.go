package metrics

import "github.com/prometheus/client_golang/prometheus"

// Analyzer and lookup Prometheus metrics.
var (
	MorpheusCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lexidex",
			Name:      "morpheus_calls_total",
			Help:      "Total number of morphological analyzer calls",
		},
		[]string{"status"}, // "ok" / "timeout" / "error" / "skipped"
	)

	MorpheusCallDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lexidex",
			Name:      "morpheus_call_duration_seconds",
			Help:      "Morphological analyzer call duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.075, 0.1, 0.15, 0.25, 0.5, 1},
		},
	)

	MorphologyCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lexidex",
			Name:      "morphology_cache_total",
			Help:      "Morphology cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lexidex",
			Name:      "lookups_total",
			Help:      "Total number of dictionary lookups by outcome",
		},
		[]string{"outcome"}, // "rejected" / "empty" / "ok"
	)
)

var lookupMetricsRegistered bool

// RegisterLookupMetrics registers the analyzer, cache and lookup metrics.
// Must be called once from main.
func RegisterLookupMetrics() {
	if lookupMetricsRegistered {
		return
	}
	prometheus.MustRegister(MorpheusCallsTotal)
	prometheus.MustRegister(MorpheusCallDuration)
	prometheus.MustRegister(MorphologyCacheTotal)
	prometheus.MustRegister(LookupsTotal)
	lookupMetricsRegistered = true
}
