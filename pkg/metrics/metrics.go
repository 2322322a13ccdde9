package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// UpstreamRequestsTotal counts calls to third-party providers by outcome.
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "montoks_upstream_requests_total",
			Help: "Number of upstream API requests by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)

	// TokenAnalysisDuration observes end-to-end token analysis latency.
	TokenAnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "montoks_token_analysis_duration_seconds",
			Help:    "Duration of full token analysis requests.",
			Buckets: prometheus.DefBuckets,
		},
	)

	// CacheHitsTotal counts token record cache hits.
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "montoks_cache_hits_total",
		Help: "Number of token record cache hits.",
	})

	// CacheMissesTotal counts token record cache misses.
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "montoks_cache_misses_total",
		Help: "Number of token record cache misses.",
	})

	// HolderPagesFetched counts holder listing pages fetched during pagination.
	HolderPagesFetched = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "montoks_holder_pages_fetched_total",
		Help: "Number of holder pages fetched from the chain indexer.",
	})
)

// MustRegisterMetrics registers all application metrics with the default
// Prometheus registry. Call once at startup.
func MustRegisterMetrics() {
	prometheus.MustRegister(
		UpstreamRequestsTotal,
		TokenAnalysisDuration,
		CacheHitsTotal,
		CacheMissesTotal,
		HolderPagesFetched,
	)
}
