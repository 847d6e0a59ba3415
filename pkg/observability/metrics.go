// Package observability provides Prometheus metrics for the weiche router.
// The router records one observation per provider call; callers embedding
// weiche expose the default registry however they serve metrics.
package observability

import "github.com/prometheus/client_golang/prometheus"

// LLMBuckets defines histogram buckets suited for LLM inference latencies,
// ranging from 100ms to 120s.
var LLMBuckets = []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120}

var (
	// ProviderRequestsTotal counts calls dispatched to vendor backends by
	// provider, operation (chat, embedding, models), and outcome.
	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weiche_provider_requests_total",
			Help: "Provider requests",
		},
		[]string{"provider", "operation", "status"},
	)

	// ProviderLatency records backend provider latency in seconds.
	ProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weiche_provider_latency_seconds",
			Help:    "Provider latency",
			Buckets: LLMBuckets,
		},
		[]string{"provider", "operation"},
	)

	// ProviderTokensTotal counts tokens processed by direction (input/output).
	ProviderTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weiche_provider_tokens_total",
			Help: "Token count",
		},
		[]string{"provider", "model", "direction"},
	)

	// ProviderErrorsTotal counts failed calls by provider and canonical
	// error kind (authentication_error, timeout_error, ...).
	ProviderErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weiche_provider_errors_total",
			Help: "Provider errors by kind",
		},
		[]string{"provider", "kind"},
	)
)

func init() {
	prometheus.MustRegister(
		ProviderRequestsTotal,
		ProviderLatency,
		ProviderTokensTotal,
		ProviderErrorsTotal,
	)
}
