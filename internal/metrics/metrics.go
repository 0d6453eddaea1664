// Package metrics exposes Prometheus metrics for analyses, the conversion
// cache and the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ==============================================================================
// Prometheus Metrics
// ==============================================================================

var (
	// analysesTotal counts analyses by outcome
	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calendrical_analyses_total",
		Help: "Total code sequence analyses by result",
	}, []string{"result"})

	// analysisSteps tracks the length of the reduction chain
	analysisSteps = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "calendrical_analysis_steps",
		Help:    "Number of reduction steps per analysis",
		Buckets: []float64{0, 1, 2, 3, 4, 6, 8, 12, 16},
	})

	// analysisDuration tracks analysis latency
	analysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "calendrical_analysis_duration_seconds",
		Help:    "Analysis duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us to ~2.6s
	})

	// formCacheTotal counts conversion cache lookups
	formCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calendrical_form_cache_total",
		Help: "Code-to-form conversion cache lookups by result",
	}, []string{"result"})

	// httpRequestsTotal counts API requests
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calendrical_http_requests_total",
		Help: "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	// httpRequestDuration tracks API latency
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "calendrical_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Result labels.
const (
	ResultSegment    = "segment"
	ResultNotSegment = "not_segment"
	ResultHit        = "hit"
	ResultMiss       = "miss"
)

// ObserveAnalysis records one completed analysis.
func ObserveAnalysis(successful bool, steps int, d time.Duration) {
	result := ResultNotSegment
	if successful {
		result = ResultSegment
	}
	analysesTotal.WithLabelValues(result).Inc()
	analysisSteps.Observe(float64(steps))
	analysisDuration.Observe(d.Seconds())
}

// ObserveCache records a conversion cache lookup.
func ObserveCache(hit bool) {
	if hit {
		formCacheTotal.WithLabelValues(ResultHit).Inc()
		return
	}
	formCacheTotal.WithLabelValues(ResultMiss).Inc()
}

// ObserveRequest records one served HTTP request. route is the route
// pattern, not the raw path, to keep label cardinality bounded.
func ObserveRequest(method, route string, status int, d time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
