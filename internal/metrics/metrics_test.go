package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func TestObserveAnalysis(t *testing.T) {
	segment := analysesTotal.WithLabelValues(ResultSegment)
	notSegment := analysesTotal.WithLabelValues(ResultNotSegment)
	beforeOK, beforeFail := counterValue(t, segment), counterValue(t, notSegment)

	ObserveAnalysis(true, 2, time.Millisecond)
	ObserveAnalysis(false, 1, time.Millisecond)
	ObserveAnalysis(true, 0, time.Millisecond)

	assert.Equal(t, beforeOK+2, counterValue(t, segment))
	assert.Equal(t, beforeFail+1, counterValue(t, notSegment))
}

func TestObserveCache(t *testing.T) {
	hits := formCacheTotal.WithLabelValues(ResultHit)
	misses := formCacheTotal.WithLabelValues(ResultMiss)
	beforeHits, beforeMisses := counterValue(t, hits), counterValue(t, misses)

	ObserveCache(false)
	ObserveCache(true)
	ObserveCache(true)

	assert.Equal(t, beforeHits+2, counterValue(t, hits))
	assert.Equal(t, beforeMisses+1, counterValue(t, misses))
}

func TestHandler(t *testing.T) {
	ObserveRequest(http.MethodGet, "/health", http.StatusOK, 3*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `calendrical_http_requests_total{method="GET",route="/health",status="200"}`), body)
	assert.True(t, strings.Contains(body, "calendrical_http_request_duration_seconds_bucket"))
}
