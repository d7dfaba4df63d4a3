package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Events(t *testing.T) {
	m := New()

	m.EstimateCalculated("webdev", "high")
	m.EstimateCalculated("webdev", "high")
	m.EstimateSaved()
	m.FeatureDenied("export_pdf")
	m.SubscriptionChanged("pro", "activated")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.estimates.WithLabelValues("webdev", "high")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.savedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.deniedTotal.WithLabelValues("export_pdf")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.subscriptions.WithLabelValues("pro", "activated")))
}

func TestMetrics_ObserveHTTP(t *testing.T) {
	m := New()
	m.ObserveHTTP(http.MethodPost, "/v1/estimates", 200, 20*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "", 404, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/v1/estimates", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.EstimateSaved()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "bidright_estimates_saved_total 1"))
}
