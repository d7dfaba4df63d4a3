// Package metrics exposes Prometheus collectors for HTTP traffic and business
// events.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"bidright/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bidright"

// Metrics owns a private registry so tests can build independent instances.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	estimates     *prometheus.CounterVec
	savedTotal    prometheus.Counter
	deniedTotal   *prometheus.CounterVec
	subscriptions *prometheus.CounterVec
}

var _ interfaces.IEventRecorder = (*Metrics)(nil)

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		estimates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimates_calculated_total",
			Help:      "Estimates calculated by industry and complexity.",
		}, []string{"industry", "complexity"}),
		savedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimates_saved_total",
			Help:      "Estimates saved by users.",
		}),
		deniedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entitlement_denied_total",
			Help:      "Requests refused because the plan lacks a feature.",
		}, []string{"feature"}),
		subscriptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subscription_changes_total",
			Help:      "Subscription activations and cancellations.",
		}, []string{"plan", "action"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.estimates,
		m.savedTotal,
		m.deniedTotal,
		m.subscriptions,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) EstimateCalculated(industryID, complexity string) {
	m.estimates.WithLabelValues(industryID, complexity).Inc()
}

func (m *Metrics) EstimateSaved() { m.savedTotal.Inc() }

func (m *Metrics) FeatureDenied(feature string) {
	m.deniedTotal.WithLabelValues(feature).Inc()
}

func (m *Metrics) SubscriptionChanged(plan, action string) {
	m.subscriptions.WithLabelValues(plan, action).Inc()
}
