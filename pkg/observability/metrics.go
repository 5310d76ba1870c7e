package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Global collector instance for singleton pattern
	globalCollector *Collector
	collectorMutex  sync.Mutex
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Upstream content API metrics
	UpstreamRequests *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec

	// Paywall metrics
	PaymentChallenges  prometheus.Counter
	PaymentSettlements prometheus.Counter
	PaymentFailures    prometheus.Counter

	// Pipeline metrics
	GraphBuilds        prometheus.Counter
	GraphBuildFailures prometheus.Counter
	GraphBuildDuration prometheus.Histogram
	GraphNodes         prometheus.Histogram
}

// NewCollector creates a new metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	// Singleton avoids duplicate registration in tests
	collectorMutex.Lock()
	defer collectorMutex.Unlock()

	if globalCollector != nil {
		return globalCollector
	}

	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	upstreamRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of upstream content API requests",
		},
		[]string{"endpoint", "status"},
	)

	upstreamDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream content API request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	paymentChallenges := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_challenges_total",
			Help:      "Total number of payment challenges received",
		},
	)

	paymentSettlements := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_settlements_total",
			Help:      "Total number of payment challenges settled",
		},
	)

	paymentFailures := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_failures_total",
			Help:      "Total number of failed payment settlements",
		},
	)

	graphBuilds := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graph_builds_total",
			Help:      "Total number of graph pipeline runs",
		},
	)

	graphBuildFailures := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graph_build_failures_total",
			Help:      "Total number of graph pipeline runs degraded to an empty graph",
		},
	)

	graphBuildDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "graph_build_duration_seconds",
			Help:      "Graph pipeline run duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	graphNodes := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Number of nodes in finished graphs",
			Buckets:   []float64{0, 10, 50, 100, 250, 500, 1000, 2500},
		},
	)

	registry.MustRegister(
		httpRequests,
		httpDuration,
		upstreamRequests,
		upstreamDuration,
		paymentChallenges,
		paymentSettlements,
		paymentFailures,
		graphBuilds,
		graphBuildFailures,
		graphBuildDuration,
		graphNodes,
	)

	globalCollector = &Collector{
		registry:           registry,
		HTTPRequests:       httpRequests,
		HTTPDuration:       httpDuration,
		UpstreamRequests:   upstreamRequests,
		UpstreamDuration:   upstreamDuration,
		PaymentChallenges:  paymentChallenges,
		PaymentSettlements: paymentSettlements,
		PaymentFailures:    paymentFailures,
		GraphBuilds:        graphBuilds,
		GraphBuildFailures: graphBuildFailures,
		GraphBuildDuration: graphBuildDuration,
		GraphNodes:         graphNodes,
	}

	return globalCollector
}

// Registry returns the underlying Prometheus registry for the /metrics handler
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
