package cms

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK        = "ok"
	outcomeStatus    = "status"
	outcomeTransport = "transport"
	outcomeMalformed = "malformed"
)

// Metrics collects per-request counters for the content API.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers collectors on reg. A nil registerer yields unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blog",
			Subsystem: "cms",
			Name:      "requests_total",
			Help:      "Content API requests by collection and outcome.",
		}, []string{"collection", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "blog",
			Subsystem: "cms",
			Name:      "request_duration_seconds",
			Help:      "Content API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collection"}),
	}

	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}

	return m
}

func (m *Metrics) observe(collection, outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(collection, outcome).Inc()
	m.duration.WithLabelValues(collection).Observe(time.Since(started).Seconds())
}
