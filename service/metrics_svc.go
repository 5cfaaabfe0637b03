package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vmsched/api/domain"
)

// MetricCollector exposes counters for scale outcomes and zone discovery
// failures on the default prometheus registry.
type MetricCollector struct {
	outcomes          *prometheus.CounterVec
	discoveryFailures *prometheus.CounterVec
}

func NewMetricCollector() *MetricCollector {
	return &MetricCollector{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vmsched",
			Name:      "scale_outcomes_total",
			Help:      "Per-instance scale outcomes by intent and status.",
		}, []string{"intent", "status"}),
		discoveryFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vmsched",
			Name:      "zone_discovery_failures_total",
			Help:      "Instance listing failures by zone.",
		}, []string{"zone"}),
	}
}

func (m *MetricCollector) Describe(ch chan<- *prometheus.Desc) {
	m.outcomes.Describe(ch)
	m.discoveryFailures.Describe(ch)
}

func (m *MetricCollector) Collect(ch chan<- prometheus.Metric) {
	m.outcomes.Collect(ch)
	m.discoveryFailures.Collect(ch)
}

func (m *MetricCollector) ObserveOutcome(intent domain.ScaleIntent, status domain.OutcomeStatus) {
	m.outcomes.WithLabelValues(string(intent), string(status)).Inc()
}

func (m *MetricCollector) ObserveDiscoveryFailure(zone string) {
	m.discoveryFailures.WithLabelValues(zone).Inc()
}
