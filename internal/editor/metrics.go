package editor

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts the edits and export requests applied this session.
type Metrics struct {
	editsTotal   *prometheus.CounterVec
	exportsTotal prometheus.Counter
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		editsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "invoicedesk_edits_total",
			Help: "Edits applied to the document, by operation.",
		}, []string{"op"}),
		exportsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "invoicedesk_exports_total",
			Help: "Export requests passed to the render collaborator.",
		}),
	}
	registry.MustRegister(m.editsTotal, m.exportsTotal)
	return m
}

func (m *Metrics) EditApplied(op string) {
	m.editsTotal.WithLabelValues(op).Inc()
}

func (m *Metrics) ExportRequested() {
	m.exportsTotal.Inc()
}
