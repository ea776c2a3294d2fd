package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type ReconPrometheusMetrics struct {
	statementLines *prometheus.CounterVec
	unmatchedAge   prometheus.Histogram
}

func newReconPrometheusMetrics(reg prometheus.Registerer) *ReconPrometheusMetrics {
	mtc := &ReconPrometheusMetrics{
		statementLines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remit_recon_statement_lines_total",
				Help: "Statement lines processed by match result",
			},
			[]string{"result"},
		),
		unmatchedAge: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "remit_recon_unmatched_age_seconds",
				Help:    "Age of an unmatched line when it finally links",
				Buckets: []float64{1, 60, 300, 3600, 21600, 86400, 259200, 604800},
			},
		),
	}

	reg.MustRegister(mtc.statementLines)
	reg.MustRegister(mtc.unmatchedAge)

	return mtc
}

func (m *ReconPrometheusMetrics) RecordLine(result string) {
	if m == nil {
		return
	}
	m.statementLines.WithLabelValues(result).Inc()
}

func (m *ReconPrometheusMetrics) RecordLinkAge(seconds float64) {
	if m == nil {
		return
	}
	m.unmatchedAge.Observe(seconds)
}
