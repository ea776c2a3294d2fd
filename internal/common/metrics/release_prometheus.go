package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type ReleasePrometheusMetrics struct {
	releaseOutcomes *prometheus.CounterVec
	releaseAmounts  *prometheus.CounterVec
	releaseDuration *prometheus.HistogramVec
}

func newReleasePrometheusMetrics(reg prometheus.Registerer) *ReleasePrometheusMetrics {
	mtc := &ReleasePrometheusMetrics{
		releaseOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remit_release_outcomes_total",
				Help: "Number of release attempts by rail and outcome",
			},
			[]string{"rail", "outcome"},
		),
		releaseAmounts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remit_release_cents_total",
				Help: "Absolute cents released by rail and tax type",
			},
			[]string{"rail", "tax_type"},
		),
		releaseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "remit_release_duration_seconds",
				Help:    "End to end duration of a release, gates through receipt",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"rail"},
		),
	}

	reg.MustRegister(mtc.releaseOutcomes)
	reg.MustRegister(mtc.releaseAmounts)
	reg.MustRegister(mtc.releaseDuration)

	return mtc
}

func (m *ReleasePrometheusMetrics) Record(rail, outcome string, amountCents int64, taxType string, elapsed time.Duration) {
	if m == nil {
		return
	}

	if amountCents < 0 {
		amountCents = -amountCents
	}

	m.releaseOutcomes.WithLabelValues(rail, outcome).Inc()
	m.releaseAmounts.WithLabelValues(rail, taxType).Add(float64(amountCents))
	m.releaseDuration.WithLabelValues(rail).Observe(elapsed.Seconds())
}
