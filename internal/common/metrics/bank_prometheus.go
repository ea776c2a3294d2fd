package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type BankPrometheusMetrics struct {
	payoutAttempts  *prometheus.CounterVec
	attemptDuration *prometheus.HistogramVec
}

func newBankPrometheusMetrics(reg prometheus.Registerer) *BankPrometheusMetrics {
	mtc := &BankPrometheusMetrics{
		payoutAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remit_bank_payout_attempts_total",
				Help: "Provider submissions by provider, rail and transient flag",
			},
			[]string{"provider", "rail", "transient"},
		),
		attemptDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "remit_bank_attempt_duration_seconds",
				Help:    "Duration of a single provider submission",
				Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"provider", "rail"},
		),
	}

	reg.MustRegister(mtc.payoutAttempts)
	reg.MustRegister(mtc.attemptDuration)

	return mtc
}

func (m *BankPrometheusMetrics) Record(provider, rail string, transient bool, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.payoutAttempts.WithLabelValues(provider, rail, strconv.FormatBool(transient)).Inc()
	m.attemptDuration.WithLabelValues(provider, rail).Observe(elapsed.Seconds())
}
