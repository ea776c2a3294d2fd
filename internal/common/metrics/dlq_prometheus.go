package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type DLQPrometheusMetrics struct {
	pushes *prometheus.CounterVec
	depth  prometheus.Gauge
}

func newDLQPrometheusMetrics(reg prometheus.Registerer) *DLQPrometheusMetrics {
	mtc := &DLQPrometheusMetrics{
		pushes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remit_dlq_pushes_total",
				Help: "Exhausted payouts parked in the dead letter store",
			},
			[]string{"provider"},
		),
		depth: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "remit_dlq_depth",
				Help: "Entries currently parked in the dead letter store",
			},
		),
	}

	reg.MustRegister(mtc.pushes)
	reg.MustRegister(mtc.depth)

	return mtc
}

func (m *DLQPrometheusMetrics) RecordPush(provider string) {
	if m == nil {
		return
	}
	m.pushes.WithLabelValues(provider).Inc()
}

func (m *DLQPrometheusMetrics) SetDepth(n int) {
	if m == nil {
		return
	}
	m.depth.Set(float64(n))
}
