package metrics

import (
	"database/sql"
	"fmt"
	"time"

	prometheusmetrics "github.com/deathowl/go-metrics-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	saramaMetrics "github.com/rcrowley/go-metrics"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type Metrics interface {
	RegisterDB(db *sql.DB, role string, dbName string) error
	RegisterRedis(client *redis.Client, serviceName, namespace string) error
	SaramaRegistry(name string, flushInterval time.Duration) saramaMetrics.Registry
	PrometheusRegisterer() prometheus.Registerer
	GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics
	GetReleasePrometheus() *ReleasePrometheusMetrics
	GetBankPrometheus() *BankPrometheusMetrics
	GetReconPrometheus() *ReconPrometheusMetrics
	GetDLQPrometheus() *DLQPrometheusMetrics
}

type metrics struct {
	reg               prometheus.Registerer
	httpClientMetrics *HTTPClientPrometheusMetrics
	releaseMetrics    *ReleasePrometheusMetrics
	bankMetrics       *BankPrometheusMetrics
	reconMetrics      *ReconPrometheusMetrics
	dlqMetrics        *DLQPrometheusMetrics
}

func New() Metrics {
	reg := prometheus.DefaultRegisterer
	return &metrics{
		reg:               reg,
		httpClientMetrics: newHTTPClientPrometheusMetrics(reg),
		releaseMetrics:    newReleasePrometheusMetrics(reg),
		bankMetrics:       newBankPrometheusMetrics(reg),
		reconMetrics:      newReconPrometheusMetrics(reg),
		dlqMetrics:        newDLQPrometheusMetrics(reg),
	}
}

func (m *metrics) RegisterDB(db *sql.DB, role string, dbName string) error {
	return m.reg.Register(collectors.NewDBStatsCollector(db, fmt.Sprintf("%s_%s", dbName, role)))
}

func (m *metrics) RegisterRedis(client *redis.Client, serviceName, namespace string) error {
	return m.reg.Register(redisprometheus.NewCollector(BuildFQName(serviceName, namespace), "redis", client))
}

func (m *metrics) SaramaRegistry(name string, flushInterval time.Duration) saramaMetrics.Registry {
	appMetrics := saramaMetrics.NewPrefixedRegistry(name + "_")
	prometheusClient := prometheusmetrics.NewPrometheusProvider(
		appMetrics, "", "", m.reg, flushInterval,
	)
	go prometheusClient.UpdatePrometheusMetrics()

	return appMetrics
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics {
	return m.httpClientMetrics
}

func (m *metrics) GetReleasePrometheus() *ReleasePrometheusMetrics {
	return m.releaseMetrics
}

func (m *metrics) GetBankPrometheus() *BankPrometheusMetrics {
	return m.bankMetrics
}

func (m *metrics) GetReconPrometheus() *ReconPrometheusMetrics {
	return m.reconMetrics
}

func (m *metrics) GetDLQPrometheus() *DLQPrometheusMetrics {
	return m.dlqMetrics
}
