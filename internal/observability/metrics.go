package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "disaster_dashboard"

// Metrics - счетчики Prometheus для приема постов, трендов и вебхуков
type Metrics struct {
	ReportsIngested   *prometheus.CounterVec // labels: category
	ReportsDuplicate  prometheus.Counter
	TrendComputations prometheus.Counter
	TrendSkipped      prometheus.Counter
	TrendCache        *prometheus.CounterVec // labels: result={hit,miss,error}
	WebhookDeliveries *prometheus.CounterVec // labels: outcome={success,failed,skipped}
	IngestMessages    *prometheus.CounterVec // labels: outcome={stored,duplicate,invalid,error,failed}
	RulesReloads      *prometheus.CounterVec // labels: outcome={success,error}
}

// NewMetrics создает метрики и регистрирует их в реестре по умолчанию
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsIngested,
		m.ReportsDuplicate,
		m.TrendComputations,
		m.TrendSkipped,
		m.TrendCache,
		m.WebhookDeliveries,
		m.IngestMessages,
		m.RulesReloads,
	)
	return m
}

// NewMetricsForTesting создает метрики без регистрации,
// чтобы избежать паники "already registered" в тестах
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_ingested_total",
			Help:      "Reports stored, by assigned category.",
		}, []string{"category"}),
		ReportsDuplicate: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_duplicate_total",
			Help:      "Reports ignored because their URL was already stored.",
		}),
		TrendComputations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trend_computations_total",
			Help:      "Trend series computed from the database.",
		}),
		TrendSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trend_skipped_events_total",
			Help:      "Events skipped during bucketing because of unparseable timestamps.",
		}),
		TrendCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trend_cache_total",
			Help:      "Trend cache lookups by result.",
		}, []string{"result"}),
		WebhookDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_deliveries_total",
			Help:      "Webhook delivery attempts by final outcome.",
		}, []string{"outcome"}),
		IngestMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_messages_total",
			Help:      "Kafka messages consumed by outcome.",
		}, []string{"outcome"}),
		RulesReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rules_reloads_total",
			Help:      "Classifier rule file reloads by outcome.",
		}, []string{"outcome"}),
	}
}
