package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// OutboxMetrics instruments the outbox relay.
type OutboxMetrics struct {
	relayed   *prometheus.CounterVec
	batchSize prometheus.Histogram
}

var (
	outboxMetricsOnce sync.Once
	outboxMetrics     *OutboxMetrics
)

func Outbox() *OutboxMetrics {
	outboxMetricsOnce.Do(func() {
		outboxMetrics = NewOutboxMetrics(prometheus.DefaultRegisterer)
	})
	return outboxMetrics
}

func NewOutboxMetrics(registerer prometheus.Registerer) *OutboxMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	relayed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "erp_outbox_relayed_total",
		Help: "Outbox rows handed to Kafka by topic and result.",
	}, []string{"topic", "result"})
	batchSize := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "erp_outbox_batch_size",
		Help:    "Pending outbox rows picked up per relay poll.",
		Buckets: []float64{1, 5, 10, 25, 50},
	})

	registerer.MustRegister(relayed, batchSize)

	return &OutboxMetrics{relayed: relayed, batchSize: batchSize}
}

func (m *OutboxMetrics) ObserveRelay(topic string, err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.relayed.WithLabelValues(topic, result).Inc()
}

func (m *OutboxMetrics) ObserveBatch(size int) {
	if m == nil {
		return
	}
	m.batchSize.Observe(float64(size))
}
