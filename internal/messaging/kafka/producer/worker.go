package producer

import (
	"context"
	"time"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/messaging/kafka"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/metrics"

	"go.uber.org/zap"
)

const (
	defaultBatchSize    = 50
	defaultPollInterval = 3 * time.Second
)

// Relay moves pending outbox rows to Kafka. Rows are marked sent only after
// the broker acknowledged them, so delivery is at least once.
type Relay struct {
	repo      kafka.OutboxRepository
	writer    MessageWriter
	metrics   *metrics.OutboxMetrics
	logger    *zap.Logger
	batchSize int
}

func NewRelay(repo kafka.OutboxRepository, writer MessageWriter, m *metrics.OutboxMetrics, logger ...*zap.Logger) *Relay {
	l := zap.L().Named("kafka.producer.relay")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.producer.relay")
	}
	return &Relay{
		repo:      repo,
		writer:    writer,
		metrics:   m,
		logger:    l,
		batchSize: defaultBatchSize,
	}
}

// Run polls until ctx is cancelled. A full batch is followed immediately by
// another poll instead of waiting for the next tick.
func (r *Relay) Run(ctx context.Context, pollInterval time.Duration) {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	r.logger.Info("outbox relay started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopped")
			return
		case <-ticker.C:
			for {
				picked, err := r.ProcessPending(ctx)
				if err != nil {
					r.logger.Error("relay outbox batch failed", zap.Error(err))
				}
				if err != nil || picked < r.batchSize || ctx.Err() != nil {
					break
				}
			}
		}
	}
}

// ProcessPending relays one batch and returns how many rows it picked up.
func (r *Relay) ProcessPending(ctx context.Context) (int, error) {
	events, err := r.repo.ClaimPending(ctx, r.batchSize)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}
	r.metrics.ObserveBatch(len(events))

	results := publishBatch(ctx, r.writer, events)
	for i, event := range events {
		r.settle(ctx, event, results[i])
	}
	return len(events), nil
}

func (r *Relay) settle(ctx context.Context, event kafka.OutboxEvent, publishErr error) {
	r.metrics.ObserveRelay(event.Topic, publishErr)
	log := r.logger.With(
		zap.String("outbox_id", event.ID),
		zap.String("event_type", event.EventType),
		zap.String("topic", event.Topic),
	)

	if publishErr != nil {
		attempt := event.RetryCount + 1
		if attempt >= kafka.MaxDeliveryAttempts {
			log.Error("outbox event dead lettered", zap.Int("attempts", attempt), zap.Error(publishErr))
		} else {
			log.Warn("publish outbox event failed", zap.Int("attempts", attempt), zap.Error(publishErr))
		}
		if err := r.repo.MarkFailed(ctx, event.ID, publishErr.Error()); err != nil {
			log.Error("mark outbox failed failed", zap.Error(err))
		}
		return
	}

	if err := r.repo.MarkSent(ctx, event.ID); err != nil {
		log.Error("mark outbox sent failed", zap.Error(err))
		return
	}
	log.Debug("outbox event sent", zap.String("aggregate_id", event.AggregateID))
}
