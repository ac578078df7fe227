package app

import (
	"context"
	"fmt"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/messaging/kafka"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/messaging/kafka/producer"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/config"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/connection"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/metrics"

	"go.uber.org/zap"
)

// RunWorker relays pending outbox rows to Kafka until ctx is cancelled.
func RunWorker(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("app.worker")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	go serveMetrics(ctx, cfg, logger)

	gormDB, err := connectDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(ctx, cfg.KafkaBroker, cfg.ConnectMaxRetries, logger)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	producer.NewRelay(outboxRepo, kafkaWriter, metrics.Outbox(), logger).Run(ctx, cfg.OutboxPollInterval)

	log.Info("worker shutting down")
	return nil
}
