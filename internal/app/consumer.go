package app

import (
	"context"
	"fmt"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/employeesalary"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/events"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/messaging/kafka/consumer"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/config"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer records opening salaries from employee_created events until
// ctx is cancelled.
func RunConsumer(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("app.consumer")

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

	employeeSalaryRepo := employeesalary.NewRepository(gormDB)
	employeeSalaryService := employeesalary.NewService(sqlDB, employeeSalaryRepo, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.EmployeeLifecycleTopic,
		GroupID:        cfg.KafkaConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	consumer.ConsumeEmployeeLifecycle(ctx, reader, employeeSalaryService, logger)

	log.Info("consumer shutting down")
	return nil
}
