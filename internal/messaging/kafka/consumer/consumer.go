package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/employeesalary"
	employeesalaryerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/employeesalary/errors"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/events"

	"github.com/cenkalti/backoff/v4"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader used by the consumers.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// SalaryRecorder records the opening salary of a hired employee.
type SalaryRecorder interface {
	Create(ctx context.Context, companyID string, req employeesalary.CreateEmployeeSalaryRequest) (employeesalary.EmployeeSalaryResponse, error)
}

func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	salaries SalaryRecorder,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	retry := backoff.NewExponentialBackOff()
	retry.MaxInterval = 30 * time.Second
	retry.MaxElapsedTime = 0

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			wait := retry.NextBackOff()
			log.Error("fetch employee lifecycle message failed", zap.Duration("retry_in", wait), zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
			}
			continue
		}
		retry.Reset()

		if !HandleEmployeeLifecycleMessage(ctx, msg, salaries, log) {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
		}
	}
}

// HandleEmployeeLifecycleMessage applies one message and reports whether its
// offset can be committed. Transient failures leave the offset uncommitted.
func HandleEmployeeLifecycleMessage(
	ctx context.Context,
	msg kafkago.Message,
	salaries SalaryRecorder,
	log *zap.Logger,
) bool {
	var event events.EmployeeCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode employee lifecycle event failed", zap.Error(err))
		return true
	}
	if event.EventType != events.EventEmployeeCreated {
		return true
	}

	fields := []zap.Field{
		zap.String("employee_id", event.EmployeeID),
		zap.String("company_id", event.CompanyID),
		zap.String("request_id", event.RequestID),
	}

	baseSalary, err := decimal.NewFromString(event.BaseSalary)
	if err != nil || !baseSalary.IsPositive() {
		log.Warn("employee_created event without usable salary, skipping", fields...)
		return true
	}

	effectiveDate := event.HireDate
	if effectiveDate == "" {
		effectiveDate = event.OccurredAt.UTC().Format("2006-01-02")
	}

	_, err = salaries.Create(ctx, event.CompanyID, employeesalary.CreateEmployeeSalaryRequest{
		EmployeeID:    event.EmployeeID,
		BaseSalary:    baseSalary,
		EffectiveDate: effectiveDate,
		Reason:        "hire",
	})
	switch {
	case err == nil:
		log.Info("opening salary recorded from employee_created event", fields...)
		return true
	case errors.Is(err, employeesalaryerrors.ErrSalaryEffectiveDateAlreadyExists):
		log.Warn("opening salary already recorded, skipping", fields...)
		return true
	case errors.Is(err, employeesalaryerrors.ErrInvalidEmployeeID),
		errors.Is(err, employeesalaryerrors.ErrInvalidEffectiveDate):
		log.Error("employee_created event rejected", append(fields, zap.Error(err))...)
		return true
	default:
		log.Error("record opening salary failed", append(fields, zap.Error(err))...)
		return false
	}
}
