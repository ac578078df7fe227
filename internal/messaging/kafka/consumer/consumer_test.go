package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/employeesalary"
	employeesalaryerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/employeesalary/errors"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSalaryRecorder struct {
	err   error
	calls []employeesalary.CreateEmployeeSalaryRequest
}

func (f *fakeSalaryRecorder) Create(_ context.Context, _ string, req employeesalary.CreateEmployeeSalaryRequest) (employeesalary.EmployeeSalaryResponse, error) {
	f.calls = append(f.calls, req)
	return employeesalary.EmployeeSalaryResponse{}, f.err
}

type fakeReader struct {
	mu        sync.Mutex
	messages  []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func employeeCreatedMessage(t *testing.T, salary, hireDate string) kafkago.Message {
	t.Helper()
	payload, err := json.Marshal(events.EmployeeCreatedEvent{
		EventType:  events.EventEmployeeCreated,
		EmployeeID: "5f1d7c4e-8a57-4a43-9a8e-0d4b0f3c1a11",
		CompanyID:  "0e8f43a2-4a0b-4a2c-bb1e-7f0c3f8b9d22",
		BaseSalary: salary,
		HireDate:   hireDate,
		OccurredAt: time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return kafkago.Message{Value: payload}
}

func TestHandleEmployeeLifecycleMessage(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("records opening salary", func(t *testing.T) {
		rec := &fakeSalaryRecorder{}

		ok := HandleEmployeeLifecycleMessage(ctx, employeeCreatedMessage(t, "4200.00", "2026-02-02"), rec, log)

		assert.True(t, ok)
		require.Len(t, rec.calls, 1)
		assert.True(t, rec.calls[0].BaseSalary.Equal(decimal.NewFromInt(4200)))
		assert.Equal(t, "2026-02-02", rec.calls[0].EffectiveDate)
		assert.Equal(t, "hire", rec.calls[0].Reason)
	})

	t.Run("falls back to occurred_at date", func(t *testing.T) {
		rec := &fakeSalaryRecorder{}

		HandleEmployeeLifecycleMessage(ctx, employeeCreatedMessage(t, "4200.00", ""), rec, log)

		require.Len(t, rec.calls, 1)
		assert.Equal(t, "2026-02-10", rec.calls[0].EffectiveDate)
	})

	t.Run("duplicate is committed", func(t *testing.T) {
		rec := &fakeSalaryRecorder{err: employeesalaryerrors.ErrSalaryEffectiveDateAlreadyExists}

		assert.True(t, HandleEmployeeLifecycleMessage(ctx, employeeCreatedMessage(t, "4200.00", "2026-02-02"), rec, log))
	})

	t.Run("transient failure is retried", func(t *testing.T) {
		rec := &fakeSalaryRecorder{err: errors.New("db down")}

		assert.False(t, HandleEmployeeLifecycleMessage(ctx, employeeCreatedMessage(t, "4200.00", "2026-02-02"), rec, log))
	})

	t.Run("missing salary is skipped", func(t *testing.T) {
		rec := &fakeSalaryRecorder{}

		assert.True(t, HandleEmployeeLifecycleMessage(ctx, employeeCreatedMessage(t, "", "2026-02-02"), rec, log))
		assert.Empty(t, rec.calls)
	})

	t.Run("garbage payload is committed", func(t *testing.T) {
		rec := &fakeSalaryRecorder{}

		assert.True(t, HandleEmployeeLifecycleMessage(ctx, kafkago.Message{Value: []byte("{")}, rec, log))
		assert.Empty(t, rec.calls)
	})
}

func TestConsumeEmployeeLifecycle_CommitsHandledMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		messages: []kafkago.Message{employeeCreatedMessage(t, "3000", "2026-01-05")},
		cancel:   cancel,
	}
	rec := &fakeSalaryRecorder{}

	ConsumeEmployeeLifecycle(ctx, reader, rec, zap.NewNop())

	assert.Len(t, rec.calls, 1)
	assert.Len(t, reader.committed, 1)
}
