package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPayrollMetrics_Observe(t *testing.T) {
	m := NewPayrollMetrics(prometheus.NewRegistry())

	m.ObserveCalculation(time.Now(), 3, nil)
	m.ObserveCalculation(time.Now(), 0, errors.New("boom"))
	m.ObserveTransition("DRAFT", "CALCULATED")
	m.ObserveTaxTableLookup("INSS", LookupMiss)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.calculations.WithLabelValues(ResultSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.calculations.WithLabelValues(ResultError)))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.calculatedItems))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.transitions.WithLabelValues("DRAFT", "CALCULATED")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.taxTableLookups.WithLabelValues("INSS", LookupMiss)))
}

func TestPayrollMetrics_NilSafe(t *testing.T) {
	var m *PayrollMetrics
	assert.NotPanics(t, func() {
		m.ObserveCalculation(time.Now(), 1, nil)
		m.ObserveTransition("A", "B")
		m.ObserveTaxTableLookup("IRRF", LookupHit)
	})
}

func TestOutboxMetrics_Observe(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewOutboxMetrics(registry)

	m.ObserveBatch(2)
	m.ObserveRelay("erp.payroll.lifecycle.v1", nil)
	m.ObserveRelay("erp.payroll.lifecycle.v1", errors.New("broker down"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.relayed.WithLabelValues("erp.payroll.lifecycle.v1", ResultSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.relayed.WithLabelValues("erp.payroll.lifecycle.v1", ResultError)))

	count, err := testutil.GatherAndCount(registry, "erp_outbox_batch_size")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	var nilMetrics *OutboxMetrics
	assert.NotPanics(t, func() { nilMetrics.ObserveRelay("t", nil) })
}
