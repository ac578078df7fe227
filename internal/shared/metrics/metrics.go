package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultSuccess = "success"
	ResultError   = "error"

	LookupHit     = "hit"
	LookupMiss    = "miss"
	LookupAbsent  = "absent"
	LookupFailure = "error"
)

// PayrollMetrics groups the payroll and tax-table instruments.
type PayrollMetrics struct {
	calculations        *prometheus.CounterVec
	calculationDuration *prometheus.HistogramVec
	calculatedItems     prometheus.Counter
	transitions         *prometheus.CounterVec
	taxTableLookups     *prometheus.CounterVec
}

var (
	payrollMetricsOnce sync.Once
	payrollMetrics     *PayrollMetrics
)

// Payroll returns the process-wide metrics registered on the default registerer.
func Payroll() *PayrollMetrics {
	payrollMetricsOnce.Do(func() {
		payrollMetrics = NewPayrollMetrics(prometheus.DefaultRegisterer)
	})
	return payrollMetrics
}

func NewPayrollMetrics(registerer prometheus.Registerer) *PayrollMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	calculations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "erp_payroll_calculations_total",
		Help: "Payroll calculation runs by result.",
	}, []string{"result"})
	calculationDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "erp_payroll_calculation_duration_seconds",
		Help:    "Payroll calculation latency in seconds.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"result"})
	calculatedItems := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "erp_payroll_calculated_items_total",
		Help: "Payroll items produced by calculation runs.",
	})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "erp_payroll_status_transitions_total",
		Help: "Payroll status transitions.",
	}, []string{"from", "to"})
	taxTableLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "erp_tax_table_lookups_total",
		Help: "Active tax table lookups by kind and outcome.",
	}, []string{"kind", "outcome"})

	registerer.MustRegister(
		calculations,
		calculationDuration,
		calculatedItems,
		transitions,
		taxTableLookups,
	)

	return &PayrollMetrics{
		calculations:        calculations,
		calculationDuration: calculationDuration,
		calculatedItems:     calculatedItems,
		transitions:         transitions,
		taxTableLookups:     taxTableLookups,
	}
}

func (m *PayrollMetrics) ObserveCalculation(start time.Time, items int, err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.calculations.WithLabelValues(result).Inc()
	m.calculationDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	if err == nil && items > 0 {
		m.calculatedItems.Add(float64(items))
	}
}

func (m *PayrollMetrics) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(from, to).Inc()
}

func (m *PayrollMetrics) ObserveTaxTableLookup(kind, outcome string) {
	if m == nil {
		return
	}
	m.taxTableLookups.WithLabelValues(kind, outcome).Inc()
}
