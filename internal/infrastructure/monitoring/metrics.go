package monitoring

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metric names
const (
	ModuleRunsName     = "calcshell_module_runs_total"
	ModuleDurationName = "calcshell_module_duration_seconds"
	DomainErrorsName   = "calcshell_domain_errors_total"
	InputsRejectedName = "calcshell_inputs_rejected_total"
	MenuSelectionsName = "calcshell_menu_selections_total"
)

// Metrics holds the session's Prometheus metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Module metrics
	ModuleRuns     *prometheus.CounterVec
	ModuleDuration *prometheus.HistogramVec
	DomainErrors   *prometheus.CounterVec

	// Input metrics
	InputsRejected *prometheus.CounterVec
	MenuSelections *prometheus.CounterVec

	startTime time.Time
}

// MetricsSnapshot holds current metric values for the session summary,
// read back from the registry
type MetricsSnapshot struct {
	ModuleRuns       map[string]int64
	TotalRuns        int64
	DomainErrors     int64
	InputsRejected   int64
	InvalidSelection int64
}

// NewMetrics creates a metrics collector on its own registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry:  reg,
		startTime: time.Now(),

		ModuleRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: ModuleRunsName,
				Help: "Total number of module invocations",
			},
			[]string{"module"},
		),
		ModuleDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calcshell_module_duration_seconds",
				Help:    "Module invocation duration in seconds, including time spent waiting for input",
				Buckets: []float64{.5, 1, 2.5, 5, 10, 30, 60, 300},
			},
			[]string{"module"},
		),
		DomainErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: DomainErrorsName,
				Help: "Total number of reported domain errors",
			},
			[]string{"module", "kind"},
		),
		InputsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: InputsRejectedName,
				Help: "Total number of rejected input tokens",
			},
			[]string{"reason"},
		),
		MenuSelections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MenuSelectionsName,
				Help: "Total number of main menu selections",
			},
			[]string{"valid"},
		),
	}
}

// Registry returns the registry the metrics are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordModuleRun records a completed module invocation
func (m *Metrics) RecordModuleRun(module string, duration time.Duration) {
	if m == nil {
		return
	}
	m.ModuleRuns.WithLabelValues(module).Inc()
	m.ModuleDuration.WithLabelValues(module).Observe(duration.Seconds())
}

// RecordDomainError records a reported domain error such as division by zero
func (m *Metrics) RecordDomainError(module, kind string) {
	if m == nil {
		return
	}
	m.DomainErrors.WithLabelValues(module, kind).Inc()
}

// RecordRejectedInput records an input token that failed validation
func (m *Metrics) RecordRejectedInput(reason string) {
	if m == nil {
		return
	}
	m.InputsRejected.WithLabelValues(reason).Inc()
}

// RecordSelection records a main menu selection
func (m *Metrics) RecordSelection(valid bool) {
	if m == nil {
		return
	}
	label := "true"
	if !valid {
		label = "false"
	}
	m.MenuSelections.WithLabelValues(label).Inc()
}

// Snapshot gathers the registry and sums the counters for the summary
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{ModuleRuns: map[string]int64{}}
	if m == nil {
		return snap
	}

	families, err := m.registry.Gather()
	if err != nil {
		return snap
	}

	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			value := int64(metric.GetCounter().GetValue())
			switch mf.GetName() {
			case ModuleRunsName:
				snap.ModuleRuns[labelValue(metric, "module")] += value
				snap.TotalRuns += value
			case DomainErrorsName:
				snap.DomainErrors += value
			case InputsRejectedName:
				snap.InputsRejected += value
			case MenuSelectionsName:
				if labelValue(metric, "valid") == "false" {
					snap.InvalidSelection += value
				}
			}
		}
	}
	return snap
}

// WriteTextfile writes every metric to path in the Prometheus text format,
// suitable for the node_exporter textfile collector
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}

func labelValue(metric *dto.Metric, name string) string {
	for _, pair := range metric.GetLabel() {
		if pair.GetName() == name {
			return pair.GetValue()
		}
	}
	return ""
}

// Uptime returns time since the metrics were created
func (m *Metrics) Uptime() time.Duration {
	if m == nil {
		return 0
	}
	return time.Since(m.startTime)
}
