package monitoring

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	m.RecordModuleRun("arithmetic", 10*time.Millisecond)
	m.RecordModuleRun("arithmetic", 20*time.Millisecond)
	m.RecordModuleRun("statistics", time.Second)
	m.RecordDomainError("arithmetic", "division_by_zero")
	m.RecordRejectedInput("not_a_number")
	m.RecordRejectedInput("empty_dataset")
	m.RecordSelection(true)
	m.RecordSelection(false)

	t.Run("counters", func(t *testing.T) {
		assert.Equal(t, 2.0, testutil.ToFloat64(m.ModuleRuns.WithLabelValues("arithmetic")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.ModuleRuns.WithLabelValues("statistics")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.DomainErrors.WithLabelValues("arithmetic", "division_by_zero")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.InputsRejected.WithLabelValues("not_a_number")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.MenuSelections.WithLabelValues("false")))
	})

	t.Run("registry", func(t *testing.T) {
		count, err := testutil.GatherAndCount(m.Registry(), "calcshell_module_runs_total")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("snapshot", func(t *testing.T) {
		snap := m.Snapshot()
		assert.Equal(t, int64(3), snap.TotalRuns)
		assert.Equal(t, int64(2), snap.ModuleRuns["arithmetic"])
		assert.Equal(t, int64(1), snap.DomainErrors)
		assert.Equal(t, int64(2), snap.InputsRejected)
		assert.Equal(t, int64(1), snap.InvalidSelection)

		// Copies are independent
		snap.ModuleRuns["arithmetic"] = 99
		assert.Equal(t, int64(2), m.Snapshot().ModuleRuns["arithmetic"])
	})

	t.Run("snapshot follows registry", func(t *testing.T) {
		// Counters bumped directly on the vectors show up in the summary
		m.ModuleRuns.WithLabelValues("percentage").Add(3)
		t.Cleanup(func() { m.ModuleRuns.DeleteLabelValues("percentage") })

		snap := m.Snapshot()
		assert.Equal(t, int64(3), snap.ModuleRuns["percentage"])
		assert.Equal(t, int64(6), snap.TotalRuns)
	})

	t.Run("uptime", func(t *testing.T) {
		assert.Greater(t, m.Uptime(), time.Duration(0))
	})
}

func TestWriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.RecordModuleRun("expression", 5*time.Millisecond)
	m.RecordDomainError("expression", "division_by_zero")

	path := filepath.Join(t.TempDir(), "calcshell.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `calcshell_module_runs_total{module="expression"} 1`)
	assert.Contains(t, text, `calcshell_domain_errors_total{kind="division_by_zero",module="expression"} 1`)

	require.NoError(t, testutil.CollectAndCompare(m.ModuleRuns, strings.NewReader(`
# HELP calcshell_module_runs_total Total number of module invocations
# TYPE calcshell_module_runs_total counter
calcshell_module_runs_total{module="expression"} 1
`)))

	t.Run("missing directory", func(t *testing.T) {
		err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "calcshell.prom"))
		assert.ErrorContains(t, err, "failed to write metrics file")
	})
}

func TestSeparateRegistries(t *testing.T) {
	// Two collectors must not collide on registration
	a := NewMetrics()
	b := NewMetrics()
	a.RecordModuleRun("expression", time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.ModuleRuns.WithLabelValues("expression")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ModuleRuns.WithLabelValues("expression")))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordModuleRun("arithmetic", time.Millisecond)
		m.RecordDomainError("arithmetic", "division_by_zero")
		m.RecordRejectedInput("not_a_number")
		m.RecordSelection(false)
	})
	assert.Nil(t, m.Registry())
	assert.Empty(t, m.Snapshot().ModuleRuns)
	assert.Equal(t, time.Duration(0), m.Uptime())
	assert.NoError(t, m.WriteTextfile(filepath.Join(t.TempDir(), "unused.prom")))
}
