package metrics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/Mireles-OConnor/CLI-project/metrics"
)

func TestPromMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	pm := metrics.NewPromMetrics(reg, "")

	pm.ObserveOperation("add", "added")
	pm.ObserveOperation("add", "added")
	pm.ObserveOperation("delete", "not_found")
	pm.IncSaveFailure("persistence_failure")
	pm.AddSkippedLines(2)
	pm.AddSkippedLines(0)
	pm.SetRecords(5)

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	n, err = testutil.GatherAndCount(reg, "contactbook_operations_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestPromMetrics_DoubleRegistrationIsTolerated(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := metrics.NewPromMetrics(reg, "cb")
	second := metrics.NewPromMetrics(reg, "cb")

	first.SetRecords(1)
	second.SetRecords(2)

	n, err := testutil.GatherAndCount(reg, "cb_records")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	pm := metrics.NewPromMetrics(reg, "contactbook")
	pm.ObserveOperation("add", "added")
	pm.SetRecords(3)

	path := filepath.Join(t.TempDir(), "contactbook.prom")
	require.NoError(t, metrics.WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# TYPE contactbook_operations_total counter")
	require.Contains(t, string(data), `contactbook_operations_total{op="add",outcome="added"} 1`)
	require.Contains(t, string(data), "contactbook_records 3")
}

func TestWriteTextfile_EmptyPathIsNoop(t *testing.T) {
	require.NoError(t, metrics.WriteTextfile("  ", prometheus.NewRegistry()))
}

func TestWriteTextfile_BadDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "contactbook.prom")
	require.Error(t, metrics.WriteTextfile(path, prometheus.NewRegistry()))
}
