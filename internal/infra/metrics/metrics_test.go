package metrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/autoscale-bootstrap/internal/infra/metrics"
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	recorder := metrics.New(registry)

	recorder.RecordOutcome("Deployment", "created")
	recorder.RecordOutcome("Deployment", "created")
	recorder.RecordOutcome("Service", "skipped")
	recorder.RecordFailure("ScaledObject")
	recorder.RecordPodWait("keda", 3*time.Second, nil)
	recorder.RecordCommand("helm", time.Second, errors.New("exit status 1"))

	expected := `
# HELP autoscale_bootstrap_resource_outcomes_total Total number of managed resources by kind and action (created or skipped).
# TYPE autoscale_bootstrap_resource_outcomes_total counter
autoscale_bootstrap_resource_outcomes_total{action="created",kind="Deployment"} 2
autoscale_bootstrap_resource_outcomes_total{action="skipped",kind="Service"} 1
`
	err := testutil.GatherAndCompare(registry, strings.NewReader(expected),
		"autoscale_bootstrap_resource_outcomes_total")
	require.NoError(t, err)

	require.Equal(t, 1, testutil.CollectAndCount(registry, "autoscale_bootstrap_resource_failures_total"))
	require.Equal(t, 1, testutil.CollectAndCount(registry, "autoscale_bootstrap_commands_total"))
}

func TestWriteTextfile(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	recorder := metrics.New(registry)
	recorder.RecordRun(time.Unix(1700000000, 0), nil)

	path := filepath.Join(t.TempDir(), "bootstrap.prom")

	require.NoError(t, metrics.WriteTextfile(path, registry))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `autoscale_bootstrap_last_run_timestamp_seconds{result="success"} 1.7e+09`)
}
