package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "autoscale_bootstrap"

const (
	resultSuccess = "success"
	resultError   = "error"
)

// Recorder records bootstrap measurements into a prometheus registry.
type Recorder struct {
	outcomesTotal        *prometheus.CounterVec
	failuresTotal        *prometheus.CounterVec
	podWaitSeconds       *prometheus.HistogramVec
	commandsTotal        *prometheus.CounterVec
	commandDurationSecs  *prometheus.HistogramVec
	lastRunTimestampSecs *prometheus.GaugeVec
}

// New registers the bootstrap metrics with registerer.
func New(registerer prometheus.Registerer) *Recorder {
	factory := promauto.With(registerer)

	return &Recorder{
		outcomesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resource_outcomes_total",
				Help:      "Total number of managed resources by kind and action (created or skipped).",
			},
			[]string{"kind", "action"},
		),
		failuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resource_failures_total",
				Help:      "Total number of failed existence checks or creates by kind.",
			},
			[]string{"kind"},
		),
		podWaitSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "pod_wait_duration_seconds",
				Help:      "Time spent waiting for pods to reach the running phase.",
				Buckets:   []float64{1, 5, 10, 30, 60, 120, 300, 600},
			},
			[]string{"namespace", "result"},
		),
		commandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "Total number of external commands run by program and result.",
			},
			[]string{"program", "result"},
		),
		commandDurationSecs: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "command_duration_seconds",
				Help:      "Duration of external commands by program.",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
			},
			[]string{"program"},
		),
		lastRunTimestampSecs: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix time of the last finished bootstrap run by result.",
			},
			[]string{"result"},
		),
	}
}

func (r *Recorder) RecordOutcome(kind, action string) {
	r.outcomesTotal.WithLabelValues(kind, action).Inc()
}

func (r *Recorder) RecordFailure(kind string) {
	r.failuresTotal.WithLabelValues(kind).Inc()
}

func (r *Recorder) RecordPodWait(namespace string, duration time.Duration, err error) {
	r.podWaitSeconds.WithLabelValues(namespace, result(err)).Observe(duration.Seconds())
}

func (r *Recorder) RecordCommand(program string, duration time.Duration, err error) {
	r.commandsTotal.WithLabelValues(program, result(err)).Inc()
	r.commandDurationSecs.WithLabelValues(program).Observe(duration.Seconds())
}

// RecordRun stamps the finish time of a bootstrap run.
func (r *Recorder) RecordRun(finishedAt time.Time, err error) {
	r.lastRunTimestampSecs.WithLabelValues(result(err)).Set(float64(finishedAt.Unix()))
}

// WriteTextfile writes the gathered metrics in the text exposition format,
// for the node exporter textfile collector.
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	err := prometheus.WriteToTextfile(path, gatherer)
	if err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}

	return nil
}

func result(err error) string {
	if err != nil {
		return resultError
	}

	return resultSuccess
}
