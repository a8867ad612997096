package scheduler

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	lastSecondsDesc = prometheus.NewDesc(
		"ecsphys_system_last_seconds",
		"Wall-clock duration of a system's most recent run.",
		[]string{"stage", "system"}, nil,
	)
	emaSecondsDesc = prometheus.NewDesc(
		"ecsphys_system_ema_seconds",
		"Exponentially smoothed wall-clock duration of a system's runs.",
		[]string{"stage", "system"}, nil,
	)
	maxSecondsDesc = prometheus.NewDesc(
		"ecsphys_system_max_seconds",
		"Largest wall-clock duration observed for a system since the last ResetMax.",
		[]string{"stage", "system"}, nil,
	)
	runsTotalDesc = prometheus.NewDesc(
		"ecsphys_system_runs_total",
		"Number of times a system has run.",
		[]string{"stage", "system"}, nil,
	)
	errorsTotalDesc = prometheus.NewDesc(
		"ecsphys_system_errors_total",
		"Number of times a system has returned a non-nil error.",
		[]string{"stage", "system"}, nil,
	)
)

// Describe implements prometheus.Collector.
func (p *Profiler) Describe(ch chan<- *prometheus.Desc) {
	ch <- lastSecondsDesc
	ch <- emaSecondsDesc
	ch <- maxSecondsDesc
	ch <- runsTotalDesc
	ch <- errorsTotalDesc
}

// Collect implements prometheus.Collector, emitting one set of metrics
// per (stage, system) key currently recorded. It holds the Profiler's
// read lock for the whole scrape, so a Tick recording a sample meanwhile
// waits for it to finish.
func (p *Profiler) Collect(ch chan<- prometheus.Metric) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for key, s := range p.samples {
		stage, name, _ := strings.Cut(key, "/")
		ch <- prometheus.MustNewConstMetric(lastSecondsDesc, prometheus.GaugeValue, s.Last.Seconds(), stage, name)
		ch <- prometheus.MustNewConstMetric(emaSecondsDesc, prometheus.GaugeValue, s.EMA.Seconds(), stage, name)
		ch <- prometheus.MustNewConstMetric(maxSecondsDesc, prometheus.GaugeValue, s.Max.Seconds(), stage, name)
		ch <- prometheus.MustNewConstMetric(runsTotalDesc, prometheus.CounterValue, float64(s.Count), stage, name)
		ch <- prometheus.MustNewConstMetric(errorsTotalDesc, prometheus.CounterValue, float64(s.Errs), stage, name)
	}
}
