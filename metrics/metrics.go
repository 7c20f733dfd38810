// Package metrics provides Prometheus observability for simulation runs.
// Gauges carry the latest run's summary; counters and the wait histogram
// accumulate across runs in one process (e.g. a sweep).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/queuesim/queuesim/sim"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// RunsTotal counts completed simulation runs.
var RunsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "queuesim",
	Name:      "runs_total",
	Help:      "Total number of completed simulation runs",
})

// EntitiesCompletedTotal counts entities that departed across all runs.
var EntitiesCompletedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "queuesim",
	Name:      "entities_completed_total",
	Help:      "Total number of entities served to completion",
})

// MeanWaitMinutes reports the latest run's mean wait.
var MeanWaitMinutes = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "queuesim",
	Name:      "mean_wait_minutes",
	Help:      "Mean entity waiting time of the most recent run",
})

// MaxWaitMinutes reports the latest run's maximum wait.
var MaxWaitMinutes = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "queuesim",
	Name:      "max_wait_minutes",
	Help:      "Maximum entity waiting time of the most recent run",
})

// UtilizationRatio reports the latest run's measured counter utilization.
var UtilizationRatio = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "queuesim",
	Name:      "utilization_ratio",
	Help:      "Fraction of aggregate counter time spent busy in the most recent run",
})

// ThroughputPerMinute reports the latest run's completion rate.
var ThroughputPerMinute = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "queuesim",
	Name:      "throughput_per_minute",
	Help:      "Completed entities per simulated minute in the most recent run",
})

// WaitMinutes is the distribution of per-entity waits across all runs.
var WaitMinutes = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "queuesim",
	Name:      "wait_minutes",
	Help:      "Per-entity waiting time distribution",
	Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
})

// ObserveRun records one finished run: summary gauges plus every entity's
// wait in the histogram.
func ObserveRun(sum *sim.Summary, res *sim.RunResult) {
	RunsTotal.Inc()
	EntitiesCompletedTotal.Add(float64(sum.Completed))
	MeanWaitMinutes.Set(sum.MeanWait)
	MaxWaitMinutes.Set(sum.MaxWait)
	UtilizationRatio.Set(sum.Utilization)
	ThroughputPerMinute.Set(sum.Throughput)
	for _, rec := range res.Records {
		WaitMinutes.Observe(rec.Wait())
	}
}
