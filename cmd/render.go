// Text rendering for the CLI: run summaries, steady-state tables, the
// simulation-vs-analytic comparison, and an ASCII wait-time histogram.
// Everything here consumes RunResult/Summary/SteadyStateMetrics read-only.

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	sim "github.com/queuesim/queuesim/sim"
	"github.com/queuesim/queuesim/sim/analytic"
)

const (
	histBins     = 12
	histBarWidth = 40
)

// RenderSummary formats one run's aggregate statistics.
func RenderSummary(sum *sim.Summary) string {
	var sb strings.Builder
	sb.WriteString("=== Simulation Summary ===\n")
	fmt.Fprintf(&sb, "Completed entities : %d\n", sum.Completed)
	fmt.Fprintf(&sb, "Mean wait          : %.2f min\n", sum.MeanWait)
	fmt.Fprintf(&sb, "Max wait           : %.2f min\n", sum.MaxWait)
	fmt.Fprintf(&sb, "Wait std dev       : %.2f min\n", sum.StdDevWait)
	util := fmt.Sprintf("%.3f", sum.Utilization)
	if sum.UtilizationExceedsOne {
		util += "  [exceeds 1.0: modeling bug]"
	}
	fmt.Fprintf(&sb, "Utilization        : %s\n", util)
	fmt.Fprintf(&sb, "Throughput         : %.3f entities/min\n", sum.Throughput)
	fmt.Fprintf(&sb, "Final clock        : %.2f min\n", sum.FinalClockTime)
	return sb.String()
}

// RenderWaitHistogram draws an ASCII histogram of per-entity waits.
func RenderWaitHistogram(res *sim.RunResult) string {
	if res == nil || len(res.Records) == 0 {
		return "No data to display\n"
	}

	waits := make([]float64, 0, len(res.Records))
	for _, rec := range res.Records {
		waits = append(waits, rec.Wait())
	}
	sort.Float64s(waits)

	lo, hi := waits[0], waits[len(waits)-1]
	span := hi - lo
	if span == 0 {
		span = 1
	}
	// top divider sits just above the maximum so every sample falls in a bin
	dividers := floats.Span(make([]float64, histBins+1), lo, hi+span*1e-9)
	counts := stat.Histogram(nil, dividers, waits, nil)

	maxCount := floats.Max(counts)
	var sb strings.Builder
	sb.WriteString("\nWaiting Time Distribution\n")
	for i, c := range counts {
		bar := ""
		if maxCount > 0 {
			bar = strings.Repeat("#", int(c/maxCount*histBarWidth))
		}
		fmt.Fprintf(&sb, "[%7.2f, %7.2f) %-*s %d\n", dividers[i], dividers[i+1], histBarWidth, bar, int(c))
	}
	return sb.String()
}

// RenderSteadyState formats the analytic M/M/c metrics.
func RenderSteadyState(ss *analytic.SteadyStateMetrics) string {
	var sb strings.Builder
	sb.WriteString("=== M/M/c Steady State ===\n")
	fmt.Fprintf(&sb, "Utilization rho    : %.4f\n", ss.Rho)
	fmt.Fprintf(&sb, "P(wait)            : %.4f\n", ss.PWait)
	fmt.Fprintf(&sb, "Mean queue len Lq  : %.4f\n", ss.Lq)
	fmt.Fprintf(&sb, "Mean in system L   : %.4f\n", ss.L)
	fmt.Fprintf(&sb, "Mean wait Wq       : %.4f min\n", ss.Wq)
	fmt.Fprintf(&sb, "Mean sojourn W     : %.4f min\n", ss.W)
	fmt.Fprintf(&sb, "Throughput         : %.4f entities/min\n", ss.Throughput)
	return sb.String()
}

// RenderComparison prints simulated and analytic values side by side.
func RenderComparison(sum *sim.Summary, ss *analytic.SteadyStateMetrics) string {
	var sb strings.Builder
	sb.WriteString("=== Simulation vs Steady State ===\n")
	fmt.Fprintf(&sb, "%-22s %12s %12s\n", "metric", "simulated", "analytic")
	fmt.Fprintf(&sb, "%-22s %12.4f %12.4f\n", "mean wait (min)", sum.MeanWait, ss.Wq)
	fmt.Fprintf(&sb, "%-22s %12.4f %12.4f\n", "utilization", sum.Utilization, ss.Rho)
	fmt.Fprintf(&sb, "%-22s %12.4f %12.4f\n", "throughput (/min)", sum.Throughput, ss.Throughput)
	return sb.String()
}

// RenderSweep prints one line per sweep point.
func RenderSweep(points []sim.SweepPoint) string {
	var sb strings.Builder
	sb.WriteString("=== Server Sweep ===\n")
	fmt.Fprintf(&sb, "%8s %12s %12s %12s %14s\n", "servers", "mean wait", "max wait", "utilization", "throughput/min")
	for _, p := range points {
		fmt.Fprintf(&sb, "%8d %12.3f %12.3f %12.3f %14.3f\n",
			p.Servers, p.Summary.MeanWait, p.Summary.MaxWait, p.Summary.Utilization, p.Summary.Throughput)
	}
	return sb.String()
}
