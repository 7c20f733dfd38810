// Pure data types for finalized run output. No dependency on the event loop,
// so presentation layers can consume them read-only.

package sim

// EntityRecord is the immutable per-entity outcome of a run. It is created
// when the entity departs and never mutated afterwards.
type EntityRecord struct {
	ID              int
	ArrivalTime     float64
	ServiceStart    float64
	ServiceEnd      float64
	ServiceDuration float64
}

// Wait returns the time spent queueing before service. Zero when a counter
// was free at arrival.
func (r EntityRecord) Wait() float64 {
	return r.ServiceStart - r.ArrivalTime
}

// TimeInSystem returns the total time from arrival to departure.
func (r EntityRecord) TimeInSystem() float64 {
	return r.ServiceEnd - r.ArrivalTime
}

// RunResult is the caller-owned outcome of a single simulation run: the
// records in completion order plus the final clock value. The Simulator and
// ServerPool that produced it are discarded after the run.
type RunResult struct {
	Records        []EntityRecord
	FinalClockTime float64
}
