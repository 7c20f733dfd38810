// Package sim provides the core discrete-event simulation engine for
// queued-service flow: N entities arrive at a facility with C interchangeable
// service counters, wait in FIFO order when all counters are busy, are served
// for a sampled duration, and depart.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - entity.go: entity lifecycle (arrived → waiting → in_service → departed)
//   - event.go: the event types that drive the simulation (Arrival, ServiceGrant, Departure)
//   - simulator.go: the (timestamp, sequence)-ordered event loop
//
// run.go ties them together: Run(cfg) validates the configuration, derives
// seeded random sub-streams, executes a fresh Simulator and returns the
// caller-owned RunResult. summary.go aggregates records into run statistics.
//
// # Companion packages
//
//   - sim/analytic: closed-form M/M/c (Erlang-C) steady state and the
//     continuous fluid approximation, for comparison against simulated runs
//
// The simulation is single-threaded and logical-time only: concurrency among
// entities is interleaving by event time, so a fixed seed reproduces an
// identical event sequence and identical records.
package sim
