// Package analytic provides the closed-form companions to the discrete-event
// core: the M/M/c (Erlang-C) steady-state model and the continuous fluid
// approximation. Both are pure functions of the configured rates; they
// consume nothing from a simulation run.
package analytic

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter reports a non-positive rate or server count.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnstable reports an offered load at or above capacity (rho >= 1),
	// where no steady state exists. It is an expected business outcome,
	// not a failure: callers comparing the analytic model against a
	// simulation must branch on it.
	ErrUnstable = errors.New("unstable system")
)

// SteadyStateMetrics holds the M/M/c steady-state quantities.
type SteadyStateMetrics struct {
	Rho        float64 // utilization λ/(c·μ)
	PWait      float64 // Erlang-C probability an arrival has to wait
	Lq         float64 // mean number waiting in queue
	L          float64 // mean number in system
	Wq         float64 // mean wait in queue (minutes)
	W          float64 // mean time in system (minutes)
	Throughput float64 // departure rate; equals λ for a stable queue
}

// SteadyState solves the M/M/c queue for arrival rate lambda, per-server
// service rate mu and c servers. Precondition: rho = λ/(c·μ) < 1; at or
// above that the queue grows without bound and SteadyState returns
// ErrUnstable instead of a numeric result.
func SteadyState(lambda, mu float64, servers int) (*SteadyStateMetrics, error) {
	if lambda <= 0 {
		return nil, fmt.Errorf("%w: arrival rate must be > 0, got %v", ErrInvalidParameter, lambda)
	}
	if mu <= 0 {
		return nil, fmt.Errorf("%w: service rate must be > 0, got %v", ErrInvalidParameter, mu)
	}
	if servers <= 0 {
		return nil, fmt.Errorf("%w: servers must be > 0, got %d", ErrInvalidParameter, servers)
	}

	c := float64(servers)
	rho := lambda / (c * mu)
	if rho >= 1 {
		return nil, fmt.Errorf("%w: rho = %.4f (lambda=%v, mu=%v, c=%d)", ErrUnstable, rho, lambda, mu, servers)
	}

	// Erlang-C via the numerically stable Erlang-B recursion:
	//   B(0) = 1;  B(k) = a·B(k-1) / (k + a·B(k-1))
	//   C = B(c) / (1 - rho·(1 - B(c)))
	// where a = λ/μ is the offered load in Erlangs. Avoids the factorial
	// sum, which overflows for large c.
	a := lambda / mu
	b := 1.0
	for k := 1; k <= servers; k++ {
		b = a * b / (float64(k) + a*b)
	}
	pwait := b / (1 - rho*(1-b))

	lq := pwait * rho / (1 - rho)
	wq := lq / lambda
	w := wq + 1/mu
	l := lambda * w

	return &SteadyStateMetrics{
		Rho:        rho,
		PWait:      pwait,
		Lq:         lq,
		L:          l,
		Wq:         wq,
		W:          w,
		Throughput: lambda,
	}, nil
}
