package analytic

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// FluidResult holds the trajectory of the continuous approximation.
type FluidResult struct {
	Times       []float64 // sample instants, 0, dt, 2dt, ... < totalTime
	QueueLength []float64 // queue length at each instant

	FinalQueueLength float64
	MeanQueueLength  float64
}

// Fluid integrates the deterministic fluid approximation of the queue,
//
//	dq/dt = λ − μ·q
//
// with forward Euler steps of size dt and the queue clamped at zero. The
// model treats entities as a continuous flow: it tracks the queue-length
// trajectory, not individual waits, and converges towards the equilibrium
// q* = λ/μ.
func Fluid(totalTime, dt, arrivalRate, serviceRate float64) (*FluidResult, error) {
	if totalTime <= 0 {
		return nil, fmt.Errorf("%w: total time must be > 0, got %v", ErrInvalidParameter, totalTime)
	}
	if dt <= 0 || dt > totalTime {
		return nil, fmt.Errorf("%w: dt must be in (0, total time], got %v", ErrInvalidParameter, dt)
	}
	if arrivalRate <= 0 {
		return nil, fmt.Errorf("%w: arrival rate must be > 0, got %v", ErrInvalidParameter, arrivalRate)
	}
	if serviceRate <= 0 {
		return nil, fmt.Errorf("%w: service rate must be > 0, got %v", ErrInvalidParameter, serviceRate)
	}

	times := []float64{0}
	queue := []float64{0}
	q := 0.0
	for t := dt; t < totalTime; t += dt {
		dq := arrivalRate - serviceRate*q
		q += dq * dt
		if q < 0 {
			q = 0
		}
		times = append(times, t)
		queue = append(queue, q)
	}

	return &FluidResult{
		Times:            times,
		QueueLength:      queue,
		FinalQueueLength: queue[len(queue)-1],
		MeanQueueLength:  stat.Mean(queue, nil),
	}, nil
}
