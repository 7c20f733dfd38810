// Duration samplers for the two stochastic processes in a run: interarrival
// gaps and service times.

package sim

import (
	"fmt"
	"math/rand"
)

// DurationSampler generates durations in minutes.
type DurationSampler interface {
	// Sample returns a non-negative duration. Each call is independent;
	// the only shared state is the underlying random source.
	Sample() float64
}

// ExponentialSampler produces exponentially-distributed durations with the
// given mean (rate = 1/mean).
type ExponentialSampler struct {
	mean float64
	rng  *rand.Rand
}

// NewExponentialSampler creates a sampler with the given mean in minutes.
// The mean must be strictly positive; anything else is a configuration
// error. The random source is injected so runs can be seeded.
func NewExponentialSampler(mean float64, rng *rand.Rand) (*ExponentialSampler, error) {
	if mean <= 0 {
		return nil, fmt.Errorf("%w: exponential mean must be > 0, got %v", ErrInvalidParameter, mean)
	}
	if rng == nil {
		panic("NewExponentialSampler: rng must not be nil")
	}
	return &ExponentialSampler{mean: mean, rng: rng}, nil
}

// Sample draws one exponential duration.
func (s *ExponentialSampler) Sample() float64 {
	return s.rng.ExpFloat64() * s.mean
}

// FixedSampler always returns the same duration. Used for synthetic
// scenarios where exact timestamps must be predictable.
type FixedSampler struct {
	value float64
}

// NewFixedSampler creates a sampler returning value on every call.
func NewFixedSampler(value float64) (*FixedSampler, error) {
	if value < 0 {
		return nil, fmt.Errorf("%w: fixed duration must be >= 0, got %v", ErrInvalidParameter, value)
	}
	return &FixedSampler{value: value}, nil
}

// Sample returns the fixed duration.
func (s *FixedSampler) Sample() float64 {
	return s.value
}
