package sim

import "fmt"

// Config holds the parameters of a single simulation run.
type Config struct {
	NumEntities      int     // number of arrivals to generate (must be > 0)
	MeanInterarrival float64 // mean interarrival gap in minutes (must be > 0)
	MeanService      float64 // mean service duration in minutes (must be > 0)
	Servers          int     // number of service counters (must be > 0)
	Seed             int64   // master seed for the run's random sub-streams
}

// Validate checks the configuration before any event is scheduled. A run
// with an invalid configuration fails here, never partway through.
func (c Config) Validate() error {
	if c.NumEntities <= 0 {
		return fmt.Errorf("%w: number of entities must be > 0, got %d", ErrInvalidParameter, c.NumEntities)
	}
	if c.MeanInterarrival <= 0 {
		return fmt.Errorf("%w: mean interarrival must be > 0, got %v", ErrInvalidParameter, c.MeanInterarrival)
	}
	if c.MeanService <= 0 {
		return fmt.Errorf("%w: mean service must be > 0, got %v", ErrInvalidParameter, c.MeanService)
	}
	if c.Servers <= 0 {
		return fmt.Errorf("%w: servers must be > 0, got %d", ErrInvalidParameter, c.Servers)
	}
	return nil
}

// ArrivalRate returns the configured arrival rate λ in entities per minute.
func (c Config) ArrivalRate() float64 {
	return 1 / c.MeanInterarrival
}

// ServiceRate returns the per-counter service rate μ in entities per minute.
func (c Config) ServiceRate() float64 {
	return 1 / c.MeanService
}
