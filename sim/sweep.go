package sim

import "fmt"

// SweepPoint pairs a server count with the outcome of its independent run.
type SweepPoint struct {
	Servers int
	Result  *RunResult
	Summary *Summary
}

// RunSweep executes one independent simulation per server count, holding the
// other parameters of base fixed. Each point owns a fresh Simulator,
// ServerPool and a master seed derived from base.Seed and the replication
// index, so points never share state and the whole sweep is reproducible
// from base.Seed alone.
func RunSweep(base Config, serverCounts []int) ([]SweepPoint, error) {
	if len(serverCounts) == 0 {
		return nil, fmt.Errorf("%w: sweep needs at least one server count", ErrInvalidParameter)
	}

	points := make([]SweepPoint, 0, len(serverCounts))
	for i, servers := range serverCounts {
		cfg := base
		cfg.Servers = servers
		cfg.Seed = DeriveSeed(NewSimulationKey(base.Seed), SubsystemReplication(i))

		res, err := Run(cfg)
		if err != nil {
			return nil, fmt.Errorf("sweep point %d (servers=%d): %w", i, servers, err)
		}
		sum, err := Summarize(res, servers)
		if err != nil {
			return nil, fmt.Errorf("sweep point %d (servers=%d): %w", i, servers, err)
		}
		points = append(points, SweepPoint{Servers: servers, Result: res, Summary: sum})
	}
	return points, nil
}
