package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the top-level YAML scenario configuration.
// Loaded from a file via LoadScenario(path).
type Scenario struct {
	NumEntities      int     `yaml:"num_entities"`
	MeanInterarrival float64 `yaml:"mean_interarrival"`
	MeanService      float64 `yaml:"mean_service"`
	Servers          int     `yaml:"servers"`
	Seed             int64   `yaml:"seed"`

	// SweepServers lists server counts for a scenario sweep. Empty for a
	// single run.
	SweepServers []int `yaml:"sweep_servers,omitempty"`
}

// Config returns the single-run configuration of the scenario. For a sweep,
// Servers is the base value overridden per point.
func (sc *Scenario) Config() Config {
	return Config{
		NumEntities:      sc.NumEntities,
		MeanInterarrival: sc.MeanInterarrival,
		MeanService:      sc.MeanService,
		Servers:          sc.Servers,
		Seed:             sc.Seed,
	}
}

// LoadScenario reads and validates a YAML scenario file. The run parameters
// are validated here so an invalid scenario fails before any simulation
// state exists.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}

	if err := sc.Config().Validate(); err != nil {
		return nil, fmt.Errorf("scenario file %s: %w", path, err)
	}
	for _, c := range sc.SweepServers {
		if c <= 0 {
			return nil, fmt.Errorf("%w: sweep server count must be > 0, got %d", ErrInvalidParameter, c)
		}
	}
	return &sc, nil
}
