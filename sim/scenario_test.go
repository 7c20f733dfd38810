package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_SingleRun(t *testing.T) {
	path := writeScenario(t, `
num_entities: 200
mean_interarrival: 4
mean_service: 5
servers: 2
seed: 42
`)

	sc, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, Config{
		NumEntities:      200,
		MeanInterarrival: 4,
		MeanService:      5,
		Servers:          2,
		Seed:             42,
	}, sc.Config())
	assert.Empty(t, sc.SweepServers)
}

func TestLoadScenario_WithSweep(t *testing.T) {
	path := writeScenario(t, `
num_entities: 100
mean_interarrival: 4
mean_service: 5
servers: 1
seed: 7
sweep_servers: [1, 2, 3, 5]
`)

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 5}, sc.SweepServers)
}

func TestLoadScenario_InvalidParameters(t *testing.T) {
	path := writeScenario(t, `
num_entities: 0
mean_interarrival: 4
mean_service: 5
servers: 2
`)

	_, err := LoadScenario(path)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestLoadScenario_NegativeSweepCount(t *testing.T) {
	path := writeScenario(t, `
num_entities: 10
mean_interarrival: 4
mean_service: 5
servers: 2
sweep_servers: [2, -1]
`)

	_, err := LoadScenario(path)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := writeScenario(t, "num_entities: [not a number")
	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
