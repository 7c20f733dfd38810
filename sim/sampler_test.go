package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExponentialSampler_InvalidMean(t *testing.T) {
	tests := []struct {
		name string
		mean float64
	}{
		{"zero mean", 0},
		{"negative mean", -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewExponentialSampler(tt.mean, rand.New(rand.NewSource(1)))
			assert.ErrorIs(t, err, ErrInvalidParameter)
			assert.Nil(t, s)
		})
	}
}

func TestExponentialSampler_SamplesAreNonNegative(t *testing.T) {
	s, err := NewExponentialSampler(5, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	for i := 0; i < 10000; i++ {
		assert.GreaterOrEqual(t, s.Sample(), 0.0)
	}
}

func TestExponentialSampler_SameSeed_SameSequence(t *testing.T) {
	a, _ := NewExponentialSampler(5, rand.New(rand.NewSource(7)))
	b, _ := NewExponentialSampler(5, rand.New(rand.NewSource(7)))

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Sample(), b.Sample(), "draw %d", i)
	}
}

func TestExponentialSampler_EmpiricalMean(t *testing.T) {
	const mean = 2.0
	s, _ := NewExponentialSampler(mean, rand.New(rand.NewSource(42)))

	sum := 0.0
	const n = 100000
	for i := 0; i < n; i++ {
		sum += s.Sample()
	}
	assert.InDelta(t, mean, sum/n, 0.1)
}

func TestNewFixedSampler(t *testing.T) {
	_, err := NewFixedSampler(-1)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	s, err := NewFixedSampler(3.5)
	require.NoError(t, err)
	assert.Equal(t, 3.5, s.Sample())
	assert.Equal(t, 3.5, s.Sample())
}
