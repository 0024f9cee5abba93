package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{name: "positive seed", seed: 12345},
		{name: "zero seed", seed: 0},
		{name: "negative seed", seed: -9876},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := NewGenerator(tt.seed)
			require.NotNil(t, generator)
			assert.Equal(t, tt.seed, generator.GetSeed())
		})
	}
}

func TestGetNoiseRange(t *testing.T) {
	generator := NewGenerator(42)

	for x := -20; x <= 20; x += 3 {
		for z := -20; z <= 20; z += 3 {
			v := generator.GetNoise(float64(x)*0.37, float64(z)*0.41)
			assert.GreaterOrEqual(t, v, -1.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestNoiseIsDeterministicPerSeed(t *testing.T) {
	a := NewGenerator(7)
	b := NewGenerator(7)
	c := NewGenerator(8)

	assert.Equal(t, a.GetBiomeNoise(5, -3, 0.1), b.GetBiomeNoise(5, -3, 0.1))

	same := true
	for i := 0; i < 16 && same; i++ {
		same = a.GetBiomeNoise(i, i+1, 0.1) == c.GetBiomeNoise(i, i+1, 0.1)
	}
	assert.False(t, same, "different seeds should diverge somewhere")
}
