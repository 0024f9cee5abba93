package noise

import (
	"github.com/aquilax/go-perlin"
)

// GeneratorInterface defines the interface for noise generation operations.
// This enables dependency injection and makes the bias layer easily testable.
type GeneratorInterface interface {
	GetNoise(x, z float64) float64
	GetBiomeNoise(chunkX, chunkZ int, scale float64) float64
	GetSeed() int64
}

// Generator implements the GeneratorInterface using Perlin noise.
type Generator struct {
	noise *perlin.Perlin
	seed  int64
}

// NewGenerator creates a new noise generator with the given seed.
func NewGenerator(seed int64) GeneratorInterface {
	// alpha=2, beta=2, n=3 gives good terrain-like noise
	return &Generator{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		seed:  seed,
	}
}

// GetNoise returns a noise value between -1 and 1 for the given coordinates.
func (g *Generator) GetNoise(x, z float64) float64 {
	return g.noise.Noise2D(x, z)
}

// GetBiomeNoise returns smooth noise over chunk coordinates. Scale controls
// how quickly biomes drift between neighboring chunks - smaller values give
// larger coherent regions.
func (g *Generator) GetBiomeNoise(chunkX, chunkZ int, scale float64) float64 {
	return g.GetNoise(float64(chunkX)*scale, float64(chunkZ)*scale)
}

// GetSeed returns the current seed.
func (g *Generator) GetSeed() int64 {
	return g.seed
}
