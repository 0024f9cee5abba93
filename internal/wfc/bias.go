package wfc

import (
	"math"
	"math/rand"

	"github.com/glidepath/worldgen/internal/terrain"
)

// Biome subsets a cell can be narrowed to before collapse. Bias trends per
// chunk while the per-cell draws keep variety inside the chunk.
var (
	oceanSubset = terrain.NewKindSet(
		terrain.WaterDeep, terrain.WaterShallow, terrain.Beach, terrain.Bridge,
	)
	mountainSubset = terrain.NewKindSet(
		terrain.HillsHigh, terrain.Mountains, terrain.Forest, terrain.Landmark,
	)
	urbanSubset = terrain.NewKindSet(
		terrain.Plains, terrain.UrbanLow, terrain.UrbanMed,
		terrain.UrbanHigh, terrain.Airport, terrain.Landmark,
	)
)

const biomeNoiseScale = 0.1

// ApplyBiomeBias narrows the chunk's possibility sets using smooth functions
// of the chunk coordinates: ocean probability grows with distance from the
// origin, mountain probability follows the biome noise field, urban
// probability decays with distance. Cells that dodge every draw keep the
// full catalog.
func (e *Engine) ApplyBiomeBias(cc ChunkCoord, rng *rand.Rand) {
	distance := math.Hypot(float64(cc.X), float64(cc.Z))

	oceanProbability := math.Min(0.8, distance*0.05)
	mountainProbability := math.Max(0, e.biome.GetBiomeNoise(cc.X, cc.Z, biomeNoiseScale)) * 0.3
	urbanProbability := math.Max(0.1, 0.6-distance*0.02)

	for _, c := range e.chunkCells(cc) {
		if _, ok := e.state.resolved[c]; ok {
			continue
		}
		set := e.state.possible[c]

		switch {
		case rng.Float64() < oceanProbability:
			set = set.Intersect(oceanSubset)
		case rng.Float64() < mountainProbability:
			set = set.Intersect(mountainSubset)
		case rng.Float64() < urbanProbability:
			set = set.Intersect(urbanSubset)
		}

		e.state.possible[c] = set
	}
}
