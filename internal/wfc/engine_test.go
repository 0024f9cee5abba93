package wfc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glidepath/worldgen/internal/mathx"
	"github.com/glidepath/worldgen/internal/noise"
	"github.com/glidepath/worldgen/internal/terrain"
)

const testChunkSize = 8

func newTestEngine(seed int64) *Engine {
	return NewEngine(
		terrain.NewRuleSet(),
		NewWorldState(),
		noise.NewGenerator(seed),
		testChunkSize,
		seed,
	)
}

func chunkRng(e *Engine, cc ChunkCoord) *rand.Rand {
	return rand.New(rand.NewSource(mathx.ChunkSeed(e.worldSeed, cc.X, cc.Z)))
}

func TestDirectionBetween(t *testing.T) {
	tests := []struct {
		name string
		src  Cell
		dst  Cell
		want terrain.Direction
		ok   bool
	}{
		{"east", Cell{0, 0}, Cell{1, 0}, terrain.East, true},
		{"west", Cell{0, 0}, Cell{-1, 0}, terrain.West, true},
		{"north", Cell{0, 0}, Cell{0, 1}, terrain.North, true},
		{"south", Cell{0, 0}, Cell{0, -1}, terrain.South, true},
		{"diagonal", Cell{0, 0}, Cell{1, 1}, 0, false},
		{"same cell", Cell{3, 3}, Cell{3, 3}, 0, false},
		{"distant", Cell{0, 0}, Cell{0, 5}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := DirectionBetween(tt.src, tt.dst)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, dir)
			}
		})
	}
}

func TestInitChunkGivesFullCatalog(t *testing.T) {
	e := newTestEngine(1)
	e.InitChunk(ChunkCoord{0, 0})

	for _, c := range e.chunkCells(ChunkCoord{0, 0}) {
		set, ok := e.state.PossibleAt(c)
		require.True(t, ok)
		assert.Equal(t, terrain.FullSet, set)
	}
}

func TestBiomeBiasNarrowsToKnownSubsets(t *testing.T) {
	e := newTestEngine(3)
	// Far from the origin so the ocean draw actually fires for some cells.
	cc := ChunkCoord{12, -9}
	e.InitChunk(cc)
	e.ApplyBiomeBias(cc, chunkRng(e, cc))

	valid := []terrain.KindSet{terrain.FullSet, oceanSubset, mountainSubset, urbanSubset}
	for _, c := range e.chunkCells(cc) {
		set, ok := e.state.PossibleAt(c)
		require.True(t, ok)
		assert.Contains(t, valid, set, "cell (%d,%d) narrowed to an unexpected subset", c.X, c.Z)
	}
}

func TestCollapseChunkResolvesEveryCell(t *testing.T) {
	e := newTestEngine(7)
	e.Generate(ChunkCoord{0, 0})

	for _, c := range e.chunkCells(ChunkCoord{0, 0}) {
		kind, ok := e.state.KindAt(c)
		require.True(t, ok, "cell (%d,%d) left unresolved", c.X, c.Z)
		assert.Less(t, int(kind), terrain.KindCount)

		set, ok := e.state.PossibleAt(c)
		require.True(t, ok)
		assert.Equal(t, 1, set.Count(), "resolved cell must hold exactly one possibility")
	}
	assert.Equal(t, testChunkSize*testChunkSize, e.state.ResolvedCount())
}

func TestAdjacencySoundnessAcrossChunks(t *testing.T) {
	e := newTestEngine(99)
	rules := e.rules

	for cx := -1; cx <= 1; cx++ {
		for cz := -1; cz <= 1; cz++ {
			e.Generate(ChunkCoord{cx, cz})
		}
	}

	lo := -testChunkSize
	hi := 2 * testChunkSize
	checked := 0
	for x := lo; x < hi; x++ {
		for z := lo; z < hi; z++ {
			c := Cell{x, z}
			kind, ok := e.state.KindAt(c)
			require.True(t, ok)
			if e.state.Forced(c) {
				continue
			}

			for _, n := range []Cell{{x + 1, z}, {x, z + 1}} {
				nk, ok := e.state.KindAt(n)
				if !ok || e.state.Forced(n) {
					continue
				}
				dir, _ := DirectionBetween(c, n)
				assert.True(t, rules.Allowed(kind, dir).Contains(nk),
					"(%d,%d)=%s borders (%d,%d)=%s toward %s", x, z, kind, n.X, n.Z, nk, dir)
				checked++
			}
		}
	}
	require.Greater(t, checked, 1000, "fuzz check barely exercised the grid")
}

func TestContradictionForcesFallback(t *testing.T) {
	e := newTestEngine(5)
	cc := ChunkCoord{0, 0}
	e.InitChunk(cc)

	// Drive one cell into a contradiction by hand.
	victim := Cell{3, 3}
	e.state.possible[victim] = 0

	cell, ok := e.selectLowestEntropy(cc)
	require.True(t, ok)
	assert.Equal(t, victim, cell, "the contradicted cell has entropy 1 and must win the scan")

	set, _ := e.state.PossibleAt(victim)
	assert.Equal(t, terrain.NewKindSet(terrain.Fallback), set)
	assert.True(t, e.state.Forced(victim))

	e.resolve(cell, chunkRng(e, cc))
	kind, resolved := e.state.KindAt(victim)
	require.True(t, resolved, "a contradiction must never leave a cell unresolved")
	assert.Equal(t, terrain.Fallback, kind)

	// The rest of the chunk still collapses to completion.
	e.CollapseChunk(cc, chunkRng(e, cc))
	assert.Equal(t, testChunkSize*testChunkSize, e.state.ResolvedCount())
}

func TestForcedCellsAlwaysFallback(t *testing.T) {
	e := newTestEngine(1234)
	for cx := 0; cx < 4; cx++ {
		for cz := 0; cz < 4; cz++ {
			e.Generate(ChunkCoord{cx, cz})
		}
	}

	for c, forced := range e.state.forced {
		if !forced {
			continue
		}
		kind, ok := e.state.KindAt(c)
		require.True(t, ok)
		assert.Equal(t, terrain.Fallback, kind)
	}
}

func TestWeightedSamplingFavorsCommonKinds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	counts := make(map[terrain.Kind]int)

	const draws = 10000
	for i := 0; i < draws; i++ {
		counts[weightedChoice(terrain.FullSet, rng)]++
	}

	for _, rare := range []terrain.Kind{terrain.Bridge, terrain.Airport, terrain.Landmark} {
		for _, common := range []terrain.Kind{terrain.Plains, terrain.HillsLow, terrain.Forest} {
			assert.Greater(t, counts[common], 10*counts[rare],
				"%s (weight 3.0) must dwarf %s (weight 0.1)", common, rare)
		}
		assert.Less(t, counts[rare], 200, "rare kind %s drawn too often", rare)
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, draws, total)
}

func TestGenerationIsDeterministicPerSeed(t *testing.T) {
	a := newTestEngine(2024)
	b := newTestEngine(2024)
	other := newTestEngine(2025)

	for _, cc := range []ChunkCoord{{0, 0}, {1, 0}, {-1, 2}} {
		a.Generate(cc)
		b.Generate(cc)
		other.Generate(cc)
	}

	same := true
	for c, kind := range a.state.resolved {
		got, ok := b.state.KindAt(c)
		require.True(t, ok, "cell (%d,%d) missing from twin world", c.X, c.Z)
		require.Equal(t, kind, got, "seeded worlds diverged at (%d,%d)", c.X, c.Z)

		if o, ok := other.state.KindAt(c); ok && o != kind {
			same = false
		}
	}
	assert.False(t, same, "a different seed should produce different terrain")
}

func TestLaterChunkRespectsFinishedNeighbor(t *testing.T) {
	e := newTestEngine(77)
	e.Generate(ChunkCoord{0, 0})
	firstPass := make(map[Cell]terrain.Kind)
	for c, k := range e.state.resolved {
		firstPass[c] = k
	}

	e.Generate(ChunkCoord{1, 0})

	// The finished chunk is never revisited.
	for c, k := range firstPass {
		got, _ := e.state.KindAt(c)
		assert.Equal(t, k, got, "generating a neighbor mutated finished cell (%d,%d)", c.X, c.Z)
	}

	// The shared border stays consistent.
	for z := 0; z < testChunkSize; z++ {
		left := Cell{testChunkSize - 1, z}
		right := Cell{testChunkSize, z}
		if e.state.Forced(left) || e.state.Forced(right) {
			continue
		}
		lk, _ := e.state.KindAt(left)
		rk, _ := e.state.KindAt(right)
		assert.True(t, e.rules.Allowed(lk, terrain.East).Contains(rk),
			"seam violation at z=%d: %s east of %s", z, rk, lk)
	}
}

func TestPropagateSkipsUninitializedChunks(t *testing.T) {
	e := newTestEngine(11)
	e.Generate(ChunkCoord{0, 0})

	// Cells of the untouched neighbor chunk must have no state at all.
	outside := Cell{testChunkSize + 2, 2}
	_, ok := e.state.PossibleAt(outside)
	assert.False(t, ok)
	_, ok = e.state.KindAt(outside)
	assert.False(t, ok)
}
