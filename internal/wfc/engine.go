package wfc

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/glidepath/worldgen/internal/mathx"
	"github.com/glidepath/worldgen/internal/noise"
	"github.com/glidepath/worldgen/internal/terrain"
)

// ChunkCoord identifies one chunk on the chunk grid.
type ChunkCoord struct {
	X int
	Z int
}

type propagationPair struct {
	src Cell
	dst Cell
}

// Engine drives wave function collapse over a WorldState. All work is
// synchronous: Generate runs a chunk's bias and collapse pipeline to
// completion within the call. The engine holds no locks; callers serialize
// access.
type Engine struct {
	rules     *terrain.RuleSet
	state     *WorldState
	biome     noise.GeneratorInterface
	chunkSize int
	worldSeed int64
	queue     []propagationPair
}

// NewEngine creates a collapse engine over the given state. chunkSize is the
// cell edge count of a chunk; worldSeed roots the per-chunk rng derivation.
func NewEngine(rules *terrain.RuleSet, state *WorldState, biome noise.GeneratorInterface, chunkSize int, worldSeed int64) *Engine {
	return &Engine{
		rules:     rules,
		state:     state,
		biome:     biome,
		chunkSize: chunkSize,
		worldSeed: worldSeed,
	}
}

// State exposes the owned world state for read access by collaborators.
func (e *Engine) State() *WorldState {
	return e.state
}

// Generate runs the full pipeline for one chunk: initialize possibility
// sets, narrow by biome bias, then collapse every cell. The chunk rng is
// derived from the world seed and the chunk coordinates, so a fixed seed and
// generation order reproduce the same terrain.
func (e *Engine) Generate(cc ChunkCoord) {
	start := time.Now()
	rng := rand.New(rand.NewSource(mathx.ChunkSeed(e.worldSeed, cc.X, cc.Z)))

	e.InitChunk(cc)
	e.ApplyBiomeBias(cc, rng)
	e.CollapseChunk(cc, rng)

	log.Debug("chunk collapsed", "chunk_x", cc.X, "chunk_z", cc.Z, "duration", time.Since(start))
}

// InitChunk gives every cell of the chunk the full-catalog possibility set.
func (e *Engine) InitChunk(cc ChunkCoord) {
	for _, c := range e.chunkCells(cc) {
		if _, ok := e.state.resolved[c]; ok {
			continue
		}
		e.state.possible[c] = terrain.FullSet
	}
}

// CollapseChunk resolves every cell in the chunk. It first narrows the
// chunk's border against resolved cells of neighboring chunks (reading them,
// never mutating them), then repeatedly resolves the lowest-entropy cell and
// propagates until no unresolved cell remains.
func (e *Engine) CollapseChunk(cc ChunkCoord, rng *rand.Rand) {
	e.seedBoundary(cc)
	e.propagate()

	for {
		cell, ok := e.selectLowestEntropy(cc)
		if !ok {
			break
		}
		e.resolve(cell, rng)
		e.propagate()
	}
}

// seedBoundary enqueues constraint pairs from already-resolved cells just
// outside the chunk border toward the chunk's own border cells, so a chunk
// generated later stays consistent with its finished neighbors.
func (e *Engine) seedBoundary(cc ChunkCoord) {
	for _, c := range e.chunkCells(cc) {
		for _, n := range c.Neighbors() {
			if e.cellChunk(n) == cc {
				continue
			}
			if _, ok := e.state.resolved[n]; ok {
				e.queue = append(e.queue, propagationPair{src: n, dst: c})
			}
		}
	}
}

// selectLowestEntropy scans the chunk in a deterministic order and returns
// the unresolved cell with the fewest remaining possibilities, first match
// on ties. A contradicted cell (empty set) is force-reset to the fallback
// kind instead of triggering backtracking; this guarantees termination at
// the cost of local plausibility.
func (e *Engine) selectLowestEntropy(cc ChunkCoord) (Cell, bool) {
	minEntropy := terrain.KindCount + 1
	var minCell Cell
	found := false

	for _, c := range e.chunkCells(cc) {
		if _, ok := e.state.resolved[c]; ok {
			continue
		}
		set := e.state.possible[c]
		entropy := set.Count()

		if entropy == 0 {
			log.Warn("contradiction, forcing fallback kind", "x", c.X, "z", c.Z, "fallback", terrain.Fallback)
			e.state.possible[c] = terrain.NewKindSet(terrain.Fallback)
			e.state.forced[c] = true
			entropy = 1
		}

		if entropy < minEntropy {
			minEntropy = entropy
			minCell = c
			found = true
		}
	}

	return minCell, found
}

// resolve collapses a cell to one kind. A single remaining possibility is
// taken directly; otherwise the choice is weighted by the catalog sampling
// weights. The cell's unresolved neighbors are enqueued for propagation.
func (e *Engine) resolve(c Cell, rng *rand.Rand) {
	set := e.state.possible[c]

	var kind terrain.Kind
	if single, ok := set.Single(); ok {
		kind = single
	} else if set.Empty() {
		kind = terrain.Fallback
		e.state.forced[c] = true
	} else {
		kind = weightedChoice(set, rng)
	}

	e.state.setResolved(c, kind)

	for _, n := range c.Neighbors() {
		if _, ok := e.state.resolved[n]; !ok {
			e.queue = append(e.queue, propagationPair{src: c, dst: n})
		}
	}
}

// weightedChoice samples one kind from the set using catalog weights.
func weightedChoice(set terrain.KindSet, rng *rand.Rand) terrain.Kind {
	kinds := set.Kinds()
	total := 0.0
	for _, k := range kinds {
		total += terrain.Lookup(k).Weight
	}

	r := rng.Float64() * total
	for _, k := range kinds {
		r -= terrain.Lookup(k).Weight
		if r < 0 {
			return k
		}
	}
	return kinds[len(kinds)-1]
}

// propagate drains the constraint queue breadth-first. Each pair narrows the
// target's possibility set against the adjacency rules of the source; a
// strict shrink re-enqueues the target's own unresolved neighbors. Resolved
// targets, non-cardinal pairs and cells of uninitialized chunks are skipped.
func (e *Engine) propagate() {
	for len(e.queue) > 0 {
		p := e.queue[0]
		e.queue = e.queue[1:]

		if _, ok := e.state.resolved[p.dst]; ok {
			continue
		}
		dir, ok := DirectionBetween(p.src, p.dst)
		if !ok {
			continue
		}

		allowed := e.allowedFrom(p.src, dir)
		old, ok := e.state.possible[p.dst]
		if !ok {
			// Chunk not initialized yet; it will be narrowed against its
			// resolved neighbors when its own collapse starts.
			continue
		}

		next := old.Intersect(allowed)
		if next == old {
			continue
		}
		e.state.possible[p.dst] = next

		for _, n := range p.dst.Neighbors() {
			if n == p.src {
				continue
			}
			if _, ok := e.state.resolved[n]; !ok {
				e.queue = append(e.queue, propagationPair{src: p.dst, dst: n})
			}
		}
	}
}

// allowedFrom returns the kinds the source cell permits toward dir. For a
// resolved source that is its kind's rule row; for an unresolved source the
// union over its remaining possibilities.
func (e *Engine) allowedFrom(src Cell, dir terrain.Direction) terrain.KindSet {
	if k, ok := e.state.resolved[src]; ok {
		return e.rules.Allowed(k, dir)
	}

	var allowed terrain.KindSet
	if set, ok := e.state.possible[src]; ok {
		for _, k := range set.Kinds() {
			allowed |= e.rules.Allowed(k, dir)
		}
	}
	return allowed
}

// chunkCells lists the chunk's cells in deterministic x-then-z order.
func (e *Engine) chunkCells(cc ChunkCoord) []Cell {
	cells := make([]Cell, 0, e.chunkSize*e.chunkSize)
	for lx := 0; lx < e.chunkSize; lx++ {
		for lz := 0; lz < e.chunkSize; lz++ {
			cells = append(cells, Cell{
				X: cc.X*e.chunkSize + lx,
				Z: cc.Z*e.chunkSize + lz,
			})
		}
	}
	return cells
}

// cellChunk maps a cell to its owning chunk with floor division.
func (e *Engine) cellChunk(c Cell) ChunkCoord {
	return ChunkCoord{
		X: mathx.FloorDiv(c.X, e.chunkSize),
		Z: mathx.FloorDiv(c.Z, e.chunkSize),
	}
}
