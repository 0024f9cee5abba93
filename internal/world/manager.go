package world

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/glidepath/worldgen/internal/mathx"
	"github.com/glidepath/worldgen/internal/terrain"
	"github.com/glidepath/worldgen/internal/wfc"
)

// Manager owns the chunk lifecycle: world/cell/chunk coordinate mapping,
// lazy once-only generation, and active-set tracking around the viewer.
// Chunks that leave the active set are reported as release candidates for
// rendering resources only; collapsed terrain state is never reclaimed.
//
// The generation core is synchronous and single-threaded; the mutex only
// serializes callers (the HTTP surface is concurrent).
type Manager struct {
	mu         sync.Mutex
	engine     *wfc.Engine
	chunkSize  int
	cellSize   float64
	loadRadius int
	generated  map[wfc.ChunkCoord]bool
	active     map[wfc.ChunkCoord]bool
}

// NewManager creates a chunk manager. chunkSize is cells per chunk edge,
// cellSize the world-unit edge length of one cell, loadRadius the Chebyshev
// radius of chunks kept active around the viewer.
func NewManager(engine *wfc.Engine, chunkSize int, cellSize float64, loadRadius int) *Manager {
	log.Debug("creating chunk manager", "chunk_size", chunkSize, "cell_size", cellSize, "load_radius", loadRadius)
	return &Manager{
		engine:     engine,
		chunkSize:  chunkSize,
		cellSize:   cellSize,
		loadRadius: loadRadius,
		generated:  make(map[wfc.ChunkCoord]bool),
		active:     make(map[wfc.ChunkCoord]bool),
	}
}

// CellForWorld maps a world position to its cell.
func (m *Manager) CellForWorld(x, z float64) wfc.Cell {
	return wfc.Cell{
		X: int(math.Floor(x / m.cellSize)),
		Z: int(math.Floor(z / m.cellSize)),
	}
}

// ChunkForCell maps a cell to its owning chunk.
func (m *Manager) ChunkForCell(c wfc.Cell) wfc.ChunkCoord {
	return wfc.ChunkCoord{
		X: mathx.FloorDiv(c.X, m.chunkSize),
		Z: mathx.FloorDiv(c.Z, m.chunkSize),
	}
}

// ChunkForWorld maps a world position to its owning chunk.
func (m *Manager) ChunkForWorld(x, z float64) wfc.ChunkCoord {
	return m.ChunkForCell(m.CellForWorld(x, z))
}

// WorldForCell returns the world-space origin corner of a cell.
func (m *Manager) WorldForCell(c wfc.Cell) (x, z float64) {
	return float64(c.X) * m.cellSize, float64(c.Z) * m.cellSize
}

// EnsureChunk generates the chunk if it has not been generated yet and
// reports whether work was performed. Repeat requests are no-ops.
func (m *Manager) EnsureChunk(cc wfc.ChunkCoord) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ensureChunkLocked(cc)
}

func (m *Manager) ensureChunkLocked(cc wfc.ChunkCoord) bool {
	if m.generated[cc] {
		return false
	}
	m.engine.Generate(cc)
	m.generated[cc] = true
	return true
}

// UpdateActive recomputes the active set as the square of chunks within the
// load radius of the viewer's chunk, generating any missing chunk, and
// returns the chunks that fell out of the set - candidates for releasing
// rendering resources. Idempotent and safe to call every tick.
func (m *Manager) UpdateActive(viewerX, viewerZ float64) []wfc.ChunkCoord {
	m.mu.Lock()
	defer m.mu.Unlock()

	center := m.ChunkForWorld(viewerX, viewerZ)
	next := make(map[wfc.ChunkCoord]bool, (2*m.loadRadius+1)*(2*m.loadRadius+1))

	for dx := -m.loadRadius; dx <= m.loadRadius; dx++ {
		for dz := -m.loadRadius; dz <= m.loadRadius; dz++ {
			cc := wfc.ChunkCoord{X: center.X + dx, Z: center.Z + dz}
			next[cc] = true
			m.ensureChunkLocked(cc)
		}
	}

	var released []wfc.ChunkCoord
	for cc := range m.active {
		if !next[cc] {
			released = append(released, cc)
		}
	}

	m.active = next
	if len(released) > 0 {
		log.Debug("chunks left active set", "released", len(released), "active", len(next))
	}
	return released
}

// ResolveCell generates the cell's owning chunk if needed and returns the
// cell's kind. The state read happens under the manager lock; the engine and
// its maps are never touched without it.
func (m *Manager) ResolveCell(c wfc.Cell) (terrain.Kind, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureChunkLocked(m.ChunkForCell(c))
	return m.engine.State().KindAt(c)
}

// ChunkKinds returns the resolved kinds of a chunk in render order
// (row-major, x fastest), generating the chunk first if needed. The snapshot
// is taken under the manager lock so callers never read state concurrently
// with a collapse.
func (m *Manager) ChunkKinds(cc wfc.ChunkCoord) []terrain.Kind {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureChunkLocked(cc)

	state := m.engine.State()
	kinds := make([]terrain.Kind, 0, m.chunkSize*m.chunkSize)
	for lz := 0; lz < m.chunkSize; lz++ {
		for lx := 0; lx < m.chunkSize; lx++ {
			cell := wfc.Cell{X: cc.X*m.chunkSize + lx, Z: cc.Z*m.chunkSize + lz}
			k, ok := state.KindAt(cell)
			if !ok {
				k = terrain.Fallback
			}
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Generated reports whether a chunk has been generated.
func (m *Manager) Generated(cc wfc.ChunkCoord) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generated[cc]
}

// GeneratedCount returns the number of generated chunks.
func (m *Manager) GeneratedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.generated)
}

// ActiveCount returns the size of the current active set.
func (m *Manager) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.active)
}

// ChunkSize returns the cell edge count of a chunk.
func (m *Manager) ChunkSize() int {
	return m.chunkSize
}

// CellSize returns the world-unit edge length of one cell.
func (m *Manager) CellSize() float64 {
	return m.cellSize
}
