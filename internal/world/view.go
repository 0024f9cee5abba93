package world

import (
	"github.com/glidepath/worldgen/internal/terrain"
	"github.com/glidepath/worldgen/internal/wfc"
)

// CellView is the fixed renderer contract for one resolved cell: the kind
// plus the display hints needed to build visual geometry. Consumption of
// these hints is the renderer's business.
type CellView struct {
	Kind      string     `json:"kind"`
	Elevation float64    `json:"elevation"`
	Color     [3]float64 `json:"color"`
	Scale     [3]float64 `json:"scale"`
}

// ChunkView is one generated chunk in render order (row-major, x fastest).
type ChunkView struct {
	ChunkX int        `json:"chunk_x"`
	ChunkZ int        `json:"chunk_z"`
	Size   int        `json:"size"`
	Cells  []CellView `json:"cells"`
}

// ChunkView resolves a whole chunk for the renderer, generating it first if
// necessary.
func (s *Service) ChunkView(cc wfc.ChunkCoord) ChunkView {
	kinds := s.mgr.ChunkKinds(cc)

	cells := make([]CellView, 0, len(kinds))
	for _, kind := range kinds {
		tile := terrain.Lookup(kind)
		cells = append(cells, CellView{
			Kind:      kind.String(),
			Elevation: tile.Elevation,
			Color:     tile.Color,
			Scale:     tile.Scale,
		})
	}

	return ChunkView{ChunkX: cc.X, ChunkZ: cc.Z, Size: s.mgr.ChunkSize(), Cells: cells}
}
