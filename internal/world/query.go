package world

import (
	"github.com/glidepath/worldgen/internal/terrain"
	"github.com/glidepath/worldgen/internal/wfc"
)

// Effects is the derived terrain view consumed by physics and navigation
// collaborators.
type Effects struct {
	ThermalStrength   float64      `json:"thermal_strength"`
	WindResistance    float64      `json:"wind_resistance"`
	Elevation         float64      `json:"elevation"`
	PopulationDensity float64      `json:"population_density"`
	Kind              terrain.Kind `json:"-"`
	TerrainType       string       `json:"terrain_type"`
}

// Service is the terrain query interface exposed to collaborators. Every
// query path returns a resolved value: lookups against ungenerated chunks
// trigger synchronous generation, and a cell that is somehow unresolved
// falls back to the neutral kind.
type Service struct {
	mgr *Manager
}

// NewService wraps a chunk manager with the query surface.
func NewService(mgr *Manager) *Service {
	return &Service{mgr: mgr}
}

// Manager exposes the underlying chunk manager.
func (s *Service) Manager() *Manager {
	return s.mgr
}

// KindAt returns the resolved terrain kind at a world position, generating
// the owning chunk if needed.
func (s *Service) KindAt(x, z float64) terrain.Kind {
	if k, ok := s.mgr.ResolveCell(s.mgr.CellForWorld(x, z)); ok {
		return k
	}
	return terrain.Fallback
}

// ResolveAt returns the terrain kind and its full property record at a
// world position.
func (s *Service) ResolveAt(x, z float64) terrain.Tile {
	return terrain.Lookup(s.KindAt(x, z))
}

// EffectsAt returns the physics-facing terrain effects at a world position.
func (s *Service) EffectsAt(x, z float64) Effects {
	tile := s.ResolveAt(x, z)
	return Effects{
		ThermalStrength:   tile.ThermalStrength,
		WindResistance:    tile.WindResistance,
		Elevation:         tile.Elevation,
		PopulationDensity: tile.PopulationDensity,
		Kind:              tile.Kind,
		TerrainType:       tile.Kind.String(),
	}
}

// UpdateActive reports the viewer position for this tick and returns true if
// any chunk left the active set.
func (s *Service) UpdateActive(viewerX, viewerZ float64) bool {
	return len(s.mgr.UpdateActive(viewerX, viewerZ)) > 0
}

// ReleasedByMove is UpdateActive with the released chunk coordinates, for
// collaborators that tear down per-chunk rendering resources.
func (s *Service) ReleasedByMove(viewerX, viewerZ float64) []wfc.ChunkCoord {
	return s.mgr.UpdateActive(viewerX, viewerZ)
}
