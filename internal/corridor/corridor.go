// Package corridor derives flight corridors and airspace advisories from
// resolved terrain, for navigation collaborators.
package corridor

import (
	"sync"

	"github.com/glidepath/worldgen/internal/logging"
	"github.com/glidepath/worldgen/internal/terrain"
	"github.com/glidepath/worldgen/internal/wfc"
	"github.com/glidepath/worldgen/internal/world"
)

// Corridor types.
const (
	TypeHighAltitude = "high_altitude"
	TypeApproach     = "approach"
	TypeScenic       = "scenic"
)

// Airspace warnings.
const (
	WarnLowAltitude    = "LOW_ALTITUDE_WARNING"
	WarnAirport        = "AIRPORT_AIRSPACE"
	WarnUrbanFlyover   = "URBAN_FLYOVER_RESTRICTION"
	WarnMountainWave   = "MOUNTAIN_WAVE_TURBULENCE"
	minClearanceMeters = 20.0
)

// Corridor is one advisory flight lane anchored over a terrain sample.
type Corridor struct {
	X           float64 `json:"x"`
	Z           float64 `json:"z"`
	Altitude    float64 `json:"altitude"`
	Type        string  `json:"type"`
	MinAltitude float64 `json:"min_altitude"`
	MaxAltitude float64 `json:"max_altitude"`
	Width       float64 `json:"width"`
}

// Service computes corridors lazily per chunk and answers point advisories.
type Service struct {
	terrain *world.Service

	mu        sync.Mutex
	corridors map[wfc.ChunkCoord][]Corridor
}

// NewService creates a corridor service over the terrain query surface.
func NewService(t *world.Service) *Service {
	return &Service{
		terrain:   t,
		corridors: make(map[wfc.ChunkCoord][]Corridor),
	}
}

// CorridorsFor returns the corridors of a chunk, generating terrain and
// corridors on first request. Every 4th cell is sampled: dense urban and
// landmark tiles anchor high-altitude lanes, airports anchor approach lanes,
// water anchors low scenic routes. The lock is held across the build, so a
// chunk's corridors are computed exactly once.
func (s *Service) CorridorsFor(cc wfc.ChunkCoord) []Corridor {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cs, ok := s.corridors[cc]; ok {
		return cs
	}

	mgr := s.terrain.Manager()
	size := mgr.ChunkSize()
	cellSize := mgr.CellSize()

	var out []Corridor
	for lx := 0; lx < size; lx += 4 {
		for lz := 0; lz < size; lz += 4 {
			worldX := float64(cc.X*size+lx) * cellSize
			worldZ := float64(cc.Z*size+lz) * cellSize
			tile := s.terrain.ResolveAt(worldX, worldZ)

			switch tile.Kind {
			case terrain.UrbanHigh, terrain.Landmark:
				out = append(out, Corridor{
					X: worldX, Z: worldZ,
					Altitude:    tile.Elevation + 100,
					Type:        TypeHighAltitude,
					MinAltitude: tile.Elevation + 80,
					MaxAltitude: tile.Elevation + 200,
					Width:       50,
				})
			case terrain.Airport:
				out = append(out, Corridor{
					X: worldX, Z: worldZ,
					Altitude:    tile.Elevation + 20,
					Type:        TypeApproach,
					MinAltitude: tile.Elevation + 5,
					MaxAltitude: tile.Elevation + 50,
					Width:       30,
				})
			case terrain.WaterDeep, terrain.WaterShallow:
				out = append(out, Corridor{
					X: worldX, Z: worldZ,
					Altitude:    tile.Elevation + 30,
					Type:        TypeScenic,
					MinAltitude: tile.Elevation + 10,
					MaxAltitude: tile.Elevation + 60,
					Width:       40,
				})
			}
		}
	}

	s.corridors[cc] = out
	logging.WithChunkCoords(cc.X, cc.Z).Debug("corridors generated", "count", len(out))
	return out
}

// RecommendedAltitude returns the advisory cruise altitude over a position.
func (s *Service) RecommendedAltitude(x, z float64) float64 {
	tile := s.terrain.ResolveAt(x, z)

	switch tile.Kind {
	case terrain.Mountains:
		return tile.Elevation + 150
	case terrain.UrbanHigh, terrain.Landmark:
		return tile.Elevation + 100
	case terrain.HillsHigh, terrain.UrbanMed:
		return tile.Elevation + 80
	case terrain.WaterDeep, terrain.WaterShallow:
		return tile.Elevation + 30
	default:
		return tile.Elevation + 50
	}
}

// Warnings returns the airspace restrictions active at a 3D position.
func (s *Service) Warnings(x, y, z float64) []string {
	tile := s.terrain.ResolveAt(x, z)

	var warnings []string
	if y < tile.Elevation+minClearanceMeters {
		warnings = append(warnings, WarnLowAltitude)
	}

	switch tile.Kind {
	case terrain.Airport:
		if y > 10 && y < 100 {
			warnings = append(warnings, WarnAirport)
		}
	case terrain.UrbanHigh:
		if y < tile.Elevation+50 {
			warnings = append(warnings, WarnUrbanFlyover)
		}
	case terrain.Mountains:
		if y < tile.Elevation+100 {
			warnings = append(warnings, WarnMountainWave)
		}
	}

	return warnings
}
