package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/glidepath/worldgen/internal/corridor"
	"github.com/glidepath/worldgen/internal/logging"
	"github.com/glidepath/worldgen/internal/terrain"
	"github.com/glidepath/worldgen/internal/wfc"
	"github.com/glidepath/worldgen/internal/world"
)

type Handler struct {
	terrain   *world.Service
	corridors *corridor.Service
}

func NewHandler(terrainService *world.Service, corridorService *corridor.Service) *Handler {
	return &Handler{
		terrain:   terrainService,
		corridors: corridorService,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "worldgen",
		"chunks":    h.terrain.Manager().GeneratedCount(),
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response)
}

// terrainTypeInfo is the catalog entry shape served to collaborators.
type terrainTypeInfo struct {
	Kind              string     `json:"kind"`
	Elevation         float64    `json:"elevation"`
	PopulationDensity float64    `json:"population_density"`
	ThermalStrength   float64    `json:"thermal_strength"`
	WindResistance    float64    `json:"wind_resistance"`
	LandmarkWeight    float64    `json:"landmark_weight"`
	Color             [3]float64 `json:"color"`
	Scale             [3]float64 `json:"scale"`
}

func (h *Handler) GetTerrainTypes(w http.ResponseWriter, r *http.Request) {
	kinds := terrain.Kinds()
	types := make([]terrainTypeInfo, 0, len(kinds))
	for _, k := range kinds {
		tile := terrain.Lookup(k)
		types = append(types, terrainTypeInfo{
			Kind:              k.String(),
			Elevation:         tile.Elevation,
			PopulationDensity: tile.PopulationDensity,
			ThermalStrength:   tile.ThermalStrength,
			WindResistance:    tile.WindResistance,
			LandmarkWeight:    tile.LandmarkWeight,
			Color:             tile.Color,
			Scale:             tile.Scale,
		})
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, types)
}

func (h *Handler) ResolveTerrain(w http.ResponseWriter, r *http.Request) {
	x, z, err := worldCoords(r)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid world coordinates", err)
		return
	}

	tile := h.terrain.ResolveAt(x, z)
	logging.WithWorldCoords(x, z).Debug("terrain resolved", "kind", tile.Kind.String())

	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{
		"kind":      tile.Kind.String(),
		"elevation": tile.Elevation,
		"color":     tile.Color,
		"scale":     tile.Scale,
	})
}

func (h *Handler) GetEffects(w http.ResponseWriter, r *http.Request) {
	x, z, err := worldCoords(r)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid world coordinates", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.terrain.EffectsAt(x, z))
}

func (h *Handler) UpdateViewer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		X float64 `json:"x"`
		Z float64 `json:"z"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	released := h.terrain.ReleasedByMove(req.X, req.Z)
	releasedViews := make([]map[string]int, 0, len(released))
	for _, cc := range released {
		releasedViews = append(releasedViews, map[string]int{"x": cc.X, "z": cc.Z})
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{
		"changed":  len(released) > 0,
		"released": releasedViews,
		"active":   h.terrain.Manager().ActiveCount(),
	})
}

func (h *Handler) GetChunk(w http.ResponseWriter, r *http.Request) {
	cc, err := chunkCoord(r)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid chunk coordinates", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.terrain.ChunkView(cc))
}

func (h *Handler) GetCorridors(w http.ResponseWriter, r *http.Request) {
	cc, err := chunkCoord(r)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid chunk coordinates", err)
		return
	}

	corridors := h.corridors.CorridorsFor(cc)
	if corridors == nil {
		corridors = []corridor.Corridor{}
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, corridors)
}

func worldCoords(r *http.Request) (float64, float64, error) {
	x, err := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	if err != nil {
		return 0, 0, err
	}
	z, err := strconv.ParseFloat(r.URL.Query().Get("z"), 64)
	if err != nil {
		return 0, 0, err
	}
	return x, z, nil
}

func chunkCoord(r *http.Request) (wfc.ChunkCoord, error) {
	x, err := strconv.Atoi(chi.URLParam(r, "x"))
	if err != nil {
		return wfc.ChunkCoord{}, err
	}
	z, err := strconv.Atoi(chi.URLParam(r, "z"))
	if err != nil {
		return wfc.ChunkCoord{}, err
	}
	return wfc.ChunkCoord{X: x, Z: z}, nil
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		log.Error(message, "error", err, "path", r.URL.Path)
	}

	render.Status(r, status)
	render.JSON(w, r, map[string]interface{}{
		"error": message,
	})
}
