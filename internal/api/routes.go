package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func SetupRoutes(handler *Handler) *chi.Mux {
	r := chi.NewRouter()

	for _, middleware := range SetupMiddleware() {
		r.Use(middleware)
	}

	// JSON content type
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// Health check endpoint
	r.Get("/health", handler.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		// Static catalog
		r.Get("/terrain/types", handler.GetTerrainTypes)

		// Point queries (lazily generate the owning chunk)
		r.Get("/terrain/resolve", handler.ResolveTerrain)
		r.Get("/terrain/effects", handler.GetEffects)

		// Viewer tick: recompute the active chunk set
		r.Post("/viewer", handler.UpdateViewer)

		// Renderer and navigation views per chunk
		r.Get("/chunks/{x}/{z}", handler.GetChunk)
		r.Get("/chunks/{x}/{z}/corridors", handler.GetCorridors)
	})

	return r
}
