package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/glidepath/worldgen/internal/api"
	"github.com/glidepath/worldgen/internal/config"
	"github.com/glidepath/worldgen/internal/corridor"
	"github.com/glidepath/worldgen/internal/logging"
	"github.com/glidepath/worldgen/internal/noise"
	"github.com/glidepath/worldgen/internal/terrain"
	"github.com/glidepath/worldgen/internal/wfc"
	"github.com/glidepath/worldgen/internal/world"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", "error", err)
	}

	// Setup logging
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	log.Debug("Configuration loaded", "server_port", cfg.Server.Port, "chunk_size", cfg.World.ChunkSize, "load_radius", cfg.World.LoadRadius, "seed", cfg.World.Seed)

	// Build the adjacency relation and check its invariants before any
	// generation can rely on it
	rules := terrain.NewRuleSet()
	if err := rules.Validate(); err != nil {
		log.Fatal("Adjacency rules are inconsistent", "error", err)
	}
	log.Debug("Adjacency rules validated")

	// Wire the generation core
	biome := noise.NewGenerator(cfg.World.Seed)
	engine := wfc.NewEngine(rules, wfc.NewWorldState(), biome, cfg.World.ChunkSize, cfg.World.Seed)
	manager := world.NewManager(engine, cfg.World.ChunkSize, cfg.World.CellSize, cfg.World.LoadRadius)
	terrainService := world.NewService(manager)
	corridorService := corridor.NewService(terrainService)
	log.Info("World initialized", "seed", cfg.World.Seed, "chunk_size", cfg.World.ChunkSize, "cell_size", cfg.World.CellSize)

	// Initialize API handlers
	handler := api.NewHandler(terrainService, corridorService)
	router := api.SetupRoutes(handler)
	log.Debug("API routes configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Starting worldgen server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info("Shutting down server...", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Server exited", "chunks_generated", manager.GeneratedCount())
}
