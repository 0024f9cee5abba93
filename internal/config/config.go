package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig
	World   WorldConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// WorldConfig tunes terrain generation. It is loaded from a yaml file so the
// world shape can be versioned alongside the code; every field has a sane
// default when the file is absent.
type WorldConfig struct {
	// ChunkSize is the cell edge count of one chunk.
	ChunkSize int `yaml:"chunk_size"`
	// CellSize is the world-unit edge length of one cell.
	CellSize float64 `yaml:"cell_size"`
	// LoadRadius is the Chebyshev chunk radius kept active around the viewer.
	LoadRadius int `yaml:"load_radius"`
	// Seed roots all generation randomness; worlds with equal seeds and
	// generation order are identical.
	Seed int64 `yaml:"seed"`
}

type LoggingConfig struct {
	Level  string
	Format string
}

// DefaultWorld returns the world tuning used when no file is configured.
func DefaultWorld() WorldConfig {
	return WorldConfig{
		ChunkSize:  32,
		CellSize:   10.0,
		LoadRadius: 3,
		Seed:       1,
	}
}

// Load reads server and logging configuration from the environment, and
// world tuning from the yaml file named by WORLD_CONFIG when set.
func Load() (*Config, error) {
	world := DefaultWorld()
	if path := os.Getenv("WORLD_CONFIG"); path != "" {
		w, err := LoadWorld(path)
		if err != nil {
			return nil, err
		}
		world = w
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnvStr("PORT", "8080"),
			ReadTimeout:     getEnvDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     getEnvDuration("IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		World: world,
		Logging: LoggingConfig{
			Level:  getEnvStr("LOG_LEVEL", "info"),
			Format: getEnvStr("LOG_FORMAT", "json"),
		},
	}, nil
}

// LoadWorld parses a world tuning file. Unset fields keep their defaults.
func LoadWorld(path string) (WorldConfig, error) {
	w := DefaultWorld()
	raw, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("world config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return w, fmt.Errorf("world config %s: %w", path, err)
	}
	if w.ChunkSize <= 0 {
		return w, fmt.Errorf("world config %s: chunk_size must be positive", path)
	}
	if w.CellSize <= 0 {
		return w, fmt.Errorf("world config %s: cell_size must be positive", path)
	}
	if w.LoadRadius < 0 {
		return w, fmt.Errorf("world config %s: load_radius must not be negative", path)
	}
	return w, nil
}

func getEnvStr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
