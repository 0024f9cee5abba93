// Package logging configures the process-wide charmbracelet logger and
// provides contextual helpers used by the generation hot paths.
package logging

import (
	"github.com/charmbracelet/log"
)

// Setup configures the default logger from the logging config values.
func Setup(level, format string) {
	switch level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn", "warning":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.Warn("Invalid log level, using info", "level", level)
		log.SetLevel(log.InfoLevel)
	}

	if format == "pretty" {
		log.SetReportCaller(true)
		log.SetReportTimestamp(true)
	}

	log.SetPrefix("[worldgen] ")
}

// WithChunkCoords returns a logger with chunk coordinate context.
func WithChunkCoords(chunkX, chunkZ int) *log.Logger {
	return log.With("chunk_x", chunkX, "chunk_z", chunkZ)
}

// WithWorldCoords returns a logger with world coordinate context.
func WithWorldCoords(x, z float64) *log.Logger {
	return log.With("x", x, "z", z)
}
