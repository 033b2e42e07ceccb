// Package config provides environment-variable configuration for the flp
// toolkit's non-core layers. The core parser/serializer package takes no
// configuration of its own — it is a pure function of its input bytes.
//
// All values are loaded from environment variables with sensible defaults,
// following a flat, env-var-first convention (FLP_* variables).
package config

import (
	"os"
	"strconv"
)

// Config holds the settings shared by the catalog indexer and the HTTP
// inspection service.
type Config struct {
	// CatalogPath is the SQLite database file the catalog indexer writes
	// to and the HTTP inspector reads from.
	// Environment: FLP_CATALOG_PATH
	// Default: "./flp-catalog.db"
	CatalogPath string

	// ListenAddr is the address the HTTP inspector binds to.
	// Environment: FLP_LISTEN_ADDR
	// Default: ":8090"
	ListenAddr string

	// LogLevel is the minimum log level, one of TRACE/DEBUG/INFO/WARN/ERROR.
	// Environment: FLP_LOG_LEVEL
	// Default: "INFO"
	LogLevel string

	// MaxScanDepth bounds how many directory levels the indexer descends
	// when scanning for .flp files.
	// Environment: FLP_MAX_SCAN_DEPTH
	// Default: 16
	MaxScanDepth int
}

// Load builds a Config from environment variables, falling back to
// defaults for anything unset.
func Load() Config {
	return Config{
		CatalogPath:  getString("FLP_CATALOG_PATH", "./flp-catalog.db"),
		ListenAddr:   getString("FLP_LISTEN_ADDR", ":8090"),
		LogLevel:     getString("FLP_LOG_LEVEL", "INFO"),
		MaxScanDepth: getInt("FLP_MAX_SCAN_DEPTH", 16),
	}
}

func getString(env, def string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

func getInt(env string, def int) int {
	v := os.Getenv(env)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
