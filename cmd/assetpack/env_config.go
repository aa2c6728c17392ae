package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-assetpack/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // ASSETPACK_CONFIG: config file name or path
	AssetsDir      string // ASSETPACK_ASSETS_DIR: public assets root
	PerformCaching *bool  // ASSETPACK_PERFORM_CACHING: reuse existing bundles
	AssetID        string // ASSETPACK_ASSET_ID: fixed fingerprint
	Workers        int    // ASSETPACK_WORKERS: parallel build workers
}

// knownEnvVars lists valid ASSETPACK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"ASSETPACK_CONFIG":          true,
	"ASSETPACK_ASSETS_DIR":      true,
	"ASSETPACK_PERFORM_CACHING": true,
	"ASSETPACK_ASSET_ID":        true,
	"ASSETPACK_WORKERS":         true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparseable booleans and non-positive worker counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("ASSETPACK_CONFIG"),
		AssetsDir:  os.Getenv("ASSETPACK_ASSETS_DIR"),
		AssetID:    os.Getenv("ASSETPACK_ASSET_ID"),
	}

	if v := os.Getenv("ASSETPACK_PERFORM_CACHING"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.PerformCaching = &b
		}
	}

	if workers := os.Getenv("ASSETPACK_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized ASSETPACK_* variables.
// Helps catch typos like ASSETPACK_ASSET_DIR instead of ASSETPACK_ASSETS_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "ASSETPACK_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays set environment values onto cfg.
// Env wins over the config file; CLI flags are applied afterwards via
// mergeAssetFlags, so the order is flags > env > file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.AssetsDir != "" {
		cfg.AssetsDir = env.AssetsDir
	}
	if env.PerformCaching != nil {
		cfg.PerformCaching = *env.PerformCaching
	}
	if env.AssetID != "" {
		cfg.AssetID = env.AssetID
	}
}
