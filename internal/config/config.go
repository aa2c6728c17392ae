package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-assetpack/internal/assets"
	"github.com/alnah/go-assetpack/internal/fileutil"
	"github.com/alnah/go-assetpack/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// Field length limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxAssetIDLength   = 64   // Fingerprint override
	MaxHostLength      = 2048 // Browser URL limit
	MaxKeyLength       = 100  // Expansion key or bundle name
	MaxSourcesPerGroup = 1000 // Tokens in one expansion or bundle
)

// Category keys recognized in expansions and bundles.
var knownCategories = map[string]bool{
	"javascripts": true,
	"stylesheets": true,
}

// Config holds the asset pipeline configuration read from YAML.
type Config struct {
	PerformCaching bool                           `yaml:"performCaching"`
	AssetsDir      string                         `yaml:"assetsDir"`
	AssetID        string                         `yaml:"assetID,omitempty"`   // Fixed fingerprint (empty = file mtime)
	AssetHost      string                         `yaml:"assetHost,omitempty"` // Prefix for public paths
	Expansions     map[string]map[string][]string `yaml:"expansions,omitempty"`
	Bundles        []BundleConfig                 `yaml:"bundles,omitempty"`
}

// BundleConfig describes one combined file produced by the build command.
type BundleConfig struct {
	Category  string   `yaml:"category"`  // "javascripts" or "stylesheets"
	Name      string   `yaml:"name"`      // Group name; ".ext" is appended
	Sources   []string `yaml:"sources"`   // Literal, ":symbol" or ":all" tokens
	Recursive bool     `yaml:"recursive"` // With ":all", descend subdirectories
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("assetsDir", c.AssetsDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assetID", c.AssetID, MaxAssetIDLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.AssetID, "?&#/ ") {
		return fmt.Errorf("%w: assetID: %q contains URL delimiters", ErrInvalidField, c.AssetID)
	}
	if err := validateFieldLength("assetHost", c.AssetHost, MaxHostLength); err != nil {
		return err
	}

	// Validate expansions, in sorted order so errors are deterministic
	for _, category := range sortedKeys(c.Expansions) {
		if !knownCategories[category] {
			return fmt.Errorf("%w: expansions.%s: unknown category", ErrInvalidField, category)
		}
		table := c.Expansions[category]
		for _, key := range sortedKeys(table) {
			field := fmt.Sprintf("expansions.%s.%s", category, key)
			if key == "" || strings.HasPrefix(key, ":") {
				return fmt.Errorf("%w: %s: key must be a bare name", ErrInvalidField, field)
			}
			if key == "all" {
				return fmt.Errorf("%w: %s: \"all\" is reserved", ErrInvalidField, field)
			}
			if err := validateFieldLength(field, key, MaxKeyLength); err != nil {
				return err
			}
			if len(table[key]) > MaxSourcesPerGroup {
				return fmt.Errorf("%w: %s (%d sources, max %d)", ErrFieldTooLong, field, len(table[key]), MaxSourcesPerGroup)
			}
		}
	}

	// Validate bundles
	seen := make(map[string]bool, len(c.Bundles))
	for i, b := range c.Bundles {
		field := fmt.Sprintf("bundles[%d]", i)
		if !knownCategories[b.Category] {
			return fmt.Errorf("%w: %s.category: invalid value %q (must be javascripts or stylesheets)", ErrInvalidField, field, b.Category)
		}
		if err := validateFieldLength(field+".name", b.Name, MaxKeyLength); err != nil {
			return err
		}
		if err := assets.ValidateBundleName(b.Name); err != nil {
			return fmt.Errorf("%w: %s.name: %v", ErrInvalidField, field, err)
		}
		if len(b.Sources) == 0 {
			return fmt.Errorf("%w: %s.sources: at least one source required", ErrInvalidField, field)
		}
		if len(b.Sources) > MaxSourcesPerGroup {
			return fmt.Errorf("%w: %s.sources (%d sources, max %d)", ErrFieldTooLong, field, len(b.Sources), MaxSourcesPerGroup)
		}
		id := b.Category + "/" + b.Name
		if seen[id] {
			return fmt.Errorf("%w: %s: duplicate bundle %s", ErrInvalidField, field, id)
		}
		seen[id] = true
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DefaultConfig returns a configuration serving ./public with caching disabled.
func DefaultConfig() *Config {
	return &Config{
		PerformCaching: false,
		AssetsDir:      "public",
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Fields missing from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(f, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	// Relative assetsDir is anchored at the config file location
	if cfg.AssetsDir != "" && !filepath.IsAbs(cfg.AssetsDir) {
		cfg.AssetsDir = filepath.Join(filepath.Dir(configPath), cfg.AssetsDir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists the locations tried for a config name, in order:
// ./name.yaml, ./name.yml, then the same names under ~/.config/go-assetpack/.
func SearchPaths(name string) []string {
	paths := []string{name + ".yaml", name + ".yml"}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range []string{".yaml", ".yml"} {
			paths = append(paths, filepath.Join(userConfigDir, "go-assetpack", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
