package assetpack

import (
	"fmt"
	"path/filepath"
)

// Config is the configuration consumed by an Aggregator. It is read but
// never modified.
type Config struct {
	// PerformCaching enables Cache requests and reuse of existing bundles.
	PerformCaching bool

	// AssetsDir is the public assets root. Category directories and bundles
	// live below it.
	AssetsDir string
}

// Validate checks that the configuration can locate assets.
// Called automatically by New.
func (c Config) Validate() error {
	if c.AssetsDir == "" {
		return fmt.Errorf("%w: assets directory is required", ErrInvalidConfig)
	}
	return nil
}

// absolute returns a copy with AssetsDir made absolute.
func (c Config) absolute() (Config, error) {
	abs, err := filepath.Abs(c.AssetsDir)
	if err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	c.AssetsDir = abs
	return c, nil
}
