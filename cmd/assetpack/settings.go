package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	assetpack "github.com/alnah/go-assetpack"
	"github.com/alnah/go-assetpack/internal/config"
)

// loadSettings resolves the effective configuration.
// Priority: CLI flags > env vars > config file > defaults.
func loadSettings(common commonFlags, af assetFlags, env *envConfig) (*config.Config, error) {
	name := common.config
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, &configNotFoundError{name: name, err: err}
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	mergeAssetFlags(af, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeAssetFlags applies explicitly set CLI flags to cfg (CLI wins).
func mergeAssetFlags(af assetFlags, cfg *config.Config) {
	if af.assetsDir != "" {
		cfg.AssetsDir = af.assetsDir
	}
	if af.performCachingSet {
		cfg.PerformCaching = af.performCaching
	}
}

// newLogger returns a stderr logger honoring --quiet and --verbose.
func newLogger(w io.Writer, common commonFlags) *log.Logger {
	level := log.InfoLevel
	switch {
	case common.quiet:
		level = log.ErrorLevel
	case common.verbose:
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "assetpack",
		Level:  level,
	})
}

// newAggregator builds an Aggregator for the named category from cfg.
// performCaching is passed separately so build can force regeneration.
func newAggregator(cfg *config.Config, category string, performCaching bool, logger *log.Logger) (*assetpack.Aggregator, error) {
	cat, err := assetpack.LookupCategory(category)
	if err != nil {
		return nil, err
	}

	resolver := assetpack.NewPathResolver(cfg.AssetsDir,
		assetpack.WithAssetHost(cfg.AssetHost),
		assetpack.WithAssetID(cfg.AssetID),
		assetpack.WithAssetIDCache(performCaching),
	)

	return assetpack.New(
		assetpack.Config{PerformCaching: performCaching, AssetsDir: cfg.AssetsDir},
		cat,
		assetpack.WithExpansions(cfg.Expansions[cat.Dir()]),
		assetpack.WithPathResolver(resolver),
		assetpack.WithLogger(logger),
	)
}

// inCategory tags err with the category directory for hint lookup.
func inCategory(agg *assetpack.Aggregator, err error) error {
	if err == nil {
		return nil
	}
	return &categoryError{dir: agg.Category().Dir(), err: err}
}
