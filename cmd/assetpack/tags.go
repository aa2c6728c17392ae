package main

import (
	"fmt"

	assetpack "github.com/alnah/go-assetpack"
)

// runTags renders include markup for sources and prints it to stdout.
func runTags(args []string, env *Environment) error {
	flags, positional, err := parseTagsFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: missing category", ErrUsage)
	}
	if len(positional) == 1 {
		return ErrNoSources
	}

	attrs, err := parseAttrs(flags.attrs)
	if err != nil {
		return err
	}

	cfg, err := loadSettings(flags.common, flags.assets, loadEnvConfig())
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common)
	agg, err := newAggregator(cfg, positional[0], cfg.PerformCaching, logger)
	if err != nil {
		return err
	}

	html, err := agg.IncludeTag(positional[1:], assetpack.Options{
		Concat:    flags.concat,
		Cache:     flags.cache,
		Recursive: flags.recursive,
		Attrs:     attrs,
	})
	if err != nil {
		return inCategory(agg, err)
	}

	fmt.Fprintln(env.Stdout, html)
	return nil
}

// runExpand prints the expanded sources, one per line.
func runExpand(args []string, env *Environment) error {
	flags, positional, err := parseExpandFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: missing category", ErrUsage)
	}
	if len(positional) == 1 {
		return ErrNoSources
	}

	cfg, err := loadSettings(flags.common, flags.assets, loadEnvConfig())
	if err != nil {
		return err
	}

	agg, err := newAggregator(cfg, positional[0], cfg.PerformCaching, newLogger(env.Stderr, flags.common))
	if err != nil {
		return err
	}

	expanded, err := agg.Expand(positional[1:], flags.recursive)
	if err != nil {
		return inCategory(agg, err)
	}
	for _, source := range expanded {
		fmt.Fprintln(env.Stdout, source)
	}
	return nil
}
