package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	assetpack "github.com/alnah/go-assetpack"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// assetFlags holds overrides for the asset location and caching mode.
type assetFlags struct {
	assetsDir         string
	performCaching    bool
	performCachingSet bool // --perform-caching given explicitly
}

// tagsFlags holds all flags for the tags command.
type tagsFlags struct {
	common    commonFlags
	assets    assetFlags
	cache     string
	concat    string
	recursive bool
	attrs     []string
}

// expandFlags holds all flags for the expand command.
type expandFlags struct {
	common    commonFlags
	assets    assetFlags
	recursive bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	assets  assetFlags
	workers int
}

// configFlags holds all flags for the config command.
type configFlags struct {
	common commonFlags
	assets assetFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show bundle activity")
}

// addAssetFlags adds asset location flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.assetsDir, "assets-dir", "", "public assets root")
	fs.BoolVar(&f.performCaching, "perform-caching", false, "reuse existing bundles")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, usage func(io.Writer), stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// parse runs fs.Parse and records whether --perform-caching was given.
func parse(fs *flag.FlagSet, args []string, af *assetFlags) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	af.performCachingSet = fs.Changed("perform-caching")
	return fs.Args(), nil
}

// parseTagsFlags parses tags command flags and returns positional args.
func parseTagsFlags(args []string, stderr io.Writer) (*tagsFlags, []string, error) {
	fs := newFlagSet("tags", printTagsUsage, stderr)
	f := &tagsFlags{}

	fs.StringVar(&f.cache, "cache", "", "combine into a group when caching is enabled")
	fs.StringVar(&f.concat, "concat", "", "always combine into a group")
	fs.Lookup("cache").NoOptDefVal = assetpack.DefaultBundle
	fs.Lookup("concat").NoOptDefVal = assetpack.DefaultBundle
	fs.BoolVarP(&f.recursive, "recursive", "r", false, "descend subdirectories for :all")
	fs.StringArrayVar(&f.attrs, "attr", nil, "tag attribute key=value (repeatable)")

	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)

	rest, err := parse(fs, args, &f.assets)
	if err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}

// parseExpandFlags parses expand command flags and returns positional args.
func parseExpandFlags(args []string, stderr io.Writer) (*expandFlags, []string, error) {
	fs := newFlagSet("expand", printExpandUsage, stderr)
	f := &expandFlags{}

	fs.BoolVarP(&f.recursive, "recursive", "r", false, "descend subdirectories for :all")
	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)

	rest, err := parse(fs, args, &f.assets)
	if err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	fs := newFlagSet("build", printBuildUsage, stderr)
	f := &buildFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)

	rest, err := parse(fs, args, &f.assets)
	if err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}

// parseConfigFlags parses config command flags and returns positional args.
func parseConfigFlags(args []string, stderr io.Writer) (*configFlags, []string, error) {
	fs := newFlagSet("config", printConfigUsage, stderr)
	f := &configFlags{}

	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)

	rest, err := parse(fs, args, &f.assets)
	if err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}

// parseAttrs converts repeated key=value flags into Attributes.
// Later occurrences of a key win.
func parseAttrs(pairs []string) (assetpack.Attributes, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	attrs := make(assetpack.Attributes, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAttr, pair)
		}
		attrs[key] = value
	}
	return attrs, nil
}
