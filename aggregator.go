package assetpack

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/alnah/go-assetpack/internal/assets"
	"github.com/alnah/go-assetpack/internal/fileutil"
)

// Aggregator expands source lists for one category and renders include
// markup, combining files into bundles when requested.
// It is safe for concurrent use.
type Aggregator struct {
	cfg        Config
	category   Category
	expansions ExpansionTable
	resolver   PathResolver
	logger     *log.Logger

	// builds collapses concurrent identical bundle requests.
	builds singleflight.Group
	// targets holds one *sync.Mutex per bundle path.
	targets sync.Map
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithExpansions sets the table used to expand symbolic sources.
// The table is copied.
func WithExpansions(t ExpansionTable) Option {
	return func(a *Aggregator) {
		a.expansions = t.clone()
	}
}

// WithPathResolver replaces the DefaultPathResolver.
func WithPathResolver(r PathResolver) Option {
	return func(a *Aggregator) {
		a.resolver = r
	}
}

// WithLogger sets the logger for bundle activity. Defaults to discarding.
func WithLogger(l *log.Logger) Option {
	return func(a *Aggregator) {
		a.logger = l
	}
}

// New creates an Aggregator for category.
// Returns ErrInvalidConfig or ErrUnknownCategory if either is unusable.
func New(cfg Config, category Category, opts ...Option) (*Aggregator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: nil category", ErrUnknownCategory)
	}
	if err := fileutil.ValidateExtension(category.Extension()); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnknownCategory, category.Name(), err)
	}
	if err := assets.ValidateBundleName(category.Dir()); err != nil {
		return nil, fmt.Errorf("%w: %s: directory: %v", ErrUnknownCategory, category.Name(), err)
	}

	cfg, err := cfg.absolute()
	if err != nil {
		return nil, err
	}

	a := &Aggregator{
		cfg:        cfg,
		category:   category,
		expansions: ExpansionTable{},
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.resolver == nil {
		a.resolver = NewPathResolver(cfg.AssetsDir, WithAssetIDCache(cfg.PerformCaching))
	}
	if a.logger == nil {
		a.logger = log.New(io.Discard)
	}
	return a, nil
}

// Category returns the category this Aggregator serves.
func (a *Aggregator) Category() Category {
	return a.category
}

// CustomDir returns the category directory below the assets root.
func (a *Aggregator) CustomDir() string {
	return filepath.Join(a.cfg.AssetsDir, a.category.Dir())
}

// Expand resolves source tokens to an ordered list of sources.
//
// When tokens is exactly [All], every file in CustomDir with the category
// extension is listed (sorted, extension stripped, descending into
// subdirectories when recursive). Otherwise symbolic tokens are replaced by
// their expansion and literal tokens pass through.
func (a *Aggregator) Expand(tokens []string, recursive bool) ([]string, error) {
	if len(tokens) == 1 && tokens[0] == All {
		found, err := assets.Collect(a.CustomDir(), a.category.Extension(), recursive)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
		}
		if found == nil {
			found = []string{}
		}
		return found, nil
	}
	return a.expansions.Expand(tokens)
}

// IncludeTag renders include markup for sources.
//
// Sources are combined into one bundle "{group}.{ext}" when opts.Concat is
// set, or when opts.Cache is set and Config.PerformCaching is enabled. With
// caching enabled an existing bundle is served as is; otherwise it is
// regenerated from the expanded sources. Without combination one tag per
// expanded source is returned, newline-separated.
func (a *Aggregator) IncludeTag(sources []string, opts Options) (template.HTML, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	if opts.Concat != "" || (a.cfg.PerformCaching && opts.Cache != "") {
		group := opts.group()
		if err := a.ensureBundle(a.BundlePath(group), sources, opts.Recursive); err != nil {
			return "", err
		}
		tag, err := a.tag(group+"."+a.category.Extension(), opts.Attrs)
		if err != nil {
			return "", err
		}
		return template.HTML(tag), nil // #nosec G203 -- rendered by internal/markup
	}

	expanded, err := a.Expand(sources, opts.Recursive)
	if err != nil {
		return "", err
	}
	if opts.Cache != "" {
		if err := a.ensureSources(expanded); err != nil {
			return "", err
		}
	}

	tags := make([]string, 0, len(expanded))
	for _, source := range expanded {
		tag, err := a.tag(source, opts.Attrs)
		if err != nil {
			return "", err
		}
		tags = append(tags, tag)
	}
	return template.HTML(strings.Join(tags, "\n")), nil // #nosec G203 -- rendered by internal/markup
}

// tag renders one include tag for source.
func (a *Aggregator) tag(source string, attrs Attributes) (string, error) {
	src := a.resolver.Resolve(source, a.category.Dir(), a.category.Extension(), true)
	tag, err := a.category.Tag(src, attrs)
	if err != nil {
		return "", fmt.Errorf("rendering %s tag for %q: %w", a.category.Name(), source, err)
	}
	return tag, nil
}
