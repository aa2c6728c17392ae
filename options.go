package assetpack

import (
	"fmt"

	"github.com/alnah/go-assetpack/internal/assets"
)

// DefaultBundle is the group name used when combining is requested without
// naming a group. Setting Concat or Cache to DefaultBundle is the boolean
// form of the option.
const DefaultBundle = "all"

// Options controls one IncludeTag call.
type Options struct {
	// Concat forces combination into the named group, regardless of
	// Config.PerformCaching. Empty means unset.
	Concat string

	// Cache combines into the named group only when Config.PerformCaching
	// is enabled. When caching is disabled every listed source is still
	// checked for existence. Empty means unset.
	Cache string

	// Recursive makes All descend into subdirectories.
	Recursive bool

	// Attrs are passed through to the category's tag renderer.
	Attrs Attributes
}

// Validate checks the group names. Called automatically by IncludeTag.
func (o Options) Validate() error {
	for field, name := range map[string]string{"concat": o.Concat, "cache": o.Cache} {
		if name == "" {
			continue
		}
		if err := assets.ValidateBundleName(name); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidBundleName, field, err)
		}
	}
	return nil
}

// group returns the merged group name; Concat wins over Cache.
func (o Options) group() string {
	if o.Concat != "" {
		return o.Concat
	}
	return o.Cache
}
