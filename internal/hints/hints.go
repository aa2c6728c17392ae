// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-assetpack/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-assetpack) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-assetpack") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForAssetNotFound returns hints for missing asset files.
// Mentions ASSETPACK_ASSETS_DIR only when it is the likely culprit.
func ForAssetNotFound() string {
	hints := []string{"check --assets-dir or assetsDir in the config file"}
	if os.Getenv("ASSETPACK_ASSETS_DIR") != "" {
		hints = append(hints, "ASSETPACK_ASSETS_DIR is set and overrides the config file")
	}
	return formatHints(hints)
}

// ForRemoteMerge returns a hint for URI sources listed in a combined group.
func ForRemoteMerge() string {
	return format("render URI sources in a separate call without --cache or --concat")
}

// ForUnknownExpansion returns a hint for undefined symbolic sources.
func ForUnknownExpansion(category string) string {
	if category == "" {
		return format("define the key under expansions in the config file")
	}
	return format("define the key under expansions." + category + " in the config file")
}

// ForBundleWrite returns hints for bundle write errors.
func ForBundleWrite() string {
	return format("check the assets directory exists and is writable")
}

// ForCategory returns a hint listing the accepted category names.
func ForCategory() string {
	return format("use javascripts (js) or stylesheets (css)")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
