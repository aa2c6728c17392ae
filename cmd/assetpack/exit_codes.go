package main

import (
	"errors"
	"os"

	assetpack "github.com/alnah/go-assetpack"
	"github.com/alnah/go-assetpack/internal/config"
	"github.com/alnah/go-assetpack/internal/hints"
)

// Exit codes for assetpack CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error, including partial build failures
	ExitUsage   = 2 // Invalid flags, config, or sources
	ExitIO      = 3 // Asset missing or unreadable, bundle not writable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, assetpack.ErrAssetFileNotFound) ||
		errors.Is(err, assetpack.ErrAssetRead) ||
		errors.Is(err, assetpack.ErrBundleWrite) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, assetpack.ErrUnknownExpansion) ||
		errors.Is(err, assetpack.ErrCannotMergeRemoteAsset) ||
		errors.Is(err, assetpack.ErrInvalidConfig) ||
		errors.Is(err, assetpack.ErrInvalidBundleName) ||
		errors.Is(err, assetpack.ErrUnknownCategory) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoSources) ||
		errors.Is(err, ErrInvalidAttr) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrNoBundles) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var catErr *categoryError
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		var nf *configNotFoundError
		if errors.As(err, &nf) {
			return hints.ForConfigNotFound(config.SearchPaths(nf.name))
		}
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, assetpack.ErrAssetFileNotFound):
		return hints.ForAssetNotFound()
	case errors.Is(err, assetpack.ErrCannotMergeRemoteAsset):
		return hints.ForRemoteMerge()
	case errors.Is(err, assetpack.ErrUnknownExpansion):
		if errors.As(err, &catErr) {
			return hints.ForUnknownExpansion(catErr.dir)
		}
		return hints.ForUnknownExpansion("")
	case errors.Is(err, assetpack.ErrBundleWrite):
		return hints.ForBundleWrite()
	case errors.Is(err, assetpack.ErrUnknownCategory):
		return hints.ForCategory()
	default:
		return ""
	}
}
