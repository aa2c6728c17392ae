package assetpack

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-assetpack/internal/fileutil"
)

// filesystemPath maps a root-relative public path to a file below the
// assets root. Any query string is dropped.
func (a *Aggregator) filesystemPath(publicPath string) string {
	return filepath.Join(a.cfg.AssetsDir, filepath.FromSlash(fileutil.StripQuery(publicPath)))
}

// requireFilesystemPath returns the file backing publicPath.
// URIs yield ErrCannotMergeRemoteAsset when rejectURIs is set and are
// otherwise skipped with an empty path. Returns ErrAssetFileNotFound if
// the file does not exist.
func (a *Aggregator) requireFilesystemPath(publicPath string, rejectURIs bool) (string, error) {
	if fileutil.IsURI(publicPath) {
		if rejectURIs {
			return "", fmt.Errorf("%w: %s", ErrCannotMergeRemoteAsset, publicPath)
		}
		return "", nil
	}

	path := a.filesystemPath(publicPath)
	if !fileutil.FileExists(path) {
		return "", fmt.Errorf("%w at %q", ErrAssetFileNotFound, path)
	}
	return path, nil
}

// ensureSources checks that every local source exists before any markup is
// rendered. URIs are allowed.
func (a *Aggregator) ensureSources(sources []string) error {
	for _, source := range sources {
		publicPath := a.resolver.Resolve(source, a.category.Dir(), a.category.Extension(), false)
		if _, err := a.requireFilesystemPath(publicPath, false); err != nil {
			return err
		}
	}
	return nil
}

// BundlePath returns the file a combined group is written to:
// "{group}.{ext}" inside CustomDir, or below the assets root when group
// starts with "/".
func (a *Aggregator) BundlePath(group string) string {
	name := filepath.FromSlash(group + "." + a.category.Extension())
	if strings.HasPrefix(group, "/") {
		return filepath.Join(a.cfg.AssetsDir, name)
	}
	return filepath.Join(a.CustomDir(), name)
}
