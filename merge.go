package assetpack

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/alnah/go-assetpack/internal/assets"
	"github.com/alnah/go-assetpack/internal/fileutil"
)

// bundleSeparator is written between constituent files.
var bundleSeparator = []byte("\n\n")

// ensureBundle makes target available, reusing it when caching is enabled
// and it already exists. Concurrent identical requests share one
// regeneration; different requests for the same target run one after the
// other, so each writes its own sources.
func (a *Aggregator) ensureBundle(target string, sources []string, recursive bool) error {
	_, err, shared := a.builds.Do(buildKey(target, sources, recursive), func() (any, error) {
		unlock := a.lockTarget(target)
		defer unlock()

		if a.cfg.PerformCaching && fileutil.PathExists(target) {
			a.logger.Debug("bundle reused", "path", target)
			return nil, nil
		}
		return nil, a.writeBundle(target, sources, recursive)
	})
	if shared {
		a.logger.Debug("bundle build shared", "path", target)
	}
	return err
}

// buildKey identifies one bundle request.
func buildKey(target string, sources []string, recursive bool) string {
	return target + "\x00" + strconv.FormatBool(recursive) + "\x00" + strings.Join(sources, "\x00")
}

// lockTarget serializes writers of target and returns the unlock func.
func (a *Aggregator) lockTarget(target string) func() {
	v, _ := a.targets.LoadOrStore(target, new(sync.Mutex))
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// writeBundle regenerates target from the expanded sources. The file is
// replaced atomically and its modification time set to the newest
// constituent's.
func (a *Aggregator) writeBundle(target string, sources []string, recursive bool) error {
	if err := assets.VerifyContainment(a.cfg.AssetsDir, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBundleName, err)
	}

	expanded, err := a.Expand(sources, recursive)
	if err != nil {
		return err
	}

	files := make([]string, 0, len(expanded))
	contents := make([][]byte, 0, len(expanded))
	for _, source := range expanded {
		publicPath := a.resolver.Resolve(source, a.category.Dir(), a.category.Extension(), false)
		path, err := a.requireFilesystemPath(publicPath, true)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path) // #nosec G304 -- path is below the assets root
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%w at %q", ErrAssetFileNotFound, path)
			}
			return fmt.Errorf("%w: %v", ErrAssetRead, err)
		}
		files = append(files, path)
		contents = append(contents, data)
	}

	mtime, err := fileutil.LatestModTime(files)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	data := bytes.Join(contents, bundleSeparator)
	if err := fileutil.AtomicWrite(target, data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBundleWrite, target, err)
	}
	if !mtime.IsZero() {
		if err := fileutil.SetModTime(target, mtime); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrBundleWrite, target, err)
		}
	}

	a.logger.Debug("bundle written", "path", target, "sources", len(files), "bytes", len(data), "mtime", mtime)
	return nil
}
