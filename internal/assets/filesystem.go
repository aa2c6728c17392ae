package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-assetpack/internal/fileutil"
)

// Collect lists every regular file under dir whose name ends with
// ".{extension}". Without recursive, only the immediate directory is
// searched. Results are slash-separated paths relative to dir with the final
// extension stripped, sorted ascending. A missing dir yields no results.
func Collect(dir, extension string, recursive bool) ([]string, error) {
	if err := fileutil.ValidateExtension(extension); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExtension, err)
	}
	suffix := "." + extension

	var found []string
	var err error
	if recursive {
		found, err = collectTree(dir, suffix)
	} else {
		found, err = collectFlat(dir, suffix)
	}
	if err != nil {
		return nil, err
	}

	sort.Strings(found)
	return found, nil
}

// collectFlat matches {dir}/*.{ext}.
func collectFlat(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	found := make([]string, 0, len(entries))
	for _, e := range entries {
		if !matches(e, suffix) {
			continue
		}
		found = append(found, stripExtension(e.Name()))
	}
	return found, nil
}

// collectTree matches {dir}/**/*.{ext}, including dir itself.
func collectTree(dir, suffix string) ([]string, error) {
	var found []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipDir
			}
			return err
		}
		if path == dir {
			return nil
		}
		if d.IsDir() {
			if isHidden(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if !matches(d, suffix) {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		found = append(found, stripExtension(filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	return found, nil
}

// matches reports whether e is a visible non-directory ending with suffix.
func matches(e fs.DirEntry, suffix string) bool {
	if e.IsDir() || isHidden(e.Name()) {
		return false
	}
	return strings.HasSuffix(e.Name(), suffix)
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// stripExtension removes the final ".ext" from the last path element.
func stripExtension(p string) string {
	base := p[strings.LastIndex(p, "/")+1:]
	if i := strings.LastIndex(base, "."); i > 0 {
		return p[:len(p)-len(base)+i]
	}
	return p
}

// VerifyContainment ensures target lies inside basePath after both are made
// absolute and cleaned. The check is lexical: symlinked asset directories
// are allowed.
func VerifyContainment(basePath, target string) error {
	absBase, err := filepath.Abs(basePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve base path", ErrPathTraversal)
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// Add separator to prevent prefix attacks (e.g., /base/path vs /base/pathevil)
	if absTarget != absBase && !strings.HasPrefix(absTarget, absBase+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s escapes %s", ErrPathTraversal, target, basePath)
	}
	return nil
}
