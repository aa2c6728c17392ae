package assetpack_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	assetpack "github.com/alnah/go-assetpack"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Asset trees and aggregators
// ---------------------------------------------------------------------------

// writeAsset creates root/rel with content and sets its mtime when non-zero.
func writeAsset(t *testing.T, root, rel, content string, mtime time.Time) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if !mtime.IsZero() {
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	return path
}

// readAsset returns the content of root/rel.
func readAsset(t *testing.T, root, rel string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

// newAggregator builds an aggregator with a fixed "1" fingerprint so
// rendered tags are deterministic.
func newAggregator(t *testing.T, root string, caching bool, cat assetpack.Category, opts ...assetpack.Option) *assetpack.Aggregator {
	t.Helper()

	all := append([]assetpack.Option{
		assetpack.WithPathResolver(assetpack.NewPathResolver(root, assetpack.WithAssetID("1"))),
	}, opts...)

	agg, err := assetpack.New(assetpack.Config{PerformCaching: caching, AssetsDir: root}, cat, all...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return agg
}

// recordingResolver counts Resolve calls and returns root-relative paths.
type recordingResolver struct {
	inner assetpack.PathResolver
	calls chan string
}

func (r *recordingResolver) Resolve(source, dir, extension string, fingerprint bool) string {
	select {
	case r.calls <- source:
	default:
	}
	return r.inner.Resolve(source, dir, extension, fingerprint)
}

// fileExists reports whether root/rel exists.
func fileExists(root, rel string) bool {
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil
}

// modTime returns the modification time of root/rel.
func modTime(t *testing.T, root, rel string) time.Time {
	t.Helper()

	info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("stat %s: %v", rel, err)
	}
	return info.ModTime()
}

// gateResolver blocks the first unfingerprinted Resolve of hold until
// release is closed, signalling entered once it is waiting.
type gateResolver struct {
	inner   assetpack.PathResolver
	hold    string
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gateResolver) Resolve(source, dir, extension string, fingerprint bool) string {
	if source == g.hold && !fingerprint {
		g.once.Do(func() {
			close(g.entered)
			<-g.release
		})
	}
	return g.inner.Resolve(source, dir, extension, fingerprint)
}
