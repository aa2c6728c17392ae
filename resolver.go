package assetpack

import (
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/alnah/go-assetpack/internal/fileutil"
)

// PathResolver maps a source to the path used in rendered markup.
// Implementations own versioning and fingerprinting.
type PathResolver interface {
	// Resolve returns the public path for source in the category directory
	// dir with the given extension. When fingerprint is false the result must
	// be a root-relative path (or the URI unchanged) so it can be located
	// below the assets root.
	Resolve(source, dir, extension string, fingerprint bool) string
}

// DefaultPathResolver computes conventional public paths:
//
//	"app"                    -> "/javascripts/app.js?1700000000"
//	"vendor/jquery.min"      -> "/javascripts/vendor/jquery.min.js" (if that file exists)
//	"/shared/app.js"         -> "/shared/app.js?1700000000"
//	"http://cdn.example/x.js" -> unchanged
//
// The fingerprint is the fixed asset ID when configured, otherwise the Unix
// modification time of the file. A configured host prefixes fingerprinted
// paths. Use NewPathResolver to create one; it is safe for concurrent use.
type DefaultPathResolver struct {
	assetsDir string
	host      string
	assetID   string
	cacheIDs  bool

	mu  sync.RWMutex
	ids map[string]string
}

// PathResolverOption configures a DefaultPathResolver.
type PathResolverOption func(*DefaultPathResolver)

// WithAssetHost prefixes fingerprinted paths with host (e.g., "https://cdn.example.com").
func WithAssetHost(host string) PathResolverOption {
	return func(r *DefaultPathResolver) {
		r.host = strings.TrimSuffix(host, "/")
	}
}

// WithAssetID uses id as the fingerprint instead of file modification times.
func WithAssetID(id string) PathResolverOption {
	return func(r *DefaultPathResolver) {
		r.assetID = id
	}
}

// WithAssetIDCache memoizes modification-time fingerprints per source.
// Appropriate when assets do not change while the process runs.
func WithAssetIDCache(enabled bool) PathResolverOption {
	return func(r *DefaultPathResolver) {
		r.cacheIDs = enabled
	}
}

// NewPathResolver creates a DefaultPathResolver for the assets root.
func NewPathResolver(assetsDir string, opts ...PathResolverOption) *DefaultPathResolver {
	r := &DefaultPathResolver{
		assetsDir: assetsDir,
		ids:       make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve implements PathResolver.
func (r *DefaultPathResolver) Resolve(source, dir, extension string, fingerprint bool) string {
	if fileutil.IsURI(source) {
		return source
	}

	base, query := source, ""
	if i := strings.IndexByte(source, '?'); i >= 0 {
		base, query = source[:i], source[i:]
	}

	if extension != "" && r.needsExtension(base, dir, extension) {
		base += "." + extension
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + dir + "/" + base
	}

	if !fingerprint {
		return base + query
	}

	if query == "" {
		if id := r.assetIDFor(base); id != "" {
			query = "?" + id
		}
	}
	return r.host + base + query
}

// needsExtension reports whether base lacks an extension, or names a file
// that only exists with the extension appended ("jquery.min" -> "jquery.min.js").
func (r *DefaultPathResolver) needsExtension(base, dir, extension string) bool {
	if path.Ext(base) == "" {
		return true
	}
	candidate := filepath.Join(r.assetsDir, filepath.FromSlash(base+"."+extension))
	if !strings.HasPrefix(base, "/") {
		candidate = filepath.Join(r.assetsDir, dir, filepath.FromSlash(base+"."+extension))
	}
	return fileutil.FileExists(candidate)
}

// assetIDFor returns the fingerprint for a root-relative public path.
func (r *DefaultPathResolver) assetIDFor(publicPath string) string {
	if r.assetID != "" {
		return r.assetID
	}

	if r.cacheIDs {
		r.mu.RLock()
		id, ok := r.ids[publicPath]
		r.mu.RUnlock()
		if ok {
			return id
		}
	}

	id := ""
	mtime, err := fileutil.LatestModTime([]string{filepath.Join(r.assetsDir, filepath.FromSlash(publicPath))})
	if err == nil {
		id = strconv.FormatInt(mtime.Unix(), 10)
	}

	if r.cacheIDs {
		r.mu.Lock()
		r.ids[publicPath] = id
		r.mu.Unlock()
	}
	return id
}

// Compile-time interface check.
var _ PathResolver = (*DefaultPathResolver)(nil)
