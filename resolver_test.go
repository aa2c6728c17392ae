package assetpack_test

import (
	"strconv"
	"testing"
	"time"

	assetpack "github.com/alnah/go-assetpack"
)

// ---------------------------------------------------------------------------
// TestDefaultPathResolver_Resolve - Public path computation
// ---------------------------------------------------------------------------

func TestDefaultPathResolver_Resolve(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mtime := time.Unix(1700000000, 0)
	writeAsset(t, root, "javascripts/app.js", "app", mtime)
	writeAsset(t, root, "javascripts/jquery.min.js", "jq", mtime)
	writeAsset(t, root, "shared/x.js", "x", mtime)

	r := assetpack.NewPathResolver(root)

	tests := []struct {
		name        string
		source      string
		fingerprint bool
		want        string
	}{
		{
			name:        "extension and directory added, mtime fingerprint",
			source:      "app",
			fingerprint: true,
			want:        "/javascripts/app.js?1700000000",
		},
		{
			name:   "no fingerprint",
			source: "app",
			want:   "/javascripts/app.js",
		},
		{
			name:   "existing extension kept",
			source: "app.js",
			want:   "/javascripts/app.js",
		},
		{
			name:   "dotted name resolved to file with extension",
			source: "jquery.min",
			want:   "/javascripts/jquery.min.js",
		},
		{
			name:   "dotted name without matching file kept",
			source: "vendor.bundle",
			want:   "/javascripts/vendor.bundle",
		},
		{
			name:        "absolute path not prefixed",
			source:      "/shared/x.js",
			fingerprint: true,
			want:        "/shared/x.js?1700000000",
		},
		{
			name:        "missing file has no fingerprint",
			source:      "missing",
			fingerprint: true,
			want:        "/javascripts/missing.js",
		},
		{
			name:        "existing query string kept",
			source:      "app?v=2",
			fingerprint: true,
			want:        "/javascripts/app.js?v=2",
		},
		{
			name:        "URI unchanged",
			source:      "https://cdn.example.com/x.js",
			fingerprint: true,
			want:        "https://cdn.example.com/x.js",
		},
		{
			name:        "protocol-relative URI unchanged",
			source:      "//cdn.example.com/x.js",
			fingerprint: true,
			want:        "//cdn.example.com/x.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := r.Resolve(tt.source, "javascripts", "js", tt.fingerprint)
			if got != tt.want {
				t.Errorf("Resolve(%q, %v) = %q, want %q", tt.source, tt.fingerprint, got, tt.want)
			}
		})
	}
}

func TestDefaultPathResolver_Options(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeAsset(t, root, "stylesheets/base.css", "body{}", time.Unix(1600000000, 0))

	t.Run("fixed asset id", func(t *testing.T) {
		t.Parallel()

		r := assetpack.NewPathResolver(root, assetpack.WithAssetID("v42"))
		if got := r.Resolve("base", "stylesheets", "css", true); got != "/stylesheets/base.css?v42" {
			t.Errorf("Resolve() = %q", got)
		}
		if got := r.Resolve("missing", "stylesheets", "css", true); got != "/stylesheets/missing.css?v42" {
			t.Errorf("Resolve(missing) = %q, want fixed id regardless of file", got)
		}
	})

	t.Run("host prefixes public paths only", func(t *testing.T) {
		t.Parallel()

		r := assetpack.NewPathResolver(root, assetpack.WithAssetHost("https://assets.example.com/"), assetpack.WithAssetID("1"))
		if got := r.Resolve("base", "stylesheets", "css", true); got != "https://assets.example.com/stylesheets/base.css?1" {
			t.Errorf("Resolve(fingerprint) = %q", got)
		}
		if got := r.Resolve("base", "stylesheets", "css", false); got != "/stylesheets/base.css" {
			t.Errorf("Resolve(no fingerprint) = %q, want root-relative path", got)
		}
	})
}

// With the asset id cache enabled the first fingerprint sticks even after
// the file changes.
func TestDefaultPathResolver_AssetIDCache(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cache   bool
		wantNew bool
	}{
		{name: "cache enabled keeps first id", cache: true, wantNew: false},
		{name: "cache disabled reads mtime each time", cache: false, wantNew: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			first := time.Unix(1500000000, 0)
			second := time.Unix(1600000000, 0)
			writeAsset(t, root, "javascripts/app.js", "v1", first)

			r := assetpack.NewPathResolver(root, assetpack.WithAssetIDCache(tt.cache))
			if got := r.Resolve("app", "javascripts", "js", true); got != "/javascripts/app.js?"+strconv.FormatInt(first.Unix(), 10) {
				t.Fatalf("first Resolve() = %q", got)
			}

			writeAsset(t, root, "javascripts/app.js", "v2", second)

			want := first
			if tt.wantNew {
				want = second
			}
			if got := r.Resolve("app", "javascripts", "js", true); got != "/javascripts/app.js?"+strconv.FormatInt(want.Unix(), 10) {
				t.Errorf("second Resolve() = %q, want id %d", got, want.Unix())
			}
		})
	}
}
