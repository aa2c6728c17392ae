package main

import (
	"context"
	"errors"
	"html/template"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	assetpack "github.com/alnah/go-assetpack"
	"github.com/alnah/go-assetpack/internal/config"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Mock builder
// ---------------------------------------------------------------------------

// mockBuilder records calls and fails for bundles named in fail.
type mockBuilder struct {
	mu      sync.Mutex
	calls   []assetpack.Options
	fail    map[string]bool
	active  atomic.Int32
	maxSeen atomic.Int32
}

func (m *mockBuilder) IncludeTag(_ []string, opts assetpack.Options) (template.HTML, error) {
	n := m.active.Add(1)
	defer m.active.Add(-1)
	for {
		seen := m.maxSeen.Load()
		if n <= seen || m.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)

	m.mu.Lock()
	m.calls = append(m.calls, opts)
	m.mu.Unlock()

	if m.fail[opts.Concat] {
		return "", assetpack.ErrAssetFileNotFound
	}
	return template.HTML("<tag>"), nil
}

func (m *mockBuilder) BundlePath(group string) string {
	return "/public/javascripts/" + group + ".js"
}

func jobsFor(b Builder, names ...string) []bundleJob {
	jobs := make([]bundleJob, 0, len(names))
	for _, n := range names {
		jobs = append(jobs, bundleJob{
			bundle:  config.BundleConfig{Category: "javascripts", Name: n, Sources: []string{"a"}, Recursive: n == "deep"},
			builder: b,
		})
	}
	return jobs
}

// ---------------------------------------------------------------------------
// TestBuildBundles - Worker pool
// ---------------------------------------------------------------------------

func TestBuildBundles(t *testing.T) {
	t.Parallel()

	t.Run("results keep job order and force concat", func(t *testing.T) {
		t.Parallel()

		b := &mockBuilder{fail: map[string]bool{"bad": true}}
		results := buildBundles(context.Background(), jobsFor(b, "one", "bad", "deep"), 2)

		if len(results) != 3 {
			t.Fatalf("len(results) = %d, want 3", len(results))
		}
		for i, name := range []string{"one", "bad", "deep"} {
			if results[i].Bundle.Name != name {
				t.Errorf("results[%d] = %s, want %s", i, results[i].Bundle.Name, name)
			}
		}
		if !errors.Is(results[1].Err, assetpack.ErrAssetFileNotFound) {
			t.Errorf("results[1].Err = %v", results[1].Err)
		}
		if results[0].Err != nil || results[0].Path != "/public/javascripts/one.js" {
			t.Errorf("results[0] = %+v", results[0])
		}

		for _, opts := range b.calls {
			if opts.Concat == "" || opts.Cache != "" {
				t.Errorf("opts = %+v, want Concat only", opts)
			}
			if opts.Recursive != (opts.Concat == "deep") {
				t.Errorf("opts.Recursive = %v for %s", opts.Recursive, opts.Concat)
			}
		}
	})

	t.Run("concurrency bounded by workers", func(t *testing.T) {
		t.Parallel()

		b := &mockBuilder{}
		buildBundles(context.Background(), jobsFor(b, "a", "b", "c", "d", "e", "f"), 2)

		if got := b.maxSeen.Load(); got > 2 {
			t.Errorf("max concurrent builds = %d, want <= 2", got)
		}
		if len(b.calls) != 6 {
			t.Errorf("calls = %d, want 6", len(b.calls))
		}
	})

	t.Run("canceled context skips remaining jobs", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		b := &mockBuilder{}
		results := buildBundles(ctx, jobsFor(b, "a", "b"), 1)

		for _, r := range results {
			if !errors.Is(r.Err, context.Canceled) {
				t.Errorf("result %s err = %v, want context.Canceled", r.Bundle.Name, r.Err)
			}
		}
		if len(b.calls) != 0 {
			t.Errorf("calls = %d, want 0", len(b.calls))
		}
	})

	t.Run("no jobs", func(t *testing.T) {
		t.Parallel()

		if results := buildBundles(context.Background(), nil, 4); results != nil {
			t.Errorf("results = %v, want nil", results)
		}
	})
}

// ---------------------------------------------------------------------------
// TestPrintBuildResults - Summary output
// ---------------------------------------------------------------------------

func TestPrintBuildResults(t *testing.T) {
	t.Parallel()

	results := []BuildResult{
		{Bundle: config.BundleConfig{Category: "javascripts", Name: "all"}, Path: "/p/javascripts/all.js"},
		{Bundle: config.BundleConfig{Category: "stylesheets", Name: "all"}, Err: assetpack.ErrBundleWrite},
	}

	tests := []struct {
		name       string
		common     commonFlags
		wantStdout []string
		wantEmpty  bool
	}{
		{name: "default", wantStdout: []string{"Wrote /p/javascripts/all.js", "1 succeeded, 1 failed"}},
		{name: "verbose", common: commonFlags{verbose: true}, wantStdout: []string{"javascripts/all -> /p/javascripts/all.js"}},
		{name: "quiet", common: commonFlags{quiet: true}, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			failed := printBuildResults(results, tt.common, env)

			if failed != 1 {
				t.Errorf("failed = %d, want 1", failed)
			}
			if !strings.Contains(stderr.String(), "FAILED stylesheets/all") || !strings.Contains(stderr.String(), "hint:") {
				t.Errorf("stderr = %q", stderr.String())
			}
			if tt.wantEmpty && stdout.Len() != 0 {
				t.Errorf("stdout = %q, want empty", stdout.String())
			}
			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout = %q, want to contain %q", stdout.String(), want)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateWorkers / TestResolveWorkers - Worker count
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, MaxWorkers} {
		if err := validateWorkers(n); err != nil {
			t.Errorf("validateWorkers(%d) error = %v", n, err)
		}
	}
	for _, n := range []int{-1, MaxWorkers + 1} {
		if err := validateWorkers(n); !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) error = %v, want ErrInvalidWorkerCount", n, err)
		}
	}
}

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	auto := min(runtime.GOMAXPROCS(0), MaxWorkers)

	tests := []struct {
		name       string
		flag, env  int
		wantResult int
	}{
		{name: "flag wins", flag: 3, env: 5, wantResult: 3},
		{name: "env when flag unset", flag: 0, env: 5, wantResult: 5},
		{name: "env capped", flag: 0, env: MaxWorkers + 10, wantResult: MaxWorkers},
		{name: "auto", flag: 0, env: 0, wantResult: auto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveWorkers(tt.flag, tt.env); got != tt.wantResult {
				t.Errorf("resolveWorkers(%d, %d) = %d, want %d", tt.flag, tt.env, got, tt.wantResult)
			}
		})
	}
}
