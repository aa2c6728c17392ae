package main

import (
	"context"
	"fmt"
	"html/template"
	"runtime"
	"sync"
	"time"

	assetpack "github.com/alnah/go-assetpack"
	"github.com/alnah/go-assetpack/internal/config"
)

// MaxWorkers caps --workers and ASSETPACK_WORKERS.
const MaxWorkers = 32

// Builder regenerates bundles. Satisfied by *assetpack.Aggregator.
type Builder interface {
	IncludeTag(sources []string, opts assetpack.Options) (template.HTML, error)
	BundlePath(group string) string
}

// Compile-time interface implementation check.
var _ Builder = (*assetpack.Aggregator)(nil)

// bundleJob pairs a configured bundle with the builder for its category.
type bundleJob struct {
	bundle  config.BundleConfig
	builder Builder
}

// BuildResult holds the outcome of a single bundle build.
type BuildResult struct {
	Bundle   config.BundleConfig
	Path     string
	Err      error
	Duration time.Duration
}

// runBuild regenerates every bundle declared in the config file.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: build takes no arguments", ErrUsage)
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	cfg, err := loadSettings(flags.common, flags.assets, envCfg)
	if err != nil {
		return err
	}
	if len(cfg.Bundles) == 0 {
		return ErrNoBundles
	}

	logger := newLogger(env.Stderr, flags.common)

	// One aggregator per category, shared by all workers.
	// Caching is disabled so every bundle is regenerated.
	builders := make(map[string]Builder)
	jobs := make([]bundleJob, 0, len(cfg.Bundles))
	for _, b := range cfg.Bundles {
		builder, ok := builders[b.Category]
		if !ok {
			agg, err := newAggregator(cfg, b.Category, false, logger)
			if err != nil {
				return err
			}
			builder = agg
			builders[b.Category] = agg
		}
		jobs = append(jobs, bundleJob{bundle: b, builder: builder})
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers)
	logger.Debug("building bundles", "count", len(jobs), "workers", workers)

	start := env.Now()
	results := buildBundles(ctx, jobs, workers)
	failed := printBuildResults(results, flags.common, env)

	logger.Debug("build finished", "elapsed", env.Now().Sub(start).Round(time.Millisecond))
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d bundles", ErrBuildFailed, failed, len(results))
	}
	return nil
}

// buildBundles processes jobs concurrently with the given number of workers.
// Results are returned in job order.
func buildBundles(ctx context.Context, jobs []bundleJob, workers int) []BuildResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	results := make([]BuildResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = BuildResult{Bundle: jobs[idx].bundle, Err: ctx.Err()}
					continue
				}
				results[idx] = buildBundle(jobs[idx])
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// buildBundle regenerates a single bundle and returns the result.
func buildBundle(job bundleJob) BuildResult {
	start := time.Now()
	result := BuildResult{
		Bundle: job.bundle,
		Path:   job.builder.BundlePath(job.bundle.Name),
	}

	_, err := job.builder.IncludeTag(job.bundle.Sources, assetpack.Options{
		Concat:    job.bundle.Name,
		Recursive: job.bundle.Recursive,
	})
	result.Err = err
	result.Duration = time.Since(start)
	return result
}

// printBuildResults outputs build results and returns the failure count.
func printBuildResults(results []BuildResult, common commonFlags, env *Environment) int {
	succeeded, failed := 0, 0

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s/%s: %v%s\n", r.Bundle.Category, r.Bundle.Name, r.Err, hintFor(r.Err))
			continue
		}
		succeeded++

		if common.quiet {
			continue
		}
		if common.verbose {
			fmt.Fprintf(env.Stdout, "%s/%s -> %s (%v)\n", r.Bundle.Category, r.Bundle.Name, r.Path, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Wrote %s\n", r.Path)
		}
	}

	if !common.quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}

// resolveWorkers determines the worker count.
// Priority: explicit flag > ASSETPACK_WORKERS > GOMAXPROCS.
func resolveWorkers(flagWorkers, envWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if envWorkers > 0 {
		return min(envWorkers, MaxWorkers)
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	return min(runtime.GOMAXPROCS(0), MaxWorkers)
}
