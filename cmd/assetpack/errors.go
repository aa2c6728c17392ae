package main

import "errors"

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrNoSources          = errors.New("no sources specified")
	ErrInvalidAttr        = errors.New("attribute must be key=value")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrNoBundles          = errors.New("no bundles defined in config")
	ErrBuildFailed        = errors.New("bundle build failed")
)

// categoryError records the category directory an error occurred in.
type categoryError struct {
	dir string
	err error
}

func (e *categoryError) Error() string { return e.dir + ": " + e.err.Error() }
func (e *categoryError) Unwrap() error { return e.err }

// configNotFoundError records the config name that could not be resolved.
type configNotFoundError struct {
	name string
	err  error
}

func (e *configNotFoundError) Error() string { return "loading config: " + e.err.Error() }
func (e *configNotFoundError) Unwrap() error { return e.err }
