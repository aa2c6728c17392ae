package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrInvalidBundleName indicates the bundle name is empty, contains a null
	// byte, or contains traversal sequences.
	ErrInvalidBundleName = errors.New("invalid bundle name")

	// ErrInvalidExtension indicates the category extension cannot be globbed.
	ErrInvalidExtension = errors.New("invalid extension")

	// ErrAssetRead indicates an I/O error occurred while listing or reading assets.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to write outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
