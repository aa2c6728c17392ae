package assetpack

import "errors"

// Sentinel errors for library operations.
var (
	// ErrUnknownExpansion indicates a symbolic source has no entry in the
	// expansion table.
	ErrUnknownExpansion = errors.New("no expansion found")

	// ErrAssetFileNotFound indicates a required local asset file is missing.
	ErrAssetFileNotFound = errors.New("asset file not found")

	// ErrCannotMergeRemoteAsset indicates a URI source was listed in a
	// request that combines file contents.
	ErrCannotMergeRemoteAsset = errors.New("asset is a URI and cannot be merged into a single file")

	// Configuration and request validation errors.
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrInvalidBundleName = errors.New("invalid bundle name")
	ErrUnknownCategory   = errors.New("unknown asset category")

	// I/O errors other than a missing file.
	ErrAssetRead   = errors.New("failed to read asset")
	ErrBundleWrite = errors.New("failed to write bundle")
)
