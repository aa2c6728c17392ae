// Package assets lists, validates and locates asset files on disk.
//
// # Directory Structure
//
// Assets live under a single root directory, one subdirectory per category:
//
//	{assetsDir}/
//	├── javascripts/
//	│   ├── application.js
//	│   ├── vendor/
//	│   │   └── jquery.js      # included by "all" only when recursive
//	│   └── all.js             # generated bundle (Cache: "all")
//	└── stylesheets/
//	    └── screen.css
//
// Collect enumerates a category directory the way a shell glob would
// ("*.js" or "**/*.js"): dot-prefixed entries are skipped and results are
// sorted.
//
// # Security
//
// Bundle names are validated to prevent traversal out of the assets root.
// VerifyContainment verifies a bundle target stays within the assets root
// before anything is written there.
package assets
