// Package assetpack renders include markup for static assets and combines
// them into cached bundles.
//
// # Quick Start
//
// Create an aggregator per category and render tags:
//
//	cfg := assetpack.Config{AssetsDir: "public", PerformCaching: true}
//	scripts, err := assetpack.New(cfg, assetpack.Scripts,
//	    assetpack.WithExpansions(assetpack.ExpansionTable{
//	        "defaults": {"prototype", "effects", "application"},
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	html, err := scripts.IncludeTag([]string{assetpack.Sym("defaults")},
//	    assetpack.Options{Cache: assetpack.DefaultBundle})
//
// With caching enabled this writes public/javascripts/all.js once and
// returns a single tag pointing at it. With caching disabled it returns one
// tag per source after checking that each file exists.
//
// # Source Tokens
//
// Sources are literal names ("app", "vendor/jquery", "/shared/x.js",
// "https://cdn.example.com/x.js"), symbolic names created with Sym that are
// looked up in the expansion table, or the single token All, which lists
// every file of the category directory in sorted order.
//
// # Bundles
//
// A bundle is the concatenation of the expanded sources, separated by a
// blank line, written atomically to "{group}.{ext}". Group names starting
// with "/" are placed relative to the assets root instead of the category
// directory. The bundle's modification time is set to the newest
// constituent's. URIs cannot be bundled.
//
// Directory structure:
//
//	public/
//	├── javascripts/
//	│   ├── application.js
//	│   └── all.js          (bundle)
//	└── stylesheets/
//	    ├── reset.css
//	    └── all.css         (bundle)
//
// # Public Paths
//
// Path computation is delegated to a PathResolver. The DefaultPathResolver
// appends the extension, prefixes the category directory and an optional
// asset host, and appends a "?{mtime}" fingerprint.
package assetpack
