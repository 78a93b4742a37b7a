// Package pkg provides the core libraries of the mcomix-layout page layout
// engine.
//
// # Overview
//
// A comic viewer shows one or more pages at a time inside a window. The pkg
// directory computes how big each page is drawn and where it goes, without
// any drawing toolkit:
//
//  1. [box] - Axis-aligned n-dimensional boxes and their arithmetic
//  2. [zoom] - Fit modes and the scale of every page on a screen
//  3. [layout] - Page arrangement, the viewport and scrolling
//  4. [natsort] - Natural ordering of page file names
//  5. [pipeline] - Orchestration (read → zoom → layout → render)
//
// # Architecture
//
// The typical data flow:
//
//	Directory of images
//	         ↓
//	    [pages] package (natural order + header-only size decoding)
//	         ↓
//	    [zoom] package (fit to screen, user zoom)
//	         ↓
//	    [layout] package (distribute, align, wrap, scroll)
//	         ↓
//	    [render] package (JSON, DOT, SVG, text miniature)
//
// # Quick Start
//
// Lay out a manga double page spread:
//
//	sizes := []layout.Vec2{{961, 1363}, {961, 1363}}
//	screen := layout.Vec2{1920, 1080}
//	zoomed := zoom.ZoomedSize(zoom.Settings{FitMode: zoom.Best}, sizes, screen, layout.Distribution, nil)
//	l := layout.New(zoomed, screen, layout.Vec2{-1, 1}, layout.Distribution, layout.Alignment)
//	_ = l.ScrollTo(layout.ScrollStart)
//
// # Main Packages
//
// ## Geometry
//
// [box] - Boxes with position and size, translation, bounding boxes, wrapper
// boxes that grow content to the viewport, and the closest-box search behind
// the current page.
//
// [zoom] - Fit modes (best, width, height, manual, size), page size
// harmonization and distributed scaling so pages fill an axis exactly.
//
// [layout] - Arrangement of pages along the distribution axis, centering on
// the alignment axis and predefined scroll destinations.
//
// ## Pages
//
// [pages] - Supported image formats, size decoding with a persistent cache
// and directory discovery.
//
// [natsort] - File name comparison treating digit runs as numbers.
//
// ## Infrastructure
//
// [pipeline] - The read → zoom → layout → render flow used by every command.
//
// [render] - Serializable snapshots of a layout and their output formats.
//
// [cache] - File-backed key/value cache with TTLs for page sizes.
//
// [config] - TOML preferences.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Hooks for pipeline and cache events.
//
// [buildinfo] - Version information stamped at link time.
package pkg
