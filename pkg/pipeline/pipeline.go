// Package pipeline runs the read → zoom → layout → render flow shared by
// every command.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Read: decode page sizes from image headers (or take them as given)
//  2. Zoom: fit the page sizes to the screen with [zoom.ZoomedSize]
//  3. Layout: arrange the zoomed pages with [layout.New] and scroll
//  4. Render: write the arrangement as JSON, DOT, SVG or text
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Dir:         "/comics/vol1",
//	    Viewport:    layout.Vec2{1920, 1080},
//	    Orientation: layout.Vec2{-1, 1},
//	    Zoom:        zoom.Settings{FitMode: zoom.Best},
//	    Formats:     []string{pipeline.FormatSVG},
//	}
//	result, err := runner.Execute(ctx, opts)
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
	"github.com/thermitegod/mcomix-lite/pkg/layout"
	"github.com/thermitegod/mcomix-lite/pkg/pages"
	"github.com/thermitegod/mcomix-lite/pkg/render"
	"github.com/thermitegod/mcomix-lite/pkg/zoom"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultViewport is the screen size used when none is given.
var DefaultViewport = layout.Vec2{640, 600}

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatText = "txt"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatText: true,
}

// Text miniature size for [FormatText].
const (
	TextColumns = 80
	TextRows    = 24
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
//
// Pages come from exactly one of PageSizes, Paths or Dir.
type Options struct {
	// Input
	PageSizes []layout.Vec2 `json:"page_sizes,omitempty"`
	Names     []string      `json:"names,omitempty"` // labels for PageSizes
	Paths     []string      `json:"paths,omitempty"`
	Dir       string        `json:"dir,omitempty"`
	Order     pages.Order   `json:"order"` // listing order for Dir

	// Zoom and layout
	Viewport         layout.Vec2   `json:"viewport"`
	Orientation      layout.Vec2   `json:"orientation"`
	Distribution     layout.Axis   `json:"distribution"`
	Zoom             zoom.Settings `json:"zoom"`
	DoNotTransform   []bool        `json:"do_not_transform,omitempty"`
	Spacing          int32         `json:"spacing"` // zero places pages edge to edge
	WrapIndividually bool          `json:"wrap_individually,omitempty"`

	// Scroll is applied after layout. Equal destinations on both axes
	// scroll within the first, last or current page like
	// [layout.Layout.ScrollTo]; anything else scrolls over the union box.
	Scroll [2]layout.Scroll `json:"scroll"`

	// Render
	Formats []string `json:"formats,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Pages are the inputs in reading order with their original sizes.
	Pages []pages.Page

	// Zoomed are the page sizes after fitting.
	Zoomed []layout.Vec2

	// Layout is the arrangement after scrolling.
	Layout *layout.Layout

	// Arrangement is the exported snapshot of Layout.
	Arrangement render.Arrangement

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PageCount  int
	UnionSize  layout.Vec2
	ReadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, dot, svg, txt)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForRead(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForRead checks that exactly one page source is set. A non-nil
// empty PageSizes counts as a source without pages.
func (o *Options) ValidateForRead() error {
	sources := 0
	if o.PageSizes != nil {
		sources++
	}
	if len(o.Paths) > 0 {
		sources++
	}
	if o.Dir != "" {
		sources++
	}
	switch {
	case sources == 0:
		return errs.New(errs.ErrCodeInvalidInput, "one of page sizes, paths or dir is required")
	case sources > 1:
		return errs.New(errs.ErrCodeInvalidInput, "page sizes, paths and dir are mutually exclusive")
	}
	for i, s := range o.PageSizes {
		if err := errs.ValidateSize(fmt.Sprintf("page %d", i), s.Slice()); err != nil {
			return err
		}
	}
	for _, p := range o.Paths {
		if err := errs.ValidatePath(p); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for zoom and layout.
func (o *Options) SetLayoutDefaults() {
	if o.Viewport == (layout.Vec2{}) {
		o.Viewport = DefaultViewport
	}
	if o.Orientation == (layout.Vec2{}) {
		o.Orientation = layout.Vec2{1, 1}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for zoom and layout.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := errs.ValidateSize("viewport", o.Viewport.Slice()); err != nil {
		return err
	}
	if err := errs.ValidateOrientation(o.Orientation.Slice()); err != nil {
		return err
	}
	if err := errs.ValidateAxis(int(o.Distribution), len(o.Viewport)); err != nil {
		return err
	}
	if !o.Zoom.FitMode.Valid() {
		return errs.New(errs.ErrCodeInvalidFitMode, "invalid fit mode %d", int(o.Zoom.FitMode))
	}
	if o.Spacing < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "spacing must not be negative, got %d", o.Spacing)
	}
	for i, d := range o.Scroll {
		if !d.Valid() {
			return errs.New(errs.ErrCodeInvalidDestination, "invalid scroll destination %d at index %d", int32(d), i)
		}
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ZoomScreen returns the screen size handed to the zoom stage for n pages:
// the gaps between pages are taken off the distribution axis first.
func (o *Options) ZoomScreen(n int) layout.Vec2 {
	screen := o.Viewport
	if n > 1 {
		screen[o.Distribution] = max(1, screen[o.Distribution]-o.Spacing*int32(n-1))
	}
	return screen
}

// source names the page source for logs and hooks.
func (o *Options) source() string {
	switch {
	case o.Dir != "":
		return o.Dir
	case len(o.Paths) > 0:
		return "paths"
	}
	return "sizes"
}
