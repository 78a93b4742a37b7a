// Package config loads viewer preferences from a TOML file.
//
// A missing file is not an error: [LoadFile] falls back to [Default], and any
// key present in the file overrides the default. Unknown keys are rejected so
// that typos do not silently fall back to defaults.
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
	"github.com/thermitegod/mcomix-lite/pkg/layout"
	"github.com/thermitegod/mcomix-lite/pkg/pages"
	"github.com/thermitegod/mcomix-lite/pkg/zoom"
)

const (
	// AppName is the directory name under the XDG base directories.
	AppName = "mcomix-layout"

	// FileName is the preferences file name inside the config directory.
	FileName = "config.toml"
)

// =============================================================================
// Preferences
// =============================================================================

// Config holds all viewer preferences.
type Config struct {
	Zoom     Zoom     `toml:"zoom"`
	Layout   Layout   `toml:"layout"`
	Viewport Viewport `toml:"viewport"`
	Sort     Sort     `toml:"sort"`
}

// Zoom holds the fit policy.
type Zoom struct {
	FitMode       string  `toml:"fit_mode"`
	ScaleUp       bool    `toml:"scale_up"`
	UserZoomLog   float64 `toml:"user_zoom_log"`
	FitToSizeMode string  `toml:"fit_to_size_mode"`
	FitToSizePx   int32   `toml:"fit_to_size_px"`
}

// Layout holds the page arrangement preferences.
type Layout struct {
	Manga            bool   `toml:"manga"`            // right-to-left reading
	Vertical         bool   `toml:"vertical"`         // distribute pages top-to-bottom
	DoublePage       bool   `toml:"double_page"`      // show two pages per spread
	DoublePageMode   string `toml:"double_page_mode"` // pages shown alone: never, title, wide, always
	Spacing          int32  `toml:"spacing"`
	WrapIndividually bool   `toml:"wrap_individually"`
}

// Viewport is the screen size pages are fitted to.
type Viewport struct {
	Width  int32 `toml:"width"`
	Height int32 `toml:"height"`
}

// Sort holds file ordering preferences.
type Sort struct {
	By       string `toml:"by"`    // none, name, size, modified, literal
	Order    string `toml:"order"` // ascending or descending
	FoldCase bool   `toml:"fold_case"`
}

// Sort directions.
const (
	Ascending  = "ascending"
	Descending = "descending"
)

// Default returns the built-in preferences.
func Default() *Config {
	return &Config{
		Zoom: Zoom{
			FitMode:       zoom.Best.String(),
			ScaleUp:       true,
			FitToSizeMode: zoom.Height.String(),
			FitToSizePx:   1800,
		},
		Layout: Layout{
			Manga:          true,
			DoublePage:     true,
			DoublePageMode: pages.SingleAlways.String(),
			Spacing:        2,
		},
		Viewport: Viewport{Width: 640, Height: 600},
		Sort: Sort{
			By:       pages.SortName.String(),
			Order:    Ascending,
			FoldCase: true,
		},
	}
}

// =============================================================================
// Loading
// =============================================================================

// DefaultPath returns the preferences file location following the XDG
// standard (~/.config/mcomix-layout/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, FileName), nil
}

// Load decodes preferences from r on top of [Default] and validates them.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse preferences")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errs.New(errs.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads preferences from path. A missing file yields [Default].
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return nil, errs.Wrap(errs.GetCode(err), err, "load %s", path)
	}
	return cfg, nil
}

// Write encodes c as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// =============================================================================
// Validation and Conversion
// =============================================================================

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if _, err := zoom.ParseFitMode(c.Zoom.FitMode); err != nil {
		return err
	}
	if c.Zoom.FitToSizeMode != "" {
		m, err := zoom.ParseFitMode(c.Zoom.FitToSizeMode)
		if err != nil {
			return err
		}
		if m != zoom.Width && m != zoom.Height {
			return errs.New(errs.ErrCodeInvalidConfig,
				"fit_to_size_mode must be width or height, got %q", c.Zoom.FitToSizeMode)
		}
	}
	if c.Zoom.FitToSizePx < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "fit_to_size_px must not be negative, got %d", c.Zoom.FitToSizePx)
	}
	if _, err := pages.ParseSinglePage(c.Layout.DoublePageMode); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "double_page_mode")
	}
	if c.Layout.Spacing < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "spacing must not be negative, got %d", c.Layout.Spacing)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig,
			"viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	if _, err := pages.ParseSortBy(c.Sort.By); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "sort by")
	}
	if c.Sort.Order != Ascending && c.Sort.Order != Descending {
		return errs.New(errs.ErrCodeInvalidConfig,
			"sort order must be %s or %s, got %q", Ascending, Descending, c.Sort.Order)
	}
	return nil
}

// ZoomSettings converts the zoom preferences. Call [Config.Validate] first;
// invalid modes fall back to [zoom.Best] and no fit-to-size.
func (c *Config) ZoomSettings() zoom.Settings {
	mode, _ := zoom.ParseFitMode(c.Zoom.FitMode)
	s := zoom.Settings{
		FitMode:     mode,
		ScaleUp:     c.Zoom.ScaleUp,
		UserZoomLog: c.Zoom.UserZoomLog,
	}
	if ftsMode, err := zoom.ParseFitMode(c.Zoom.FitToSizeMode); err == nil {
		s.FitToSize = zoom.FitToSize{Mode: ftsMode, Pixels: c.Zoom.FitToSizePx}
	}
	return s
}

// Orientation returns the reading direction per axis.
func (c *Config) Orientation() layout.Vec2 {
	o := layout.Vec2{1, 1}
	if c.Layout.Manga {
		o[layout.Width] = -1
	}
	return o
}

// DistributionAxis returns the axis pages are laid along.
func (c *Config) DistributionAxis() layout.Axis {
	if c.Layout.Vertical {
		return layout.AxisFor(layout.Height)
	}
	return layout.AxisFor(layout.Width)
}

// ViewportSize returns the configured screen size.
func (c *Config) ViewportSize() layout.Vec2 {
	return layout.Vec2{c.Viewport.Width, c.Viewport.Height}
}

// Spreads groups pages of the given sizes the way double page mode shows
// them.
func (c *Config) Spreads(sizes []layout.Vec2) pages.Spreads {
	single, _ := pages.ParseSinglePage(c.Layout.DoublePageMode)
	return pages.Spreads{
		Sizes:  sizes,
		Double: c.Layout.DoublePage,
		Single: single,
	}
}

// FileOrder returns the order directory listings are sorted in.
func (c *Config) FileOrder() pages.Order {
	by, _ := pages.ParseSortBy(c.Sort.By)
	return pages.Order{
		By:         by,
		Descending: c.Sort.Order == Descending,
		FoldCase:   c.Sort.FoldCase,
	}
}
