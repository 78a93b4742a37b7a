package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thermitegod/mcomix-lite/pkg/config"
	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
	"github.com/thermitegod/mcomix-lite/pkg/layout"
	"github.com/thermitegod/mcomix-lite/pkg/pipeline"
)

// geometryFlags are the zoom and layout flags shared by the commands that
// arrange pages. Each flag overrides its preference only when given.
type geometryFlags struct {
	sizes      []string
	viewport   string
	fit        string
	scaleUp    bool
	zoomLog    float64
	ftsMode    string
	ftsPx      int32
	manga      bool
	vertical   bool
	doublePage bool
	spacing    int32
	wrap       bool
	dnt        []int
	foldCase   bool
	sortBy     string
	reverse    bool
	singleMode string
}

func (f *geometryFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringSliceVarP(&f.sizes, "size", "s", nil, "page size as WxH (repeatable)")
	fl.StringVar(&f.viewport, "viewport", "", "screen size as WxH")
	fl.StringVar(&f.fit, "fit", "", "fit mode: best, width, height, size, manual")
	fl.BoolVar(&f.scaleUp, "scale-up", false, "allow pages to grow beyond their size")
	fl.Float64Var(&f.zoomLog, "zoom-log", 0, "user zoom level (4 steps double the size)")
	fl.StringVar(&f.ftsMode, "fit-to-size-mode", "", "axis capped by the size fit mode: width or height")
	fl.Int32Var(&f.ftsPx, "fit-to-size-px", 0, "pixel size for the size fit mode")
	fl.BoolVar(&f.manga, "manga", false, "read right to left")
	fl.BoolVar(&f.vertical, "vertical", false, "lay pages out top to bottom")
	fl.BoolVar(&f.doublePage, "double-page", false, "show two pages per spread")
	fl.Int32Var(&f.spacing, "spacing", 0, "gap between pages in pixels")
	fl.BoolVar(&f.wrap, "wrap", false, "give every page its own scroll area")
	fl.IntSliceVar(&f.dnt, "dnt", nil, "indices of pages kept at their original size")
	fl.StringVar(&f.singleMode, "double-page-mode", "", "pages shown alone in double page mode: never, title, wide, always")
	registerSortFlags(cmd, &f.foldCase, &f.sortBy, &f.reverse)
}

// apply copies the flags the user set onto cfg and validates the result.
func (f *geometryFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fl := cmd.Flags()
	if fl.Changed("viewport") {
		v, err := layout.ParseVec2(f.viewport)
		if err != nil {
			return err
		}
		cfg.Viewport = config.Viewport{Width: v[0], Height: v[1]}
	}
	if fl.Changed("fit") {
		cfg.Zoom.FitMode = f.fit
	}
	if fl.Changed("scale-up") {
		cfg.Zoom.ScaleUp = f.scaleUp
	}
	if fl.Changed("zoom-log") {
		cfg.Zoom.UserZoomLog = f.zoomLog
	}
	if fl.Changed("fit-to-size-mode") {
		cfg.Zoom.FitToSizeMode = f.ftsMode
	}
	if fl.Changed("fit-to-size-px") {
		cfg.Zoom.FitToSizePx = f.ftsPx
	}
	if fl.Changed("manga") {
		cfg.Layout.Manga = f.manga
	}
	if fl.Changed("vertical") {
		cfg.Layout.Vertical = f.vertical
	}
	if fl.Changed("double-page") {
		cfg.Layout.DoublePage = f.doublePage
	}
	if fl.Changed("spacing") {
		cfg.Layout.Spacing = f.spacing
	}
	if fl.Changed("wrap") {
		cfg.Layout.WrapIndividually = f.wrap
	}
	if fl.Changed("double-page-mode") {
		cfg.Layout.DoublePageMode = f.singleMode
	}
	applySortFlags(cmd, cfg, f.foldCase, f.sortBy, f.reverse)
	return cfg.Validate()
}

// registerSortFlags adds the file ordering flags.
func registerSortFlags(cmd *cobra.Command, foldCase *bool, by *string, reverse *bool) {
	fl := cmd.Flags()
	fl.BoolVar(foldCase, "fold-case", false, "ignore case when ordering file names")
	fl.StringVar(by, "sort-by", "", "file order: none, name, size, modified, literal")
	fl.BoolVar(reverse, "reverse", false, "reverse the file order")
}

func applySortFlags(cmd *cobra.Command, cfg *config.Config, foldCase bool, by string, reverse bool) {
	fl := cmd.Flags()
	if fl.Changed("fold-case") {
		cfg.Sort.FoldCase = foldCase
	}
	if fl.Changed("sort-by") {
		cfg.Sort.By = by
	}
	if fl.Changed("reverse") {
		cfg.Sort.Order = config.Ascending
		if reverse {
			cfg.Sort.Order = config.Descending
		}
	}
}

// pageSizes returns the sizes given with --size followed by those given
// as positional arguments.
func (f *geometryFlags) pageSizes(args []string) ([]layout.Vec2, error) {
	return parseSizes(append(append([]string{}, f.sizes...), args...))
}

// doNotTransform expands the --dnt indices to one flag per page.
func (f *geometryFlags) doNotTransform(n int) ([]bool, error) {
	if len(f.dnt) == 0 {
		return nil, nil
	}
	dnt := make([]bool, n)
	for _, i := range f.dnt {
		if i < 0 || i >= n {
			return nil, errs.New(errs.ErrCodeInvalidInput, "--dnt index %d out of range [0, %d)", i, n)
		}
		dnt[i] = true
	}
	return dnt, nil
}

// options builds pipeline options from effective preferences.
func options(cfg *config.Config) pipeline.Options {
	return pipeline.Options{
		Order:            cfg.FileOrder(),
		Viewport:         cfg.ViewportSize(),
		Orientation:      cfg.Orientation(),
		Distribution:     cfg.DistributionAxis(),
		Zoom:             cfg.ZoomSettings(),
		Spacing:          cfg.Layout.Spacing,
		WrapIndividually: cfg.Layout.WrapIndividually,
	}
}

func parseSizes(values []string) ([]layout.Vec2, error) {
	sizes := make([]layout.Vec2, 0, len(values))
	for _, v := range values {
		s, err := layout.ParseVec2(v)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, s)
	}
	return sizes, nil
}

// parseScroll parses "dest" or "dest,dest". A single destination is used
// for both axes.
func parseScroll(s string) ([2]layout.Scroll, error) {
	parts := strings.Split(s, ",")
	if len(parts) > 2 {
		return [2]layout.Scroll{}, errs.New(errs.ErrCodeInvalidDestination,
			"scroll %q: want one or two destinations", s)
	}
	var dest [2]layout.Scroll
	for i, p := range parts {
		d, err := layout.ParseScroll(p)
		if err != nil {
			return dest, err
		}
		dest[i] = d
	}
	if len(parts) == 1 {
		dest[1] = dest[0]
	}
	return dest, nil
}

// fmtScale formats the ratio of zoomed to original on the first axis.
func fmtScale(original, zoomed layout.Vec2) string {
	if original[0] == 0 {
		return "-"
	}
	return fmt.Sprintf("%.3f", float64(zoomed[0])/float64(original[0]))
}
