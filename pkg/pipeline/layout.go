package pipeline

import (
	"github.com/thermitegod/mcomix-lite/pkg/layout"
	"github.com/thermitegod/mcomix-lite/pkg/zoom"
)

// ComputeLayout fits sizes to the viewport, lays them out and applies the
// requested scroll. It returns the zoomed sizes with the layout.
func (r *Runner) ComputeLayout(sizes []layout.Vec2, opts Options) ([]layout.Vec2, *layout.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, nil, err
	}
	r.applyLogger(&opts)

	screen := opts.ZoomScreen(len(sizes))
	zoomed := zoom.ZoomedSize(opts.Zoom, sizes, screen, opts.Distribution, opts.DoNotTransform)
	opts.Logger.Debug("zoomed pages",
		"fit", opts.Zoom.FitMode,
		"screen", screen,
		"sizes", zoomed)

	l := layout.New(zoomed, opts.Viewport, opts.Orientation,
		opts.Distribution, opts.Distribution.Other(),
		layout.WithSpacing(opts.Spacing),
		layout.WithWrapIndividually(opts.WrapIndividually))

	if err := scroll(l, opts.Scroll); err != nil {
		return nil, nil, err
	}
	return zoomed, l, nil
}

func scroll(l *layout.Layout, dest [2]layout.Scroll) error {
	switch {
	case dest[0] == layout.ScrollKeep && dest[1] == layout.ScrollKeep:
		return nil
	case dest[0] == dest[1]:
		return l.ScrollTo(dest[0])
	default:
		return l.ScrollToPredefined(dest)
	}
}
