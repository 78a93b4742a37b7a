package layout

import (
	"slices"

	"github.com/thermitegod/mcomix-lite/pkg/box"
	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
)

// Special indices accepted by [Layout.ScrollToPredefinedAt].
const (
	FirstIndex = 0  // the first page
	LastIndex  = -1 // the last page
	UnionIndex = -2 // the union box
)

// Layout is the arrangement of a finite number of pages inside a viewport.
//
// Content boxes and the union box share one coordinate space whose origin is
// the union box's top-left corner. Only the viewport position changes after
// construction; a new geometry needs a new Layout.
//
// A Layout is not safe for concurrent mutation.
type Layout struct {
	contentBoxes []box.Box
	wrapperBoxes []box.Box
	unionBox     box.Box
	viewportBox  box.Box
	orientation  Vec2

	wrapIndividually bool
	currentIndex     int
	dirtyIndex       bool
}

type config struct {
	spacing          int32
	wrapIndividually bool
}

// Option configures [New].
type Option func(*config)

// WithSpacing sets the gap in pixels between neighbouring pages.
// The default is [box.DefaultSpacing].
func WithSpacing(px int32) Option {
	return func(c *config) { c.spacing = px }
}

// WithWrapIndividually gives every page its own wrapper box, grown to at
// least the viewport size. The union box then covers all wrappers. Without
// it there is a single wrapper, the union box itself.
func WithWrapIndividually(enabled bool) Option {
	return func(c *config) { c.wrapIndividually = enabled }
}

// New lays out pages of the given sizes, in reading order, along the
// distribution axis and centers them on the alignment axis.
//
// orientation holds 1 or -1 per axis. When the distribution axis reads
// backwards (right-to-left manga) the pages are arranged in reverse and the
// content boxes are returned in reading order again.
func New(contentSizes []Vec2, viewportSize, orientation Vec2, distribution, alignment Axis, opts ...Option) *Layout {
	cfg := config{spacing: box.DefaultSpacing}
	for _, opt := range opts {
		opt(&cfg)
	}

	reversed := orientation[distribution] == -1

	sizes := slices.Clone(contentSizes)
	if reversed {
		slices.Reverse(sizes)
	}

	boxes := make([]box.Box, len(sizes))
	for i, s := range sizes {
		boxes[i] = box.Sized(s.Slice())
	}

	boxes = box.AlignCenter(boxes, int(alignment), 0, orientation[alignment])
	boxes = box.Distribute(boxes, int(distribution), 0, cfg.spacing)

	viewport := viewportSize.Slice()
	o := orientation.Slice()

	var wrappers []box.Box
	var union box.Box
	if cfg.wrapIndividually {
		wrappers = make([]box.Box, len(boxes))
		for i, b := range boxes {
			wrappers[i] = b.WrapperBox(viewport, o)
		}
		union = boundingBox2D(wrappers, viewport)
	} else {
		union = boundingBox2D(boxes, viewport).WrapperBox(viewport, o)
		wrappers = []box.Box{union}
	}

	// Move everything so the union box starts at the origin.
	origin := union.Position()
	for i := range boxes {
		boxes[i] = boxes[i].TranslateOpposite(origin)
	}
	for i := range wrappers {
		wrappers[i] = wrappers[i].TranslateOpposite(origin)
	}
	union = union.TranslateOpposite(origin)

	if reversed {
		slices.Reverse(boxes)
		slices.Reverse(wrappers)
	}

	return &Layout{
		contentBoxes:     boxes,
		wrapperBoxes:     wrappers,
		unionBox:         union,
		viewportBox:      box.Sized(viewport),
		orientation:      orientation,
		wrapIndividually: cfg.wrapIndividually,
		currentIndex:     -1,
		dirtyIndex:       true,
	}
}

// boundingBox2D is box.BoundingBox, except that no pages yield a
// viewport-sized box at the origin. The union then covers the viewport with
// or without wrap-individually.
func boundingBox2D(boxes []box.Box, viewport []int32) box.Box {
	if len(boxes) == 0 {
		return box.Sized(viewport)
	}
	return box.BoundingBox(boxes)
}

// ContentBoxes returns the page boxes in reading order.
func (l *Layout) ContentBoxes() []box.Box { return slices.Clone(l.contentBoxes) }

// WrapperBoxes returns one wrapper per page with wrap-individually enabled,
// or the union box alone otherwise.
func (l *Layout) WrapperBoxes() []box.Box { return slices.Clone(l.wrapperBoxes) }

// UnionBox returns the box covering everything that can be scrolled over.
func (l *Layout) UnionBox() box.Box { return l.unionBox }

// ViewportBox returns the visible region.
func (l *Layout) ViewportBox() box.Box { return l.viewportBox }

// Orientation returns the per-axis reading direction.
func (l *Layout) Orientation() Vec2 { return l.orientation }

// SetOrientation replaces the orientation without recomputing the
// arrangement. It only affects subsequent scroll and current-page queries.
func (l *Layout) SetOrientation(orientation Vec2) {
	l.orientation = orientation
	l.dirtyIndex = true
}

// SetViewportPosition moves the viewport.
func (l *Layout) SetViewportPosition(pos Vec2) {
	l.viewportBox = l.viewportBox.SetPosition(pos.Slice())
	l.dirtyIndex = true
}

// CurrentIndex returns the index of the page closest to the viewport
// center, or -1 for a layout without pages.
func (l *Layout) CurrentIndex() int {
	if l.dirtyIndex {
		l.currentIndex = l.viewportBox.CurrentBoxIndex(l.orientation.Slice(), l.contentBoxes)
		l.dirtyIndex = false
	}
	return l.currentIndex
}

// ScrollToPredefined moves the viewport to a predefined destination per
// axis, relative to the union box. An invalid destination leaves the
// viewport untouched.
func (l *Layout) ScrollToPredefined(dest [2]Scroll) error {
	return l.scrollWithin(l.unionBox, dest)
}

// ScrollToPredefinedAt is like [Layout.ScrollToPredefined] but scrolls
// relative to the wrapper box of page index. index may be [UnionIndex] or
// [LastIndex]. Without wrap-individually the union box is always used.
func (l *Layout) ScrollToPredefinedAt(dest [2]Scroll, index int) error {
	if !l.wrapIndividually || index == UnionIndex {
		return l.scrollWithin(l.unionBox, dest)
	}
	if index == LastIndex {
		index = len(l.wrapperBoxes) - 1
	}
	if index < 0 || index >= len(l.wrapperBoxes) {
		return errs.New(errs.ErrCodeInvalidInput,
			"page index %d out of range [0, %d)", index, len(l.wrapperBoxes))
	}
	return l.scrollWithin(l.wrapperBoxes[index], dest)
}

// ScrollTo scrolls both axes to dest. Start scrolls within the first page,
// End within the last and anything else within the current page.
func (l *Layout) ScrollTo(dest Scroll) error {
	index := UnionIndex
	if len(l.contentBoxes) > 0 {
		switch dest {
		case ScrollStart:
			index = FirstIndex
		case ScrollEnd:
			index = LastIndex
		default:
			index = l.CurrentIndex()
		}
	}
	return l.ScrollToPredefinedAt([2]Scroll{dest, dest}, index)
}

func (l *Layout) scrollWithin(content box.Box, dest [2]Scroll) error {
	pos, err := scrollTo(content, l.viewportBox, l.orientation, dest)
	if err != nil {
		return err
	}
	l.SetViewportPosition(pos)
	return nil
}

// scrollTo returns the viewport position for dest. START and END are
// resolved against orientation so they always follow the reading order.
func scrollTo(content, viewport box.Box, orientation Vec2, dest [2]Scroll) (Vec2, error) {
	cp := content.Position()
	cs := content.Size()
	vs := viewport.Size()
	result := vec2Of(viewport.Position())

	for i := range result {
		d := dest[i]
		if d == ScrollKeep {
			continue
		}
		if !d.Valid() {
			return Vec2{}, errs.New(errs.ErrCodeInvalidDestination,
				"invalid destination %d at index %d", int32(d), i)
		}

		o := orientation[i]
		switch d {
		case ScrollEnd:
			d = Scroll(o)
		case ScrollStart:
			d = Scroll(-o)
		}

		invisible := cs[i] - vs[i]
		var offset int32
		switch d {
		case ScrollCenter:
			offset = box.CenterOffset1D(invisible, o)
		case ScrollForward:
			offset = invisible
		}
		result[i] = cp[i] + offset
	}
	return result, nil
}
