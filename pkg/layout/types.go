package layout

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
)

// =============================================================================
// Vec2 - Fixed 2D Geometry
// =============================================================================

// Vec2 is a 2D size, position or orientation in pixels.
type Vec2 [2]int32

// Slice returns the components as a slice, for use with package box.
func (v Vec2) Slice() []int32 { return []int32{v[0], v[1]} }

// String formats v as "WxH".
func (v Vec2) String() string { return fmt.Sprintf("%dx%d", v[0], v[1]) }

// vec2Of converts a two-element slice produced by package box.
func vec2Of(s []int32) Vec2 {
	var v Vec2
	copy(v[:], s)
	return v
}

// ParseVec2 parses "WxH" (or "W,H") into a Vec2.
func ParseVec2(s string) (Vec2, error) {
	sep := "x"
	if strings.Contains(s, ",") {
		sep = ","
	}
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), sep)
	if len(parts) != 2 {
		return Vec2{}, errs.New(errs.ErrCodeInvalidSize, "invalid size %q (want WxH)", s)
	}
	var v Vec2
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return Vec2{}, errs.Wrap(errs.ErrCodeInvalidSize, err, "invalid size %q", s)
		}
		v[i] = int32(n)
	}
	return v, nil
}

// =============================================================================
// Axes
// =============================================================================

// Axis names an axis by its role in a layout.
type Axis int

const (
	// Distribution is the axis along which pages are laid end-to-end.
	Distribution Axis = 0
	// Alignment is the axis on which page centers are lined up.
	Alignment Axis = 1
)

// Dimension names an axis by its screen direction.
type Dimension int

const (
	Width  Dimension = 0
	Height Dimension = 1
)

// AxisFor maps a screen dimension to the layout axis with the same index:
// Width is the distribution axis and Height the alignment axis.
func AxisFor(d Dimension) Axis { return Axis(d) }

// Dimension maps a layout axis back to its screen dimension.
func (a Axis) Dimension() Dimension { return Dimension(a) }

// Other returns the remaining axis of a 2D layout.
func (a Axis) Other() Axis { return 1 - a }

// Valid reports whether a indexes a 2D vector.
func (a Axis) Valid() bool { return a == 0 || a == 1 }

func (a Axis) String() string {
	switch a {
	case Distribution:
		return "distribution"
	case Alignment:
		return "alignment"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

func (d Dimension) String() string {
	switch d {
	case Width:
		return "width"
	case Height:
		return "height"
	}
	return fmt.Sprintf("Dimension(%d)", int(d))
}

// =============================================================================
// Scroll Destinations
// =============================================================================

// Scroll is a per-axis scroll destination.
type Scroll int32

const (
	ScrollEnd      Scroll = -4 // end of the reading order
	ScrollStart    Scroll = -3 // start of the reading order
	ScrollCenter   Scroll = -2 // center of the content
	ScrollBackward Scroll = -1 // towards smaller coordinates
	ScrollKeep     Scroll = 0  // keep the current position
	ScrollForward  Scroll = 1  // towards larger coordinates
)

// Valid reports whether s is one of the defined destinations.
func (s Scroll) Valid() bool { return s >= ScrollEnd && s <= ScrollForward }

func (s Scroll) String() string {
	switch s {
	case ScrollEnd:
		return "end"
	case ScrollStart:
		return "start"
	case ScrollCenter:
		return "center"
	case ScrollBackward:
		return "-"
	case ScrollKeep:
		return "keep"
	case ScrollForward:
		return "+"
	}
	return fmt.Sprintf("Scroll(%d)", int32(s))
}

// ParseScroll parses the names produced by [Scroll.String].
func ParseScroll(s string) (Scroll, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "end":
		return ScrollEnd, nil
	case "start":
		return ScrollStart, nil
	case "center":
		return ScrollCenter, nil
	case "-", "backward":
		return ScrollBackward, nil
	case "", "keep":
		return ScrollKeep, nil
	case "+", "forward":
		return ScrollForward, nil
	}
	return 0, errs.New(errs.ErrCodeInvalidDestination,
		"invalid scroll destination %q (must be one of: start, end, center, +, -, keep)", s)
}
