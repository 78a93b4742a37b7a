// Package box provides an immutable N-dimensional rectangle and the
// alignment primitives used to arrange pages.
//
// # Overview
//
// A [Box] is a position and a size of equal dimensionality. Every method
// returns a new Box; nothing is mutated in place, so boxes can be shared
// freely between goroutines.
//
// The package-level helpers operate on slices of boxes:
//
//   - [AlignCenter]: line up box centers on one axis against a reference box
//   - [Distribute]: lay boxes end-to-end on one axis with a fixed gap
//   - [BoundingBox]: the smallest box covering a set of boxes
//
// [Box.WrapperBox] grows a box to at least the viewport size while keeping
// the original centered, which is how a layout guarantees there is always
// something to scroll over.
//
// # Orientation
//
// Orientation values are 1 (reading towards larger coordinates) or -1
// (reading towards smaller coordinates, e.g. right-to-left manga). They only
// matter when a span has to be split unevenly: [CenterOffset1D] hands the odd
// pixel to the end of the reading direction.
//
// # Nearest boxes
//
// [ClosestBoxes] and [Box.CurrentBoxIndex] find the page a viewport is
// looking at, breaking distance ties towards the start of the reading order.
package box
