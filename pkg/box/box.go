package box

import (
	"fmt"
	"math"
	"slices"

	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
)

// DefaultSpacing is the gap in pixels that [Distribute] callers use between
// neighbouring boxes unless configured otherwise.
const DefaultSpacing int32 = 2

// Box is an immutable axis-aligned rectangle in N dimensions.
// The zero value is a box with no dimensions.
type Box struct {
	position []int32
	size     []int32
}

// New creates a box at position with the given size. Both slices must have
// the same length; a mismatch is the only contract violation in this package
// and is reported as an [errs.ErrCodeDimensionMismatch] error.
func New(position, size []int32) (Box, error) {
	if len(position) != len(size) {
		return Box{}, errs.New(errs.ErrCodeDimensionMismatch,
			"box has different dimensions: %d != %d", len(position), len(size))
	}
	return Box{position: slices.Clone(position), size: slices.Clone(size)}, nil
}

// MustNew is like [New] but panics on a dimension mismatch.
func MustNew(position, size []int32) Box {
	b, err := New(position, size)
	if err != nil {
		panic(err)
	}
	return b
}

// Sized creates a box of the given size positioned at the origin.
func Sized(size []int32) Box {
	return Box{position: make([]int32, len(size)), size: slices.Clone(size)}
}

// Dimensions returns the number of axes.
func (b Box) Dimensions() int { return len(b.position) }

// Size returns a copy of the box size.
func (b Box) Size() []int32 { return slices.Clone(b.size) }

// Position returns a copy of the box position.
func (b Box) Position() []int32 { return slices.Clone(b.position) }

// SetPosition returns a box of the same size at a new position.
// The position is expected to have the same dimensionality as b.
func (b Box) SetPosition(position []int32) Box {
	return Box{position: slices.Clone(position), size: slices.Clone(b.size)}
}

// SetSize returns a box at the same position with a new size.
func (b Box) SetSize(size []int32) Box {
	return Box{position: slices.Clone(b.position), size: slices.Clone(size)}
}

// TranslateOpposite returns a box of the same size whose position is
// position - delta, component-wise.
func (b Box) TranslateOpposite(delta []int32) Box {
	p := make([]int32, len(b.position))
	for i := range p {
		p[i] = b.position[i] - delta[i]
	}
	return Box{position: p, size: slices.Clone(b.size)}
}

// Equal reports whether both boxes have the same position and size.
func (b Box) Equal(other Box) bool {
	return slices.Equal(b.position, other.position) && slices.Equal(b.size, other.size)
}

// String implements fmt.Stringer.
func (b Box) String() string {
	return fmt.Sprintf("Box(position=%v, size=%v)", b.position, b.size)
}

// CenterOffset1D returns the offset that centers something delta pixels
// smaller inside a larger span. The odd pixel goes towards the end of the
// reading direction: orientation -1 rounds up, anything else rounds down.
// Negative deltas use an arithmetic shift, so they round towards -inf.
func CenterOffset1D(delta, orientation int32) int32 {
	if orientation == -1 {
		delta++
	}
	return delta >> 1
}

// AlignCenter returns boxes moved along axis so that their centers line up
// with the center of boxes[fix]. An odd fix size is rounded up to the next
// even number first.
func AlignCenter(boxes []Box, axis, fix int, orientation int32) []Box {
	if len(boxes) == 0 {
		return nil
	}

	center := boxes[fix]
	cs := center.size[axis]
	if cs%2 != 0 {
		cs++
	}
	cp := center.position[axis]

	result := make([]Box, len(boxes))
	for i, b := range boxes {
		p := b.Position()
		p[axis] = cp + CenterOffset1D(cs-b.size[axis], orientation)
		result[i] = Box{position: p, size: b.Size()}
	}
	return result
}

// Distribute lays boxes out end-to-end along axis, spacing pixels apart.
// boxes[fix] keeps its position; boxes after it are placed walking forward
// and boxes before it walking backward.
func Distribute(boxes []Box, axis, fix int, spacing int32) []Box {
	if len(boxes) == 0 {
		return nil
	}

	result := make([]Box, len(boxes))
	start := boxes[fix].position[axis]

	sum := start
	for i := fix; i < len(boxes); i++ {
		b := boxes[i]
		p := b.Position()
		p[axis] = sum
		result[i] = Box{position: p, size: b.Size()}
		sum += b.size[axis] + spacing
	}

	sum = start
	for i := fix - 1; i >= 0; i-- {
		b := boxes[i]
		p := b.Position()
		sum -= b.size[axis] + spacing
		p[axis] = sum
		result[i] = Box{position: p, size: b.Size()}
	}

	return result
}

// WrapperBox returns a box that is at least viewport in every dimension and
// keeps b centered inside it.
func (b Box) WrapperBox(viewport, orientation []int32) Box {
	n := len(b.size)
	size := make([]int32, n)
	position := make([]int32, n)
	for i := 0; i < n; i++ {
		c := b.size[i]
		size[i] = max(c, viewport[i])
		position[i] = CenterOffset1D(c-size[i], orientation[i]) + b.position[i]
	}
	return Box{position: position, size: size}
}

// BoundingBox returns the smallest box that contains every box. The
// bounding box of no boxes is the zero Box.
func BoundingBox(boxes []Box) Box {
	if len(boxes) == 0 {
		return Box{}
	}

	n := boxes[0].Dimensions()
	mins := make([]int32, n)
	maxes := make([]int32, n)
	for i := range mins {
		mins[i] = math.MaxInt32
		maxes[i] = math.MinInt32
	}

	for _, b := range boxes {
		for i := 0; i < n; i++ {
			p := b.position[i]
			mins[i] = min(mins[i], p)
			maxes[i] = max(maxes[i], p+b.size[i])
		}
	}

	size := make([]int32, n)
	for i := range size {
		size[i] = maxes[i] - mins[i]
	}
	return Box{position: mins, size: size}
}
