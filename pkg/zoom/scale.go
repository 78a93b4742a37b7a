package zoom

import (
	"math"

	"github.com/thermitegod/mcomix-lite/pkg/layout"
)

// Zoom constants.
const (
	IdentityZoom      = 1.0
	IdentityZoomLog   = 0.0
	UserZoomLogScale1 = 4.0
	MinUserZoomLog    = -20
	MaxUserZoomLog    = 12
)

// NoLimit marks an axis without a size cap in [Limits].
const NoLimit int32 = -1

// Limits holds a pixel cap per axis, or [NoLimit].
type Limits [2]int32

// Settings is the zoom policy: fit mode, upscaling and the user's
// logarithmic zoom. The zero value fits best without upscaling.
type Settings struct {
	FitMode     FitMode
	ScaleUp     bool
	UserZoomLog float64
	FitToSize   FitToSize
}

// UserScale returns the multiplier for a logarithmic user zoom level.
// Four steps double the size.
func UserScale(zoomLog float64) float64 {
	return math.Pow(2, zoomLog/UserZoomLogScale1)
}

// Scale multiplies every component of t by factor.
func Scale(t layout.Vec2, factor float64) [2]float64 {
	return [2]float64{float64(t[0]) * factor, float64(t[1]) * factor}
}

// ScaleImageSize scales size by scale and rounds the result, never
// producing an empty axis.
func ScaleImageSize(size layout.Vec2, scale float64) layout.Vec2 {
	s := Scale(size, scale)
	r := RoundNonEmpty(s[:])
	return layout.Vec2{r[0], r[1]}
}

// RoundNonEmpty rounds every value half away from zero. Results that would
// be zero or negative become 1.
func RoundNonEmpty(t []float64) []int32 {
	result := make([]int32, len(t))
	for i, x := range t {
		r := int32(math.Round(x))
		if r <= 0 {
			r = 1
		}
		result[i] = r
	}
	return result
}

// FixPageSizes scales pages so that they share the largest extent on the
// axis orthogonal to distribution. Pages flagged in doNotTransform and
// inputs of fewer than two pages are left untouched. Results are truncated
// towards zero.
func FixPageSizes(sizes []layout.Vec2, distribution layout.Axis, doNotTransform []bool) []layout.Vec2 {
	result := make([]layout.Vec2, len(sizes))
	copy(result, sizes)
	if len(sizes) < 2 {
		return result
	}

	orth := distribution.Other()
	var maxSize int32
	for _, s := range sizes {
		maxSize = max(maxSize, s[orth])
	}

	for i, s := range sizes {
		if flagged(doNotTransform, i) || s[orth] <= 0 {
			continue
		}
		ratio := float64(maxSize) / float64(s[orth])
		result[i] = layout.Vec2{
			int32(float64(s[0]) * ratio),
			int32(float64(s[1]) * ratio),
		}
	}
	return result
}

// UnionSize returns the space pages occupy when laid end-to-end along
// distribution: the sum on that axis and the maximum on the other.
func UnionSize(sizes []layout.Vec2, distribution layout.Axis) layout.Vec2 {
	var union layout.Vec2
	if len(sizes) == 0 {
		return union
	}
	for _, s := range sizes {
		union[0] = max(union[0], s[0])
		union[1] = max(union[1], s[1])
	}
	union[distribution] = 0
	for _, s := range sizes {
		union[distribution] += s[distribution]
	}
	return union
}

// CalcLimits returns the per-axis caps mode imposes for content of size
// union on a screen of size screen.
//
// [Best] caps both axes. [Manual] caps both only when upscaling is allowed
// and the content is strictly smaller than the screen on every axis, and
// nothing otherwise. [Width] and [Height] cap their axis. [Size] caps the
// axis configured in fts to its pixel size, or nothing when fts is unset.
func CalcLimits(union, screen layout.Vec2, mode FitMode, allowUpscaling bool, fts FitToSize) Limits {
	manual := mode == Manual
	if mode == Best || (manual && allowUpscaling && union[0] < screen[0] && union[1] < screen[1]) {
		return Limits{screen[0], screen[1]}
	}

	result := Limits{NoLimit, NoLimit}
	if manual {
		return result
	}

	fixed := NoLimit
	if mode == Size {
		if !fts.Enabled() {
			return result
		}
		mode = fts.Mode
		fixed = fts.Pixels
	}

	var axis layout.Dimension
	switch mode {
	case Width:
		axis = layout.Width
	case Height:
		axis = layout.Height
	default:
		return result
	}

	if fixed != NoLimit {
		result[axis] = fixed
	} else {
		result[axis] = screen[axis]
	}
	return result
}

// PreferredScale returns the largest scale that keeps union within limits
// on every capped axis except distribution, or [IdentityZoom] when no such
// axis is capped.
func PreferredScale(union layout.Vec2, limits Limits, distribution layout.Axis) float64 {
	minScale := -1.0
	for i, limit := range limits {
		if layout.Axis(i) == distribution || limit == NoLimit {
			continue
		}
		s := float64(limit) / float64(union[i])
		if minScale == -1 || s < minScale {
			minScale = s
		}
	}
	if minScale == -1 {
		return IdentityZoom
	}
	return minScale
}

// ZoomedSize returns the display size of every page under s.
//
// Pages are first harmonized with [FixPageSizes], then scaled to the fit
// mode's limits. When the distribution axis is capped the per-page scales
// come from [ScaleDistributed] so that the pages fill that axis exactly.
// Finally the user zoom is applied to every page not flagged in
// doNotTransform; flagged pages keep their original size.
func ZoomedSize(s Settings, sizes []layout.Vec2, screen layout.Vec2, distribution layout.Axis, doNotTransform []bool) []layout.Vec2 {
	fitted := FixPageSizes(sizes, distribution, doNotTransform)
	union := UnionSize(fitted, distribution)
	limits := CalcLimits(union, screen, s.FitMode, s.ScaleUp, s.FitToSize)

	prefScale := PreferredScale(union, limits, distribution)
	scales := make([]float64, len(fitted))
	prescaled := make([]layout.Vec2, len(fitted))
	for i, size := range fitted {
		scales[i] = prefScale
		if flagged(doNotTransform, i) {
			scales[i] = IdentityZoom
		}
		prescaled[i] = ScaleImageSize(size, scales[i])
	}
	prescaledUnion := UnionSize(prescaled, distribution)

	otherLimits := false
	for i, limit := range limits {
		if layout.Axis(i) != distribution && limit != NoLimit {
			otherLimits = true
			break
		}
	}

	if limits[distribution] != NoLimit &&
		(prescaledUnion[distribution] > screen[distribution] || !otherLimits) {
		distributed := ScaleDistributed(fitted, distribution, limits[distribution], s.ScaleUp, doNotTransform)
		if otherLimits {
			for i := range scales {
				scales[i] = min(scales[i], distributed[i])
			}
		} else {
			scales = distributed
		}
	}

	if !s.ScaleUp {
		for i := range scales {
			scales[i] = min(scales[i], IdentityZoom)
		}
	}

	userScale := UserScale(s.UserZoomLog)
	result := make([]layout.Vec2, len(fitted))
	for i, size := range fitted {
		factor := userScale
		if flagged(doNotTransform, i) {
			factor = IdentityZoom
		}
		result[i] = ScaleImageSize(size, scales[i]*factor)
	}
	return result
}

// flagged reports doNotTransform[i], treating missing entries as false.
func flagged(doNotTransform []bool, i int) bool {
	return i < len(doNotTransform) && doNotTransform[i]
}
