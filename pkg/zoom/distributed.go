package zoom

import "github.com/thermitegod/mcomix-lite/pkg/layout"

// scaling is the per-page state of [ScaleDistributed].
type scaling struct {
	scale       float64 // current scale
	idealVol    float32 // volume of the page at the uniform scale
	canShrink   bool    // may still lose one pixel on the axis
	forcedScale float64 // scale after losing that pixel
	forcedErr   float32 // relative volume error of forcedScale
}

// ScaleDistributed returns per-page scales such that pages laid end-to-end
// along axis fill at most maxSize pixels, as closely as rounding permits.
//
// Every page starts at the uniform scale maxSize/total. Rounding may
// overshoot, so pages are shrunk by one pixel on axis at a time, least
// distorting first, until the total fits. Pages with equal ideal volume are
// always shrunk together so that equally sized pages stay equal; each page
// is shrunk at most once. If nothing can be shrunk further the result may
// still exceed maxSize.
//
// With at least as many pages as maxSize every page is scaled to a single
// pixel on axis, ignoring doNotTransform. When the pages already fit and
// allowUpscaling is false every scale is [IdentityZoom]. Pages flagged in
// doNotTransform otherwise keep [IdentityZoom].
func ScaleDistributed(sizes []layout.Vec2, axis layout.Axis, maxSize int32, allowUpscaling bool, doNotTransform []bool) []float64 {
	n := len(sizes)
	if n == 0 {
		return []float64{}
	}
	if int64(n) >= int64(maxSize) {
		result := make([]float64, n)
		for i, s := range sizes {
			result[i] = float64(1 / float32(s[axis]))
		}
		return result
	}

	var total int64
	for _, s := range sizes {
		total += int64(s[axis])
	}
	if total <= int64(maxSize) && !allowUpscaling {
		result := make([]float64, n)
		for i := range result {
			result[i] = IdentityZoom
		}
		return result
	}

	scale := float64(maxSize) / float64(total)
	data := make([]scaling, n)
	total = 0
	for i, size := range sizes {
		if flagged(doNotTransform, i) {
			total += int64(size[axis])
			data[i] = scaling{scale: IdentityZoom, idealVol: IdentityZoom, forcedScale: IdentityZoom}
			continue
		}

		ideal := Scale(size, scale)
		idealVol := volume32(ideal[:])

		// Rescale from the rounded length so every axis shrinks
		// monotonically with the page.
		approx := RoundNonEmpty(ideal[axis : axis+1])[0]
		d := scaling{
			scale:     float64(approx) / float64(size[axis]),
			idealVol:  idealVol,
			canShrink: approx > 1,
		}
		total += int64(approx)

		if d.canShrink {
			d.forcedScale = float64(approx-1) / float64(size[axis])
			forced := ScaleImageSize(size, d.forcedScale)
			forcedVol := volume32([]float64{float64(forced[0]), float64(forced[1])})
			d.forcedErr = (forcedVol - idealVol) / idealVol
		}
		data[i] = d
	}

	for dirty := true; dirty && total > int64(maxSize); {
		dirty = false

		best := -1
		for i := range data {
			if !data[i].canShrink {
				continue
			}
			if best == -1 || data[i].forcedErr < data[best].forcedErr {
				best = i
			}
		}
		if best == -1 {
			break
		}

		vol := data[best].idealVol
		for i := best; i < n; i++ {
			d := &data[i]
			if !d.canShrink || d.idealVol != vol {
				continue
			}
			d.scale = d.forcedScale
			d.canShrink = false
			total--
			dirty = true
		}
	}

	result := make([]float64, n)
	for i, d := range data {
		result[i] = d.scale
	}
	return result
}

// volume32 multiplies t in single precision. Equal-volume grouping in
// ScaleDistributed depends on this precision.
func volume32(t []float64) float32 {
	v := float32(1)
	for _, x := range t {
		v = float32(float64(v) * x)
	}
	return v
}
