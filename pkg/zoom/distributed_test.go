package zoom

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/thermitegod/mcomix-lite/pkg/layout"
)

func TestScaleDistributed(t *testing.T) {
	tests := []struct {
		name    string
		sizes   []layout.Vec2
		maxSize int32
		up      bool
		dnt     []bool
		want    []float64
	}{
		{
			name:    "no pages",
			sizes:   nil,
			maxSize: 100,
			want:    []float64{},
		},
		{
			name:    "more pages than pixels",
			sizes:   []layout.Vec2{{4, 2}, {8, 2}},
			maxSize: 2,
			dnt:     []bool{true, true},
			want:    []float64{0.25, 0.125},
		},
		{
			name:    "already fits",
			sizes:   []layout.Vec2{{100, 50}, {100, 50}},
			maxSize: 300,
			want:    []float64{1, 1},
		},
		{
			name:    "uniform shrink",
			sizes:   []layout.Vec2{{100, 50}, {100, 50}},
			maxSize: 150,
			want:    []float64{0.75, 0.75},
		},
		{
			name:    "upscale",
			sizes:   []layout.Vec2{{100, 50}, {100, 50}},
			maxSize: 300,
			up:      true,
			want:    []float64{1.5, 1.5},
		},
		{
			name:    "equal pages shrink together",
			sizes:   []layout.Vec2{{10, 10}, {10, 10}, {10, 10}},
			maxSize: 20,
			want:    []float64{0.6, 0.6, 0.6},
		},
		{
			name:    "rounding overshoot",
			sizes:   []layout.Vec2{{1454, 2062}, {1454, 2062}},
			maxSize: 2417,
			up:      true,
			want:    []float64{1208.0 / 1454, 1208.0 / 1454},
		},
		{
			name:    "smallest forced error shrinks first",
			sizes:   []layout.Vec2{{10, 10}, {10, 10}, {30, 30}},
			maxSize: 38,
			want:    []float64{0.7, 0.7, 23.0 / 30},
		},
		{
			name:    "flagged page keeps identity",
			sizes:   []layout.Vec2{{100, 50}, {100, 50}},
			maxSize: 150,
			dnt:     []bool{true, false},
			want:    []float64{1, 0.74},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScaleDistributed(tt.sizes, layout.Distribution, tt.maxSize, tt.up, tt.dnt)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ScaleDistributed() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScaleDistributedFits(t *testing.T) {
	sets := [][]layout.Vec2{
		{{1454, 2062}, {1454, 2062}},
		{{333, 100}, {517, 200}, {91, 40}, {1024, 768}},
		{{7, 7}, {7, 7}, {7, 7}, {7, 7}, {7, 7}},
		{{1000, 10}, {3, 3000}},
	}

	for _, sizes := range sets {
		for _, maxSize := range []int32{17, 100, 999, 2417} {
			if int(maxSize) <= len(sizes) {
				continue
			}
			scales := ScaleDistributed(sizes, layout.Distribution, maxSize, true, nil)
			var total int32
			for i, s := range sizes {
				got := ScaleImageSize(s, scales[i])
				if got[0] < 1 || got[1] < 1 {
					t.Errorf("%v max %d: page %d scaled to empty %v", sizes, maxSize, i, got)
				}
				total += got[0]
			}
			// Every page can lose a pixel once, so the greedy pass always
			// reaches the target unless pages are already one pixel wide.
			if total > maxSize {
				t.Errorf("%v max %d: total %d exceeds limit", sizes, maxSize, total)
			}
		}
	}
}
