package layout

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/thermitegod/mcomix-lite/pkg/box"
	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
)

func positions(boxes []box.Box) [][]int32 {
	out := make([][]int32, len(boxes))
	for i, b := range boxes {
		out[i] = b.Position()
	}
	return out
}

func TestNew(t *testing.T) {
	screen := Vec2{2417, 1363}

	tests := []struct {
		name         string
		sizes        []Vec2
		viewport     Vec2
		orientation  Vec2
		distribution Axis
		alignment    Axis
		wantPos      [][]int32
		wantUnion    box.Box
	}{
		{
			name:         "unit page",
			sizes:        []Vec2{{1, 1}},
			viewport:     Vec2{1, 1},
			orientation:  Vec2{1, 1},
			distribution: Distribution,
			alignment:    Distribution,
			wantPos:      [][]int32{{0, 0}},
			wantUnion:    box.Sized([]int32{1, 1}),
		},
		{
			name:         "single page",
			sizes:        []Vec2{{961, 1363}},
			viewport:     screen,
			orientation:  Vec2{1, 1},
			distribution: Distribution,
			alignment:    Alignment,
			wantPos:      [][]int32{{728, 0}},
			wantUnion:    box.Sized([]int32{2417, 1363}),
		},
		{
			name:         "single wide page",
			sizes:        []Vec2{{1921, 1363}},
			viewport:     screen,
			orientation:  Vec2{1, 1},
			distribution: Distribution,
			alignment:    Alignment,
			wantPos:      [][]int32{{248, 0}},
			wantUnion:    box.Sized([]int32{2417, 1363}),
		},
		{
			name:         "double page manga",
			sizes:        []Vec2{{961, 1363}, {961, 1363}},
			viewport:     screen,
			orientation:  Vec2{-1, 1},
			distribution: Distribution,
			alignment:    Alignment,
			wantPos:      [][]int32{{1209, 0}, {246, 0}},
			wantUnion:    box.Sized([]int32{2417, 1363}),
		},
		{
			name:         "double page western",
			sizes:        []Vec2{{961, 1363}, {961, 1363}},
			viewport:     screen,
			orientation:  Vec2{1, 1},
			distribution: Distribution,
			alignment:    Alignment,
			wantPos:      [][]int32{{247, 0}, {1210, 0}},
			wantUnion:    box.Sized([]int32{2417, 1363}),
		},
		{
			name:         "vertical strip larger than viewport",
			sizes:        []Vec2{{800, 1200}, {600, 1200}},
			viewport:     Vec2{1000, 1000},
			orientation:  Vec2{1, 1},
			distribution: Alignment,
			alignment:    Distribution,
			wantPos:      [][]int32{{100, 0}, {200, 1202}},
			wantUnion:    box.Sized([]int32{1000, 2402}),
		},
		{
			name:         "no pages",
			sizes:        nil,
			viewport:     Vec2{800, 600},
			orientation:  Vec2{1, 1},
			distribution: Distribution,
			alignment:    Alignment,
			wantPos:      [][]int32{},
			wantUnion:    box.Sized([]int32{800, 600}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.sizes, tt.viewport, tt.orientation, tt.distribution, tt.alignment)

			content := l.ContentBoxes()
			if len(content) != len(tt.sizes) {
				t.Fatalf("got %d content boxes, want %d", len(content), len(tt.sizes))
			}
			for i, b := range content {
				if diff := cmp.Diff(tt.sizes[i].Slice(), b.Size()); diff != "" {
					t.Errorf("box %d size mismatch (-want +got):\n%s", i, diff)
				}
			}
			if diff := cmp.Diff(tt.wantPos, positions(content)); diff != "" {
				t.Errorf("content positions mismatch (-want +got):\n%s", diff)
			}
			if !l.UnionBox().Equal(tt.wantUnion) {
				t.Errorf("UnionBox() = %v, want %v", l.UnionBox(), tt.wantUnion)
			}
			if !l.ViewportBox().Equal(box.Sized(tt.viewport.Slice())) {
				t.Errorf("ViewportBox() = %v, want zero-positioned %v", l.ViewportBox(), tt.viewport)
			}
			if l.Orientation() != tt.orientation {
				t.Errorf("Orientation() = %v, want %v", l.Orientation(), tt.orientation)
			}
		})
	}
}

func TestNewInvariants(t *testing.T) {
	sizes := []Vec2{{500, 700}, {300, 900}, {640, 480}, {1, 1}}
	viewport := Vec2{1200, 800}

	for _, orientation := range []Vec2{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}} {
		for _, spacing := range []int32{0, box.DefaultSpacing, 17} {
			l := New(sizes, viewport, orientation, Distribution, Alignment, WithSpacing(spacing))
			content := l.ContentBoxes()
			union := l.UnionBox()

			if up := union.Position(); up[0] != 0 || up[1] != 0 {
				t.Errorf("%v/%d: union not at origin: %v", orientation, spacing, union)
			}
			us := union.Size()
			if us[0] < viewport[0] || us[1] < viewport[1] {
				t.Errorf("%v/%d: union %v smaller than viewport %v", orientation, spacing, union, viewport)
			}

			// Every page lies inside the union box.
			for i, b := range content {
				p, s := b.Position(), b.Size()
				for a := 0; a < 2; a++ {
					if p[a] < 0 || p[a]+s[a] > us[a] {
						t.Errorf("%v/%d: page %d %v outside union %v", orientation, spacing, i, b, union)
					}
				}
			}

			// Pages follow each other in reading direction, spacing apart.
			for i := 1; i < len(content); i++ {
				prev, cur := content[i-1], content[i]
				var gap int32
				if orientation[0] == 1 {
					gap = cur.Position()[0] - (prev.Position()[0] + prev.Size()[0])
				} else {
					gap = prev.Position()[0] - (cur.Position()[0] + cur.Size()[0])
				}
				if gap != spacing {
					t.Errorf("%v/%d: gap between pages %d and %d = %d, want %d",
						orientation, spacing, i-1, i, gap, spacing)
				}
			}
		}
	}
}

func TestNewDoesNotModifyInput(t *testing.T) {
	sizes := []Vec2{{1, 2}, {3, 4}}
	New(sizes, Vec2{10, 10}, Vec2{-1, 1}, Distribution, Alignment)
	if diff := cmp.Diff([]Vec2{{1, 2}, {3, 4}}, sizes); diff != "" {
		t.Errorf("input sizes changed (-want +got):\n%s", diff)
	}
}

func TestWrapIndividually(t *testing.T) {
	l := New([]Vec2{{10, 10}, {10, 10}}, Vec2{50, 50}, Vec2{1, 1}, Distribution, Alignment,
		WithWrapIndividually(true))

	if diff := cmp.Diff([][]int32{{20, 20}, {32, 20}}, positions(l.ContentBoxes())); diff != "" {
		t.Errorf("content positions mismatch (-want +got):\n%s", diff)
	}

	wrappers := l.WrapperBoxes()
	want := []box.Box{
		box.MustNew([]int32{0, 0}, []int32{50, 50}),
		box.MustNew([]int32{12, 0}, []int32{50, 50}),
	}
	if diff := cmp.Diff(want, wrappers); diff != "" {
		t.Errorf("WrapperBoxes() mismatch (-want +got):\n%s", diff)
	}

	if !l.UnionBox().Equal(box.Sized([]int32{62, 50})) {
		t.Errorf("UnionBox() = %v, want 62x50 at origin", l.UnionBox())
	}
}

func TestNoPagesCoverViewport(t *testing.T) {
	viewport := Vec2{800, 600}
	for _, wrap := range []bool{false, true} {
		l := New(nil, viewport, Vec2{-1, 1}, Distribution, Alignment, WithWrapIndividually(wrap))
		if want := box.Sized(viewport.Slice()); !l.UnionBox().Equal(want) {
			t.Errorf("wrap %v: UnionBox() = %v, want %v", wrap, l.UnionBox(), want)
		}
	}
}

func TestReversedDistribution(t *testing.T) {
	sizes := []Vec2{{500, 700}, {300, 900}, {640, 480}}
	reversed := slices.Clone(sizes)
	slices.Reverse(reversed)

	tests := []struct {
		name         string
		forward      Vec2
		backward     Vec2
		distribution Axis
		alignment    Axis
		wrap         bool
	}{
		{"horizontal", Vec2{1, 1}, Vec2{-1, 1}, Distribution, Alignment, false},
		{"horizontal wrapped", Vec2{1, 1}, Vec2{-1, 1}, Distribution, Alignment, true},
		{"vertical", Vec2{1, 1}, Vec2{1, -1}, Alignment, Distribution, false},
		{"vertical wrapped", Vec2{-1, 1}, Vec2{-1, -1}, Alignment, Distribution, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viewport := Vec2{1200, 800}
			fwd := New(reversed, viewport, tt.forward, tt.distribution, tt.alignment, WithWrapIndividually(tt.wrap))
			back := New(sizes, viewport, tt.backward, tt.distribution, tt.alignment, WithWrapIndividually(tt.wrap))

			want := fwd.ContentBoxes()
			slices.Reverse(want)
			if diff := cmp.Diff(positions(want), positions(back.ContentBoxes())); diff != "" {
				t.Errorf("content positions mismatch (-want +got):\n%s", diff)
			}
			for i, b := range back.ContentBoxes() {
				if diff := cmp.Diff(sizes[i].Slice(), b.Size()); diff != "" {
					t.Errorf("box %d size mismatch (-want +got):\n%s", i, diff)
				}
			}
			if !back.UnionBox().Equal(fwd.UnionBox()) {
				t.Errorf("UnionBox() = %v, want %v", back.UnionBox(), fwd.UnionBox())
			}
		})
	}
}

func TestWrapUnion(t *testing.T) {
	l := New([]Vec2{{10, 10}, {10, 10}}, Vec2{50, 50}, Vec2{1, 1}, Distribution, Alignment)

	wrappers := l.WrapperBoxes()
	if len(wrappers) != 1 || !wrappers[0].Equal(l.UnionBox()) {
		t.Errorf("WrapperBoxes() = %v, want only the union box %v", wrappers, l.UnionBox())
	}
}

func TestScrollToPredefined(t *testing.T) {
	sizes := []Vec2{{1000, 3000}}
	viewport := Vec2{800, 600}

	tests := []struct {
		name        string
		orientation Vec2
		start       Vec2
		dest        [2]Scroll
		want        Vec2
	}{
		{"start", Vec2{1, 1}, Vec2{}, [2]Scroll{ScrollStart, ScrollStart}, Vec2{0, 0}},
		{"end", Vec2{1, 1}, Vec2{}, [2]Scroll{ScrollEnd, ScrollEnd}, Vec2{200, 2400}},
		{"center", Vec2{1, 1}, Vec2{}, [2]Scroll{ScrollCenter, ScrollCenter}, Vec2{100, 1200}},
		{"forward backward", Vec2{1, 1}, Vec2{}, [2]Scroll{ScrollForward, ScrollBackward}, Vec2{200, 0}},
		{"keep", Vec2{1, 1}, Vec2{50, 70}, [2]Scroll{ScrollKeep, ScrollEnd}, Vec2{50, 2400}},
		{"manga start", Vec2{-1, 1}, Vec2{}, [2]Scroll{ScrollStart, ScrollStart}, Vec2{200, 0}},
		{"manga end", Vec2{-1, 1}, Vec2{}, [2]Scroll{ScrollEnd, ScrollEnd}, Vec2{0, 2400}},
		{"manga center", Vec2{-1, 1}, Vec2{}, [2]Scroll{ScrollCenter, ScrollKeep}, Vec2{100, 0}},
		{"keep both", Vec2{1, 1}, Vec2{50, 70}, [2]Scroll{ScrollKeep, ScrollKeep}, Vec2{50, 70}},
		{"manga keep both", Vec2{-1, 1}, Vec2{123, 456}, [2]Scroll{ScrollKeep, ScrollKeep}, Vec2{123, 456}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(sizes, viewport, tt.orientation, Distribution, Alignment)
			l.SetViewportPosition(tt.start)

			if err := l.ScrollToPredefined(tt.dest); err != nil {
				t.Fatalf("ScrollToPredefined() error = %v", err)
			}
			want := box.MustNew(tt.want.Slice(), viewport.Slice())
			if !l.ViewportBox().Equal(want) {
				t.Errorf("ViewportBox() = %v, want %v", l.ViewportBox(), want)
			}
		})
	}
}

func TestScrollToPredefinedInvalid(t *testing.T) {
	l := New([]Vec2{{1000, 3000}}, Vec2{800, 600}, Vec2{1, 1}, Distribution, Alignment)
	l.SetViewportPosition(Vec2{5, 5})

	for _, d := range []Scroll{2, -5} {
		err := l.ScrollToPredefined([2]Scroll{ScrollEnd, d})
		if !errs.Is(err, errs.ErrCodeInvalidDestination) {
			t.Errorf("ScrollToPredefined(%d) error = %v, want %s", d, err, errs.ErrCodeInvalidDestination)
		}
		if p := l.ViewportBox().Position(); p[0] != 5 || p[1] != 5 {
			t.Errorf("viewport moved on invalid destination: %v", p)
		}
	}
}

func TestScrollToPredefinedAt(t *testing.T) {
	sizes := []Vec2{{100, 100}, {100, 100}}
	viewport := Vec2{50, 50}
	start := [2]Scroll{ScrollStart, ScrollStart}
	end := [2]Scroll{ScrollEnd, ScrollEnd}

	l := New(sizes, viewport, Vec2{1, 1}, Distribution, Alignment, WithWrapIndividually(true))

	steps := []struct {
		dest      [2]Scroll
		index     int
		wantPos   Vec2
		wantIndex int
	}{
		{start, 1, Vec2{102, 0}, 1},
		{end, LastIndex, Vec2{152, 50}, 1},
		{start, 0, Vec2{0, 0}, 0},
		{end, 0, Vec2{50, 50}, 0},
		{end, UnionIndex, Vec2{152, 50}, 1},
	}
	for i, s := range steps {
		if err := l.ScrollToPredefinedAt(s.dest, s.index); err != nil {
			t.Fatalf("step %d: ScrollToPredefinedAt() error = %v", i, err)
		}
		if got := vec2Of(l.ViewportBox().Position()); got != s.wantPos {
			t.Errorf("step %d: viewport at %v, want %v", i, got, s.wantPos)
		}
		if got := l.CurrentIndex(); got != s.wantIndex {
			t.Errorf("step %d: CurrentIndex() = %d, want %d", i, got, s.wantIndex)
		}
	}

	if err := l.ScrollToPredefinedAt(start, 5); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("out of range index error = %v, want %s", err, errs.ErrCodeInvalidInput)
	}

	union := New(sizes, viewport, Vec2{1, 1}, Distribution, Alignment)
	if err := union.ScrollToPredefinedAt(end, 0); err != nil {
		t.Fatalf("ScrollToPredefinedAt() error = %v", err)
	}
	if got := vec2Of(union.ViewportBox().Position()); got != (Vec2{152, 50}) {
		t.Errorf("without wrap-individually viewport at %v, want union end {152 50}", got)
	}
}

func TestCurrentIndex(t *testing.T) {
	l := New([]Vec2{{961, 1363}, {961, 1363}}, Vec2{2417, 1363}, Vec2{1, 1}, Distribution, Alignment)
	if got := l.CurrentIndex(); got != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", got)
	}

	l.SetViewportPosition(Vec2{600, 0})
	if got := l.CurrentIndex(); got != 1 {
		t.Errorf("CurrentIndex() after moving = %d, want 1", got)
	}

	empty := New(nil, Vec2{10, 10}, Vec2{1, 1}, Distribution, Alignment)
	if got := empty.CurrentIndex(); got != -1 {
		t.Errorf("CurrentIndex() without pages = %d, want -1", got)
	}
}

func TestSetOrientation(t *testing.T) {
	l := New([]Vec2{{1000, 3000}}, Vec2{800, 600}, Vec2{1, 1}, Distribution, Alignment)
	before := l.ContentBoxes()

	l.SetOrientation(Vec2{-1, 1})
	if l.Orientation() != (Vec2{-1, 1}) {
		t.Errorf("Orientation() = %v, want {-1 1}", l.Orientation())
	}
	if diff := cmp.Diff(before, l.ContentBoxes()); diff != "" {
		t.Errorf("SetOrientation changed the arrangement (-want +got):\n%s", diff)
	}

	if err := l.ScrollToPredefined([2]Scroll{ScrollStart, ScrollKeep}); err != nil {
		t.Fatal(err)
	}
	if got := l.ViewportBox().Position()[0]; got != 200 {
		t.Errorf("start after flipping orientation at x=%d, want 200", got)
	}
}

func TestScrollTo(t *testing.T) {
	sizes := []Vec2{{100, 100}, {100, 100}}
	viewport := Vec2{50, 50}

	l := New(sizes, viewport, Vec2{-1, 1}, Distribution, Alignment, WithWrapIndividually(true))
	// Manga: page 0 is on the right.
	if diff := cmp.Diff([][]int32{{102, 0}, {0, 0}}, positions(l.ContentBoxes())); diff != "" {
		t.Fatalf("content positions mismatch (-want +got):\n%s", diff)
	}

	steps := []struct {
		dest      Scroll
		wantPos   Vec2
		wantIndex int
	}{
		{ScrollStart, Vec2{152, 0}, 0},
		{ScrollCenter, Vec2{127, 25}, 0},
		{ScrollEnd, Vec2{0, 50}, 1},
	}
	for _, s := range steps {
		if err := l.ScrollTo(s.dest); err != nil {
			t.Fatalf("ScrollTo(%v) error = %v", s.dest, err)
		}
		if got := vec2Of(l.ViewportBox().Position()); got != s.wantPos {
			t.Errorf("ScrollTo(%v): viewport at %v, want %v", s.dest, got, s.wantPos)
		}
		if got := l.CurrentIndex(); got != s.wantIndex {
			t.Errorf("ScrollTo(%v): CurrentIndex() = %d, want %d", s.dest, got, s.wantIndex)
		}
	}

	empty := New(nil, viewport, Vec2{1, 1}, Distribution, Alignment, WithWrapIndividually(true))
	for _, d := range []Scroll{ScrollStart, ScrollEnd, ScrollCenter} {
		if err := empty.ScrollTo(d); err != nil {
			t.Errorf("ScrollTo(%v) without pages error = %v", d, err)
		}
	}
}
