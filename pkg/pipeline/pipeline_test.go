package pipeline

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
	"github.com/thermitegod/mcomix-lite/pkg/layout"
	"github.com/thermitegod/mcomix-lite/pkg/observability"
	"github.com/thermitegod/mcomix-lite/pkg/pages"
	"github.com/thermitegod/mcomix-lite/pkg/render"
	"github.com/thermitegod/mcomix-lite/pkg/zoom"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"txt", false},
		{"png", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{PageSizes: []layout.Vec2{}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("options without pages should pass: %v", err)
	}
	if opts.Viewport != DefaultViewport {
		t.Errorf("Viewport = %v, want %v", opts.Viewport, DefaultViewport)
	}
	if opts.Orientation != (layout.Vec2{1, 1}) {
		t.Errorf("Orientation = %v, want 1x1", opts.Orientation)
	}
	if diff := cmp.Diff([]string{FormatJSON}, opts.Formats); diff != "" {
		t.Errorf("Formats mismatch (-want +got):\n%s", diff)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsValidation(t *testing.T) {
	one := []layout.Vec2{{10, 10}}
	tests := []struct {
		name     string
		opts     Options
		wantCode errs.Code
	}{
		{"no source", Options{}, errs.ErrCodeInvalidInput},
		{"two sources", Options{PageSizes: []layout.Vec2{{1, 1}}, Dir: "x"}, errs.ErrCodeInvalidInput},
		{"empty page", Options{PageSizes: []layout.Vec2{{0, 10}}}, errs.ErrCodeInvalidSize},
		{"negative viewport", Options{PageSizes: one, Viewport: layout.Vec2{-1, 10}}, errs.ErrCodeInvalidSize},
		{"bad orientation", Options{PageSizes: one, Orientation: layout.Vec2{2, 1}}, errs.ErrCodeInvalidInput},
		{"bad axis", Options{PageSizes: one, Distribution: 2}, errs.ErrCodeInvalidAxis},
		{"bad fit mode", Options{PageSizes: one, Zoom: zoom.Settings{FitMode: 9}}, errs.ErrCodeInvalidFitMode},
		{"negative spacing", Options{PageSizes: one, Spacing: -1}, errs.ErrCodeInvalidInput},
		{"bad scroll", Options{PageSizes: one, Scroll: [2]layout.Scroll{7, 0}}, errs.ErrCodeInvalidDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errs.Is(err, tt.wantCode) {
				t.Errorf("error = %v, want code %s", err, tt.wantCode)
			}
		})
	}

	opts := Options{PageSizes: one, Formats: []string{"pdf"}}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestZoomScreen(t *testing.T) {
	tests := []struct {
		name         string
		viewport     layout.Vec2
		distribution layout.Axis
		spacing      int32
		n            int
		want         layout.Vec2
	}{
		{"single page", layout.Vec2{100, 50}, layout.Distribution, 2, 1, layout.Vec2{100, 50}},
		{"three pages", layout.Vec2{100, 50}, layout.Distribution, 2, 3, layout.Vec2{96, 50}},
		{"vertical", layout.Vec2{100, 50}, layout.Alignment, 2, 3, layout.Vec2{100, 46}},
		{"at least one", layout.Vec2{10, 50}, layout.Distribution, 20, 2, layout.Vec2{1, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{Viewport: tt.viewport, Distribution: tt.distribution, Spacing: tt.spacing}
			if got := opts.ZoomScreen(tt.n); got != tt.want {
				t.Errorf("ZoomScreen(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestExecuteDoublePageManga(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	result, err := runner.Execute(context.Background(), Options{
		PageSizes:   []layout.Vec2{{961, 1363}, {961, 1363}},
		Names:       []string{"001.jpg", "002.jpg"},
		Viewport:    layout.Vec2{2417, 1363},
		Orientation: layout.Vec2{-1, 1},
		Zoom:        zoom.Settings{FitMode: zoom.Best},
		Spacing:     2,
		Formats:     []string{FormatJSON, FormatDOT, FormatText},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if diff := cmp.Diff([]layout.Vec2{{961, 1363}, {961, 1363}}, result.Zoomed); diff != "" {
		t.Errorf("Zoomed mismatch (-want +got):\n%s", diff)
	}
	wantPages := []render.PageRect{
		{Index: 0, Name: "001.jpg", Rect: render.Rect{X: 1209, Width: 961, Height: 1363}},
		{Index: 1, Name: "002.jpg", Rect: render.Rect{X: 246, Width: 961, Height: 1363}},
	}
	if diff := cmp.Diff(wantPages, result.Arrangement.Pages); diff != "" {
		t.Errorf("pages mismatch (-want +got):\n%s", diff)
	}
	if result.Stats.PageCount != 2 {
		t.Errorf("PageCount = %d, want 2", result.Stats.PageCount)
	}
	if result.Stats.UnionSize != (layout.Vec2{2417, 1363}) {
		t.Errorf("UnionSize = %v", result.Stats.UnionSize)
	}

	for _, f := range []string{FormatJSON, FormatDOT, FormatText} {
		if len(result.Artifacts[f]) == 0 {
			t.Errorf("artifact %s missing", f)
		}
	}
	if _, ok := result.Artifacts[FormatSVG]; ok {
		t.Error("svg rendered without being requested")
	}
	if !strings.Contains(string(result.Artifacts[FormatJSON]), `"name": "001.jpg"`) {
		t.Errorf("json artifact missing page name:\n%s", result.Artifacts[FormatJSON])
	}
}

func TestExecuteScroll(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	result, err := runner.Execute(context.Background(), Options{
		PageSizes:   []layout.Vec2{{100, 100}, {100, 100}},
		Viewport:    layout.Vec2{50, 50},
		Orientation: layout.Vec2{-1, 1},
		Zoom:        zoom.Settings{FitMode: zoom.Manual},
		Spacing:     2,
		Scroll:      [2]layout.Scroll{layout.ScrollEnd, layout.ScrollEnd},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if got := result.Arrangement.Viewport; got != (render.Rect{X: 0, Y: 50, Width: 50, Height: 50}) {
		t.Errorf("viewport = %+v, want at 0,50", got)
	}
	if result.Arrangement.Current != 1 {
		t.Errorf("Current = %d, want 1", result.Arrangement.Current)
	}
}

func TestExecuteDir(t *testing.T) {
	dir := t.TempDir()
	for name, w := range map[string]int{"p10.png": 30, "p9.png": 20, "P1.png": 10} {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, image.NewGray(image.Rect(0, 0, w, 40))); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}

	runner := NewRunner(nil, nil, nil)
	result, err := runner.Execute(context.Background(), Options{
		Dir:      dir,
		Order:    pages.NaturalOrder,
		Viewport: layout.Vec2{1000, 1000},
		Zoom:     zoom.Settings{FitMode: zoom.Manual},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	var names []string
	for _, p := range result.Pages {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"P1.png", "p9.png", "p10.png"}, names); diff != "" {
		t.Errorf("page order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]layout.Vec2{{10, 40}, {20, 40}, {30, 40}}, result.Zoomed); diff != "" {
		t.Errorf("Zoomed mismatch (-want +got):\n%s", diff)
	}
}

func TestExecuteMissingDir(t *testing.T) {
	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{
		Dir: filepath.Join(t.TempDir(), "missing"),
	})
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want %s", err, errs.ErrCodeFileNotFound)
	}
}

func TestExecuteNoSource(t *testing.T) {
	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{})
	if !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want %s", err, errs.ErrCodeInvalidInput)
	}

	result, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{PageSizes: []layout.Vec2{}})
	if err != nil {
		t.Fatalf("Execute() without pages error: %v", err)
	}
	if result.Stats.PageCount != 0 {
		t.Errorf("PageCount = %d, want 0", result.Stats.PageCount)
	}
}

// recordingHooks records the order of completed stages.
type recordingHooks struct {
	observability.NoopPipelineHooks
	events []string
}

func (h *recordingHooks) OnReadComplete(_ context.Context, source string, _ int, _ time.Duration, _ error) {
	h.events = append(h.events, "read "+source)
}

func (h *recordingHooks) OnLayoutComplete(context.Context, int, time.Duration, error) {
	h.events = append(h.events, "layout")
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, formats []string, _ time.Duration, _ error) {
	h.events = append(h.events, "render "+strings.Join(formats, ","))
}

func TestExecuteHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{
		PageSizes: []layout.Vec2{{100, 100}},
		Formats:   []string{FormatJSON, FormatText},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	want := []string{"read sizes", "layout", "render json,txt"}
	if diff := cmp.Diff(want, hooks.events); diff != "" {
		t.Errorf("hook events mismatch (-want +got):\n%s", diff)
	}
}
