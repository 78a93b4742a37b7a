package zoom

import (
	"math"

	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
	"github.com/thermitegod/mcomix-lite/pkg/layout"
)

// Model is the mutable zoom policy of a viewer, queried on every redraw.
// A new Model does no fitting ([Manual]), no upscaling and no user zoom.
//
// A Model is not safe for concurrent mutation.
type Model struct {
	s Settings
}

// NewModel returns a Model with default settings.
func NewModel() *Model {
	return &Model{s: Settings{FitMode: Manual, UserZoomLog: IdentityZoomLog}}
}

// NewModelWith returns a Model starting from s. The fit mode must be valid
// and the zoom level is clamped.
func NewModelWith(s Settings) (*Model, error) {
	m := NewModel()
	if err := m.SetFitMode(s.FitMode); err != nil {
		return nil, err
	}
	m.SetScaleUp(s.ScaleUp)
	m.SetUserZoomLog(s.UserZoomLog)
	m.SetFitToSize(s.FitToSize)
	return m, nil
}

// Settings returns a copy of the current policy.
func (m *Model) Settings() Settings { return m.s }

// FitMode returns the current fit mode.
func (m *Model) FitMode() FitMode { return m.s.FitMode }

// ScaleUp reports whether pages may be enlarged to fit.
func (m *Model) ScaleUp() bool { return m.s.ScaleUp }

// UserZoomLog returns the logarithmic user zoom level.
func (m *Model) UserZoomLog() float64 { return m.s.UserZoomLog }

// UserScale returns the multiplier of the current user zoom level.
func (m *Model) UserScale() float64 { return UserScale(m.s.UserZoomLog) }

// SetFitMode changes the fit mode. Unknown modes are rejected and leave the
// model unchanged.
func (m *Model) SetFitMode(mode FitMode) error {
	if !mode.Valid() {
		return errs.New(errs.ErrCodeInvalidFitMode, "invalid fit mode %d", int(mode))
	}
	m.s.FitMode = mode
	return nil
}

// SetScaleUp allows or forbids enlarging pages beyond their original size.
func (m *Model) SetScaleUp(scaleUp bool) { m.s.ScaleUp = scaleUp }

// SetFitToSize configures the [Size] fit mode.
func (m *Model) SetFitToSize(fts FitToSize) { m.s.FitToSize = fts }

// SetUserZoomLog sets the user zoom level, clamped to
// [MinUserZoomLog, MaxUserZoomLog].
func (m *Model) SetUserZoomLog(zoomLog float64) {
	m.s.UserZoomLog = math.Min(math.Max(zoomLog, MinUserZoomLog), MaxUserZoomLog)
}

// ZoomIn raises the user zoom level by one step.
func (m *Model) ZoomIn() { m.SetUserZoomLog(m.s.UserZoomLog + 1) }

// ZoomOut lowers the user zoom level by one step.
func (m *Model) ZoomOut() { m.SetUserZoomLog(m.s.UserZoomLog - 1) }

// ResetUserZoom returns to the identity zoom.
func (m *Model) ResetUserZoom() { m.SetUserZoomLog(IdentityZoomLog) }

// ZoomedSize returns the display size of every page under the current
// policy. See the package-level [ZoomedSize].
func (m *Model) ZoomedSize(sizes []layout.Vec2, screen layout.Vec2, distribution layout.Axis, doNotTransform []bool) []layout.Vec2 {
	return ZoomedSize(m.s, sizes, screen, distribution, doNotTransform)
}
