package zoom

import (
	"fmt"
	"strings"

	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
)

// FitMode selects how pages are fitted to the screen before user zoom.
// The numeric values are stored in preference files and must not change.
type FitMode int

const (
	Best   FitMode = 0 // fit both width and height
	Width  FitMode = 1 // fit width only
	Height FitMode = 2 // fit height only
	Manual FitMode = 3 // no fitting
	Size   FitMode = 4 // fit one axis to a fixed pixel size
)

var fitModeNames = [...]string{
	Best:   "best",
	Width:  "width",
	Height: "height",
	Manual: "manual",
	Size:   "size",
}

// Valid reports whether m is one of the defined fit modes.
func (m FitMode) Valid() bool { return m >= Best && m <= Size }

func (m FitMode) String() string {
	if m.Valid() {
		return fitModeNames[m]
	}
	return fmt.Sprintf("FitMode(%d)", int(m))
}

// ParseFitMode parses a fit mode name as produced by [FitMode.String].
func ParseFitMode(s string) (FitMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range fitModeNames {
		if n == name {
			return FitMode(m), nil
		}
	}
	return 0, errs.New(errs.ErrCodeInvalidFitMode,
		"invalid fit mode %q (must be one of: %s)", s, strings.Join(fitModeNames[:], ", "))
}

// FitToSize configures the [Size] fit mode: Mode is [Width] or [Height] and
// Pixels the length that axis is fitted to.
type FitToSize struct {
	Mode   FitMode
	Pixels int32
}

// Enabled reports whether f describes a usable fixed-size fit.
func (f FitToSize) Enabled() bool {
	return (f.Mode == Width || f.Mode == Height) && f.Pixels > 0
}
