package render

import (
	"encoding/json"
	"io"

	"github.com/thermitegod/mcomix-lite/pkg/box"
	"github.com/thermitegod/mcomix-lite/pkg/layout"
)

// Rect is an axis-aligned rectangle in layout pixels.
type Rect struct {
	X      int32 `json:"x"`
	Y      int32 `json:"y"`
	Width  int32 `json:"width"`
	Height int32 `json:"height"`
}

func rectOf(b box.Box) Rect {
	p, s := b.Position(), b.Size()
	if len(p) < 2 || len(s) < 2 {
		return Rect{}
	}
	return Rect{X: p[0], Y: p[1], Width: s[0], Height: s[1]}
}

// PageRect is one placed page.
type PageRect struct {
	Index int    `json:"index"`
	Name  string `json:"name,omitempty"`
	Rect
}

// Arrangement is a serializable snapshot of a layout.
type Arrangement struct {
	Union       Rect       `json:"union"`
	Viewport    Rect       `json:"viewport"`
	Orientation [2]int32   `json:"orientation"`
	Current     int        `json:"current"`
	Pages       []PageRect `json:"pages"`
}

// Export captures the boxes of l. names label the pages in reading order and
// may be shorter than the page list.
func Export(l *layout.Layout, names []string) Arrangement {
	content := l.ContentBoxes()
	a := Arrangement{
		Union:       rectOf(l.UnionBox()),
		Viewport:    rectOf(l.ViewportBox()),
		Orientation: l.Orientation(),
		Current:     l.CurrentIndex(),
		Pages:       make([]PageRect, len(content)),
	}
	for i, b := range content {
		a.Pages[i] = PageRect{Index: i, Rect: rectOf(b)}
		if i < len(names) {
			a.Pages[i].Name = names[i]
		}
	}
	return a
}

// RenderJSON encodes a as indented JSON.
func RenderJSON(a Arrangement) ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}

// WriteJSON writes a to w as indented JSON.
func WriteJSON(w io.Writer, a Arrangement) error {
	data, err := RenderJSON(a)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// ReadJSON decodes an arrangement written by [WriteJSON].
func ReadJSON(r io.Reader) (Arrangement, error) {
	var a Arrangement
	err := json.NewDecoder(r).Decode(&a)
	return a, err
}
