package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thermitegod/mcomix-lite/pkg/config"
	"github.com/thermitegod/mcomix-lite/pkg/layout"
	"github.com/thermitegod/mcomix-lite/pkg/pages"
	"github.com/thermitegod/mcomix-lite/pkg/pipeline"
	"github.com/thermitegod/mcomix-lite/pkg/render"
	"github.com/thermitegod/mcomix-lite/pkg/zoom"
)

var (
	viewerStatusStyle = lipgloss.NewStyle().Foreground(colorWhite)
	viewerOnStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	viewerOffStyle    = lipgloss.NewStyle().Foreground(colorDim)
	viewerErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

const viewerHelp = "←/→ page  +/- zoom  0 reset  f fit  u upscale  m manga  v vertical  d double  w wrap  s/c/e scroll  q quit"

// =============================================================================
// ViewerModel - Interactive spread preview
// =============================================================================

// ViewerModel is the bubbletea model of the view command. It shows the
// spread starting at Index as a text miniature and recomputes the layout on
// every change.
type ViewerModel struct {
	Runner *pipeline.Runner
	Config config.Config
	Zoom   *zoom.Model
	Pages  []pages.Page
	DNT    []bool

	// Index is the first page of the current spread.
	Index int

	Width  int
	Height int

	layout      *layout.Layout
	arrangement render.Arrangement
	zoomed      []layout.Vec2
	sizes       []layout.Vec2
	start, end  int
	err         error
}

// NewViewerModel creates a viewer over pg starting at the first spread.
func NewViewerModel(runner *pipeline.Runner, cfg config.Config, pg []pages.Page, dnt []bool) (*ViewerModel, error) {
	zm, err := zoom.NewModelWith(cfg.ZoomSettings())
	if err != nil {
		return nil, err
	}
	m := &ViewerModel{
		Runner: runner,
		Config: cfg,
		Zoom:   zm,
		Pages:  pg,
		DNT:    dnt,
		sizes:  pages.Sizes(pg),
	}
	m.relayout()
	return m, nil
}

func (m *ViewerModel) Init() tea.Cmd {
	return nil
}

func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=":
			m.Zoom.ZoomIn()
		case "-":
			m.Zoom.ZoomOut()
		case "0":
			m.Zoom.ResetUserZoom()
		case "f":
			next := (m.Zoom.FitMode() + 1) % (zoom.Size + 1)
			if err := m.Zoom.SetFitMode(next); err != nil {
				m.err = err
				return m, nil
			}
		case "u":
			m.Zoom.SetScaleUp(!m.Zoom.ScaleUp())
		case "m":
			m.Config.Layout.Manga = !m.Config.Layout.Manga
		case "v":
			m.Config.Layout.Vertical = !m.Config.Layout.Vertical
		case "d":
			m.Config.Layout.DoublePage = !m.Config.Layout.DoublePage
		case "w":
			m.Config.Layout.WrapIndividually = !m.Config.Layout.WrapIndividually
		case "n", "pgdown", " ":
			m.nextSpread()
		case "p", "pgup", "backspace":
			m.prevSpread()
		case "right", "l":
			// Arrow keys follow the screen, so right goes back in manga.
			if m.Config.Layout.Manga {
				m.prevSpread()
			} else {
				m.nextSpread()
			}
		case "left", "h":
			if m.Config.Layout.Manga {
				m.nextSpread()
			} else {
				m.prevSpread()
			}
		case "home", "g":
			m.Index = 0
		case "end", "G":
			m.Index = max(0, len(m.Pages)-1)
		case "s":
			return m, m.scroll(layout.ScrollStart)
		case "c":
			return m, m.scroll(layout.ScrollCenter)
		case "e":
			return m, m.scroll(layout.ScrollEnd)
		default:
			return m, nil
		}
		m.relayout()
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}
	return m, nil
}

func (m *ViewerModel) spreads() pages.Spreads {
	return m.Config.Spreads(m.sizes)
}

func (m *ViewerModel) nextSpread() { m.Index = m.spreads().Next(m.Index) }

func (m *ViewerModel) prevSpread() { m.Index = m.spreads().Prev(m.Index) }

// Spread returns the half-open page range on screen.
func (m *ViewerModel) Spread() (start, end int) { return m.start, m.end }

// Arrangement returns the current layout snapshot.
func (m *ViewerModel) Arrangement() render.Arrangement { return m.arrangement }

// Err returns the error of the last layout, if any.
func (m *ViewerModel) Err() error { return m.err }

// relayout fits the current spread and scrolls to its start.
func (m *ViewerModel) relayout() {
	m.start, m.end = m.spreads().At(m.Index)
	m.Index = m.start
	spread := m.Pages[m.start:m.end]

	opts := options(&m.Config)
	opts.Zoom = m.Zoom.Settings()
	opts.Scroll = [2]layout.Scroll{layout.ScrollStart, layout.ScrollStart}
	if m.DNT != nil {
		opts.DoNotTransform = m.DNT[m.start:m.end]
	}

	zoomed, l, err := m.Runner.ComputeLayout(pages.Sizes(spread), opts)
	if err != nil {
		m.err = err
		return
	}
	names := make([]string, len(spread))
	for i, p := range spread {
		names[i] = p.Name
	}
	m.err = nil
	m.zoomed = zoomed
	m.layout = l
	m.arrangement = render.Export(l, names)
}

func (m *ViewerModel) scroll(dest layout.Scroll) tea.Cmd {
	if m.layout == nil {
		return nil
	}
	if err := m.layout.ScrollTo(dest); err != nil {
		m.err = err
		return nil
	}
	names := make([]string, 0, m.end-m.start)
	for _, p := range m.Pages[m.start:m.end] {
		names = append(names, p.Name)
	}
	m.arrangement = render.Export(m.layout, names)
	return nil
}

func (m *ViewerModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s  pages %d-%d of %d", appName, m.start, max(m.start, m.end-1), len(m.Pages))
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")

	cols, rows := pipeline.TextColumns, pipeline.TextRows
	if m.Width > 0 && m.Height > 0 {
		cols, rows = m.Width, max(1, m.Height-4)
	}
	if m.err != nil {
		b.WriteString(viewerErrorStyle.Render(m.err.Error()))
	} else {
		b.WriteString(render.ASCII(m.arrangement, cols, rows))
	}
	b.WriteString("\n")

	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(viewerHelp))
	return b.String()
}

func (m *ViewerModel) status() string {
	parts := []string{
		viewerStatusStyle.Render("fit " + m.Zoom.FitMode().String()),
		viewerStatusStyle.Render(fmt.Sprintf("zoom %.0f%%", m.Zoom.UserScale()*100)),
		toggle("upscale", m.Zoom.ScaleUp()),
		toggle("manga", m.Config.Layout.Manga),
		toggle("vertical", m.Config.Layout.Vertical),
		toggle("double "+m.Config.Layout.DoublePageMode, m.Config.Layout.DoublePage),
		toggle("wrap", m.Config.Layout.WrapIndividually),
	}
	for i := m.start; i < m.end && i-m.start < len(m.zoomed); i++ {
		parts = append(parts, StyleNumber.Render(fmt.Sprintf("%d:%s", i, m.zoomed[i-m.start])))
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}

func toggle(name string, on bool) string {
	if on {
		return viewerOnStyle.Render(name)
	}
	return viewerOffStyle.Render(name)
}
