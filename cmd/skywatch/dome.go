package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/skywatch/internal/astro"
	"github.com/litescript/skywatch/internal/model"
	"github.com/litescript/skywatch/internal/scene"
)

const (
	domeFOVAz = 120.0
	domeFOVEl = 60.0

	glyphStarBright = '✶'
	glyphStarMedium = '✸'
	glyphStarDim    = '·'
	glyphBody       = '●'
	glyphMoon       = '○'
	glyphSatellite  = '✦'
	glyphMinorBody  = '∘'
	glyphMeteor     = '╲'
)

type tickMsg time.Time

// domeModel is the live sky-dome view: a fixed-FOV ASCII projection of the
// engine's most recently built Scene, panned with the arrow keys and
// rebuilt on a timer.
type domeModel struct {
	engine   *scene.Engine
	observer model.GeoLocation
	opts     scene.Options
	refresh  time.Duration

	width, height int
	camAz, camEl  float64
	scene         model.Scene
}

func newDomeModel(engine *scene.Engine, observer model.GeoLocation, opts scene.Options, refresh time.Duration) domeModel {
	return domeModel{
		engine:   engine,
		observer: observer,
		opts:     opts,
		refresh:  refresh,
		camAz:    180,
		camEl:    30,
	}
}

func (m domeModel) Init() tea.Cmd {
	return tea.Batch(m.rebuild(), tickCmd(m.refresh))
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m domeModel) rebuild() tea.Cmd {
	return func() tea.Msg {
		return m.engine.BuildScene(m.observer, time.Now().UTC(), m.opts)
	}
}

func (m domeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.camAz = astro.NormalizeDeg(m.camAz - 10)
		case "right", "l":
			m.camAz = astro.NormalizeDeg(m.camAz + 10)
		case "up", "k":
			m.camEl = clampAltitude(m.camEl + 5)
		case "down", "j":
			m.camEl = clampAltitude(m.camEl - 5)
		case "r":
			return m, m.rebuild()
		}

	case model.Scene:
		m.scene = msg

	case tickMsg:
		return m, tea.Batch(m.rebuild(), tickCmd(m.refresh))
	}

	return m, nil
}

func clampAltitude(v float64) float64 {
	if v < -10 {
		return -10
	}
	if v > 85 {
		return 85
	}
	return v
}

func (m domeModel) View() string {
	if m.width < 20 || m.height < 10 {
		return "terminal too small"
	}

	canvasHeight := m.height - 4
	canvas := m.renderCanvas(m.width, canvasHeight)

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(canvas)
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m domeModel) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135")).Render("skywatch dome")
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	compass := dim.Render(fmt.Sprintf("az %.0f° alt %.0f°  |  %s", m.camAz, m.camEl, m.scene.Instant.Format("2006-01-02 15:04 MST")))
	return title + "  " + compass
}

func (m domeModel) renderFooter() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	counts := scene.VisibleCounts(m.scene)
	summary := fmt.Sprintf("stars %d  bodies %d  moons %d  satellites %d  minor %d",
		counts["star"], counts["body"], counts["moon"], counts["satellite"], counts["minor_body"])
	help := "arrows: pan  r: refresh now  q: quit"
	return dim.Render(summary) + "\n" + dim.Render(help)
}

// renderCanvas projects every visible scene object whose altitude/azimuth
// falls within the camera's fixed field of view onto a character grid, the
// same az/el-to-screen approach the dashboard's live sky plot uses, just
// driven by model.Scene instead of a spacecraft snapshot.
func (m domeModel) renderCanvas(width, height int) string {
	canvas := make([][]rune, height)
	color := make([][]string, height)
	for y := range canvas {
		canvas[y] = make([]rune, width)
		color[y] = make([]string, width)
		for x := range canvas[y] {
			canvas[y][x] = ' '
			color[y][x] = "236"
		}
	}

	plot := func(altDeg, azDeg float64, glyph rune, c string) {
		x, y, ok := m.project(altDeg, azDeg, width, height)
		if ok {
			canvas[y][x] = glyph
			color[y][x] = c
		}
	}

	for _, s := range m.scene.Stars {
		if !s.IsVisible {
			continue
		}
		plot(s.AltAzV.AltDeg, s.AltAzV.AzDeg, starGlyph(s.ApparentMag), starColor(s.ApparentMag))
	}
	for _, d := range m.scene.DeepSky {
		if d.IsVisible {
			plot(d.AltAzV.AltDeg, d.AltAzV.AzDeg, glyphMinorBody, "108")
		}
	}
	for _, r := range m.scene.MeteorShowers {
		if r.IsVisible {
			plot(r.AltAzV.AltDeg, r.AltAzV.AzDeg, glyphMeteor, "203")
		}
	}
	for _, mb := range m.scene.MinorBodies {
		if mb.IsVisible {
			plot(mb.AltAzV.AltDeg, mb.AltAzV.AzDeg, glyphMinorBody, "180")
		}
	}
	for _, sat := range m.scene.Satellites {
		if sat.IsVisible {
			plot(sat.AltAzV.AltDeg, sat.AltAzV.AzDeg, glyphSatellite, "229")
		}
	}
	for _, mn := range m.scene.Moons {
		if mn.IsVisible {
			plot(mn.AltAzV.AltDeg, mn.AltAzV.AzDeg, glyphMoon, "250")
		}
	}
	for _, body := range m.scene.Bodies {
		plot(body.AltAzV.AltDeg, body.AltAzV.AzDeg, glyphBody, bodyColor(body.Name))
	}

	var b strings.Builder
	for y := range canvas {
		for x := range canvas[y] {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color[y][x]))
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		b.WriteRune('\n')
	}
	return b.String()
}

// project maps (alt, az) into a screen cell relative to the camera's
// heading, given the fixed dome field of view, or reports ok=false when
// the point falls outside it.
func (m domeModel) project(altDeg, azDeg float64, width, height int) (int, int, bool) {
	dAz := astro.NormalizeHourAngleDeg(azDeg - m.camAz)
	dEl := altDeg - m.camEl

	if dAz < -domeFOVAz/2 || dAz > domeFOVAz/2 || dEl < -domeFOVEl/2 || dEl > domeFOVEl/2 {
		return 0, 0, false
	}

	x := int((dAz/domeFOVAz + 0.5) * float64(width))
	y := int((1 - (dEl/domeFOVEl + 0.5)) * float64(height))
	if x < 0 || x >= width || y < 0 || y >= height {
		return 0, 0, false
	}
	return x, y, true
}

func starGlyph(mag float64) rune {
	switch {
	case mag < 1.0:
		return glyphStarBright
	case mag < 3.0:
		return glyphStarMedium
	default:
		return glyphStarDim
	}
}

func starColor(mag float64) string {
	switch {
	case mag < 1.0:
		return "255"
	case mag < 3.0:
		return "250"
	default:
		return "244"
	}
}

func bodyColor(name string) string {
	switch name {
	case "Sun":
		return "220"
	case "Moon":
		return "255"
	case "Mars":
		return "203"
	case "Venus":
		return "230"
	default:
		return "153"
	}
}
