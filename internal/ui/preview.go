// Package ui renders the interactive terminal preview of a drilled
// dome.
package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skydome/internal/astro"
	"github.com/litescript/ls-skydome/internal/dome"
)

const (
	// Hole glyphs by drilled radius
	glyphHoleLarge  = '✶'
	glyphHoleMedium = '✸'
	glyphHoleSmall  = '·'
	glyphFocused    = '◆'

	// Colors (grayscale holes so the focus marker stands out)
	colorHoleLarge  = "255" // bright white
	colorHoleMedium = "250" // medium gray
	colorHoleSmall  = "244" // dim gray
	colorFocused    = "229" // bright gold
	colorRim        = "60"  // muted purple
	colorZenith     = "135" // violet
	colorLabel      = "#d0c8ff"
)

// LabelMode controls how hole labels are displayed.
type LabelMode int

const (
	LabelNone    LabelMode = iota // No labels
	LabelFocused                  // Only the focused hole
	LabelAll                      // All holes
)

// PreviewModel renders the dome from above: zenith at the center, the
// equatorial rim at the edge. Holes drilled through the southern half
// show up at their antipode, which is where their centered cutters
// pierce the shell.
type PreviewModel struct {
	width  int
	height int

	placements      []dome.Placement
	constellationOf map[string]string

	// Constellation filter ring; "" shows everything.
	sets   []string
	setIdx int

	focusIdx  int
	labelMode LabelMode

	// Hole radius range, for glyph bucketing.
	holeLo float64
	holeHi float64
}

// NewPreview builds a preview over a finished set of placements.
// constellationOf maps star names to figure names and may be nil.
func NewPreview(placements []dome.Placement, constellationOf map[string]string) PreviewModel {
	m := PreviewModel{
		placements:      placements,
		constellationOf: constellationOf,
		labelMode:       LabelFocused,
		sets:            []string{""},
		holeLo:          math.Inf(1),
		holeHi:          math.Inf(-1),
	}

	seen := make(map[string]bool)
	for _, p := range placements {
		if c := constellationOf[p.Star.Name]; c != "" && !seen[c] {
			seen[c] = true
			m.sets = append(m.sets, c)
		}
		m.holeLo = math.Min(m.holeLo, p.HoleRadiusMm)
		m.holeHi = math.Max(m.holeHi, p.HoleRadiusMm)
	}
	if len(placements) == 0 {
		m.holeLo, m.holeHi = 0, 0
	}

	return m
}

// SetSize updates the viewport size.
func (m PreviewModel) SetSize(width, height int) PreviewModel {
	m.width = width
	m.height = height
	return m
}

// Init returns nil cmd.
func (m PreviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			m = m.focusNext()
		case "up", "k":
			m = m.focusPrev()
		case "tab", "c":
			m = m.cycleSet()
		case "l":
			m.labelMode = (m.labelMode + 1) % 3
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// visible returns the placements of the current constellation filter.
func (m PreviewModel) visible() []dome.Placement {
	set := m.sets[m.setIdx]
	if set == "" {
		return m.placements
	}
	var out []dome.Placement
	for _, p := range m.placements {
		if m.constellationOf[p.Star.Name] == set {
			out = append(out, p)
		}
	}
	return out
}

func (m PreviewModel) focusNext() PreviewModel {
	n := len(m.visible())
	if n == 0 {
		return m
	}
	m.focusIdx = (m.focusIdx + 1) % n
	return m
}

func (m PreviewModel) focusPrev() PreviewModel {
	n := len(m.visible())
	if n == 0 {
		return m
	}
	m.focusIdx--
	if m.focusIdx < 0 {
		m.focusIdx = n - 1
	}
	return m
}

func (m PreviewModel) cycleSet() PreviewModel {
	m.setIdx = (m.setIdx + 1) % len(m.sets)
	m.focusIdx = 0
	return m
}

// View renders the preview.
func (m PreviewModel) View() string {
	if m.width < 20 || m.height < 10 {
		return "Dome preview requires larger terminal"
	}

	viewHeight := m.height - 4

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderDomeCanvas(m.width, viewHeight))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m PreviewModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorZenith))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorRim))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorLabel))

	title := titleStyle.Render("Dome Preview")

	setStr := ""
	if m.sets[m.setIdx] == "" {
		setStr = dimStyle.Render("All Constellations")
	} else {
		setStr = accentStyle.Render(m.sets[m.setIdx])
	}

	var labelStr string
	switch m.labelMode {
	case LabelNone:
		labelStr = dimStyle.Render("Labels: off")
	case LabelFocused:
		labelStr = accentStyle.Render("Labels: focus")
	case LabelAll:
		labelStr = accentStyle.Render("Labels: all")
	}

	count := dimStyle.Render(fmt.Sprintf("%d holes", len(m.visible())))

	return fmt.Sprintf("%s | %s | %s | %s", title, setStr, labelStr, count)
}

func (m PreviewModel) renderStatus() string {
	vis := m.visible()
	if len(vis) == 0 {
		return "No holes in view"
	}
	if m.focusIdx >= len(vis) {
		return ""
	}

	p := vis[m.focusIdx]
	line1 := fmt.Sprintf(">>> %s | RA %.2f° Dec %.2f° | mag %.2f | hole %.2f mm",
		p.Star.Name,
		p.Star.RAdeg,
		p.Star.DecDeg,
		p.Star.Mag,
		p.HoleRadiusMm,
	)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorFocused))
	status := accentStyle.Render(line1)

	if c := m.constellationOf[p.Star.Name]; c != "" {
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorLabel))
		status += "\n" + dimStyle.Render("    "+c)
	}

	return status
}

func (m PreviewModel) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorRim))
	return dimStyle.Render("j/k focus · tab constellation · l labels · q quit")
}

// holePos tracks a drawn hole for label rendering.
type holePos struct {
	x, y       int
	name       string
	isFocused  bool
	labelStart int
	labelEnd   int
}

func (m PreviewModel) renderDomeCanvas(width, height int) string {
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = "236" // very dark background
		}
	}

	// Equatorial rim.
	for deg := 0; deg < 360; deg += 2 {
		az := float64(deg) * math.Pi / 180
		x, y := m.rimPoint(az, width, height)
		if x >= 0 && x < width && y >= 0 && y < height {
			canvas[y][x] = '·'
			colors[y][x] = colorRim
		}
	}

	// Right ascension marks, counterclockwise like the sky.
	m.drawRimLabel(canvas, colors, width, height, "0h", 0)
	m.drawRimLabel(canvas, colors, width, height, "6h", 90)
	m.drawRimLabel(canvas, colors, width, height, "12h", 180)
	m.drawRimLabel(canvas, colors, width, height, "18h", 270)

	// Zenith cross.
	cx, cy := width/2, (height-1)/2
	canvas[cy][cx] = '+'
	colors[cy][cx] = colorZenith

	var positions []holePos
	for i, p := range m.visible() {
		x, y, ok := m.projectDome(p.Direction, width, height)
		if !ok {
			continue
		}
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}

		isFocused := i == m.focusIdx

		glyph, color := m.holeGlyph(p.HoleRadiusMm)
		if isFocused {
			glyph = glyphFocused
			color = colorFocused
		}

		canvas[y][x] = glyph
		colors[y][x] = color

		positions = append(positions, holePos{
			x:         x,
			y:         y,
			name:      p.Star.Name,
			isFocused: isFocused,
		})
	}

	m.renderLabels(canvas, colors, width, height, positions)

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderLabels draws hole labels next to their glyphs. Focused labels
// win overlapping regions.
func (m PreviewModel) renderLabels(canvas [][]rune, colors [][]lipgloss.Color, width, height int, positions []holePos) {
	if m.labelMode == LabelNone || len(positions) == 0 {
		return
	}

	for i := range positions {
		pos := &positions[i]
		pos.labelStart = pos.x + 2
		labelLen := len([]rune(pos.name))
		if pos.isFocused {
			labelLen += 2 // "◄ " prefix
		}
		pos.labelEnd = pos.labelStart + labelLen
	}

	focusedClaims := make(map[int]map[int]bool) // y -> x -> claimed
	for _, pos := range positions {
		if !pos.isFocused {
			continue
		}
		if focusedClaims[pos.y] == nil {
			focusedClaims[pos.y] = make(map[int]bool)
		}
		for x := pos.labelStart; x < pos.labelEnd; x++ {
			focusedClaims[pos.y][x] = true
		}
	}

	for _, pos := range positions {
		showLabel := false
		switch m.labelMode {
		case LabelFocused:
			showLabel = pos.isFocused
		case LabelAll:
			showLabel = true
		}
		if !showLabel {
			continue
		}

		labelColor := lipgloss.Color(colorLabel)
		labelText := pos.name
		if pos.isFocused {
			labelColor = colorFocused
			labelText = "◄ " + pos.name
		}

		for i, r := range []rune(labelText) {
			x := pos.labelStart + i
			if x < 0 || x >= width || pos.y < 0 || pos.y >= height {
				continue
			}
			if !pos.isFocused && focusedClaims[pos.y][x] {
				continue
			}
			canvas[pos.y][x] = r
			colors[pos.y][x] = labelColor
		}
	}
}

// holeGlyph buckets a hole radius into thirds of the drilled range.
func (m PreviewModel) holeGlyph(r float64) (rune, lipgloss.Color) {
	span := m.holeHi - m.holeLo
	switch {
	case r >= m.holeLo+2*span/3:
		return glyphHoleLarge, colorHoleLarge
	case r >= m.holeLo+span/3:
		return glyphHoleMedium, colorHoleMedium
	default:
		return glyphHoleSmall, colorHoleSmall
	}
}

func (m PreviewModel) drawRimLabel(canvas [][]rune, colors [][]lipgloss.Color, width, height int, label string, deg float64) {
	az := deg * math.Pi / 180
	x, y := m.rimPoint(az, width, height)
	for i, r := range []rune(label) {
		if x+i < 0 || x+i >= width || y < 0 || y >= height {
			continue
		}
		canvas[y][x+i] = r
		colors[y][x+i] = "252"
	}
}

// rimPoint returns the canvas cell on the equatorial rim at the given
// azimuth (radians, counterclockwise from +X).
func (m PreviewModel) rimPoint(az float64, width, height int) (int, int) {
	cx, cy := width/2, (height-1)/2
	rx := float64(width-6) / 2
	ry := float64(height-1) / 2

	x := cx + int(math.Round(rx*math.Cos(az)))
	y := cy - int(math.Round(ry*math.Sin(az)))
	return x, y
}

// projectDome maps a star direction onto the plan view. Directions
// below the equator flip to their antipode first.
func (m PreviewModel) projectDome(dir astro.Vec3, width, height int) (int, int, bool) {
	eff := dir.Normalized()
	if eff.Norm() == 0 {
		return 0, 0, false
	}
	if eff.Z < 0 {
		eff = eff.Scale(-1)
	}

	// 0 at the zenith, 1 on the rim.
	rho := math.Acos(astro.Clamp(eff.Z, -1, 1)) / (math.Pi / 2)
	az := math.Atan2(eff.Y, eff.X)

	cx, cy := width/2, (height-1)/2
	rx := float64(width-6) / 2
	ry := float64(height-1) / 2

	x := cx + int(math.Round(rho*rx*math.Cos(az)))
	y := cy - int(math.Round(rho*ry*math.Sin(az)))
	return x, y, true
}
