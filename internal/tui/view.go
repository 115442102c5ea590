package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/inkmatch/inkdeck/internal/carousel"
	"github.com/inkmatch/inkdeck/internal/theme"
	"github.com/inkmatch/inkdeck/internal/video"
)

var shapeRunes = map[theme.ShapeKind]rune{
	theme.ShapeCircle:   '●',
	theme.ShapeTriangle: '▲',
	theme.ShapeSquare:   '■',
}

// View renders the showcase.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderCarousel())
	b.WriteString("\n\n")
	b.WriteString(m.renderDots())
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	body := b.String()

	if m.carousel.VideoOpen() {
		body = m.composeOverlay(body, m.renderVideoOverlay())
	}

	if m.transition != nil {
		body = m.renderTransition(body)
	}

	return m.styles.app.Width(m.width).Render(body)
}

func (m Model) renderHeader() string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.title.Render(m.title),
		m.styles.tagline.Render(m.tagline),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, header)
}

// renderCarousel draws the previous, active and next cards side by side. The
// scalar drag offset shifts the whole row; cards beyond the adjacent slots
// are not drawn at all.
func (m Model) renderCarousel() string {
	items := m.carousel.Items()
	if len(items) == 0 {
		empty := m.styles.sideCard.Render("no showcase items")
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, empty)
	}

	layout := m.carousel.Layout()
	cards := make([]string, 0, 3)
	for _, slot := range []int{-1, 0, 1} {
		if card, ok := m.renderSlot(slot, layout); ok {
			cards = append(cards, card)
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, cards...)
	row = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, row)
	return m.shiftRow(row)
}

// renderSlot draws one card by its circular slot. For a tiny item count the
// same item can be both the previous and next neighbor; only the canonical
// slot is drawn.
func (m Model) renderSlot(slot int, layout carousel.LayoutConfig) (string, bool) {
	items := m.carousel.Items()
	n := len(items)
	if slot != 0 && n < 2 {
		return "", false
	}
	if slot == -1 && n == 2 {
		// With two items the single neighbor renders on the right.
		return "", false
	}

	index := wrapIndex(m.carousel.ActiveIndex()+slot, n)
	item := items[index]
	visual := carousel.Visual(carousel.Slot(index, m.carousel.ActiveIndex(), n), layout)

	// Scale maps pixel card geometry onto cells. Height is halved again so
	// cards stay in proportion on tall terminal cells.
	width := int(layout.CardWidth * visual.Scale / pxPerCellX)
	height := int(layout.CardHeight * visual.Scale / pxPerCellY / 2)

	if slot == 0 {
		body := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.activeTitle.Render(item.Title),
			"",
			m.styles.activeBody.Width(width-6).Render(item.Description),
		)
		if item.CTALabel != "" {
			body = lipgloss.JoinVertical(lipgloss.Left,
				body,
				"",
				m.styles.activeCTA.Render(item.CTALabel),
			)
		}
		return m.styles.activeCard.Width(width).Height(height).Render(body), true
	}

	// Side cards render dimmed, title only, standing in for the blurred
	// reduced-opacity neighbors.
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.sideTitle.Render(item.Title),
		"",
		m.styles.sideBody.Width(width-6).Render(truncate(item.Description, 60)),
	)
	return m.styles.sideCard.Width(width).Height(height).Render(body), true
}

// shiftRow applies the live drag and nudge displacement to the carousel row
// by sliding it whole cells left or right.
func (m Model) shiftRow(row string) string {
	px := m.carousel.Engine().Offset() + m.nudge.Offset()
	cells := int(math.Round(px / pxPerCellX))
	if cells == 0 {
		return row
	}

	lines := strings.Split(row, "\n")
	for i, line := range lines {
		if cells > 0 {
			lines[i] = strings.Repeat(" ", cells) + line
		} else {
			// The row is centered, so a leftward shift eats its
			// leading margin.
			lines[i] = trimLeadingSpaces(line, -cells)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDots() string {
	n := m.carousel.Len()
	if n == 0 {
		return ""
	}

	dots := make([]string, n)
	for i := range dots {
		if i == m.carousel.ActiveIndex() {
			dots[i] = m.styles.dotActive.Render("●")
		} else {
			dots[i] = m.styles.dotIdle.Render("○")
		}
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		strings.Join(dots, " "))
}

func (m Model) renderFooter() string {
	if m.flash != "" {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
			m.styles.flash.Render(m.flash))
	}

	help := "←/→ browse • 1-9 jump • enter watch • t theme • q quit"
	if m.carousel.VideoOpen() {
		help = "c copy link • g QR code • esc close"
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		m.styles.help.Render(help))
}

func (m Model) renderVideoOverlay() string {
	item, ok := m.carousel.Active()
	if !ok {
		return ""
	}

	return m.styles.overlay.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.styles.overlayTitle.Render("▶ "+item.Title),
		"",
		m.styles.overlayLink.Render(video.WatchURL(item.VideoID)),
		"",
		m.styles.help.Render("c copy • g QR • esc close"),
	))
}

// composeOverlay centers a panel over the base view, replacing the covered
// lines. Terminal cells have no alpha, so the backdrop simply shows around
// the panel instead of dimming behind it.
func (m Model) composeOverlay(base, panel string) string {
	baseLines := strings.Split(base, "\n")
	panelLines := strings.Split(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panel), "\n")

	top := (len(baseLines) - len(panelLines)) / 2
	if top < 0 {
		return panel
	}
	for i, line := range panelLines {
		baseLines[top+i] = line
	}
	return strings.Join(baseLines, "\n")
}

// renderTransition paints the circular reveal over the base view: every cell
// inside the current radius takes the target background, and the shape burst
// is plotted on top. Cell coordinates are mapped back to the pixel space the
// timeline is defined in.
func (m Model) renderTransition(base string) string {
	elapsed := time.Since(m.transitionStart)

	w, h := m.viewportPx()
	origin := m.transition.Origin()
	maxRadius := coverRadius(origin, w, h)
	radius := m.transition.RevealRadius(elapsed, maxRadius)

	target := theme.PaletteFor(m.transition.Target())
	fill := lipgloss.NewStyle().Background(target.Background).Foreground(target.Ink)

	lines := strings.Split(base, "\n")
	out := make([]string, len(lines))
	for row := range lines {
		out[row] = m.revealRow(lines[row], row, radius, fill)
	}

	m.plotShapes(out, elapsed, target)
	return strings.Join(out, "\n")
}

// revealRow repaints the chord of the reveal circle crossing one cell row.
func (m Model) revealRow(line string, row int, radius float64, fill lipgloss.Style) string {
	origin := m.transition.Origin()
	cy := (float64(row) + 0.5) * pxPerCellY
	dy := cy - origin.Y

	if radius*radius <= dy*dy {
		return line
	}
	half := math.Sqrt(radius*radius - dy*dy)

	left := int((origin.X - half) / pxPerCellX)
	right := int((origin.X + half) / pxPerCellX)
	if left < 0 {
		left = 0
	}
	if right > m.width {
		right = m.width
	}
	if left >= right {
		return line
	}

	rs := []rune(stripToWidth(line, m.width))
	return string(rs[:left]) + fill.Render(string(rs[left:right])) + string(rs[right:])
}

// plotShapes stamps the decorative burst runes into the already-revealed
// rows. Shapes are purely cosmetic; out-of-viewport positions are skipped.
func (m Model) plotShapes(rows []string, elapsed time.Duration, palette theme.Palette) {
	for i, s := range m.transition.Shapes() {
		x, y, _, visible := m.transition.ShapePosition(i, elapsed)
		if !visible {
			continue
		}

		col := int(x / pxPerCellX)
		row := int(y / pxPerCellY)
		if row < 0 || row >= len(rows) || col < 0 || col >= m.width {
			continue
		}

		style := lipgloss.NewStyle().Background(palette.Background).Foreground(s.Color)
		plain := stripToWidth(rows[row], m.width)
		rs := []rune(plain)
		if col >= len(rs) {
			continue
		}
		rows[row] = string(rs[:col]) + style.Render(string(shapeRunes[s.Kind])) + string(rs[col+1:])
	}
}

// coverRadius is the distance from the origin to the farthest viewport
// corner, the radius at which the reveal fully covers the screen.
func coverRadius(origin theme.Point, w, h float64) float64 {
	r := 0.0
	for _, cx := range []float64{0, w} {
		for _, cy := range []float64{0, h} {
			d := math.Hypot(cx-origin.X, cy-origin.Y)
			if d > r {
				r = d
			}
		}
	}
	return r
}

// stripToWidth flattens a styled line to plain runes padded to width, so
// chord repainting indexes cells rather than ANSI bytes.
func stripToWidth(line string, width int) string {
	plain := stripANSI(line)
	if len([]rune(plain)) < width {
		plain += strings.Repeat(" ", width-len([]rune(plain)))
	}
	rs := []rune(plain)
	if len(rs) > width {
		rs = rs[:width]
	}
	return string(rs)
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max-1]) + "…"
}

func trimLeadingSpaces(line string, n int) string {
	for i := 0; i < n; i++ {
		if !strings.HasPrefix(line, " ") {
			break
		}
		line = line[1:]
	}
	return line
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
