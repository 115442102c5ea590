package tui

import (
	"time"

	"github.com/inkmatch/inkdeck/internal/carousel"
	"github.com/inkmatch/inkdeck/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
)

// Terminal cells are mapped to the pixel units the layout tables and drag
// thresholds are defined in. A cell is roughly 8px wide and twice as tall.
const (
	pxPerCellX = 8
	pxPerCellY = 16
)

const defaultNudgeInterval = 30 * time.Second

// Model is the showcase TUI model.
type Model struct {
	// Core state
	carousel *carousel.Controller
	store    *theme.Store

	// Theme state
	mode    theme.Mode
	palette theme.Palette
	styles  styleSet

	// Transition state. transitionID tags frames so a discarded
	// transition's ticks fall through harmlessly.
	transition      *theme.Transition
	transitionID    int
	transitionStart time.Time

	// Idle-nudge state
	nudge         *carousel.Nudge
	nudgeInterval time.Duration

	// Presentation
	title   string
	tagline string
	flash   string

	// Dimensions in cells
	width  int
	height int
}

// NewModel creates the showcase model.
func NewModel(title, tagline string, items []carousel.Item, store *theme.Store, nudgeInterval time.Duration) Model {
	if nudgeInterval <= 0 {
		nudgeInterval = defaultNudgeInterval
	}

	mode := store.Mode()
	palette := theme.PaletteFor(mode)

	return Model{
		carousel:      carousel.New(items),
		store:         store,
		mode:          mode,
		palette:       palette,
		styles:        newStyles(palette),
		nudge:         carousel.NewNudge(),
		nudgeInterval: nudgeInterval,
		title:         title,
		tagline:       tagline,
		width:         80,
		height:        24,
	}
}

// Init starts the idle-nudge timer.
func (m Model) Init() tea.Cmd {
	return nudgeTimerCmd(m.nudgeInterval)
}

// ActiveIndex exposes the carousel selection for command-level callers.
func (m Model) ActiveIndex() int {
	return m.carousel.ActiveIndex()
}

// Mode reports the currently rendered theme mode.
func (m Model) Mode() theme.Mode {
	return m.mode
}

// TransitionActive reports whether a theme transition is running.
func (m Model) TransitionActive() bool {
	return m.transition != nil
}

// applyMode swaps the rendered mode and re-resolves the palette and styles
// once, so per-frame rendering never resolves symbolic colors.
func (m *Model) applyMode(mode theme.Mode) {
	m.mode = mode
	m.palette = theme.PaletteFor(mode)
	m.styles = newStyles(m.palette)
}

// viewportPx returns the viewport size in pixel units.
func (m Model) viewportPx() (w, h float64) {
	return float64(m.width * pxPerCellX), float64(m.height * pxPerCellY)
}
