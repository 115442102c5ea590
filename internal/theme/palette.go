package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Mode is the persisted theme mode.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

func (m Mode) valid() bool {
	return m == ModeLight || m == ModeDark
}

// SystemMode resolves the terminal's preference, used when no mode has been
// persisted yet.
func SystemMode() Mode {
	if lipgloss.HasDarkBackground() {
		return ModeDark
	}
	return ModeLight
}

// Palette is the fixed set of named entries resolved to concrete colors for
// one mode. Animated properties read these values directly; symbolic
// references are never re-resolved per frame.
type Palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Ink        lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	AccentSoft lipgloss.Color
	Border     lipgloss.Color
}

// Resolved once at init; PaletteFor returns cached values, never rebuilds.
var (
	lightPalette = Palette{
		Background: lipgloss.Color("#faf7f2"),
		Surface:    lipgloss.Color("#ffffff"),
		Ink:        lipgloss.Color("#1c1917"),
		Muted:      lipgloss.Color("#78716c"),
		Accent:     lipgloss.Color("#b91c1c"),
		AccentSoft: lipgloss.Color("#fca5a5"),
		Border:     lipgloss.Color("#d6d3d1"),
	}

	darkPalette = Palette{
		Background: lipgloss.Color("#0c0a09"),
		Surface:    lipgloss.Color("#1c1917"),
		Ink:        lipgloss.Color("#fafaf9"),
		Muted:      lipgloss.Color("#a8a29e"),
		Accent:     lipgloss.Color("#f87171"),
		AccentSoft: lipgloss.Color("#7f1d1d"),
		Border:     lipgloss.Color("#44403c"),
	}
)

// PaletteFor returns the cached palette for a mode.
func PaletteFor(m Mode) Palette {
	if m == ModeDark {
		return darkPalette
	}
	return lightPalette
}
