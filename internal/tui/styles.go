package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/inkmatch/inkdeck/internal/theme"
)

// styleSet holds the pre-built lipgloss styles for one palette. It is rebuilt
// only when the mode flips, never per frame.
type styleSet struct {
	app     lipgloss.Style
	title   lipgloss.Style
	tagline lipgloss.Style

	activeCard  lipgloss.Style
	activeTitle lipgloss.Style
	activeBody  lipgloss.Style
	activeCTA   lipgloss.Style

	sideCard  lipgloss.Style
	sideTitle lipgloss.Style
	sideBody  lipgloss.Style

	dotActive lipgloss.Style
	dotIdle   lipgloss.Style

	overlay      lipgloss.Style
	overlayTitle lipgloss.Style
	overlayLink  lipgloss.Style

	flash lipgloss.Style
	help  lipgloss.Style
}

func newStyles(p theme.Palette) styleSet {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	return styleSet{
		app: lipgloss.NewStyle().
			Background(p.Background).
			Foreground(p.Ink),

		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),

		tagline: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		activeCard: card.
			BorderForeground(p.Accent).
			Background(p.Surface).
			Foreground(p.Ink),

		activeTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Ink),

		activeBody: lipgloss.NewStyle().
			Foreground(p.Muted),

		activeCTA: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(p.Accent).
			Foreground(p.Background),

		sideCard: card.
			BorderForeground(p.Border).
			Foreground(p.Muted),

		sideTitle: lipgloss.NewStyle().
			Foreground(p.Muted),

		sideBody: lipgloss.NewStyle().
			Foreground(p.Border),

		dotActive: lipgloss.NewStyle().
			Foreground(p.Accent),

		dotIdle: lipgloss.NewStyle().
			Foreground(p.Border),

		overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Accent).
			Background(p.Surface).
			Foreground(p.Ink).
			Padding(1, 3),

		overlayTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),

		overlayLink: lipgloss.NewStyle().
			Underline(true).
			Foreground(p.Ink),

		flash: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),

		help: lipgloss.NewStyle().
			Foreground(p.Muted),
	}
}
