package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkmatch/inkdeck/internal/theme"
	"github.com/inkmatch/inkdeck/internal/video"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Breakpoint and layout swap synchronously with the resize.
		m.carousel.Resize(msg.Width * pxPerCellX)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case coastFrameMsg:
		if done := m.carousel.CoastFrame(msg.Generation); done {
			return m, nil
		}
		return m, coastFrameCmd(msg.Generation)

	case transitionFrameMsg:
		return m.handleTransitionFrame(msg)

	case nudgeTimerMsg:
		if m.carousel.HasInteracted() {
			// First interaction retires the affordance for good.
			return m, nil
		}
		if m.transition == nil {
			m.nudge.Start()
			return m, tea.Batch(nudgeFrameCmd(), nudgeTimerCmd(m.nudgeInterval))
		}
		return m, nudgeTimerCmd(m.nudgeInterval)

	case nudgeFrameMsg:
		if m.nudge.Update() {
			return m, nudgeFrameCmd()
		}
		return m, nil

	case clearFlashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Prev):
		m.carousel.Navigate(-1)
		return m, nil

	case key.Matches(msg, keys.Next):
		m.carousel.Navigate(1)
		return m, nil

	case key.Matches(msg, keys.Theme):
		return m.startThemeTransition()

	case key.Matches(msg, keys.Watch):
		if item, ok := m.carousel.Active(); ok && item.VideoID != "" && !m.carousel.VideoOpen() {
			m.carousel.MarkInteracted()
			m.carousel.OpenVideo()
		}
		return m, nil

	case key.Matches(msg, keys.Close):
		if m.carousel.VideoOpen() {
			m.carousel.CloseVideo()
		}
		return m, nil

	case key.Matches(msg, keys.Copy):
		if item, ok := m.carousel.Active(); ok && m.carousel.VideoOpen() {
			if err := video.CopyLink(item.VideoID); err != nil {
				return m.withFlash("clipboard unavailable")
			}
			return m.withFlash("watch link copied")
		}
		return m, nil

	case key.Matches(msg, keys.QR):
		if item, ok := m.carousel.Active(); ok && m.carousel.VideoOpen() {
			path := "inkdeck-" + item.ID + "-qr.png"
			if err := video.WriteQR(item.VideoID, path); err != nil {
				return m.withFlash("could not write QR code")
			}
			return m.withFlash("QR saved to " + path)
		}
		return m, nil
	}

	// Digit keys jump straight to an item, like pagination dots.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		index := int(s[0] - '1')
		if index < m.carousel.Len() && !m.carousel.VideoOpen() {
			m.carousel.MarkInteracted()
			m.carousel.SetIndex(index)
		}
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// The overlay surfaces are not drag targets.
	if m.carousel.VideoOpen() || m.transition != nil {
		return m, nil
	}

	x := float64(msg.X) * pxPerCellX

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.carousel.PointerDown(x, time.Now())
		}
		return m, nil

	case tea.MouseActionMotion:
		m.carousel.PointerMove(x, time.Now())
		return m, nil

	case tea.MouseActionRelease:
		if coasting := m.carousel.PointerUp(); coasting {
			return m, coastFrameCmd(m.carousel.Engine().CoastGeneration())
		}
		return m, nil
	}

	return m, nil
}

// startThemeTransition begins the two-phase mode switch, bursting from the
// active card's center (which the layout pins to the middle of the viewport).
// A re-trigger while one is active is ignored.
func (m Model) startThemeTransition() (tea.Model, tea.Cmd) {
	if m.transition != nil {
		return m, nil
	}

	m.carousel.MarkInteracted()

	w, h := m.viewportPx()
	origin := theme.Point{X: w / 2, Y: h / 2}

	m.transition = theme.NewTransition(origin, m.mode.Opposite())
	m.transitionID++
	m.transitionStart = time.Now()

	return m, transitionFrameCmd(m.transitionID)
}

func (m Model) handleTransitionFrame(msg transitionFrameMsg) (tea.Model, tea.Cmd) {
	if m.transition == nil || msg.ID != m.transitionID {
		return m, nil
	}

	elapsed := msg.At.Sub(m.transitionStart)
	flashCmd := tea.Cmd(nil)

	done := m.transition.Advance(elapsed, func(mode theme.Mode) {
		if err := m.store.SetMode(mode); err != nil {
			m.flash = "theme could not be saved"
			flashCmd = clearFlashCmd()
		}
		m.applyMode(mode)
	})

	if done {
		m.transition = nil
		return m, flashCmd
	}

	if flashCmd != nil {
		return m, tea.Batch(transitionFrameCmd(msg.ID), flashCmd)
	}
	return m, transitionFrameCmd(msg.ID)
}

func (m Model) withFlash(text string) (tea.Model, tea.Cmd) {
	m.flash = text
	return m, clearFlashCmd()
}
