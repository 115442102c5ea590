package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	coastFrameInterval      = 16 * time.Millisecond
	transitionFrameInterval = 33 * time.Millisecond
	nudgeFrameInterval      = 16 * time.Millisecond
	flashDuration           = 2 * time.Second
)

func coastFrameCmd(generation int) tea.Cmd {
	return tea.Tick(coastFrameInterval, func(time.Time) tea.Msg {
		return coastFrameMsg{Generation: generation}
	})
}

func transitionFrameCmd(id int) tea.Cmd {
	return tea.Tick(transitionFrameInterval, func(t time.Time) tea.Msg {
		return transitionFrameMsg{ID: id, At: t}
	})
}

func nudgeTimerCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return nudgeTimerMsg{}
	})
}

func nudgeFrameCmd() tea.Cmd {
	return tea.Tick(nudgeFrameInterval, func(time.Time) tea.Msg {
		return nudgeFrameMsg{}
	})
}

func clearFlashCmd() tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{}
	})
}
