package tui

import "time"

// coastFrameMsg drives one frame of the momentum decay loop. Generation
// tags the coast it belongs to; stale frames are dropped by the engine.
type coastFrameMsg struct {
	Generation int
}

// transitionFrameMsg drives the theme transition timeline. ID tags the
// transition instance so frames from a finished transition are ignored.
type transitionFrameMsg struct {
	ID int
	At time.Time
}

// nudgeTimerMsg fires on the 30-second idle timer.
type nudgeTimerMsg struct{}

// nudgeFrameMsg drives one frame of the attention wiggle.
type nudgeFrameMsg struct{}

// clearFlashMsg dismisses the transient status line.
type clearFlashMsg struct{}
