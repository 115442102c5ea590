package carousel

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Nudge animation tuning. The spring settles in roughly two seconds at
// 60fps; maxNudgeFrames is the hard stop.
const (
	nudgeFPS       = 60
	nudgeKick      = 24.0
	nudgeFrequency = 5.0
	nudgeDamping   = 0.25
	maxNudgeFrames = 120
)

// Nudge drives the cosmetic idle attention wiggle with a spring. It has no
// effect on carousel state.
type Nudge struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	frames int
	active bool
}

// NewNudge returns an inactive nudge animation.
func NewNudge() *Nudge {
	return &Nudge{
		spring: harmonica.NewSpring(harmonica.FPS(nudgeFPS), nudgeFrequency, nudgeDamping),
	}
}

// Start kicks the spring. Restarting mid-animation just re-kicks it.
func (n *Nudge) Start() {
	n.pos = 0
	n.vel = nudgeKick
	n.frames = 0
	n.active = true
}

// Active reports whether the animation still has frames to play.
func (n *Nudge) Active() bool { return n.active }

// Offset returns the current wiggle displacement in pixels.
func (n *Nudge) Offset() float64 {
	if !n.active {
		return 0
	}
	return n.pos
}

// Update advances the spring one frame and reports whether the animation is
// still running.
func (n *Nudge) Update() bool {
	if !n.active {
		return false
	}
	n.pos, n.vel = n.spring.Update(n.pos, n.vel, 0)
	n.frames++
	if n.frames >= maxNudgeFrames || (math.Abs(n.pos) < 0.5 && math.Abs(n.vel) < 0.5 && n.frames > 10) {
		n.active = false
		n.pos = 0
	}
	return n.active
}
