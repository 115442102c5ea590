package carousel

import (
	"math"
	"time"
)

// DragPhase identifies the engine's position in its gesture state machine.
type DragPhase int

const (
	PhaseIdle DragPhase = iota
	PhaseDragging
	PhaseCoasting
)

func (p DragPhase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseCoasting:
		return "coasting"
	default:
		return "idle"
	}
}

// Gesture and physics constants. The velocity unit is px per 16ms frame.
const (
	dragDeadzonePx    = 5.0
	frameReferenceMs  = 16.0
	flickVelocity     = 2.0
	coastFriction     = 0.93
	coastRestVelocity = 0.4
	releaseSnapRatio  = 0.25
	coastSnapRatio    = 0.35
)

// Engine consumes raw pointer samples and produces either a live drag offset
// or a post-release coast that resolves to a signed index delta. Snapping is
// threshold comparison against SideOffset, so behavior is independent of the
// rendered card geometry.
type Engine struct {
	phase    DragPhase
	captured bool

	startX   float64
	lastX    float64
	lastTime time.Time

	offset   float64
	velocity float64

	// coastGen tags the coast in flight. A frame carrying a stale
	// generation is ignored, which makes cancellation race-free without a
	// shared cancellation handle.
	coastGen int
}

// NewEngine returns an idle engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Phase reports the current state-machine phase.
func (e *Engine) Phase() DragPhase { return e.phase }

// Offset reports the current scalar drag offset in pixels. It is applied
// uniformly to every visible card by the renderer.
func (e *Engine) Offset() float64 { return e.offset }

// Velocity reports the latest frame-normalized velocity sample.
func (e *Engine) Velocity() float64 { return e.velocity }

// CoastGeneration returns the tag a coast frame loop must carry.
func (e *Engine) CoastGeneration() int { return e.coastGen }

// PointerDown begins a gesture. Any in-flight coast is cancelled first.
func (e *Engine) PointerDown(x float64, at time.Time) {
	e.CancelCoast()
	e.phase = PhaseDragging
	e.captured = false
	e.startX = x
	e.lastX = x
	e.lastTime = at
	e.offset = 0
	e.velocity = 0
}

// PointerMove feeds a pointer sample. It reports whether the gesture has
// been captured, i.e. cumulative displacement escaped the 5px deadzone.
// Below the deadzone the sample leaves no observable state: the gesture is
// still a click/tap.
func (e *Engine) PointerMove(x float64, at time.Time) bool {
	if e.phase != PhaseDragging {
		return false
	}

	disp := x - e.startX
	if !e.captured {
		if math.Abs(disp) <= dragDeadzonePx {
			e.lastX = x
			e.lastTime = at
			return false
		}
		e.captured = true
	}

	if dt := at.Sub(e.lastTime); dt > 0 {
		e.velocity = (x - e.lastX) / (float64(dt) / float64(time.Millisecond)) * frameReferenceMs
	}
	e.offset = disp
	e.lastX = x
	e.lastTime = at
	return true
}

// PointerUp ends the gesture. A slow release resolves immediately: the
// returned steps is the signed index delta (zero when displacement stayed
// under 25% of sideOffset) and the offset resets with no animation
// continuation. A fast release returns coasting=true; the caller must drive
// Step once per frame until it reports done.
func (e *Engine) PointerUp(sideOffset float64) (steps int, coasting bool) {
	if e.phase != PhaseDragging {
		return 0, false
	}
	if !e.captured {
		e.reset()
		return 0, false
	}

	if math.Abs(e.velocity) > flickVelocity {
		e.phase = PhaseCoasting
		e.coastGen++
		return 0, true
	}

	if math.Abs(e.offset) > releaseSnapRatio*sideOffset {
		steps = stepToward(e.offset)
	}
	e.reset()
	return steps, false
}

// Step advances an active coast by one frame: velocity decays by the
// friction coefficient and accumulates into the offset. It stops either by
// snapping once the offset exceeds 35% of sideOffset, or by coming to rest
// once velocity decays under 0.4 (applying the 25% displacement rule at that
// point). Frames carrying a stale generation are no-ops.
func (e *Engine) Step(generation int, sideOffset float64) (steps int, done bool) {
	if e.phase != PhaseCoasting || generation != e.coastGen {
		return 0, true
	}

	e.velocity *= coastFriction
	e.offset += e.velocity

	if math.Abs(e.offset) > coastSnapRatio*sideOffset {
		steps = int(math.Round(-e.offset / sideOffset))
		if steps == 0 {
			// The snap threshold fires before rounding reaches a
			// full card width; always move at least one step.
			steps = stepToward(e.offset)
		}
		e.reset()
		return steps, true
	}

	if math.Abs(e.velocity) < coastRestVelocity {
		if math.Abs(e.offset) > releaseSnapRatio*sideOffset {
			steps = stepToward(e.offset)
		}
		e.reset()
		return steps, true
	}

	return 0, false
}

// CancelCoast aborts any in-flight coast and clears residual offset. Called
// on new pointer-downs and on any external active-index change.
func (e *Engine) CancelCoast() {
	e.coastGen++
	e.reset()
}

func (e *Engine) reset() {
	e.phase = PhaseIdle
	e.captured = false
	e.offset = 0
	e.velocity = 0
}

// stepToward maps a displacement to an index delta. Dragging left (negative
// offset) reveals the next card.
func stepToward(offset float64) int {
	if offset < 0 {
		return 1
	}
	return -1
}
