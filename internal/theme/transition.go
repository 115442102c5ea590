package theme

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Transition timeline, relative to the trigger instant.
const (
	RevealDuration = 750 * time.Millisecond
	FlipAt         = 350 * time.Millisecond
	ShapeTravel    = 1400 * time.Millisecond
	ShapeStagger   = 30 * time.Millisecond
	TotalDuration  = 1600 * time.Millisecond

	shapeCount = 15
)

// Point is a viewport coordinate in pixels, the origin of the wipe.
type Point struct {
	X float64
	Y float64
}

// ShapeKind enumerates the decorative burst shapes.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeTriangle
	ShapeSquare
)

// Shape is one decorative particle launched from the origin.
type Shape struct {
	ID       int
	Kind     ShapeKind
	Color    lipgloss.Color
	Size     float64
	Angle    float64
	Distance float64
	Rotation float64
	Delay    time.Duration
}

// Transition runs the two-phase mode switch: a circular reveal that covers
// the viewport by 750ms, the persisted flip at 350ms while the wipe still
// masks the change, and a 15-shape burst finishing by 1600ms. One instance
// handles exactly one switch; the caller discards it once Advance reports
// done.
type Transition struct {
	origin  Point
	target  Mode
	shapes  []Shape
	flipped bool
}

// NewTransition builds a transition toward target, bursting from origin.
func NewTransition(origin Point, target Mode) *Transition {
	return &Transition{
		origin: origin,
		target: target,
		shapes: buildShapes(target),
	}
}

// Origin returns the wipe origin.
func (t *Transition) Origin() Point { return t.origin }

// Target returns the mode this transition switches to.
func (t *Transition) Target() Mode { return t.target }

// Shapes returns the decorative shape set.
func (t *Transition) Shapes() []Shape { return t.shapes }

// Advance drives the timeline. flip is invoked exactly once, at or after the
// 350ms mark; destroying the transition before then means it never runs.
// Returns true once the full sequence has elapsed.
func (t *Transition) Advance(elapsed time.Duration, flip func(Mode)) bool {
	if !t.flipped && elapsed >= FlipAt {
		t.flipped = true
		if flip != nil {
			flip(t.target)
		}
	}
	return elapsed >= TotalDuration
}

// Flipped reports whether the persisted flip has happened.
func (t *Transition) Flipped() bool { return t.flipped }

// RevealRadius returns the wipe radius at elapsed, where maxRadius is large
// enough to cover the viewport from the origin.
func (t *Transition) RevealRadius(elapsed time.Duration, maxRadius float64) float64 {
	p := clamp01(float64(elapsed) / float64(RevealDuration))
	return easeOutCubic(p) * maxRadius
}

// ShapePosition returns shape i's position and rotation at elapsed, and
// whether it is currently visible. Each shape starts after its stagger delay
// and completes its own motion in 1.4s.
func (t *Transition) ShapePosition(i int, elapsed time.Duration) (x, y, rot float64, visible bool) {
	if i < 0 || i >= len(t.shapes) {
		return 0, 0, 0, false
	}
	s := t.shapes[i]

	local := elapsed - s.Delay
	if local <= 0 || local >= ShapeTravel {
		return 0, 0, 0, false
	}

	p := easeOutCubic(float64(local) / float64(ShapeTravel))
	x = t.origin.X + math.Cos(s.Angle)*s.Distance*p
	y = t.origin.Y + math.Sin(s.Angle)*s.Distance*p
	rot = s.Rotation * p
	return x, y, rot, true
}

// buildShapes lays the 15 particles out on a fixed fan: evenly spread launch
// angles, alternating kinds, distances and sizes cycling over small tables.
// Deterministic so renders and tests agree.
func buildShapes(target Mode) []Shape {
	palette := PaletteFor(target)
	colors := [...]lipgloss.Color{palette.Accent, palette.AccentSoft, palette.Muted}
	sizes := [...]float64{14, 22, 10, 18, 26}
	distances := [...]float64{220, 340, 160, 280, 400}

	shapes := make([]Shape, shapeCount)
	for i := range shapes {
		shapes[i] = Shape{
			ID:       i,
			Kind:     ShapeKind(i % 3),
			Color:    colors[i%len(colors)],
			Size:     sizes[i%len(sizes)],
			Angle:    2 * math.Pi * float64(i) / shapeCount,
			Distance: distances[i%len(distances)],
			Rotation: math.Pi * float64(1+i%4) / 2,
			Delay:    time.Duration(i) * ShapeStagger,
		}
	}
	return shapes
}

func easeOutCubic(t float64) float64 {
	u := 1 - clamp01(t)
	return 1 - u*u*u
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
