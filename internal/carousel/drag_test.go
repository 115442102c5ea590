package carousel

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSideOffset = 280.0

func ts(ms int) time.Time {
	return time.Unix(0, 0).Add(time.Duration(ms) * time.Millisecond)
}

func TestDeadzoneGestureLeavesNoState(t *testing.T) {
	e := NewEngine()

	e.PointerDown(100, ts(0))
	assert.Equal(t, PhaseDragging, e.Phase())

	captured := e.PointerMove(103, ts(50))
	assert.False(t, captured)
	assert.Equal(t, 0.0, e.Offset())

	steps, coasting := e.PointerUp(testSideOffset)
	assert.Equal(t, 0, steps)
	assert.False(t, coasting)
	assert.Equal(t, PhaseIdle, e.Phase())
	assert.Equal(t, 0.0, e.Offset())
}

func TestSlowReleasePastThresholdAdvancesOne(t *testing.T) {
	e := NewEngine()

	// 30% of sideOffset, dragged left over half a second so the release
	// velocity stays under the flick threshold.
	e.PointerDown(0, ts(0))
	assert.True(t, e.PointerMove(-50, ts(200)))
	assert.True(t, e.PointerMove(-84, ts(500)))
	assert.LessOrEqual(t, math.Abs(e.Velocity()), 2.0)

	steps, coasting := e.PointerUp(testSideOffset)
	assert.Equal(t, 1, steps)
	assert.False(t, coasting)
	assert.Equal(t, 0.0, e.Offset())
}

func TestSlowReleaseUnderThresholdKeepsIndex(t *testing.T) {
	e := NewEngine()

	// 10% of sideOffset.
	e.PointerDown(0, ts(0))
	assert.True(t, e.PointerMove(-20, ts(200)))
	assert.True(t, e.PointerMove(-28, ts(500)))

	steps, coasting := e.PointerUp(testSideOffset)
	assert.Equal(t, 0, steps)
	assert.False(t, coasting)
	assert.Equal(t, 0.0, e.Offset())
}

func TestSlowReleaseRightwardRetreats(t *testing.T) {
	e := NewEngine()

	e.PointerDown(0, ts(0))
	assert.True(t, e.PointerMove(50, ts(200)))
	assert.True(t, e.PointerMove(84, ts(500)))

	steps, _ := e.PointerUp(testSideOffset)
	assert.Equal(t, -1, steps)
}

func TestFastReleaseEntersCoasting(t *testing.T) {
	e := NewEngine()

	e.PointerDown(0, ts(0))
	e.PointerMove(-31, ts(16)) // one frame, v = -31 px/frame

	steps, coasting := e.PointerUp(testSideOffset)
	assert.Equal(t, 0, steps)
	assert.True(t, coasting)
	assert.Equal(t, PhaseCoasting, e.Phase())
}

func TestCoastSnapsToAdjacentIndex(t *testing.T) {
	e := NewEngine()

	e.PointerDown(0, ts(0))
	e.PointerMove(-31, ts(16))
	_, coasting := e.PointerUp(testSideOffset)
	assert.True(t, coasting)

	gen := e.CoastGeneration()
	var steps int
	var done bool
	for i := 0; i < 200 && !done; i++ {
		steps, done = e.Step(gen, testSideOffset)
	}

	assert.True(t, done)
	assert.Equal(t, 1, steps)
	assert.Equal(t, PhaseIdle, e.Phase())
	assert.Equal(t, 0.0, e.Offset())
}

func TestCoastComesToRestBelowSnapThreshold(t *testing.T) {
	e := NewEngine()

	// Just above the flick threshold: total coast travel stays under the
	// 35% snap ratio, so the loop ends by velocity decay and applies the
	// 25% displacement rule instead.
	e.PointerDown(0, ts(0))
	e.PointerMove(-6, ts(16))
	_, coasting := e.PointerUp(testSideOffset)
	assert.True(t, coasting)

	gen := e.CoastGeneration()
	var steps int
	var done bool
	frames := 0
	for ; frames < 200 && !done; frames++ {
		steps, done = e.Step(gen, testSideOffset)
	}

	assert.True(t, done)
	assert.Less(t, frames, 120, "friction decay must converge in bounded frames")
	assert.Equal(t, 1, steps)
	assert.Equal(t, 0.0, e.Offset())
}

func TestFrictionDecayIsMonotonic(t *testing.T) {
	v := 40.0
	steps := 0
	for math.Abs(v) >= coastRestVelocity {
		next := v * coastFriction
		assert.Less(t, math.Abs(next), math.Abs(v))
		v = next
		steps++
		if steps > 500 {
			t.Fatal("velocity never decayed below rest threshold")
		}
	}
	assert.Less(t, steps, 100)
}

func TestPointerDownCancelsCoast(t *testing.T) {
	e := NewEngine()

	e.PointerDown(0, ts(0))
	e.PointerMove(-31, ts(16))
	_, coasting := e.PointerUp(testSideOffset)
	assert.True(t, coasting)
	staleGen := e.CoastGeneration()

	e.PointerDown(10, ts(100))
	assert.Equal(t, PhaseDragging, e.Phase())

	steps, done := e.Step(staleGen, testSideOffset)
	assert.Equal(t, 0, steps)
	assert.True(t, done)
}

func TestCancelCoastClearsResidualOffset(t *testing.T) {
	e := NewEngine()

	e.PointerDown(0, ts(0))
	e.PointerMove(-31, ts(16))
	e.PointerUp(testSideOffset)

	gen := e.CoastGeneration()
	e.Step(gen, testSideOffset)
	assert.NotEqual(t, 0.0, e.Offset())

	e.CancelCoast()
	assert.Equal(t, 0.0, e.Offset())
	assert.Equal(t, PhaseIdle, e.Phase())

	steps, done := e.Step(gen, testSideOffset)
	assert.Equal(t, 0, steps)
	assert.True(t, done)
}

func TestMoveWithoutDownIsIgnored(t *testing.T) {
	e := NewEngine()
	assert.False(t, e.PointerMove(50, ts(0)))
	steps, coasting := e.PointerUp(testSideOffset)
	assert.Equal(t, 0, steps)
	assert.False(t, coasting)
}
