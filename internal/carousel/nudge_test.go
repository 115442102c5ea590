package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNudgeStartsInactive(t *testing.T) {
	n := NewNudge()
	assert.False(t, n.Active())
	assert.Equal(t, 0.0, n.Offset())
	assert.False(t, n.Update())
}

func TestNudgeSettlesWithinFrameBudget(t *testing.T) {
	n := NewNudge()
	n.Start()
	assert.True(t, n.Active())

	frames := 0
	for n.Update() {
		frames++
		if frames > maxNudgeFrames {
			t.Fatal("nudge never settled")
		}
	}

	assert.False(t, n.Active())
	assert.Equal(t, 0.0, n.Offset())
}

func TestNudgeRestartMidFlight(t *testing.T) {
	n := NewNudge()
	n.Start()
	for i := 0; i < 10; i++ {
		n.Update()
	}
	n.Start()
	assert.True(t, n.Active())
}
