package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: string(rune('a' + i)), Title: "Item"}
	}
	return items
}

func TestNavigateWrapsBothWays(t *testing.T) {
	c := New(testItems(4))

	assert.Equal(t, 0, c.ActiveIndex())

	c.Navigate(1)
	assert.Equal(t, 1, c.ActiveIndex())

	c.Navigate(-2)
	assert.Equal(t, 3, c.ActiveIndex())

	c.Navigate(1)
	assert.Equal(t, 0, c.ActiveIndex())
}

func TestIndexStaysInRangeUnderArbitrarySequences(t *testing.T) {
	c := New(testItems(5))

	moves := []int{1, 1, -3, 7, -11, 2, 13, -1, -1, 40}
	for _, d := range moves {
		c.Advance(d)
		assert.GreaterOrEqual(t, c.ActiveIndex(), 0)
		assert.Less(t, c.ActiveIndex(), 5)
	}
}

func TestSetIndexWraps(t *testing.T) {
	c := New(testItems(4))

	c.SetIndex(2)
	assert.Equal(t, 2, c.ActiveIndex())

	c.SetIndex(10)
	assert.Equal(t, 2, c.ActiveIndex())

	c.SetIndex(-1)
	assert.Equal(t, 3, c.ActiveIndex())
}

func TestNavigateDisabledWhileVideoOpen(t *testing.T) {
	c := New(testItems(3))

	c.OpenVideo()
	c.Navigate(1)
	assert.Equal(t, 0, c.ActiveIndex())

	c.CloseVideo()
	c.Navigate(1)
	assert.Equal(t, 1, c.ActiveIndex())
}

func TestEmptyCarouselDegradesToNeutralSlot(t *testing.T) {
	c := New(nil)

	assert.Equal(t, 0, c.Len())
	_, ok := c.Active()
	assert.False(t, ok)

	c.Advance(1)
	c.SetIndex(5)
	assert.Equal(t, 0, c.ActiveIndex())
	assert.Equal(t, 0, c.SlotFor(0))
}

func TestKeyboardExampleEndToEnd(t *testing.T) {
	// Four items, active 0: slots {0, 1, 2, -1}. A right-arrow press makes
	// the active index 1 and rotates the slots.
	c := New(testItems(4))

	assert.Equal(t, 0, c.SlotFor(0))
	assert.Equal(t, 1, c.SlotFor(1))
	assert.Equal(t, 2, c.SlotFor(2))
	assert.Equal(t, -1, c.SlotFor(3))

	c.Navigate(1)
	assert.Equal(t, 1, c.ActiveIndex())
	assert.Equal(t, -1, c.SlotFor(0))
	assert.Equal(t, 0, c.SlotFor(1))
	assert.Equal(t, 1, c.SlotFor(2))
	assert.Equal(t, 2, c.SlotFor(3))
}

func TestExternalIndexChangeCancelsCoast(t *testing.T) {
	c := New(testItems(4))

	c.PointerDown(0, ts(0))
	c.PointerMove(-31, ts(16))
	coasting := c.PointerUp()
	assert.True(t, coasting)
	staleGen := c.Engine().CoastGeneration()

	c.Navigate(1)
	assert.Equal(t, 1, c.ActiveIndex())
	assert.Equal(t, 0.0, c.Engine().Offset())

	done := c.CoastFrame(staleGen)
	assert.True(t, done)
	assert.Equal(t, 1, c.ActiveIndex())
}

func TestDragReleaseAdvancesThroughController(t *testing.T) {
	c := New(testItems(4))
	side := c.Layout().SideOffset

	c.PointerDown(0, ts(0))
	c.PointerMove(-side*0.15, ts(300))
	c.PointerMove(-side*0.30, ts(900))
	coasting := c.PointerUp()

	assert.False(t, coasting)
	assert.Equal(t, 1, c.ActiveIndex())
}

func TestCoastResolvesThroughController(t *testing.T) {
	c := New(testItems(4))

	c.PointerDown(0, ts(0))
	c.PointerMove(-31, ts(16))
	coasting := c.PointerUp()
	assert.True(t, coasting)

	gen := c.Engine().CoastGeneration()
	done := false
	for i := 0; i < 200 && !done; i++ {
		done = c.CoastFrame(gen)
	}

	assert.True(t, done)
	assert.Equal(t, 1, c.ActiveIndex())
	assert.Equal(t, 0.0, c.Engine().Offset())
}

func TestResizeSwapsLayoutSynchronously(t *testing.T) {
	c := New(testItems(2))

	c.Resize(500)
	assert.Equal(t, BreakpointMobile, c.Breakpoint())
	assert.Equal(t, LayoutFor(BreakpointMobile), c.Layout())

	c.Resize(800)
	assert.Equal(t, BreakpointTablet, c.Breakpoint())

	c.Resize(1920)
	assert.Equal(t, BreakpointDesktop, c.Breakpoint())
}

func TestInteractionFlagLatches(t *testing.T) {
	c := New(testItems(2))

	assert.False(t, c.HasInteracted())
	c.PointerDown(0, time.Now())
	assert.True(t, c.HasInteracted())

	// No API clears it.
	c.PointerUp()
	assert.True(t, c.HasInteracted())
}
