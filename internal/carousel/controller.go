package carousel

import (
	"time"
)

// Item is one showcase card. Items are read-only from the carousel's
// perspective; their order defines circular adjacency.
type Item struct {
	ID              string
	Title           string
	Description     string
	CTALabel        string
	VideoID         string
	BackgroundImage string
}

// Controller owns the active index and composes the slot mapper, layout
// resolver and drag engine. All index arithmetic wraps modulo the item
// count; an empty item list degrades to a single neutral slot.
type Controller struct {
	items  []Item
	active int

	engine     *Engine
	breakpoint Breakpoint
	layout     LayoutConfig

	interacted bool
	videoOpen  bool
}

// New creates a controller over the given items with a desktop layout until
// the first resize arrives.
func New(items []Item) *Controller {
	return &Controller{
		items:      items,
		engine:     NewEngine(),
		breakpoint: BreakpointDesktop,
		layout:     LayoutFor(BreakpointDesktop),
	}
}

// Len reports the item count.
func (c *Controller) Len() int { return len(c.items) }

// Items returns the backing item slice. Callers must treat it as read-only.
func (c *Controller) Items() []Item { return c.items }

// ActiveIndex reports the current active index. Always within [0, n).
func (c *Controller) ActiveIndex() int { return c.active }

// Active returns the active item, or false for an empty carousel.
func (c *Controller) Active() (Item, bool) {
	if len(c.items) == 0 {
		return Item{}, false
	}
	return c.items[c.active], true
}

// SlotFor returns the circular slot of item index i relative to the active
// index.
func (c *Controller) SlotFor(i int) int {
	return Slot(i, c.active, len(c.items))
}

// Engine exposes the drag engine for pointer wiring.
func (c *Controller) Engine() *Engine { return c.engine }

// Breakpoint reports the current size class.
func (c *Controller) Breakpoint() Breakpoint { return c.breakpoint }

// Layout reports the layout constants for the current breakpoint.
func (c *Controller) Layout() LayoutConfig { return c.layout }

// Resize re-resolves the breakpoint from a viewport width in pixels and
// swaps the layout synchronously so no consumer sees a stale config.
func (c *Controller) Resize(widthPx int) {
	c.breakpoint = ResolveBreakpoint(widthPx)
	c.layout = LayoutFor(c.breakpoint)
}

// SetIndex jumps directly to an index (pagination click). The value is
// wrapped modulo the item count, residual drag state is discarded and any
// pending coast cancelled.
func (c *Controller) SetIndex(i int) {
	c.engine.CancelCoast()
	c.active = wrap(i, len(c.items))
}

// Advance moves the active index by delta with wrap-around, discarding drag
// state like SetIndex.
func (c *Controller) Advance(delta int) {
	c.engine.CancelCoast()
	c.active = wrap(c.active+delta, len(c.items))
}

// Navigate is the keyboard entry point: relative movement that is ignored
// while the video overlay is open.
func (c *Controller) Navigate(delta int) {
	if c.videoOpen {
		return
	}
	c.MarkInteracted()
	c.Advance(delta)
}

// PointerDown forwards a pointer-down to the drag engine.
func (c *Controller) PointerDown(x float64, at time.Time) {
	c.MarkInteracted()
	c.engine.PointerDown(x, at)
}

// PointerMove forwards a pointer-move to the drag engine.
func (c *Controller) PointerMove(x float64, at time.Time) bool {
	return c.engine.PointerMove(x, at)
}

// PointerUp resolves a release. An immediate snap is applied here; a fast
// release reports coasting=true and the caller drives CoastFrame until done.
func (c *Controller) PointerUp() (coasting bool) {
	steps, coasting := c.engine.PointerUp(c.layout.SideOffset)
	if steps != 0 {
		c.shift(steps)
	}
	return coasting
}

// CoastFrame advances the momentum loop one frame and applies the resolved
// index delta when the coast settles.
func (c *Controller) CoastFrame(generation int) (done bool) {
	steps, done := c.engine.Step(generation, c.layout.SideOffset)
	if steps != 0 {
		c.shift(steps)
	}
	return done
}

// shift applies an engine-resolved delta. The engine has already cleared its
// own state, so this does not go through Advance.
func (c *Controller) shift(delta int) {
	c.active = wrap(c.active+delta, len(c.items))
}

// MarkInteracted latches the has-interacted flag read by the idle-nudge
// timer. Set once, never cleared.
func (c *Controller) MarkInteracted() { c.interacted = true }

// HasInteracted reports whether the user has interacted yet.
func (c *Controller) HasInteracted() bool { return c.interacted }

// OpenVideo marks the video overlay open, which disables keyboard
// navigation.
func (c *Controller) OpenVideo() { c.videoOpen = true }

// CloseVideo marks the video overlay closed.
func (c *Controller) CloseVideo() { c.videoOpen = false }

// VideoOpen reports whether the video overlay is open.
func (c *Controller) VideoOpen() bool { return c.videoOpen }

// wrap normalizes an index into [0, n). n <= 0 collapses to 0.
func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
