package carousel

// Stack orders for rendering. Higher draws on top.
const (
	StackHidden = 0
	StackSide   = 1
	StackActive = 2
)

// Slot returns the circular distance of item i from the active index a,
// normalized into (-n/2, n/2]. Wrap-around is always the shorter path, so
// "adjacent" stays well-defined for small item counts. A non-positive n is
// treated as a single-item carousel.
func Slot(i, a, n int) int {
	if n <= 1 {
		return 0
	}
	d := (i - a) % n
	if d < 0 {
		d += n
	}
	if d*2 > n {
		d -= n
	}
	return d
}

// SlotVisual carries the render parameters derived for a slot.
type SlotVisual struct {
	OffsetX    float64
	Scale      float64
	Opacity    float64
	Blur       int
	StackOrder int
}

// Visual maps a slot to its visual parameters under the given layout. It is
// total over all integers: anything beyond the adjacent slots collapses to a
// hidden far position.
func Visual(slot int, layout LayoutConfig) SlotVisual {
	switch {
	case slot == 0:
		return SlotVisual{
			OffsetX:    0,
			Scale:      layout.ActiveScale,
			Opacity:    1,
			Blur:       0,
			StackOrder: StackActive,
		}
	case slot == 1 || slot == -1:
		return SlotVisual{
			OffsetX:    float64(slot) * layout.SideOffset,
			Scale:      layout.SideScale,
			Opacity:    0.4,
			Blur:       1,
			StackOrder: StackSide,
		}
	default:
		return SlotVisual{
			OffsetX:    float64(sign(slot)) * layout.FarOffset,
			Scale:      layout.HiddenScale,
			Opacity:    0,
			Blur:       2,
			StackOrder: StackHidden,
		}
	}
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}
