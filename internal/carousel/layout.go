package carousel

// Breakpoint classifies the viewport width into a discrete size class.
type Breakpoint int

const (
	BreakpointMobile Breakpoint = iota
	BreakpointTablet
	BreakpointDesktop
)

// Width thresholds in pixels. The lower classification is exclusive of its
// boundary: exactly 640 is tablet, exactly 1180 is desktop.
const (
	tabletMinWidth  = 640
	desktopMinWidth = 1180
)

func (b Breakpoint) String() string {
	switch b {
	case BreakpointMobile:
		return "mobile"
	case BreakpointTablet:
		return "tablet"
	default:
		return "desktop"
	}
}

// ResolveBreakpoint classifies a viewport width in pixels.
func ResolveBreakpoint(widthPx int) Breakpoint {
	switch {
	case widthPx < tabletMinWidth:
		return BreakpointMobile
	case widthPx < desktopMinWidth:
		return BreakpointTablet
	default:
		return BreakpointDesktop
	}
}

// LayoutConfig holds the layout constants for one breakpoint. Values are
// fixed, not user-configurable.
type LayoutConfig struct {
	CardWidth   float64
	CardHeight  float64
	SideOffset  float64
	FarOffset   float64
	SideScale   float64
	ActiveScale float64
	HiddenScale float64
}

var layouts = map[Breakpoint]LayoutConfig{
	BreakpointMobile: {
		CardWidth:   300,
		CardHeight:  420,
		SideOffset:  180,
		FarOffset:   320,
		SideScale:   0.78,
		ActiveScale: 1,
		HiddenScale: 0.6,
	},
	BreakpointTablet: {
		CardWidth:   340,
		CardHeight:  460,
		SideOffset:  240,
		FarOffset:   430,
		SideScale:   0.8,
		ActiveScale: 1,
		HiddenScale: 0.6,
	},
	BreakpointDesktop: {
		CardWidth:   380,
		CardHeight:  520,
		SideOffset:  280,
		FarOffset:   500,
		SideScale:   0.82,
		ActiveScale: 1,
		HiddenScale: 0.6,
	},
}

// LayoutFor returns the layout constants for a breakpoint. Exactly one
// config exists per breakpoint.
func LayoutFor(b Breakpoint) LayoutConfig {
	if cfg, ok := layouts[b]; ok {
		return cfg
	}
	return layouts[BreakpointDesktop]
}
