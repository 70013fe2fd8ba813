package face

import "tickface/gfx"

const (
	MajorTickLength = 20
	MajorTickWidth  = 3
	MinorTickLength = 10

	// MinorTickWidth is the wedge half-width in degrees, shared by minute
	// and 5-minute ticks.
	MinorTickWidth = 1
)

// Shape is the physical outline of the display.
type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeRound
)

func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeRound:
		return "round"
	default:
		return "unknown"
	}
}

// ParseShape accepts "rect" or "round".
func ParseShape(s string) (Shape, bool) {
	switch s {
	case "rect", "rectangular":
		return ShapeRect, true
	case "round", "circular":
		return ShapeRound, true
	}
	return ShapeRect, false
}

// Geometry is the circle the wedges are drawn on.
type Geometry struct {
	Radius int
	// Bounds is the square that exactly contains the circle, centered on
	// the viewport.
	Bounds gfx.Rect
}

// TickKind says which population pass owns a table slot.
type TickKind uint8

const (
	TickNone TickKind = iota
	TickMinor
	TickMajor
	TickHour
)

func (k TickKind) String() string {
	switch k {
	case TickMinor:
		return "minor"
	case TickMajor:
		return "major"
	case TickHour:
		return "hour"
	default:
		return "none"
	}
}

// Tick is one minute position. Minor and major ticks carry a wedge; hour
// ticks carry the anchor their bars are drawn from.
type Tick struct {
	Kind   TickKind
	Start  gfx.Angle
	End    gfx.Angle
	Anchor gfx.Point
}

// TickTable is indexed by minute position, 0 at 12 o'clock.
type TickTable [60]Tick

// Recompute derives the circle and the tick table for a viewport.
func Recompute(shape Shape, vp gfx.Rect) (Geometry, TickTable) {
	r := radiusFor(shape, vp)
	g := Geometry{
		Radius: r,
		Bounds: gfx.Rect{
			X: vp.W/2 - r + vp.X,
			Y: vp.H/2 - r + vp.Y,
			W: 2 * r,
			H: 2 * r,
		},
	}

	var t TickTable

	for i := 0; i < 60; i++ {
		if i%5 != 0 {
			t[i] = wedge(TickMinor, i*6)
		}
	}

	for i := 0; i < 12; i++ {
		if i%3 != 0 {
			t[i*5] = wedge(TickMajor, i*30)
		}
	}

	// Hour slots store pixel anchors, not angles.
	t[0] = Tick{Kind: TickHour, Anchor: gfx.Point{X: vp.X + vp.W/2, Y: vp.Y}}
	t[15] = Tick{Kind: TickHour, Anchor: gfx.Point{X: vp.X + vp.W - MajorTickLength, Y: vp.Y + vp.H/2}}
	t[30] = Tick{Kind: TickHour, Anchor: gfx.Point{X: vp.X + vp.W/2, Y: vp.Y + vp.H - MajorTickLength}}
	t[45] = Tick{Kind: TickHour, Anchor: gfx.Point{X: vp.X, Y: vp.Y + vp.H/2}}

	return g, t
}

func wedge(kind TickKind, deg int) Tick {
	return Tick{
		Kind:  kind,
		Start: gfx.DegToAngle(deg - MinorTickWidth),
		End:   gfx.DegToAngle(deg + MinorTickWidth),
	}
}

// radiusFor returns W/2 on round displays. On rectangular ones the circle
// passes through the viewport corners: the corner angle from the center
// gives radius = halfHeight / sin(angle).
func radiusFor(shape Shape, vp gfx.Rect) int {
	hw := vp.W / 2
	hh := vp.H / 2
	if shape == ShapeRound {
		return hw
	}
	if hh <= 0 {
		return maxInt(hw, 0)
	}
	if hw <= 0 {
		return hh
	}
	sin := gfx.SinLookup(gfx.Atan2Lookup(int32(hh), int32(hw)))
	if sin <= 0 {
		return hw
	}
	return int(int64(gfx.TrigMaxAngle) * int64(hh) / int64(sin))
}

// PointOnRectBoundary returns where a ray from the center of r at angle a
// (0 at 12 o'clock, clockwise) leaves the rectangle. Offsets are W/2 and
// H/2 from the center X+W/2, Y+H/2, so the right and bottom exits are
// X+W and Y+H on even sizes but the last pixel row or column on odd ones.
func PointOnRectBoundary(r gfx.Rect, a gfx.Angle) gfx.Point {
	// Screen direction of a clock angle is (sin, -cos).
	vx := int64(gfx.SinLookup(a))
	vy := -int64(gfx.CosLookup(a))

	dx := int64(r.W / 2)
	if vx <= 0 {
		dx = int64((0 - r.W) / 2)
	}
	dy := int64(r.H / 2)
	if vy <= 0 {
		dy = int64((0 - r.H) / 2)
	}

	switch {
	case vx == 0:
		dx = 0
	case vy == 0:
		dy = 0
	case abs64(dx*vy) < abs64(dy*vx):
		// Vertical edge is closer.
		dy = dx * vy / vx
	default:
		dx = dy * vx / vy
	}

	return gfx.Point{
		X: int(dx) + r.X + r.W/2,
		Y: int(dy) + r.Y + r.H/2,
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
