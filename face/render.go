package face

import (
	"image/color"

	"tickface/gfx"
)

var (
	Background = gfx.Black
	Foreground = gfx.White
)

// strategy holds what differs between round and rectangular displays.
type strategy interface {
	minorInset(g Geometry) int
	majorInset(g Geometry) int
	// trimMinor hides the inner part of the minute wedges.
	trimMinor(s *gfx.Surface, vp gfx.Rect)
	fillCenter(s *gfx.Surface, vp gfx.Rect, g Geometry)
}

type rectStrategy struct{}

func (rectStrategy) minorInset(g Geometry) int { return g.Radius }
func (rectStrategy) majorInset(g Geometry) int { return g.Radius }

func (rectStrategy) trimMinor(s *gfx.Surface, vp gfx.Rect) {
	s.DitheredRect(vp.Inset(MinorTickLength), Background, Foreground, gfx.Dither50)
}

func (rectStrategy) fillCenter(s *gfx.Surface, vp gfx.Rect, _ Geometry) {
	s.SetFillColor(Background)
	s.FillRect(vp.Inset(MajorTickLength), 0, gfx.CornerNone)
}

type roundStrategy struct{}

func (roundStrategy) minorInset(Geometry) int { return MinorTickLength }
func (roundStrategy) majorInset(Geometry) int { return MajorTickLength }

// Round wedges are already drawn as a thin ring.
func (roundStrategy) trimMinor(*gfx.Surface, gfx.Rect) {}

func (roundStrategy) fillCenter(s *gfx.Surface, vp gfx.Rect, g Geometry) {
	s.SetFillColor(Background)
	s.FillRadial(vp.Inset(MajorTickLength), gfx.ScaleFitCircle, g.Radius-MajorTickLength, 0, gfx.TrigMaxAngle)
}

func strategyFor(shape Shape) strategy {
	if shape == ShapeRound {
		return roundStrategy{}
	}
	return rectStrategy{}
}

// Render draws the dial. Later steps paint over earlier ones.
func Render(s *gfx.Surface, shape Shape, vp gfx.Rect, g Geometry, t *TickTable) {
	st := strategyFor(shape)

	s.DitheredRect(vp, Background, Foreground, gfx.Dither50)

	s.SetFillColor(Foreground)
	minor := st.minorInset(g)
	for i := range t {
		if t[i].Kind != TickMinor {
			continue
		}
		s.FillRadial(g.Bounds, gfx.ScaleFitCircle, minor, t[i].Start, t[i].End)
	}

	st.trimMinor(s, vp)

	s.SetFillColor(Foreground)
	major := st.majorInset(g)
	for i := range t {
		if t[i].Kind != TickMajor {
			continue
		}
		s.FillRadial(g.Bounds, gfx.ScaleFitCircle, major, t[i].Start, t[i].End)
	}

	for h := 0; h < 4; h++ {
		tick := t[h*15]
		if tick.Kind != TickHour {
			continue
		}
		drawHourBars(s, tick.Anchor, h%2 == 1, Foreground)
	}

	st.fillCenter(s, vp, g)
}

// drawHourBars draws the double bar of a cardinal tick: two bars with a
// two pixel gap centered on the anchor. 3 and 9 o'clock run horizontally.
// The surface's fill color is left as it was.
func drawHourBars(s *gfx.Surface, p gfx.Point, horizontal bool, c color.RGBA) {
	defer s.SetFillColor(s.FillColor())
	s.SetFillColor(c)
	if horizontal {
		s.FillRect(gfx.R(p.X, p.Y-MajorTickWidth-1, MajorTickLength, MajorTickWidth), 0, gfx.CornerNone)
		s.FillRect(gfx.R(p.X, p.Y+1, MajorTickLength, MajorTickWidth), 0, gfx.CornerNone)
		return
	}
	s.FillRect(gfx.R(p.X-MajorTickWidth-1, p.Y, MajorTickWidth, MajorTickLength), 0, gfx.CornerNone)
	s.FillRect(gfx.R(p.X+1, p.Y, MajorTickWidth, MajorTickLength), 0, gfx.CornerNone)
}
