package gfx

import (
	"image"
	"image/color"
	"math"
)

var (
	Black = color.RGBA{A: 0xFF}
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// CornerMask selects which corners of a filled rectangle are rounded.
type CornerMask uint8

const (
	CornerNone        CornerMask = 0
	CornerTopLeft     CornerMask = 1 << 0
	CornerTopRight    CornerMask = 1 << 1
	CornerBottomLeft  CornerMask = 1 << 2
	CornerBottomRight CornerMask = 1 << 3

	CornersTop    = CornerTopLeft | CornerTopRight
	CornersBottom = CornerBottomLeft | CornerBottomRight
	CornersLeft   = CornerTopLeft | CornerBottomLeft
	CornersRight  = CornerTopRight | CornerBottomRight
	CornersAll    = CornersTop | CornersBottom
)

// ScaleMode picks the circle a radial fill is fitted to.
type ScaleMode uint8

const (
	// ScaleFitCircle uses the largest circle inside the box.
	ScaleFitCircle ScaleMode = iota
	// ScaleFillCircle uses the smallest circle covering the box's longer side.
	ScaleFillCircle
)

// Surface is a drawing context over a Canvas. Every primitive clips to
// the canvas bounds.
type Surface struct {
	c    Canvas
	fill color.RGBA
}

func NewSurface(c Canvas) *Surface {
	return &Surface{c: c, fill: White}
}

func (s *Surface) Canvas() Canvas                  { return s.c }
func (s *Surface) Bounds() image.Rectangle         { return s.c.Bounds() }
func (s *Surface) SetFillColor(c color.RGBA)       { s.fill = c }
func (s *Surface) FillColor() color.RGBA           { return s.fill }
func (s *Surface) At(x, y int) color.RGBA          { return s.c.RGBAt(x, y) }
func (s *Surface) SetPixel(x, y int, c color.RGBA) { s.c.SetRGB(x, y, c) }

// Clear paints the whole canvas.
func (s *Surface) Clear(c color.RGBA) {
	b := s.c.Bounds()
	s.span(b.Min.X, b.Max.X, b.Min.Y, b.Max.Y, c)
}

// FillRect fills r with the fill color. Corners in mask are rounded with
// the given radius, clamped to half the shorter side.
func (s *Surface) FillRect(r Rect, cornerRadius int, mask CornerMask) {
	if r.Empty() {
		return
	}
	if lim := minInt(r.W, r.H) / 2; cornerRadius > lim {
		cornerRadius = lim
	}
	if cornerRadius <= 0 || mask == CornerNone {
		s.span(r.X, r.X+r.W, r.Y, r.Y+r.H, s.fill)
		return
	}

	rad := cornerRadius
	for row := 0; row < r.H; row++ {
		left, right := 0, 0
		if row < rad {
			d := rad - row
			inset := rad - int(math.Sqrt(float64(rad*rad-d*d)))
			if mask&CornerTopLeft != 0 {
				left = inset
			}
			if mask&CornerTopRight != 0 {
				right = inset
			}
		} else if row >= r.H-rad {
			d := row - (r.H - rad - 1)
			inset := rad - int(math.Sqrt(float64(rad*rad-d*d)))
			if mask&CornerBottomLeft != 0 {
				left = inset
			}
			if mask&CornerBottomRight != 0 {
				right = inset
			}
		}
		y := r.Y + row
		s.span(r.X+left, r.X+r.W-right, y, y+1, s.fill)
	}
}

// FillRadial fills the part of the circle fitted to box that is within
// inset pixels of its edge and between start and end, measured clockwise
// from 12 o'clock. An inset at least the radius fills the whole sector.
func (s *Surface) FillRadial(box Rect, mode ScaleMode, inset int, start, end Angle) {
	if box.Empty() || inset <= 0 || end < start {
		return
	}

	diameter := float64(minInt(box.W, box.H))
	if mode == ScaleFillCircle {
		diameter = float64(maxInt(box.W, box.H))
	}
	outer := diameter / 2
	inner := outer - float64(inset)
	if inner < 0 {
		inner = 0
	}
	cx := float64(box.X) + float64(box.W)/2
	cy := float64(box.Y) + float64(box.H)/2

	full := end-start >= TrigMaxAngle
	lo := float64(start.Normalize())
	hi := lo + float64(end-start)

	clip := s.c.Bounds().Intersect(image.Rect(
		int(math.Floor(cx-outer)), int(math.Floor(cy-outer)),
		int(math.Ceil(cx+outer)), int(math.Ceil(cy+outer)),
	))
	outer2 := outer * outer
	inner2 := inner * inner
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		dy := float64(y) + 0.5 - cy
		for x := clip.Min.X; x < clip.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			d2 := dx*dx + dy*dy
			if d2 > outer2 || (inner > 0 && d2 <= inner2) {
				continue
			}
			if !full && !inSpan(clockAngle(dx, dy), lo, hi) {
				continue
			}
			s.c.SetRGB(x, y, s.fill)
		}
	}
}

// clockAngle returns the angle of (dx, dy) in trig units, 0 at 12 o'clock
// and growing clockwise in screen coordinates.
func clockAngle(dx, dy float64) float64 {
	rad := math.Atan2(dx, -dy)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return rad * float64(TrigMaxAngle) / (2 * math.Pi)
}

func inSpan(a, lo, hi float64) bool {
	if a >= lo && a <= hi {
		return true
	}
	a += float64(TrigMaxAngle)
	return a >= lo && a <= hi
}

func (s *Surface) span(x0, x1, y0, y1 int, c color.RGBA) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	clip := s.c.Bounds().Intersect(image.Rect(x0, y0, x1, y1))
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			s.c.SetRGB(x, y, c)
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
