package gfx

import "image/color"

// Density is the share of pixels, in percent, that take the second color
// of a dithered fill.
type Density uint8

const (
	Dither0   Density = 0
	Dither25  Density = 25
	Dither50  Density = 50
	Dither75  Density = 75
	Dither100 Density = 100
)

// 4x4 ordered (Bayer) thresholds. Values below 8 form a checkerboard, so
// 50% density is an exact checkerboard.
var bayer4 = [4][4]uint8{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// DitheredRect fills r with a two-color ordered dither. The pattern is
// anchored to absolute surface coordinates so neighbouring dithered areas
// line up.
func (s *Surface) DitheredRect(r Rect, c1, c2 color.RGBA, d Density) {
	if r.Empty() {
		return
	}
	if d > 100 {
		d = 100
	}
	level := uint8(int(d) * 16 / 100)

	clip := s.c.Bounds().Intersect(r.Image())
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		row := &bayer4[y&3]
		for x := clip.Min.X; x < clip.Max.X; x++ {
			if row[x&3] < level {
				s.c.SetRGB(x, y, c2)
			} else {
				s.c.SetRGB(x, y, c1)
			}
		}
	}
}
