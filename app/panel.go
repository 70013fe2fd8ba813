package app

import (
	"fmt"
	"image/color"

	"tickface/gfx"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	panelColor = color.RGBA{R: 0x33, G: 0x33, B: 0x44, A: 0xFF}
	panelText  = gfx.White
	panelFont  = &proggy.TinySZ8pt7b
)

const panelCornerRadius = 6

// drawPanel paints the quick-view panel over whatever the viewport leaves
// uncovered at the bottom of the screen.
func (s *System) drawPanel() {
	vp := s.face.Viewport()
	top := vp.Y + vp.H
	if vp.Empty() {
		top = 0
	}
	h := s.screen.Height - top
	if h <= 0 {
		return
	}

	area := gfx.R(0, top, s.screen.Width, h)
	s.surf.SetFillColor(gfx.Black)
	s.surf.FillRect(area, 0, gfx.CornerNone)
	s.surf.SetFillColor(panelColor)
	s.surf.FillRect(area, panelCornerRadius, gfx.CornersTop)

	lineH := int(panelFont.GetYAdvance())
	if h < lineH {
		return
	}
	text := uptime(s.seconds)
	_, w := tinyfont.LineWidth(panelFont, text)
	x := (s.screen.Width - int(w)) / 2
	y := top + (h+lineH)/2 - 2
	d := &gfx.Displayer{S: s.surf}
	tinyfont.WriteLine(d, panelFont, int16(x), int16(y), text, panelText)
}

func uptime(seconds uint64) string {
	return fmt.Sprintf("up %02d:%02d:%02d", seconds/3600, seconds/60%60, seconds%60)
}
