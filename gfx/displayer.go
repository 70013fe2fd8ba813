package gfx

import (
	"image/color"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Displayer)(nil)

// Displayer exposes a Surface as a drivers.Displayer so tinyfont can draw
// on it.
type Displayer struct {
	S *Surface

	// Flush, if set, is called by Display.
	Flush func() error
}

func (d *Displayer) Size() (x, y int16) {
	if d.S == nil {
		return 0, 0
	}
	b := d.S.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	if d.S == nil {
		return
	}
	d.S.SetPixel(int(x), int(y), c)
}

func (d *Displayer) Display() error {
	if d.Flush == nil {
		return nil
	}
	return d.Flush()
}
