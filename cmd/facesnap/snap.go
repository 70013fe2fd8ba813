package main

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"tickface/app"
	"tickface/face"
	"tickface/gfx"
	"tickface/hal"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"
)

const captionHeight = 20

var (
	bezel        = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}
	captionColor = color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}
)

// snapshot runs the face once against an offscreen display and returns
// the presented frame.
func snapshot(screen hal.Screen, peek bool, logw io.Writer) *image.RGBA {
	h := newSnapHAL(screen, peek, logw)
	s := app.NewSystem(h, app.Config{})
	_ = s.Step()

	fb := h.fb
	src := gfx.NewFramebufferCanvas(fb.buf, fb.w, fb.h, fb.w*2)
	img := image.NewRGBA(image.Rect(0, 0, fb.w, fb.h))
	for y := 0; y < fb.h; y++ {
		for x := 0; x < fb.w; x++ {
			img.SetRGBA(x, y, src.RGBAt(x, y))
		}
	}
	return img
}

// compose scales the frame, masks round panels and adds an optional
// caption strip below.
func compose(src *image.RGBA, round bool, scale int, caption string) image.Image {
	if scale < 1 {
		scale = 1
	}
	w, h := src.Bounds().Dx()*scale, src.Bounds().Dy()*scale
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)

	capH := 0
	if caption != "" {
		capH = captionHeight
	}
	dc := gg.NewContext(w, h+capH)
	dc.SetColor(bezel)
	dc.Clear()
	if round {
		d := w
		if h < d {
			d = h
		}
		dc.DrawCircle(float64(w)/2, float64(h)/2, float64(d)/2)
		dc.Clip()
	}
	dc.DrawImage(scaled, 0, 0)
	dc.ResetClip()

	if capH > 0 {
		dc.SetFontFace(basicfont.Face7x13)
		dc.SetColor(captionColor)
		dc.DrawStringAnchored(caption, float64(w)/2, float64(h)+float64(capH)/2, 0.5, 0.5)
	}
	return dc.Image()
}

// dumpTable writes one line per tick table slot.
func dumpTable(w io.Writer, shape face.Shape, vp gfx.Rect) error {
	g, t := face.Recompute(shape, vp)
	if _, err := fmt.Fprintf(w, "# %s %dx%d+%d+%d radius=%d bounds=%v\n", shape, vp.W, vp.H, vp.X, vp.Y, g.Radius, g.Bounds); err != nil {
		return err
	}
	for i, tick := range t {
		var err error
		if tick.Kind == face.TickHour {
			_, err = fmt.Fprintf(w, "%2d %-5s anchor=(%d,%d)\n", i, tick.Kind, tick.Anchor.X, tick.Anchor.Y)
		} else {
			_, err = fmt.Fprintf(w, "%2d %-5s %6.2f..%6.2f\n", i, tick.Kind, tick.Start.Degrees(), tick.End.Degrees())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type snapHAL struct {
	log    writerLogger
	fb     *snapFramebuffer
	screen hal.Screen
	obs    snapObstruction
}

func newSnapHAL(screen hal.Screen, peek bool, logw io.Writer) *snapHAL {
	visible := screen.Bounds()
	if peek {
		visible.Max.Y -= hal.QuickViewHeight(screen)
	}
	return &snapHAL{
		log:    writerLogger{w: logw},
		fb:     &snapFramebuffer{w: screen.Width, h: screen.Height, buf: make([]byte, screen.Width*screen.Height*2)},
		screen: screen,
		obs:    snapObstruction{visible: visible, peek: peek},
	}
}

func (h *snapHAL) Logger() hal.Logger           { return h.log }
func (h *snapHAL) LED() hal.LED                 { return nil }
func (h *snapHAL) Display() hal.Display         { return snapDisplay{h} }
func (h *snapHAL) Input() hal.Input             { return nil }
func (h *snapHAL) Time() hal.Time               { return nil }
func (h *snapHAL) Obstruction() hal.Obstruction { return h.obs }

type snapDisplay struct{ h *snapHAL }

func (d snapDisplay) Framebuffer() hal.Framebuffer { return d.h.fb }
func (d snapDisplay) Screen() hal.Screen           { return d.h.screen }

type snapFramebuffer struct {
	w, h int
	buf  []byte
}

func (f *snapFramebuffer) Width() int              { return f.w }
func (f *snapFramebuffer) Height() int             { return f.h }
func (f *snapFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *snapFramebuffer) StrideBytes() int        { return f.w * 2 }
func (f *snapFramebuffer) Buffer() []byte          { return f.buf }
func (f *snapFramebuffer) ClearRGB(_, _, _ uint8)  {}
func (f *snapFramebuffer) Present() error          { return nil }

// snapObstruction holds the panel still; a snapshot has no animation.
type snapObstruction struct {
	visible image.Rectangle
	peek    bool
}

func (o snapObstruction) Unobstructed() image.Rectangle  { return o.visible }
func (o snapObstruction) Events() <-chan image.Rectangle { return nil }
func (o snapObstruction) Toggle()                        {}
func (o snapObstruction) Peeking() bool                  { return o.peek }

type writerLogger struct {
	w io.Writer
}

func (l writerLogger) WriteLineString(s string) {
	if l.w == nil {
		return
	}
	fmt.Fprintln(l.w, s)
}

func (l writerLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }
