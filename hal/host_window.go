//go:build !tinygo && cgo

package hal

import (
	"image"
	"image/color"

	"tickface/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Pixels outside a round panel's glass.
var bezel = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}

var ledColor = color.RGBA{R: 0xE0, G: 0x30, B: 0x30, A: 0xFF}

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes.
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	h := newHostHAL(cfg)
	step := newApp(h)
	scale := cfg.normalized().Scale

	g := &hostGame{h: h, step: step, frame: ^uint64(0)}
	ebiten.SetWindowTitle("tickface " + h.screen.shapeName() + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*scale, h.fb.height*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	glass   []bool
	frame   uint64
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.t.step(1)
	g.h.peek.advance()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		g.glass = glassMask(g.h.screen)
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.frame = ^uint64(0)
	}

	if frame := fb.snapshotRGB565(g.scratch, g.frame); frame != g.frame {
		g.frame = frame
		g.convert()
		g.fbImg.WritePixels(g.img.Pix)
	}
	screen.DrawImage(g.fbImg, nil)

	if g.h.led.lit() {
		vector.DrawFilledCircle(screen, float32(fb.width)-4, 4, 2, ledColor, false)
	}
}

func (g *hostGame) convert() {
	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		j := (i / 2) * 4
		if g.glass != nil && !g.glass[i/2] {
			dst[j+0], dst[j+1], dst[j+2], dst[j+3] = bezel.R, bezel.G, bezel.B, 0xFF
			continue
		}
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
