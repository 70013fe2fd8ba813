package gfx

import (
	"image"
	"image/color"
)

// Canvas is a pixel sink with readback.
type Canvas interface {
	Bounds() image.Rectangle
	SetRGB(x, y int, c color.RGBA)
	RGBAt(x, y int) color.RGBA
}

// FramebufferCanvas draws into an RGB565 little-endian pixel buffer, the
// layout every display backend stores.
type FramebufferCanvas struct {
	buf    []byte
	w      int
	h      int
	stride int
}

func NewFramebufferCanvas(buf []byte, width, height, stride int) *FramebufferCanvas {
	return &FramebufferCanvas{buf: buf, w: width, h: height, stride: stride}
}

func (c *FramebufferCanvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.w, c.h) }

func (c *FramebufferCanvas) SetRGB(x, y int, col color.RGBA) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	off := y*c.stride + x*2
	if off < 0 || off+1 >= len(c.buf) {
		return
	}
	pixel := RGB565(col)
	c.buf[off] = byte(pixel)
	c.buf[off+1] = byte(pixel >> 8)
}

func (c *FramebufferCanvas) RGBAt(x, y int) color.RGBA {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return color.RGBA{}
	}
	off := y*c.stride + x*2
	if off < 0 || off+1 >= len(c.buf) {
		return color.RGBA{}
	}
	return FromRGB565(uint16(c.buf[off]) | uint16(c.buf[off+1])<<8)
}

// ImageCanvas draws into an *image.RGBA.
type ImageCanvas struct {
	Img *image.RGBA
}

func NewImageCanvas(w, h int) ImageCanvas {
	return ImageCanvas{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (c ImageCanvas) Bounds() image.Rectangle { return c.Img.Rect }

func (c ImageCanvas) SetRGB(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.Img.Rect) {
		return
	}
	c.Img.SetRGBA(x, y, col)
}

func (c ImageCanvas) RGBAt(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}).In(c.Img.Rect) {
		return color.RGBA{}
	}
	return c.Img.RGBAAt(x, y)
}

// RGB565 packs c as rrrrrggggggbbbbb.
func RGB565(c color.RGBA) uint16 {
	return uint16(c.R&0xF8)<<8 | uint16(c.G&0xFC)<<3 | uint16(c.B>>3)
}

// FromRGB565 expands a packed pixel back to 8 bits per channel.
func FromRGB565(p uint16) color.RGBA {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F
	return color.RGBA{
		R: uint8((rr * 255) / 31),
		G: uint8((gg * 255) / 63),
		B: uint8((bb * 255) / 31),
		A: 0xFF,
	}
}
