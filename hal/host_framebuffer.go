//go:build !tinygo

package hal

import "sync"

// hostFramebuffer keeps the drawn pixels separate from the presented ones
// so the window never shows a half-drawn dial.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
	shown  []byte
	frame  uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
		shown:  make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) { fillRGB565(f.buf, r, g, b) }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.shown, f.buf)
	f.frame++
	return nil
}

// snapshotRGB565 copies the last presented frame into dst if it is newer
// than have, and returns the frame number.
func (f *hostFramebuffer) snapshotRGB565(dst []byte, have uint64) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.frame != have {
		copy(dst, f.shown)
	}
	return f.frame
}
