//go:build tinygo

package hal

import "time"

type tinyGoDisplay struct {
	fb     Framebuffer
	screen Screen
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }
func (d tinyGoDisplay) Screen() Screen           { return d.screen }

type tinyGoInput struct {
	kbd Keyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 64)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

// newAnimatedPeek returns a quick-view panel driven by its own frame ticker;
// there is no host loop to advance it on TinyGo.
func newAnimatedPeek(s Screen) *peekPanel {
	p := newPeekPanel(s)
	go func() {
		ticker := time.NewTicker(time.Second / 30)
		defer ticker.Stop()
		for range ticker.C {
			p.advance()
		}
	}()
	return p
}

// memFramebuffer is a RAM framebuffer that hands the changed rows to flush
// on Present.
type memFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte
	damage *rowDamage
	flush  func(buf []byte, stride, y0, y1 int) error
}

func newMemFramebuffer(w, h int, flush func(buf []byte, stride, y0, y1 int) error) *memFramebuffer {
	stride := w * 2
	return &memFramebuffer{
		w:      w,
		h:      h,
		stride: stride,
		buf:    make([]byte, stride*h),
		damage: newRowDamage(h),
		flush:  flush,
	}
}

func (f *memFramebuffer) Width() int          { return f.w }
func (f *memFramebuffer) Height() int         { return f.h }
func (f *memFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int    { return f.stride }
func (f *memFramebuffer) Buffer() []byte      { return f.buf }

func (f *memFramebuffer) ClearRGB(r, g, b uint8) { fillRGB565(f.buf, r, g, b) }

func (f *memFramebuffer) Present() error {
	if f.flush == nil {
		return nil
	}
	y0, y1 := f.damage.update(f.buf, f.stride)
	if y0 == y1 {
		return nil
	}
	return f.flush(f.buf, f.stride, y0, y1)
}
