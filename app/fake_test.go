package app

import (
	"image"
	"strings"
	"sync"

	"tickface/hal"
)

type fakeLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *fakeLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *fakeLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *fakeLogger) contains(sub string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

func (l *fakeLogger) count(sub string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			n++
		}
	}
	return n
}

type fakeLED struct {
	on      bool
	toggles int
}

func (l *fakeLED) High() { l.set(true) }
func (l *fakeLED) Low()  { l.set(false) }

func (l *fakeLED) set(on bool) {
	l.on = on
	l.toggles++
}

type fakeFramebuffer struct {
	w, h     int
	buf      []byte
	presents int
	err      error
	panics   int
}

func newFakeFramebuffer(w, h int) *fakeFramebuffer {
	return &fakeFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *fakeFramebuffer) Width() int              { return f.w }
func (f *fakeFramebuffer) Height() int             { return f.h }
func (f *fakeFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFramebuffer) StrideBytes() int        { return f.w * 2 }
func (f *fakeFramebuffer) Buffer() []byte          { return f.buf }
func (f *fakeFramebuffer) ClearRGB(_, _, _ uint8)  {}

func (f *fakeFramebuffer) Present() error {
	if f.panics > 0 {
		f.panics--
		panic("boom")
	}
	if f.err != nil {
		return f.err
	}
	f.presents++
	return nil
}

type fakeObstruction struct {
	visible image.Rectangle
	ch      chan image.Rectangle
	peeking bool
}

func (o *fakeObstruction) Unobstructed() image.Rectangle  { return o.visible }
func (o *fakeObstruction) Events() <-chan image.Rectangle { return o.ch }
func (o *fakeObstruction) Toggle()                        { o.peeking = !o.peeking }
func (o *fakeObstruction) Peeking() bool                  { return o.peeking }

func (o *fakeObstruction) move(r image.Rectangle) {
	o.visible = r
	o.ch <- r
}

type fakeHAL struct {
	log    *fakeLogger
	led    *fakeLED
	fb     *fakeFramebuffer
	screen hal.Screen
	ticks  chan uint64
	keys   chan hal.KeyEvent
	obs    *fakeObstruction
}

func newFakeHAL(screen hal.Screen) *fakeHAL {
	return &fakeHAL{
		log:    &fakeLogger{},
		led:    &fakeLED{},
		fb:     newFakeFramebuffer(screen.Width, screen.Height),
		screen: screen,
		ticks:  make(chan uint64, 4096),
		keys:   make(chan hal.KeyEvent, 8),
		obs: &fakeObstruction{
			visible: screen.Bounds(),
			ch:      make(chan image.Rectangle, 16),
		},
	}
}

func (h *fakeHAL) Logger() hal.Logger           { return h.log }
func (h *fakeHAL) LED() hal.LED                 { return h.led }
func (h *fakeHAL) Display() hal.Display         { return fakeDisplay{h} }
func (h *fakeHAL) Input() hal.Input             { return fakeInput{h} }
func (h *fakeHAL) Time() hal.Time               { return fakeTime{h} }
func (h *fakeHAL) Obstruction() hal.Obstruction { return h.obs }

func (h *fakeHAL) tick(from, to uint64) {
	for seq := from; seq <= to; seq++ {
		h.ticks <- seq
	}
}

type fakeDisplay struct{ h *fakeHAL }

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.h.fb }
func (d fakeDisplay) Screen() hal.Screen           { return d.h.screen }

type fakeInput struct{ h *fakeHAL }

func (in fakeInput) Keyboard() hal.Keyboard { return fakeKeyboard{in.h} }

type fakeKeyboard struct{ h *fakeHAL }

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k.h.keys }

type fakeTime struct{ h *fakeHAL }

func (t fakeTime) Ticks() <-chan uint64 { return t.h.ticks }
