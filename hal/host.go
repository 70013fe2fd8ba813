//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// HostConfig describes the simulated panel.
type HostConfig struct {
	Screen Screen
	// Scale is the window magnification.
	Scale int
}

func (c HostConfig) normalized() HostConfig {
	if c.Screen.Width <= 0 {
		c.Screen.Width = 144
	}
	if c.Screen.Height <= 0 {
		c.Screen.Height = 168
	}
	if c.Scale <= 0 {
		c.Scale = 2
	}
	return c
}

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	screen Screen
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
	peek   *peekPanel
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHostHAL(cfg)
}

func newHostHAL(cfg HostConfig) *hostHAL {
	cfg = cfg.normalized()
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		led:    &hostLED{},
		screen: cfg.Screen,
		fb:     newHostFramebuffer(cfg.Screen.Width, cfg.Screen.Height),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
		peek:   newPeekPanel(cfg.Screen),
	}
}

func (h *hostHAL) Logger() Logger           { return h.logger }
func (h *hostHAL) LED() LED                 { return h.led }
func (h *hostHAL) Display() Display         { return hostDisplay{fb: h.fb, screen: h.screen} }
func (h *hostHAL) Input() Input             { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time               { return h.t }
func (h *hostHAL) Obstruction() Obstruction { return h.peek }

type hostDisplay struct {
	fb     *hostFramebuffer
	screen Screen
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }
func (d hostDisplay) Screen() Screen           { return d.screen }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostLED has no pin to drive; the window shows its state as a dot.
type hostLED struct {
	mu sync.Mutex
	on bool
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
}

func (l *hostLED) lit() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}
