//go:build tinygo && !baremetal

package hal

import (
	"fmt"
	"runtime"
)

var tinyGoHostScreen = Screen{Width: 144, Height: 168}

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	led    *tinyGoHostLED
	fb     *memFramebuffer
	kbd    *tinyGoHostKeyboard
	t      *tinyGoTime
	peek   *peekPanel
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
func New() HAL {
	l := &tinyGoHostLogger{}
	return &tinyGoHostHAL{
		logger: l,
		led:    &tinyGoHostLED{logger: l},
		fb:     newMemFramebuffer(tinyGoHostScreen.Width, tinyGoHostScreen.Height, nil),
		kbd:    &tinyGoHostKeyboard{ch: make(chan KeyEvent)},
		t:      newTinyGoTime(),
		peek:   newAnimatedPeek(tinyGoHostScreen),
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) LED() LED         { return h.led }
func (h *tinyGoHostHAL) Display() Display { return tinyGoDisplay{fb: h.fb, screen: tinyGoHostScreen} }
func (h *tinyGoHostHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *tinyGoHostHAL) Time() Time       { return h.t }

func (h *tinyGoHostHAL) Obstruction() Obstruction { return h.peek }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostLED struct {
	on     bool
	logger *tinyGoHostLogger
}

func (l *tinyGoHostLED) High() { l.set(true) }
func (l *tinyGoHostLED) Low()  { l.set(false) }

func (l *tinyGoHostLED) set(on bool) {
	if l.on == on {
		return
	}
	l.on = on
	l.logger.WriteLineString(fmt.Sprintf("led: %v (tinygo/%s)", on, runtime.GOOS))
}

type tinyGoHostKeyboard struct {
	ch chan KeyEvent
}

func (k *tinyGoHostKeyboard) Events() <-chan KeyEvent { return k.ch }
