package hal

import (
	"errors"
	"image"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Screen describes the physical panel.
type Screen struct {
	Width  int
	Height int
	// Round panels only show the circle inscribed in Width x Height.
	Round bool
}

// Bounds returns the full panel rectangle.
func (s Screen) Bounds() image.Rectangle { return image.Rect(0, 0, s.Width, s.Height) }

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer and the panel it drives.
type Display interface {
	Framebuffer() Framebuffer
	Screen() Screen
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides a base tick stream.
//
// One tick is one millisecond on every platform.
type Time interface {
	Ticks() <-chan uint64
}

// Obstruction reports the part of the screen left visible by system
// overlays such as the quick-view panel.
type Obstruction interface {
	// Unobstructed returns the current visible area.
	Unobstructed() image.Rectangle
	// Events delivers the visible area every time it changes, once per
	// animation frame while the panel moves.
	Events() <-chan image.Rectangle
	// Toggle starts showing or hiding the panel.
	Toggle()
	// Peeking reports whether the panel is shown or on its way up.
	Peeking() bool
}

// HAL provides the only contact point between the face and the outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	Display() Display
	Input() Input
	Time() Time
	Obstruction() Obstruction
}
