//go:build tinygo && baremetal && !picocalc

package hal

// Bare Pico boards have no panel; the face still runs and logs over UART.
var pico2Screen = Screen{Width: 144, Height: 168}

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	fb     Framebuffer
	kbd    Keyboard
	t      *tinyGoTime
	peek   *peekPanel
}

// New returns a Pico 2 (RP2350) HAL implementation.
func New() HAL {
	logger, led := initUART()
	return &tinyGoHAL{
		logger: logger,
		led:    led,
		fb:     &stubFramebuffer{w: pico2Screen.Width, h: pico2Screen.Height, format: PixelFormatRGB565},
		kbd:    &stubKeyboard{},
		t:      newTinyGoTime(),
		peek:   newAnimatedPeek(pico2Screen),
	}
}

func (h *tinyGoHAL) Logger() Logger           { return h.logger }
func (h *tinyGoHAL) LED() LED                 { return h.led }
func (h *tinyGoHAL) Display() Display         { return tinyGoDisplay{fb: h.fb, screen: pico2Screen} }
func (h *tinyGoHAL) Input() Input             { return tinyGoInput{kbd: h.kbd} }
func (h *tinyGoHAL) Time() Time               { return h.t }
func (h *tinyGoHAL) Obstruction() Obstruction { return h.peek }
