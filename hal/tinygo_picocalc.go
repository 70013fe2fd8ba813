//go:build tinygo && baremetal && picocalc

package hal

import "time"

var picoCalcScreen = Screen{Width: 320, Height: 320}

type picoCalcHAL struct {
	logger *uartLogger
	led    *pinLED
	fb     Framebuffer
	kbd    Keyboard
	t      *tinyGoTime
	peek   *peekPanel
}

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
func New() HAL {
	logger, led := initUART()

	var fb Framebuffer
	if lcd, err := initILI9488(); err == nil {
		fb = newMemFramebuffer(picoCalcScreen.Width, picoCalcScreen.Height, func(buf []byte, stride, y0, y1 int) error {
			return lcd.blitRows(buf, stride, picoCalcScreen.Width, y0, y1)
		})
	} else {
		logger.WriteLineString("hal: lcd: " + err.Error())
		fb = &stubFramebuffer{w: picoCalcScreen.Width, h: picoCalcScreen.Height, format: PixelFormatRGB565}
	}

	var kbd Keyboard
	if kb, err := newPicoCalcKeyboard(); err == nil {
		kbd = kb
	} else {
		logger.WriteLineString("hal: " + err.Error())
		kbd = &stubKeyboard{}
	}

	return &picoCalcHAL{
		logger: logger,
		led:    led,
		fb:     fb,
		kbd:    kbd,
		t:      newTinyGoTime(),
		peek:   newAnimatedPeek(picoCalcScreen),
	}
}

func (h *picoCalcHAL) Logger() Logger           { return h.logger }
func (h *picoCalcHAL) LED() LED                 { return h.led }
func (h *picoCalcHAL) Display() Display         { return tinyGoDisplay{fb: h.fb, screen: picoCalcScreen} }
func (h *picoCalcHAL) Input() Input             { return tinyGoInput{kbd: h.kbd} }
func (h *picoCalcHAL) Time() Time               { return h.t }
func (h *picoCalcHAL) Obstruction() Obstruction { return h.peek }

type picoCalcKeyboard struct {
	ch chan KeyEvent
}

func (k *picoCalcKeyboard) Events() <-chan KeyEvent { return k.ch }

func newPicoCalcKeyboard() (*picoCalcKeyboard, error) {
	kbd, err := initI2CKeyboard()
	if err != nil {
		return nil, err
	}

	dev := &picoCalcKeyboard{ch: make(chan KeyEvent, 16)}
	go func() {
		for {
			if ev, ok := kbd.readEvent(); ok {
				select {
				case dev.ch <- ev:
				default:
				}
			}
			time.Sleep(5 * time.Millisecond)
		}
	}()
	return dev, nil
}
