package app

import (
	"errors"
	"fmt"
	"image"
	"time"

	"tickface/face"
	"tickface/gfx"
	"tickface/hal"
)

const (
	ticksPerSecond = 1000
	frameInterval  = time.Second / 30
)

type Config struct {
	// Verbose logs every viewport recompute, including each frame of the
	// quick-view animation.
	Verbose bool
}

// System drives one watch face. Step must only be called from one goroutine.
type System struct {
	cfg    Config
	log    hal.Logger
	led    hal.LED
	fb     hal.Framebuffer
	screen hal.Screen
	surf   *gfx.Surface
	face   *face.Context

	obs    hal.Obstruction
	obsCh  <-chan image.Rectangle
	ticks  <-chan uint64
	keys   <-chan hal.KeyEvent
	moving bool

	nextSecond uint64
	seconds    uint64
	dirty      bool
	redraws    int
	noPanel    bool
}

// New initializes the face with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	return NewSystem(h, cfg).Step
}

// Run starts the face and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{})
}

func RunWithConfig(h hal.HAL, cfg Config) {
	s := NewSystem(h, cfg)
	for {
		if err := s.Step(); err != nil {
			s.logf("app: %v", err)
		}
		time.Sleep(frameInterval)
	}
}

// NewSystem wires the face to the platform. Missing devices are tolerated:
// without a display nothing is drawn, without a time source the face is
// drawn once.
func NewSystem(h hal.HAL, cfg Config) *System {
	s := &System{
		cfg:        cfg,
		log:        h.Logger(),
		led:        h.LED(),
		nextSecond: ticksPerSecond,
		dirty:      true,
	}

	if d := h.Display(); d != nil {
		s.screen = d.Screen()
		s.fb = d.Framebuffer()
	}
	var canvas gfx.Canvas
	if s.fb != nil {
		canvas = gfx.NewFramebufferCanvas(s.fb.Buffer(), s.fb.Width(), s.fb.Height(), s.fb.StrideBytes())
		if s.screen.Width == 0 {
			s.screen = hal.Screen{Width: s.fb.Width(), Height: s.fb.Height()}
		}
	} else {
		canvas = gfx.NewFramebufferCanvas(nil, s.screen.Width, s.screen.Height, s.screen.Width*2)
	}
	s.surf = gfx.NewSurface(canvas)

	shape := face.ShapeRect
	if s.screen.Round {
		shape = face.ShapeRound
	}
	s.face = face.NewContext(shape)

	vp := s.screen.Bounds()
	if s.obs = h.Obstruction(); s.obs != nil {
		vp = s.obs.Unobstructed()
		s.obsCh = s.obs.Events()
	}
	s.setViewport(vp, true)

	if t := h.Time(); t != nil {
		s.ticks = t.Ticks()
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.keys = kbd.Events()
		}
	}

	s.logf("app: %s face %dx%d", shape, s.screen.Width, s.screen.Height)
	return s
}

func (s *System) Face() *face.Context { return s.face }
func (s *System) Seconds() uint64     { return s.seconds }
func (s *System) Redraws() int        { return s.redraws }

// Step drains pending input, obstruction and time events and redraws the
// face if any of them changed what is on screen.
func (s *System) Step() error {
	s.drainKeys()
	s.drainObstruction()
	s.drainTicks()
	if !s.dirty {
		return nil
	}
	s.dirty = false
	return s.redraw()
}

func (s *System) drainKeys() {
	for {
		select {
		case ev, ok := <-s.keys:
			if !ok {
				s.keys = nil
				return
			}
			s.handleKey(ev)
		default:
			return
		}
	}
}

func (s *System) handleKey(ev hal.KeyEvent) {
	if !ev.Press || s.obs == nil {
		return
	}
	if ev.Code == hal.KeyTab || ev.Rune == 'o' || ev.Rune == 'O' {
		s.obs.Toggle()
		s.logf("app: quick view peeking=%v", s.obs.Peeking())
	}
}

// drainObstruction follows the quick-view panel. Outside verbose mode the
// viewport is logged once, on the first step without a new frame.
func (s *System) drainObstruction() {
	got := false
	for {
		select {
		case r, ok := <-s.obsCh:
			if !ok {
				s.obsCh = nil
				return
			}
			got = true
			s.moving = true
			s.setViewport(r, s.cfg.Verbose)
		default:
			if s.moving && !got {
				s.moving = false
				if !s.cfg.Verbose {
					s.logViewport()
				}
			}
			return
		}
	}
}

func (s *System) setViewport(r image.Rectangle, logIt bool) {
	if !s.face.SetViewport(gfx.FromImage(r)) {
		return
	}
	s.dirty = true
	if logIt {
		s.logViewport()
	}
}

func (s *System) logViewport() {
	vp := s.face.Viewport()
	g := s.face.Geometry()
	s.logf("face: viewport %dx%d+%d+%d radius=%d recomputes=%d", vp.W, vp.H, vp.X, vp.Y, g.Radius, s.face.Recomputes())
}

func (s *System) drainTicks() {
	for {
		select {
		case seq, ok := <-s.ticks:
			if !ok {
				s.ticks = nil
				return
			}
			for seq >= s.nextSecond {
				s.nextSecond += ticksPerSecond
				s.second()
			}
		default:
			return
		}
	}
}

func (s *System) second() {
	s.seconds++
	s.dirty = true
	if s.led == nil {
		return
	}
	if s.seconds%2 == 1 {
		s.led.High()
	} else {
		s.led.Low()
	}
}

// redraw paints the face and the quick-view panel and presents the frame.
// A panic while drawing is reported on screen instead of taking the
// process down.
func (s *System) redraw() (err error) {
	defer func() {
		if v := recover(); v != nil {
			s.showPanic(v)
			err = nil
		}
	}()

	s.face.Draw(s.surf)
	s.drawPanel()
	s.redraws++
	return s.present()
}

func (s *System) present() error {
	if s.fb == nil {
		return nil
	}
	err := s.fb.Present()
	if errors.Is(err, hal.ErrNotImplemented) {
		if !s.noPanel {
			s.noPanel = true
			s.logf("app: display has no panel, drawing offscreen")
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

func (s *System) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
