package app

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"tickface/face"
	"tickface/gfx"
	"tickface/hal"
)

func pixel(fb *fakeFramebuffer, x, y int) color.RGBA {
	return gfx.NewFramebufferCanvas(fb.buf, fb.w, fb.h, fb.w*2).RGBAt(x, y)
}

func quantized(c color.RGBA) color.RGBA {
	return gfx.FromRGB565(gfx.RGB565(c))
}

func newTestSystem(t *testing.T, screen hal.Screen) (*System, *fakeHAL) {
	t.Helper()
	h := newFakeHAL(screen)
	s := NewSystem(h, Config{})
	if err := s.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	return s, h
}

func TestFirstStepDrawsOnce(t *testing.T) {
	s, h := newTestSystem(t, hal.Screen{Width: 144, Height: 168})
	if s.Redraws() != 1 || h.fb.presents != 1 {
		t.Fatalf("Redraws() = %d, presents = %d, want 1, 1", s.Redraws(), h.fb.presents)
	}
	if got, want := pixel(h.fb, 72, 84), quantized(face.Background); got != want {
		t.Fatalf("center = %v, want %v", got, want)
	}
	if err := s.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if s.Redraws() != 1 {
		t.Fatalf("Redraws() = %d after idle step, want 1", s.Redraws())
	}
}

func TestThousandTicksRedrawOnce(t *testing.T) {
	s, h := newTestSystem(t, hal.Screen{Width: 144, Height: 168})

	h.tick(1, 999)
	if err := s.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if s.Redraws() != 1 || s.Seconds() != 0 {
		t.Fatalf("after 999 ticks Redraws() = %d, Seconds() = %d, want 1, 0", s.Redraws(), s.Seconds())
	}

	h.tick(1000, 1000)
	if err := s.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if s.Redraws() != 2 || s.Seconds() != 1 {
		t.Fatalf("after 1000 ticks Redraws() = %d, Seconds() = %d, want 2, 1", s.Redraws(), s.Seconds())
	}
	if !h.led.on {
		t.Fatalf("LED off after an odd second")
	}

	h.tick(1001, 3000)
	if err := s.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if s.Redraws() != 3 || s.Seconds() != 3 {
		t.Fatalf("after 3000 ticks Redraws() = %d, Seconds() = %d, want 3, 3", s.Redraws(), s.Seconds())
	}
	if h.led.toggles != 3 {
		t.Fatalf("LED toggles = %d, want 3", h.led.toggles)
	}
	if s.Face().Recomputes() != 1 {
		t.Fatalf("Recomputes() = %d, ticks must not recompute geometry", s.Face().Recomputes())
	}
}

func TestObstructionRecomputes(t *testing.T) {
	s, h := newTestSystem(t, hal.Screen{Width: 144, Height: 168})
	if s.Face().Recomputes() != 1 {
		t.Fatalf("Recomputes() = %d, want 1", s.Face().Recomputes())
	}

	h.obs.move(image.Rect(0, 0, 144, 117))
	if err := s.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if got := s.Face().Recomputes(); got != 2 {
		t.Fatalf("Recomputes() = %d, want 2", got)
	}
	if got, want := s.Face().Viewport(), gfx.R(0, 0, 144, 117); got != want {
		t.Fatalf("Viewport() = %v, want %v", got, want)
	}
	if s.Redraws() != 2 {
		t.Fatalf("Redraws() = %d, want 2", s.Redraws())
	}

	if got, want := pixel(h.fb, 3, 160), quantized(panelColor); got != want {
		t.Fatalf("panel pixel = %v, want %v", got, want)
	}
	if got, want := pixel(h.fb, 0, 117), quantized(gfx.Black); got != want {
		t.Fatalf("panel corner = %v, want %v", got, want)
	}
	if got, want := pixel(h.fb, 72, 58), quantized(face.Background); got != want {
		t.Fatalf("obstructed center = %v, want %v", got, want)
	}

	h.obs.move(image.Rect(0, 0, 144, 117))
	if err := s.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if got := s.Face().Recomputes(); got != 2 {
		t.Fatalf("Recomputes() = %d after repeated viewport, want 2", got)
	}
	if s.Redraws() != 2 {
		t.Fatalf("Redraws() = %d after repeated viewport, want 2", s.Redraws())
	}

	if err := s.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if !h.log.contains("face: viewport 144x117+0+0") {
		t.Fatalf("settled viewport not logged: %q", h.log.lines)
	}
}

func TestTabTogglesQuickView(t *testing.T) {
	s, h := newTestSystem(t, hal.Screen{Width: 144, Height: 168})

	h.keys <- hal.KeyEvent{Code: hal.KeyTab, Press: true}
	h.keys <- hal.KeyEvent{Code: hal.KeyTab, Press: false}
	if err := s.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if !h.obs.peeking {
		t.Fatalf("Tab did not start quick view")
	}

	h.keys <- hal.KeyEvent{Rune: 'o', Press: true}
	if err := s.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if h.obs.peeking {
		t.Fatalf("o did not hide quick view")
	}
}

func TestPanicIsRecovered(t *testing.T) {
	h := newFakeHAL(hal.Screen{Width: 144, Height: 168})
	h.fb.panics = 1
	s := NewSystem(h, Config{})
	if err := s.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if !h.log.contains("app: panic: boom") {
		t.Fatalf("panic not logged: %q", h.log.lines)
	}
	if h.fb.presents != 1 {
		t.Fatalf("presents = %d, want the panic screen", h.fb.presents)
	}
	if got, want := pixel(h.fb, 143, 1), quantized(gfx.White); got != want {
		t.Fatalf("panic screen pixel = %v, want %v", got, want)
	}

	h.tick(1, 1000)
	if err := s.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if got, want := pixel(h.fb, 72, 84), quantized(face.Background); got != want {
		t.Fatalf("center after recovery = %v, want %v", got, want)
	}
}

func TestPresentWithoutPanel(t *testing.T) {
	s, h := newTestSystem(t, hal.Screen{Width: 144, Height: 168})
	h.fb.err = hal.ErrNotImplemented
	for i := uint64(1); i <= 3; i++ {
		h.tick(i*1000, i*1000)
		if err := s.Step(); err != nil {
			t.Fatalf("Step() = %v", err)
		}
	}
	if n := h.log.count("no panel"); n != 1 {
		t.Fatalf("no-panel log lines = %d, want 1", n)
	}
}

func TestPresentErrorPropagates(t *testing.T) {
	s, h := newTestSystem(t, hal.Screen{Width: 144, Height: 168})
	spi := errors.New("spi")
	h.fb.err = spi
	h.tick(1, 1000)
	if err := s.Step(); !errors.Is(err, spi) {
		t.Fatalf("Step() = %v, want %v", err, spi)
	}
}

func TestRoundScreen(t *testing.T) {
	s, h := newTestSystem(t, hal.Screen{Width: 180, Height: 180, Round: true})
	if s.Face().Shape() != face.ShapeRound {
		t.Fatalf("Shape() = %v, want round", s.Face().Shape())
	}
	if got := s.Face().Geometry().Radius; got != 90 {
		t.Fatalf("Radius = %d, want 90", got)
	}
	if got, want := pixel(h.fb, 90, 90), quantized(face.Background); got != want {
		t.Fatalf("center = %v, want %v", got, want)
	}
}

func TestUptime(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "up 00:00:00"},
		{59, "up 00:00:59"},
		{3725, "up 01:02:05"},
	}
	for _, tt := range tests {
		if got := uptime(tt.in); got != tt.want {
			t.Fatalf("uptime(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		in     string
		n      int16
		prefix string
		rest   string
	}{
		{"", 3, "", ""},
		{"abc", 0, "", "abc"},
		{"abc", 5, "abc", ""},
		{"abcdef", 4, "abcd", "ef"},
		{"äöüß", 2, "äö", "üß"},
	}
	for _, tt := range tests {
		prefix, rest := takeRunes(tt.in, tt.n)
		if prefix != tt.prefix || rest != tt.rest {
			t.Fatalf("takeRunes(%q, %d) = %q, %q, want %q, %q", tt.in, tt.n, prefix, rest, tt.prefix, tt.rest)
		}
	}
}
