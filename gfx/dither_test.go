package gfx

import "testing"

func TestDitheredRectCheckerboard(t *testing.T) {
	s := NewSurface(NewImageCanvas(8, 8))
	s.DitheredRect(R(0, 0, 8, 8), Black, White, Dither50)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := Black
			if (x+y)%2 == 0 {
				want = White
			}
			if got := s.At(x, y); got != want {
				t.Fatalf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDitheredRectContinuousAcrossRects(t *testing.T) {
	whole := NewSurface(NewImageCanvas(9, 7))
	whole.DitheredRect(R(0, 0, 9, 7), Black, White, Dither25)

	split := NewSurface(NewImageCanvas(9, 7))
	split.DitheredRect(R(0, 0, 3, 7), Black, White, Dither25)
	split.DitheredRect(R(3, 0, 6, 4), Black, White, Dither25)
	split.DitheredRect(R(3, 4, 6, 3), Black, White, Dither25)

	for y := 0; y < 7; y++ {
		for x := 0; x < 9; x++ {
			if whole.At(x, y) != split.At(x, y) {
				t.Fatalf("pattern differs at (%d, %d)", x, y)
			}
		}
	}
}

func TestDitheredRectDensity(t *testing.T) {
	cases := []struct {
		d    Density
		want int
	}{
		{Dither0, 0},
		{Dither25, 16},
		{Dither50, 32},
		{Dither75, 48},
		{Dither100, 64},
		{200, 64},
	}
	for _, tc := range cases {
		s := NewSurface(NewImageCanvas(8, 8))
		s.DitheredRect(R(0, 0, 8, 8), Black, White, tc.d)
		if got := countColor(s, White); got != tc.want {
			t.Fatalf("density %d: white pixels = %d, want %d", tc.d, got, tc.want)
		}
	}
}
