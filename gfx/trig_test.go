package gfx

import "testing"

func TestDegToAngle(t *testing.T) {
	cases := []struct {
		deg  int
		want Angle
	}{
		{0, 0},
		{90, 0x4000},
		{180, 0x8000},
		{360, TrigMaxAngle},
		{5, 910},
		{7, 1274},
		{-1, -182},
	}
	for _, tc := range cases {
		if got := DegToAngle(tc.deg); got != tc.want {
			t.Fatalf("DegToAngle(%d) = %d, want %d", tc.deg, got, tc.want)
		}
	}
}

func TestAngleNormalize(t *testing.T) {
	if got := Angle(-182).Normalize(); got != TrigMaxAngle-182 {
		t.Fatalf("Normalize(-182) = %d, want %d", got, TrigMaxAngle-182)
	}
	if got := (TrigMaxAngle + 5).Normalize(); got != 5 {
		t.Fatalf("Normalize(max+5) = %d, want 5", got)
	}
}

func TestTrigLookupQuarterTurns(t *testing.T) {
	cases := []struct {
		a        Angle
		sin, cos int32
	}{
		{0, 0, TrigMaxRatio},
		{0x4000, TrigMaxRatio, 0},
		{0x8000, 0, -TrigMaxRatio},
		{0xC000, -TrigMaxRatio, 0},
	}
	for _, tc := range cases {
		if got := SinLookup(tc.a); got != tc.sin {
			t.Fatalf("SinLookup(%#x) = %d, want %d", tc.a, got, tc.sin)
		}
		if got := CosLookup(tc.a); got != tc.cos {
			t.Fatalf("CosLookup(%#x) = %d, want %d", tc.a, got, tc.cos)
		}
	}
}

func TestAtan2Lookup(t *testing.T) {
	cases := []struct {
		y, x int32
		want Angle
	}{
		{0, 1, 0},
		{1, 0, 0x4000},
		{0, -1, 0x8000},
		{-1, 0, 0xC000},
		{5, 5, 0x2000},
		{0, 0, 0},
	}
	for _, tc := range cases {
		if got := Atan2Lookup(tc.y, tc.x); got != tc.want {
			t.Fatalf("Atan2Lookup(%d, %d) = %#x, want %#x", tc.y, tc.x, got, tc.want)
		}
	}
}
