package gfx

import "math"

// Angle is measured in trig units: TrigMaxAngle units make a full turn.
//
// Radial fills treat 0 as 12 o'clock and grow clockwise.
type Angle int32

const (
	TrigMaxAngle Angle = 0x10000
	TrigMaxRatio       = 0xFFFF
)

// DegToAngle converts whole degrees to trig units, truncating.
func DegToAngle(deg int) Angle {
	return Angle(int64(deg) * int64(TrigMaxAngle) / 360)
}

// Degrees converts back to (fractional) degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 360 / float64(TrigMaxAngle)
}

// Normalize folds a into [0, TrigMaxAngle).
func (a Angle) Normalize() Angle {
	a %= TrigMaxAngle
	if a < 0 {
		a += TrigMaxAngle
	}
	return a
}

func (a Angle) radians() float64 {
	return float64(a) * 2 * math.Pi / float64(TrigMaxAngle)
}

// SinLookup returns sin(a) scaled by TrigMaxRatio.
func SinLookup(a Angle) int32 {
	return int32(math.Round(math.Sin(a.radians()) * TrigMaxRatio))
}

// CosLookup returns cos(a) scaled by TrigMaxRatio.
func CosLookup(a Angle) int32 {
	return int32(math.Round(math.Cos(a.radians()) * TrigMaxRatio))
}

// Atan2Lookup returns atan2(y, x) in trig units within [0, TrigMaxAngle).
func Atan2Lookup(y, x int32) Angle {
	if y == 0 && x == 0 {
		return 0
	}
	rad := math.Atan2(float64(y), float64(x))
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return Angle(math.Round(rad * float64(TrigMaxAngle) / (2 * math.Pi))).Normalize()
}
