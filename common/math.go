package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Range is a closed interval [Min, Max] used for per-axis bounds.
type Range struct {
	Min float32 `json:"min"`
	Max float32 `json:"max"`
}

// Clamp restricts v to the range.
//
// Parameters:
//   - v: value to clamp
//
// Returns:
//   - float32: v limited to [Min, Max]
func (r Range) Clamp(v float32) float32 {
	return Clamp(v, r.Min, r.Max)
}

// Contains reports whether v lies inside the closed range.
func (r Range) Contains(v float32) bool {
	return v >= r.Min && v <= r.Max
}

// Valid reports whether Min does not exceed Max.
func (r Range) Valid() bool {
	return r.Min <= r.Max
}

// Clamp restricts v to [lo, hi]. Values below lo return lo, values above hi return hi.
//
// Parameters:
//   - v: value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: the clamped value
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approximately reports whether two floats are equal within float32 rounding error.
// Comparing against zero only succeeds for zero or subnormal values, so any delta a
// user could produce counts as non-zero.
//
// Parameters:
//   - a, b: values to compare
//
// Returns:
//   - bool: true if a and b are indistinguishable
func Approximately(a, b float32) bool {
	tolerance := max(1e-6*max(abs32(a), abs32(b)), math.SmallestNonzeroFloat32*8)
	return abs32(b-a) < tolerance
}

// LerpFactor converts a speed and a frame delta into an interpolation factor in [0, 1].
// Large delta times saturate at 1, meaning a full catch-up in a single tick.
//
// Parameters:
//   - speed: approach rate per second
//   - deltaTime: elapsed seconds since the previous tick
//
// Returns:
//   - float32: the clamped interpolation factor
func LerpFactor(speed, deltaTime float32) float32 {
	return Clamp(speed*deltaTime, 0, 1)
}

// Lerp linearly interpolates from a toward b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// LerpVec3 linearly interpolates each component from a toward b by t.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Flatten returns v with its vertical (Y) component replaced by height.
func Flatten(v mgl32.Vec3, height float32) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), height, v.Z()}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
