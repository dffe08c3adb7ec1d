// Package fixed provides the integer-only math used by the rasterizer.
//
// Directions are stored on a 127 scale: a component of 127 stands for 1.0,
// so a unit vector fits in three signed 8-bit lanes without any fractional
// storage. Nothing in this package uses floating point.
package fixed

// One is the fixed-point value of 1.0 for direction components.
const One = 127

// Isqrt returns floor(sqrt(n)) for n >= 0 and 0 for n <= 0.
//
// It uses Newton's iteration on integers. The iteration is carried out in
// 64 bits so that n close to MaxInt32 cannot overflow x + n/x.
func Isqrt(n int32) int32 {
	if n <= 0 {
		return 0
	}
	nn := int64(n)
	x := nn
	y := (x + 1) >> 1
	for y < x {
		x = y
		y = (x + nn/x) >> 1
	}
	return int32(x)
}

// Length3 returns the integer (floor) length of the vector (x, y, z).
func Length3(x, y, z int32) int32 {
	return Isqrt(x*x + y*y + z*z)
}

// Normalize127 rescales (x, y, z) so that its length is approximately One.
//
// Each component is multiplied by One and divided by the floor length, which
// keeps every component within [-One, One]. ok is false for the zero vector,
// whose direction is undefined.
func Normalize127(x, y, z int32) (nx, ny, nz int32, ok bool) {
	l := Length3(x, y, z)
	if l == 0 {
		return 0, 0, 0, false
	}
	return x * One / l, y * One / l, z * One / l, true
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
