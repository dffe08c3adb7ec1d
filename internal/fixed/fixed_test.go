package fixed

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestIsqrtPerfectSquares(t *testing.T) {
	for k := int32(0); k <= 255; k++ {
		if got := Isqrt(k * k); got != k {
			t.Errorf("Isqrt(%d) = %d, want %d", k*k, got, k)
		}
	}
}

func TestIsqrtSmallAndNonPositive(t *testing.T) {
	tests := []struct {
		n, want int32
	}{
		{math.MinInt32, 0},
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{8, 2},
		{9, 3},
		{6399, 79},
		{6400, 80},
		{math.MaxInt32, 46340},
	}
	for _, tt := range tests {
		if got := Isqrt(tt.n); got != tt.want {
			t.Errorf("Isqrt(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestIsqrtProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("isqrt(n)^2 <= n < (isqrt(n)+1)^2", prop.ForAll(
		func(n int32) bool {
			r := int64(Isqrt(n))
			nn := int64(n)
			return r*r <= nn && nn < (r+1)*(r+1)
		},
		gen.Int32Range(0, math.MaxInt32),
	))

	properties.Property("isqrt is zero for non-positive input", prop.ForAll(
		func(n int32) bool {
			return Isqrt(n) == 0
		},
		gen.Int32Range(math.MinInt32, 0),
	))

	properties.TestingRun(t)
}

func TestNormalize127(t *testing.T) {
	tests := []struct {
		name       string
		x, y, z    int32
		wx, wy, wz int32
	}{
		{"reference light", 10, -1, 20, 57, -5, 115},
		{"axis", 0, 0, 80, 0, 0, 127},
		{"negative axis", -128, 0, 0, -127, 0, 0},
		{"diagonal", 1, 1, 0, 127, 127, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, z, ok := Normalize127(tt.x, tt.y, tt.z)
			if !ok {
				t.Fatal("Normalize127 reported zero vector")
			}
			if x != tt.wx || y != tt.wy || z != tt.wz {
				t.Errorf("Normalize127(%d,%d,%d) = (%d,%d,%d), want (%d,%d,%d)",
					tt.x, tt.y, tt.z, x, y, z, tt.wx, tt.wy, tt.wz)
			}
		})
	}
}

func TestNormalize127Zero(t *testing.T) {
	if _, _, _, ok := Normalize127(0, 0, 0); ok {
		t.Error("Normalize127(0,0,0) should not be ok")
	}
}

func TestNormalize127StaysInLane(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("components stay within [-127, 127]", prop.ForAll(
		func(x, y, z int32) bool {
			nx, ny, nz, ok := Normalize127(x, y, z)
			if !ok {
				return x == 0 && y == 0 && z == 0
			}
			in := func(v int32) bool { return v >= -One && v <= One }
			return in(nx) && in(ny) && in(nz)
		},
		gen.Int32Range(-128, 127),
		gen.Int32Range(-128, 127),
		gen.Int32Range(-128, 127),
	))

	properties.TestingRun(t)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int32
	}{
		{-5, 0, 255, 0},
		{300, 0, 255, 255},
		{42, 0, 255, 42},
		{10, 50, 255, 50},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
