package rsqrt

import (
	"math"
	"unsafe"
)

const (
	// Magic32 is the original Quake III constant for float32.
	Magic32 uint32 = 0x5f3759df

	// Magic32Lomont is Chris Lomont's refined float32 constant.
	Magic32Lomont uint32 = 0x5f375a86

	// Magic64 is the float64 counterpart of Magic32.
	Magic64 uint64 = 0x5fe6eb50c7b537a9
)

const (
	threeHalfs = 1.5
	half       = 0.5
)

// Bit casts only ever happen between equally sized types.
var (
	_ [unsafe.Sizeof(float32(0)) - unsafe.Sizeof(uint32(0))]struct{}
	_ [unsafe.Sizeof(uint32(0)) - unsafe.Sizeof(float32(0))]struct{}
	_ [unsafe.Sizeof(float64(0)) - unsafe.Sizeof(uint64(0))]struct{}
	_ [unsafe.Sizeof(uint64(0)) - unsafe.Sizeof(float64(0))]struct{}
)

func bits32(x float32) uint32 { return math.Float32bits(x) }
func from32(i uint32) float32 { return math.Float32frombits(i) }
func bits64(x float64) uint64 { return math.Float64bits(x) }
func from64(i uint64) float64 { return math.Float64frombits(i) }

func seed32(x float32, magic uint32) float32 {
	return from32(magic - (bits32(x) >> 1))
}

func seed64(x float64, magic uint64) float64 {
	return from64(magic - (bits64(x) >> 1))
}

// Seed32 returns the unrefined bit-trick estimate of 1/sqrt(x).
func Seed32(x float32) float32 {
	return seed32(x, Magic32)
}

// Seed64 returns the unrefined bit-trick estimate of 1/sqrt(x).
func Seed64(x float64) float64 {
	return seed64(x, Magic64)
}

// Refine32 applies one Newton-Raphson pass for f(y) = 1/y^2 - x to the
// estimate y.
func Refine32(x, y float32) float32 {
	return y * (threeHalfs - half*x*y*y)
}

// Refine64 applies one Newton-Raphson pass for f(y) = 1/y^2 - x to the
// estimate y.
func Refine64(x, y float64) float64 {
	return y * (threeHalfs - half*x*y*y)
}

// Float32 returns an approximation of 1/sqrt(x) refined by one
// Newton-Raphson pass.
func Float32(x float32) float32 {
	y := seed32(x, Magic32)
	return Refine32(x, y)
}

// Float64 returns an approximation of 1/sqrt(x) refined by one
// Newton-Raphson pass.
func Float64(x float64) float64 {
	y := seed64(x, Magic64)
	return Refine64(x, y)
}

// Float32N is like Float32 but applies steps Newton-Raphson passes.
// steps <= 0 returns the raw seed.
func Float32N(x float32, steps int) float32 {
	return float32N(x, steps, Magic32)
}

// Float64N is like Float64 but applies steps Newton-Raphson passes.
// steps <= 0 returns the raw seed.
func Float64N(x float64, steps int) float64 {
	return float64N(x, steps, Magic64)
}

func float32N(x float32, steps int, magic uint32) float32 {
	y := seed32(x, magic)
	for range steps {
		y = Refine32(x, y)
	}
	return y
}

func float64N(x float64, steps int, magic uint64) float64 {
	y := seed64(x, magic)
	for range steps {
		y = Refine64(x, y)
	}
	return y
}
