package rsqrt

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a float64 cannot be narrowed to float32.
var ErrOverflow = errors.New("rsqrt: value out of float32 range")

// Float32From64 narrows x to float32 and returns Float32 of it.
// It fails with ErrOverflow if x is NaN or its magnitude exceeds
// math.MaxFloat32.
func Float32From64(x float64) (float32, error) {
	if math.IsNaN(x) || x < -math.MaxFloat32 || x > math.MaxFloat32 {
		return 0, fmt.Errorf("%w: %v", ErrOverflow, x)
	}
	return Float32(float32(x)), nil
}

// MustFloat32From64 is like Float32From64 but panics on error.
func MustFloat32From64(x float64) float32 {
	y, err := Float32From64(x)
	if err != nil {
		panic(err)
	}
	return y
}
