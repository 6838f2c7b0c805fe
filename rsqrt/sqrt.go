package rsqrt

// Sqrt32 approximates sqrt(x) as x * Float32(x). Returns 0 for x <= 0.
func Sqrt32(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return x * Float32(x)
}

// Sqrt64 approximates sqrt(x) as x * Float64(x). Returns 0 for x <= 0.
func Sqrt64(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return x * Float64(x)
}
