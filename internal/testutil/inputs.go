package testutil

import (
	"math"
	"math/rand"
)

// DeterministicPositive returns length log-uniform random values in
// [min, max) drawn from a fixed seed.
func DeterministicPositive(seed int64, min, max float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	logMin, logMax := math.Log(min), math.Log(max)
	for i := range out {
		out[i] = math.Exp(logMin + rng.Float64()*(logMax-logMin))
	}
	return out
}

// Magnitudes returns 10^lo, 10^(lo+1), ..., 10^hi.
func Magnitudes(lo, hi int) []float64 {
	if hi < lo {
		return nil
	}
	out := make([]float64, 0, hi-lo+1)
	for e := lo; e <= hi; e++ {
		out = append(out, math.Pow(10, float64(e)))
	}
	return out
}
