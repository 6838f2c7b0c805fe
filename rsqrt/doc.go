// Package rsqrt computes fast approximate reciprocal square roots using the
// Quake III bit trick.
//
// The float's bit pattern is reinterpreted as an unsigned integer of the same
// width, transformed to MAGIC - (i >> 1), reinterpreted back, and refined
// with Newton-Raphson passes y = y * (1.5 - 0.5*x*y*y).
//
// # Accuracy Characteristics
//
// Seed only (0 passes): ~3.5% max relative error
//
// One pass (Float32, Float64): <0.2% max relative error for positive finite x
//
// Two passes: ~5e-6 relative error, limited by float32 precision for Float32N
//
// # Domain
//
// Inputs should be positive and finite. Zero, negative, NaN and Inf inputs are
// not validated and produce an unspecified value (possibly NaN or Inf). The
// core functions never branch on the input class and never panic.
//
// All functions are pure and safe for concurrent use.
package rsqrt
