package rsqrt

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// MaxSweepPoints bounds Sweep.Points.
const MaxSweepPoints = 1 << 24

// Errors returned by sweep functions.
var (
	ErrInvalidRange  = errors.New("rsqrt: sweep range must be positive, finite and ordered")
	ErrInvalidPoints = errors.New("rsqrt: sweep points must be in [1, MaxSweepPoints]")
	ErrFloat32Range  = errors.New("rsqrt: sweep range exceeds float32")
)

// RelError returns |approx/exact - 1|.
func RelError(approx, exact float64) float64 {
	return math.Abs(approx/exact - 1)
}

// Sweep describes a log-spaced set of inputs in [Min, Max].
type Sweep struct {
	Min    float64
	Max    float64
	Points int
}

// DefaultSweep covers 1e-6 to 1e6.
func DefaultSweep() Sweep {
	return Sweep{Min: 1e-6, Max: 1e6, Points: 4096}
}

// Validate checks the sweep parameters.
func (s Sweep) Validate() error {
	if s.Points < 1 || s.Points > MaxSweepPoints {
		return ErrInvalidPoints
	}
	if !(s.Min > 0) || !(s.Max >= s.Min) || math.IsInf(s.Max, 0) {
		return ErrInvalidRange
	}
	return nil
}

// Values returns the log-spaced inputs. A single point yields [Min].
func (s Sweep) Values() ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := make([]float64, s.Points)
	if s.Points == 1 {
		out[0] = s.Min
		return out, nil
	}
	logMin := math.Log(s.Min)
	step := (math.Log(s.Max) - logMin) / float64(s.Points-1)
	for i := range out {
		out[i] = math.Exp(logMin + float64(i)*step)
	}
	out[0], out[len(out)-1] = s.Min, s.Max
	return out, nil
}

// Report summarises the relative error of one width over a sweep.
type Report struct {
	Width        int
	Steps        int
	Points       int
	MaxRelError  float64
	MeanRelError float64
	WorstInput   float64
}

// Analyze32 measures Float32N against math.Sqrt over s.
func Analyze32(s Sweep, steps int) (Report, error) {
	return New(WithSteps(steps)).Analyze32(s)
}

// Analyze64 measures Float64N against math.Sqrt over s.
func Analyze64(s Sweep, steps int) (Report, error) {
	return New(WithSteps(steps)).Analyze64(s)
}

// Analyze32 measures a.Float32 against math.Sqrt over s.
// Inputs are rounded to float32 before both evaluations, so s must lie
// within [math.SmallestNonzeroFloat32, math.MaxFloat32]; otherwise it fails
// with ErrFloat32Range.
func (a Approximator) Analyze32(s Sweep) (Report, error) {
	if err := s.Validate(); err != nil {
		return Report{}, err
	}
	if s.Min < math.SmallestNonzeroFloat32 || s.Max > math.MaxFloat32 {
		return Report{}, fmt.Errorf("%w: [%g, %g]", ErrFloat32Range, s.Min, s.Max)
	}
	xs, err := s.Values()
	if err != nil {
		return Report{}, err
	}
	approx := make([]float64, len(xs))
	for i, x := range xs {
		xs[i] = float64(float32(x))
		approx[i] = float64(a.Float32(float32(x)))
	}
	return summarize(32, a.cfg.Steps, xs, approx), nil
}

// Analyze64 measures a.Float64 against math.Sqrt over s.
func (a Approximator) Analyze64(s Sweep) (Report, error) {
	xs, err := s.Values()
	if err != nil {
		return Report{}, err
	}
	approx := make([]float64, len(xs))
	for i, x := range xs {
		approx[i] = a.Float64(x)
	}
	return summarize(64, a.cfg.Steps, xs, approx), nil
}

// summarize uses approx(x) * sqrt(x), which is 1 for an exact result.
func summarize(width, steps int, xs, approx []float64) Report {
	roots := make([]float64, len(xs))
	for i, x := range xs {
		roots[i] = math.Sqrt(x)
	}
	prod := make([]float64, len(xs))
	vecmath.MulBlock(prod, approx, roots)

	r := Report{Width: width, Steps: steps, Points: len(xs)}
	var sum float64
	for i, p := range prod {
		e := math.Abs(p - 1)
		sum += e
		if e > r.MaxRelError || math.IsNaN(e) {
			r.MaxRelError = e
			r.WorstInput = xs[i]
		}
	}
	r.MeanRelError = sum / float64(len(prod))
	return r
}
