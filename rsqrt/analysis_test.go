package rsqrt

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-rsqrt/internal/testutil"
)

func TestSweepValues(t *testing.T) {
	s := Sweep{Min: 1e-3, Max: 1e3, Points: 7}
	xs, err := s.Values()
	require.NoError(t, err)
	require.Len(t, xs, 7)
	testutil.RequireFinite(t, xs)

	assert.Equal(t, 1e-3, xs[0])
	assert.Equal(t, 1e3, xs[6])
	assert.InEpsilon(t, 1.0, xs[3], 1e-12)
	for i := 1; i < len(xs); i++ {
		assert.Greater(t, xs[i], xs[i-1])
	}
}

func TestSweepSinglePoint(t *testing.T) {
	xs, err := Sweep{Min: 2, Max: 8, Points: 1}.Values()
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, xs)
}

func TestSweepValidate(t *testing.T) {
	tests := []struct {
		name  string
		sweep Sweep
		want  error
	}{
		{name: "default", sweep: DefaultSweep(), want: nil},
		{name: "degenerate range", sweep: Sweep{Min: 1, Max: 1, Points: 3}, want: nil},
		{name: "no points", sweep: Sweep{Min: 1, Max: 2}, want: ErrInvalidPoints},
		{name: "zero min", sweep: Sweep{Min: 0, Max: 2, Points: 4}, want: ErrInvalidRange},
		{name: "negative min", sweep: Sweep{Min: -1, Max: 2, Points: 4}, want: ErrInvalidRange},
		{name: "nan min", sweep: Sweep{Min: math.NaN(), Max: 2, Points: 4}, want: ErrInvalidRange},
		{name: "reversed", sweep: Sweep{Min: 3, Max: 2, Points: 4}, want: ErrInvalidRange},
		{name: "nan max", sweep: Sweep{Min: 1, Max: math.NaN(), Points: 4}, want: ErrInvalidRange},
		{name: "max points", sweep: Sweep{Min: 1, Max: 2, Points: MaxSweepPoints}, want: nil},
		{name: "too many points", sweep: Sweep{Min: 1, Max: 2, Points: MaxSweepPoints + 1}, want: ErrInvalidPoints},
		{name: "infinite max", sweep: Sweep{Min: 1, Max: math.Inf(1), Points: 4}, want: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sweep.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)

			_, err = tt.sweep.Values()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAnalyze(t *testing.T) {
	s := DefaultSweep()

	seed32, err := Analyze32(s, 0)
	require.NoError(t, err)
	one32, err := Analyze32(s, 1)
	require.NoError(t, err)
	two32, err := Analyze32(s, 2)
	require.NoError(t, err)

	assert.Equal(t, 32, one32.Width)
	assert.Equal(t, 1, one32.Steps)
	assert.Equal(t, s.Points, one32.Points)

	assert.Less(t, seed32.MaxRelError, 0.04)
	assert.Less(t, one32.MaxRelError, 0.002)
	assert.Less(t, two32.MaxRelError, 1e-5)
	assert.Greater(t, seed32.MaxRelError, one32.MaxRelError)
	assert.Greater(t, one32.MaxRelError, two32.MaxRelError)
	assert.LessOrEqual(t, one32.MeanRelError, one32.MaxRelError)
	assert.GreaterOrEqual(t, one32.WorstInput, s.Min*(1-1e-6))
	assert.LessOrEqual(t, one32.WorstInput, s.Max*(1+1e-6))

	one64, err := Analyze64(s, 1)
	require.NoError(t, err)
	four64, err := Analyze64(s, 4)
	require.NoError(t, err)

	assert.Equal(t, 64, one64.Width)
	assert.Less(t, one64.MaxRelError, 0.002)
	assert.Less(t, four64.MaxRelError, 1e-14)
}

func TestAnalyzeMatchesPerElementError(t *testing.T) {
	s := Sweep{Min: 1e-4, Max: 1e4, Points: 1000}
	xs, err := s.Values()
	require.NoError(t, err)
	testutil.RequireFinite(t, xs)

	got := make([]float64, len(xs))
	want := make([]float64, len(xs))
	for i, x := range xs {
		got[i] = Float64(x)
		want[i] = 1 / math.Sqrt(x)
	}
	wantMax, err := testutil.MaxRelDiff(got, want)
	require.NoError(t, err)

	r, err := Analyze64(s, 1)
	require.NoError(t, err)
	assert.InDelta(t, wantMax, r.MaxRelError, 1e-12)
}

func TestAnalyze32OutsideFloat32(t *testing.T) {
	tests := []struct {
		name  string
		sweep Sweep
	}{
		{name: "max too large", sweep: Sweep{Min: 1, Max: 1e300, Points: 8}},
		{name: "min too small", sweep: Sweep{Min: 1e-300, Max: 1, Points: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze32(tt.sweep, 1)
			assert.ErrorIs(t, err, ErrFloat32Range)

			r, err := Analyze64(tt.sweep, 1)
			require.NoError(t, err)
			assert.Less(t, r.MaxRelError, 0.002)
		})
	}
}

func TestAnalyzeInvalidSweep(t *testing.T) {
	_, err := Analyze32(Sweep{}, 1)
	assert.ErrorIs(t, err, ErrInvalidPoints)

	_, err = Analyze64(Sweep{Min: -1, Max: 1, Points: 2}, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Analyze32(Sweep{Min: -1, Max: 1, Points: 2}, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)

	r, err := Analyze64(Sweep{Min: 1, Max: math.NaN(), Points: 4}, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Zero(t, r)
}

func TestRelError(t *testing.T) {
	assert.InDelta(t, 0.01, RelError(1.01, 1), 1e-12)
	assert.InDelta(t, 0.01, RelError(0.99, 1), 1e-12)
	assert.Equal(t, 0.0, RelError(2, 2))
}

func TestApproximatorAnalyzeLomont(t *testing.T) {
	s := Sweep{Min: 1e-3, Max: 1e3, Points: 2048}

	classic, err := New().Analyze32(s)
	require.NoError(t, err)
	lomont, err := New(WithMagic32(Magic32Lomont)).Analyze32(s)
	require.NoError(t, err)

	assert.Less(t, classic.MaxRelError, 0.002)
	assert.Less(t, lomont.MaxRelError, 0.002)
	assert.Equal(t, 1, lomont.Steps)
}
