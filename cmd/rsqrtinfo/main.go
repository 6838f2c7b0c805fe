// Command rsqrtinfo prints accuracy tables for the fast reciprocal square
// root approximations.
//
// Usage:
//
//	rsqrtinfo [flags]
//
// Without -x it sweeps a log-spaced input range and reports the relative
// error per width and refinement count.
//
// Examples:
//
//	rsqrtinfo
//	rsqrtinfo -steps 3 -width 32
//	rsqrtinfo -min 1e-3 -max 1e3 -points 100000
//	rsqrtinfo -magic32 0x5f375a86
//	rsqrtinfo -x 2
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/meko-christian/algo-approx"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-rsqrt/rsqrt"
)

var errUsage = errors.New("usage")

// maxSteps bounds -steps; more passes than this cannot improve a float64.
const maxSteps = 64

type options struct {
	sweep    rsqrt.Sweep
	maxSteps int
	widths   []int
	magic32  uint32
	magic64  uint64
	x        float64
	verbose  bool
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 2
	}

	logger := newLogger(stderr, opts.verbose)

	if !math.IsNaN(opts.x) {
		if err := printValue(stdout, opts); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	reports, err := analyze(ctx, logger, opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if err := printReports(stdout, opts.sweep, reports); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	def := rsqrt.DefaultSweep()
	fs := flag.NewFlagSet("rsqrtinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	minX := fs.Float64("min", def.Min, "smallest input of the sweep")
	maxX := fs.Float64("max", def.Max, "largest input of the sweep")
	points := fs.Int("points", def.Points, "number of log-spaced sweep points")
	steps := fs.Int("steps", 2, "report refinement counts 0..steps")
	width := fs.String("width", "all", "float width to analyse: 32, 64 or all")
	magic32 := fs.String("magic32", fmt.Sprintf("%#x", rsqrt.Magic32), "float32 magic constant")
	magic64 := fs.String("magic64", fmt.Sprintf("%#x", rsqrt.Magic64), "float64 magic constant")
	x := fs.Float64("x", math.NaN(), "evaluate a single input instead of a sweep")
	verbose := fs.Bool("v", false, "log progress to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: rsqrtinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Prints relative error of the fast reciprocal square root.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return options{}, err
		}
		return options{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "error: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return options{}, errUsage
	}
	if *steps < 0 || *steps > maxSteps {
		return options{}, fmt.Errorf("invalid -steps %d: must be in [0, %d]", *steps, maxSteps)
	}

	m32, err := strconv.ParseUint(*magic32, 0, 32)
	if err != nil {
		return options{}, fmt.Errorf("invalid -magic32 %q: %w", *magic32, err)
	}
	m64, err := strconv.ParseUint(*magic64, 0, 64)
	if err != nil {
		return options{}, fmt.Errorf("invalid -magic64 %q: %w", *magic64, err)
	}

	widths, err := parseWidth(*width)
	if err != nil {
		return options{}, err
	}

	sweep := rsqrt.Sweep{Min: *minX, Max: *maxX, Points: *points}
	if math.IsNaN(*x) {
		if err := sweep.Validate(); err != nil {
			return options{}, err
		}
	}

	return options{
		sweep:    sweep,
		maxSteps: *steps,
		widths:   widths,
		magic32:  uint32(m32),
		magic64:  m64,
		x:        *x,
		verbose:  *verbose,
	}, nil
}

func parseWidth(s string) ([]int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "32":
		return []int{32}, nil
	case "64":
		return []int{64}, nil
	case "all", "":
		return []int{32, 64}, nil
	default:
		return nil, fmt.Errorf("invalid -width %q: want 32, 64 or all", s)
	}
}

func (o options) approximator(steps int) rsqrt.Approximator {
	return rsqrt.New(
		rsqrt.WithSteps(steps),
		rsqrt.WithMagic32(o.magic32),
		rsqrt.WithMagic64(o.magic64),
	)
}

// analyze runs every width/steps combination concurrently. The result keeps
// width-major, steps-minor order.
func analyze(ctx context.Context, logger *slog.Logger, o options) ([]rsqrt.Report, error) {
	perWidth := o.maxSteps + 1
	reports := make([]rsqrt.Report, len(o.widths)*perWidth)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for wi, width := range o.widths {
		for steps := 0; steps <= o.maxSteps; steps++ {
			idx := wi*perWidth + steps
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				a := o.approximator(steps)
				var (
					r   rsqrt.Report
					err error
				)
				if width == 32 {
					r, err = a.Analyze32(o.sweep)
				} else {
					r, err = a.Analyze64(o.sweep)
				}
				if err != nil {
					return fmt.Errorf("float%d steps=%d: %w", width, steps, err)
				}
				logger.Debug("analysis done",
					slog.Int("width", width),
					slog.Int("steps", steps),
					slog.Float64("max_rel_error", r.MaxRelError))
				reports[idx] = r
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func printReports(w io.Writer, s rsqrt.Sweep, reports []rsqrt.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Sweep %g..%g, %d points\n\n", s.Min, s.Max, s.Points); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "Width\tSteps\tMax rel err\tMean rel err\tWorst x\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t-----\t-----------\t------------\t-------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for _, r := range reports {
		if _, err := fmt.Fprintf(tw, "float%d\t%d\t%.3e\t%.3e\t%.6g\n",
			r.Width,
			r.Steps,
			r.MaxRelError,
			r.MeanRelError,
			r.WorstInput,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func printValue(w io.Writer, o options) error {
	x := o.x
	exact := 1 / math.Sqrt(x)

	type row struct {
		name  string
		value float64
	}
	var rows []row
	for steps := 0; steps <= o.maxSteps; steps++ {
		a := o.approximator(steps)
		if slices.Contains(o.widths, 32) {
			rows = append(rows, row{fmt.Sprintf("rsqrt float32 steps=%d", steps), float64(a.Float32(float32(x)))})
		}
		if slices.Contains(o.widths, 64) {
			rows = append(rows, row{fmt.Sprintf("rsqrt float64 steps=%d", steps), a.Float64(x)})
		}
	}
	rows = append(rows,
		row{"1/approx.FastSqrt", 1 / approx.FastSqrt(x)},
		row{"1/math.Sqrt", exact},
	)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "x = %g\n\nMethod\tResult\tRel err\n------\t------\t-------\n", x); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%.9g\t%.3e\n", r.name, r.value, rsqrt.RelError(r.value, exact)); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
