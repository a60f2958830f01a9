package roots

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"gowkb/domain/core"
	"gowkb/domain/grid"
	"gowkb/internal/calculus"
)

// FoundZero records a located zero together with its multiplicity tag:
// 1 for a simple root, 2 for a root that is also a local extremum of the
// search function.
type FoundZero struct {
	Multiplicity int
	Zero         float64
}

// DeflatingFinder locates successive zeros of one function, dividing out
// previously found zeros so Newton's method cannot reconverge to them. The
// accumulated zero list belongs to a single detection pass and is mutated
// only by its sequential caller.
type DeflatingFinder struct {
	f         func(float64) float64
	precision float64
	maxIters  int
	found     []FoundZero
}

// NewDeflatingFinder creates a finder over f with the given Newton precision
// and iteration cap.
func NewDeflatingFinder(f func(float64) float64, precision float64, maxIters int) *DeflatingFinder {
	return &DeflatingFinder{
		f:         f,
		precision: precision,
		maxIters:  maxIters,
	}
}

// ModifiedFunc divides the original function by the product of
// (x - z)^multiplicity over every known zero. A divisor of exactly zero is
// nudged by the finder's precision to avoid division by zero.
func (d *DeflatingFinder) ModifiedFunc(x float64) float64 {
	divisor := 1.0
	for _, fz := range d.found {
		term := x - fz.Zero
		if fz.Multiplicity == 2 {
			divisor *= term * term
		} else {
			divisor *= term
		}
	}
	if divisor == 0 {
		divisor += d.precision
	}
	return d.f(x) / divisor
}

// NextZero runs bounded Newton against the deflated function from guess. On
// success the zero is recorded; it is tagged with multiplicity 2 when the
// deflated function's derivative at the zero is negligible, which marks a
// tangential root at an extremum so it will not be revisited. The
// multiplicity threshold is sqrt(precision): Newton converges only linearly
// at a double root, leaving the residual slope well above the step
// tolerance itself.
func (d *DeflatingFinder) NextZero(guess float64) (float64, bool) {
	z, ok := NewtonBounded(d.ModifiedFunc, guess, d.precision, d.maxIters)
	if !ok {
		return 0, false
	}

	if math.Abs(calculus.Derivative(d.ModifiedFunc, z)) < math.Sqrt(d.precision) {
		d.found = append(d.found, FoundZero{Multiplicity: 2, Zero: z})
	} else {
		d.found = append(d.found, FoundZero{Multiplicity: 1, Zero: z})
	}
	return z, true
}

// Zeros returns the zero positions found so far in discovery order.
func (d *DeflatingFinder) Zeros() []float64 {
	zeros := make([]float64, 0, len(d.found))
	for _, fz := range d.found {
		zeros = append(zeros, fz.Zero)
	}
	return zeros
}

// Found returns the recorded zeros with their multiplicity tags.
func (d *DeflatingFinder) Found() []FoundZero {
	out := make([]FoundZero, len(d.found))
	copy(out, d.found)
	return out
}

// MakeGuess samples |f(x) / (1 - e^{-f'(x)^2})| at n evenly spaced points
// over the interval and returns the position of the smallest sample. The
// denominator blows up where the function is flat, steering the seed away
// from plateaus the deflation has already carved out. The grid is scored in
// parallel; the reduction walks it in index order so ties resolve
// deterministically.
func MakeGuess(f func(float64) float64, interval core.Interval, n int) (float64, bool) {
	if n < 1 {
		return 0, false
	}

	positions := make([]float64, n)
	scores := make([]float64, n)

	workers := runtime.GOMAXPROCS(0)
	block := (n + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * block
		hi := lo + block
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				x := grid.IndexToRange(float64(i), float64(n), interval.Lo, interval.Hi)
				der := calculus.Derivative(f, x)
				positions[i] = x
				scores[i] = math.Abs(f(x) / (1 - math.Exp(-der*der)))
			}
			return nil
		})
	}
	_ = g.Wait()

	best := 0
	for i := 1; i < n; i++ {
		if scores[i] < scores[best] {
			best = i
		}
	}
	return positions[best], true
}
