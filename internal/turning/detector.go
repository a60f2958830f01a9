package turning

import (
	"math"
	"sort"

	"gowkb/domain/core"
	"gowkb/domain/phase"
	"gowkb/internal"
	"gowkb/internal/calculus"
	"gowkb/internal/errors"
	"gowkb/internal/roots"
)

// ValidityFunc builds the semiclassical validity measure for a phase:
//
//	v(x) = hbar/sqrt(2m) * |U'(x)| - (U(x) - E)^2
//
// with hbar = 1. The measure is positive only in a neighbourhood of a
// classical turning point, where the potential crosses the energy steeply
// enough that the semiclassical expansion breaks down and an Airy patch is
// required. Its zeros bracket each turning point.
func ValidityFunc(p *phase.Phase) func(float64) float64 {
	return func(x float64) float64 {
		diff := p.Potential(x) - p.Energy
		slope := calculus.Derivative(p.Potential, x)
		return math.Abs(slope)/math.Sqrt(2.0*p.Mass) - diff*diff
	}
}

// Pair brackets one turning point: validity is positive on (Left, Right) and
// the potential crosses the energy at TurningPoint inside the bracket.
type Pair struct {
	Left         float64
	Right        float64
	TurningPoint float64
}

// Group is the ordered set of turning point brackets found inside a view.
type Group struct {
	Pairs []Pair
}

// Detector locates and brackets the turning points of a phase within a view
// interval.
type Detector struct {
	precision  float64
	maxSeeds   int
	gridPoints int
	maxIters   int
	logger     *internal.Logger
}

// NewDetector creates a detector with explicit tuning knobs.
func NewDetector(precision float64, maxSeeds, gridPoints, maxIters int) *Detector {
	return &Detector{
		precision:  precision,
		maxSeeds:   maxSeeds,
		gridPoints: gridPoints,
		maxIters:   maxIters,
		logger:     internal.DefaultLogger,
	}
}

// DefaultDetector carries the tuning used by the solver pipeline.
func DefaultDetector() *Detector {
	return NewDetector(1e-9, 256, 1000, 10000)
}

// FindZeros locates the zeros of f inside view by repeated seeded deflation:
// each round asks the score grid for the most promising seed, deflates any
// zero it converges to, and stops once a round fails to converge or lands
// outside the view. Zeros closer than sqrt(precision) to one another
// collapse to a single entry.
func (d *Detector) FindZeros(f func(float64) float64, view core.Interval) []float64 {
	finder := roots.NewDeflatingFinder(f, d.precision, d.maxIters)

	for i := 0; i < d.maxSeeds; i++ {
		guess, ok := roots.MakeGuess(finder.ModifiedFunc, view, d.gridPoints)
		if !ok {
			break
		}
		z, ok := finder.NextZero(guess)
		if !ok {
			break
		}
		if !view.Contains(z) {
			break
		}
	}

	raw := finder.Zeros()
	sort.Float64s(raw)

	dedup := make([]float64, 0, len(raw))
	merge := math.Sqrt(d.precision)
	for _, z := range raw {
		if !view.Contains(z) {
			continue
		}
		if len(dedup) > 0 && z-dedup[len(dedup)-1] < merge {
			continue
		}
		dedup = append(dedup, z)
	}
	return dedup
}

// Detect finds the validity zeros of the phase inside view and groups them
// into turning point brackets. When the view clips a validity lobe, the
// missing boundary is synthesised by marching outward until the validity
// turns negative again.
func (d *Detector) Detect(p *phase.Phase, view core.Interval) (Group, error) {
	valid := ValidityFunc(p)
	zeros := d.FindZeros(valid, view)
	d.logger.Debug("[TurningPoints] validity zeros in [%v, %v]: %v", view.Lo, view.Hi, zeros)
	return d.group(p, valid, zeros, view)
}

// group classifies each zero as a rising or falling edge of a validity lobe
// and pairs the edges. A lone edge at either end of the view means the view
// cut a lobe in half; the matching edge is synthesised outside the view.
func (d *Detector) group(p *phase.Phase, valid func(float64) float64, zeros []float64, view core.Interval) (Group, error) {
	edges := make([]float64, 0, len(zeros)+2)
	edges = append(edges, zeros...)

	if len(edges) > 0 {
		if calculus.Derivative(valid, edges[0]) < 0 {
			// The first edge falls, so its rising partner lies left of
			// the view.
			left, err := d.marchOutward(valid, edges[0], -view.Width()/float64(d.gridPoints))
			if err != nil {
				return Group{}, err
			}
			d.logger.Debug("[TurningPoints] synthesised left boundary at %v", left)
			edges = append([]float64{left}, edges...)
		}
		if calculus.Derivative(valid, edges[len(edges)-1]) > 0 {
			right, err := d.marchOutward(valid, edges[len(edges)-1], view.Width()/float64(d.gridPoints))
			if err != nil {
				return Group{}, err
			}
			d.logger.Debug("[TurningPoints] synthesised right boundary at %v", right)
			edges = append(edges, right)
		}
	}

	if len(edges)%2 != 0 {
		return Group{}, errors.OddBoundaryCount(len(edges))
	}

	pairs := make([]Pair, 0, len(edges)/2)
	for i := 0; i+1 < len(edges); i += 2 {
		left, right := edges[i], edges[i+1]
		if calculus.Derivative(valid, left) < 0 || calculus.Derivative(valid, right) > 0 {
			return Group{}, errors.InvalidInput("validity boundaries are not a rising/falling pair")
		}

		mid := (left + right) / 2
		tp := roots.Newton(func(x float64) float64 {
			return p.Energy - p.Potential(x)
		}, mid, 1e-7)

		pairs = append(pairs, Pair{Left: left, Right: right, TurningPoint: tp})
	}

	return Group{Pairs: pairs}, nil
}

// marchOutward steps from a clipped edge in the given direction until the
// validity goes negative, then pins the crossing down with false position.
func (d *Detector) marchOutward(valid func(float64) float64, from, step float64) (float64, error) {
	x := from + step
	for i := 0; i < 1024; i++ {
		if valid(x) < 0 {
			return roots.RegulaFalsi(valid, x-step, x, d.precision), nil
		}
		x += step
	}
	return 0, errors.NoConvergence("validity stayed positive while marching past the view edge")
}
