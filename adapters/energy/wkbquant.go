// Package energy resolves bound-state energies from the semiclassical
// quantization condition.
package energy

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"gowkb/domain/grid"
	"gowkb/internal/calculus"
	"gowkb/internal/errors"
	"gowkb/ports"
)

// Provider resolves the n-th level from the quantization condition
//
//	integral of sqrt(2m(E - U(x)))_+ dx = (n + 1/2)*pi
//
// by bisecting on E. The left side grows monotonically with E, so a doubling
// search above the potential floor always brackets the level.
type Provider struct {
	Steps         int
	ChunkSize     int
	Tolerance     float64
	MaxBisections int
}

var _ ports.EnergyProvider = Provider{}

// NewProvider returns a provider with the pipeline's default quadrature.
func NewProvider() Provider {
	return Provider{
		Steps:         20000,
		ChunkSize:     1000,
		Tolerance:     1e-6,
		MaxBisections: 200,
	}
}

// floorScan is the grid used to locate the potential minimum.
const floorScan = 2000

// NthEnergy searches bounds for the energy whose classical action matches
// level n.
func (p Provider) NthEnergy(n int, mass float64, pot ports.Potential, bounds [2]float64) (float64, error) {
	if n < 0 {
		return 0, errors.InvalidInput(fmt.Sprintf("energy level %d is negative", n))
	}
	if mass <= 0 {
		return 0, errors.InvalidInput(fmt.Sprintf("mass %v is not positive", mass))
	}

	target := (float64(n) + 0.5) * math.Pi

	samples := make([]float64, floorScan)
	for i := range samples {
		samples[i] = pot.Evaluate(grid.IndexToRange(float64(i), floorScan, bounds[0], bounds[1]))
	}
	floor, err := stats.Min(samples)
	if err != nil {
		return 0, errors.Wrap(err, "potential floor scan failed")
	}

	lo := floor
	hi := floor + 1
	for i := 0; p.action(hi, mass, pot, bounds) < target; i++ {
		if i >= 60 {
			return 0, errors.NoConvergence(
				fmt.Sprintf("action never reached level %d inside [%v, %v]", n, bounds[0], bounds[1]))
		}
		hi = floor + 2*(hi-floor)
	}

	for i := 0; i < p.MaxBisections; i++ {
		mid := (lo + hi) / 2
		a := p.action(mid, mass, pot, bounds)
		if math.Abs(a-target) < p.Tolerance {
			return mid, nil
		}
		if a < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0, errors.NoConvergence(fmt.Sprintf("bisection on level %d did not settle", n))
}

// action integrates the classical momentum over the allowed region; the
// integrand vanishes wherever the energy dips below the potential.
func (p Provider) action(e, mass float64, pot ports.Potential, bounds [2]float64) float64 {
	points := grid.EvaluateBetween(func(x float64) complex128 {
		d := 2 * mass * (e - pot.Evaluate(x))
		if d <= 0 {
			return 0
		}
		return complex(math.Sqrt(d), 0)
	}, bounds[0], bounds[1], p.Steps)
	return real(calculus.Integrate(points, p.ChunkSize))
}
