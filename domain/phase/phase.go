package phase

import (
	"math"
)

// DefaultPhaseOff is the standard WKB connection offset of pi/4.
const DefaultPhaseOff = math.Pi / 4

// Phase captures the physical configuration shared by every approximant
// derived from it: the eigen-energy, the particle mass, the potential
// landscape, and the phase offset used when matching segments. A Phase is
// never mutated after construction; approximants hold read-only references.
type Phase struct {
	Energy    float64
	Mass      float64
	Potential func(x float64) float64
	PhaseOff  float64
}

// New creates a phase with the default connection offset.
func New(energy, mass float64, potential func(float64) float64) *Phase {
	return &Phase{
		Energy:    energy,
		Mass:      mass,
		Potential: potential,
		PhaseOff:  DefaultPhaseOff,
	}
}

// WithPhaseOff returns a copy carrying a different matching offset.
func (p *Phase) WithPhaseOff(off float64) *Phase {
	return &Phase{
		Energy:    p.Energy,
		Mass:      p.Mass,
		Potential: p.Potential,
		PhaseOff:  off,
	}
}

// Momentum returns the complex local momentum sqrt(2m(U(x)-E)). The value is
// real in the classically forbidden region and imaginary in the allowed
// region, so exponentials of its integral decay or oscillate accordingly.
func (p *Phase) Momentum(x float64) complex128 {
	d := 2 * p.Mass * (p.Potential(x) - p.Energy)
	if d >= 0 {
		return complex(math.Sqrt(d), 0)
	}
	return complex(0, math.Sqrt(-d))
}
