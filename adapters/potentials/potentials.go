// Package potentials carries the built-in potential landscapes the solver
// can be pointed at by name.
package potentials

import (
	"fmt"
	"math"
	"strings"

	"gowkb/internal/errors"
	"gowkb/ports"
)

// Harmonic is the oscillator well U(x) = m*omega^2*x^2/2 with m folded into
// the solver's mass parameter, so U(x) = omega^2*x^2/2 here.
type Harmonic struct {
	Omega float64
}

func (h Harmonic) Evaluate(x float64) float64 {
	return 0.5 * h.Omega * h.Omega * x * x
}

func (h Harmonic) Name() string {
	return fmt.Sprintf("harmonic(omega=%g)", h.Omega)
}

// Square approximates an infinite square well of half-width a with the
// smooth steep wall (x/a)^20, which keeps the potential differentiable for
// the turning point machinery.
type Square struct {
	HalfWidth float64
}

func (s Square) Evaluate(x float64) float64 {
	return math.Pow(x/s.HalfWidth, 20)
}

func (s Square) Name() string {
	return fmt.Sprintf("square(a=%g)", s.HalfWidth)
}

// DoubleWell is the symmetric quartic U(x) = h*((x/s)^2 - 1)^2 with barrier
// height h at the origin and minima at +-s.
type DoubleWell struct {
	Height         float64
	HalfSeparation float64
}

func (d DoubleWell) Evaluate(x float64) float64 {
	u := x / d.HalfSeparation
	v := u*u - 1
	return d.Height * v * v
}

func (d DoubleWell) Name() string {
	return fmt.Sprintf("doublewell(h=%g,s=%g)", d.Height, d.HalfSeparation)
}

// ByName resolves a catalog potential from its configuration name.
func ByName(name string) (ports.Potential, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "harmonic":
		return Harmonic{Omega: 1}, nil
	case "square":
		return Square{HalfWidth: 1}, nil
	case "doublewell":
		return DoubleWell{Height: 5, HalfSeparation: 2}, nil
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("unknown potential %q, want harmonic, square or doublewell", name))
	}
}
