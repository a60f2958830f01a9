package wkb

import (
	"math"
	"math/cmplx"

	"gowkb/domain/phase"
	"gowkb/internal/calculus"
	"gowkb/internal/errors"
	"gowkb/internal/turning"
	"gowkb/ports"
)

// Rotation constants for deriving Bi from Ai: e^{2i*pi/3} and e^{i*pi/6}.
var (
	airyRot = complex(-0.5, math.Sqrt(3)/2)
	airyPre = complex(math.Sqrt(3)/2, 0.5)
)

// Airy patches the wavefunction across one turning point, where the
// semiclassical expansion diverges. The potential is linearised at the
// turning point x1, which turns the stationary equation into the Airy
// equation in the stretched coordinate
//
//	w(x) = cbrt(-2m*U'(x1)) * (x1 - x)
//
// and the local solution into cA*Ai(w) + cB*Bi(w).
type Airy struct {
	provider ports.AiryProvider
	scale    float64
	x1       float64
	cA       complex128
	cB       complex128
}

// NewAiry linearises the phase's potential at the bracketed turning point
// and matches the two Airy coefficients against the target approximant at
// the bracket edges by solving the 2x2 system with Cramer's rule. A
// singular system means the bracket is degenerate.
func NewAiry(provider ports.AiryProvider, p *phase.Phase, pair turning.Pair, target Approximant) (*Airy, error) {
	u1 := -2 * p.Mass * calculus.Derivative(p.Potential, pair.TurningPoint)
	a := &Airy{
		provider: provider,
		scale:    math.Cbrt(u1),
		x1:       pair.TurningPoint,
	}

	w1 := a.stretch(pair.Left)
	w2 := a.stretch(pair.Right)

	ai1, bi1 := provider.Ai(w1), a.bi(w1)
	ai2, bi2 := provider.Ai(w2), a.bi(w2)
	rhs1 := target.Evaluate(pair.Left)
	rhs2 := target.Evaluate(pair.Right)

	det := ai1*bi2 - bi1*ai2
	if cmplx.Abs(det) == 0 {
		return nil, errors.InvalidInput("airy matching system is singular at this bracket")
	}

	a.cA = (rhs1*bi2 - bi1*rhs2) / det
	a.cB = (ai1*rhs2 - rhs1*ai2) / det
	return a, nil
}

func (a *Airy) stretch(x float64) complex128 {
	return complex(a.scale*(a.x1-x), 0)
}

// bi derives the Airy function of the second kind from Ai:
//
//	Bi(z) = -i*Ai(z) + 2*e^{i*pi/6}*Ai(z*e^{2i*pi/3})
func (a *Airy) bi(z complex128) complex128 {
	return -1i*a.provider.Ai(z) + 2*airyPre*a.provider.Ai(z*airyRot)
}

// Evaluate returns the matched Airy patch value at x.
func (a *Airy) Evaluate(x float64) complex128 {
	w := a.stretch(x)
	return a.cA*a.provider.Ai(w) + a.cB*a.bi(w)
}

// Coefficients returns the matched (cA, cB) pair.
func (a *Airy) Coefficients() (complex128, complex128) {
	return a.cA, a.cB
}
