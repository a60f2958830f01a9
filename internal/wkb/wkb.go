package wkb

import (
	"math"
	"math/cmplx"

	"gowkb/domain/grid"
	"gowkb/domain/phase"
	"gowkb/internal/calculus"
)

// Approximant is a local approximation of the wavefunction, evaluable at any
// position inside the region it was built for.
type Approximant interface {
	Evaluate(x float64) complex128
}

// Wkb is the semiclassical approximant anchored at a turning point. Its
// phase integral
//
//	Phi(x) = integral from anchor to x of zeta(t) dt
//
// accumulates the complex momentum, so the imaginary part oscillates in the
// classically allowed region and the real part drives exponential decay in
// the forbidden one. The connection angle theta carries the pi/4 Maslov
// shift whose sign depends on which side of the anchor is forbidden.
type Wkb struct {
	phase  *phase.Phase
	anchor float64
	theta  float64
	c      float64
	steps  int
	chunk  int
}

// NewWkb creates an approximant with unit amplitude anchored at the given
// turning point. steps and chunk control the quadrature of the phase
// integral.
func NewWkb(p *phase.Phase, anchor, theta float64, steps, chunk int) *Wkb {
	return &Wkb{
		phase:  p,
		anchor: anchor,
		theta:  theta,
		c:      1,
		steps:  steps,
		chunk:  chunk,
	}
}

// WithC returns a copy with amplitude c. Negative amplitudes encode the
// parity flip between adjacent allowed regions.
func (w *Wkb) WithC(c float64) *Wkb {
	cp := *w
	cp.c = c
	return &cp
}

// C returns the amplitude.
func (w *Wkb) C() float64 { return w.c }

// Anchor returns the turning point the phase integral is measured from.
func (w *Wkb) Anchor() float64 { return w.anchor }

// PhaseIntegral returns Phi(x), the accumulated complex momentum between the
// anchor and x.
func (w *Wkb) PhaseIntegral(x float64) complex128 {
	points := grid.EvaluateBetween(w.phase.Momentum, w.anchor, x, w.steps)
	return calculus.Integrate(points, w.chunk)
}

// Evaluate returns the semiclassical wavefunction value
//
//	psi(x) = (c/2) * (e^{i(Im Phi - theta)} + e^{-i(Im Phi - theta)})
//	       * e^{-|Re Phi|} / sqrt(zeta)
//
// which reduces to c*cos(Im Phi - theta)/sqrt(zeta) in the allowed region
// and to a decaying exponential in the forbidden one. Taking |Re Phi| keeps
// the envelope bounded on both sides of the anchor.
func (w *Wkb) Evaluate(x float64) complex128 {
	zeta := w.phase.Momentum(x)
	if zeta == 0 {
		// exactly on a classical turning point
		zeta = complex(1e-12, 0)
	}

	phi := w.PhaseIntegral(x)
	arg := imag(phi) - w.theta

	osc := complex(w.c/2, 0) * (cmplx.Exp(complex(0, arg)) + cmplx.Exp(complex(0, -arg)))
	envelope := complex(math.Exp(-math.Abs(real(phi))), 0)

	return osc * envelope / cmplx.Sqrt(zeta)
}
