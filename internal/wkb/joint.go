package wkb

import (
	"math"

	"gowkb/domain/core"
)

// Joint cross-fades two approximants over a window so the assembled
// wavefunction stays smooth where approximation regimes meet. The window
// runs from Cut to Cut+Delta; Delta's sign orients it. At Cut the joint
// returns Left, at Cut+Delta it returns Right, and outside the window it
// extends the nearer side unchanged.
type Joint struct {
	Left  Approximant
	Right Approximant
	Cut   float64
	Delta float64
}

// Window returns the blend region as a sorted interval.
func (j Joint) Window() core.Interval {
	return core.NewInterval(j.Cut, j.Cut+j.Delta)
}

// Evaluate blends the two sides with the smoothstep weight
// chi(t) = sin^2(t*pi/2), t clamped to [0, 1].
func (j Joint) Evaluate(x float64) complex128 {
	t := (x - j.Cut) / j.Delta
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	s := math.Sin(t * math.Pi / 2)
	chi := complex(s*s, 0)

	return (1-chi)*j.Left.Evaluate(x) + chi*j.Right.Evaluate(x)
}
