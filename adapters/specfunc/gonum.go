// Package specfunc adapts special-function implementations to the solver's
// provider ports.
package specfunc

import (
	"math"

	"gonum.org/v1/gonum/mathext"

	"gowkb/ports"
)

// Gonum provides Airy functions backed by gonum's mathext package.
type Gonum struct{}

var _ ports.AiryProvider = Gonum{}

// NewGonum returns the gonum-backed provider.
func NewGonum() Gonum { return Gonum{} }

// Ai returns the Airy function of the first kind at z.
func (Gonum) Ai(z complex128) complex128 {
	return mathext.AiryAi(z)
}

// Rotation constants of the connection formula: e^{2i*pi/3} and e^{i*pi/6}.
var (
	biRot = complex(-0.5, math.Sqrt(3)/2)
	biPre = complex(math.Sqrt(3)/2, 0.5)
)

// Bi returns the Airy function of the second kind, derived from Ai through
//
//	Bi(z) = -i*Ai(z) + 2*e^{i*pi/6}*Ai(z*e^{2i*pi/3})
func (g Gonum) Bi(z complex128) complex128 {
	return -1i*g.Ai(z) + 2*biPre*g.Ai(z*biRot)
}
