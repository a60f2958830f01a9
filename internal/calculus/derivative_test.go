package calculus

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"

	"gowkb/domain/grid"
)

func TestDerivativeSquare(t *testing.T) {
	f := func(x float64) float64 { return x * x }

	for i := 0; i < 100; i++ {
		x := grid.IndexToRange(float64(i), 100, -20, 20)
		got := Derivative(f, x)
		assert.True(t, scalar.EqualWithinAbsOrRel(got, 2*x, 1e-4, 1e-4),
			"d/dx x^2 at %v: got %v want %v", x, got, 2*x)
	}
}

func TestDerivativeExp(t *testing.T) {
	for i := 0; i < 100; i++ {
		x := grid.IndexToRange(float64(i), 100, -20, 20)
		got := Derivative(math.Exp, x)
		assert.True(t, scalar.EqualWithinAbsOrRel(got, math.Exp(x), 1e-4, 1e-4),
			"d/dx e^x at %v: got %v want %v", x, got, math.Exp(x))
	}
}

func TestDerivativeComplexRotator(t *testing.T) {
	f := func(x float64) complex128 { return cmplx.Exp(complex(0, x)) }

	for i := 0; i < 50; i++ {
		x := grid.IndexToRange(float64(i), 50, -6, 6)
		got := Derivative(f, x)
		want := 1i * f(x)
		assert.InDelta(t, real(want), real(got), 1e-4)
		assert.InDelta(t, imag(want), imag(got), 1e-4)
	}
}
