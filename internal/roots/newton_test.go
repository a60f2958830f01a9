package roots

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewtonSquare(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	assert.InDelta(t, math.Sqrt2, Newton(f, 1.0, 1e-9), 1e-7)
	assert.InDelta(t, -math.Sqrt2, Newton(f, -1.0, 1e-9), 1e-7)
}

func TestNewtonCube(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 27 }

	assert.InDelta(t, 3.0, Newton(f, 5.0, 1e-9), 1e-7)
}

func TestNewtonPanicsOnZeroDerivative(t *testing.T) {
	f := func(x float64) float64 { return x*x - 1 }

	assert.Panics(t, func() {
		Newton(f, 0.0, 1e-9)
	})
}

func TestNewtonBoundedConverges(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	z, ok := NewtonBounded(f, 1.0, 1e-9, 100)
	assert.True(t, ok)
	assert.InDelta(t, math.Sqrt2, z, 1e-7)
}

func TestNewtonBoundedGivesUp(t *testing.T) {
	// e^x has no zero; the iteration walks off to -inf forever.
	_, ok := NewtonBounded(math.Exp, 0.0, 1e-9, 50)
	assert.False(t, ok)
}

func TestNewtonBoundedZeroDerivative(t *testing.T) {
	f := func(x float64) float64 { return x*x - 1 }

	_, ok := NewtonBounded(f, 0.0, 1e-9, 100)
	assert.False(t, ok)
}

func TestBracketSignChange(t *testing.T) {
	f := func(x float64) float64 { return x - 5 }

	a, b := BracketSignChange(f, 0.0, 0.3)
	assert.LessOrEqual(t, f(a)*f(b), 0.0)
	assert.InDelta(t, 5.0, a, 0.3)
	assert.InDelta(t, 5.0, b, 0.3)
}

func TestRegulaFalsi(t *testing.T) {
	f := func(x float64) float64 { return x * (x - 2) * (x + 2) }

	// The seed sits just left of the origin; the bracket walk crosses the
	// zero at x = 0 and false position pins it down.
	z := BracketThenRefine(f, -1e-3, 1e-2, 1e-9)
	assert.InDelta(t, 0.0, z, 1e-6)
}

func TestRegulaFalsiSwapsEndpoints(t *testing.T) {
	f := func(x float64) float64 { return x - 1 }

	assert.InDelta(t, 1.0, RegulaFalsi(f, 3.0, 0.0, 1e-12), 1e-9)
}
