package calculus

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"gowkb/domain/grid"
)

func square(x float64) complex128 {
	return complex(x*x, 0)
}

func TestIntegrateSquare(t *testing.T) {
	a, b := -10.0, 25.0
	points := grid.EvaluateBetween(square, a, b, 64000)
	got := real(Integrate(points, 1000))
	want := (b*b*b - a*a*a) / 3

	assert.True(t, scalar.EqualWithinRel(got, want, 1e-5),
		"integral of x^2 over [%v, %v]: got %v want %v", a, b, got, want)
}

func TestIntegrateDegenerateInterval(t *testing.T) {
	points := grid.EvaluateBetween(square, 3.0, 3.0, 100)
	assert.Equal(t, complex128(0), Integrate(points, 10))
}

func TestIntegrateShortSequences(t *testing.T) {
	assert.Equal(t, complex128(0), Integrate(nil, 10))
	assert.Equal(t, complex128(0), Integrate([]grid.SampledPoint{{X: 1, Y: 2}}, 10))
}

func TestIntegrateChunkSizeInsensitivity(t *testing.T) {
	points := grid.EvaluateBetween(func(x float64) complex128 {
		return complex(math.Sin(x), math.Cos(x))
	}, 0, 7, 4001)

	reference := Integrate(points, len(points))
	for _, chunk := range []int{1, 3, 7, 100, 1000, 4001, 9000} {
		got := Integrate(points, chunk)
		assert.InDelta(t, real(reference), real(got), 1e-10, "chunk %d", chunk)
		assert.InDelta(t, imag(reference), imag(got), 1e-10, "chunk %d", chunk)
	}
}

func TestIntegrateDescendingGridIsSigned(t *testing.T) {
	forward := Integrate(grid.EvaluateBetween(square, 0, 2, 2001), 100)
	backward := Integrate(grid.EvaluateBetween(square, 2, 0, 2001), 100)
	assert.InDelta(t, real(forward), -real(backward), 1e-10)
}

func TestEvaluateBetweenExactGrid(t *testing.T) {
	points := grid.EvaluateBetween(square, -2, 2, 5)
	require.Len(t, points, 5)

	want := []grid.SampledPoint{
		{X: -2, Y: 4},
		{X: -1, Y: 1},
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 2, Y: 4},
	}
	assert.Equal(t, want, points)
}
