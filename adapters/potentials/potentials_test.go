package potentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarmonic(t *testing.T) {
	h := Harmonic{Omega: 2}
	assert.Equal(t, 0.0, h.Evaluate(0))
	assert.Equal(t, 2.0, h.Evaluate(1))
	assert.Equal(t, h.Evaluate(3), h.Evaluate(-3))
}

func TestSquareWallsAreSteep(t *testing.T) {
	s := Square{HalfWidth: 1}
	assert.Less(t, s.Evaluate(0.5), 1e-5)
	assert.Equal(t, 1.0, s.Evaluate(1))
	assert.Greater(t, s.Evaluate(1.5), 3000.0)
}

func TestDoubleWellShape(t *testing.T) {
	d := DoubleWell{Height: 5, HalfSeparation: 2}
	assert.Equal(t, 5.0, d.Evaluate(0))
	assert.Equal(t, 0.0, d.Evaluate(2))
	assert.Equal(t, 0.0, d.Evaluate(-2))
	assert.Greater(t, d.Evaluate(4), 5.0)
}

func TestByName(t *testing.T) {
	for _, name := range []string{"harmonic", "Square", " doublewell "} {
		p, err := ByName(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, p.Name())
	}

	_, err := ByName("morse")
	assert.Error(t, err)
}
