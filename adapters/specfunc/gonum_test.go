package specfunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAiKnownValues(t *testing.T) {
	prov := NewGonum()

	// Abramowitz & Stegun 10.4
	assert.InDelta(t, 0.3550280538878172, real(prov.Ai(0)), 1e-10)
	assert.InDelta(t, 0.0, imag(prov.Ai(0)), 1e-10)
	assert.InDelta(t, 0.1352924163128814, real(prov.Ai(1)), 1e-10)
}

func TestBiKnownValues(t *testing.T) {
	prov := NewGonum()

	assert.InDelta(t, 0.6149266274460007, real(prov.Bi(0)), 1e-10)
	assert.InDelta(t, 0.0, imag(prov.Bi(0)), 1e-10)
	assert.InDelta(t, 1.2074235949528713, real(prov.Bi(1)), 1e-10)
}

func TestAiDecaysOnPositiveAxis(t *testing.T) {
	prov := NewGonum()

	prev := real(prov.Ai(0))
	for _, x := range []float64{1, 2, 3, 4, 5} {
		cur := real(prov.Ai(complex(x, 0)))
		assert.Positive(t, cur)
		assert.Less(t, cur, prev)
		prev = cur
	}
}
