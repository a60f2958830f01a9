package turning

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gowkb/domain/core"
	"gowkb/domain/phase"
)

func harmonicPhase() *phase.Phase {
	return phase.New(2.5, 1.0, func(x float64) float64 { return 0.5 * x * x })
}

func TestValidityFuncSign(t *testing.T) {
	valid := ValidityFunc(harmonicPhase())

	// Negative deep inside the well and far outside it, positive in a
	// neighbourhood of the classical turning points at +-sqrt(5).
	assert.Negative(t, valid(0.0))
	assert.Negative(t, valid(10.0))
	assert.Positive(t, valid(math.Sqrt(5)))
	assert.Positive(t, valid(-math.Sqrt(5)))
}

func TestDetectHarmonic(t *testing.T) {
	det := NewDetector(1e-9, 32, 800, 20000)
	group, err := det.Detect(harmonicPhase(), core.NewInterval(-4, 4))
	require.NoError(t, err)
	require.Len(t, group.Pairs, 2)

	tp := math.Sqrt(5)
	assert.InDelta(t, -tp, group.Pairs[0].TurningPoint, 1e-3)
	assert.InDelta(t, tp, group.Pairs[1].TurningPoint, 1e-3)

	for _, pair := range group.Pairs {
		assert.Less(t, pair.Left, pair.TurningPoint)
		assert.Greater(t, pair.Right, pair.TurningPoint)
	}
}

func TestDetectSynthesisesClippedBoundary(t *testing.T) {
	// The right validity lobe straddles the view edge at 2.2, so its outer
	// boundary has to be recovered by marching past the edge.
	det := NewDetector(1e-9, 32, 800, 20000)
	group, err := det.Detect(harmonicPhase(), core.NewInterval(-4, 2.2))
	require.NoError(t, err)
	require.Len(t, group.Pairs, 2)

	right := group.Pairs[1]
	assert.InDelta(t, math.Sqrt(5), right.TurningPoint, 1e-3)
	assert.Greater(t, right.Right, 2.2)
}

func TestDetectDoubleWell(t *testing.T) {
	// U = 5*((x/2)^2 - 1)^2 at E = 2.5 sits below the central barrier, so
	// each well contributes two turning points: x = +-2*sqrt(1 +- 1/sqrt(2)).
	p := phase.New(2.5, 1.0, func(x float64) float64 {
		u := x / 2
		v := u*u - 1
		return 5 * v * v
	})

	det := NewDetector(1e-9, 32, 800, 20000)
	group, err := det.Detect(p, core.NewInterval(-4, 4))
	require.NoError(t, err)
	require.Len(t, group.Pairs, 4)

	inner := 2 * math.Sqrt(1-1/math.Sqrt2)
	outer := 2 * math.Sqrt(1+1/math.Sqrt2)
	want := []float64{-outer, -inner, inner, outer}
	for i, pair := range group.Pairs {
		assert.InDelta(t, want[i], pair.TurningPoint, 1e-2, "pair %d", i)
		assert.Less(t, pair.Left, pair.TurningPoint, "pair %d", i)
		assert.Greater(t, pair.Right, pair.TurningPoint, "pair %d", i)
	}
}

func TestFindZerosDeduplicates(t *testing.T) {
	det := NewDetector(1e-9, 8, 500, 20000)
	f := func(x float64) float64 { return math.Sin(x) }

	zeros := det.FindZeros(f, core.NewInterval(-1, 7))
	require.NotEmpty(t, zeros)
	for i := 1; i < len(zeros); i++ {
		assert.Greater(t, zeros[i]-zeros[i-1], math.Sqrt(1e-9))
	}
}
