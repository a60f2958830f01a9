package app

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gowkb/domain/grid"
	"gowkb/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Physics: config.PhysicsConfig{
			Mass:        1,
			EnergyLevel: 2,
			Potential:   "harmonic",
			ApproxInf:   [2]float64{-20, 20},
			ViewFactor:  0.5,
		},
		Numerics: config.NumericsConfig{
			IntegSteps:         1000,
			TrapezoidsPerChunk: 250,
			PlotPoints:         2000,
			TransitionFraction: 0.5,
			Precision:          1e-9,
			MaxSeeds:           16,
			GuessGridPoints:    500,
			NewtonMaxIters:     20000,
		},
		Paths: config.PathConfig{OutputDir: t.TempDir()},
	}
}

func TestSolveHarmonic(t *testing.T) {
	svc := NewSolverService(testConfig(t))

	result, err := svc.Solve(2)
	require.NoError(t, err)

	assert.False(t, result.RunID.IsEmpty())
	assert.InDelta(t, 2.5, result.Energy, 0.02)
	require.Len(t, result.Samples, 2000)

	view := result.Wave.View()
	for _, pt := range []grid.SampledPoint{result.Samples[0], result.Samples[len(result.Samples)-1]} {
		assert.GreaterOrEqual(t, pt.X, view.Lo)
		assert.Less(t, pt.X, view.Hi)
	}
}

func TestExportFormats(t *testing.T) {
	svc := NewSolverService(testConfig(t))
	result, err := svc.Solve(0)
	require.NoError(t, err)

	paths, err := svc.Export(result, "text")
	require.NoError(t, err)
	require.Len(t, paths, 1)
	_, err = os.Stat(paths[0])
	assert.NoError(t, err)

	_, err = svc.Export(result, "csv")
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	svc := NewSolverService(testConfig(t))
	result := &Result{
		Samples: []grid.SampledPoint{
			{X: -1, Y: 0},
			{X: 0, Y: 1},
			{X: 1, Y: 2},
		},
	}

	sum, err := svc.Summarize(result)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/3.0, sum.Mean, 1e-12)
	assert.InDelta(t, 1.0, sum.Median, 1e-12)
	assert.InDelta(t, 4.0, sum.Max, 1e-12)
	assert.LessOrEqual(t, sum.P95, sum.Max)
	assert.GreaterOrEqual(t, sum.P95, sum.Median)
}

func TestSuperpose(t *testing.T) {
	svc := NewSolverService(testConfig(t))

	sp, err := svc.Superpose([]Component{
		{Level: 0, Weight: complex(1/math.Sqrt2, 0)},
		{Level: 1, Weight: complex(1/math.Sqrt2, 0)},
	}, true)
	require.NoError(t, err)

	energies := sp.Energies()
	require.Len(t, energies, 2)
	assert.InDelta(t, 0.5, energies[0], 0.02)
	assert.InDelta(t, 1.5, energies[1], 0.02)

	assert.Positive(t, real(sp.scaling))
	assert.NotPanics(t, func() {
		sp.Evaluate(0.5)
	})

	samples := svc.SampleSuperposition(sp)
	assert.Len(t, samples, 2000)
}

func TestSuperposeRejectsEmpty(t *testing.T) {
	svc := NewSolverService(testConfig(t))
	_, err := svc.Superpose(nil, false)
	assert.Error(t, err)
}
