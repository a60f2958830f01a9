package grid

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SampledPoint pairs a grid position with a sampled complex value.
// Sequences of sampled points are always ordered by position.
type SampledPoint struct {
	X float64
	Y complex128
}

// ComplexFunc is a scalar function of a real argument with a complex value.
type ComplexFunc func(x float64) complex128

// RealFunc is a scalar real-valued function of a real argument.
type RealFunc func(x float64) float64

// IndexToRange maps index i of an n-point scan onto the half-open
// interval [start, end).
func IndexToRange(i, n, start, end float64) float64 {
	return start + i*(end-start)/n
}

// EvaluateBetween samples f on a uniform n-point grid spanning [a, b] with
// both endpoints included. The grid is filled by parallel workers; positions
// are computed from the index so the result is independent of scheduling.
func EvaluateBetween(f ComplexFunc, a, b float64, n int) []SampledPoint {
	if n < 2 {
		if n == 1 {
			return []SampledPoint{{X: a, Y: f(a)}}
		}
		return nil
	}

	points := make([]SampledPoint, n)
	step := (b - a) / float64(n-1)

	workers := runtime.GOMAXPROCS(0)
	block := (n + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * block
		hi := lo + block
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				x := a + float64(i)*step
				points[i] = SampledPoint{X: x, Y: f(x)}
			}
			return nil
		})
	}
	// workers are pure sampling loops and never fail
	_ = g.Wait()

	return points
}
