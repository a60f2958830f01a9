package calculus

import (
	"golang.org/x/sync/errgroup"

	"gowkb/domain/grid"
)

// Integrate approximates the definite integral of an ordered sampled
// sequence with the composite trapezoidal rule. The sequence is split into
// contiguous chunks of chunkSize points whose local sums are computed in
// parallel; partial sums are then reduced in index order and the panels
// crossing each chunk boundary are added exactly once, sequentially, so the
// result matches the plain composite rule for any chunk size. Sequences of
// fewer than two points integrate to zero.
//
// The spacing is taken from the positions themselves, so a descending grid
// yields the signed integral.
func Integrate(points []grid.SampledPoint, chunkSize int) complex128 {
	if len(points) < 2 {
		return 0
	}
	if chunkSize < 1 {
		chunkSize = 1
	}

	numChunks := (len(points) + chunkSize - 1) / chunkSize
	partial := make([]complex128, numChunks)

	var g errgroup.Group
	for c := 0; c < numChunks; c++ {
		lo := c * chunkSize
		hi := lo + chunkSize
		if hi > len(points) {
			hi = len(points)
		}
		c := c
		g.Go(func() error {
			var sum complex128
			for i := lo; i+1 < hi; i++ {
				sum += panel(points[i], points[i+1])
			}
			partial[c] = sum
			return nil
		})
	}
	// workers are pure arithmetic and never fail
	_ = g.Wait()

	var total complex128
	for c := 0; c < numChunks; c++ {
		total += partial[c]
	}
	// stitch the cross-chunk panels in index order
	for c := 1; c < numChunks; c++ {
		boundary := c * chunkSize
		total += panel(points[boundary-1], points[boundary])
	}
	return total
}

func panel(p, q grid.SampledPoint) complex128 {
	return complex((q.X-p.X)/2, 0) * (p.Y + q.Y)
}
