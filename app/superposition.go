package app

import (
	"math"

	"golang.org/x/sync/errgroup"

	"gowkb/domain/core"
	"gowkb/domain/grid"
	"gowkb/internal/calculus"
	"gowkb/internal/errors"
	"gowkb/internal/wkb"
)

// Component is one weighted level of a superposed state.
type Component struct {
	Level  int
	Weight complex128
}

// Superposition is a weighted sum of solved bound states, evaluable like a
// single wavefunction over the shared range.
type Superposition struct {
	components []Component
	waves      []*wkb.WaveFunction
	rng        core.Interval
	view       core.Interval
	scaling    complex128
}

// Evaluate returns the weighted sum at x.
func (sp *Superposition) Evaluate(x float64) complex128 {
	var sum complex128
	for i, w := range sp.waves {
		sum += sp.components[i].Weight * w.Evaluate(x)
	}
	return sp.scaling * sum
}

// Range returns the interval every component covers.
func (sp *Superposition) Range() core.Interval { return sp.rng }

// View returns the intersection of the component views.
func (sp *Superposition) View() core.Interval { return sp.view }

// Energies lists the component energies in component order.
func (sp *Superposition) Energies() []float64 {
	out := make([]float64, len(sp.waves))
	for i, w := range sp.waves {
		out[i] = w.Energy()
	}
	return out
}

// Superpose solves every component level concurrently and combines them.
// Each component is renormalized before weighting; with renormalize set the
// combined density is rescaled to integrate to one as well.
func (s *SolverService) Superpose(components []Component, renormalize bool) (*Superposition, error) {
	if len(components) == 0 {
		return nil, errors.InvalidInput("superposition needs at least one component")
	}

	pot, err := s.Potential()
	if err != nil {
		return nil, err
	}

	waves := make([]*wkb.WaveFunction, len(components))
	var g errgroup.Group
	for i, comp := range components {
		i, comp := i, comp
		g.Go(func() error {
			wave, err := s.builder.Build(wkb.Request{
				Mass:       s.cfg.Physics.Mass,
				Level:      comp.Level,
				Potential:  pot,
				ApproxInf:  core.NewInterval(s.cfg.Physics.ApproxInf[0], s.cfg.Physics.ApproxInf[1]),
				ViewFactor: s.cfg.Physics.ViewFactor,
				Scaling:    wkb.Scaling{Kind: wkb.ScaleRenormalize},
			})
			if err != nil {
				return errors.Wrapf(err, "superposition component n=%d failed", comp.Level)
			}
			waves[i] = wave
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rng := waves[0].Range()
	view := waves[0].View()
	for _, w := range waves[1:] {
		rng = core.NewInterval(math.Max(rng.Lo, w.Range().Lo), math.Min(rng.Hi, w.Range().Hi))
		view = core.NewInterval(math.Max(view.Lo, w.View().Lo), math.Min(view.Hi, w.View().Hi))
	}

	sp := &Superposition{
		components: components,
		waves:      waves,
		rng:        rng,
		view:       view,
		scaling:    1,
	}
	if renormalize {
		sp.scaling = s.superpositionFactor(sp)
	}
	s.logger.Info("[Solver] superposed %d levels over [%v, %v]", len(components), rng.Lo, rng.Hi)
	return sp, nil
}

// SampleSuperposition scans the superposed state across its shared view.
func (s *SolverService) SampleSuperposition(sp *Superposition) []grid.SampledPoint {
	return samplePoints(sp.Evaluate, sp.view, s.cfg.Numerics.PlotPoints)
}

func (s *SolverService) superpositionFactor(sp *Superposition) complex128 {
	pad := sp.rng.Width() * 1e-12
	points := grid.EvaluateBetween(func(x float64) complex128 {
		v := sp.Evaluate(x)
		return complex(real(v)*real(v)+imag(v)*imag(v), 0)
	}, sp.rng.Lo, sp.rng.Hi-pad, s.cfg.Numerics.IntegSteps)
	area := real(calculus.Integrate(points, s.cfg.Numerics.TrapezoidsPerChunk))

	if area <= 0 || math.IsNaN(area) {
		s.logger.Warn("[Solver] superposition area is not positive, keeping raw amplitude")
		return 1
	}
	return complex(1/math.Sqrt(area), 0)
}
