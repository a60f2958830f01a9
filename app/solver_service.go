// Package app wires the solver pipeline behind a small service facade the
// command layer talks to.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"gowkb/adapters/energy"
	"gowkb/adapters/export"
	"gowkb/adapters/potentials"
	"gowkb/adapters/specfunc"
	"gowkb/domain/core"
	"gowkb/domain/grid"
	"gowkb/internal"
	"gowkb/internal/config"
	"gowkb/internal/errors"
	"gowkb/internal/turning"
	"gowkb/internal/wkb"
	"gowkb/ports"
)

// Result is one solved bound state with its plot samples.
type Result struct {
	RunID     core.RunID
	Level     int
	Energy    float64
	Potential string
	Wave      *wkb.WaveFunction
	Samples   []grid.SampledPoint
}

// DensitySummary are descriptive statistics over the sampled probability
// density, mostly for sanity-checking a run from the command line.
type DensitySummary struct {
	Mean   float64
	Median float64
	Max    float64
	P95    float64
}

// SolverService runs the full pipeline: energy resolution, turning point
// detection, assembly, sampling and export.
type SolverService struct {
	cfg     *config.Config
	builder *wkb.Builder
	text    export.TextWriter
	excel   export.ExcelWriter
	logger  *internal.Logger
}

// NewSolverService wires a service from configuration.
func NewSolverService(cfg *config.Config) *SolverService {
	detector := turning.NewDetector(
		cfg.Numerics.Precision,
		cfg.Numerics.MaxSeeds,
		cfg.Numerics.GuessGridPoints,
		cfg.Numerics.NewtonMaxIters,
	)
	builder := wkb.NewBuilder(
		specfunc.NewGonum(),
		energy.NewProvider(),
		detector,
		wkb.Options{
			IntegSteps:         cfg.Numerics.IntegSteps,
			ChunkSize:          cfg.Numerics.TrapezoidsPerChunk,
			TransitionFraction: cfg.Numerics.TransitionFraction,
			RenormPoints:       cfg.Numerics.IntegSteps,
		},
	)
	return &SolverService{
		cfg:     cfg,
		builder: builder,
		logger:  internal.DefaultLogger,
	}
}

// Potential resolves the configured potential from the catalog.
func (s *SolverService) Potential() (ports.Potential, error) {
	return potentials.ByName(s.cfg.Physics.Potential)
}

// Solve assembles the renormalized wavefunction for one level and samples it
// across the view.
func (s *SolverService) Solve(level int) (*Result, error) {
	pot, err := s.Potential()
	if err != nil {
		return nil, err
	}

	wave, err := s.builder.Build(wkb.Request{
		Mass:       s.cfg.Physics.Mass,
		Level:      level,
		Potential:  pot,
		ApproxInf:  core.NewInterval(s.cfg.Physics.ApproxInf[0], s.cfg.Physics.ApproxInf[1]),
		ViewFactor: s.cfg.Physics.ViewFactor,
		Scaling:    wkb.Scaling{Kind: wkb.ScaleRenormalize},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "solving level %d failed", level)
	}

	result := &Result{
		RunID:     core.NewRunID(),
		Level:     level,
		Energy:    wave.Energy(),
		Potential: pot.Name(),
		Wave:      wave,
		Samples:   samplePoints(wave.Evaluate, wave.View(), s.cfg.Numerics.PlotPoints),
	}
	s.logger.Info("[Solver] run %s: level %d, E = %v, %d samples",
		result.RunID, level, result.Energy, len(result.Samples))
	return result, nil
}

// Export writes the result in the requested format ("text", "excel" or
// "both") and returns the written paths.
func (s *SolverService) Export(result *Result, format string) ([]string, error) {
	if err := os.MkdirAll(s.cfg.Paths.OutputDir, 0o755); err != nil {
		return nil, errors.ExportError("output dir", err)
	}

	sheet := export.Sheet{
		RunID:     result.RunID.String(),
		Potential: result.Potential,
		Level:     result.Level,
		Energy:    result.Energy,
		Samples:   result.Samples,
	}
	stem := filepath.Join(s.cfg.Paths.OutputDir, fmt.Sprintf("wave_n%d_%.8s", result.Level, result.RunID))

	var paths []string
	switch format {
	case "text":
		paths = append(paths, stem+".dat")
		if err := s.text.Write(paths[0], sheet); err != nil {
			return nil, err
		}
	case "excel":
		paths = append(paths, stem+".xlsx")
		if err := s.excel.Write(paths[0], sheet); err != nil {
			return nil, err
		}
	case "both":
		paths = append(paths, stem+".dat", stem+".xlsx")
		if err := s.text.Write(paths[0], sheet); err != nil {
			return nil, err
		}
		if err := s.excel.Write(paths[1], sheet); err != nil {
			return nil, err
		}
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("unknown export format %q, want text, excel or both", format))
	}

	for _, p := range paths {
		s.logger.Info("[Solver] wrote %s", p)
	}
	return paths, nil
}

// Summarize computes density statistics over a result's samples.
func (s *SolverService) Summarize(result *Result) (DensitySummary, error) {
	densities := make([]float64, len(result.Samples))
	for i, pt := range result.Samples {
		densities[i] = real(pt.Y)*real(pt.Y) + imag(pt.Y)*imag(pt.Y)
	}

	mean, err := stats.Mean(densities)
	if err != nil {
		return DensitySummary{}, errors.Wrap(err, "density summary failed")
	}
	median, err := stats.Median(densities)
	if err != nil {
		return DensitySummary{}, errors.Wrap(err, "density summary failed")
	}
	max, err := stats.Max(densities)
	if err != nil {
		return DensitySummary{}, errors.Wrap(err, "density summary failed")
	}
	p95, err := stats.Percentile(densities, 95)
	if err != nil {
		return DensitySummary{}, errors.Wrap(err, "density summary failed")
	}

	return DensitySummary{Mean: mean, Median: median, Max: max, P95: p95}, nil
}

// samplePoints fills an n-point half-open scan of [iv.Lo, iv.Hi) in
// parallel. The upper endpoint is excluded so sampling never leaves the
// assembled coverage.
func samplePoints(f grid.ComplexFunc, iv core.Interval, n int) []grid.SampledPoint {
	if n < 1 {
		return nil
	}

	points := make([]grid.SampledPoint, n)
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
				x := grid.IndexToRange(float64(i), float64(n), iv.Lo, iv.Hi)
				points[i] = grid.SampledPoint{X: x, Y: f(x)}
			}
			return nil
		})
	}
	_ = g.Wait()

	return points
}
