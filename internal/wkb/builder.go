package wkb

import (
	"math"

	"gowkb/domain/core"
	"gowkb/domain/grid"
	"gowkb/domain/phase"
	"gowkb/internal"
	"gowkb/internal/calculus"
	"gowkb/internal/roots"
	"gowkb/internal/turning"
	"gowkb/ports"
)

// ScalingKind selects how the assembled wavefunction is scaled.
type ScalingKind int

const (
	// ScaleNone leaves the raw assembled amplitude untouched.
	ScaleNone ScalingKind = iota
	// ScaleMul multiplies by a fixed factor.
	ScaleMul
	// ScaleRenormalize scales so the probability density integrates to one
	// over the assembled range.
	ScaleRenormalize
)

// Scaling pairs a kind with its factor; Factor is only read for ScaleMul.
type Scaling struct {
	Kind   ScalingKind
	Factor complex128
}

// Options are the numerical knobs of the assembly pipeline.
type Options struct {
	IntegSteps         int
	ChunkSize          int
	TransitionFraction float64
	RenormPoints       int
}

// DefaultOptions returns the tuning used by the solver pipeline.
func DefaultOptions() Options {
	return Options{
		IntegSteps:         64000,
		ChunkSize:          1000,
		TransitionFraction: 0.5,
		RenormPoints:       64000,
	}
}

// Request describes one wavefunction to assemble.
type Request struct {
	Mass       float64
	Level      int
	Potential  ports.Potential
	ApproxInf  core.Interval
	ViewFactor float64
	Scaling    Scaling
}

// Builder assembles bound-state wavefunctions: it resolves the eigen-energy,
// brackets the turning points, patches each with an Airy function matched to
// the semiclassical segments, and stitches everything into a WaveFunction.
type Builder struct {
	airy     ports.AiryProvider
	energy   ports.EnergyProvider
	detector *turning.Detector
	opts     Options
	logger   *internal.Logger
}

// NewBuilder wires a builder from its providers.
func NewBuilder(airy ports.AiryProvider, energy ports.EnergyProvider, detector *turning.Detector, opts Options) *Builder {
	return &Builder{
		airy:     airy,
		energy:   energy,
		detector: detector,
		opts:     opts,
		logger:   internal.DefaultLogger,
	}
}

// Build resolves the requested level's energy and assembles its
// wavefunction.
func (b *Builder) Build(req Request) (*WaveFunction, error) {
	energy, err := b.energy.NthEnergy(req.Level, req.Mass, req.Potential,
		[2]float64{req.ApproxInf.Lo, req.ApproxInf.Hi})
	if err != nil {
		return nil, err
	}
	b.logger.Info("[Builder] level %d of %s: E = %v", req.Level, req.Potential.Name(), energy)

	p := phase.New(energy, req.Mass, req.Potential.Evaluate)
	return b.BuildForPhase(p, req)
}

// BuildForPhase assembles a wavefunction for an already resolved phase.
func (b *Builder) BuildForPhase(p *phase.Phase, req Request) (*WaveFunction, error) {
	view := b.resolveView(p, req.ApproxInf, req.ViewFactor)
	b.logger.Debug("[Builder] view [%v, %v]", view.Lo, view.Hi)

	group, err := b.detector.Detect(p, view)
	if err != nil {
		return nil, err
	}

	var wf *WaveFunction
	if len(group.Pairs) == 0 {
		b.logger.Warn("[Builder] no turning points inside view, using a single semiclassical segment")
		wf = b.assemblePure(p, view, req.ApproxInf)
	} else {
		wf, err = b.assemble(p, view, req.ApproxInf, group)
		if err != nil {
			return nil, err
		}
	}

	switch req.Scaling.Kind {
	case ScaleMul:
		wf.scaling = req.Scaling.Factor
	case ScaleRenormalize:
		wf.scaling = b.renormalizeFactor(wf)
	default:
		wf.scaling = 1
	}
	return wf, nil
}

// resolveView locates the classical region edges where the potential crosses
// the energy, widened on both sides by the view factor. When an edge search
// fails the whole finite range stands in, nudged inward so every sampled
// position stays strictly inside.
func (b *Builder) resolveView(p *phase.Phase, inf core.Interval, viewFactor float64) core.Interval {
	diff := func(x float64) float64 { return p.Potential(x) - p.Energy }

	lo, okLo := roots.NewtonBounded(diff, inf.Lo, 1e-7, 100000)
	hi, okHi := roots.NewtonBounded(diff, inf.Hi, 1e-7, 100000)
	if !okLo || !okHi {
		b.logger.Warn("[Builder] classical region edges not found, falling back to the full range")
		pad := inf.Width() * 1e-9
		return core.NewInterval(inf.Lo+pad, inf.Hi-pad)
	}

	edges := core.NewInterval(lo, hi)
	w := edges.Width()
	return core.NewInterval(
		math.Max(inf.Lo, edges.Lo-viewFactor*w),
		math.Min(inf.Hi, edges.Hi+viewFactor*w),
	)
}

// assemble builds one part per turning point bracket. Part ranges meet at
// the midpoints between adjacent turning points; the outermost ranges extend
// to the finite-infinity edges via mirrored virtual neighbours.
func (b *Builder) assemble(p *phase.Phase, view, inf core.Interval, group turning.Group) (*WaveFunction, error) {
	pairs := group.Pairs
	signs := b.segmentSigns(p, pairs)

	parts := make([]Part, 0, len(pairs))
	airyRanges := make([]core.Interval, 0, len(pairs))

	for i, pair := range pairs {
		slope := calculus.Derivative(p.Potential, pair.TurningPoint)
		theta := -p.PhaseOff
		if slope < 0 {
			theta = p.PhaseOff
		}

		w := NewWkb(p, pair.TurningPoint, theta, b.opts.IntegSteps, b.opts.ChunkSize).WithC(signs[i])
		airy, err := NewAiry(b.airy, p, pair, w)
		if err != nil {
			return nil, err
		}

		delta := b.opts.TransitionFraction * (pair.Right - pair.Left)
		jointL := Joint{Left: airy, Right: w, Cut: pair.Left + delta/2, Delta: -delta}
		jointR := Joint{Left: airy, Right: w, Cut: pair.Right - delta/2, Delta: delta}

		prev := 2*inf.Lo - pair.TurningPoint
		if i > 0 {
			prev = pairs[i-1].TurningPoint
		}
		next := 2*inf.Hi - pair.TurningPoint
		if i+1 < len(pairs) {
			next = pairs[i+1].TurningPoint
		}
		rng := core.NewInterval((prev+pair.TurningPoint)/2, (pair.TurningPoint+next)/2)

		parts = append(parts, &approxPart{
			wkb:    w,
			airy:   airy,
			jointL: jointL,
			jointR: jointR,
			rng:    rng,
		})
		airyRanges = append(airyRanges, core.NewInterval(pair.Left, pair.Right))
	}

	return &WaveFunction{
		phase:      p,
		view:       view,
		parts:      parts,
		airyRanges: airyRanges,
		wkbRanges:  complementRanges(parts[0].Range().Lo, parts[len(parts)-1].Range().Hi, airyRanges),
		scaling:    1,
	}, nil
}

// assemblePure covers the range with two pure semiclassical halves anchored
// at the view centre. This is the sub-barrier case: the energy never crosses
// the potential, so the wavefunction just decays away from the centre.
func (b *Builder) assemblePure(p *phase.Phase, view, inf core.Interval) *WaveFunction {
	w := NewWkb(p, view.Mid(), 0, b.opts.IntegSteps, b.opts.ChunkSize)
	left := core.NewInterval(inf.Lo, view.Mid())
	right := core.NewInterval(view.Mid(), inf.Hi)
	return &WaveFunction{
		phase:     p,
		view:      view,
		parts:     []Part{&pureWkb{Wkb: w, rng: left}, &pureWkb{Wkb: w, rng: right}},
		wkbRanges: []core.Interval{left, right},
		scaling:   1,
	}
}

// segmentSigns propagates the parity flip across allowed regions. The action
// between adjacent turning points quantises to (k + 1/2)*pi; an odd k means
// the oscillation count flips the sign of everything to the right.
func (b *Builder) segmentSigns(p *phase.Phase, pairs []turning.Pair) []float64 {
	signs := make([]float64, len(pairs))
	signs[0] = 1
	for i := 1; i < len(pairs); i++ {
		points := grid.EvaluateBetween(p.Momentum,
			pairs[i-1].TurningPoint, pairs[i].TurningPoint, b.opts.IntegSteps)
		action := math.Abs(imag(calculus.Integrate(points, b.opts.ChunkSize)))

		k := int(math.Round(action/math.Pi - 0.5))
		signs[i] = signs[i-1]
		if k%2 != 0 {
			signs[i] = -signs[i-1]
		}
	}
	return signs
}

// complementRanges returns the gaps of the brackets within [lo, hi].
func complementRanges(lo, hi float64, brackets []core.Interval) []core.Interval {
	out := make([]core.Interval, 0, len(brackets)+1)
	cursor := lo
	for _, b := range brackets {
		if b.Lo > cursor {
			out = append(out, core.Interval{Lo: cursor, Hi: b.Lo})
		}
		cursor = b.Hi
	}
	if hi > cursor {
		out = append(out, core.Interval{Lo: cursor, Hi: hi})
	}
	return out
}

// renormalizeFactor integrates the unscaled probability density over the
// assembled range and returns 1/sqrt(area), so the scaled density
// integrates to one.
func (b *Builder) renormalizeFactor(wf *WaveFunction) complex128 {
	rng := wf.Range()
	pad := rng.Width() * 1e-12

	points := grid.EvaluateBetween(func(x float64) complex128 {
		v := wf.calcPsi(x)
		return complex(real(v)*real(v)+imag(v)*imag(v), 0)
	}, rng.Lo, rng.Hi-pad, b.opts.RenormPoints)
	area := real(calculus.Integrate(points, b.opts.ChunkSize))

	if area <= 0 || math.IsNaN(area) {
		b.logger.Warn("[Builder] wavefunction area is not positive, keeping raw amplitude")
		return 1
	}
	return complex(1/math.Sqrt(area), 0)
}
