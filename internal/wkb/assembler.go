package wkb

import (
	"fmt"

	"gowkb/domain/core"
	"gowkb/domain/phase"
)

// Part is an approximant owning a slice of the position axis. Parts tile the
// assembled coverage without gaps; lookup is by half-open containment.
type Part interface {
	Approximant
	Range() core.Interval
}

// pureWkb covers a region with no turning point inside it.
type pureWkb struct {
	*Wkb
	rng core.Interval
}

func (p *pureWkb) Range() core.Interval { return p.rng }

// approxPart covers the neighbourhood of one turning point: an Airy patch
// over the validity bracket, cross-faded into the same WKB approximant on
// both flanks.
type approxPart struct {
	wkb    *Wkb
	airy   *Airy
	jointL Joint
	jointR Joint
	rng    core.Interval
}

func (p *approxPart) Range() core.Interval { return p.rng }

func (p *approxPart) Evaluate(x float64) complex128 {
	wl := p.jointL.Window()
	wr := p.jointR.Window()
	switch {
	case x < wl.Lo:
		return p.wkb.Evaluate(x)
	case x <= wl.Hi:
		return p.jointL.Evaluate(x)
	case x < wr.Lo:
		return p.airy.Evaluate(x)
	case x <= wr.Hi:
		return p.jointR.Evaluate(x)
	default:
		return p.wkb.Evaluate(x)
	}
}

// WaveFunction is the assembled bound-state wavefunction: an ordered list of
// parts tiling the coverage interval, plus a scaling applied on evaluation.
type WaveFunction struct {
	phase      *phase.Phase
	view       core.Interval
	parts      []Part
	airyRanges []core.Interval
	wkbRanges  []core.Interval
	scaling    complex128
}

// Evaluate returns the scaled wavefunction value at x. x must lie inside
// Range; out-of-range evaluation is a caller bug and panics.
func (wf *WaveFunction) Evaluate(x float64) complex128 {
	return wf.scaling * wf.calcPsi(x)
}

func (wf *WaveFunction) calcPsi(x float64) complex128 {
	for _, p := range wf.parts {
		if p.Range().Contains(x) {
			return p.Evaluate(x)
		}
	}
	ranges := make([]core.Interval, 0, len(wf.parts))
	for _, p := range wf.parts {
		ranges = append(ranges, p.Range())
	}
	panic(fmt.Sprintf("wkb: position %v outside assembled ranges %v", x, ranges))
}

// Energy returns the eigen-energy the wavefunction was assembled for.
func (wf *WaveFunction) Energy() float64 { return wf.phase.Energy }

// View returns the interval the turning point search was confined to.
func (wf *WaveFunction) View() core.Interval { return wf.view }

// Range returns the full coverage interval of the assembled parts.
func (wf *WaveFunction) Range() core.Interval {
	if len(wf.parts) == 0 {
		return core.Interval{}
	}
	return core.Interval{
		Lo: wf.parts[0].Range().Lo,
		Hi: wf.parts[len(wf.parts)-1].Range().Hi,
	}
}

// Scaling returns the factor applied to every evaluated value.
func (wf *WaveFunction) Scaling() complex128 { return wf.scaling }

// AiryRanges returns the brackets where the Airy patches dominate.
func (wf *WaveFunction) AiryRanges() []core.Interval { return wf.airyRanges }

// WkbRanges returns the regions covered by plain semiclassical segments.
func (wf *WaveFunction) WkbRanges() []core.Interval { return wf.wkbRanges }

// IsAiry reports whether x falls inside an Airy bracket.
func (wf *WaveFunction) IsAiry(x float64) bool {
	for _, r := range wf.airyRanges {
		if r.Contains(x) {
			return true
		}
	}
	return false
}

// IsWkb reports whether x is covered purely semiclassically.
func (wf *WaveFunction) IsWkb(x float64) bool {
	for _, r := range wf.wkbRanges {
		if r.Contains(x) {
			return true
		}
	}
	return false
}
