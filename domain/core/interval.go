package core

// Interval is a half-open range [Lo, Hi) on the real line.
type Interval struct {
	Lo float64
	Hi float64
}

// NewInterval builds an interval from two endpoints in either order.
func NewInterval(a, b float64) Interval {
	if a > b {
		a, b = b, a
	}
	return Interval{Lo: a, Hi: b}
}

// Contains reports whether x falls inside the half-open range.
func (iv Interval) Contains(x float64) bool {
	return iv.Lo <= x && iv.Hi > x
}

// Width returns the signed extent Hi - Lo.
func (iv Interval) Width() float64 {
	return iv.Hi - iv.Lo
}

// Mid returns the interval midpoint.
func (iv Interval) Mid() float64 {
	return (iv.Lo + iv.Hi) / 2
}

// Clip limits x to the closed endpoints of the interval.
func (iv Interval) Clip(x float64) float64 {
	if x < iv.Lo {
		return iv.Lo
	}
	if x > iv.Hi {
		return iv.Hi
	}
	return x
}
