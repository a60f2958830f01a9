package roots

import (
	"fmt"
	"math"

	"gowkb/internal/calculus"
)

// Newton iterates guess -= f(guess)/f'(guess) until the step magnitude drops
// below precision. A zero derivative at any iterate is a violated
// precondition and panics; callers that cannot rule it out use
// NewtonBounded instead.
func Newton(f func(float64) float64, guess, precision float64) float64 {
	for {
		deriv := calculus.Derivative(f, guess)
		if deriv == 0 {
			panic(fmt.Sprintf("roots: zero derivative at x = %v in unbounded Newton", guess))
		}
		step := f(guess) / deriv
		if math.Abs(step) < precision {
			return guess
		}
		guess -= step
	}
}

// NewtonBounded runs the same iteration but reports failure instead of
// panicking on a zero derivative, and gives up after maxIters iterations.
func NewtonBounded(f func(float64) float64, guess, precision float64, maxIters int) (float64, bool) {
	for i := 0; i < maxIters; i++ {
		deriv := calculus.Derivative(f, guess)
		if deriv == 0 {
			return 0, false
		}
		step := f(guess) / deriv
		if math.Abs(step) < precision {
			return guess, true
		}
		guess -= step
	}
	return 0, false
}

// checkSign reports a strict sign crossing between two samples, treating an
// exact zero on either side as a crossing.
func checkSign(initial, new float64) bool {
	if initial == new {
		return false
	}
	return (initial <= 0 && new >= 0) || (initial >= 0 && new <= 0)
}

// BracketSignChange advances from guess in increments of step until f
// changes sign and returns the bracketing pair. The caller guarantees a
// crossing exists in the search direction.
func BracketSignChange(f func(float64) float64, guess, step float64) (float64, float64) {
	result := guess
	for !checkSign(f(guess), f(result)) {
		result += step
	}
	return result - step, result
}

func regulaFalsiC(f func(float64) float64, a, b float64) float64 {
	return (a*f(b) - b*f(a)) / (f(b) - f(a))
}

// RegulaFalsi refines a bracketing pair with false-position iteration,
// updating both endpoints each round, until |f(c)| is within precision.
func RegulaFalsi(f func(float64) float64, a, b, precision float64) float64 {
	if a > b {
		a, b = b, a
	}

	c := regulaFalsiC(f, a, b)
	for math.Abs(f(c)) > precision {
		b = regulaFalsiC(f, a, b)
		a = regulaFalsiC(f, a, b)
		c = regulaFalsiC(f, a, b)
	}
	return c
}

// BracketThenRefine composes BracketSignChange and RegulaFalsi: the standard
// way an isolated zero is located from a single seed point.
func BracketThenRefine(f func(float64) float64, guess, step, precision float64) float64 {
	a, b := BracketSignChange(f, guess, step)
	return RegulaFalsi(f, a, b, precision)
}
