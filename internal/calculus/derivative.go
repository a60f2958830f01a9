package calculus

// Value is any scalar type the derivative stencil can operate on.
type Value interface {
	~float64 | ~complex128
}

// machine epsilon for float64, and its exact square root. The step is kept
// as an untyped constant so the stencil divides cleanly under both real and
// complex instantiations.
const (
	machEps     = 0x1p-52
	stencilStep = 0x1p-26
)

// Derivative returns a five-point stencil estimate of df/dx at x. Central
// differences m1, m2, m3 at steps h, 2h, 3h (h = sqrt(machine epsilon)) are
// combined as (15*m1 - 6*m2 + m3) / (10h), a Richardson-extrapolated
// estimate accurate to O(h^4).
//
// Every subsystem that needs a derivative goes through this function so that
// validity functions, turning point classification and exponent slopes all
// share the same error characteristics.
func Derivative[R Value](f func(float64) R, x float64) R {
	const h = stencilStep

	m1 := (f(x+h) - f(x-h)) / 2
	m2 := (f(x+2*h) - f(x-2*h)) / 4
	m3 := (f(x+3*h) - f(x-3*h)) / 6

	return (15*m1 - 6*m2 + m3) / (10 * h)
}
