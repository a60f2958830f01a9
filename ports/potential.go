package ports

// Potential is a one-dimensional potential landscape U(x). Implementations
// must be pure: Evaluate is called concurrently from sampling workers.
type Potential interface {
	// Evaluate returns U(x).
	Evaluate(x float64) float64

	// Name identifies the potential in logs and export metadata.
	Name() string
}
