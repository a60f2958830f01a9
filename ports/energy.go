package ports

// EnergyProvider resolves the bound-state energy for a quantum number.
type EnergyProvider interface {
	// NthEnergy returns the energy of level n (ground state n = 0) for a
	// particle of the given mass in the potential, searched within bounds.
	NthEnergy(n int, mass float64, potential Potential, bounds [2]float64) (float64, error)
}
