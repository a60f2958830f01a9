package config

import (
	"os"
	"strconv"
	"strings"

	"gowkb/internal/errors"
)

// Config represents the complete solver configuration
type Config struct {
	Physics     PhysicsConfig
	Numerics    NumericsConfig
	Paths       PathConfig
}

// PhysicsConfig holds the physical problem definition
type PhysicsConfig struct {
	Mass        float64 // particle mass, must be > 0
	EnergyLevel int     // requested quantum number n
	Potential   string  // potential catalog key
	ApproxInf   [2]float64
	ViewFactor  float64
}

// NumericsConfig holds discretization and root-finding settings
type NumericsConfig struct {
	IntegSteps         int     // samples per phase integral
	TrapezoidsPerChunk int     // integrator chunk size
	PlotPoints         int     // samples for export grids
	TransitionFraction float64 // joint width as fraction of a turning point pair
	Precision          float64 // root finder precision
	MaxSeeds           int     // turning point seed budget
	GuessGridPoints    int     // MakeGuess sample grid size
	NewtonMaxIters     int     // bounded Newton iteration cap
}

// PathConfig holds file system paths
type PathConfig struct {
	OutputDir string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Physics: PhysicsConfig{
			Mass:        getEnvFloatOrDefault("MASS", 1.0),
			EnergyLevel: getEnvIntOrDefault("ENERGY_LEVEL", 5),
			Potential:   getEnvOrDefault("POTENTIAL", "harmonic"),
			ApproxInf: [2]float64{
				getEnvFloatOrDefault("APPROX_INF_LOW", -200.0),
				getEnvFloatOrDefault("APPROX_INF_HIGH", 200.0),
			},
			ViewFactor: getEnvFloatOrDefault("VIEW_FACTOR", 0.5),
		},
		Numerics: NumericsConfig{
			IntegSteps:         getEnvIntOrDefault("INTEG_STEPS", 64000),
			TrapezoidsPerChunk: getEnvIntOrDefault("TRAPEZOIDS_PER_CHUNK", 1000),
			PlotPoints:         getEnvIntOrDefault("PLOT_POINTS", 100000),
			TransitionFraction: getEnvFloatOrDefault("AIRY_TRANSITION_FRACTION", 0.5),
			Precision:          getEnvFloatOrDefault("PRECISION", 1e-9),
			MaxSeeds:           getEnvIntOrDefault("MAX_TURNING_POINTS", 256),
			GuessGridPoints:    getEnvIntOrDefault("GUESS_GRID_POINTS", 1000),
			NewtonMaxIters:     getEnvIntOrDefault("NEWTON_MAX_ITERS", 10000),
		},
		Paths: PathConfig{
			OutputDir: getEnvOrDefault("OUTPUT_DIR", "output"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Physics.Mass <= 0 {
		return errors.ConfigInvalid("MASS must be positive")
	}
	if config.Physics.EnergyLevel < 0 {
		return errors.ConfigInvalid("ENERGY_LEVEL must be non-negative")
	}
	if config.Physics.ApproxInf[0] >= config.Physics.ApproxInf[1] {
		return errors.ConfigInvalid("APPROX_INF_LOW must be below APPROX_INF_HIGH")
	}
	if config.Numerics.IntegSteps < 2 {
		return errors.ConfigInvalid("INTEG_STEPS must be at least 2")
	}
	if config.Numerics.TrapezoidsPerChunk < 1 {
		return errors.ConfigInvalid("TRAPEZOIDS_PER_CHUNK must be positive")
	}
	if config.Numerics.Precision <= 0 {
		return errors.ConfigInvalid("PRECISION must be positive")
	}
	if strings.TrimSpace(config.Paths.OutputDir) == "" {
		return errors.ConfigInvalid("OUTPUT_DIR cannot be empty")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
