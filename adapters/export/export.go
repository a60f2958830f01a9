// Package export writes sampled wavefunctions to disk.
package export

import (
	"gowkb/domain/grid"
)

// Sheet is one solved run ready to be written out.
type Sheet struct {
	RunID     string
	Potential string
	Level     int
	Energy    float64
	Samples   []grid.SampledPoint
}
