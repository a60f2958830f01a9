package core

import (
	"github.com/google/uuid"
)

// RunID identifies the artifacts of a single solver invocation
type RunID string

// NewRunID creates a new unique run identifier using UUID v7 for time-ordered generation
func NewRunID() RunID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return RunID(id.String())
}

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id RunID) IsEmpty() bool {
	return id == ""
}
