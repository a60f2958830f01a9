package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIntervalSortsEndpoints(t *testing.T) {
	iv := NewInterval(3.0, -1.0)
	assert.Equal(t, -1.0, iv.Lo)
	assert.Equal(t, 3.0, iv.Hi)
}

func TestIntervalContainsIsHalfOpen(t *testing.T) {
	iv := Interval{Lo: 0, Hi: 1}
	assert.True(t, iv.Contains(0))
	assert.True(t, iv.Contains(0.5))
	assert.False(t, iv.Contains(1))
	assert.False(t, iv.Contains(-0.1))
}

func TestIntervalGeometry(t *testing.T) {
	iv := Interval{Lo: -2, Hi: 4}
	assert.Equal(t, 6.0, iv.Width())
	assert.Equal(t, 1.0, iv.Mid())
	assert.Equal(t, -2.0, iv.Clip(-7))
	assert.Equal(t, 4.0, iv.Clip(9))
	assert.Equal(t, 0.5, iv.Clip(0.5))
}

func TestNewRunIDUniqueness(t *testing.T) {
	seen := make(map[RunID]bool)
	for i := 0; i < 1000; i++ {
		id := NewRunID()
		assert.False(t, id.IsEmpty())
		assert.False(t, seen[id], "duplicate run ID %s", id)
		seen[id] = true
	}
}
