package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mstgen/core"
	"github.com/stretchr/testify/assert"
)

// TestDistance covers the 3-4-5 triangle, symmetry and coincident points.
func TestDistance(t *testing.T) {
	a := core.Point{Index: 0, X: Coord0, Y: Coord0}
	b := core.Point{Index: 1, X: Coord3, Y: Coord4}

	assert.Equal(t, Coord5, core.Distance(a, b))
	assert.Equal(t, core.Distance(a, b), core.Distance(b, a))
	assert.Zero(t, core.Distance(b, b))
}

// TestDistance_LargeCoordinates verifies hypot does not overflow for large inputs.
func TestDistance_LargeCoordinates(t *testing.T) {
	a := core.Point{X: 1e200, Y: 0}
	b := core.Point{X: -1e200, Y: 0}

	d := core.Distance(a, b)
	assert.False(t, math.IsInf(d, 0))
	assert.InDelta(t, 2e200, d, 1e186)
}

// TestPoint_String checks the compact textual form used in logs.
func TestPoint_String(t *testing.T) {
	p := core.Point{Index: 3, X: 1.5, Y: -2}
	assert.Equal(t, "#3(1.5, -2)", p.String())
}

// TestWithCapacity_NegativeIgnored verifies a negative capacity is a no-op.
func TestWithCapacity_NegativeIgnored(t *testing.T) {
	ps := core.NewPointSet(core.WithCapacity(-3))
	assert.Zero(t, ps.Len())
	assert.Equal(t, 0, ps.Insert(1, 1))
}
