// Package core defines Point and PointSet, the append-only catalog of 2D points
// consumed by the MST builders.
package core

import (
	"fmt"
	"math"
	"sync"
)

// Point is a single inserted location.
//
// Index is assigned by PointSet.Insert and never changes afterwards.
type Point struct {
	// Index is the 0-based insertion position inside the owning PointSet.
	Index int

	// X and Y are finite Cartesian coordinates.
	X float64
	Y float64
}

// String renders the point as "#i(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("#%d(%g, %g)", p.Index, p.X, p.Y)
}

// PointSetOption configures a PointSet before creation.
type PointSetOption func(ps *PointSet)

// WithCapacity preallocates room for n points. Negative values are ignored.
func WithCapacity(n int) PointSetOption {
	return func(ps *PointSet) {
		if n > 0 {
			ps.points = make([]Point, 0, n)
		}
	}
}

// PointSet is an ordered, append-only collection of points.
//
// mu guards points. The set is designed for one writer at a time; the lock only
// makes snapshots taken by readers consistent.
type PointSet struct {
	mu     sync.RWMutex
	points []Point
}

// NewPointSet creates an empty PointSet.
// Complexity: O(1) (O(n) with WithCapacity).
func NewPointSet(opts ...PointSetOption) *PointSet {
	ps := &PointSet{}
	for _, opt := range opts {
		opt(ps)
	}

	return ps
}

// Distance returns the Euclidean distance between a and b.
// Coincident points yield exactly 0.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
