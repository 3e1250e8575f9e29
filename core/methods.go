// File: methods.go
// Role: PointSet lifecycle & queries.
//
// Determinism:
//   - Points() returns points in index order.
//
// Concurrency:
//   - Insert takes the write lock; all queries take the read lock.
package core

import "fmt"

// Insert appends a point at (x, y) and returns its index.
//
// The new index is always the previous Len(). No existing point changes.
//
// Panics if x or y is NaN or ±Inf: coordinates are required to be finite and a
// non-finite value is a caller bug.
//
// Complexity: O(1) amortized.
func (ps *PointSet) Insert(x, y float64) int {
	if !isFinite(x) || !isFinite(y) {
		panic(fmt.Sprintf("core: non-finite coordinate (%v, %v)", x, y))
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	idx := len(ps.points)
	ps.points = append(ps.points, Point{Index: idx, X: x, Y: y})

	return idx
}

// Get returns the point stored at index.
//
// Panics if index is outside [0, Len()).
//
// Complexity: O(1).
func (ps *PointSet) Get(index int) Point {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	if index < 0 || index >= len(ps.points) {
		panic(fmt.Sprintf("core: point index %d out of range [0, %d)", index, len(ps.points)))
	}

	return ps.points[index]
}

// Len returns the number of inserted points.
func (ps *PointSet) Len() int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	return len(ps.points)
}

// Points returns a copy of all points in index order.
// The returned slice is never nil and may be mutated freely by the caller.
//
// Complexity: O(n).
func (ps *PointSet) Points() []Point {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	out := make([]Point, len(ps.points))
	copy(out, ps.points)

	return out
}
