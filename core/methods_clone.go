// File: methods_clone.go
// Role: Snapshotting point sets.
// Concurrency:
//   - Read lock for copying; the source set is never mutated.

package core

// Clone returns an independent copy of the PointSet.
// Inserts on either copy are invisible to the other; indices stay identical.
//
// Complexity: O(n).
func (ps *PointSet) Clone() *PointSet {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	clone := &PointSet{points: make([]Point, len(ps.points), cap(ps.points))}
	copy(clone.points, ps.points)

	return clone
}
