// Package core provides the point catalog that every MST build in mstgen works over.
//
// A PointSet is an ordered, append-only sequence of 2D points. Each point receives a
// 0-based index at insertion; indices are never reused or reassigned, so an index is a
// stable handle for the lifetime of the set.
//
// Why a dedicated type instead of a plain []Point?
//
//   - Index stability – Insert is the only mutator; there is no Remove or Reorder.
//   - Snapshots – Points() and Clone() copy under a read lock, so an MST build can
//     run over a consistent view even if a producer keeps appending.
//   - Fail-fast preconditions – Get with an out-of-range index and Insert with a
//     non-finite coordinate panic; both are caller bugs, not data conditions.
//
// Core Methods:
//
//	NewPointSet(opts ...PointSetOption) *PointSet // O(1)
//	Insert(x, y float64) int                      // O(1) amortized
//	Get(index int) Point                          // O(1)
//	Len() int                                     // O(1)
//	Points() []Point                              // O(n)
//	Clone() *PointSet                             // O(n)
//	Distance(a, b Point) float64                  // O(1)
//
// Quick example:
//
//	ps := core.NewPointSet()
//	a := ps.Insert(0, 0)  // 0
//	b := ps.Insert(3, 4)  // 1
//	d := core.Distance(ps.Get(a), ps.Get(b)) // 5
//
// Insertion order is part of the observable contract: index 0 is the root every
// Prim build grows from.
package core
