// Package prim_kruskal computes the Euclidean Minimum Spanning Tree (MST) of a
// core.PointSet: Prim's algorithm as the reference builder, Kruskal's algorithm as an
// independent cross-check.
//
// What & Why
//
//   - What is a Euclidean MST?
//     Treat every pair of points as an edge weighted by their Euclidean distance. The
//     MST is the subset of n-1 of those edges that connects all n points with minimum
//     total length and no cycles.
//
//   - Why rebuild from scratch?
//     Point sets fed by an interactive producer stay small, and a full rebuild on every
//     insertion keeps the output a pure function of the current set. The edge list
//     returned by one build fully replaces the previous one.
//
// Algorithms Provided
//
//   - Prim(points *core.PointSet) []Edge
//
//   - Strategy: Grow the tree from index 0. Keep a min-heap of frontier entries
//     (from, to, weight). Pop the lightest; if `to` is already in the tree the entry
//     is stale and dropped (lazy deletion), otherwise `to` joins the tree and an entry
//     to every outside point is pushed.
//
//   - Ordering: edges are returned in the order they were accepted.
//
//   - Complexity: O(n² log n) time, O(n²) heap space.
//
//   - Kruskal(points *core.PointSet) []Edge
//
//   - Strategy: Enumerate all n(n-1)/2 pairs in ascending (from, to) order, stable-sort
//     them by weight and merge components with a union-find.
//
//   - Complexity: O(n² log n) time, O(n²) space.
//
// Determinism
//
//	Prim's heap is stable: frontier entries with equal weight pop in push order, and
//	pushes happen in ascending target index. Two builds over identical input produce
//	identical edge slices, including order. Kruskal's stable sort gives the same
//	guarantee for its own (different) acceptance order.
//
// Degenerate Input
//
//	0 points → empty slice; 1 point → empty slice; coincident points → zero-weight edges.
//	None of these are errors.
//
// Error Conditions
//
//	Prim and Kruskal never fail. Compute returns ErrUnknownMethod for an unsupported
//	method name. Validate reports why an edge list is not a spanning tree:
//	ErrNotSpanning, ErrIndexOutOfRange, ErrSelfLoop, ErrCycle.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
