// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm
// over the complete Euclidean graph induced by a core.PointSet.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/mstgen/core"
)

// Kruskal computes the Euclidean MST of points with a global sort and union-find.
//
// Steps:
//  1. Snapshot the points; fewer than two points → empty slice.
//  2. Enumerate every pair (i, j), i < j, in ascending lexicographic order.
//  3. Stable-sort pairs by weight so equal weights keep that order.
//  4. Accept each pair whose endpoints are in different components; stop at n-1 edges.
//
// The total weight always equals Prim's; the edge order generally differs.
// A nil PointSet is treated as empty.
//
// Complexity: O(n² log n) time, O(n²) memory.
func Kruskal(points *core.PointSet) []Edge {
	if points == nil {
		return []Edge{}
	}

	// 1. Snapshot.
	pts := points.Points()
	n := len(pts)
	if n < 2 {
		return []Edge{}
	}

	// 2. Complete graph in (from, to) order.
	pairs := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Edge{From: i, To: j, Weight: core.Distance(pts[i], pts[j])})
		}
	}

	// 3. Stable sort by weight.
	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].Weight < pairs[b].Weight
	})

	// 4. Merge components.
	ds := newDisjointSet(n)
	mst := make([]Edge, 0, n-1)
	for _, e := range pairs {
		if ds.union(e.From, e.To) {
			mst = append(mst, e)
			if len(mst) == n-1 {
				break
			}
		}
	}

	return mst
}
