// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree algorithm
// over the complete Euclidean graph induced by a core.PointSet.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/mstgen/core"
)

// Prim computes the Euclidean MST of points by growing outwards from index 0.
//
// Steps:
//  1. Snapshot the points; if there are none, return an empty slice.
//  2. Mark the root (index 0) visited and push a frontier entry (0, k) for every
//     other k in ascending order.
//  3. While the heap is not empty and the tree has fewer than n-1 edges:
//     a. Pop the lightest entry (u, v). Ties pop in push order.
//     b. If v is already visited the entry is stale; drop it.
//     c. Otherwise mark v visited, append (u, v) and push (v, k) for every
//     unvisited k in ascending order.
//  4. Return the edges in acceptance order.
//
// A nil PointSet is treated as empty.
//
// Complexity: O(n² log n) time, O(n²) memory.
func Prim(points *core.PointSet) []Edge {
	if points == nil {
		return []Edge{}
	}

	// 1. Work over an immutable snapshot.
	pts := points.Points()
	n := len(pts)
	if n == 0 {
		return []Edge{}
	}

	visited := make([]bool, n)
	mst := make([]Edge, 0, n-1)
	pq := &frontierPQ{}
	heap.Init(pq)

	var seq uint64
	push := func(from, to int) {
		heap.Push(pq, frontier{
			from:   from,
			to:     to,
			weight: core.Distance(pts[from], pts[to]),
			seq:    seq,
		})
		seq++
	}

	// 2. Root joins the tree without an edge.
	visited[0] = true
	for k := 1; k < n; k++ {
		push(0, k)
	}

	// 3. Main loop.
	for pq.Len() > 0 && len(mst) < n-1 {
		f := heap.Pop(pq).(frontier)
		if visited[f.to] {
			continue
		}
		visited[f.to] = true
		mst = append(mst, Edge{From: f.from, To: f.to, Weight: f.weight})

		for k := 0; k < n; k++ {
			if !visited[k] && k != f.to {
				push(f.to, k)
			}
		}
	}

	return mst
}

// frontier is a candidate edge from a tree vertex to an outside vertex.
// seq is the push order and breaks weight ties.
type frontier struct {
	from   int
	to     int
	weight float64
	seq    uint64
}

// frontierPQ implements heap.Interface as a stable min-heap ordered by (weight, seq).
type frontierPQ []frontier

// Len returns the number of entries in the priority queue.
func (pq frontierPQ) Len() int { return len(pq) }

// Less orders by ascending weight, then by ascending push sequence.
func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps entries at indices i and j.
func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a frontier entry. Called by heap.Push.
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(frontier)) }

// Pop removes and returns the last entry. Called by heap.Pop.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	f := old[n-1]
	*pq = old[:n-1]

	return f
}
