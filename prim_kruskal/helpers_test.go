package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mstgen/core"
)

// weightTolerance absorbs float summation-order drift between algorithms.
const weightTolerance = 1e-9

// pointSetOf builds a PointSet from (x, y) pairs in order.
func pointSetOf(t testing.TB, coords ...[2]float64) *core.PointSet {
	t.Helper()

	ps := core.NewPointSet(core.WithCapacity(len(coords)))
	for _, c := range coords {
		ps.Insert(c[0], c[1])
	}

	return ps
}

// randomPointSet builds n points in [0, 100)² from a fixed seed so runs are reproducible.
// Coordinates are snapped to a grid of step 5 so ties and duplicates occur.
func randomPointSet(t testing.TB, n int, seed int64) *core.PointSet {
	t.Helper()

	r := rand.New(rand.NewSource(seed))
	ps := core.NewPointSet(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		ps.Insert(float64(r.Intn(20)*5), float64(r.Intn(20)*5))
	}

	return ps
}

// bruteForceMSTWeight enumerates every labeled tree on n vertices via Prüfer
// sequences (n^(n-2) of them) and returns the minimum total weight.
func bruteForceMSTWeight(ps *core.PointSet) float64 {
	pts := ps.Points()
	n := len(pts)
	if n < 2 {
		return 0
	}
	if n == 2 {
		return core.Distance(pts[0], pts[1])
	}

	best := math.Inf(1)
	seq := make([]int, n-2)
	for {
		if w := pruferWeight(pts, seq); w < best {
			best = w
		}
		// Advance seq as a base-n counter.
		i := 0
		for i < len(seq) {
			seq[i]++
			if seq[i] < n {
				break
			}
			seq[i] = 0
			i++
		}
		if i == len(seq) {
			return best
		}
	}
}

// pruferWeight decodes a Prüfer sequence into a tree and sums its edge weights.
func pruferWeight(pts []core.Point, seq []int) float64 {
	n := len(pts)
	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for _, v := range seq {
		degree[v]++
	}

	var total float64
	for _, v := range seq {
		for leaf := 0; leaf < n; leaf++ {
			if degree[leaf] == 1 {
				total += core.Distance(pts[leaf], pts[v])
				degree[leaf]--
				degree[v]--
				break
			}
		}
	}
	u, w := -1, -1
	for i := 0; i < n; i++ {
		if degree[i] == 1 {
			if u < 0 {
				u = i
			} else {
				w = i
			}
		}
	}

	return total + core.Distance(pts[u], pts[w])
}
