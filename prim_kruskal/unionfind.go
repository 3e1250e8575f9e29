package prim_kruskal

// disjointSet is a slice-backed union-find over point indices with path
// compression and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the representative of x, halving the path as it walks.
func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}

	return x
}

// union merges the sets of u and v. It reports false if they were already joined.
func (ds *disjointSet) union(u, v int) bool {
	rootU, rootV := ds.find(u), ds.find(v)
	if rootU == rootV {
		return false
	}
	switch {
	case ds.rank[rootU] < ds.rank[rootV]:
		ds.parent[rootU] = rootV
	case ds.rank[rootU] > ds.rank[rootV]:
		ds.parent[rootV] = rootU
	default:
		ds.parent[rootV] = rootU
		ds.rank[rootU]++
	}

	return true
}
