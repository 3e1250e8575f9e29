package prim_kruskal

import "fmt"

// Validate reports whether edges form a spanning tree over point indices [0, n).
//
// Checks, in order:
//   - exactly max(n-1, 0) edges (ErrNotSpanning);
//   - every endpoint in range (ErrIndexOutOfRange);
//   - no self-loops (ErrSelfLoop);
//   - no edge joins two already-connected indices (ErrCycle).
//
// n-1 acyclic edges over n vertices are necessarily connected, so no separate
// reachability pass is needed. Weights are not inspected.
//
// Complexity: O(n α(n)).
func Validate(n int, edges []Edge) error {
	want := n - 1
	if want < 0 {
		want = 0
	}
	if len(edges) != want {
		return fmt.Errorf("%w: got %d edges for %d points", ErrNotSpanning, len(edges), n)
	}

	if len(edges) == 0 {
		return nil
	}

	ds := newDisjointSet(n)
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge %d (%d-%d), n=%d", ErrIndexOutOfRange, i, e.From, e.To, n)
		}
		if e.From == e.To {
			return fmt.Errorf("%w: edge %d at index %d", ErrSelfLoop, i, e.From)
		}
		if !ds.union(e.From, e.To) {
			return fmt.Errorf("%w: edge %d (%d-%d)", ErrCycle, i, e.From, e.To)
		}
	}

	return nil
}
