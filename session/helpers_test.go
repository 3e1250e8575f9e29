package session_test

import "github.com/katalvlaran/mstgen/core"

// pointSetFrom rebuilds a PointSet from a snapshot in index order.
func pointSetFrom(points []core.Point) *core.PointSet {
	ps := core.NewPointSet(core.WithCapacity(len(points)))
	for _, p := range points {
		ps.Insert(p.X, p.Y)
	}

	return ps
}
