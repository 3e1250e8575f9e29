// Package core_test contains test helpers for mstgen/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for PointSet tests.
//   - Avoid magic numbers in test bodies.

package core_test

import (
	"testing"

	"github.com/katalvlaran/mstgen/core"
)

// Common coordinates used across core tests.
const (
	Coord0  = 0.0
	Coord3  = 3.0
	Coord4  = 4.0
	Coord5  = 5.0
	Coord10 = 10.0
)

// Common sizes used across core tests.
const (
	NInserts = 100
	NReaders = 50
)

// newSquare builds a PointSet with the unit-10 square (0,0) (10,0) (10,10) (0,10).
func newSquare(t *testing.T) *core.PointSet {
	t.Helper()

	ps := core.NewPointSet()
	ps.Insert(Coord0, Coord0)
	ps.Insert(Coord10, Coord0)
	ps.Insert(Coord10, Coord10)
	ps.Insert(Coord0, Coord10)

	return ps
}
