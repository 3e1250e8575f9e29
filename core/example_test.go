package core_test

import (
	"fmt"

	"github.com/katalvlaran/mstgen/core"
)

// ExamplePointSet demonstrates insertion, lookup and distance.
func ExamplePointSet() {
	// 1) Create an empty set.
	ps := core.NewPointSet()

	// 2) Insert points; indices are handed out in order.
	a := ps.Insert(0, 0)
	b := ps.Insert(3, 4)

	// 3) Query them back.
	fmt.Println("Len:", ps.Len())
	fmt.Println("Points:", ps.Get(a), ps.Get(b))
	fmt.Println("Distance:", core.Distance(ps.Get(a), ps.Get(b)))

	// Output:
	// Len: 2
	// Points: #0(0, 0) #1(3, 4)
	// Distance: 5
}
