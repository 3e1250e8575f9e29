package session_test

import (
	"fmt"

	"github.com/katalvlaran/mstgen/session"
)

// ExampleSession shows that each Add returns a fresh edge list replacing the last.
func ExampleSession() {
	s, _ := session.New()
	for _, c := range [][2]float64{{0, 0}, {10, 0}, {0, 0}} {
		idx, edges, _ := s.Add(c[0], c[1])
		fmt.Println(idx, edges)
	}
	// Output:
	// 0 []
	// 1 [0-1(10.000)]
	// 2 [0-2(0.000) 0-1(10.000)]
}
