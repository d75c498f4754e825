package core_test

import (
	"fmt"

	"github.com/katalvlaran/polyflag/core"
)

// ExampleStructure builds the incidence structure of a triangle bottom-up
// and queries it.
func ExampleStructure() {
	s := core.New()
	_ = s.PushMin()
	_ = s.PushVertices(3)
	_ = s.Push([]int{0, 1}, []int{1, 2}, []int{0, 2})
	_ = s.PushMax()
	s.Sort()

	fmt.Println("rank:", s.Rank())
	fmt.Println("counts:", s.ElementCounts())

	edge, _ := s.Element(core.Rank(1), 2)
	fmt.Println("edge 2 joins vertices:", edge.Subs)
	// Output:
	// rank: 2
	// counts: [1 3 3 1]
	// edge 2 joins vertices: [0 2]
}

// ExampleStructure_Validate shows the diamond property rejecting an open
// path of two edges pretending to be a closed polygon.
func ExampleStructure_Validate() {
	s := core.New()
	_ = s.PushMin()
	_ = s.PushVertices(3)
	_ = s.Push([]int{0, 1}, []int{1, 2})
	_ = s.PushMax()

	fmt.Println(s.Validate() != nil)
	// Output:
	// true
}
