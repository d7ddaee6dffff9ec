package visgraph_test

import (
	"fmt"

	"github.com/hmkoh01/dvrp2d/geometry"
	"github.com/hmkoh01/dvrp2d/visgraph"
)

// ExampleBuild constructs the visibility graph for a start/end pair with a
// single square obstacle straddling the direct path, and reports how many
// nodes the graph considers and whether the direct start-end chord survived.
func ExampleBuild() {
	start := geometry.Point{X: 0, Y: 0}
	end := geometry.Point{X: 20, Y: 0}
	square := geometry.Polygon{
		{X: 5, Y: -5}, {X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: -5},
	}

	g, err := visgraph.Build(start, end, []geometry.Polygon{square})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.NodeCount())
	fmt.Println(contains(g.Adjacency[0], 1))
	// Output:
	// 6
	// false
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
