package astar_test

import (
	"fmt"

	"github.com/hmkoh01/dvrp2d/astar"
	"github.com/hmkoh01/dvrp2d/geometry"
	"github.com/hmkoh01/dvrp2d/visgraph"
)

// ExampleSearch builds a six-node visibility graph around a corner-skim
// detour and searches it, printing the node indices the shortest path
// visits.
func ExampleSearch() {
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

	path, ok, err := astar.Search(g, 0, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(ok)
	fmt.Println(len(path))
	// Output:
	// true
	// 4
}
