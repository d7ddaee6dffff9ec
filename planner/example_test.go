package planner_test

import (
	"fmt"

	"github.com/hmkoh01/dvrp2d/geometry"
	"github.com/hmkoh01/dvrp2d/planner"
)

// ExamplePlan plans a route between two points with a single square
// obstacle straddling the direct path, detouring around one pair of its
// corners.
func ExamplePlan() {
	start := geometry.Point{X: 0, Y: 0}
	end := geometry.Point{X: 20, Y: 0}
	obstacle := geometry.Polygon{
		{X: 5, Y: -5}, {X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: -5},
	}

	route, err := planner.Plan(start, end, []geometry.Polygon{obstacle})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(len(route))
	fmt.Println(route[0])
	fmt.Println(route[len(route)-1])
	// Output:
	// 4
	// {0 0}
	// {20 0}
}
