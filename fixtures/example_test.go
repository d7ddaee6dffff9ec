package fixtures_test

import (
	"fmt"

	"github.com/hmkoh01/dvrp2d/fixtures"
	"github.com/hmkoh01/dvrp2d/geometry"
)

// ExampleSquare builds an axis-aligned square obstacle and confirms it
// satisfies the structural invariants a planner obstacle must.
func ExampleSquare() {
	square := fixtures.Square(0, 0, 10, 10)
	fmt.Println(len(square))
	fmt.Println(square.Valid())
	// Output:
	// 4
	// true
}

// ExampleConcentricMaze builds a three-ring maze of notched squares, each
// ring a valid obstacle polygon in its own right.
func ExampleConcentricMaze() {
	obstacles := fixtures.ConcentricMaze(geometry.Point{}, 3, 5)
	fmt.Println(len(obstacles))
	for _, ring := range obstacles {
		if !ring.Valid() {
			fmt.Println("invalid ring")
			return
		}
	}
	fmt.Println("all rings valid")
	// Output:
	// 3
	// all rings valid
}
