package geometry_test

import (
	"fmt"

	"github.com/hmkoh01/dvrp2d/geometry"
)

// ExampleSegmentsIntersect classifies the classic crossing-X configuration:
// two segments whose endpoints straddle each other.
func ExampleSegmentsIntersect() {
	l1 := geometry.Segment{A: geometry.Point{X: 0, Y: 0}, B: geometry.Point{X: 4, Y: 4}}
	l2 := geometry.Segment{A: geometry.Point{X: 0, Y: 4}, B: geometry.Point{X: 4, Y: 0}}

	fmt.Println(geometry.SegmentsIntersect(l1, l2))
	// Output: cross
}

// ExamplePointInPolygon classifies one point inside and one point outside an
// axis-aligned square.
func ExamplePointInPolygon() {
	square := geometry.Polygon{
		{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0},
	}

	fmt.Println(geometry.PointInPolygon(square, geometry.Point{X: 5, Y: 5}))
	fmt.Println(geometry.PointInPolygon(square, geometry.Point{X: 20, Y: 20}))
	// Output:
	// true
	// false
}
