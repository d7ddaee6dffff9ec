package route_test

import (
	"fmt"

	"github.com/hmkoh01/dvrp2d/geometry"
	"github.com/hmkoh01/dvrp2d/route"
)

// ExampleAnalyzeEfficiency scores a two-hop detour against the straight-line
// distance between its endpoints.
func ExampleAnalyzeEfficiency() {
	polyline := []geometry.Point{
		{X: 0, Y: 0},
		{X: 3, Y: 4},
		{X: 6, Y: 0},
	}

	eff := route.AnalyzeEfficiency(polyline)
	fmt.Printf("total=%.1f straight=%.1f segments=%d\n", eff.TotalDistance, eff.StraightDistance, eff.NumberOfSegments)
	// Output: total=10.0 straight=6.0 segments=2
}
