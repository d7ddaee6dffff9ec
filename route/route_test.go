package route_test

import (
	"testing"

	"github.com/hmkoh01/dvrp2d/fixtures"
	"github.com/hmkoh01/dvrp2d/geometry"
	"github.com/hmkoh01/dvrp2d/route"
	"github.com/stretchr/testify/assert"
)

func pt(x, y float64) geometry.Point { return geometry.Point{X: x, Y: y} }

func TestLength(t *testing.T) {
	assert.Equal(t, 0.0, route.Length(nil))
	assert.Equal(t, 0.0, route.Length([]geometry.Point{pt(0, 0)}))
	assert.InDelta(t, 10.0, route.Length([]geometry.Point{pt(0, 0), pt(10, 0)}), 1e-9)
}

func TestValidateFeasibility(t *testing.T) {
	polyline := []geometry.Point{pt(0, 0), pt(100, 0)}

	ok, _ := route.ValidateFeasibility(polyline, route.DroneSpec{
		BatteryLevel:         1.0,
		Speed:                10,
		BatteryLifeSeconds:   1000,
		MaxOrderDelaySeconds: 1000,
	})
	assert.True(t, ok)

	ok, reason := route.ValidateFeasibility(polyline, route.DroneSpec{
		BatteryLevel:         0.01,
		Speed:                10,
		BatteryLifeSeconds:   10,
		MaxOrderDelaySeconds: 1000,
	})
	assert.False(t, ok)
	assert.Contains(t, reason, "battery range")

	ok, reason = route.ValidateFeasibility(polyline, route.DroneSpec{
		BatteryLevel:         1.0,
		Speed:                1000,
		BatteryLifeSeconds:   1000,
		MaxOrderDelaySeconds: 0.001,
	})
	assert.False(t, ok)
	assert.Contains(t, reason, "flight time")
}

func TestValidateSafety(t *testing.T) {
	world := route.WorldFromObstacles(100, 100, nil)

	ok, _ := route.ValidateSafety([]geometry.Point{pt(10, 10), pt(50, 50)}, world)
	assert.True(t, ok)

	ok, reason := route.ValidateSafety([]geometry.Point{pt(-5, 10)}, world)
	assert.False(t, ok)
	assert.Contains(t, reason, "bounds")

	building := fixtures.Square(-1, -1, 1, 1)
	worldWithBuilding := route.WorldFromObstacles(100, 100, []geometry.Polygon{building})
	ok, reason = route.ValidateSafety([]geometry.Point{pt(0, 0)}, worldWithBuilding)
	assert.False(t, ok)
	assert.Contains(t, reason, "building")
}

func TestAnalyzeEfficiency(t *testing.T) {
	empty := route.AnalyzeEfficiency(nil)
	assert.Equal(t, 1.0, empty.EfficiencyRatio)
	assert.Equal(t, 0, empty.NumberOfSegments)

	straightLine := route.AnalyzeEfficiency([]geometry.Point{pt(0, 0), pt(10, 0)})
	assert.InDelta(t, 1.0, straightLine.EfficiencyRatio, 1e-9)
	assert.Equal(t, 1, straightLine.NumberOfSegments)

	detour := route.AnalyzeEfficiency([]geometry.Point{pt(0, 0), pt(5, 5), pt(10, 0)})
	assert.Less(t, detour.EfficiencyRatio, 1.0)
	assert.Equal(t, 2, detour.NumberOfSegments)
}

func TestCompare(t *testing.T) {
	short := []geometry.Point{pt(0, 0), pt(10, 0)}
	long := []geometry.Point{pt(0, 0), pt(0, 10), pt(10, 10), pt(10, 0)}

	best, analyses := route.Compare([][]geometry.Point{long, short})
	assert.Equal(t, 1, best)
	assert.Len(t, analyses, 2)

	best, analyses = route.Compare(nil)
	assert.Equal(t, -1, best)
	assert.Nil(t, analyses)
}
