package route

import (
	"strconv"

	"github.com/hmkoh01/dvrp2d/geometry"
)

// DroneSpec is a narrow, consumed-not-defined view of a drone: the host
// owns the real Drone entity (battery, position, assigned order); this is
// the narrow read-only view route validation needs.
type DroneSpec struct {
	// BatteryLevel is the fraction of battery remaining, in [0, 1].
	BatteryLevel float64

	// Speed is the drone's cruising speed, in the same distance unit per
	// second as the polyline's coordinates.
	Speed float64

	// BatteryLifeSeconds and MaxOrderDelaySeconds are host-supplied,
	// process-wide constants: no ambient global reads them, they arrive on
	// every call via this struct.
	BatteryLifeSeconds   float64
	MaxOrderDelaySeconds float64
}

// WorldSpec is a consumed-not-defined view of the world: width, height,
// and an opaque building-lookup the host owns.
type WorldSpec struct {
	Width  float64
	Height float64

	// Obstacles backs the default BuildingAt lookup (see WorldFromObstacles).
	// A host with its own spatial index may leave this nil and set
	// BuildingAt directly instead.
	Obstacles []geometry.Polygon

	// BuildingAt reports whether q falls inside a building, and if so an
	// opaque identifier for it. When nil, ValidateSafety falls back to a
	// linear scan of Obstacles.
	BuildingAt func(q geometry.Point) (id string, found bool)
}

// WorldFromObstacles builds a WorldSpec whose BuildingAt lookup scans
// obstacles directly; a convenience for hosts (and tests) that have not
// wired up their own spatial index yet.
func WorldFromObstacles(width, height float64, obstacles []geometry.Polygon) WorldSpec {
	return WorldSpec{Width: width, Height: height, Obstacles: obstacles}
}

func (w WorldSpec) buildingAt(q geometry.Point) (string, bool) {
	if w.BuildingAt != nil {
		return w.BuildingAt(q)
	}
	for i, obstacle := range w.Obstacles {
		if geometry.PointInPolygon(obstacle, q) {
			return strconv.Itoa(i), true
		}
	}
	return "", false
}

// Efficiency is the result of AnalyzeEfficiency.
type Efficiency struct {
	TotalDistance    float64
	StraightDistance float64
	EfficiencyRatio  float64
	NumberOfSegments int
}
