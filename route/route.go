package route

import (
	"fmt"
	"math"

	"github.com/hmkoh01/dvrp2d/geometry"
)

// roundScale stabilizes distance sums to 1e-9 absolute precision, avoiding
// tiny floating-point drift across platforms without affecting any of the
// comparisons callers make on the result.
const roundScale = 1e9

func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// minEfficiencyDenominator floors the efficiency ratio's denominator, so a
// near-zero-length route never divides by (near) zero.
const minEfficiencyDenominator = 1e-3

// Length returns the total Euclidean length of polyline's consecutive
// segments. An empty or single-point polyline has length 0.
//
// Complexity: O(len(polyline)).
func Length(polyline []geometry.Point) float64 {
	var total float64
	for i := 0; i < len(polyline)-1; i++ {
		a, b := polyline[i], polyline[i+1]
		total += math.Hypot(a.X-b.X, a.Y-b.Y)
	}
	return round1e9(total)
}

// ValidateFeasibility reports whether polyline is flyable by drone: the
// polyline's length must fit within the drone's battery range, and its
// estimated flight time must fit within the host's maximum order delay.
func ValidateFeasibility(polyline []geometry.Point, drone DroneSpec) (bool, string) {
	total := Length(polyline)
	maxRange := drone.BatteryLevel * drone.Speed * drone.BatteryLifeSeconds
	if total > maxRange {
		return false, fmt.Sprintf("route distance %.2f exceeds battery range %.2f", total, maxRange)
	}

	elapsed := total / drone.Speed
	if elapsed > drone.MaxOrderDelaySeconds {
		return false, fmt.Sprintf("estimated flight time %.2fs exceeds maximum %.2fs", elapsed, drone.MaxOrderDelaySeconds)
	}

	return true, "route is feasible"
}

// ValidateSafety reports whether every vertex of polyline lies within
// world's bounds and outside every building.
func ValidateSafety(polyline []geometry.Point, world WorldSpec) (bool, string) {
	for _, p := range polyline {
		if p.X < 0 || p.X > world.Width || p.Y < 0 || p.Y > world.Height {
			return false, fmt.Sprintf("position (%.2f, %.2f) is outside world bounds", p.X, p.Y)
		}
		if id, found := world.buildingAt(p); found {
			return false, fmt.Sprintf("position (%.2f, %.2f) collides with building %s", p.X, p.Y, id)
		}
	}
	return true, "route is safe"
}

// AnalyzeEfficiency computes route analytics comparing the flown distance
// to the straight-line distance. For a polyline of fewer than 2 points,
// every field is zero except EfficiencyRatio, which is 1.0.
func AnalyzeEfficiency(polyline []geometry.Point) Efficiency {
	if len(polyline) < 2 {
		return Efficiency{EfficiencyRatio: 1.0}
	}

	total := Length(polyline)
	straight := math.Hypot(
		polyline[len(polyline)-1].X-polyline[0].X,
		polyline[len(polyline)-1].Y-polyline[0].Y,
	)

	return Efficiency{
		TotalDistance:    total,
		StraightDistance: round1e9(straight),
		EfficiencyRatio:  straight / math.Max(total, minEfficiencyDenominator),
		NumberOfSegments: len(polyline) - 1,
	}
}

// Compare analyzes every route in routes and reports the index of the one
// with the shortest total distance. For an empty input, the returned index
// is -1.
func Compare(routes [][]geometry.Point) (bestIndex int, analyses []Efficiency) {
	if len(routes) == 0 {
		return -1, nil
	}

	analyses = make([]Efficiency, len(routes))
	best := -1
	for i, r := range routes {
		analyses[i] = AnalyzeEfficiency(r)
		if best == -1 || analyses[i].TotalDistance < analyses[best].TotalDistance {
			best = i
		}
	}
	return best, analyses
}
