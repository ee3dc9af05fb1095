package gcodegen

import (
	"math"
)

const (
	minimumSegments   = 20
	segmentsPerRadius = 6.0
)

// circleSegments is the number of straight segments used for a circle of radius.
func circleSegments(radius float64) int {
	n := math.Round(segmentsPerRadius * radius)
	if n < minimumSegments || math.IsNaN(n) {
		return minimumSegments
	}
	return int(n)
}

// circleTo walks the perimeter of a circle counter-clockwise, starting and ending at
// (center.X + radius, center.Y); the starting point is not passed to linearTo.
func circleTo(center Position, radius float64, linearTo func(pos Position) error) error {
	start := Position{X: center.X + radius, Y: center.Y, Z: center.Z}
	n := circleSegments(radius)
	inc := math.Pi * 2.0 / float64(n)
	for i := 1; i < n; i += 1 {
		a := inc * float64(i)
		err := linearTo(Position{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
			Z: center.Z,
		})
		if err != nil {
			return err
		}
	}

	return linearTo(start)
}
