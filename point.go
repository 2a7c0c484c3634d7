package plot

import (
	"fmt"
	"math"
)

// Point represents a 2D point. Depending on the stage of a transform chain
// the coordinates are (theta, r) data values, normalized axes coordinates,
// or display coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Undefined returns the point used to mark a coordinate that must not be
// rendered or connected. Both coordinates are NaN.
func Undefined() Point {
	return Point{X: math.NaN(), Y: math.NaN()}
}

// IsUndefined reports whether either coordinate is NaN.
func (p Point) IsUndefined() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
