package polar

import (
	"math"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/transform"
)

// RadiusSource reports the radius mapped onto the centre of the plot, in
// the coordinates the projection receives, and whether radii below it are
// clipped. It is read on every evaluation, so a projection bound to a
// source follows later limit changes.
//
// The two results differ in meaning under a non-linear radial scale: a
// log-scaled minimum radius of 1 is 0 after scaling, yet points below it
// must still be clipped.
type RadiusSource func() (rmin float64, clip bool)

// FixedRadius returns a source that always reports rmin, clipping below it
// unless it is zero.
func FixedRadius(rmin float64) RadiusSource {
	return func() (float64, bool) { return rmin, rmin != 0 }
}

// Projection maps (theta, r) to Cartesian (x, y).
//
// A projection bound to a RadiusSource subtracts the current minimum
// radius before projecting and, when the source asks for it, marks points
// below it as undefined. An unbound projection always projects around
// r = 0; gridlines use it so that they do not depend on the data limits.
type Projection struct {
	transform.Base
	rmin RadiusSource
}

// NewProjection returns a forward polar projection. rmin may be nil.
func NewProjection(rmin RadiusSource) *Projection {
	return &Projection{rmin: rmin}
}

func minRadius(src RadiusSource) (float64, bool) {
	if src == nil {
		return 0, false
	}
	return src()
}

func (p *Projection) TransformPoints(pts []plot.Point) []plot.Point {
	rmin, clip := minRadius(p.rmin)
	out := make([]plot.Point, len(pts))
	for i, tr := range pts {
		out[i] = project(tr.X, tr.Y, rmin, clip)
	}
	return out
}

// project maps (theta, r) with r measured from rmin. NaN radii, such as
// the log of a negative radius, are clipped too.
func project(theta, r, rmin float64, clip bool) plot.Point {
	r -= rmin
	if clip && !(r >= 0) {
		return plot.Undefined()
	}
	sin, cos := math.Sincos(theta)
	return plot.Point{X: r * cos, Y: r * sin}
}

// TransformPath projects the vertices of path. A two-vertex path at a
// constant angle is a radial segment and stays straight, so it is projected
// as is; any other path is first resampled with its interpolation step
// count so that arcs come out smooth.
func (p *Projection) TransformPath(path *plot.Path) *plot.Path {
	v := path.Vertices()
	if len(v) == 2 && v[0].X == v[1].X {
		return path.MapVertices(p.TransformPoints)
	}
	return path.Interpolated(path.InterpolationSteps()).MapVertices(p.TransformPoints)
}

// Inverted returns the inverse projection bound to the same radius source.
func (p *Projection) Inverted() transform.Node {
	return NewInverseProjection(p.rmin)
}

// Frozen returns a projection bound to the current minimum radius.
func (p *Projection) Frozen() transform.Node {
	if p.rmin == nil {
		return NewProjection(nil)
	}
	return NewProjection(constRadius(minRadius(p.rmin)))
}

func constRadius(rmin float64, clip bool) RadiusSource {
	return func() (float64, bool) { return rmin, clip }
}

// InverseProjection maps Cartesian (x, y) back to (theta, r) with theta in
// [0, 2π]. The angle of the origin is undefined and comes out as NaN.
type InverseProjection struct {
	transform.Base
	rmin RadiusSource
}

// NewInverseProjection returns an inverse polar projection. rmin may be nil.
func NewInverseProjection(rmin RadiusSource) *InverseProjection {
	return &InverseProjection{rmin: rmin}
}

func (p *InverseProjection) TransformPoints(pts []plot.Point) []plot.Point {
	rmin, _ := minRadius(p.rmin)
	out := make([]plot.Point, len(pts))
	for i, xy := range pts {
		out[i] = unproject(xy.X, xy.Y, rmin)
	}
	return out
}

func unproject(x, y, rmin float64) plot.Point {
	rho := math.Hypot(x, y)
	theta := math.Acos(clampUnit(x / rho))
	if y < 0 {
		theta = 2*math.Pi - theta
	}
	return plot.Point{X: theta, Y: rho + rmin}
}

// clampUnit clamps rounding overshoot into [-1, 1]. NaN passes through.
func clampUnit(c float64) float64 {
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}

func (p *InverseProjection) TransformPath(path *plot.Path) *plot.Path {
	return path.MapVertices(p.TransformPoints)
}

// Inverted returns the forward projection bound to the same radius source.
func (p *InverseProjection) Inverted() transform.Node {
	return NewProjection(p.rmin)
}

func (p *InverseProjection) Frozen() transform.Node {
	if p.rmin == nil {
		return NewInverseProjection(nil)
	}
	return NewInverseProjection(constRadius(minRadius(p.rmin)))
}
