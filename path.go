package plot

import "fmt"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a polyline path.
//
// Paths carry an interpolation step count. Non-affine transforms resample
// each segment into that many sub-segments before mapping the vertices, so
// that straight lines in the input space turn into smooth curves in the
// output space.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
	steps    int
}

// NewPath creates a new empty path with an interpolation step count of 1.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
		steps:    1,
	}
}

// PolyLine creates an open path through pts.
func PolyLine(pts ...Point) *Path {
	p := NewPath()
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	return p
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	if len(p.elements) == 0 {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// InterpolationSteps returns the number of sub-segments each segment is
// split into by non-affine transforms.
func (p *Path) InterpolationSteps() int {
	return p.steps
}

// SetInterpolationSteps sets the interpolation step count. Values below 1
// are treated as 1.
func (p *Path) SetInterpolationSteps(n int) {
	p.steps = max(n, 1)
}

// Vertices returns the vertices of the path in order. Close elements
// contribute no vertex.
func (p *Path) Vertices() []Point {
	out := make([]Point, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out = append(out, e.Point)
		case LineTo:
			out = append(out, e.Point)
		}
	}
	return out
}

// Interpolated returns a copy of the path in which every line segment,
// including the implicit closing segment, is split into steps equal
// sub-segments. A step count of 1 or less returns an unmodified copy.
func (p *Path) Interpolated(steps int) *Path {
	if steps <= 1 {
		c := p.Clone()
		c.steps = 1
		return c
	}
	result := NewPath()
	var start, current Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.MoveTo(e.Point.X, e.Point.Y)
			start, current = e.Point, e.Point
		case LineTo:
			subdivide(result, current, e.Point, steps, true)
			current = e.Point
		case Close:
			if current != start {
				subdivide(result, current, start, steps, false)
			}
			result.Close()
			current = start
		}
	}
	return result
}

// subdivide appends the intermediate vertices between from and to. The
// endpoint itself is appended only when last is set.
func subdivide(dst *Path, from, to Point, steps int, last bool) {
	for k := 1; k < steps; k++ {
		pt := from.Lerp(to, float64(k)/float64(steps))
		dst.LineTo(pt.X, pt.Y)
	}
	if last {
		dst.LineTo(to.X, to.Y)
	}
}

// MapVertices returns a path with the same structure and interpolation step
// count as p, with its vertices replaced by fn(p.Vertices()). fn must
// return exactly as many points as it was given.
func (p *Path) MapVertices(fn func([]Point) []Point) *Path {
	in := p.Vertices()
	out := fn(in)
	if len(out) != len(in) {
		panic(fmt.Sprintf("plot: vertex mapping returned %d points for %d inputs", len(out), len(in)))
	}
	result := NewPath()
	result.steps = p.steps
	i := 0
	for _, elem := range p.elements {
		switch elem.(type) {
		case MoveTo:
			result.MoveTo(out[i].X, out[i].Y)
			i++
		case LineTo:
			result.LineTo(out[i].X, out[i].Y)
			i++
		case Close:
			result.Close()
		}
	}
	return result
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	return p.MapVertices(m.TransformPoints)
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	result.steps = p.steps
	return result
}
