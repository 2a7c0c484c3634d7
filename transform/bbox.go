package transform

import (
	"fmt"
	"math"

	"github.com/gogpu/plot"
)

// Bbox is a mutable axis-aligned box given by two corners (x0, y0) and
// (x1, y1). The corners are not required to be ordered. Nodes that depend
// on a Bbox register it as a child and are invalidated by every setter.
type Bbox struct {
	Base
	x0, y0, x1, y1 float64
}

// NewBbox returns a box with corners (x0, y0) and (x1, y1).
func NewBbox(x0, y0, x1, y1 float64) *Bbox {
	return &Bbox{x0: x0, y0: y0, x1: x1, y1: y1}
}

// UnitBbox returns the box from (0, 0) to (1, 1).
func UnitBbox() *Bbox {
	return NewBbox(0, 0, 1, 1)
}

func (b *Bbox) X0() float64 { return b.x0 }
func (b *Bbox) Y0() float64 { return b.y0 }
func (b *Bbox) X1() float64 { return b.x1 }
func (b *Bbox) Y1() float64 { return b.y1 }

func (b *Bbox) XMin() float64 { return math.Min(b.x0, b.x1) }
func (b *Bbox) XMax() float64 { return math.Max(b.x0, b.x1) }
func (b *Bbox) YMin() float64 { return math.Min(b.y0, b.y1) }
func (b *Bbox) YMax() float64 { return math.Max(b.y0, b.y1) }

// Width returns x1 - x0, which is negative for a flipped box.
func (b *Bbox) Width() float64 { return b.x1 - b.x0 }

// Height returns y1 - y0, which is negative for a flipped box.
func (b *Bbox) Height() float64 { return b.y1 - b.y0 }

// SetPoints replaces both corners.
func (b *Bbox) SetPoints(x0, y0, x1, y1 float64) {
	b.x0, b.y0, b.x1, b.y1 = x0, y0, x1, y1
	b.Invalidate()
}

// SetIntervalX replaces the x interval.
func (b *Bbox) SetIntervalX(x0, x1 float64) {
	b.SetPoints(x0, b.y0, x1, b.y1)
}

// SetIntervalY replaces the y interval.
func (b *Bbox) SetIntervalY(y0, y1 float64) {
	b.SetPoints(b.x0, y0, b.x1, y1)
}

// Transformed returns a new, unlinked box whose corners are the images of
// b's corners under n.
func (b *Bbox) Transformed(n Node) *Bbox {
	pts := n.TransformPoints([]plot.Point{{X: b.x0, Y: b.y0}, {X: b.x1, Y: b.y1}})
	return NewBbox(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
}

// Frozen returns an unlinked copy of b.
func (b *Bbox) Frozen() *Bbox {
	return NewBbox(b.x0, b.y0, b.x1, b.y1)
}

func (b *Bbox) String() string {
	return fmt.Sprintf("Bbox(x0=%g, y0=%g, x1=%g, y1=%g)", b.x0, b.y0, b.x1, b.y1)
}

// BboxTo is the affine node mapping the unit square onto a box. Placing
// axes on a canvas is a BboxTo of the axes position in display space.
type BboxTo struct {
	Base
	box *Bbox
	mtx plot.Matrix
}

// BboxTransformTo returns a node mapping the unit square onto box. The
// node follows later changes to box.
func BboxTransformTo(box *Bbox) *BboxTo {
	t := &BboxTo{box: box}
	t.SetChildren(box)
	return t
}

func (t *BboxTo) Matrix() plot.Matrix {
	if !t.Valid() {
		t.mtx = plot.Scale(t.box.Width(), t.box.Height()).ThenTranslate(t.box.X0(), t.box.Y0())
		t.Validate()
	}
	return t.mtx
}

func (t *BboxTo) TransformPoints(pts []plot.Point) []plot.Point {
	return t.Matrix().TransformPoints(pts)
}

func (t *BboxTo) TransformPath(p *plot.Path) *plot.Path {
	return p.Transform(t.Matrix())
}

func (t *BboxTo) Inverted() Node {
	return t.CachedInverse(func() Node { return InvertAffine(t) })
}
func (t *BboxTo) Frozen() Node   { return NewFixed(t.Matrix()) }
