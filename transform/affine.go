package transform

import "github.com/gogpu/plot"

// Fixed is an immutable affine node.
type Fixed struct {
	Base
	mtx plot.Matrix
}

// NewFixed returns an affine node that always applies m.
func NewFixed(m plot.Matrix) *Fixed {
	return &Fixed{mtx: m}
}

// Identity returns an affine node that leaves points unchanged.
func Identity() *Fixed {
	return NewFixed(plot.Identity())
}

func (f *Fixed) Matrix() plot.Matrix { return f.mtx }

func (f *Fixed) TransformPoints(pts []plot.Point) []plot.Point {
	return f.mtx.TransformPoints(pts)
}

func (f *Fixed) TransformPath(p *plot.Path) *plot.Path {
	return p.Transform(f.mtx)
}

func (f *Fixed) Inverted() Node { return NewFixed(f.mtx.Invert()) }

// Frozen returns a copy, so composing a snapshot never links it to f.
func (f *Fixed) Frozen() Node { return NewFixed(f.mtx) }

// Affine2D is a mutable affine node. Every mutation invalidates the nodes
// that depend on it.
//
// The builder methods return the receiver so calls can be chained:
//
//	label := transform.NewAffine2D().Translate(22.5, 0.05)
//	label.Clear().Translate(12.5, 0.05)
type Affine2D struct {
	Base
	mtx plot.Matrix
}

// NewAffine2D returns an Affine2D initialised to the identity.
func NewAffine2D() *Affine2D {
	return &Affine2D{mtx: plot.Identity()}
}

// Matrix returns the current matrix.
func (a *Affine2D) Matrix() plot.Matrix { return a.mtx }

// Values returns the matrix coefficients; see [plot.Matrix.Values].
func (a *Affine2D) Values() [6]float64 { return a.mtx.Values() }

// Set replaces the matrix.
func (a *Affine2D) Set(m plot.Matrix) *Affine2D {
	a.mtx = m
	a.Invalidate()
	return a
}

// Clear resets the matrix to the identity.
func (a *Affine2D) Clear() *Affine2D {
	return a.Set(plot.Identity())
}

// Translate appends a translation to the current matrix.
func (a *Affine2D) Translate(x, y float64) *Affine2D {
	return a.Set(a.mtx.ThenTranslate(x, y))
}

// Scale appends a scaling to the current matrix.
func (a *Affine2D) Scale(x, y float64) *Affine2D {
	return a.Set(a.mtx.ThenScale(x, y))
}

func (a *Affine2D) TransformPoints(pts []plot.Point) []plot.Point {
	return a.mtx.TransformPoints(pts)
}

func (a *Affine2D) TransformPath(p *plot.Path) *plot.Path {
	return p.Transform(a.mtx)
}

func (a *Affine2D) Inverted() Node {
	return a.CachedInverse(func() Node { return InvertAffine(a) })
}
func (a *Affine2D) Frozen() Node   { return NewFixed(a.mtx) }

// InvertAffine returns a new node computing the inverse of a's matrix. The
// inverse matrix is cached and recomputed whenever a is invalidated. Each
// call registers another dependent on a; Inverted methods memoise it.
func InvertAffine(a Affine) Affine {
	inv := &inverted{of: a}
	inv.SetChildren(a)
	return inv
}

type inverted struct {
	Base
	of  Affine
	mtx plot.Matrix
}

func (i *inverted) Matrix() plot.Matrix {
	if !i.Valid() {
		i.mtx = i.of.Matrix().Invert()
		i.Validate()
	}
	return i.mtx
}

func (i *inverted) TransformPoints(pts []plot.Point) []plot.Point {
	return i.Matrix().TransformPoints(pts)
}

func (i *inverted) TransformPath(p *plot.Path) *plot.Path {
	return p.Transform(i.Matrix())
}

func (i *inverted) Inverted() Node { return i.of }
func (i *inverted) Frozen() Node   { return NewFixed(i.Matrix()) }
