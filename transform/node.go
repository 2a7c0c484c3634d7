package transform

import "github.com/gogpu/plot"

// Node is a 2D transform that participates in a transform graph.
type Node interface {
	Child

	// TransformPoints maps a batch of points. The input is not modified.
	TransformPoints(pts []plot.Point) []plot.Point

	// TransformPath maps the vertices of a path. Non-affine nodes may
	// resample the path first, using its interpolation step count.
	TransformPath(p *plot.Path) *plot.Path

	// Inverted returns the inverse transform. Inverses of nodes that depend
	// on mutable state track that state.
	Inverted() Node

	// Frozen returns a snapshot that no longer follows later changes to
	// the node or its dependencies.
	Frozen() Node
}

// Affine is a Node that can be expressed as a single matrix.
type Affine interface {
	Node
	Matrix() plot.Matrix
}

// TransformPoint maps a single point through n.
func TransformPoint(n Node, p plot.Point) plot.Point {
	return n.TransformPoints([]plot.Point{p})[0]
}

// Compose returns a node that applies a and then b.
// If both are affine, the result is affine and caches the product matrix.
func Compose(a, b Node) Node {
	aa, aok := a.(Affine)
	ba, bok := b.(Affine)
	if aok && bok {
		c := &compositeAffine{a: aa, b: ba}
		c.SetChildren(aa, ba)
		return c
	}
	c := &composite{a: a, b: b}
	c.SetChildren(a, b)
	return c
}

// Chain composes nodes left to right: the first node is applied first.
// Chain panics if nodes is empty.
func Chain(nodes ...Node) Node {
	if len(nodes) == 0 {
		panic("transform: Chain of no nodes")
	}
	n := nodes[0]
	for _, next := range nodes[1:] {
		n = Compose(n, next)
	}
	return n
}

// composite is a left-to-right composition of two nodes, at least one of
// which is non-affine.
type composite struct {
	Base
	a, b Node
}

func (c *composite) TransformPoints(pts []plot.Point) []plot.Point {
	return c.b.TransformPoints(c.a.TransformPoints(pts))
}

func (c *composite) TransformPath(p *plot.Path) *plot.Path {
	return c.b.TransformPath(c.a.TransformPath(p))
}

func (c *composite) Inverted() Node {
	return c.CachedInverse(func() Node { return Compose(c.b.Inverted(), c.a.Inverted()) })
}

func (c *composite) Frozen() Node {
	return Compose(c.a.Frozen(), c.b.Frozen())
}

// compositeAffine is the composition of two affine nodes.
type compositeAffine struct {
	Base
	a, b Affine
	mtx  plot.Matrix
}

func (c *compositeAffine) Matrix() plot.Matrix {
	if !c.Valid() {
		c.mtx = c.a.Matrix().Then(c.b.Matrix())
		c.Validate()
	}
	return c.mtx
}

func (c *compositeAffine) TransformPoints(pts []plot.Point) []plot.Point {
	return c.Matrix().TransformPoints(pts)
}

func (c *compositeAffine) TransformPath(p *plot.Path) *plot.Path {
	return p.Transform(c.Matrix())
}

func (c *compositeAffine) Inverted() Node {
	return c.CachedInverse(func() Node { return InvertAffine(c) })
}
func (c *compositeAffine) Frozen() Node   { return NewFixed(c.Matrix()) }
