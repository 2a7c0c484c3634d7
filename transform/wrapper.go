package transform

import "github.com/gogpu/plot"

// Wrapper is a node whose child can be replaced after the graph has been
// built. Replacing the child invalidates every dependent, so an axes can
// switch e.g. from a linear to a logarithmic scale without rebuilding its
// transform chains.
type Wrapper struct {
	Base
	child Node
}

// NewWrapper returns a Wrapper around child.
func NewWrapper(child Node) *Wrapper {
	w := &Wrapper{child: child}
	w.SetChildren(child)
	return w
}

// Child returns the wrapped node.
func (w *Wrapper) Child() Node {
	return w.child
}

// Set replaces the wrapped node.
func (w *Wrapper) Set(child Node) {
	w.Unlink(w.child)
	w.child = child
	w.SetChildren(child)
	w.Invalidate()
}

func (w *Wrapper) TransformPoints(pts []plot.Point) []plot.Point {
	return w.child.TransformPoints(pts)
}

func (w *Wrapper) TransformPath(p *plot.Path) *plot.Path {
	return w.child.TransformPath(p)
}

// Inverted returns the inverse of whatever child the wrapper holds at
// evaluation time.
func (w *Wrapper) Inverted() Node {
	return w.CachedInverse(func() Node {
		inv := &wrapperInverse{w: w}
		inv.SetChildren(w)
		return inv
	})
}

func (w *Wrapper) Frozen() Node { return w.child.Frozen() }

// wrapperInverse follows the child of a Wrapper across Set.
type wrapperInverse struct {
	Base
	w *Wrapper
}

func (i *wrapperInverse) TransformPoints(pts []plot.Point) []plot.Point {
	return i.w.child.Inverted().TransformPoints(pts)
}

func (i *wrapperInverse) TransformPath(p *plot.Path) *plot.Path {
	return i.w.child.Inverted().TransformPath(p)
}

func (i *wrapperInverse) Inverted() Node { return i.w }
func (i *wrapperInverse) Frozen() Node   { return i.w.child.Inverted().Frozen() }
