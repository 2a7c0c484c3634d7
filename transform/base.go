package transform

import "slices"

// Base is the invalidation record embedded by every node of a transform
// graph, including mutable boxes.
//
// A node registers itself as a dependent of its children with
// [Base.SetChildren]. Invalidating a node marks it and every node that
// transitively depends on it as stale; nodes that cache a matrix recompute
// it on the next read and then call [Base.Validate].
//
// The zero value is a stale node with no dependents.
type Base struct {
	dependents []*Base
	valid      bool
	version    uint64
	inverse    Node
}

// Child is anything a transform node can depend on.
type Child interface {
	GraphNode() *Base
}

// GraphNode returns b. It makes every type embedding Base a [Child].
func (b *Base) GraphNode() *Base {
	return b
}

// SetChildren registers b as a dependent of each child, so that
// invalidating a child also invalidates b.
func (b *Base) SetChildren(children ...Child) {
	for _, c := range children {
		n := c.GraphNode()
		if !slices.Contains(n.dependents, b) {
			n.dependents = append(n.dependents, b)
		}
	}
}

// CachedInverse returns the inverse stored on b, building it on first use.
// Inverses register themselves with the graph, so nodes return the same
// inverse every time instead of adding a dependent per call.
func (b *Base) CachedInverse(build func() Node) Node {
	if b.inverse == nil {
		b.inverse = build()
	}
	return b.inverse
}

// Unlink removes b from the dependents of child.
func (b *Base) Unlink(child Child) {
	n := child.GraphNode()
	n.dependents = slices.DeleteFunc(n.dependents, func(d *Base) bool { return d == b })
}

// Invalidate marks b and all of its transitive dependents as stale and
// bumps their versions.
func (b *Base) Invalidate() {
	b.valid = false
	b.version++
	for _, d := range b.dependents {
		d.Invalidate()
	}
}

// Valid reports whether a cached value derived from this node is current.
func (b *Base) Valid() bool {
	return b.valid
}

// Validate marks the node's cache as current.
func (b *Base) Validate() {
	b.valid = true
}

// Version returns a counter that changes every time the node is
// invalidated.
func (b *Base) Version() uint64 {
	return b.version
}
