// Package transform builds graphs of 2D coordinate transforms.
//
// A transform graph is assembled from small nodes: affine nodes ([Fixed],
// [Affine2D], [BboxTo]), non-affine nodes provided by other packages (axis
// scales, projections), and composites built with [Compose] and [Chain].
// Composition is left to right:
//
//	data := transform.Chain(scale, projection, viewport)
//	display := data.TransformPoints(pts)
//
// # Invalidation
//
// Nodes that depend on mutable state register that state as a child (see
// [Base.SetChildren]). Mutating a [Bbox] or an [Affine2D] invalidates every
// node above it, and nodes that cache a matrix recompute it lazily on the
// next read. No locking is performed: a graph belongs to a single goroutine.
//
// An inverse registers with the graph like any other node, so each node
// builds it once and [Node.Inverted] returns the same node on every call.
//
// # Snapshots
//
// [Node.Frozen] returns a copy that ignores later mutations and shares no
// node with the live graph. Interactive gestures freeze the data transform
// at the start of a drag so that every drag event is measured against the
// same reference.
package transform
