// Package polar implements polar axes: the (theta, r) to display
// projection, the gridline and label transforms renderers draw with, and
// the interactive pan gesture that drags radius labels or zooms.
//
// # Transforms
//
// The data transform of an [Axes] is the chain
//
//	scale → projection(rmin) → radial scale → axes box
//
// The projection subtracts the minimum radius, so with a positive rmin the
// centre of the plot shows rmin rather than 0 and smaller radii are
// undefined. The radial scale maps the view limits onto the circle of
// radius 0.5 around (0.5, 0.5) in axes coordinates. Every transform
// returned by an Axes stays live while limits and scales change.
//
// Angular gridlines use a separate chain that ignores the radial limits,
// so they always span centre to edge.
//
// # Interaction
//
// [Axes.StartPan], [Axes.DragPan] and [Axes.EndPan] form a small state
// machine driven by pointer events. A left-button press near the radius
// labels rotates them; a right-button press zooms by changing rmax.
//
//	mode := ax.StartPan(x, y, polar.ButtonRight)
//	if err := ax.DragPan(polar.ButtonRight, "", x2, y2); err != nil {
//	    // ErrDegenerateZoom: the gesture touched the centre
//	}
//	_ = ax.EndPan()
package polar
