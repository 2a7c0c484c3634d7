package polar

import (
	"errors"
	"fmt"
)

// Sentinel errors for the polar package.
var (
	// ErrNoGesture is returned by DragPan and EndPan when no gesture was
	// started with StartPan.
	ErrNoGesture = errors.New("polar: no pan gesture in progress")

	// ErrDegenerateZoom is returned by DragPan in zoom mode when the
	// reference radius under the pointer is zero, so no zoom factor exists.
	ErrDegenerateZoom = errors.New("polar: zoom reference radius is zero")

	// ErrNonPositiveGrid is returned when a radial gridline is at or below
	// radius 0.
	ErrNonPositiveGrid = errors.New("polar: radial grids must be strictly positive")

	// ErrThetaScale is returned when a non-linear angular scale is requested.
	ErrThetaScale = errors.New("polar: the theta axis only supports a linear scale")

	// ErrScaleDomain is returned when a radial limit lies outside the domain
	// of the radial scale (e.g. rmin <= 0 on a log scale).
	ErrScaleDomain = errors.New("polar: radial limit outside scale domain")

	// ErrUnknownTransform is returned by Axes.Transform for unknown names.
	ErrUnknownTransform = errors.New("polar: unknown transform")

	// ErrLabelCount is returned when grid labels do not match the grid
	// positions one to one.
	ErrLabelCount = errors.New("polar: label count does not match grid count")
)

// ScaleError reports a rejected axis scale request.
type ScaleError struct {
	Axis string // "theta" or "r"
	Name string
	Err  error
}

func (e *ScaleError) Error() string {
	return fmt.Sprintf("polar: cannot set %s scale %q: %v", e.Axis, e.Name, e.Err)
}

func (e *ScaleError) Unwrap() error { return e.Err }

// LimitError reports rejected radial limits.
type LimitError struct {
	RMin, RMax float64
	Err        error
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("polar: invalid radial limits [%g, %g]: %v", e.RMin, e.RMax, e.Err)
}

func (e *LimitError) Unwrap() error { return e.Err }
