package polar

import (
	"math"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/transform"
)

// MouseButton identifies the pointer button that started a gesture.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// PanMode is what a pan gesture manipulates.
type PanMode int

const (
	// PanNone ignores drag events.
	PanNone PanMode = iota
	// PanDragLabels rotates the radius labels around the centre.
	PanDragLabels
	// PanZoom changes the maximum radius.
	PanZoom
)

func (m PanMode) String() string {
	switch m {
	case PanNone:
		return "none"
	case PanDragLabels:
		return "drag-labels"
	case PanZoom:
		return "zoom"
	default:
		return "unknown"
	}
}

// labelGrabTolerance is how close, in radians, a left-button press must be
// to the radius labels to grab them.
const labelGrabTolerance = math.Pi / 45

// gesture is either idle or dragging.
type gesture interface {
	isGesture()
}

type idle struct{}

func (idle) isGesture() {}

// dragging holds the state frozen when the gesture started.
type dragging struct {
	mode       PanMode
	rmax       float64
	trans      transform.Node
	inverse    transform.Node
	labelAngle float64 // degrees
	start      plot.Point
}

func (*dragging) isGesture() {}

// Panning reports whether a pan gesture is in progress.
func (a *Axes) Panning() bool {
	_, ok := a.gesture.(*dragging)
	return ok
}

// StartPan begins a pan gesture at display position (x, y) and returns the
// selected mode. A left-button press on the radius labels drags them; a
// right-button press zooms; anything else, or any press on axes with no
// display area, starts a gesture whose drags do nothing. Starting while a gesture is in progress ends that gesture
// first.
func (a *Axes) StartPan(x, y float64, button MouseButton) PanMode {
	if a.Panning() {
		plot.Logger().Debug("polar: pan restarted before end")
		a.gesture = idle{}
	}

	angle := a.RLabelAngle() * math.Pi / 180
	mode := PanNone
	switch {
	case !a.transAffine.Matrix().Invertible():
		plot.Logger().Warn("polar: axes cover no display area, pan ignored", "x", x, "y", y)
	case button == ButtonLeft:
		t := transform.TransformPoint(a.transData.Inverted(), plot.Pt(x, y)).X
		if math.Abs(wrapAngle(t-angle)) <= labelGrabTolerance {
			mode = PanDragLabels
		}
	case button == ButtonRight:
		mode = PanZoom
	}

	a.gesture = &dragging{
		mode:       mode,
		rmax:       a.RMax(),
		trans:      a.transData.Frozen(),
		inverse:    a.transData.Inverted().Frozen(),
		labelAngle: a.RLabelAngle(),
		start:      plot.Pt(x, y),
	}
	plot.Logger().Debug("polar: pan started", "mode", mode, "x", x, "y", y)
	return mode
}

// DragPan updates the gesture for the pointer now being at (x, y). The
// button and modifier keys are accepted for dispatcher compatibility.
//
// It returns ErrNoGesture without StartPan, and ErrDegenerateZoom when a
// zoom gesture started at, or is dragged to, the centre of the plot; the
// limits are left unchanged in that case.
func (a *Axes) DragPan(button MouseButton, key string, x, y float64) error {
	g, ok := a.gesture.(*dragging)
	if !ok {
		return ErrNoGesture
	}
	switch g.mode {
	case PanDragLabels:
		a.dragLabels(g, x, y)
	case PanZoom:
		return a.zoom(g, x, y)
	}
	return nil
}

func (a *Axes) dragLabels(g *dragging, x, y float64) {
	pts := g.inverse.TransformPoints([]plot.Point{g.start, plot.Pt(x, y)})
	startT, t := pts[0].X, pts[1].X

	// The label moves the short way round, opposite to dt.
	dt := -wrapAngle(t-startT) * 180 / math.Pi

	rpad := a.rLabel1.Values()[5]
	a.rLabel1.Clear().Translate(g.labelAngle-dt, rpad)
	a.rLabel2.Clear().Translate(g.labelAngle-dt, -rpad)
}

func (a *Axes) zoom(g *dragging, x, y float64) error {
	pts := g.inverse.TransformPoints([]plot.Point{g.start, plot.Pt(x, y)})
	startR, r := pts[0].Y, pts[1].Y
	if startR == 0 || r == 0 || math.IsNaN(startR) || math.IsNaN(r) {
		return ErrDegenerateZoom
	}
	scale := r / startR
	return a.SetRMax(g.rmax / scale)
}

// EndPan finishes the gesture. Changes made while dragging are kept.
func (a *Axes) EndPan() error {
	if !a.Panning() {
		return ErrNoGesture
	}
	a.gesture = idle{}
	plot.Logger().Debug("polar: pan ended")
	return nil
}

// wrapAngle maps d onto (-π, π].
func wrapAngle(d float64) float64 {
	d = math.Mod(d, 2*math.Pi)
	switch {
	case d > math.Pi:
		d -= 2 * math.Pi
	case d <= -math.Pi:
		d += 2 * math.Pi
	}
	return d
}
