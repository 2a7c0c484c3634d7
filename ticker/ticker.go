// Package ticker locates and labels axis ticks.
//
// A [Locator] proposes tick positions for the view interval of an axis and
// knows how to pan, zoom and round that interval. A [Formatter] turns a
// tick value into a label.
package ticker

import (
	"fmt"
	"math"
	"strconv"
)

// Interval is the view/data interval of the axis a locator works on.
type Interval interface {
	ViewInterval() (vmin, vmax float64)
	SetViewInterval(vmin, vmax float64)
	DataInterval() (dmin, dmax float64)
}

// Locator proposes tick positions.
type Locator interface {
	// Ticks returns the tick positions for the current view interval.
	Ticks() []float64

	// Autoscale returns view limits suited to the current data interval.
	Autoscale() (vmin, vmax float64)

	// Pan shifts the view interval by numSteps ticks.
	Pan(numSteps int)

	// Zoom shrinks (direction > 0) or grows (direction < 0) the view interval.
	Zoom(direction int)

	// Refresh recomputes any cached state.
	Refresh()

	// ViewLimits widens [vmin, vmax] to limits the locator considers nice.
	ViewLimits(vmin, vmax float64) (float64, float64)
}

// Formatter labels tick values. pos is the index of the tick, or -1 when
// the value is not a tick (e.g. a cursor readout).
type Formatter interface {
	Format(x float64, pos int) string
}

// FormatStrFormatter formats values with a fmt verb, e.g. "%.1f".
type FormatStrFormatter struct {
	Layout string
}

// NewFormatStrFormatter returns a formatter using the fmt format string f.
func NewFormatStrFormatter(f string) FormatStrFormatter {
	return FormatStrFormatter{Layout: f}
}

func (f FormatStrFormatter) Format(x float64, _ int) string {
	return fmt.Sprintf(f.Layout, x)
}

// ScalarFormatter prints the shortest representation of a value.
type ScalarFormatter struct{}

func (ScalarFormatter) Format(x float64, _ int) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Nonsingular widens a degenerate or inverted interval so it can be
// divided into ticks. Non-finite input yields (-expander, expander).
func Nonsingular(vmin, vmax, expander float64) (float64, float64) {
	if math.IsNaN(vmin) || math.IsNaN(vmax) || math.IsInf(vmin, 0) || math.IsInf(vmax, 0) {
		return -expander, expander
	}
	if vmax < vmin {
		vmin, vmax = vmax, vmin
	}
	tiny := 1e-15
	if vmax-vmin <= math.Max(math.Abs(vmin), math.Abs(vmax))*tiny {
		if vmin == 0 && vmax == 0 {
			return -expander, expander
		}
		vmin -= expander * math.Abs(vmin)
		vmax += expander * math.Abs(vmax)
	}
	return vmin, vmax
}

// panInterval shifts axis by numSteps tick spacings, or by a sixth of the
// interval when fewer than three ticks are visible.
func panInterval(axis Interval, ticks []float64, numSteps int) {
	vmin, vmax := axis.ViewInterval()
	vmin, vmax = Nonsingular(vmin, vmax, 0.05)
	var step float64
	if len(ticks) > 2 {
		step = float64(numSteps) * math.Abs(ticks[0]-ticks[1])
	} else {
		step = float64(numSteps) * (vmax - vmin) / 6
	}
	axis.SetViewInterval(vmin+step, vmax+step)
}

// zoomInterval narrows axis by 10% per direction unit on each side.
func zoomInterval(axis Interval, direction int) {
	vmin, vmax := axis.ViewInterval()
	vmin, vmax = Nonsingular(vmin, vmax, 0.05)
	step := 0.1 * (vmax - vmin) * float64(direction)
	axis.SetViewInterval(vmin+step, vmax-step)
}
