package ticker

import (
	"math"
	"slices"
)

// FixedLocator always returns the same tick positions.
type FixedLocator struct {
	axis Interval
	locs []float64
}

// NewFixedLocator returns a locator with the given tick positions.
func NewFixedLocator(axis Interval, locs []float64) *FixedLocator {
	return &FixedLocator{axis: axis, locs: slices.Clone(locs)}
}

func (l *FixedLocator) Ticks() []float64 { return slices.Clone(l.locs) }

func (l *FixedLocator) Autoscale() (float64, float64) {
	return l.ViewLimits(l.axis.DataInterval())
}

func (l *FixedLocator) Pan(numSteps int)   { panInterval(l.axis, l.Ticks(), numSteps) }
func (l *FixedLocator) Zoom(direction int) { zoomInterval(l.axis, direction) }
func (l *FixedLocator) Refresh()           {}

func (l *FixedLocator) ViewLimits(vmin, vmax float64) (float64, float64) {
	return Nonsingular(vmin, vmax, 0.05)
}

// niceSteps are the mantissas MaxNLocator chooses tick spacings from.
var niceSteps = []float64{1, 2, 2.5, 5, 10}

// MaxNLocator places at most n+1 ticks at multiples of a "nice" spacing
// (1, 2, 2.5 or 5 times a power of ten).
type MaxNLocator struct {
	axis Interval
	n    int
}

// NewMaxNLocator returns a locator dividing the view into at most n
// intervals. n below 1 is treated as 1.
func NewMaxNLocator(axis Interval, n int) *MaxNLocator {
	return &MaxNLocator{axis: axis, n: max(n, 1)}
}

// step returns the tick spacing for [vmin, vmax].
func (l *MaxNLocator) step(vmin, vmax float64) float64 {
	raw := (vmax - vmin) / float64(l.n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, s := range niceSteps {
		if s*mag >= raw*(1-1e-9) {
			return s * mag
		}
	}
	return 10 * mag
}

func (l *MaxNLocator) Ticks() []float64 {
	vmin, vmax := l.axis.ViewInterval()
	vmin, vmax = Nonsingular(vmin, vmax, 0.05)
	step := l.step(vmin, vmax)
	first := math.Ceil(vmin/step - 1e-9)
	last := math.Floor(vmax/step + 1e-9)
	ticks := make([]float64, 0, int(last-first)+1)
	for k := first; k <= last; k++ {
		v := k * step
		if v == 0 {
			v = 0 // normalise -0
		}
		ticks = append(ticks, v)
	}
	return ticks
}

func (l *MaxNLocator) Autoscale() (float64, float64) {
	return l.ViewLimits(l.axis.DataInterval())
}

func (l *MaxNLocator) Pan(numSteps int)   { panInterval(l.axis, l.Ticks(), numSteps) }
func (l *MaxNLocator) Zoom(direction int) { zoomInterval(l.axis, direction) }
func (l *MaxNLocator) Refresh()           {}

// ViewLimits rounds the interval outwards to multiples of the tick spacing.
func (l *MaxNLocator) ViewLimits(vmin, vmax float64) (float64, float64) {
	vmin, vmax = Nonsingular(vmin, vmax, 0.05)
	step := l.step(vmin, vmax)
	return math.Floor(vmin/step+1e-9) * step, math.Ceil(vmax/step-1e-9) * step
}

// LogLocator places ticks at integer powers of a base.
type LogLocator struct {
	axis Interval
	base float64
}

// NewLogLocator returns a locator for logarithmic axes. A base of 1 or less
// defaults to 10.
func NewLogLocator(axis Interval, base float64) *LogLocator {
	if base <= 1 {
		base = 10
	}
	return &LogLocator{axis: axis, base: base}
}

func (l *LogLocator) positive(vmin, vmax float64) (float64, float64) {
	if vmax < vmin {
		vmin, vmax = vmax, vmin
	}
	if vmax <= 0 {
		return 1, l.base
	}
	if vmin <= 0 {
		vmin = vmax / l.base
	}
	return vmin, vmax
}

func (l *LogLocator) logb(x float64) float64 {
	return math.Log(x) / math.Log(l.base)
}

func (l *LogLocator) Ticks() []float64 {
	vmin, vmax := l.positive(l.axis.ViewInterval())
	lo := math.Ceil(l.logb(vmin) - 1e-9)
	hi := math.Floor(l.logb(vmax) + 1e-9)
	var ticks []float64
	for e := lo; e <= hi; e++ {
		ticks = append(ticks, math.Pow(l.base, e))
	}
	return ticks
}

func (l *LogLocator) Autoscale() (float64, float64) {
	return l.ViewLimits(l.axis.DataInterval())
}

func (l *LogLocator) Pan(numSteps int)   { panInterval(l.axis, l.Ticks(), numSteps) }
func (l *LogLocator) Zoom(direction int) { zoomInterval(l.axis, direction) }
func (l *LogLocator) Refresh()           {}

// ViewLimits rounds the interval outwards to whole decades.
func (l *LogLocator) ViewLimits(vmin, vmax float64) (float64, float64) {
	vmin, vmax = l.positive(vmin, vmax)
	lo := math.Pow(l.base, math.Floor(l.logb(vmin)+1e-9))
	hi := math.Pow(l.base, math.Ceil(l.logb(vmax)-1e-9))
	if lo == hi {
		lo /= l.base
		hi *= l.base
	}
	return lo, hi
}
