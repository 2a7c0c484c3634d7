package polar

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/plot/ticker"
)

// ThetaFormatter labels angular ticks. Tick values are radians; labels are
// whole degrees followed by a degree sign, e.g. "90°".
type ThetaFormatter struct {
	// UseTeX selects "$90^\circ$" markup for renderers that typeset labels
	// with TeX and cannot rely on the font having a degree glyph.
	UseTeX bool

	p *message.Printer
}

// NewThetaFormatter returns a formatter printing numbers according to tag.
func NewThetaFormatter(tag language.Tag, useTeX bool) *ThetaFormatter {
	return &ThetaFormatter{UseTeX: useTeX, p: message.NewPrinter(tag)}
}

func (f *ThetaFormatter) Format(x float64, _ int) string {
	deg := x / math.Pi * 180
	if f.UseTeX {
		return f.p.Sprintf(`$%.0f^\circ$`, deg)
	}
	return f.p.Sprintf("%.0f°", deg)
}

// RadialLocator wraps the locator of the radial axis and drops every tick
// that is not strictly positive: radius 0 is the centre of the plot and
// has no gridline. All other calls are delegated to the wrapped locator.
type RadialLocator struct {
	base ticker.Locator
}

// NewRadialLocator wraps base.
func NewRadialLocator(base ticker.Locator) *RadialLocator {
	return &RadialLocator{base: base}
}

// Base returns the wrapped locator.
func (l *RadialLocator) Base() ticker.Locator {
	return l.base
}

func (l *RadialLocator) Ticks() []float64 {
	ticks := l.base.Ticks()
	out := ticks[:0:0]
	for _, x := range ticks {
		if x > 0 {
			out = append(out, x)
		}
	}
	return out
}

func (l *RadialLocator) Autoscale() (float64, float64) { return l.base.Autoscale() }
func (l *RadialLocator) Pan(numSteps int)              { l.base.Pan(numSteps) }
func (l *RadialLocator) Zoom(direction int)            { l.base.Zoom(direction) }
func (l *RadialLocator) Refresh()                      { l.base.Refresh() }

// ViewLimits delegates to the wrapped locator and pins the lower limit to 0.
func (l *RadialLocator) ViewLimits(vmin, vmax float64) (float64, float64) {
	_, vmax = l.base.ViewLimits(vmin, vmax)
	return 0, vmax
}
