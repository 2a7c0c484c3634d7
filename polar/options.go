package polar

import (
	"golang.org/x/text/language"

	"github.com/gogpu/plot/scale"
)

// Option configures an Axes during creation.
//
// Example:
//
//	ax, err := polar.NewAxes(0, 0, 400, 400,
//	    polar.WithRLim(0, 10),
//	    polar.WithRScale("log"),
//	)
type Option func(*options)

// options holds optional configuration for Axes creation.
type options struct {
	rmin, rmax float64
	rscale     string
	rpad       float64
	steps      int
	lang       language.Tag
	tex        bool
}

// gridlineSteps is the default number of segments a radial gridline
// circle is drawn with.
const gridlineSteps = 180

// defaultOptions returns the default axes options.
func defaultOptions() options {
	return options{
		rmin:   0,
		rmax:   1,
		rscale: scale.NameLinear,
		rpad:   0.05,
		steps:  gridlineSteps,
		lang:   language.English,
	}
}

// WithRLim sets the initial radial limits. The default is [0, 1].
func WithRLim(rmin, rmax float64) Option {
	return func(o *options) {
		o.rmin, o.rmax = rmin, rmax
	}
}

// WithRScale sets the initial radial scale by name ("linear" or "log").
func WithRScale(name string) Option {
	return func(o *options) {
		o.rscale = name
	}
}

// WithRPad sets the radial padding of the radius labels as a fraction of
// the maximum radius. The default is 0.05.
func WithRPad(pad float64) Option {
	return func(o *options) {
		o.rpad = pad
	}
}

// WithInterpolationSteps sets how many segments curved gridlines are
// resampled into before projection.
func WithInterpolationSteps(n int) Option {
	return func(o *options) {
		o.steps = max(n, 1)
	}
}

// WithLanguage selects the locale used for tick labels and coordinate
// readouts.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

// WithTeX makes the angle formatter emit TeX markup for the degree sign.
func WithTeX(enabled bool) Option {
	return func(o *options) {
		o.tex = enabled
	}
}

// GridOption configures SetThetaGrids and SetRGrids.
type GridOption func(*gridConfig)

type gridConfig struct {
	labels   []string
	layout   string
	frac     float64
	angle    float64
	hasAngle bool
	rpad     float64
	hasRPad  bool
}

// GridLabels uses labels instead of formatted tick values. There must be
// one label per grid position.
func GridLabels(labels ...string) GridOption {
	return func(c *gridConfig) {
		c.labels = labels
	}
}

// GridFormat formats tick values with a fmt layout such as "%.1f".
func GridFormat(layout string) GridOption {
	return func(c *gridConfig) {
		c.layout = layout
	}
}

// GridFrac places angular labels at frac times the outer radius. Only
// SetThetaGrids uses it.
func GridFrac(frac float64) GridOption {
	return func(c *gridConfig) {
		c.frac = frac
	}
}

// GridAngle places radial labels along the given angle in degrees. Only
// SetRGrids uses it.
func GridAngle(deg float64) GridOption {
	return func(c *gridConfig) {
		c.angle, c.hasAngle = deg, true
	}
}

// GridRPad sets the radial label padding as a fraction of the maximum
// radius. Only SetRGrids uses it.
func GridRPad(pad float64) GridOption {
	return func(c *gridConfig) {
		c.rpad, c.hasRPad = pad, true
	}
}
