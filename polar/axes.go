package polar

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/internal/cache"
	"github.com/gogpu/plot/scale"
	"github.com/gogpu/plot/ticker"
	"github.com/gogpu/plot/transform"
)

// TransformName identifies one of the transforms an Axes exposes to
// renderers.
type TransformName string

// Transform chains and label offsets exposed by Axes.Transform.
const (
	// DataTransform maps (theta, r) data to display coordinates.
	DataTransform TransformName = "data"
	// ThetaGridTransform maps (theta, r) to display coordinates with r = 1
	// on the edge of the plot, independent of the radial limits.
	ThetaGridTransform TransformName = "theta-grid"
	// ThetaLabel1Transform and ThetaLabel2Transform place angular labels.
	ThetaLabel1Transform TransformName = "theta-label1"
	ThetaLabel2Transform TransformName = "theta-label2"
	// RadialGridTransform maps (u, r) with u in [0, 1] around the full
	// circle at radius r.
	RadialGridTransform TransformName = "r-grid"
	// RadialLabel1Transform and RadialLabel2Transform place radius labels.
	RadialLabel1Transform TransformName = "r-label1"
	RadialLabel2Transform TransformName = "r-label2"

	// The label offsets prepended to the label transforms.
	ThetaLabel1Offset  TransformName = "theta-label1-offset"
	ThetaLabel2Offset  TransformName = "theta-label2-offset"
	RadialLabel1Offset TransformName = "r-label1-offset"
	RadialLabel2Offset TransformName = "r-label2-offset"
)

const (
	twoPi = 2 * math.Pi

	// defaultRLabelAngle is the angle, in degrees, radius labels are drawn at.
	defaultRLabelAngle = 22.5

	// thetaLabelFrac is the default radius of angular labels.
	thetaLabelFrac = 1.1

	// gridCacheSize bounds the number of projected gridlines kept.
	gridCacheSize = 256
)

// gridKey identifies a projected gridline. version is the version of the
// transform that produced it, so any change to the graph misses.
type gridKey struct {
	radial  bool
	version uint64
	value   float64
	steps   int
}

// Tick is a tick position with its label.
type Tick struct {
	Value float64
	Label string
}

// Axes is a polar plot area. Data is given as (theta, r) with theta in
// radians, counter-clockwise from east.
//
// The axes owns its transform graph. Every transform returned by Axes is
// live: changing the limits, the scale or the label positions is reflected
// the next time it is evaluated. An Axes is not safe for concurrent use.
type Axes struct {
	opts     options
	position *transform.Bbox // display-space placement
	viewLim  *transform.Bbox // (theta, r); only r is consulted
	rscale   scale.Scale
	rscale0  scale.Scale // restored by Clear

	dataMin, dataMax float64
	hasData          bool

	transAxes             *transform.BboxTo
	transScale            *transform.Wrapper
	transProjection       *Projection
	transPureProjection   *Projection
	transProjectionAffine *RadialScale
	transAffine           transform.Affine // projected plane to display
	transUnit             transform.Node
	transData             transform.Node

	thetaGrid, thetaText1, thetaText2 transform.Node
	rGrid, rText1, rText2             transform.Node

	thetaLabel1, thetaLabel2 *transform.Affine2D
	rLabel1, rLabel2         *transform.Affine2D
	rpad                     float64

	thetaTicks     []float64
	thetaLabels    []string
	thetaFormatter ticker.Formatter
	rLocator       *RadialLocator
	rLabels        []string
	rFormatter     ticker.Formatter

	printer *message.Printer
	gesture gesture
	grids   *cache.Cache[gridKey, *plot.Path]
}

// NewAxes returns polar axes placed in the display rectangle (x0, y0) to
// (x1, y1).
func NewAxes(x0, y0, x1, y1 float64, opts ...Option) (*Axes, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s, err := scale.New(o.rscale)
	if err != nil {
		return nil, &ScaleError{Axis: "r", Name: o.rscale, Err: err}
	}
	if err := checkLimits(s, o.rmin, o.rmax); err != nil {
		return nil, err
	}
	a := &Axes{
		opts:     o,
		rscale0:  s,
		position: transform.NewBbox(x0, y0, x1, y1),
		printer:  message.NewPrinter(o.lang),
		grids:    cache.New[gridKey, *plot.Path](gridCacheSize),
	}
	a.Clear()
	return a, nil
}

// Clear resets the axes to the state NewAxes created: limits, scale, grids,
// formatters, label positions. Any gesture in progress is discarded. The
// whole transform graph is rebuilt, so transforms obtained earlier no
// longer follow the axes.
func (a *Axes) Clear() {
	if a.transAxes != nil {
		// The position box outlives the graph; detach the old one from it.
		a.transAxes.Unlink(a.position)
	}
	a.rscale = a.rscale0
	a.viewLim = transform.NewBbox(0, a.opts.rmin, twoPi, a.opts.rmax)
	a.hasData = false
	a.rpad = a.opts.rpad
	a.gesture = idle{}
	// Versions restart with the new graph.
	a.grids.Clear()
	a.setLimsAndTransforms()

	a.thetaFormatter = NewThetaFormatter(a.opts.lang, a.opts.tex)
	a.thetaLabels = nil
	a.thetaTicks = nil
	for deg := 0.0; deg < 360; deg += 45 {
		a.thetaTicks = append(a.thetaTicks, deg*math.Pi/180)
	}
	a.rLocator = NewRadialLocator(a.rscale.DefaultLocator(radialAxis{a}))
	a.rFormatter = ticker.ScalarFormatter{}
	a.rLabels = nil
}

func (a *Axes) setLimsAndTransforms() {
	a.transAxes = transform.BboxTransformTo(a.position)

	// The radial axis scale; it may be non-linear.
	a.transScale = transform.NewWrapper(a.rscale.Transform())

	a.transProjection = NewProjection(a.projectionOrigin)
	a.transPureProjection = NewProjection(nil)
	a.transProjectionAffine = NewRadialScale(a.transScale, a.viewLim)

	a.transAffine = transform.Compose(a.transProjectionAffine, a.transAxes).(transform.Affine)
	a.transData = transform.Chain(a.transScale, a.transProjection, a.transAffine)

	// Angular gridlines always end on the edge of the circle.
	a.transUnit = transform.Compose(a.transPureProjection, NewRadialScale(transform.Identity(), transform.UnitBbox()))
	a.thetaGrid = transform.Compose(a.transUnit, a.transAxes)
	a.thetaLabel1 = transform.NewAffine2D().Translate(0, thetaLabelFrac)
	a.thetaText1 = transform.Compose(a.thetaLabel1, a.thetaGrid)
	a.thetaLabel2 = transform.NewAffine2D().Translate(0, 1/thetaLabelFrac)
	a.thetaText2 = transform.Compose(a.thetaLabel2, a.thetaGrid)

	// Radial gridlines run from u = 0 to u = 1, i.e. once around.
	a.rGrid = transform.Compose(transform.NewFixed(plot.Scale(twoPi, 1)), a.transData)
	degrees := transform.NewFixed(plot.Scale(1.0/360, 1))
	a.rLabel1 = transform.NewAffine2D().Translate(defaultRLabelAngle, a.rpad)
	a.rText1 = transform.Chain(a.rLabel1, degrees, a.rGrid)
	a.rLabel2 = transform.NewAffine2D().Translate(defaultRLabelAngle, a.rpad)
	a.rText2 = transform.Chain(a.rLabel2, degrees, a.rGrid)
}

// projectionOrigin is the radius source of the data projection. The
// projection runs after the scale, so it gets the scaled minimum radius;
// whether to clip is decided on the unscaled one.
func (a *Axes) projectionOrigin() (float64, bool) {
	rmin := a.viewLim.YMin()
	return transform.TransformPoint(a.transScale, plot.Pt(0, rmin)).Y, rmin != 0
}

// Transform returns the named transform.
func (a *Axes) Transform(name TransformName) (transform.Node, error) {
	switch name {
	case DataTransform:
		return a.transData, nil
	case ThetaGridTransform:
		return a.thetaGrid, nil
	case ThetaLabel1Transform:
		return a.thetaText1, nil
	case ThetaLabel2Transform:
		return a.thetaText2, nil
	case RadialGridTransform:
		return a.rGrid, nil
	case RadialLabel1Transform:
		return a.rText1, nil
	case RadialLabel2Transform:
		return a.rText2, nil
	case ThetaLabel1Offset:
		return a.thetaLabel1, nil
	case ThetaLabel2Offset:
		return a.thetaLabel2, nil
	case RadialLabel1Offset:
		return a.rLabel1, nil
	case RadialLabel2Offset:
		return a.rLabel2, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
}

// DataTransform returns the transform from (theta, r) data to display
// coordinates.
func (a *Axes) DataTransform() transform.Node {
	return a.transData
}

// DisplayAffine returns the affine part of the data transform, mapping the
// projected plane in scaled radius units to display coordinates. The
// layout is the one golang.org/x/image/draw transformers take.
func (a *Axes) DisplayAffine() f64.Aff3 {
	return a.transAffine.Matrix().Aff3()
}

// Position returns the display-space box the axes occupy. Mutating it
// moves the axes.
func (a *Axes) Position() *transform.Bbox {
	return a.position
}

// ViewLimits returns the (theta, r) view box. Only its radial interval is
// meaningful; use SetRLim to change it.
func (a *Axes) ViewLimits() *transform.Bbox {
	return a.viewLim
}

// RMin returns the radius at the centre of the plot.
func (a *Axes) RMin() float64 { return a.viewLim.YMin() }

// RMax returns the radius at the edge of the plot.
func (a *Axes) RMax() float64 { return a.viewLim.YMax() }

// SetRMin sets the radius at the centre of the plot.
func (a *Axes) SetRMin(rmin float64) error { return a.SetRLim(rmin, a.RMax()) }

// SetRMax sets the radius at the edge of the plot.
func (a *Axes) SetRMax(rmax float64) error { return a.SetRLim(a.RMin(), rmax) }

// SetRLim sets both radial limits. rmin may be negative: the projection
// then treats it as the radius drawn at the centre. The limits must be
// finite, rmin must be below rmax and both must lie in the domain of the
// radial scale.
func (a *Axes) SetRLim(rmin, rmax float64) error {
	if err := checkLimits(a.rscale, rmin, rmax); err != nil {
		return err
	}
	a.viewLim.SetIntervalY(rmin, rmax)
	plot.Logger().Debug("polar: radial limits set", "rmin", rmin, "rmax", rmax)
	return nil
}

func checkLimits(s scale.Scale, rmin, rmax float64) error {
	switch {
	case math.IsNaN(rmin) || math.IsNaN(rmax) || math.IsInf(rmin, 0) || math.IsInf(rmax, 0):
		return &LimitError{RMin: rmin, RMax: rmax, Err: plot.ErrNotFinite}
	case rmin >= rmax:
		return &LimitError{RMin: rmin, RMax: rmax, Err: plot.ErrDegenerateRange}
	case !s.Valid(rmin) || !s.Valid(rmax):
		return &LimitError{RMin: rmin, RMax: rmax, Err: ErrScaleDomain}
	}
	return nil
}

// SetThetaLim is accepted for symmetry with rectilinear axes but has no
// effect: the angular span is always [0, 2π).
func (a *Axes) SetThetaLim(lo, hi float64) {
	plot.Logger().Warn("polar: angular limits are fixed, ignoring request", "lo", lo, "hi", hi)
	a.viewLim.SetIntervalX(0, twoPi)
}

// SetThetaScale rejects every scale except "linear".
func (a *Axes) SetThetaScale(name string) error {
	if name != scale.NameLinear {
		return &ScaleError{Axis: "theta", Name: name, Err: ErrThetaScale}
	}
	return nil
}

// RScale returns the current radial scale.
func (a *Axes) RScale() scale.Scale {
	return a.rscale
}

// SetRScale switches the radial scale. The radial locator is replaced with
// the scale's default, wrapped so that it only yields positive radii.
func (a *Axes) SetRScale(name string) error {
	s, err := scale.New(name)
	if err != nil {
		return &ScaleError{Axis: "r", Name: name, Err: err}
	}
	if !s.Valid(a.RMin()) || !s.Valid(a.RMax()) {
		return &ScaleError{Axis: "r", Name: name, Err: ErrScaleDomain}
	}
	a.rscale = s
	a.transScale.Set(s.Transform())
	a.rLocator = NewRadialLocator(s.DefaultLocator(radialAxis{a}))
	plot.Logger().Debug("polar: radial scale set", "scale", name)
	return nil
}

// AddData extends the radial data interval used by AutoscaleR with the
// radii of pts.
func (a *Axes) AddData(pts []plot.Point) {
	for _, p := range pts {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			continue
		}
		if !a.hasData {
			a.dataMin, a.dataMax, a.hasData = p.Y, p.Y, true
			continue
		}
		a.dataMin = math.Min(a.dataMin, p.Y)
		a.dataMax = math.Max(a.dataMax, p.Y)
	}
}

// AutoscaleR fits the radial limits to the data added with AddData, using
// the radial locator to round them. On a linear scale the plot starts at
// the centre.
func (a *Axes) AutoscaleR() error {
	vmin, vmax := a.rLocator.ViewLimits(radialAxis{a}.DataInterval())
	if !a.rscale.Valid(vmin) {
		vmin, vmax = a.rLocator.Autoscale()
	}
	return a.SetRLim(vmin, vmax)
}

// radialAxis adapts the radial interval of an Axes to ticker.Interval.
type radialAxis struct{ a *Axes }

func (r radialAxis) ViewInterval() (float64, float64) {
	return r.a.viewLim.Y0(), r.a.viewLim.Y1()
}

func (r radialAxis) SetViewInterval(vmin, vmax float64) {
	r.a.viewLim.SetIntervalY(vmin, vmax)
}

func (r radialAxis) DataInterval() (float64, float64) {
	if !r.a.hasData {
		return r.a.viewLim.Y0(), r.a.viewLim.Y1()
	}
	return r.a.dataMin, r.a.dataMax
}

// RLocator returns the radial tick locator.
func (a *Axes) RLocator() *RadialLocator {
	return a.rLocator
}

// SetThetaGrids places angular gridlines at angles, given in degrees.
// GridLabels, GridFormat and GridFrac are honoured.
func (a *Axes) SetThetaGrids(angles []float64, opts ...GridOption) error {
	var c gridConfig
	for _, opt := range opts {
		opt(&c)
	}
	if c.labels != nil && len(c.labels) != len(angles) {
		return fmt.Errorf("%w: %d labels for %d angles", ErrLabelCount, len(c.labels), len(angles))
	}
	a.thetaTicks = make([]float64, len(angles))
	for i, deg := range angles {
		a.thetaTicks[i] = deg * math.Pi / 180
	}
	a.thetaLabels = c.labels
	if c.layout != "" {
		a.thetaFormatter = ticker.NewFormatStrFormatter(c.layout)
	}
	if c.frac != 0 {
		a.thetaLabel1.Clear().Translate(0, c.frac)
		a.thetaLabel2.Clear().Translate(0, 1/c.frac)
	}
	return nil
}

// SetRGrids places radial gridlines at radii, which must all be strictly
// positive. GridLabels, GridFormat, GridAngle and GridRPad are honoured.
func (a *Axes) SetRGrids(radii []float64, opts ...GridOption) error {
	var c gridConfig
	for _, opt := range opts {
		opt(&c)
	}
	for _, r := range radii {
		if !(r > 0) {
			return fmt.Errorf("%w: got %g", ErrNonPositiveGrid, r)
		}
	}
	if c.labels != nil && len(c.labels) != len(radii) {
		return fmt.Errorf("%w: %d labels for %d radii", ErrLabelCount, len(c.labels), len(radii))
	}
	a.rLocator = NewRadialLocator(ticker.NewFixedLocator(radialAxis{a}, radii))
	a.rLabels = c.labels
	if c.layout != "" {
		a.rFormatter = ticker.NewFormatStrFormatter(c.layout)
	}
	angle := a.RLabelAngle()
	if c.hasAngle {
		angle = c.angle
	}
	if c.hasRPad {
		a.rpad = c.rpad
	}
	rmax := a.RMax()
	a.rLabel1.Clear().Translate(angle, a.rpad*rmax)
	a.rLabel2.Clear().Translate(angle, -a.rpad*rmax)
	return nil
}

// RLabelAngle returns the angle, in degrees, radius labels are drawn at.
func (a *Axes) RLabelAngle() float64 {
	return a.rLabel1.Values()[4]
}

// ThetaTicks returns the angular ticks, in radians, with their labels.
func (a *Axes) ThetaTicks() []Tick {
	ticks := make([]Tick, len(a.thetaTicks))
	for i, v := range a.thetaTicks {
		ticks[i] = Tick{Value: v, Label: label(a.thetaLabels, a.thetaFormatter, v, i)}
	}
	return ticks
}

// RTicks returns the radial ticks with their labels.
func (a *Axes) RTicks() []Tick {
	values := a.rLocator.Ticks()
	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{Value: v, Label: label(a.rLabels, a.rFormatter, v, i)}
	}
	return ticks
}

func label(fixed []string, f ticker.Formatter, v float64, i int) string {
	if i < len(fixed) {
		return fixed[i]
	}
	return f.Format(v, i)
}

// ThetaGridLines returns the angular gridlines in display coordinates,
// one radial segment per tick from the centre to the edge.
func (a *Axes) ThetaGridLines() []*plot.Path {
	lines := make([]*plot.Path, len(a.thetaTicks))
	for i, t := range a.thetaTicks {
		lines[i] = a.gridLine(a.thetaGrid, false, t, plot.Pt(t, 0), plot.Pt(t, 1))
	}
	return lines
}

// RGridLines returns the radial gridlines in display coordinates, one
// circle per radial tick.
func (a *Axes) RGridLines() []*plot.Path {
	ticks := a.rLocator.Ticks()
	lines := make([]*plot.Path, len(ticks))
	for i, r := range ticks {
		lines[i] = a.gridLine(a.rGrid, true, r, plot.Pt(0, r), plot.Pt(1, r))
	}
	return lines
}

// gridLine returns the segment from p0 to p1 projected through n. Results
// are cached per transform version; callers get their own copy.
func (a *Axes) gridLine(n transform.Node, radial bool, v float64, p0, p1 plot.Point) *plot.Path {
	key := gridKey{radial: radial, version: n.GraphNode().Version(), value: v, steps: a.opts.steps}
	p := a.grids.GetOrCreate(key, func() *plot.Path {
		p := plot.PolyLine(p0, p1)
		p.SetInterpolationSteps(a.opts.steps)
		return n.TransformPath(p)
	})
	return p.Clone()
}

// ThetaLabelPositions returns the display positions of the first and
// second angular label for every angular tick.
func (a *Axes) ThetaLabelPositions() (first, second []plot.Point) {
	pts := make([]plot.Point, len(a.thetaTicks))
	for i, t := range a.thetaTicks {
		pts[i] = plot.Pt(t, 0)
	}
	return a.thetaText1.TransformPoints(pts), a.thetaText2.TransformPoints(pts)
}

// RLabelPositions returns the display positions of the first and second
// radius label for every radial tick.
func (a *Axes) RLabelPositions() (first, second []plot.Point) {
	ticks := a.rLocator.Ticks()
	pts := make([]plot.Point, len(ticks))
	for i, r := range ticks {
		pts[i] = plot.Pt(0, r)
	}
	return a.rText1.TransformPoints(pts), a.rText2.TransformPoints(pts)
}

// Patch returns the outline of the plot area in axes coordinates: the
// circle of radius 0.5 around (0.5, 0.5).
func (a *Axes) Patch() *plot.Path {
	p := plot.PolyLine(plot.Pt(0, 1), plot.Pt(twoPi, 1))
	p.SetInterpolationSteps(a.opts.steps)
	return a.transUnit.TransformPath(p)
}

// coordNumber formats readout numbers with three decimals and no digit
// grouping; the decimal separator follows the axes language.
var coordNumber = number.NewFormat(number.Decimal, number.Scale(3), number.NoSeparator())

// FormatCoord formats a data coordinate for a cursor readout, e.g.
// "θ=0.500π (90.000°), r=1.000".
func (a *Axes) FormatCoord(theta, r float64) string {
	t := theta / math.Pi
	return a.printer.Sprintf("θ=%vπ (%v°), r=%v", coordNumber(t), coordNumber(t*180), coordNumber(r))
}

// DataRatio returns the aspect ratio of the data, which is always 1.
func (a *Axes) DataRatio() float64 { return 1 }

// CanZoom reports whether the axes support rubber-band zooming. Polar
// axes zoom with the right-button drag of the pan gesture instead.
func (a *Axes) CanZoom() bool { return false }
