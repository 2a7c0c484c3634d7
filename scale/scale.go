// Package scale provides axis scales: the possibly non-linear mapping
// applied to an axis before projection, together with the tick locator
// that suits it.
//
// Scales act on the y coordinate of a point and leave x untouched, which
// is how the radial axis of a polar plot is scaled.
package scale

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/ticker"
	"github.com/gogpu/plot/transform"
)

// Scale names.
const (
	NameLinear = "linear"
	NameLog    = "log"
)

// ErrUnknownScale is returned by New for names it does not recognise.
var ErrUnknownScale = errors.New("scale: unknown scale")

// Scale is an axis scale.
type Scale interface {
	// Name returns the registered name of the scale.
	Name() string

	// Transform returns the node applying the scale.
	Transform() transform.Node

	// DefaultLocator returns the locator ticks on this scale use unless
	// configured otherwise.
	DefaultLocator(axis ticker.Interval) ticker.Locator

	// Valid reports whether v lies in the domain of the scale.
	Valid(v float64) bool
}

// New returns the scale registered under name.
func New(name string) (Scale, error) {
	switch name {
	case NameLinear:
		return Linear{}, nil
	case NameLog:
		return Log{Base: 10}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScale, name)
	}
}

// Linear is the identity scale.
type Linear struct{}

func (Linear) Name() string              { return NameLinear }
func (Linear) Transform() transform.Node { return transform.Identity() }
func (Linear) Valid(v float64) bool      { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func (Linear) DefaultLocator(axis ticker.Interval) ticker.Locator {
	return ticker.NewMaxNLocator(axis, 8)
}

// Log is a logarithmic scale. Non-positive values map to the undefined
// sentinel.
type Log struct {
	Base float64
}

func (Log) Name() string { return NameLog }

func (s Log) Transform() transform.Node { return &LogTransform{base: s.base()} }

func (Log) Valid(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

func (s Log) DefaultLocator(axis ticker.Interval) ticker.Locator {
	return ticker.NewLogLocator(axis, s.base())
}

func (s Log) base() float64 {
	if s.Base <= 1 {
		return 10
	}
	return s.Base
}

// LogTransform maps y to log_base(y).
type LogTransform struct {
	transform.Base
	base float64
}

func (t *LogTransform) TransformPoints(pts []plot.Point) []plot.Point {
	out := make([]plot.Point, len(pts))
	lb := math.Log(t.base)
	for i, p := range pts {
		if p.Y <= 0 {
			out[i] = plot.Point{X: p.X, Y: math.NaN()}
			continue
		}
		out[i] = plot.Point{X: p.X, Y: math.Log(p.Y) / lb}
	}
	return out
}

func (t *LogTransform) TransformPath(p *plot.Path) *plot.Path {
	return p.MapVertices(t.TransformPoints)
}

func (t *LogTransform) Inverted() transform.Node { return &ExpTransform{base: t.base} }
func (t *LogTransform) Frozen() transform.Node   { return &LogTransform{base: t.base} }

// ExpTransform maps y to base^y; it is the inverse of LogTransform.
type ExpTransform struct {
	transform.Base
	base float64
}

func (t *ExpTransform) TransformPoints(pts []plot.Point) []plot.Point {
	out := make([]plot.Point, len(pts))
	for i, p := range pts {
		out[i] = plot.Point{X: p.X, Y: math.Pow(t.base, p.Y)}
	}
	return out
}

func (t *ExpTransform) TransformPath(p *plot.Path) *plot.Path {
	return p.MapVertices(t.TransformPoints)
}

func (t *ExpTransform) Inverted() transform.Node { return &LogTransform{base: t.base} }
func (t *ExpTransform) Frozen() transform.Node   { return &ExpTransform{base: t.base} }
