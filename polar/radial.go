package polar

import (
	"github.com/gogpu/plot"
	"github.com/gogpu/plot/transform"
)

// RadialScale is the affine part of the polar projection. It scales the
// projected plane so that the radial extent of the view limits, after the
// radial axis scale has been applied, spans the radius 0.5 circle centred
// at (0.5, 0.5) in axes coordinates.
//
// Only the radial interval of the limits is used; the angular span is
// always [0, 2π). The matrix is cached and recomputed after the limits or
// the axis scale change.
type RadialScale struct {
	transform.Base
	scale  transform.Node
	limits *transform.Bbox
	mtx    plot.Matrix
}

// NewRadialScale returns the radial scaling for limits as seen through
// scale.
func NewRadialScale(scale transform.Node, limits *transform.Bbox) *RadialScale {
	s := &RadialScale{scale: scale, limits: limits}
	s.SetChildren(scale, limits)
	return s
}

// Matrix returns scale(0.5/yscale) followed by translate(0.5, 0.5), where
// yscale is the scaled radial span. A zero span yields infinite
// coefficients.
func (s *RadialScale) Matrix() plot.Matrix {
	if !s.Valid() {
		scaled := s.limits.Transformed(s.scale)
		yscale := scaled.YMax() - scaled.YMin()
		s.mtx = plot.Scale(0.5/yscale, 0.5/yscale).ThenTranslate(0.5, 0.5)
		s.Validate()
		plot.Logger().Debug("polar: radial scale recomputed", "yscale", yscale)
	}
	return s.mtx
}

func (s *RadialScale) TransformPoints(pts []plot.Point) []plot.Point {
	return s.Matrix().TransformPoints(pts)
}

func (s *RadialScale) TransformPath(p *plot.Path) *plot.Path {
	return p.Transform(s.Matrix())
}

func (s *RadialScale) Inverted() transform.Node {
	return s.CachedInverse(func() transform.Node { return transform.InvertAffine(s) })
}
func (s *RadialScale) Frozen() transform.Node   { return transform.NewFixed(s.Matrix()) }
