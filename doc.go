// Package plot provides the geometry shared by the plotting packages:
// points, affine matrices, paths and the package-wide logger.
//
// # Overview
//
// plot is organised in layers:
//
//   - plot: [Point], [Matrix], [Path], [SetLogger]
//   - transform: transform graphs with lazy invalidation
//   - scale: axis scales (linear, log) and their default tick locators
//   - ticker: tick locators and formatters
//   - polar: polar axes with their projection and pan/zoom gestures
//
// # Quick Start
//
//	import "github.com/gogpu/plot/polar"
//
//	ax, err := polar.NewAxes(0, 0, 400, 400, polar.WithRLim(0, 10))
//	if err != nil {
//	    return err
//	}
//	display := ax.DataTransform().TransformPoints([]plot.Point{{X: math.Pi / 4, Y: 5}})
//
// # Coordinate System
//
// Display coordinates have their origin at the bottom-left with Y
// increasing upwards. Angles are in radians, 0 is east and they increase
// counter-clockwise.
//
// # Undefined Points
//
// Transforms mark points they cannot map with [Undefined], a point whose
// coordinates are both NaN. Renderers skip such vertices.
package plot

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
