// Package squircle computes continuous-curvature rounded rectangle
// outlines ("squircles") as vector path data.
//
// # Overview
//
// A squircle is a rectangle whose corners follow a continuous-curvature
// profile instead of a plain circular arc: each corner is drawn as a cubic
// Bezier easing into a circular arc easing into a mirrored cubic. A
// smoothing factor in [0, 1] controls the blend — 0 produces an ordinary
// rounded rectangle, 1 a pure two-Bezier corner with no arc at all.
//
// # Quick Start
//
//	import "github.com/gogpu/squircle"
//
//	eng := squircle.NewEngine()
//	geom, err := eng.Geometry(squircle.ShapeSpec{
//	    Width:     200,
//	    Height:    200,
//	    Radius:    50,
//	    Smoothing: 0.6,
//	})
//	if err != nil {
//	    // smoothing was missing or not a finite number
//	}
//	fmt.Println(geom.Fill.Data(4)) // SVG path data: "M 120 0 C ... Z"
//
// # Pipeline
//
// A geometry request flows through four stages: parameter normalization
// (per-corner defaulting, validation), corner budget solving (adjacent
// corners must not claim overlapping stretches of a shared edge), corner
// profile derivation (radius + smoothing + budget into Bezier control
// distances), and path assembly (four corner traces and four straight
// edges stitched into one closed clockwise loop). Finished paths and
// corner profiles are memoized in two caches owned by the Engine.
//
// When StrokeWidth is set, the same pipeline runs a second time on a
// shrunken shape to produce an inward-offset outline for drawing a
// centered border that stays inside the outer silhouette.
//
// # Coordinate System
//
// Shape-local coordinates: origin at the top-left corner of the rectangle,
// X increases right, Y increases down. Paths wind clockwise.
//
// # Output
//
// Paths are structured command lists restricted to move, line, cubic
// Bezier, circular arc and close — the SVG M/L/C/A/Z subset. Use
// [Path.Data] for SVG path data, [Geometry.SVG] for a standalone document,
// and [Path.Simplified] to lower arcs to cubics for consumers that cannot
// draw arc segments.
package squircle

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
