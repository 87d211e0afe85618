package squircle

import (
	"fmt"
	"math"
)

// Corner identifies one of the four rectangle corners.
// The declaration order is also the tie-break order used by the corner
// budget solver when two corners request exactly equal radii.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// String returns a human-readable corner name.
func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return fmt.Sprintf("Corner(%d)", int(c))
	}
}

// ShapeSpec describes one geometry request.
//
// Width and Height must be positive for geometry to be produced; a
// non-positive or NaN dimension is the legitimate "not measured yet"
// state and yields an empty Geometry rather than an error.
//
// Radius is the shared base corner radius. The four per-corner fields
// override it when non-nil (see [CornerRadius]); after normalization
// every corner holds a concrete value. Negative radii clamp to zero.
//
// Smoothing is required and must be a finite number; NaN or infinity is
// the only input the engine rejects. Finite values are clamped into
// [0, 1]: 0 draws a plain circular corner, 1 the maximal
// continuous-curvature corner.
type ShapeSpec struct {
	Width  float64
	Height float64

	// Radius is the base radius applied to corners without an override.
	Radius float64

	// Per-corner overrides; nil means "use Radius".
	TopLeftRadius     *float64
	TopRightRadius    *float64
	BottomLeftRadius  *float64
	BottomRightRadius *float64

	// Smoothing blends between circular corner (0) and pure Bezier
	// corner (1).
	Smoothing float64

	// PreserveSmoothing keeps the requested smoothing exact when a
	// corner overruns its budget, shrinking the corner's linear extent
	// instead of its curvature.
	PreserveSmoothing bool

	// StrokeWidth, when positive, requests an inset border outline.
	// Negative values clamp to zero.
	StrokeWidth float64

	// FillColor and StrokeColor are opaque to the engine and passed
	// through to the output geometry.
	FillColor   string
	StrokeColor string
}

// CornerRadius returns a pointer to v, for the per-corner override fields
// of ShapeSpec.
func CornerRadius(v float64) *float64 {
	return &v
}

// CornerRadii holds the four resolved per-corner radii after
// normalization. Every slot is a concrete non-negative value; there is no
// "absent" state past the normalizer.
type CornerRadii struct {
	TopLeft     float64
	TopRight    float64
	BottomLeft  float64
	BottomRight float64
}

// Radius returns the radius for the given corner.
func (r CornerRadii) Radius(c Corner) float64 {
	switch c {
	case TopLeft:
		return r.TopLeft
	case TopRight:
		return r.TopRight
	case BottomLeft:
		return r.BottomLeft
	default:
		return r.BottomRight
	}
}

// ValidationError reports a shape parameter the engine cannot accept.
// It is returned for missing or non-finite smoothing; every other
// malformed numeric input is silently clamped instead.
type ValidationError struct {
	// Field is the offending ShapeSpec field.
	Field string
	// Reason describes why the value was rejected.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("squircle: invalid %s: %s", e.Field, e.Reason)
}

// normalizedShape is the fully-defaulted, clamped form of a ShapeSpec.
// All downstream stages consume this, never the raw spec.
type normalizedShape struct {
	width             float64
	height            float64
	radii             [4]float64
	smoothing         float64
	preserveSmoothing bool
	strokeWidth       float64
}

// measured reports whether both dimensions are known positive numbers.
func measured(width, height float64) bool {
	return width > 0 && height > 0 &&
		!math.IsNaN(width) && !math.IsNaN(height) &&
		!math.IsInf(width, 0) && !math.IsInf(height, 0)
}

// normalizeShape fills per-corner defaults and clamps malformed numeric
// input. The only hard failure is a smoothing factor that is not a finite
// number.
func normalizeShape(spec ShapeSpec) (normalizedShape, error) {
	if math.IsNaN(spec.Smoothing) || math.IsInf(spec.Smoothing, 0) {
		return normalizedShape{}, &ValidationError{
			Field:  "Smoothing",
			Reason: "must be a finite number in [0, 1]",
		}
	}

	base := clampNonNegative(spec.Radius)
	resolve := func(override *float64) float64 {
		if override != nil {
			return clampNonNegative(*override)
		}
		return base
	}

	var radii [4]float64
	radii[TopLeft] = resolve(spec.TopLeftRadius)
	radii[TopRight] = resolve(spec.TopRightRadius)
	radii[BottomLeft] = resolve(spec.BottomLeftRadius)
	radii[BottomRight] = resolve(spec.BottomRightRadius)

	return normalizedShape{
		width:             spec.Width,
		height:            spec.Height,
		radii:             radii,
		smoothing:         clamp01(spec.Smoothing),
		preserveSmoothing: spec.PreserveSmoothing,
		strokeWidth:       clampNonNegative(spec.StrokeWidth),
	}, nil
}

// cornerRadii returns the resolved per-corner radii as a named record.
func (n normalizedShape) cornerRadii() CornerRadii {
	return CornerRadii{
		TopLeft:     n.radii[TopLeft],
		TopRight:    n.radii[TopRight],
		BottomLeft:  n.radii[BottomLeft],
		BottomRight: n.radii[BottomRight],
	}
}

func clampNonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
