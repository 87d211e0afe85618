package squircle

import (
	"log/slog"

	"github.com/gogpu/squircle/cache"
)

// DefaultPathCacheCapacity is the default number of finished outlines the
// engine keeps. Each size change of an animated element produces a new
// key, so the bound keeps resize storms from growing the cache without
// limit.
const DefaultPathCacheCapacity = 160

// EngineOption configures an Engine during creation.
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	pathCapacity    int
	profileCapacity int
	precision       int
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		pathCapacity:    DefaultPathCacheCapacity,
		profileCapacity: 0, // unbounded; the parameter space is small in practice
		precision:       DefaultPrecision,
	}
}

// WithPathCacheCapacity sets the capacity of the finished-path cache.
// A capacity of 0 makes it unbounded.
func WithPathCacheCapacity(n int) EngineOption {
	return func(o *engineOptions) {
		o.pathCapacity = n
	}
}

// WithProfileCacheCapacity bounds the corner-profile cache, which is
// unbounded by default: the space of rounded (radius, smoothing, budget)
// tuples seen in a session is small, but it can be capped with the same
// FIFO policy if memory is a concern.
func WithProfileCacheCapacity(n int) EngineOption {
	return func(o *engineOptions) {
		o.profileCapacity = n
	}
}

// WithPrecision sets the decimal precision used for cache-key quantization
// and serialized output. The default is DefaultPrecision (4).
func WithPrecision(p int) EngineOption {
	return func(o *engineOptions) {
		if p >= 0 {
			o.precision = p
		}
	}
}

// pathKey identifies a finished outline. It carries every parameter that
// affects the output geometry, quantized to the engine precision so that
// float noise from repeated layout passes does not defeat the cache.
// Omitting any geometry-affecting parameter here would be a correctness
// bug, not a performance one.
type pathKey struct {
	width             float64
	height            float64
	topLeft           float64
	topRight          float64
	bottomLeft        float64
	bottomRight       float64
	smoothing         float64
	preserveSmoothing bool
}

// profileKey identifies one corner profile.
type profileKey struct {
	radius            float64
	smoothing         float64
	budget            float64
	preserveSmoothing bool
}

// Engine computes squircle geometries and owns the two memoization
// caches. An Engine is safe for concurrent use; the caches are its only
// mutable state and are internally synchronized.
type Engine struct {
	precision int
	paths     *cache.FIFO[pathKey, *Path]
	profiles  *cache.FIFO[profileKey, CornerProfile]
}

// NewEngine creates a geometry engine.
//
//	eng := squircle.NewEngine()
//	eng := squircle.NewEngine(squircle.WithPathCacheCapacity(512))
func NewEngine(opts ...EngineOption) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		precision: o.precision,
		paths:     cache.NewFIFO[pathKey, *Path](o.pathCapacity),
		profiles:  cache.NewFIFO[profileKey, CornerProfile](o.profileCapacity),
	}
}

// Geometry is the engine's output: the fill outline, the shape bounds,
// and — when a stroke was requested and survived clamping — the inset
// border outline with its resolved width and offset.
//
// The zero value means "no geometry" (the shape is not measured yet).
// Returned paths are shared with the engine's cache and must be treated
// as immutable.
type Geometry struct {
	// Fill is the outer outline, nil when the geometry is empty.
	Fill *Path

	// Width and Height are the shape bounds the outline covers.
	Width  float64
	Height float64

	// Stroke is the inward-offset border outline, nil when no border
	// is rendered. Its coordinates are relative to its own shrunken
	// bounds; translate by (Inset, Inset) to position it inside Fill.
	Stroke *Path

	// StrokeWidth is the clamped stroke width actually usable.
	StrokeWidth float64

	// Inset is the offset of the stroke outline from the outer
	// boundary: half the clamped stroke width.
	Inset float64

	// FillColor and StrokeColor are passed through from the request.
	FillColor   string
	StrokeColor string

	radii     CornerRadii
	precision int
}

// IsEmpty reports whether the geometry carries no outline ("nothing to
// draw yet").
func (g Geometry) IsEmpty() bool {
	return g.Fill == nil
}

// Radii returns the resolved per-corner radii of the fill outline.
func (g Geometry) Radii() CornerRadii {
	return g.radii
}

// Geometry computes the outline for the given shape.
//
// An unmeasured shape (non-positive or NaN width/height) yields an empty
// Geometry and a nil error. A missing or non-finite smoothing factor
// yields a *ValidationError. Every other malformed numeric input is
// silently clamped.
func (e *Engine) Geometry(spec ShapeSpec) (Geometry, error) {
	if !measured(spec.Width, spec.Height) {
		return Geometry{}, nil
	}
	n, err := normalizeShape(spec)
	if err != nil {
		return Geometry{}, err
	}

	fill, budgets := e.outline(n)
	g := Geometry{
		Fill:        fill,
		Width:       n.width,
		Height:      n.height,
		FillColor:   spec.FillColor,
		StrokeColor: spec.StrokeColor,
		precision:   e.precision,
		radii:       resolvedRadii(budgets),
	}

	if n.strokeWidth > 0 {
		clamped := clampStrokeWidth(n.strokeWidth, n.width, n.height, budgets)
		if clamped > 0 {
			if clamped < n.strokeWidth {
				Logger().Debug("stroke width clamped",
					slog.Float64("requested", n.strokeWidth),
					slog.Float64("clamped", clamped))
			}
			inner := insetShape(n, clamped)
			stroke, _ := e.outline(inner)
			g.Stroke = stroke
			g.StrokeWidth = clamped
			g.Inset = clamped / 2
		}
	}
	return g, nil
}

// outline runs the budget/profile/assembly pipeline for one normalized
// shape, consulting the path cache first. The budgets are returned even
// on a cache hit because stroke clamping needs the resolved radii.
func (e *Engine) outline(n normalizedShape) (*Path, [4]cornerBudget) {
	budgets := solveCornerBudgets(n.width, n.height, n.radii)

	key := e.pathKeyFor(n)
	if p, ok := e.paths.Get(key); ok {
		Logger().Debug("path cache hit",
			slog.Float64("width", n.width), slog.Float64("height", n.height))
		return p, budgets
	}

	var profiles [4]CornerProfile
	for c := TopLeft; c <= BottomRight; c++ {
		profiles[c] = e.profileFor(budgets[c], n.smoothing, n.preserveSmoothing)
	}
	path := assembleOutline(n.width, n.height, profiles)
	e.paths.Set(key, path)
	return path, budgets
}

// profileFor returns the memoized corner profile for one resolved corner.
func (e *Engine) profileFor(cb cornerBudget, smoothing float64, preserve bool) CornerProfile {
	key := profileKey{
		radius:            roundTo(cb.radius, e.precision),
		smoothing:         roundTo(smoothing, e.precision),
		budget:            roundTo(cb.budget, e.precision),
		preserveSmoothing: preserve,
	}
	return e.profiles.GetOrCreate(key, func() CornerProfile {
		return computeCornerProfile(cb.radius, smoothing, cb.budget, preserve)
	})
}

func (e *Engine) pathKeyFor(n normalizedShape) pathKey {
	return pathKey{
		width:             roundTo(n.width, e.precision),
		height:            roundTo(n.height, e.precision),
		topLeft:           roundTo(n.radii[TopLeft], e.precision),
		topRight:          roundTo(n.radii[TopRight], e.precision),
		bottomLeft:        roundTo(n.radii[BottomLeft], e.precision),
		bottomRight:       roundTo(n.radii[BottomRight], e.precision),
		smoothing:         roundTo(n.smoothing, e.precision),
		preserveSmoothing: n.preserveSmoothing,
	}
}

// resolvedRadii converts the solver output to a CornerRadii record.
func resolvedRadii(budgets [4]cornerBudget) CornerRadii {
	return CornerRadii{
		TopLeft:     budgets[TopLeft].radius,
		TopRight:    budgets[TopRight].radius,
		BottomLeft:  budgets[BottomLeft].radius,
		BottomRight: budgets[BottomRight].radius,
	}
}

// PathCacheStats returns statistics for the finished-path cache.
func (e *Engine) PathCacheStats() cache.Stats {
	return e.paths.Stats()
}

// ProfileCacheStats returns statistics for the corner-profile cache.
func (e *Engine) ProfileCacheStats() cache.Stats {
	return e.profiles.Stats()
}
