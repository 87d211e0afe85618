package squircle

import "math"

// clampStrokeWidth resolves the stroke width usable for a centered border.
//
// A stroke wider than the tightest corner radius would make the inset
// outline self-intersect inside that corner, so the width is clamped to
// the smallest positive resolved radius. When no corner is rounded there
// is no such hazard and the width is kept as requested. In every case the
// inner rectangle must retain positive area; a stroke that would consume
// a whole dimension resolves to 0, which callers treat as "no border".
func clampStrokeWidth(strokeWidth, width, height float64, budgets [4]cornerBudget) float64 {
	if strokeWidth <= 0 {
		return 0
	}
	clamped := strokeWidth
	smallest := math.Inf(1)
	for _, cb := range budgets {
		if cb.radius > 0 && cb.radius < smallest {
			smallest = cb.radius
		}
	}
	if !math.IsInf(smallest, 1) && clamped > smallest {
		clamped = smallest
	}
	if width-clamped <= 0 || height-clamped <= 0 {
		return 0
	}
	return clamped
}

// insetShape shrinks a normalized shape for the inset border outline:
// both dimensions lose the clamped stroke width, and every rounded corner
// loses half of it (never dropping below a sharp corner). The result runs
// through the same pipeline as the outer shape.
func insetShape(n normalizedShape, clampedStroke float64) normalizedShape {
	inner := n
	inner.width -= clampedStroke
	inner.height -= clampedStroke
	half := clampedStroke / 2
	for i := range inner.radii {
		if inner.radii[i] > 0 {
			inner.radii[i] = math.Max(0, inner.radii[i]-half)
		}
	}
	inner.strokeWidth = 0
	return inner
}
