package squircle

import "math"

// CornerProfile holds the control distances of one corner's composite
// curve: a cubic Bezier easing off the edge, a circular arc, and a
// mirrored cubic easing onto the next edge. All distances are measured
// along the corner's adjacent edges.
//
// A smoothed corner consumes P units of each adjacent edge, split as
// A+B+C (first cubic), ArcChord (per-axis advance of the arc) and D
// (second cubic). At smoothing 0 the cubics vanish and the corner is a
// plain quarter-circle arc; at smoothing 1 the arc vanishes and the
// corner is two cubics.
//
// The zero value describes a sharp corner.
type CornerProfile struct {
	A float64
	B float64
	C float64
	D float64

	// P is the total linear extent the corner occupies along each of
	// its adjacent edges.
	P float64

	// ArcChord is the per-axis advance of the arc segment, i.e. the
	// chord length projected onto either edge direction.
	ArcChord float64

	// Radius is the resolved corner radius actually used.
	Radius float64
}

// computeCornerProfile derives the control distances for one corner from
// its resolved radius, the smoothing factor, and the budget assigned by
// the corner budget solver.
//
// When preserveSmoothing is false, the corner fits its budget by reducing
// curvature first: the effective smoothing is clamped so the total extent
// never exceeds the budget. When preserveSmoothing is true the smoothing
// is kept exact and the straight-in portions (a, b) are redistributed
// within whatever extent remains.
func computeCornerProfile(radius, smoothing, budget float64, preserveSmoothing bool) CornerProfile {
	if radius <= 0 || budget <= 0 {
		return CornerProfile{}
	}
	if radius > budget {
		radius = budget
	}

	p := (1 + smoothing) * radius
	if !preserveSmoothing {
		maxSmoothing := budget/radius - 1
		if smoothing > maxSmoothing {
			smoothing = maxSmoothing
		}
		if p > budget {
			p = budget
		}
	}

	// Angular split: the arc covers 90*(1-smoothing) degrees, the two
	// cubics share the rest symmetrically.
	arcMeasure := 90 * (1 - smoothing)
	arcChord := math.Sin(radians(arcMeasure/2)) * radius * math.Sqrt2

	alpha := (90 - arcMeasure) / 2
	p3ToP4 := radius * math.Tan(radians(alpha/2))
	beta := 45 * smoothing

	c := p3ToP4 * math.Cos(radians(beta))
	d := c * math.Tan(radians(beta))
	b := (p - arcChord - c - d) / 3
	a := 2 * b

	if preserveSmoothing && p > budget {
		remaining := budget - d - arcChord - c
		b = math.Min(b, remaining*5/6)
		a = remaining - b
		p = budget
	}

	return CornerProfile{
		A:        a,
		B:        b,
		C:        c,
		D:        d,
		P:        p,
		ArcChord: arcChord,
		Radius:   radius,
	}
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
