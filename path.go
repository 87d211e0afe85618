package squircle

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// ArcTo draws a circular arc from the current point to Point.
// Radius is the circle radius; Sweep selects the positive-angle
// (clockwise, in this package's y-down coordinates) direction when true.
// Arcs emitted by this package never span more than a quarter circle,
// so no large-arc flag is carried.
type ArcTo struct {
	Radius float64
	Sweep  bool
	Point  Point
}

func (ArcTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path as an ordered command list.
// Paths produced by the engine are treated as immutable: they are shared
// through the geometry cache and must not be modified by callers.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// ArcTo draws a circular arc of the given radius to a point.
func (p *Path) ArcTo(radius float64, sweep bool, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, ArcTo{Radius: radius, Sweep: sweep, Point: pt})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// IsClosed reports whether the path ends with a close command.
func (p *Path) IsClosed() bool {
	if p.IsEmpty() {
		return false
	}
	_, ok := p.elements[len(p.elements)-1].(Close)
	return ok
}

// Bounds returns the bounding box of the path's control polygon as
// (minX, minY, maxX, maxY). Control points of curves are included, so the
// box is conservative: it always contains the rendered outline. For the
// convex outlines this package emits, on-curve endpoints touch the box.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	if p.IsEmpty() {
		return 0, 0, 0, 0
	}
	first := true
	grow := func(pt Point) {
		if first {
			minX, maxX = pt.X, pt.X
			minY, maxY = pt.Y, pt.Y
			first = false
			return
		}
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			grow(e.Point)
		case LineTo:
			grow(e.Point)
		case CubicTo:
			grow(e.Control1)
			grow(e.Control2)
			grow(e.Point)
		case ArcTo:
			grow(e.Point)
		}
	}
	return minX, minY, maxX, maxY
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// Simplified returns a copy of the path with every arc command rewritten
// as a cubic Bezier approximation. Consumers that cannot draw circular
// arcs (rasterizers, most path-clipping code) should simplify first.
// Paths without arcs are returned as a plain clone.
func (p *Path) Simplified() *Path {
	result := NewPath()
	var cur Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.MoveTo(e.Point.X, e.Point.Y)
			cur = e.Point
		case LineTo:
			result.LineTo(e.Point.X, e.Point.Y)
			cur = e.Point
		case CubicTo:
			result.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
			cur = e.Point
		case ArcTo:
			appendArcAsCubics(result, cur, e)
			cur = e.Point
		case Close:
			result.Close()
			cur = result.start
		}
	}
	return result
}

// appendArcAsCubics converts an endpoint-parameterized circular arc into
// one or more cubic segments (at most 90 degrees each) and appends them.
func appendArcAsCubics(dst *Path, from Point, arc ArcTo) {
	to := arc.Point
	chord := from.Distance(to)
	r := arc.Radius
	if chord == 0 {
		return
	}
	if r <= 0 {
		dst.LineTo(to.X, to.Y)
		return
	}
	// Scale the radius up if it cannot span the chord, matching SVG
	// endpoint-arc semantics.
	if chord > 2*r {
		r = chord / 2
	}

	// Recover the circle center: it sits on the chord's perpendicular
	// bisector, on the side selected by the sweep flag.
	mid := from.Lerp(to, 0.5)
	u := to.Sub(from).Normalize()
	n := Pt(-u.Y, u.X)
	h := math.Sqrt(math.Max(0, r*r-(chord/2)*(chord/2)))
	var center Point
	if arc.Sweep {
		center = mid.Add(n.Mul(h))
	} else {
		center = mid.Sub(n.Mul(h))
	}

	a1 := math.Atan2(from.Y-center.Y, from.X-center.X)
	a2 := math.Atan2(to.Y-center.Y, to.X-center.X)
	if arc.Sweep {
		for a2 < a1 {
			a2 += 2 * math.Pi
		}
	} else {
		for a2 > a1 {
			a2 -= 2 * math.Pi
		}
	}

	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil(math.Abs(a2-a1) / maxAngle))
	if numSegments < 1 {
		numSegments = 1
	}
	angleStep := (a2 - a1) / float64(numSegments)
	for i := 0; i < numSegments; i++ {
		s1 := a1 + float64(i)*angleStep
		s2 := s1 + angleStep
		appendArcSegment(dst, center, r, s1, s2)
	}
}

// appendArcSegment appends a single cubic approximating an arc segment of
// at most 90 degrees from angle a1 to a2 around center.
func appendArcSegment(dst *Path, center Point, r, a1, a2 float64) {
	// Control point distance for a cubic arc approximation, from
	// "Drawing an elliptical arc using polylines, quadratic or cubic
	// Bezier curves".
	t := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := center.X + r*cos1
	y1 := center.Y + r*sin1
	x2 := center.X + r*cos2
	y2 := center.Y + r*sin2

	c1x := x1 - alpha*r*sin1
	c1y := y1 + alpha*r*cos1
	c2x := x2 + alpha*r*sin2
	c2y := y2 - alpha*r*cos2

	dst.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}
