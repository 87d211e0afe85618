package squircle

// zeroArcChord is the threshold below which a corner's arc segment is
// dropped from the outline. At maximal smoothing the arc's angular span
// is zero and the corner is drawn as two cubics only.
const zeroArcChord = 1e-6

// assembleOutline stitches the four corner profiles and four straight
// edges into one closed clockwise path.
//
// The outline starts at (width - topRight.P, 0) and walks: top-right
// corner, right edge, bottom-right corner, bottom edge, bottom-left
// corner, left edge, top-left corner; the close command supplies the top
// edge back to the start. A zero-radius corner contributes no commands —
// the surrounding edge lines meet exactly at the corner point, so a shape
// with four sharp corners assembles to the plain rectangle M/L/L/L/Z.
func assembleOutline(width, height float64, profiles [4]CornerProfile) *Path {
	tl := profiles[TopLeft]
	tr := profiles[TopRight]
	bl := profiles[BottomLeft]
	br := profiles[BottomRight]

	p := NewPath()
	p.MoveTo(width-tr.P, 0)

	cur := Pt(width-tr.P, 0)
	cur = traceCorner(p, cur, tr, Pt(1, 0), Pt(0, 1), Pt(width, tr.P))

	p.LineTo(width, height-br.P)
	cur = Pt(width, height-br.P)
	cur = traceCorner(p, cur, br, Pt(0, 1), Pt(-1, 0), Pt(width-br.P, height))

	p.LineTo(bl.P, height)
	cur = Pt(bl.P, height)
	cur = traceCorner(p, cur, bl, Pt(-1, 0), Pt(0, -1), Pt(0, height-bl.P))

	p.LineTo(0, tl.P)
	cur = Pt(0, tl.P)
	traceCorner(p, cur, tl, Pt(0, -1), Pt(1, 0), Pt(tl.P, 0))

	p.Close()
	return p
}

// traceCorner appends one corner's composite curve: cubic, arc, mirrored
// cubic. The trace is expressed in a corner-local frame — `along` is the
// unit direction of travel entering the corner, `cross` the unit
// direction leaving it — so the same offsets serve all four corners with
// per-corner sign conventions supplied by the caller.
//
// exit is the point where the trace meets the next edge. It is anchored
// there directly instead of being accumulated from the segment offsets,
// which would leave p − (a+b+c+d+arcChord) float noise on the edge
// coordinate and push the outline off the rectangle boundary. Returns
// the new current point.
func traceCorner(p *Path, cur Point, prof CornerProfile, along, cross, exit Point) Point {
	if prof.Radius <= 0 {
		return cur
	}

	c1 := cur.Add(along.Mul(prof.A))
	c2 := cur.Add(along.Mul(prof.A + prof.B))
	end := cur.Add(along.Mul(prof.A + prof.B + prof.C)).Add(cross.Mul(prof.D))
	p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	cur = end

	if prof.ArcChord > zeroArcChord {
		end = cur.Add(along.Mul(prof.ArcChord)).Add(cross.Mul(prof.ArcChord))
		p.ArcTo(prof.Radius, true, end.X, end.Y)
	}

	// Control points of the mirrored cubic sit at cross-offsets a+b and
	// a back from the exit, so they share its exact edge coordinate.
	c1 = exit.Sub(cross.Mul(prof.A + prof.B))
	c2 = exit.Sub(cross.Mul(prof.A))
	p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, exit.X, exit.Y)
	return exit
}
