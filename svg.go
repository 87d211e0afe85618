package squircle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimal places used when serializing
// path coordinates and when quantizing cache keys.
const DefaultPrecision = 4

// roundTo rounds v to the given number of decimal places.
// All numeric quantization in this package (cache keys, serialized
// coordinates) funnels through here so that "same geometry" and "same
// output bytes" agree.
func roundTo(v float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}

// formatCoord formats a coordinate rounded to the given precision with
// trailing zeros stripped ("150" rather than "150.0000").
func formatCoord(v float64, precision int) string {
	r := roundTo(v, precision)
	if r == 0 {
		// Normalize negative zero.
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Data serializes the path as SVG path data using the M/L/C/A/Z command
// subset, with every coordinate rounded to the given decimal precision.
// A precision below zero falls back to DefaultPrecision.
func (p *Path) Data(precision int) string {
	if p.IsEmpty() {
		return ""
	}
	if precision < 0 {
		precision = DefaultPrecision
	}
	var sb strings.Builder
	put := func(vals ...float64) {
		for _, v := range vals {
			sb.WriteByte(' ')
			sb.WriteString(formatCoord(v, precision))
		}
	}
	for i, elem := range p.elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e := elem.(type) {
		case MoveTo:
			sb.WriteByte('M')
			put(e.Point.X, e.Point.Y)
		case LineTo:
			sb.WriteByte('L')
			put(e.Point.X, e.Point.Y)
		case CubicTo:
			sb.WriteByte('C')
			put(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case ArcTo:
			sb.WriteByte('A')
			put(e.Radius, e.Radius)
			sweep := 0
			if e.Sweep {
				sweep = 1
			}
			fmt.Fprintf(&sb, " 0 0 %d", sweep)
			put(e.Point.X, e.Point.Y)
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

// String returns the SVG path data at the default precision.
func (p *Path) String() string {
	return p.Data(DefaultPrecision)
}

// SVG renders the geometry as a standalone SVG document: the fill path,
// and, when a stroke survived clamping, the inset border path stroked at
// the resolved width. Colors are emitted as-is; empty colors default to
// black fill and no border.
func (g Geometry) SVG() string {
	if g.IsEmpty() {
		return ""
	}
	fill := g.FillColor
	if fill == "" {
		fill = "#000000"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		formatCoord(g.Width, g.precision), formatCoord(g.Height, g.precision),
		formatCoord(g.Width, g.precision), formatCoord(g.Height, g.precision))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, `  <path d="%s" fill="%s"/>`, g.Fill.Data(g.precision), fill)
	sb.WriteByte('\n')
	if g.Stroke != nil && g.StrokeWidth > 0 {
		stroke := g.StrokeColor
		if stroke == "" {
			stroke = "#000000"
		}
		fmt.Fprintf(&sb, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s" transform="translate(%s %s)"/>`,
			g.Stroke.Data(g.precision), stroke,
			formatCoord(g.StrokeWidth, g.precision),
			formatCoord(g.Inset, g.precision), formatCoord(g.Inset, g.precision))
		sb.WriteByte('\n')
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}
