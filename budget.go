package squircle

import (
	"math"
	"sort"
)

// cornerBudget is the budget solver's result for one corner: the radius
// the corner may actually use and the maximum linear extent (budget) it
// may occupy along each of its two adjacent edges.
type cornerBudget struct {
	radius float64
	budget float64
}

// cornerEdge is one half-edge of the corner adjacency graph: the corner
// at the far end and the axis the shared edge runs along.
type cornerEdge struct {
	neighbor   Corner
	horizontal bool // true: edge length is the rectangle width
}

// cornerAdjacency is the fixed 4-node adjacency graph of the rectangle.
// Each corner shares one horizontal and one vertical edge.
var cornerAdjacency = [4][2]cornerEdge{
	TopLeft:     {{TopRight, true}, {BottomLeft, false}},
	TopRight:    {{TopLeft, true}, {BottomRight, false}},
	BottomLeft:  {{BottomRight, true}, {TopLeft, false}},
	BottomRight: {{BottomLeft, true}, {TopRight, false}},
}

// solveCornerBudgets resolves the radius and budget of every corner so
// that the two corners sharing an edge never claim overlapping stretches
// of it.
//
// When all four radii are equal there is nothing to arbitrate: every
// corner gets half the shorter dimension as its budget. Otherwise corners
// are processed in descending radius order (stable on ties, in Corner
// declaration order): the larger claimant on an edge resolves first and
// the second claimant receives exactly the remainder, so an edge is never
// double-counted.
func solveCornerBudgets(width, height float64, radii [4]float64) [4]cornerBudget {
	if radii[0] == radii[1] && radii[1] == radii[2] && radii[2] == radii[3] {
		budget := math.Min(width, height) / 2
		r := math.Min(radii[0], budget)
		var out [4]cornerBudget
		for i := range out {
			out[i] = cornerBudget{radius: r, budget: budget}
		}
		return out
	}

	order := [4]Corner{TopLeft, TopRight, BottomLeft, BottomRight}
	sort.SliceStable(order[:], func(i, j int) bool {
		return radii[order[i]] > radii[order[j]]
	})

	// -1 marks a budget not yet resolved this pass.
	resolved := [4]float64{-1, -1, -1, -1}
	var out [4]cornerBudget

	for _, corner := range order {
		r := radii[corner]
		budget := math.Inf(1)
		for _, edge := range cornerAdjacency[corner] {
			edgeLength := height
			if edge.horizontal {
				edgeLength = width
			}
			neighborR := radii[edge.neighbor]

			var available float64
			switch {
			case r == 0 && neighborR == 0:
				available = 0
			case resolved[edge.neighbor] >= 0:
				available = edgeLength - resolved[edge.neighbor]
			default:
				available = r / (r + neighborR) * edgeLength
			}
			budget = math.Min(budget, available)
		}
		if budget < 0 {
			budget = 0
		}
		resolved[corner] = budget
		out[corner] = cornerBudget{
			radius: math.Min(r, budget),
			budget: budget,
		}
	}
	return out
}
