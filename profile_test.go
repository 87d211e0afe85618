package squircle

import (
	"math"
	"testing"
)

func TestComputeCornerProfile_NoSmoothing(t *testing.T) {
	// smoothing 0 degenerates to a plain quarter-circle arc: no cubic
	// easing at all, and the arc advances exactly the radius per axis.
	prof := computeCornerProfile(10, 0, 50, false)

	for name, v := range map[string]float64{
		"A": prof.A, "B": prof.B, "C": prof.C, "D": prof.D,
	} {
		if math.Abs(v) > tolerance {
			t.Errorf("%s = %g, want 0 at smoothing 0", name, v)
		}
	}
	if math.Abs(prof.P-10) > tolerance {
		t.Errorf("P = %g, want radius 10", prof.P)
	}
	if math.Abs(prof.ArcChord-10) > tolerance {
		t.Errorf("ArcChord = %g, want 10", prof.ArcChord)
	}
	if prof.Radius != 10 {
		t.Errorf("Radius = %g, want 10", prof.Radius)
	}
}

func TestComputeCornerProfile_FullSmoothing(t *testing.T) {
	// smoothing 1 degenerates to two cubics with no arc.
	prof := computeCornerProfile(50, 1, 100, false)

	if prof.ArcChord > tolerance {
		t.Errorf("ArcChord = %g, want 0 at smoothing 1", prof.ArcChord)
	}
	if math.Abs(prof.P-100) > tolerance {
		t.Errorf("P = %g, want 2*radius", prof.P)
	}
	if math.Abs(prof.A-2*prof.B) > tolerance {
		t.Errorf("A = %g, want 2*B = %g", prof.A, 2*prof.B)
	}
	if math.Abs(prof.C-prof.D) > tolerance {
		t.Errorf("C = %g and D = %g should coincide at smoothing 1", prof.C, prof.D)
	}
}

func TestComputeCornerProfile_ExtentIdentity(t *testing.T) {
	// The segments always sum to the corner's total extent:
	// a + b + c + d + arcChord == p.
	tests := []struct {
		name      string
		radius    float64
		smoothing float64
		budget    float64
		preserve  bool
	}{
		{"mid smoothing", 40, 0.5, 100, false},
		{"low smoothing", 25, 0.1, 60, false},
		{"clamped by budget", 50, 1, 60, false},
		{"preserve within budget", 30, 0.8, 100, true},
		{"preserve over budget", 50, 1, 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prof := computeCornerProfile(tt.radius, tt.smoothing, tt.budget, tt.preserve)
			sum := prof.A + prof.B + prof.C + prof.D + prof.ArcChord
			if math.Abs(sum-prof.P) > 1e-6 {
				t.Errorf("a+b+c+d+chord = %g, want P = %g", sum, prof.P)
			}
			if prof.P > tt.budget+1e-6 {
				t.Errorf("P = %g overruns budget %g", prof.P, tt.budget)
			}
		})
	}
}

func TestComputeCornerProfile_SmoothingClampedByBudget(t *testing.T) {
	// Without preserveSmoothing the curvature shrinks first: the profile
	// for (r=50, s=1, budget=60) must match an explicit s=0.2 request,
	// since 60/50 - 1 = 0.2.
	clamped := computeCornerProfile(50, 1, 60, false)
	explicit := computeCornerProfile(50, 0.2, 60, false)

	pairs := [][2]float64{
		{clamped.A, explicit.A}, {clamped.B, explicit.B},
		{clamped.C, explicit.C}, {clamped.D, explicit.D},
		{clamped.P, explicit.P}, {clamped.ArcChord, explicit.ArcChord},
	}
	for i, pair := range pairs {
		if math.Abs(pair[0]-pair[1]) > 1e-9 {
			t.Errorf("field %d: budget-clamped %g != explicit smoothing %g",
				i, pair[0], pair[1])
		}
	}
	if clamped.ArcChord <= 0 {
		t.Error("expected a non-degenerate arc after smoothing reduction")
	}
}

func TestComputeCornerProfile_PreserveSmoothing(t *testing.T) {
	// With preserveSmoothing the curvature terms (c, d) and the arc stay
	// exactly as requested; only the straight-in portions shrink.
	free := computeCornerProfile(50, 1, 1000, true)
	tight := computeCornerProfile(50, 1, 60, true)

	if math.Abs(free.C-tight.C) > tolerance || math.Abs(free.D-tight.D) > tolerance {
		t.Errorf("c/d changed under budget pressure: free %+v tight %+v", free, tight)
	}
	if math.Abs(free.ArcChord-tight.ArcChord) > tolerance {
		t.Errorf("arc changed under budget pressure: %g != %g", free.ArcChord, tight.ArcChord)
	}
	if math.Abs(tight.P-60) > tolerance {
		t.Errorf("P = %g, want clamped to budget 60", tight.P)
	}
	if tight.A+tight.B >= free.A+free.B {
		t.Error("expected straight-in extent to shrink under budget pressure")
	}
}

func TestComputeCornerProfile_Degenerate(t *testing.T) {
	zero := CornerProfile{}
	if got := computeCornerProfile(0, 0.5, 50, false); got != zero {
		t.Errorf("zero radius: got %+v, want zero profile", got)
	}
	if got := computeCornerProfile(10, 0.5, 0, false); got != zero {
		t.Errorf("zero budget: got %+v, want zero profile", got)
	}
}

func TestComputeCornerProfile_RadiusClampedToBudget(t *testing.T) {
	prof := computeCornerProfile(80, 0, 30, false)
	if prof.Radius != 30 {
		t.Errorf("Radius = %g, want clamped to budget 30", prof.Radius)
	}
	if prof.P > 30+tolerance {
		t.Errorf("P = %g overruns budget", prof.P)
	}
}
