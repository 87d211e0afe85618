package squircle

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
)

func TestEngine_Geometry(t *testing.T) {
	eng := NewEngine()
	geom, err := eng.Geometry(ShapeSpec{
		Width: 200, Height: 200, Radius: 50, Smoothing: 1, StrokeWidth: 1,
	})
	if err != nil {
		t.Fatalf("Geometry: %v", err)
	}
	if geom.IsEmpty() {
		t.Fatal("expected non-empty geometry")
	}

	// Three explicit edge lines (the close supplies the top edge) and
	// four composite corner traces; at smoothing 1 every corner is two
	// cubics with no arc.
	moves, lines, cubics, arcs, closes := countElements(geom.Fill)
	if moves != 1 || closes != 1 {
		t.Errorf("expected one closed subpath, got %dM %dZ", moves, closes)
	}
	if lines != 3 {
		t.Errorf("expected 3 explicit edge segments, got %d", lines)
	}
	if cubics != 8 || arcs != 0 {
		t.Errorf("expected 8 cubics and no arcs, got %d cubics %d arcs", cubics, arcs)
	}

	// The fill outline spans the full rectangle exactly.
	minX, minY, maxX, maxY := geom.Fill.Bounds()
	if minX != 0 || minY != 0 || maxX != 200 || maxY != 200 {
		t.Errorf("fill bounds (%g,%g)-(%g,%g), want (0,0)-(200,200)", minX, minY, maxX, maxY)
	}

	if geom.Stroke == nil || geom.Inset != 0.5 {
		t.Errorf("expected inset border at offset 0.5, got %+v", geom)
	}
}

func TestEngine_Unmeasured(t *testing.T) {
	eng := NewEngine()
	for _, tt := range []struct{ w, h float64 }{{0, 100}, {100, 0}, {-1, 100}} {
		geom, err := eng.Geometry(ShapeSpec{Width: tt.w, Height: tt.h, Radius: 10, Smoothing: 0.5})
		if err != nil {
			t.Errorf("%gx%g: unmeasured must not error: %v", tt.w, tt.h, err)
		}
		if !geom.IsEmpty() {
			t.Errorf("%gx%g: expected empty geometry", tt.w, tt.h)
		}
	}
}

func TestEngine_ValidationFailFast(t *testing.T) {
	eng := NewEngine()
	_, err := eng.Geometry(ShapeSpec{Width: 100, Height: 100, Smoothing: math.NaN()})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestEngine_OversizedRadiusClamps(t *testing.T) {
	eng := NewEngine()
	geom, err := eng.Geometry(ShapeSpec{
		Width: 100, Height: 40,
		TopLeftRadius: CornerRadius(60),
		Smoothing:     0,
	})
	if err != nil {
		t.Fatalf("Geometry: %v", err)
	}

	radii := geom.Radii()
	if radii.TopLeft >= 60 {
		t.Errorf("resolved top-left radius %g, must clamp below requested 60", radii.TopLeft)
	}
	if radii.TopLeft > 40 {
		t.Errorf("resolved top-left radius %g overruns the short edge", radii.TopLeft)
	}
	// Adjacent claims on the left edge must not overlap.
	if sum := radii.TopLeft + radii.BottomLeft; sum > 40+1e-9 {
		t.Errorf("left edge overcommitted: %g > 40", sum)
	}
}

func TestEngine_AllSharpCornersIsRectangle(t *testing.T) {
	eng := NewEngine()
	geom, err := eng.Geometry(ShapeSpec{Width: 120, Height: 80, Smoothing: 0.8})
	if err != nil {
		t.Fatalf("Geometry: %v", err)
	}
	_, _, cubics, arcs, _ := countElements(geom.Fill)
	if cubics != 0 || arcs != 0 {
		t.Errorf("zero radii must yield a pure rectangle, got %d cubics %d arcs", cubics, arcs)
	}
	if got := geom.Fill.Data(4); got != "M 120 0 L 120 80 L 0 80 L 0 0 Z" {
		t.Errorf("unexpected rectangle path: %q", got)
	}
}

func TestEngine_DeterministicAndCached(t *testing.T) {
	eng := NewEngine()
	spec := ShapeSpec{Width: 187.5, Height: 92.25, Radius: 18, Smoothing: 0.73}

	first, err := eng.Geometry(spec)
	if err != nil {
		t.Fatalf("Geometry: %v", err)
	}
	second, err := eng.Geometry(spec)
	if err != nil {
		t.Fatalf("Geometry: %v", err)
	}

	if first.Fill.Data(4) != second.Fill.Data(4) {
		t.Error("identical requests produced different output bytes")
	}
	if first.Fill != second.Fill {
		t.Error("expected the second request to reuse the cached path")
	}

	stats := eng.PathCacheStats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("path cache stats = %d hits / %d misses, want 1/1", stats.Hits, stats.Misses)
	}
}

func TestEngine_CacheKeyQuantization(t *testing.T) {
	// Sub-precision float noise must hit the same cache entry.
	eng := NewEngine()
	a, _ := eng.Geometry(ShapeSpec{Width: 100.000004, Height: 50, Radius: 10, Smoothing: 0.5})
	b, _ := eng.Geometry(ShapeSpec{Width: 100.000001, Height: 50, Radius: 10, Smoothing: 0.5})
	if a.Fill != b.Fill {
		t.Error("expected noise-equal shapes to share one cache entry")
	}
}

func TestEngine_CacheKeyCompleteness(t *testing.T) {
	// Every geometry-affecting parameter must split the cache.
	eng := NewEngine()
	base := ShapeSpec{Width: 100, Height: 60, Radius: 12, Smoothing: 0.5}

	variants := []ShapeSpec{
		{Width: 101, Height: 60, Radius: 12, Smoothing: 0.5},
		{Width: 100, Height: 61, Radius: 12, Smoothing: 0.5},
		{Width: 100, Height: 60, Radius: 13, Smoothing: 0.5},
		{Width: 100, Height: 60, Radius: 12, Smoothing: 0.6},
		{Width: 100, Height: 60, Radius: 12, Smoothing: 0.5, PreserveSmoothing: true},
		{Width: 100, Height: 60, Radius: 12, TopLeftRadius: CornerRadius(3), Smoothing: 0.5},
	}

	ref, _ := eng.Geometry(base)
	for i, spec := range variants {
		got, err := eng.Geometry(spec)
		if err != nil {
			t.Fatalf("variant %d: %v", i, err)
		}
		if got.Fill == ref.Fill {
			t.Errorf("variant %d: distinct parameters shared a cache entry", i)
		}
	}
}

func TestEngine_PathCacheEviction(t *testing.T) {
	eng := NewEngine(WithPathCacheCapacity(4))

	for i := 0; i < 5; i++ {
		_, err := eng.Geometry(ShapeSpec{Width: 100 + float64(i), Height: 50, Radius: 8, Smoothing: 0.5})
		if err != nil {
			t.Fatalf("shape %d: %v", i, err)
		}
	}

	stats := eng.PathCacheStats()
	if stats.Len != 4 {
		t.Errorf("cache len = %d, want capacity 4", stats.Len)
	}
	if stats.Evictions != 1 {
		t.Errorf("evictions = %d, want exactly 1", stats.Evictions)
	}

	// The first-inserted shape was evicted: requesting it again misses.
	misses := stats.Misses
	_, _ = eng.Geometry(ShapeSpec{Width: 100, Height: 50, Radius: 8, Smoothing: 0.5})
	if got := eng.PathCacheStats().Misses; got != misses+1 {
		t.Error("expected the evicted first key to miss")
	}
	// A later shape is still resident.
	hits := eng.PathCacheStats().Hits
	_, _ = eng.Geometry(ShapeSpec{Width: 103, Height: 50, Radius: 8, Smoothing: 0.5})
	if got := eng.PathCacheStats().Hits; got != hits+1 {
		t.Error("expected a resident key to hit")
	}
}

func TestEngine_ProfileCacheShared(t *testing.T) {
	// Four equal corners resolve to one profile entry, not four.
	eng := NewEngine()
	_, err := eng.Geometry(ShapeSpec{Width: 100, Height: 100, Radius: 20, Smoothing: 0.5})
	if err != nil {
		t.Fatalf("Geometry: %v", err)
	}
	if got := eng.ProfileCacheStats().Len; got != 1 {
		t.Errorf("profile cache has %d entries, want 1 shared profile", got)
	}
}

func TestEngine_Concurrent(t *testing.T) {
	eng := NewEngine()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				spec := ShapeSpec{
					Width:     100 + float64(i%10),
					Height:    80,
					Radius:    float64(g + 1),
					Smoothing: 0.5,
				}
				if _, err := eng.Geometry(spec); err != nil {
					t.Errorf("goroutine %d: %v", g, err)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestEngine_ColorsPassThrough(t *testing.T) {
	eng := NewEngine()
	geom, err := eng.Geometry(ShapeSpec{
		Width: 50, Height: 50, Radius: 5, Smoothing: 0.5,
		FillColor: "rebeccapurple", StrokeColor: "#abc",
	})
	if err != nil {
		t.Fatalf("Geometry: %v", err)
	}
	if geom.FillColor != "rebeccapurple" || geom.StrokeColor != "#abc" {
		t.Errorf("colors not passed through: %+v", geom)
	}
}

func BenchmarkEngine_Geometry(b *testing.B) {
	cases := []struct {
		name string
		spec ShapeSpec
	}{
		{"cached", ShapeSpec{Width: 200, Height: 200, Radius: 50, Smoothing: 0.6}},
		{"stroked", ShapeSpec{Width: 200, Height: 200, Radius: 50, Smoothing: 0.6, StrokeWidth: 2}},
	}
	for _, tt := range cases {
		b.Run(tt.name, func(b *testing.B) {
			eng := NewEngine()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := eng.Geometry(tt.spec); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEngine_GeometryMiss(b *testing.B) {
	eng := NewEngine(WithPathCacheCapacity(0))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		spec := ShapeSpec{
			Width:     100 + float64(i%1000),
			Height:    80,
			Radius:    12,
			Smoothing: 0.6,
		}
		if _, err := eng.Geometry(spec); err != nil {
			b.Fatal(err)
		}
	}
}

func ExampleEngine_Geometry() {
	eng := NewEngine()
	geom, _ := eng.Geometry(ShapeSpec{
		Width:         100,
		Height:        40,
		TopLeftRadius: CornerRadius(60),
		Smoothing:     0.5,
	})
	fmt.Printf("resolved top-left radius: %g\n", geom.Radii().TopLeft)
	// Output: resolved top-left radius: 40
}
