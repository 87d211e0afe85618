// Command squirclegen generates squircle outlines as SVG documents or
// PNG coverage masks.
//
// Single shape:
//
//	squirclegen -width 200 -height 120 -radius 24 -smoothing 0.8 -output card.svg
//
// Batch mode reads shape specs from a YAML file:
//
//	squirclegen -config shapes.yaml -output out/
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/vector"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/squircle"
)

func main() {
	var (
		width       = flag.Float64("width", 200, "shape width")
		height      = flag.Float64("height", 200, "shape height")
		radius      = flag.Float64("radius", 0, "base corner radius")
		topLeft     = flag.Float64("top-left", -1, "top-left radius override (-1 = use base)")
		topRight    = flag.Float64("top-right", -1, "top-right radius override (-1 = use base)")
		bottomLeft  = flag.Float64("bottom-left", -1, "bottom-left radius override (-1 = use base)")
		bottomRight = flag.Float64("bottom-right", -1, "bottom-right radius override (-1 = use base)")
		smoothing   = flag.Float64("smoothing", 0.6, "corner smoothing factor in [0,1]")
		preserve    = flag.Bool("preserve-smoothing", false, "keep smoothing exact when corners overrun their budget")
		strokeWidth = flag.Float64("stroke-width", 0, "border stroke width")
		fill        = flag.String("fill", "#000000", "fill color")
		stroke      = flag.String("stroke", "", "border color")
		configPath  = flag.String("config", "", "YAML file with shape specs (batch mode)")
		output      = flag.String("output", "", "output file, or directory in batch mode (default stdout)")
		asPNG       = flag.Bool("png", false, "emit a PNG coverage mask instead of SVG")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		squircle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	eng := squircle.NewEngine()

	if *configPath != "" {
		shapes, err := loadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if err := runBatch(eng, shapes, *output, *asPNG); err != nil {
			log.Fatalf("Batch failed: %v", err)
		}
		return
	}

	cfg := shapeConfig{
		Width:             *width,
		Height:            *height,
		Radius:            *radius,
		Smoothing:         *smoothing,
		PreserveSmoothing: *preserve,
		StrokeWidth:       *strokeWidth,
		Fill:              *fill,
		Stroke:            *stroke,
	}
	if *topLeft >= 0 {
		cfg.TopLeftRadius = squircle.CornerRadius(*topLeft)
	}
	if *topRight >= 0 {
		cfg.TopRightRadius = squircle.CornerRadius(*topRight)
	}
	if *bottomLeft >= 0 {
		cfg.BottomLeftRadius = squircle.CornerRadius(*bottomLeft)
	}
	if *bottomRight >= 0 {
		cfg.BottomRightRadius = squircle.CornerRadius(*bottomRight)
	}

	if err := emit(eng, cfg, *output, *asPNG); err != nil {
		log.Fatalf("Failed: %v", err)
	}
}

// shapeConfig mirrors ShapeSpec for YAML decoding; per-corner overrides
// stay pointers so absent keys fall back to the base radius.
type shapeConfig struct {
	Name              string   `yaml:"name,omitempty"`
	Width             float64  `yaml:"width"`
	Height            float64  `yaml:"height"`
	Radius            float64  `yaml:"radius,omitempty"`
	TopLeftRadius     *float64 `yaml:"topLeftRadius,omitempty"`
	TopRightRadius    *float64 `yaml:"topRightRadius,omitempty"`
	BottomLeftRadius  *float64 `yaml:"bottomLeftRadius,omitempty"`
	BottomRightRadius *float64 `yaml:"bottomRightRadius,omitempty"`
	Smoothing         float64  `yaml:"smoothing"`
	PreserveSmoothing bool     `yaml:"preserveSmoothing,omitempty"`
	StrokeWidth       float64  `yaml:"strokeWidth,omitempty"`
	Fill              string   `yaml:"fill,omitempty"`
	Stroke            string   `yaml:"stroke,omitempty"`
}

func (c shapeConfig) spec() squircle.ShapeSpec {
	return squircle.ShapeSpec{
		Width:             c.Width,
		Height:            c.Height,
		Radius:            c.Radius,
		TopLeftRadius:     c.TopLeftRadius,
		TopRightRadius:    c.TopRightRadius,
		BottomLeftRadius:  c.BottomLeftRadius,
		BottomRightRadius: c.BottomRightRadius,
		Smoothing:         c.Smoothing,
		PreserveSmoothing: c.PreserveSmoothing,
		StrokeWidth:       c.StrokeWidth,
		FillColor:         c.Fill,
		StrokeColor:       c.Stroke,
	}
}

// configFile is the top-level YAML document: a list of shapes.
type configFile struct {
	Shapes []shapeConfig `yaml:"shapes"`
}

func loadConfig(path string) ([]shapeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Shapes) == 0 {
		return nil, fmt.Errorf("%s: no shapes defined", path)
	}
	return cfg.Shapes, nil
}

func runBatch(eng *squircle.Engine, shapes []shapeConfig, dir string, asPNG bool) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	ext := ".svg"
	if asPNG {
		ext = ".png"
	}
	for i, cfg := range shapes {
		name := cfg.Name
		if name == "" {
			name = fmt.Sprintf("shape%03d", i)
		}
		out := filepath.Join(dir, name+ext)
		if err := emit(eng, cfg, out, asPNG); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		log.Printf("Wrote %s", out)
	}
	return nil
}

// emit computes one geometry and writes it to out ("" or "-" = stdout).
func emit(eng *squircle.Engine, cfg shapeConfig, out string, asPNG bool) error {
	geom, err := eng.Geometry(cfg.spec())
	if err != nil {
		return err
	}
	if geom.IsEmpty() {
		return fmt.Errorf("shape %gx%g has no geometry", cfg.Width, cfg.Height)
	}

	if asPNG {
		if out == "" || out == "-" {
			return fmt.Errorf("-png requires -output")
		}
		return writePNG(out, geom)
	}

	doc := geom.SVG()
	if out == "" || out == "-" {
		_, err := os.Stdout.WriteString(doc)
		return err
	}
	return os.WriteFile(out, []byte(doc), 0o644)
}

// writePNG rasterizes the fill outline into an alpha coverage mask.
// Arcs are lowered to cubics first; x/image/vector has no arc segment.
func writePNG(path string, geom squircle.Geometry) error {
	w := int(geom.Width + 0.5)
	h := int(geom.Height + 0.5)
	if w < 1 || h < 1 {
		return fmt.Errorf("degenerate raster size %dx%d", w, h)
	}

	z := vector.NewRasterizer(w, h)
	for _, elem := range geom.Fill.Simplified().Elements() {
		switch e := elem.(type) {
		case squircle.MoveTo:
			z.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case squircle.LineTo:
			z.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case squircle.CubicTo:
			z.CubeTo(
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
		case squircle.Close:
			z.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	if !strings.HasSuffix(path, ".png") {
		path += ".png"
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
