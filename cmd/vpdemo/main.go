// Command vpdemo prints the normalized-device transform of a viewport and
// optionally renders it to a PNG.
//
// Usage:
//
//	vpdemo -rect 10,10,80,80 -draw 100,100 -window 50,50
//	vpdemo -config viewport.yaml -output ndc.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/viewport"
)

func main() {
	var (
		rect    = flag.String("rect", "0,0,800,600", "viewport rect in pixels: x,y,width,height (lower-left origin)")
		drawSz  = flag.String("draw", "800,600", "frame buffer size in pixels: width,height")
		window  = flag.String("window", "800,600", "window size in points: width,height")
		cfgPath = flag.String("config", "", "YAML viewport description (overrides -rect, -draw, -window)")
		output  = flag.String("output", "", "write an NDC rendering to this PNG file")
		size    = flag.Int("size", 512, "output image size in pixels")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		viewport.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	v, err := resolveViewport(*cfgPath, *rect, *drawSz, *window)
	if err != nil {
		log.Fatalf("vpdemo: %v", err)
	}

	report(os.Stdout, v)

	if *output == "" {
		return
	}
	img, err := renderNDC(v, *size)
	if err != nil {
		log.Fatalf("vpdemo: render: %v", err)
	}
	if err := writePNG(*output, img); err != nil {
		log.Fatalf("vpdemo: save: %v", err)
	}
	log.Printf("NDC rendering saved to %s (%dx%d)\n", *output, *size, *size)
}

// resolveViewport builds the viewport from a config file when one is given,
// otherwise from the flag values.
func resolveViewport(cfgPath, rect, drawSz, window string) (viewport.Viewport, error) {
	if cfgPath != "" {
		cfg, err := loadConfig(cfgPath)
		if err != nil {
			return viewport.Viewport{}, err
		}
		return cfg.Viewport(), nil
	}

	var v viewport.Viewport
	var err error
	if v.Rect, err = parseRect(rect); err != nil {
		return v, err
	}
	if v.DrawSize, err = parseSize(drawSz); err != nil {
		return v, fmt.Errorf("-draw: %w", err)
	}
	if v.WindowSize, err = parseSize(window); err != nil {
		return v, fmt.Errorf("-window: %w", err)
	}
	return v, nil
}

// report prints the viewport, its transforms, and where the corners and
// center of the viewport land in normalized device coordinates.
func report(w io.Writer, v viewport.Viewport) {
	fmt.Fprintln(w, v)
	if err := v.Validate(); err != nil {
		fmt.Fprintf(w, "warning: %v\n", err)
	}

	rx, ry := v.PixelRatio()
	fmt.Fprintf(w, "pixel ratio: %g x %g\n", rx, ry)

	m := viewport.Transform[float64](v)
	fmt.Fprintln(w, "transform (float64):")
	printMatrix(w, m)
	fmt.Fprintln(w, "transform (float32):")
	printMatrix(w, viewport.Transform[float32](v))

	if !m.IsFinite() {
		fmt.Fprintln(w, "transform is not finite")
		return
	}

	// Extent of the viewport in window points.
	rw, rh := v.Size()
	pw, ph := float64(rw)/rx, float64(rh)/ry
	for _, c := range []struct {
		name string
		p    viewport.Point[float64]
	}{
		{"upper-left", viewport.Pt(0.0, 0.0)},
		{"center", viewport.Pt(pw/2, ph/2)},
		{"lower-right", viewport.Pt(pw, ph)},
	} {
		q := m.TransformPoint(c.p)
		fmt.Fprintf(w, "%-11s (%g, %g) -> (%g, %g)\n", c.name, c.p.X, c.p.Y, q.X, q.Y)
	}
}

func printMatrix[T float32 | float64](w io.Writer, m viewport.Matrix[T]) {
	for _, row := range m {
		fmt.Fprintf(w, "  [ %g  %g  %g ]\n", row[0], row[1], row[2])
	}
}
