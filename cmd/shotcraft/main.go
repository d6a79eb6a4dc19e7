package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/cristianadrielbraun/craftkit/internal/shot"
)

func main() {
	input := flag.String("in", "", "screenshot to frame (PNG, JPEG, GIF, WebP, BMP, TIFF or SVG)")
	output := flag.String("out", shot.DefaultFilename, "PNG output path")
	gradient := flag.String("gradient", shot.DefaultStyle().Gradient.Name, "background gradient name")
	padding := flag.Int("padding", shot.DefaultStyle().Padding, "padding around the card in pixels (20-150)")
	radius := flag.Int("radius", shot.DefaultStyle().Radius, "card corner radius in pixels (0-32)")
	shadow := flag.Int("shadow", int(shot.DefaultStyle().Shadow*100), "shadow intensity in percent (0-100)")
	frame := flag.Bool("frame", shot.DefaultStyle().Frame, "draw the browser title bar")
	maxPixels := flag.Int("max-pixels", shot.DefaultMaxPixels, "largest canvas area to allocate")
	list := flag.Bool("list", false, "list the gradients and exit")
	flag.Parse()

	if *list {
		for _, g := range shot.Palette {
			fmt.Printf("%-8s %s → %s\n", g.Name, g.From.Hex(), g.To.Hex())
		}
		return
	}
	if *input == "" {
		log.Fatal("input screenshot is required (-in)")
	}

	// Only flags given on the command line override the defaults.
	form := shot.StyleForm{Gradient: *gradient}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "padding":
			form.Padding = padding
		case "radius":
			form.Radius = radius
		case "shadow":
			form.Shadow = shadow
		case "frame":
			form.Frame = frame
		}
	})

	size, err := run(*input, *output, form, *maxPixels)
	if err != nil {
		log.Fatalf("shotcraft: %v", err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", *output, size.X, size.Y)
}

// run decodes inputPath, renders it with the style described by form and
// writes the PNG to outputPath. It returns the canvas size.
func run(inputPath, outputPath string, form shot.StyleForm, maxPixels int) (image.Point, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return image.Point{}, fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	var rendered *image.RGBA
	s := shot.NewSession(
		shot.WithCompositor(shot.Compositor{MaxPixels: maxPixels}),
		shot.WithStyle(form.Style()),
		shot.OnRender(func(img *image.RGBA) { rendered = img }),
	)
	ok, err := s.Load(data)
	if err != nil {
		return image.Point{}, err
	}
	if !ok {
		return image.Point{}, fmt.Errorf("%s: %w", inputPath, shot.ErrUnsupportedType)
	}
	if rendered == nil {
		return image.Point{}, errors.New("nothing was rendered")
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return image.Point{}, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return image.Point{}, fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	if err := shot.EncodePNG(f, rendered); err != nil {
		f.Close()
		return image.Point{}, err
	}
	if err := f.Close(); err != nil {
		return image.Point{}, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return rendered.Bounds().Size(), nil
}
