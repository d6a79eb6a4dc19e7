package qr

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nfnt/resize"
	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

// Shape is the module style.
type Shape string

const (
	ShapeRectangle Shape = "rectangle"
	ShapeCircle    Shape = "circle"
)

// Sizes are the selectable output edge lengths in pixels.
var Sizes = []int{128, 256, 512, 1024}

// DefaultMargin is the quiet zone in modules.
const DefaultMargin = 2

// Options controls rendering.
type Options struct {
	Size       int
	Margin     int
	Foreground color.RGBA
	// Background with A == 0 produces a transparent PNG.
	Background color.RGBA
	Shape      Shape
}

// DefaultOptions is black on white, 256px, square modules.
func DefaultOptions() Options {
	return Options{
		Size:       256,
		Margin:     DefaultMargin,
		Foreground: color.RGBA{0, 0, 0, 255},
		Background: color.RGBA{255, 255, 255, 255},
		Shape:      ShapeRectangle,
	}
}

// normalized snaps the size to a supported value and fills defaults.
func (o Options) normalized() Options {
	supported := false
	for _, s := range Sizes {
		if o.Size == s {
			supported = true
			break
		}
	}
	if !supported {
		o.Size = 256
	}
	if o.Margin < 0 {
		o.Margin = DefaultMargin
	}
	if o.Shape != ShapeCircle {
		o.Shape = ShapeRectangle
	}
	return o
}

// Matrix encodes content and returns its module grid, true meaning dark.
//
// The encoder only exposes rendered images, so the grid is read back from a
// one-pixel-per-module black and white render.
func Matrix(content string) ([][]bool, error) {
	qrc, err := encode(content)
	if err != nil {
		return nil, err
	}
	img, err := save(qrc,
		standard.WithQRWidth(1),
		standard.WithBorderWidth(0),
		standard.WithBgColor(color.RGBA{255, 255, 255, 255}),
		standard.WithFgColor(color.RGBA{0, 0, 0, 255}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to extract QR matrix: %w", err)
	}

	b := img.Bounds()
	grid := make([][]bool, b.Dy())
	for y := range grid {
		grid[y] = make([]bool, b.Dx())
		for x := range grid[y] {
			r, _, _, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			grid[y][x] = r < 0x8000
		}
	}
	return grid, nil
}

// Image renders content as an exactly Size×Size image.
func Image(content string, opts Options) (image.Image, error) {
	opts = opts.normalized()
	qrc, err := encode(content)
	if err != nil {
		return nil, err
	}

	cells := qrc.Dimension() + 2*opts.Margin
	if cells <= 0 {
		return nil, fmt.Errorf("invalid QR matrix dimension")
	}
	module := (opts.Size + cells - 1) / cells
	if module > 255 {
		module = 255
	}

	writerOptions := []standard.ImageOption{
		standard.WithQRWidth(uint8(module)),
		standard.WithBorderWidth(opts.Margin * module),
		standard.WithFgColor(opts.Foreground),
	}
	if opts.Background.A == 0 {
		writerOptions = append(writerOptions, standard.WithBgTransparent())
	} else {
		writerOptions = append(writerOptions, standard.WithBgColor(opts.Background))
	}
	if opts.Shape == ShapeCircle {
		writerOptions = append(writerOptions, standard.WithCircleShape())
	}

	img, err := save(qrc, writerOptions...)
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Dx() == opts.Size && b.Dy() == opts.Size {
		return img, nil
	}
	// Nearest neighbour keeps module edges sharp.
	return resize.Resize(uint(opts.Size), uint(opts.Size), img, resize.NearestNeighbor), nil
}

// PNG renders content as PNG bytes.
func PNG(content string, opts Options) ([]byte, error) {
	img, err := Image(content, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// JPEG renders content flattened onto an opaque background.
func JPEG(content string, opts Options) ([]byte, error) {
	img, err := Image(content, opts)
	if err != nil {
		return nil, err
	}
	bg := color.RGBA{opts.Background.R, opts.Background.G, opts.Background.B, 255}
	if opts.Background.A == 0 {
		bg = color.RGBA{255, 255, 255, 255}
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, &image.Uniform{C: bg}, image.Point{}, draw.Src)
	draw.Draw(out, b, img, b.Min, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: 92}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// SVG renders content as a vector image whose viewBox is measured in modules.
func SVG(content string, opts Options) ([]byte, error) {
	opts = opts.normalized()
	grid, err := Matrix(content)
	if err != nil {
		return nil, err
	}
	cells := len(grid) + 2*opts.Margin
	fill := fmt.Sprintf("rgb(%d,%d,%d)", opts.Foreground.R, opts.Foreground.G, opts.Foreground.B)

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" shape-rendering="crispEdges">`,
		cells, cells, opts.Size, opts.Size)
	if opts.Background.A > 0 {
		fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="rgb(%d,%d,%d)"/>`,
			cells, cells, opts.Background.R, opts.Background.G, opts.Background.B)
	}
	for y, row := range grid {
		for x, dark := range row {
			if !dark {
				continue
			}
			mx, my := x+opts.Margin, y+opts.Margin
			if opts.Shape == ShapeCircle {
				fmt.Fprintf(&sb, `<circle cx="%g" cy="%g" r="0.5" fill="%s"/>`, float64(mx)+0.5, float64(my)+0.5, fill)
				continue
			}
			fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="1" height="1" fill="%s"/>`, mx, my, fill)
		}
	}
	sb.WriteString(`</svg>`)
	return []byte(sb.String()), nil
}

func encode(content string) (*qrcode.QRCode, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: empty content", ErrInvalidInput)
	}
	qrc, err := qrcode.NewWith(content, qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium))
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}
	return qrc, nil
}

// save renders qrc through a temporary file and decodes the result.
func save(qrc *qrcode.QRCode, opts ...standard.ImageOption) (image.Image, error) {
	tmpFile := filepath.Join(os.TempDir(), generateUniqueFilename("qr", ".img"))
	defer os.Remove(tmpFile)

	// PNG keeps the module colours exact; the writer defaults to JPEG.
	opts = append(opts, standard.WithBuiltinImageEncoder(standard.PNG_FORMAT))
	writer, err := standard.New(tmpFile, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR writer: %w", err)
	}
	if err := qrc.Save(writer); err != nil {
		writer.Close()
		return nil, fmt.Errorf("failed to generate QR code image: %w", err)
	}
	writer.Close()

	f, err := os.Open(tmpFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open QR image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode QR image: %w", err)
	}
	return img, nil
}

func generateUniqueFilename(prefix, extension string) string {
	randomBytes := make([]byte, 4)
	rand.Read(randomBytes)
	return fmt.Sprintf("%s_%d_%x%s", prefix, time.Now().UnixNano(), randomBytes, extension)
}
