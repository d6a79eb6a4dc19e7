package shot

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"

	"github.com/disintegration/imaging"
)

// DefaultFilename is the suggested name for exported screenshots.
const DefaultFilename = "shotcraft-screenshot.png"

// ErrClipboardUnsupported is returned by targets that cannot take clipboard data.
var ErrClipboardUnsupported = errors.New("clipboard unsupported")

// EncodePNG serialises img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if img == nil {
		return errors.New("nothing to encode")
	}
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// Preview scales img down to fit within maxW×maxH for on-screen display.
// Images that already fit are returned unchanged.
func Preview(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	if maxW <= 0 || maxH <= 0 || (b.Dx() <= maxW && b.Dy() <= maxH) {
		return img
	}
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}

// Target receives an encoded screenshot.
type Target interface {
	Deliver(name string, data []byte) error
}

// TargetFunc adapts a function to Target.
type TargetFunc func(name string, data []byte) error

// Deliver calls f.
func (f TargetFunc) Deliver(name string, data []byte) error { return f(name, data) }

// Export encodes img once and hands it to primary. If primary fails the
// same bytes go to fallback; only a fallback failure is reported.
// fallback may be nil, in which case the primary error is returned.
func Export(img image.Image, primary, fallback Target) error {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return err
	}
	data := buf.Bytes()

	err := primary.Deliver(DefaultFilename, data)
	if err == nil {
		return nil
	}
	if fallback == nil {
		return err
	}
	log.Printf("[shot] export falling back to download: %v", err)
	return fallback.Deliver(DefaultFilename, data)
}
