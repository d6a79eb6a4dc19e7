package shot

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrUnsupportedType means the payload is not an image at all.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrDecode means the payload claims to be an image but could not be decoded.
	ErrDecode = errors.New("image decode failed")
)

// maxSVGSide bounds the rasterisation size of vector uploads.
const maxSVGSide = 8192

// DetectType returns the sniffed MIME type of data.
func DetectType(data []byte) string {
	return mimetype.Detect(data).String()
}

// IsImageType reports whether mime is in the image/* family.
func IsImageType(mime string) bool {
	return strings.HasPrefix(mime, "image/")
}

// Decode sniffs data and decodes it into a Source. Non-image payloads
// yield ErrUnsupportedType; image payloads that fail to decode yield an
// error wrapping ErrDecode.
func Decode(data []byte) (*Source, error) {
	mt := mimetype.Detect(data)
	if !IsImageType(mt.String()) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}
	if mt.Is("image/svg+xml") {
		img, err := rasterizeSVG(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return newSource(img, "svg"), nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty %s image", ErrDecode, format)
	}
	return newSource(img, format), nil
}

// rasterizeSVG renders an SVG document at its intrinsic viewBox size.
func rasterizeSVG(data []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	w := int(math.Ceil(icon.ViewBox.W))
	h := int(math.Ceil(icon.ViewBox.H))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svg has no usable viewBox (%gx%g)", icon.ViewBox.W, icon.ViewBox.H)
	}
	if w > maxSVGSide || h > maxSVGSide {
		return nil, fmt.Errorf("svg viewBox %dx%d exceeds %d", w, h, maxSVGSide)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return rgba, nil
}
