package shot

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// shadowMode is a drop shadow that applies to exactly one filled shape.
// The shadow is rasterised on its own layer, so the main context never
// carries shadow state that later draws could inherit.
type shadowMode struct {
	blur    float64
	offsetY float64
	alpha   float64
}

func newShadowMode(intensity float64) (shadowMode, bool) {
	if intensity <= 0 {
		return shadowMode{}, false
	}
	if intensity > 1 {
		intensity = 1
	}
	return shadowMode{
		blur:    40 * intensity,
		offsetY: 20 * intensity,
		alpha:   0.5 * intensity,
	}, true
}

// fill draws the shadow of path onto dc and then fills path with c.
// bounds encloses the unshifted path; the shadow layer only covers bounds
// grown by the blur reach and offset, cropped to the canvas.
func (m shadowMode) fill(dc *gg.Context, path func(*gg.Context), bounds image.Rectangle, c color.Color) {
	sigma := m.blur / 2
	reach := int(math.Ceil(3 * sigma))
	area := image.Rect(
		bounds.Min.X-reach, bounds.Min.Y-reach,
		bounds.Max.X+reach, bounds.Max.Y+reach+int(math.Ceil(m.offsetY)),
	).Intersect(image.Rect(0, 0, dc.Width(), dc.Height()))

	if !area.Empty() {
		layer := gg.NewContext(area.Dx(), area.Dy())
		layer.Translate(-float64(area.Min.X), m.offsetY-float64(area.Min.Y))
		path(layer)
		layer.SetColor(color.NRGBA{A: uint8(math.Round(255 * m.alpha))})
		layer.Fill()

		// A canvas shadow blur of b corresponds to a gaussian with sigma b/2.
		dc.DrawImage(imaging.Blur(layer.Image(), sigma), area.Min.X, area.Min.Y)
	}

	path(dc)
	dc.SetColor(c)
	dc.Fill()
}

// withClip installs path as the clip region for the duration of draw.
// gg's Pop keeps the current mask, so the clip is released explicitly
// before the saved state comes back. Clips never nest.
func withClip(dc *gg.Context, path func(*gg.Context), draw func()) {
	dc.Push()
	defer func() {
		dc.ResetClip()
		dc.Pop()
	}()
	path(dc)
	dc.Clip()
	draw()
}

// roundedRect returns a path builder for an axis-aligned rounded rectangle.
// A zero radius yields plain straight edges.
func roundedRect(x, y, w, h, r float64) func(*gg.Context) {
	return func(dc *gg.Context) {
		dc.NewSubPath()
		if r <= 0 {
			dc.DrawRectangle(x, y, w, h)
			return
		}
		dc.DrawRoundedRectangle(x, y, w, h, r)
	}
}
