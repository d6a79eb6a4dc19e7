package shot

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// DefaultMaxPixels bounds the canvas area a single render may allocate.
const DefaultMaxPixels = 64 << 20

// Compositor renders framed screenshots.
type Compositor struct {
	// MaxPixels caps width*height of the output canvas. Zero means DefaultMaxPixels.
	MaxPixels int
}

// Render composes src with style using the default pixel budget.
func Render(src *Source, style Style) (*image.RGBA, error) {
	return Compositor{}.Render(src, style)
}

// Render draws the gradient background, the shadowed white card, the
// optional title-bar strip and finally the source pixels into a freshly
// allocated buffer.
//
// A nil src is not an error: there is nothing to draw and Render returns
// (nil, nil). Geometry that cannot be rendered fails before any buffer is
// allocated.
func (c Compositor) Render(src *Source, style Style) (*image.RGBA, error) {
	if src == nil {
		return nil, nil
	}
	l, err := Plan(src.Width(), src.Height(), style)
	if err != nil {
		return nil, err
	}

	budget := c.MaxPixels
	if budget <= 0 {
		budget = DefaultMaxPixels
	}
	w, h := l.Canvas.Dx(), l.Canvas.Dy()
	if w > budget/h {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrCanvasTooLarge, w, h, budget)
	}

	out := image.NewRGBA(l.Canvas)
	dc := gg.NewContextForRGBA(out)

	fillBackground(dc, style.Gradient, w, h)

	card := roundedRect(
		float64(l.Card.Min.X), float64(l.Card.Min.Y),
		float64(l.Card.Dx()), float64(l.Card.Dy()),
		l.Radius,
	)
	if m, ok := newShadowMode(style.Shadow); ok {
		m.fill(dc, card, l.Card, cardWhite.NRGBA())
	} else {
		card(dc)
		dc.SetColor(cardWhite.NRGBA())
		dc.Fill()
	}

	if !l.Strip.Empty() {
		withClip(dc, card, func() {
			drawStrip(dc, l)
		})
	}

	dst := l.Image
	withClip(dc, func(dc *gg.Context) {
		dc.DrawRectangle(float64(dst.Min.X), float64(dst.Min.Y), float64(dst.Dx()), float64(dst.Dy()))
	}, func() {
		dc.DrawImage(src.Image(), dst.Min.X, dst.Min.Y)
	})

	return out, nil
}

func fillBackground(dc *gg.Context, g Gradient, w, h int) {
	grad := gg.NewLinearGradient(0, 0, float64(w), float64(h))
	grad.AddColorStop(0, g.From.NRGBA())
	grad.AddColorStop(1, g.To.NRGBA())
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
}

func drawStrip(dc *gg.Context, l Layout) {
	s := l.Strip
	dc.SetColor(stripGray.NRGBA())
	dc.DrawRectangle(float64(s.Min.X), float64(s.Min.Y), float64(s.Dx()), float64(s.Dy()))
	dc.Fill()

	for _, d := range l.Dots {
		dc.DrawCircle(d.X, d.Y, d.Radius)
		dc.SetColor(d.Color.NRGBA())
		dc.Fill()
	}
}
