package shot

import (
	"errors"
	"fmt"
	"image"
)

// FrameHeight is the height of the title-bar strip when the frame is enabled.
const FrameHeight = 32

// Title-bar control cluster.
const (
	DotRadius  = 6
	dotSpacing = 20
)

var (
	dotRed    = MustParseHex("#ff5f57")
	dotYellow = MustParseHex("#febc2e")
	dotGreen  = MustParseHex("#28c840")
	stripGray = MustParseHex("#e4e4e4")
	cardWhite = MustParseHex("#ffffff")
)

var (
	// ErrDegenerate reports a source or style that cannot produce a canvas.
	ErrDegenerate = errors.New("degenerate geometry")
	// ErrCanvasTooLarge reports a canvas that exceeds the pixel budget.
	ErrCanvasTooLarge = errors.New("canvas too large")
)

// Dot is one filled circle of the title-bar cluster.
type Dot struct {
	X, Y   float64
	Radius float64
	Color  Color
}

// Layout is the resolved geometry of one render.
type Layout struct {
	Canvas image.Rectangle
	// Card is the white rounded rectangle, strip included.
	Card image.Rectangle
	// Strip is the title-bar area; empty when the frame is disabled.
	Strip image.Rectangle
	// Image is where the source pixels land.
	Image  image.Rectangle
	Radius float64
	Dots   []Dot
}

// FrameHeightFor returns the strip height for the given toggle.
func FrameHeightFor(frame bool) int {
	if frame {
		return FrameHeight
	}
	return 0
}

// ClampRadius caps r at half the shorter side of a w×h rectangle so that
// opposite corner arcs never overlap.
func ClampRadius(r float64, w, h int) float64 {
	if r <= 0 {
		return 0
	}
	limit := float64(w) / 2
	if hh := float64(h) / 2; hh < limit {
		limit = hh
	}
	if r > limit {
		return limit
	}
	return r
}

// Plan computes the layout for a width×height source.
func Plan(width, height int, style Style) (Layout, error) {
	if width <= 0 || height <= 0 {
		return Layout{}, fmt.Errorf("%w: source is %dx%d", ErrDegenerate, width, height)
	}
	if style.Padding < 0 || style.Radius < 0 {
		return Layout{}, fmt.Errorf("%w: padding %d radius %d", ErrDegenerate, style.Padding, style.Radius)
	}

	pad := style.Padding
	frame := FrameHeightFor(style.Frame)

	l := Layout{
		Canvas: image.Rect(0, 0, width+2*pad, height+2*pad+frame),
		Card:   image.Rect(pad, pad, pad+width, pad+height+frame),
		Image:  image.Rect(pad, pad+frame, pad+width, pad+frame+height),
	}
	l.Radius = ClampRadius(float64(style.Radius), l.Card.Dx(), l.Card.Dy())

	if style.Frame {
		l.Strip = image.Rect(pad, pad, pad+width, pad+frame)
		cy := float64(pad) + float64(frame)/2
		for i, c := range []Color{dotRed, dotYellow, dotGreen} {
			l.Dots = append(l.Dots, Dot{
				X:      float64(pad + dotSpacing*(i+1)),
				Y:      cy,
				Radius: DotRadius,
				Color:  c,
			})
		}
	}
	return l, nil
}
