package shot

import "image"

// Source is a decoded screenshot. It is never modified after construction;
// loading a new file replaces the whole Source.
type Source struct {
	img    image.Image
	width  int
	height int
	format string
}

// NewSource wraps an already decoded image.
func NewSource(img image.Image) *Source {
	return newSource(img, "")
}

func newSource(img image.Image, format string) *Source {
	b := img.Bounds()
	return &Source{img: img, width: b.Dx(), height: b.Dy(), format: format}
}

// Image returns the decoded pixels.
func (s *Source) Image() image.Image { return s.img }

// Width is the natural pixel width.
func (s *Source) Width() int { return s.width }

// Height is the natural pixel height.
func (s *Source) Height() int { return s.height }

// Format is the decoder that produced the image ("png", "svg", ...), if known.
func (s *Source) Format() string { return s.format }
