package shot

// Style is the full set of visual parameters for one render.
// It is a plain value: every field is re-derivable from form input.
type Style struct {
	Gradient Gradient
	Padding  int
	Radius   int
	// Shadow is the drop shadow intensity in [0,1].
	Shadow float64
	Frame  bool
}

// Bounds applied to user input at the form boundary.
const (
	MinPadding = 20
	MaxPadding = 150
	MinRadius  = 0
	MaxRadius  = 32
	MaxShadow  = 100
)

// DefaultStyle returns the style a new editing session starts with.
func DefaultStyle() Style {
	return Style{
		Gradient: Palette[0],
		Padding:  64,
		Radius:   12,
		Shadow:   0.5,
		Frame:    true,
	}
}

// StyleForm is the raw form/query representation of a Style.
type StyleForm struct {
	Gradient string `form:"gradient" json:"gradient"`
	Padding  *int   `form:"padding" json:"padding"`
	Radius   *int   `form:"radius" json:"radius"`
	Shadow   *int   `form:"shadow" json:"shadow"`
	// Frame is left to the caller for forms: checkboxes post "on" or
	// repeat the field with a hidden fallback.
	Frame *bool `form:"-" json:"frame"`
}

// Style validates the form into a Style. Missing fields keep their defaults,
// numeric fields are clamped to the slider ranges and an unknown gradient
// name falls back to the default gradient.
func (f StyleForm) Style() Style {
	s := DefaultStyle()
	if g, ok := LookupGradient(f.Gradient); ok {
		s.Gradient = g
	}
	if f.Padding != nil {
		s.Padding = clampInt(*f.Padding, MinPadding, MaxPadding)
	}
	if f.Radius != nil {
		s.Radius = clampInt(*f.Radius, MinRadius, MaxRadius)
	}
	if f.Shadow != nil {
		s.Shadow = float64(clampInt(*f.Shadow, 0, MaxShadow)) / 100
	}
	if f.Frame != nil {
		s.Frame = *f.Frame
	}
	return s
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
