package shot

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned by ParseHex for anything that is not a hex colour.
var ErrInvalidColor = errors.New("invalid hex color")

// Color is a straight (non-premultiplied) 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// NRGBA converts c to the standard library colour type used by the drawing backend.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex formats c as #rrggbb, or #rrggbbaa when not fully opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Lerp interpolates linearly between c and to; t is clamped to [0,1].
func (c Color) Lerp(to Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + t*(float64(b)-float64(a)) + 0.5)
	}
	return Color{R: mix(c.R, to.R), G: mix(c.G, to.G), B: mix(c.B, to.B), A: mix(c.A, to.A)}
}

// ParseHex parses #rgb, #rrggbb or #rrggbbaa (the leading # is optional).
func ParseHex(s string) (Color, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(v) == 3 {
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	}
	if len(v) == 6 {
		v += "ff"
	}
	if len(v) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

// MustParseHex is ParseHex for package-level constants.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Gradient is a named two-stop background.
type Gradient struct {
	Name string `json:"name"`
	From Color  `json:"-"`
	To   Color  `json:"-"`
}

// Palette lists the selectable backgrounds in display order.
var Palette = []Gradient{
	{Name: "Violet", From: MustParseHex("#667eea"), To: MustParseHex("#764ba2")},
	{Name: "Rose", From: MustParseHex("#f093fb"), To: MustParseHex("#f5576c")},
	{Name: "Ocean", From: MustParseHex("#4facfe"), To: MustParseHex("#00f2fe")},
	{Name: "Sunset", From: MustParseHex("#fa709a"), To: MustParseHex("#fee140")},
	{Name: "Forest", From: MustParseHex("#38ef7d"), To: MustParseHex("#11998e")},
	{Name: "Night", From: MustParseHex("#0f0c29"), To: MustParseHex("#302b63")},
	{Name: "Peach", From: MustParseHex("#ffecd2"), To: MustParseHex("#fcb69f")},
	{Name: "Sky", From: MustParseHex("#a1c4fd"), To: MustParseHex("#c2e9fb")},
	{Name: "Slate", From: MustParseHex("#232526"), To: MustParseHex("#414345")},
	{Name: "Snow", From: MustParseHex("#e0e0e0"), To: MustParseHex("#ffffff")},
	{Name: "Mint", From: MustParseHex("#00b09b"), To: MustParseHex("#96c93d")},
	{Name: "Berry", From: MustParseHex("#8e2de2"), To: MustParseHex("#4a00e0")},
}

// LookupGradient finds a palette entry by case-insensitive name.
func LookupGradient(name string) (Gradient, bool) {
	for _, g := range Palette {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}
	return Gradient{}, false
}
