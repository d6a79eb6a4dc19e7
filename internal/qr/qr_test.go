package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayload(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		want string
	}{
		{"url default", Request{Kind: KindURL}, DefaultURL},
		{"url without scheme", Request{Kind: KindURL, URL: "craftkit.dev/shot"}, "https://craftkit.dev/shot"},
		{"empty kind is url", Request{URL: "http://example.org"}, "http://example.org"},
		{"text default", Request{Kind: KindText}, DefaultText},
		{"text", Request{Kind: KindText, Text: "hi there"}, "hi there"},
		{"wifi default", Request{Kind: KindWiFi}, "WIFI:T:WPA;S:Network;P:;;"},
		{"wifi escaped", Request{Kind: KindWiFi, WiFi: WiFi{SSID: "Cafe;Bar", Password: "a:b", Security: "WEP"}}, `WIFI:T:WEP;S:Cafe\;Bar;P:a\:b;;`},
		{"wifi open", Request{Kind: KindWiFi, WiFi: WiFi{SSID: "Open", Security: "nopass"}}, "WIFI:T:nopass;S:Open;P:;;"},
		{
			"vcard",
			Request{Kind: KindVCard, VCard: VCard{FirstName: "Ada", LastName: "Lovelace", Phone: "+44", Email: "ada@example.com", Company: "AE"}},
			"BEGIN:VCARD\nVERSION:3.0\nN:Lovelace;Ada\nFN:Ada Lovelace\nTEL:+44\nEMAIL:ada@example.com\nORG:AE\nEND:VCARD",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.req.Payload()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPayloadErrors(t *testing.T) {
	for _, req := range []Request{
		{Kind: "fax"},
		{Kind: KindURL, URL: "ftp://example.com"},
		{Kind: KindURL, URL: "https://"},
		{Kind: KindWiFi, WiFi: WiFi{Security: "WPA3-Enterprise-Ultra"}},
		{Kind: KindURL, URL: "example.com/" + strings.Repeat("a", 5000)},
	} {
		_, err := req.Payload()
		assert.ErrorIs(t, err, ErrInvalidInput, fmt.Sprintf("%+v", req.Kind))
	}
}

func TestOptionsNormalized(t *testing.T) {
	o := Options{Size: 300, Margin: -1, Shape: "blob"}.normalized()
	assert.Equal(t, 256, o.Size)
	assert.Equal(t, DefaultMargin, o.Margin)
	assert.Equal(t, ShapeRectangle, o.Shape)

	o = Options{Size: 1024, Shape: ShapeCircle}.normalized()
	assert.Equal(t, 1024, o.Size)
	assert.Equal(t, 0, o.Margin)
	assert.Equal(t, ShapeCircle, o.Shape)
}

func TestMatrix(t *testing.T) {
	grid, err := Matrix("https://example.com")
	require.NoError(t, err)
	require.NotEmpty(t, grid)
	for _, row := range grid {
		assert.Len(t, row, len(grid))
	}
	// Finder pattern corners are dark.
	n := len(grid)
	assert.True(t, grid[0][0])
	assert.True(t, grid[0][n-1])
	assert.True(t, grid[n-1][0])

	_, err = Matrix("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPNGExactSize(t *testing.T) {
	for _, size := range Sizes {
		opts := DefaultOptions()
		opts.Size = size
		data, err := PNG("Hello World", opts)
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, size, cfg.Width)
		assert.Equal(t, size, cfg.Height)
	}
}

func TestPNGColors(t *testing.T) {
	opts := DefaultOptions()
	opts.Foreground = color.RGBA{200, 0, 0, 255}
	data, err := PNG("Hello World", opts)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	// The quiet zone uses the background colour.
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
}

func TestJPEG(t *testing.T) {
	opts := DefaultOptions()
	opts.Background = color.RGBA{}
	data, err := JPEG("Hello World", opts)
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 256, 256), img.Bounds())
}

func TestSVG(t *testing.T) {
	grid, err := Matrix("Hello World")
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Shape = ShapeCircle
	data, err := SVG("Hello World", opts)
	require.NoError(t, err)
	svg := string(data)
	cells := len(grid) + 2*DefaultMargin
	assert.Contains(t, svg, fmt.Sprintf(`viewBox="0 0 %d %d"`, cells, cells))
	assert.Contains(t, svg, `width="256" height="256"`)
	assert.Contains(t, svg, "<circle")
	assert.NotContains(t, svg, `width="1" height="1"`)
	assert.True(t, strings.HasSuffix(svg, "</svg>"))

	opts = DefaultOptions()
	opts.Background = color.RGBA{}
	data, err = SVG("Hello World", opts)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `fill="rgb(255,255,255)"`)
}
