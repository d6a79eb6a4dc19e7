package handlers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/craftkit/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T, mutate ...func(*config.Config)) *gin.Engine {
	t.Helper()
	cfg := config.Default()
	for _, m := range mutate {
		m(&cfg)
	}
	h := New(cfg)
	h.now = func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }
	h.rng = rand.New(rand.NewSource(7))
	r := gin.New()
	h.Register(r)
	return r
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body["error"]
}

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 20, G: 120, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestSitemap(t *testing.T) {
	r := newRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	req.Host = "localhost:8080"
	w := do(r, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	for _, path := range []string{"/", "/shot", "/invoice", "/policy", "/qr"} {
		assert.Contains(t, w.Body.String(), "<loc>http://localhost:8080"+path+"</loc>")
	}

	req = httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	req.Host = "craftkit.tools"
	assert.Contains(t, do(r, req).Body.String(), "<loc>https://craftkit.tools/shot</loc>")
}

func TestPages(t *testing.T) {
	r := newRouter(t)
	tests := []struct {
		path, want string
	}{
		{"/", "Pick your tool"},
		{"/shot", `action="/api/shot"`},
		{"/qr", `action="/api/qr"`},
		{"/invoice", "INV-"},
		{"/policy", `<div id="policy-preview">`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(r, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), tt.want)
			assert.Contains(t, w.Body.String(), "</html>")
		})
	}
}

func TestNotFound(t *testing.T) {
	r := newRouter(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "404")

	w = do(r, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not found", errorOf(t, w))
}

func TestGenericToast(t *testing.T) {
	r := newRouter(t)
	form := url.Values{"title": {"Copied <3"}, "variant": {"error"}, "dismissible": {"on"}}
	req := httptest.NewRequest(http.MethodPost, "/api/htmx/toast", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := do(r, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Copied &lt;3")
	assert.Contains(t, w.Body.String(), `data-variant="error"`)
	assert.Contains(t, w.Body.String(), `aria-label="Dismiss"`)
}

func TestParseColorParam(t *testing.T) {
	def := color.RGBA{1, 2, 3, 255}
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"", def},
		{"transparent", color.RGBA{}},
		{"ff0000", color.RGBA{255, 0, 0, 255}},
		{"#00ff00", color.RGBA{0, 255, 0, 255}},
		{"#fff", color.RGBA{255, 255, 255, 255}},
		{"#ffffff00", color.RGBA{}},
		{"zzzzzz", def},
		{"#12345", def},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseColorParam(tt.in, def), tt.in)
	}
}
