package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/craftkit/internal/config"
)

func shotRequest(t *testing.T, file []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if file != nil {
		fw, err := mw.CreateFormFile("image", "shot.png")
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/shot", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestShotGradients(t *testing.T) {
	w := do(newRouter(t), httptest.NewRequest(http.MethodGet, "/api/shot/gradients", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Gradients []gradientJSON `json:"gradients"`
		Default   string         `json:"default"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Gradients, 12)
	assert.Equal(t, "Violet", body.Default)
	assert.Equal(t, gradientJSON{Name: "Violet", From: "#667eea", To: "#764ba2"}, body.Gradients[0])
}

func TestShotDownload(t *testing.T) {
	r := newRouter(t)
	w := do(r, shotRequest(t, pngOf(t, 100, 80), map[string]string{
		"gradient": "Ocean",
		"padding":  "20",
		"radius":   "8",
		"shadow":   "0",
		"frame":    "false",
	}))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="shotcraft-screenshot.png"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "download", w.Header().Get("X-Delivery"))

	b := decodePNG(t, w.Body.Bytes()).Bounds()
	assert.Equal(t, 140, b.Dx())
	assert.Equal(t, 120, b.Dy())
}

func TestShotDefaultsKeepFrame(t *testing.T) {
	w := do(newRouter(t), shotRequest(t, pngOf(t, 100, 80), nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	b := decodePNG(t, w.Body.Bytes()).Bounds()
	assert.Equal(t, 100+2*64, b.Dx())
	assert.Equal(t, 80+2*64+32, b.Dy())
}

func TestShotCheckboxFrame(t *testing.T) {
	// A ticked checkbox posts "true" ahead of the hidden "false".
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "shot.png")
	require.NoError(t, err)
	_, err = fw.Write(pngOf(t, 10, 10))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("padding", "20"))
	require.NoError(t, mw.WriteField("frame", "true"))
	require.NoError(t, mw.WriteField("frame", "false"))
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/shot", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := do(newRouter(t), req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 10+40+32, decodePNG(t, w.Body.Bytes()).Bounds().Dy())
}

func TestShotFrameCheckboxValues(t *testing.T) {
	tests := []struct {
		value  string
		height int
	}{
		{"on", 10 + 40 + 32},
		{"1", 10 + 40 + 32},
		{"true", 10 + 40 + 32},
		{"false", 10 + 40},
		{"off", 10 + 40},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			w := do(newRouter(t), shotRequest(t, pngOf(t, 10, 10), map[string]string{"padding": "20", "frame": tt.value}))
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.height, decodePNG(t, w.Body.Bytes()).Bounds().Dy())
		})
	}
}

func TestShotClipboard(t *testing.T) {
	r := newRouter(t)

	req := shotRequest(t, pngOf(t, 20, 20), map[string]string{"delivery": "clipboard"})
	req.Header.Set("Accept", "image/png")
	w := do(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "clipboard", w.Header().Get("X-Delivery"))
	assert.Empty(t, w.Header().Get("Content-Disposition"))

	// Clients that cannot take an image fall back to a download of the same bytes.
	req = shotRequest(t, pngOf(t, 20, 20), map[string]string{"delivery": "clipboard"})
	req.Header.Set("Accept", "application/json")
	fallback := do(r, req)
	require.Equal(t, http.StatusOK, fallback.Code)
	assert.Equal(t, "download", fallback.Header().Get("X-Delivery"))
	assert.Contains(t, fallback.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, w.Body.Bytes(), fallback.Body.Bytes())
}

func TestShotPreview(t *testing.T) {
	w := do(newRouter(t), shotRequest(t, pngOf(t, 1600, 200), map[string]string{"delivery": "preview"}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Empty(t, w.Header().Get("Content-Disposition"))

	b := decodePNG(t, w.Body.Bytes()).Bounds()
	assert.Equal(t, previewMaxWidth, b.Dx())
	assert.LessOrEqual(t, b.Dy(), previewMaxHeight)
}

func TestShotErrors(t *testing.T) {
	tests := []struct {
		name   string
		cfg    func(*config.Config)
		file   []byte
		fields map[string]string
		status int
	}{
		{"missing file", nil, nil, nil, http.StatusBadRequest},
		{"unknown delivery", nil, pngOf(t, 4, 4), map[string]string{"delivery": "fax"}, http.StatusBadRequest},
		{"bad number", nil, pngOf(t, 4, 4), map[string]string{"padding": "wide"}, http.StatusBadRequest},
		{"not an image", nil, []byte("just some text, nothing to see"), nil, http.StatusUnsupportedMediaType},
		{"corrupt image", nil, append([]byte("\x89PNG\r\n\x1a\n"), "garbage"...), nil, http.StatusUnprocessableEntity},
		{"canvas too large", func(c *config.Config) { c.MaxCanvasPixels = 1000 }, pngOf(t, 4, 4), nil, http.StatusRequestEntityTooLarge},
		{"upload too large", func(c *config.Config) { c.MaxUploadBytes = 512 }, append(pngOf(t, 4, 4), make([]byte, 4096)...), nil, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mutate []func(*config.Config)
			if tt.cfg != nil {
				mutate = append(mutate, tt.cfg)
			}
			w := do(newRouter(t, mutate...), shotRequest(t, tt.file, tt.fields))
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.NotEmpty(t, errorOf(t, w))
		})
	}
}
