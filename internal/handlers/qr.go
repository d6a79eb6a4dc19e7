package handlers

import (
	"errors"
	"fmt"
	"image/color"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/craftkit/internal/qr"
	"github.com/cristianadrielbraun/craftkit/internal/shot"
)

// QRCodeHandler generates QR codes for URLs, text, WiFi credentials and
// contact cards.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	var req qr.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payload, err := req.Payload()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Parse format parameter (default to PNG)
	format := strings.ToLower(c.DefaultQuery("format", "png"))
	if format == "jpeg" {
		format = "jpg"
	}
	if format != "png" && format != "svg" && format != "jpg" {
		format = "png"
	}

	opts := qr.DefaultOptions()
	if size, err := strconv.Atoi(c.Query("size")); err == nil {
		opts.Size = size
	}
	opts.Foreground = parseColorParam(c.Query("fg"), opts.Foreground)
	opts.Background = parseColorParam(c.Query("bg"), opts.Background)
	if c.Query("transparent") == "true" {
		opts.Background = color.RGBA{}
	}
	opts.Shape = qr.Shape(c.DefaultQuery("shape", string(qr.ShapeRectangle)))

	fmt.Printf("[QR] request start: kind=%s format=%s size=%d shape=%s\n", req.Kind, format, opts.Size, opts.Shape)

	var (
		data        []byte
		contentType string
	)
	switch format {
	case "svg":
		data, err = qr.SVG(payload, opts)
		contentType = "image/svg+xml"
	case "jpg":
		data, err = qr.JPEG(payload, opts)
		contentType = "image/jpeg"
	default:
		data, err = qr.PNG(payload, opts)
		contentType = "image/png"
	}
	if err != nil {
		fmt.Printf("[QR] generation failed: %v\n", err)
		status := http.StatusInternalServerError
		if errors.Is(err, qr.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if c.Query("download") == "true" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "qrcode."+format))
	}
	c.Data(http.StatusOK, contentType, data)
}

// parseColorParam parses a hex colour query value. "transparent" yields a
// fully transparent colour; anything unparsable keeps defaultColor.
func parseColorParam(param string, defaultColor color.RGBA) color.RGBA {
	if param == "" {
		return defaultColor
	}
	if strings.ToLower(param) == "transparent" {
		return color.RGBA{0, 0, 0, 0}
	}
	if !strings.HasPrefix(param, "#") {
		param = "#" + param
	}
	c, err := shot.ParseHex(param)
	if err != nil {
		return defaultColor
	}
	n := c.NRGBA()
	if n.A != 255 {
		// color.RGBA is alpha-premultiplied.
		r, g, b, a := n.RGBA()
		return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	}
	return color.RGBA{n.R, n.G, n.B, 255}
}
