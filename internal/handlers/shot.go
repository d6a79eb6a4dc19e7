package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/craftkit/internal/shot"
)

// Bounds of the on-screen preview delivery.
const (
	previewMaxWidth  = 1200
	previewMaxHeight = 900
)

type gradientJSON struct {
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

// ShotGradients lists the background palette.
func (h *Handler) ShotGradients(c *gin.Context) {
	out := make([]gradientJSON, 0, len(shot.Palette))
	for _, g := range shot.Palette {
		out = append(out, gradientJSON{Name: g.Name, From: g.From.Hex(), To: g.To.Hex()})
	}
	c.JSON(http.StatusOK, gin.H{"gradients": out, "default": shot.DefaultStyle().Gradient.Name})
}

// ShotHandler composites an uploaded screenshot onto the styled canvas and
// delivers the PNG as a download, a clipboard payload or a preview.
func (h *Handler) ShotHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes)

	delivery := strings.ToLower(c.DefaultPostForm("delivery", c.DefaultQuery("delivery", "download")))
	if delivery != "download" && delivery != "clipboard" && delivery != "preview" {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown delivery %q", delivery)})
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		if tooLarge(err) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("upload exceeds %d MB", h.cfg.MaxUploadBytes>>20)})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}

	var form shot.StyleForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// An HTML checkbox posts alongside a hidden "false" fallback.
	if vals := c.PostFormArray("frame"); len(vals) > 0 {
		frame := false
		for _, v := range vals {
			if v == "true" || v == "on" || v == "1" {
				frame = true
			}
		}
		form.Frame = &frame
	}
	style := form.Style()

	src, err := shot.Decode(data)
	if err != nil {
		switch {
		case errors.Is(err, shot.ErrUnsupportedType):
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		}
		return
	}

	out, err := h.compositor.Render(src, style)
	if err != nil {
		c.JSON(shotStatus(err), gin.H{"error": err.Error()})
		return
	}
	log.Printf("[shot] rendered %dx%d from %s %dx%d (gradient=%s padding=%d radius=%d shadow=%.2f frame=%t) delivery=%s",
		out.Bounds().Dx(), out.Bounds().Dy(), src.Format(), src.Width(), src.Height(),
		style.Gradient.Name, style.Padding, style.Radius, style.Shadow, style.Frame, delivery)

	switch delivery {
	case "preview":
		var buf bytes.Buffer
		if err := shot.EncodePNG(&buf, shot.Preview(out, previewMaxWidth, previewMaxHeight)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, "image/png", buf.Bytes())
	case "clipboard":
		if err := shot.Export(out, clipboardTarget(c), downloadTarget(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	default:
		if err := shot.Export(out, downloadTarget(c), nil); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

// downloadTarget writes the PNG as an attachment.
func downloadTarget(c *gin.Context) shot.Target {
	return shot.TargetFunc(func(name string, data []byte) error {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		c.Header("X-Delivery", "download")
		c.Data(http.StatusOK, "image/png", data)
		return nil
	})
}

// clipboardTarget writes the PNG inline for a client that asked for it as
// image/png; any other client cannot place it on a clipboard.
func clipboardTarget(c *gin.Context) shot.Target {
	return shot.TargetFunc(func(name string, data []byte) error {
		if !strings.Contains(c.GetHeader("Accept"), "image/png") {
			return shot.ErrClipboardUnsupported
		}
		c.Header("X-Delivery", "clipboard")
		c.Data(http.StatusOK, "image/png", data)
		return nil
	})
}

func shotStatus(err error) int {
	switch {
	case errors.Is(err, shot.ErrDegenerate):
		return http.StatusUnprocessableEntity
	case errors.Is(err, shot.ErrCanvasTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe) || strings.Contains(err.Error(), "request body too large")
}
