package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/craftkit/internal/policy"
)

// PolicyHandler assembles a privacy policy from the posted options and
// returns it as an HTML fragment, plain text or a standalone download.
func (h *Handler) PolicyHandler(c *gin.Context) {
	var opts policy.Options
	if err := c.ShouldBind(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := policy.Build(opts, h.now())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, policy.ErrUnknownCountry) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	switch format := c.DefaultQuery("format", "html"); format {
	case "html":
		render(c, http.StatusOK, doc.Body())
	case "text":
		c.String(http.StatusOK, doc.Text())
	case "download":
		log.Printf("[policy] download for %q (%s)", doc.Name, opts.Country)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", policy.DownloadFilename))
		render(c, http.StatusOK, doc.Page())
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown format %q", format)})
	}
}

// PolicyPreview is the initial preview shown next to the empty form.
func (h *Handler) PolicyPreview() (policy.Options, policy.Document) {
	opts := policy.DefaultOptions()
	doc, err := policy.Build(opts, h.now())
	if err != nil {
		log.Printf("[policy] default preview failed: %v", err)
	}
	return opts, doc
}
