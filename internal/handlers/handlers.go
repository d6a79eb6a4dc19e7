package handlers

import (
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/craftkit/internal/config"
	"github.com/cristianadrielbraun/craftkit/internal/shot"
	"github.com/cristianadrielbraun/craftkit/web/components"
)

// Handler carries the dependencies shared by the HTTP handlers.
// It holds no per-request state.
type Handler struct {
	cfg        config.Config
	compositor shot.Compositor
	now        func() time.Time

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// New returns a Handler configured from cfg.
func New(cfg config.Config) *Handler {
	return &Handler{
		cfg:        cfg,
		compositor: shot.Compositor{MaxPixels: cfg.MaxCanvasPixels},
		now:        time.Now,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Page adapts a component constructor to a gin handler.
func Page(build func() templ.Component) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, build())
	}
}

// NotFound renders the 404 page for browsers and a JSON error for /api.
func NotFound(page templ.Component) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		render(c, http.StatusNotFound, page)
	}
}

func render(c *gin.Context, status int, comp templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := comp.Render(c.Request.Context(), c.Writer); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
	}
}

// SitemapXML serves a minimal sitemap for the site.
// Update the URLs if you add more pages.
func (h *Handler) SitemapXML(c *gin.Context) {
	c.Header("Content-Type", "application/xml; charset=utf-8")
	scheme := "https"
	host := c.Request.Host
	if xf := c.Request.Header.Get("X-Forwarded-Proto"); xf != "" {
		scheme = xf
	} else if c.Request.TLS == nil && (strings.HasPrefix(host, "localhost:") || strings.HasPrefix(host, "127.0.0.1:")) {
		scheme = "http"
	}
	base := scheme + "://" + host

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n")
	entry := func(path, freq, priority string) {
		b.WriteString("  <url>\n")
		b.WriteString("    <loc>" + base + path + "</loc>\n")
		b.WriteString("    <changefreq>" + freq + "</changefreq>\n")
		b.WriteString("    <priority>" + priority + "</priority>\n")
		b.WriteString("  </url>\n")
	}
	entry("/", "weekly", "1.0")
	for _, t := range components.Tools {
		entry(t.Path, "monthly", "0.8")
	}
	b.WriteString("</urlset>\n")
	c.String(http.StatusOK, b.String())
}
