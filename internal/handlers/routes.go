package handlers

import (
	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/craftkit/internal/shot"
	"github.com/cristianadrielbraun/craftkit/web/pages"
)

// Register mounts the API and page routes on r.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/qr", h.QRCodeHandler)
		api.GET("/shot/gradients", h.ShotGradients)
		api.POST("/shot", h.ShotHandler)
		api.POST("/invoice", h.InvoicePDF)
		api.POST("/invoice/totals", h.InvoiceTotals)
		api.POST("/policy", h.PolicyHandler)
		api.POST("/htmx/toast", h.GenericToast)
	}

	r.GET("/", Page(pages.HomePage))
	r.GET("/shot", Page(func() templ.Component { return pages.ShotPage(shot.DefaultStyle()) }))
	r.GET("/qr", Page(pages.QRPage))
	r.GET("/invoice", Page(func() templ.Component { return pages.InvoicePage(h.NewInvoice()) }))
	r.GET("/policy", Page(func() templ.Component {
		opts, doc := h.PolicyPreview()
		return pages.PolicyPage(opts, doc.Body())
	}))
	r.GET("/sitemap.xml", h.SitemapXML)
	r.NoRoute(NotFound(pages.NotFoundPage()))
}
