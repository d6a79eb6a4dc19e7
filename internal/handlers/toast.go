package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/craftkit/web/components"
)

// GenericToast returns a Toast component rendered as HTML for HTMX swaps.
func (h *Handler) GenericToast(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	variant := components.ParseVariant(c.PostForm("variant"))
	dismissible := c.PostForm("dismissible") == "on"

	render(c, http.StatusOK, components.Toast(components.ToastProps{
		Title:       title,
		Description: description,
		Variant:     variant,
		Position:    components.PositionBottomRight,
		Duration:    2000,
		Dismissible: dismissible,
	}))
}
