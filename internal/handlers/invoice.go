package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/craftkit/internal/invoice"
)

// bindInvoice decodes the JSON body and fills omitted defaults.
func (h *Handler) bindInvoice(c *gin.Context) (invoice.Invoice, bool) {
	var inv invoice.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return inv, false
	}
	h.mu.Lock()
	inv = inv.WithDefaults(h.now(), h.rng)
	h.mu.Unlock()
	if err := inv.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return inv, false
	}
	return inv, true
}

// InvoiceTotals returns the derived amounts of the posted invoice.
func (h *Handler) InvoiceTotals(c *gin.Context) {
	inv, ok := h.bindInvoice(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, inv.Totals())
}

// InvoicePDF renders the posted invoice as a PDF attachment.
func (h *Handler) InvoicePDF(c *gin.Context) {
	inv, ok := h.bindInvoice(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := invoice.RenderPDF(&buf, inv); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, invoice.ErrInvalid) {
			status = http.StatusBadRequest
		}
		log.Printf("[invoice] render failed: %v", err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[invoice] rendered %s with %d items (%d bytes)", inv.Number, len(inv.Items), buf.Len())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", inv.Filename()))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// NewInvoice builds a fresh invoice for the form.
func (h *Handler) NewInvoice() invoice.Invoice {
	h.mu.Lock()
	defer h.mu.Unlock()
	return invoice.New(h.now(), h.rng)
}
