package invoice

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Invoice {
	return Invoice{
		FromName:    "Craft Studio",
		FromAddress: "1 Main St\nSpringfield",
		ToName:      "Acme Corp",
		ToAddress:   "99 Side Rd",
		Number:      "INV-4242",
		Date:        "2026-10-18",
		DueDate:     "2026-11-17",
		Currency:    "€",
		TaxRate:     20,
		Discount:    50,
		Notes:       "Thanks!\nPay within 30 days.",
		Items: []LineItem{
			{Description: "Design", Qty: 10, Rate: 40},
			{Description: "Hosting", Qty: 1, Rate: 150},
		},
	}
}

func TestTotals(t *testing.T) {
	got := sample().Totals()
	assert.InDelta(t, 550.0, got.Subtotal, 1e-9)
	assert.InDelta(t, 100.0, got.Tax, 1e-9)
	assert.InDelta(t, 600.0, got.Total, 1e-9)

	plain := Invoice{Currency: "$", Items: []LineItem{{Qty: 3, Rate: 2.5}}}.Totals()
	assert.Equal(t, Totals{Subtotal: 7.5, Tax: 0, Total: 7.5}, plain)
}

func TestNewDefaults(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	inv := New(now, rand.New(rand.NewSource(1)))

	assert.Regexp(t, `^INV-\d{4}$`, inv.Number)
	assert.Equal(t, "2026-10-18", inv.Date)
	assert.Equal(t, "2026-11-17", inv.DueDate)
	assert.Equal(t, "$", inv.Currency)
	assert.Len(t, inv.Items, 1)
	assert.NoError(t, inv.Validate())

	filled := Invoice{Currency: "£"}.WithDefaults(now, rand.New(rand.NewSource(1)))
	assert.Equal(t, "£", filled.Currency)
	assert.Equal(t, inv.Number, filled.Number)
	assert.Len(t, filled.Items, 1)
}

func TestValidate(t *testing.T) {
	require.NoError(t, sample().Validate())

	bad := []func(*Invoice){
		func(inv *Invoice) { inv.Items = nil },
		func(inv *Invoice) { inv.Currency = "CHF" },
		func(inv *Invoice) { inv.TaxRate = 101 },
		func(inv *Invoice) { inv.Discount = -1 },
		func(inv *Invoice) { inv.Items[0].Qty = -2 },
		func(inv *Invoice) { inv.DueDate = "17/11/2026" },
	}
	for i, mutate := range bad {
		inv := sample()
		mutate(&inv)
		assert.ErrorIs(t, inv.Validate(), ErrInvalid, "case %d", i)
	}
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "invoice-INV-4242.pdf", sample().Filename())
	assert.Equal(t, "October 18, 2026", FormatDate("2026-10-18"))
	assert.Equal(t, "", FormatDate(""))
	assert.Equal(t, "soon", FormatDate("soon"))
	assert.Equal(t, "10", trimFloat(10))
	assert.Equal(t, "1.5", trimFloat(1.5))
	assert.Equal(t, "0", trimFloat(0))
}

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPDF(&buf, sample()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.True(t, bytes.Contains(buf.Bytes(), []byte("%%EOF")))
}

func TestRenderPDFManyItems(t *testing.T) {
	inv := sample()
	inv.Items = nil
	for i := 0; i < 60; i++ {
		inv.Items = append(inv.Items, LineItem{Description: strings.Repeat("x", i%10+1), Qty: 1, Rate: 1})
	}
	var buf bytes.Buffer
	require.NoError(t, RenderPDF(&buf, inv))
	// One "/Type /Pages" tree node plus at least two "/Type /Page" leaves.
	assert.Greater(t, bytes.Count(buf.Bytes(), []byte("/Type /Page")), 2)
}

func TestRenderPDFRejectsInvalid(t *testing.T) {
	inv := sample()
	inv.Currency = "?"
	var buf bytes.Buffer
	assert.ErrorIs(t, RenderPDF(&buf, inv), ErrInvalid)
	assert.Zero(t, buf.Len())
}
