package invoice

import (
	"fmt"
	"io"
	"strings"

	"codeberg.org/go-pdf/fpdf"
)

// Page geometry in millimetres (A4 portrait).
const (
	marginLeft  = 20.0
	rightEdge   = 190.0
	amountRight = 185.0
	pageBottom  = 270.0
)

type rgb struct{ r, g, b int }

var (
	accent    = rgb{102, 126, 234}
	ink       = rgb{50, 50, 50}
	body      = rgb{60, 60, 60}
	muted     = rgb{100, 100, 100}
	faint     = rgb{150, 150, 150}
	tableFill = rgb{245, 245, 245}
)

// pdfDoc wraps fpdf with the cp1252 translation the core fonts need.
type pdfDoc struct {
	*fpdf.Fpdf
	tr func(string) string
}

func (d pdfDoc) text(x, y float64, s string) { d.Text(x, y, d.tr(s)) }

func (d pdfDoc) textRight(x, y float64, s string) {
	s = d.tr(s)
	d.Text(x-d.GetStringWidth(s), y, s)
}

func (d pdfDoc) style(size float64, fontStyle string, c rgb) {
	d.SetFont("Helvetica", fontStyle, size)
	d.SetTextColor(c.r, c.g, c.b)
}

// RenderPDF writes inv as a single A4 PDF (more pages if the items overflow).
func RenderPDF(w io.Writer, inv Invoice) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Invoice "+inv.Number, true)
	pdf.SetCreator("CraftKit InvoiceCraft", true)
	d := pdfDoc{Fpdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	d.AddPage()

	money := func(v float64) string { return fmt.Sprintf("%s%.2f", inv.Currency, v) }
	totals := inv.Totals()

	d.style(24, "B", accent)
	d.text(marginLeft, 25, "INVOICE")

	d.style(10, "", muted)
	d.textRight(rightEdge, 20, inv.Number)
	d.textRight(rightEdge, 26, "Date: "+FormatDate(inv.Date))
	d.textRight(rightEdge, 32, "Due: "+FormatDate(inv.DueDate))

	party(d, marginLeft, "FROM", orDefault(inv.FromName, "Your Business"), inv.FromAddress)
	party(d, 110, "BILL TO", orDefault(inv.ToName, "Client Name"), inv.ToAddress)

	y := 90.0
	tableHeader(d, y)
	y += 12
	d.style(10, "", body)
	for _, it := range inv.Items {
		if y > pageBottom {
			d.AddPage()
			y = 25
			tableHeader(d, y)
			y += 12
			d.style(10, "", body)
		}
		d.text(22, y, orDefault(it.Description, "-"))
		d.text(120, y, trimFloat(it.Qty))
		d.text(140, y, money(it.Rate))
		d.textRight(amountRight, y, money(it.Amount()))
		y += 8
	}

	if y > pageBottom-40 {
		d.AddPage()
		y = 25
	}
	y += 10
	d.SetDrawColor(220, 220, 220)
	d.Line(130, y-5, rightEdge, y-5)

	d.style(9, "", muted)
	d.text(140, y, "Subtotal")
	d.textRight(amountRight, y, money(totals.Subtotal))
	if inv.Discount > 0 {
		y += 7
		d.text(140, y, "Discount")
		d.textRight(amountRight, y, "-"+money(inv.Discount))
	}
	if inv.TaxRate > 0 {
		y += 7
		d.text(140, y, fmt.Sprintf("Tax (%s%%)", trimFloat(inv.TaxRate)))
		d.textRight(amountRight, y, money(totals.Tax))
	}

	y += 10
	d.SetDrawColor(200, 200, 200)
	d.Line(130, y-3, rightEdge, y-3)
	d.style(12, "B", rgb{40, 40, 40})
	d.text(140, y+3, "Total")
	d.textRight(amountRight, y+3, money(totals.Total))

	if notes := strings.TrimSpace(inv.Notes); notes != "" {
		y += 25
		if y > pageBottom {
			d.AddPage()
			y = 25
		}
		d.style(8, "", faint)
		d.text(marginLeft, y, "NOTES")
		d.style(9, "", muted)
		for i, line := range strings.Split(notes, "\n") {
			d.text(marginLeft, y+6+float64(i)*5, line)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func party(d pdfDoc, x float64, label, name, address string) {
	d.style(8, "", faint)
	d.text(x, 45, label)
	d.style(11, "", ink)
	d.text(x, 52, name)
	d.style(9, "", muted)
	if address == "" {
		return
	}
	for i, line := range strings.Split(address, "\n") {
		d.text(x, 58+float64(i)*5, line)
	}
}

func tableHeader(d pdfDoc, y float64) {
	d.SetFillColor(tableFill.r, tableFill.g, tableFill.b)
	d.Rect(marginLeft, y-5, 170, 10, "F")
	d.style(8, "", muted)
	d.text(22, y, "DESCRIPTION")
	d.text(120, y, "QTY")
	d.text(140, y, "RATE")
	d.textRight(amountRight, y, "AMOUNT")
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// trimFloat prints whole numbers without decimals.
func trimFloat(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
