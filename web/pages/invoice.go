package pages

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/cristianadrielbraun/craftkit/internal/invoice"
	c "github.com/cristianadrielbraun/craftkit/web/components"
)

// invoiceScript posts the form as JSON, since line items do not map onto
// flat form fields, and saves the returned PDF.
const invoiceScript = `<script>
(function () {
  var form = document.getElementById("invoice-form");
  var rows = document.getElementById("invoice-items");
  function num(v) { var n = parseFloat(v); return isNaN(n) ? 0 : n; }
  function payload() {
    var data = {};
    new FormData(form).forEach(function (v, k) { if (k.indexOf("item-") !== 0) data[k] = v; });
    data.taxRate = num(data.taxRate);
    data.discount = num(data.discount);
    data.items = Array.prototype.map.call(rows.querySelectorAll("[data-item]"), function (row) {
      return {
        description: row.querySelector("[name=item-description]").value,
        qty: num(row.querySelector("[name=item-qty]").value),
        rate: num(row.querySelector("[name=item-rate]").value)
      };
    });
    return JSON.stringify(data);
  }
  document.getElementById("add-item").addEventListener("click", function () {
    var row = rows.querySelector("[data-item]").cloneNode(true);
    row.querySelectorAll("input").forEach(function (i) { i.value = i.name === "item-qty" ? "1" : ""; });
    rows.appendChild(row);
  });
  form.addEventListener("input", function () {
    fetch("/api/invoice/totals", { method: "POST", headers: { "Content-Type": "application/json" }, body: payload() })
      .then(function (r) { return r.ok ? r.json() : null; })
      .then(function (t) {
        if (!t) return;
        var cur = form.elements.currency.value;
        document.getElementById("invoice-total").textContent = cur + t.total.toFixed(2);
      });
  });
  form.addEventListener("submit", function (e) {
    e.preventDefault();
    fetch("/api/invoice", { method: "POST", headers: { "Content-Type": "application/json" }, body: payload() })
      .then(function (r) {
        if (!r.ok) return r.json().then(function (j) { throw new Error(j.error); });
        var name = (r.headers.get("Content-Disposition") || "").split("filename=")[1] || "invoice.pdf";
        return r.blob().then(function (b) {
          var a = document.createElement("a");
          a.href = URL.createObjectURL(b);
          a.download = name.replace(/"/g, "");
          a.click();
          URL.revokeObjectURL(a.href);
        });
      })
      .catch(function (err) { alert(err.message); });
  });
})();
</script>`

// InvoicePage is the invoice generator, pre-filled with inv.
func InvoicePage(inv invoice.Invoice) templ.Component {
	currencies := make([]c.Option, 0, len(invoice.Currencies))
	for _, cur := range invoice.Currencies {
		currencies = append(currencies, c.Option{Value: cur, Label: cur})
	}
	items := make([]templ.Component, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, itemRow(it))
	}
	totals := inv.Totals()

	form := c.Group(
		c.HTML(`<form id="invoice-form" class="rounded-2xl border border-white/10 bg-white/[0.02] p-6">`),
		c.Tag("div", "grid sm:grid-cols-2 gap-x-4",
			c.Field("From", c.Input("text", "fromName", inv.FromName)),
			c.Field("Bill to", c.Input("text", "toName", inv.ToName)),
			c.Field("Your address", c.TextArea("fromAddress", inv.FromAddress)),
			c.Field("Client address", c.TextArea("toAddress", inv.ToAddress)),
			c.Field("Invoice number", c.Input("text", "number", inv.Number)),
			c.Field("Currency", c.Select("currency", inv.Currency, currencies)),
			c.Field("Date", c.Input("date", "date", inv.Date)),
			c.Field("Due date", c.Input("date", "dueDate", inv.DueDate)),
		),
		c.Tag("div", "mb-4", c.HTML(`<div id="invoice-items">`), c.Group(items...), c.HTML(`</div>`)),
		c.HTML(`<button type="button" id="add-item" class="text-sm text-violet-400 hover:text-violet-300 mb-6">+ Add line item</button>`),
		c.Tag("div", "grid grid-cols-2 gap-x-4",
			c.Field("Tax rate (%)", c.Input("number", "taxRate", trimNumber(inv.TaxRate))),
			c.Field("Discount", c.Input("number", "discount", trimNumber(inv.Discount))),
		),
		c.Field("Notes", c.TextArea("notes", inv.Notes)),
		c.HTML(`<div class="mt-6 flex items-center justify-between">`),
		c.HTML(`<span class="text-lg font-semibold">Total <span id="invoice-total">`),
		c.Text(fmt.Sprintf("%s%.2f", inv.Currency, totals.Total)),
		c.HTML(`</span></span>`),
		c.Button("Download PDF"),
		c.HTML(`</div></form>`),
	)

	return c.Layout(c.Title("InvoiceCraft"), c.Group(
		c.Tag("h1", "text-3xl font-bold mb-2", c.Text("InvoiceCraft")),
		c.Tag("p", "text-white/50 mb-8", c.Text("Professional invoices in 60 seconds. No account needed, ever.")),
		form,
		c.HTML(invoiceScript),
	))
}

func itemRow(it invoice.LineItem) templ.Component {
	return c.Group(
		c.HTML(`<div data-item class="grid grid-cols-[1fr_6rem_8rem] gap-2 mb-2">`),
		c.Input("text", "item-description", it.Description),
		c.Input("number", "item-qty", trimNumber(it.Qty)),
		c.Input("number", "item-rate", trimNumber(it.Rate)),
		c.HTML(`</div>`),
	)
}

func trimNumber(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprint(v)
}
