package pages

import (
	"github.com/a-h/templ"

	"github.com/cristianadrielbraun/craftkit/internal/policy"
	c "github.com/cristianadrielbraun/craftkit/web/components"
)

var countryLabels = map[policy.Country]string{
	policy.CountryUS: "United States",
	policy.CountryUK: "United Kingdom",
	policy.CountryEU: "European Union",
	policy.CountryCA: "Canada",
	policy.CountryAU: "Australia",
}

// PolicyPage is the privacy policy generator. The preview pane is filled
// by HTMX from /api/policy.
func PolicyPage(opts policy.Options, preview templ.Component) templ.Component {
	countries := make([]c.Option, 0, len(policy.Countries))
	for _, k := range policy.Countries {
		countries = append(countries, c.Option{Value: string(k), Label: countryLabels[k]})
	}

	form := c.Group(
		c.HTML(`<form action="/api/policy?format=download" method="post" hx-post="/api/policy?format=html" hx-target="#policy-output" hx-trigger="change, keyup delay:300ms" class="rounded-2xl border border-white/10 bg-white/[0.02] p-6">`),
		c.Field("Website or company name", c.Input("text", "siteName", opts.SiteName)),
		c.Field("Website URL", c.Input("url", "siteUrl", opts.SiteURL)),
		c.Field("Contact email", c.Input("email", "contactEmail", opts.ContactEmail)),
		c.Field("Primary jurisdiction", c.Select("country", string(opts.Country), countries)),
		c.Tag("h3", "text-sm font-semibold mt-6 mb-2", c.Text("Data you collect")),
		c.Checkbox("collectName", "Names", opts.CollectName),
		c.Checkbox("collectEmail", "Email addresses", opts.CollectEmail),
		c.Checkbox("collectPayment", "Payment information", opts.CollectPayment),
		c.Checkbox("collectLocation", "Location data", opts.CollectLocation),
		c.Checkbox("collectAnalytics", "Analytics and cookies", opts.CollectAnalytics),
		c.Tag("h3", "text-sm font-semibold mt-6 mb-2", c.Text("Third-party services")),
		c.Checkbox("useGoogle", "Google Analytics", opts.UseGoogle),
		c.Checkbox("useStripe", "Stripe", opts.UseStripe),
		c.Checkbox("useMailchimp", "Email marketing", opts.UseMailchimp),
		c.Checkbox("useSocial", "Social media", opts.UseSocial),
		c.Tag("div", "mt-6", c.Button("Download HTML")),
		c.HTML(`</form>`),
	)
	out := c.Group(
		c.HTML(`<div id="policy-output" class="rounded-2xl bg-white p-8 text-neutral-800 prose max-w-none">`),
		preview,
		c.HTML(`</div>`),
	)

	return c.Layout(c.Title("PolicyCraft"), c.Group(
		c.Tag("h1", "text-3xl font-bold mb-2", c.Text("PolicyCraft")),
		c.Tag("p", "text-white/50 mb-8", c.Text("A privacy policy for your site in a minute. Review it before you publish it.")),
		c.Tag("div", "grid lg:grid-cols-2 gap-6", form, out),
	))
}
