package pages

import (
	"github.com/a-h/templ"

	c "github.com/cristianadrielbraun/craftkit/web/components"
)

// HomePage lists the tools.
func HomePage() templ.Component {
	cards := make([]templ.Component, 0, len(c.Tools))
	for _, t := range c.Tools {
		cards = append(cards, toolCard(t))
	}
	hero := c.Group(
		c.HTML(`<section class="pt-12 pb-16 text-center">`),
		c.HTML(`<div class="inline-flex items-center gap-2 rounded-full border border-white/10 bg-white/5 px-4 py-1.5 text-sm text-white/70 mb-8">Free tools. No signup. No BS.</div>`),
		c.HTML(`<h1 class="text-5xl sm:text-6xl font-bold tracking-tight leading-[1.1] mb-6">Stop paying for<br><span class="bg-gradient-to-r from-violet-400 via-purple-400 to-fuchsia-400 bg-clip-text text-transparent">simple tools</span></h1>`),
		c.HTML(`<p class="text-lg text-white/50 max-w-xl mx-auto mb-10 leading-relaxed">Screenshot beautifier. Invoice generator. QR codes. Privacy policies.</p>`),
		c.HTML(`</section>`),
	)
	grid := c.Group(
		c.HTML(`<section id="tools"><h2 class="text-3xl font-bold mb-4 text-center">Pick your tool</h2>`),
		c.Tag("div", "grid sm:grid-cols-2 gap-4", cards...),
		c.HTML(`</section>`),
	)
	return c.Layout(c.Title(""), c.Group(hero, grid))
}

func toolCard(t c.Tool) templ.Component {
	return c.Group(
		c.HTML(`<a`+c.Attr("href", t.Path)+` class="group relative overflow-hidden rounded-2xl border border-white/10 bg-white/[0.02] p-6 hover:bg-white/[0.04] hover:border-white/20 transition-all duration-300">`),
		c.HTML(`<div`+c.Attr("class", c.Class("absolute top-0 right-0 w-32 h-32 bg-gradient-to-br opacity-10 blur-3xl", t.Accent))+`></div>`),
		c.HTML(`<div class="flex items-start justify-between mb-4">`),
		c.Tag("span", "text-4xl", c.Text(t.Icon)),
		c.Tag("span", "text-xs font-medium text-white/40 uppercase tracking-wider", c.Text(t.Tag)),
		c.HTML(`</div>`),
		c.Tag("h3", "text-xl font-semibold mb-2 group-hover:text-violet-300 transition-colors", c.Text(t.Name)),
		c.Tag("p", "text-white/50 text-sm leading-relaxed", c.Text(t.Description)),
		c.HTML(`</a>`),
	)
}

// NotFoundPage is served for unknown routes.
func NotFoundPage() templ.Component {
	return c.Layout(c.Title("Not Found"), c.Group(
		c.Tag("h1", "text-4xl font-bold mb-4", c.Text("404")),
		c.Tag("p", "text-white/50 mb-8", c.Text("This page doesn't exist.")),
		c.HTML(`<a href="/" class="text-violet-400 hover:text-violet-300">Back to all tools</a>`),
	))
}
