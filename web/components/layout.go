package components

import (
	"github.com/a-h/templ"
)

// SiteName is shown in the header and appended to page titles.
const SiteName = "CraftKit"

const head = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="description" content="Beautiful, free web tools. Screenshot beautifier, invoice generator, QR codes, privacy policies. No signup required.">
  <link rel="stylesheet" href="/web/static/app.css">
  <script src="https://cdn.tailwindcss.com"></script>
  <script src="https://unpkg.com/htmx.org@2.0.4"></script>
`

// Title formats a page title the way every page shows it.
func Title(page string) string {
	if page == "" {
		return SiteName + " - Free Tools for Makers"
	}
	return page + " | " + SiteName
}

// Layout wraps a page body in the document shell with header and footer.
func Layout(title string, body templ.Component) templ.Component {
	return Group(
		HTML(head),
		HTML("  <title>"), Text(title), HTML("</title>\n</head>\n"),
		HTML(`<body class="min-h-screen bg-[#0a0a0a] text-white">`),
		header(),
		Tag("main", "relative z-10 mx-auto max-w-6xl px-6 py-12", body),
		HTML(`<div id="toasts"></div>`),
		footer(),
		HTML("</body>\n</html>\n"),
	)
}

func header() templ.Component {
	nav := make([]templ.Component, 0, len(Tools))
	for _, t := range Tools {
		nav = append(nav, HTML(`<a`+Attr("href", t.Path)+` class="hover:text-white transition-colors">`), Text(t.Name), HTML(`</a>`))
	}
	return Group(
		HTML(`<header class="relative z-10 border-b border-white/5"><div class="mx-auto max-w-6xl px-6 py-5 flex items-center justify-between">`),
		HTML(`<a href="/" class="text-xl font-semibold tracking-tight">Craft<span class="text-violet-400">Kit</span></a>`),
		Tag("nav", "flex items-center gap-6 text-sm text-white/60", nav...),
		HTML(`</div></header>`),
	)
}

func footer() templ.Component {
	return HTML(`<footer class="relative z-10 px-6 py-8 border-t border-white/5"><div class="mx-auto max-w-6xl flex items-center justify-between text-sm text-white/40"><span>Built with care</span><a href="/sitemap.xml" class="hover:text-white/60 transition-colors">Sitemap</a></div></footer>`)
}
