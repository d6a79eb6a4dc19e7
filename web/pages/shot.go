package pages

import (
	"github.com/a-h/templ"

	"github.com/cristianadrielbraun/craftkit/internal/shot"
	c "github.com/cristianadrielbraun/craftkit/web/components"
)

// ShotPage is the screenshot beautifier form, pre-filled with style.
func ShotPage(style shot.Style) templ.Component {
	opts := make([]c.Option, 0, len(shot.Palette))
	for _, g := range shot.Palette {
		opts = append(opts, c.Option{Value: g.Name, Label: g.Name + " (" + g.From.Hex() + " → " + g.To.Hex() + ")"})
	}

	form := c.Group(
		c.HTML(`<form action="/api/shot" method="post" enctype="multipart/form-data" class="rounded-2xl border border-white/10 bg-white/[0.02] p-6">`),
		c.Field("Screenshot", c.HTML(`<input type="file" name="image" accept="image/*" required class="block w-full text-sm text-white/70">`)),
		c.Field("Background", c.Select("gradient", style.Gradient.Name, opts)),
		c.Field("Padding", c.Range("padding", shot.MinPadding, shot.MaxPadding, style.Padding)),
		c.Field("Corner radius", c.Range("radius", shot.MinRadius, shot.MaxRadius, style.Radius)),
		c.Field("Shadow", c.Range("shadow", 0, shot.MaxShadow, int(style.Shadow*100+0.5))),
		// The hidden field follows the checkbox so an unticked box posts "false".
		c.Checkbox("frame", "Browser frame", style.Frame),
		c.HTML(`<input type="hidden" name="frame" value="false">`),
		c.HTML(`<div class="mt-6 flex gap-3">`),
		c.HTML(`<button type="submit" name="delivery" value="download" class="`+c.ButtonClass+`">Download PNG</button>`),
		c.HTML(`<button type="submit" name="delivery" value="preview" formtarget="shot-preview" class="`+c.Class(c.ButtonClass, "bg-white/10 text-white hover:bg-white/20")+`">Preview</button>`),
		c.HTML(`</div></form>`),
	)
	preview := c.HTML(`<iframe name="shot-preview" title="Preview" class="w-full min-h-[28rem] rounded-2xl border border-white/10 bg-white/[0.02]"></iframe>`)

	return c.Layout(c.Title("ShotCraft"), c.Group(
		c.Tag("h1", "text-3xl font-bold mb-2", c.Text("ShotCraft")),
		c.Tag("p", "text-white/50 mb-8", c.Text("Drop a screenshot, pick a background, download a portfolio-ready PNG.")),
		c.Tag("div", "grid lg:grid-cols-2 gap-6", form, preview),
	))
}
