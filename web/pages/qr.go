package pages

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/cristianadrielbraun/craftkit/internal/qr"
	c "github.com/cristianadrielbraun/craftkit/web/components"
)

// QRPage is the QR code generator form. It submits to /api/qr and shows
// the result in an inline frame.
func QRPage() templ.Component {
	sizes := make([]c.Option, 0, len(qr.Sizes))
	for _, s := range qr.Sizes {
		v := fmt.Sprint(s)
		sizes = append(sizes, c.Option{Value: v, Label: v + " px"})
	}
	kinds := []c.Option{
		{Value: string(qr.KindURL), Label: "URL"},
		{Value: string(qr.KindText), Label: "Text"},
		{Value: string(qr.KindWiFi), Label: "WiFi"},
		{Value: string(qr.KindVCard), Label: "Contact card"},
	}

	form := c.Group(
		c.HTML(`<form action="/api/qr" method="get" target="qr-preview" class="rounded-2xl border border-white/10 bg-white/[0.02] p-6">`),
		c.Field("Type", c.Select("kind", string(qr.KindURL), kinds)),
		c.Field("URL", c.Input("url", "url", qr.DefaultURL)),
		c.Field("Text", c.TextArea("text", "")),
		c.Tag("fieldset", "mb-4",
			c.Field("Network name", c.Input("text", "ssid", "")),
			c.Field("Password", c.Input("text", "password", "")),
			c.Field("Security", c.Select("security", "WPA", []c.Option{{Value: "WPA", Label: "WPA/WPA2"}, {Value: "WEP", Label: "WEP"}, {Value: "nopass", Label: "None"}})),
		),
		c.Tag("fieldset", "mb-4 grid grid-cols-2 gap-x-4",
			c.Field("First name", c.Input("text", "firstName", "")),
			c.Field("Last name", c.Input("text", "lastName", "")),
			c.Field("Phone", c.Input("tel", "phone", "")),
			c.Field("Email", c.Input("email", "email", "")),
			c.Field("Company", c.Input("text", "company", "")),
		),
		c.Tag("div", "grid grid-cols-2 gap-x-4",
			c.Field("Foreground", c.Input("color", "fg", "#000000", "h-10 p-1")),
			c.Field("Background", c.Input("color", "bg", "#ffffff", "h-10 p-1")),
		),
		c.Checkbox("transparent", "Transparent background", false),
		c.Field("Size", c.Select("size", "256", sizes)),
		c.Field("Modules", c.Select("shape", string(qr.ShapeRectangle), []c.Option{
			{Value: string(qr.ShapeRectangle), Label: "Square"},
			{Value: string(qr.ShapeCircle), Label: "Dots"},
		})),
		c.Field("Format", c.Select("format", "png", []c.Option{{Value: "png", Label: "PNG"}, {Value: "svg", Label: "SVG"}, {Value: "jpg", Label: "JPEG"}})),
		c.Button("Generate"),
		c.HTML(`</form>`),
	)
	preview := c.HTML(`<iframe name="qr-preview" title="QR code" class="w-full min-h-[28rem] rounded-2xl border border-white/10 bg-white"></iframe>`)

	return c.Layout(c.Title("QRCraft"), c.Group(
		c.Tag("h1", "text-3xl font-bold mb-2", c.Text("QRCraft")),
		c.Tag("p", "text-white/50 mb-8", c.Text("QR codes for links, text, WiFi and contact cards.")),
		c.Tag("div", "grid lg:grid-cols-2 gap-6", form, preview),
	))
}
