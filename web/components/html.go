package components

import (
	"context"
	"io"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

// Class merges Tailwind class lists; later classes win over conflicting
// earlier ones.
func Class(base string, overrides ...string) string {
	return twmerge.Merge(append([]string{base}, overrides...)...)
}

// HTML renders trusted static markup as is.
func HTML(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}

// Text renders s HTML-escaped.
func Text(s string) templ.Component {
	return HTML(templ.EscapeString(s))
}

// Group renders components one after another, stopping at the first error.
func Group(cs ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range cs {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Attr formats a single escaped attribute, e.g. Attr("value", v).
func Attr(name, value string) string {
	return " " + name + `="` + templ.EscapeString(value) + `"`
}

// Tag wraps children in an element with the given class.
func Tag(tag, class string, children ...templ.Component) templ.Component {
	var open strings.Builder
	open.WriteString("<" + tag)
	if class != "" {
		open.WriteString(Attr("class", class))
	}
	open.WriteString(">")
	return Group(HTML(open.String()), Group(children...), HTML("</"+tag+">"))
}
