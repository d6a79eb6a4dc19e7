package components

import (
	"fmt"

	"github.com/a-h/templ"
)

const (
	inputClass  = "w-full rounded-lg border border-white/10 bg-white/5 px-3 py-2 text-sm text-white focus:border-violet-400 focus:outline-none"
	labelClass  = "block text-xs font-medium uppercase tracking-wider text-white/50 mb-1"
	ButtonClass = "inline-flex items-center gap-2 rounded-full bg-white px-6 py-3 text-sm font-medium text-black hover:bg-white/90 transition-all"
)

// Field is a labelled form control.
func Field(label string, control templ.Component) templ.Component {
	return Tag("label", "block mb-4", Tag("span", labelClass, Text(label)), control)
}

// Input renders an <input> of the given type.
func Input(typ, name, value string, extra ...string) templ.Component {
	attrs := Attr("type", typ) + Attr("name", name) + Attr("value", value) + Attr("class", Class(inputClass, extra...))
	return HTML("<input" + attrs + ">")
}

// Range renders a slider with its bounds.
func Range(name string, min, max, value int) templ.Component {
	attrs := Attr("type", "range") + Attr("name", name) +
		Attr("min", fmt.Sprint(min)) + Attr("max", fmt.Sprint(max)) + Attr("value", fmt.Sprint(value)) +
		Attr("class", "w-full accent-violet-500")
	return HTML("<input" + attrs + ">")
}

// TextArea renders a multi-line input.
func TextArea(name, value string) templ.Component {
	return Group(
		HTML("<textarea"+Attr("name", name)+Attr("rows", "3")+Attr("class", inputClass)+">"),
		Text(value),
		HTML("</textarea>"),
	)
}

// Option is one entry of a Select.
type Option struct {
	Value, Label string
}

// Select renders a drop-down with selected pre-selected.
func Select(name, selected string, opts []Option) templ.Component {
	cs := []templ.Component{HTML("<select" + Attr("name", name) + Attr("class", inputClass) + ">")}
	for _, o := range opts {
		sel := ""
		if o.Value == selected {
			sel = " selected"
		}
		cs = append(cs, HTML("<option"+Attr("value", o.Value)+sel+">"), Text(o.Label), HTML("</option>"))
	}
	cs = append(cs, HTML("</select>"))
	return Group(cs...)
}

// Checkbox renders a labelled checkbox that posts "true" when ticked.
func Checkbox(name, label string, checked bool) templ.Component {
	c := ""
	if checked {
		c = " checked"
	}
	return Group(
		HTML(`<label class="flex items-center gap-2 text-sm text-white/70 mb-2"><input type="checkbox"`+Attr("name", name)+` value="true"`+c+`>`),
		Text(label),
		HTML(`</label>`),
	)
}

// Button renders a submit button; extra classes override the defaults.
func Button(label string, extra ...string) templ.Component {
	return Group(
		HTML(`<button type="submit"`+Attr("class", Class(ButtonClass, extra...))+`>`),
		Text(label),
		HTML(`</button>`),
	)
}
