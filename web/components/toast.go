package components

import (
	"fmt"

	"github.com/a-h/templ"
)

type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

type Position string

const (
	PositionBottomRight Position = "bottom-right"
	PositionTopRight    Position = "top-right"
)

// ParseVariant maps form values to a Variant, defaulting to success.
func ParseVariant(s string) Variant {
	switch s {
	case "error", "destructive":
		return VariantError
	case "warning":
		return VariantWarning
	case "info":
		return VariantInfo
	default:
		return VariantSuccess
	}
}

// ToastProps configures a Toast.
type ToastProps struct {
	Title       string
	Description string
	Variant     Variant
	Position    Position
	// Duration in milliseconds before the toast hides itself; 0 keeps it.
	Duration    int
	Dismissible bool
}

var variantClass = map[Variant]string{
	VariantSuccess: "border-emerald-500/30 text-emerald-300",
	VariantError:   "border-red-500/30 text-red-300",
	VariantWarning: "border-amber-500/30 text-amber-300",
	VariantInfo:    "border-cyan-500/30 text-cyan-300",
}

var positionClass = map[Position]string{
	PositionBottomRight: "bottom-4 right-4",
	PositionTopRight:    "top-4 right-4",
}

// Toast renders a notification for HTMX swaps.
func Toast(p ToastProps) templ.Component {
	if p.Variant == "" {
		p.Variant = VariantSuccess
	}
	if p.Position == "" {
		p.Position = PositionBottomRight
	}
	class := Class(
		"fixed z-50 rounded-xl border border-white/10 bg-neutral-900 px-4 py-3 text-sm shadow-lg",
		positionClass[p.Position],
		variantClass[p.Variant],
	)

	open := "<div" + Attr("class", class) + Attr("role", "status") + Attr("data-variant", string(p.Variant))
	if p.Duration > 0 {
		open += Attr("data-duration", fmt.Sprint(p.Duration))
	}
	open += ">"

	var dismiss templ.Component
	if p.Dismissible {
		dismiss = HTML(`<button type="button" class="ml-3 opacity-60 hover:opacity-100" aria-label="Dismiss" onclick="this.parentElement.remove()">&times;</button>`)
	}
	var desc templ.Component
	if p.Description != "" {
		desc = Tag("p", "mt-1 text-white/60", Text(p.Description))
	}
	return Group(
		HTML(open),
		Tag("p", "font-medium", Text(p.Title)),
		desc,
		dismiss,
		HTML("</div>"),
	)
}
