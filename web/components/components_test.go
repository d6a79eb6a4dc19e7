package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

// firstClass returns the class attribute of the first element in html.
func firstClass(t *testing.T, html string) string {
	t.Helper()
	_, rest, ok := strings.Cut(html, `class="`)
	require.True(t, ok, html)
	class, _, ok := strings.Cut(rest, `"`)
	require.True(t, ok, html)
	return class
}

func TestClassMerge(t *testing.T) {
	assert.Equal(t, "p-4", Class("p-2", "p-4"))
	merged := Class(ButtonClass, "bg-white/10")
	assert.Contains(t, merged, "bg-white/10")
	assert.NotContains(t, strings.Fields(merged), "bg-white")
}

func TestToast(t *testing.T) {
	html := renderString(t, Toast(ToastProps{Title: "Saved", Description: "a < b", Duration: 1500}))
	assert.Contains(t, html, `data-variant="success"`)
	assert.Contains(t, html, `data-duration="1500"`)
	classes := strings.Fields(firstClass(t, html))
	assert.Contains(t, classes, "bottom-4")
	assert.Contains(t, classes, "right-4")
	assert.Contains(t, classes, "fixed")
	assert.NotContains(t, classes, "top-4")
	assert.Contains(t, html, "a &lt; b")
	assert.NotContains(t, html, "Dismiss")

	assert.Equal(t, VariantError, ParseVariant("destructive"))
	assert.Equal(t, VariantSuccess, ParseVariant("bogus"))
}

func TestFormControls(t *testing.T) {
	html := renderString(t, Select("c", "b", []Option{{Value: "a", Label: "A"}, {Value: "b", Label: "B & co"}}))
	assert.Contains(t, html, `<option value="b" selected>B &amp; co</option>`)
	assert.Contains(t, html, `<option value="a">A</option>`)

	assert.Contains(t, renderString(t, Checkbox("x", "X", true)), `value="true" checked`)
	assert.Contains(t, renderString(t, Range("r", 0, 32, 12)), `min="0" max="32" value="12"`)
	assert.Contains(t, renderString(t, Input("text", "n", `"quoted"`)), `value="&#34;quoted&#34;"`)
}

func TestLayout(t *testing.T) {
	html := renderString(t, Layout(Title("ShotCraft"), Text("<body>")))
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>ShotCraft | CraftKit</title>")
	assert.Contains(t, html, "&lt;body&gt;")
	for _, tool := range Tools {
		assert.Contains(t, html, `href="`+tool.Path+`"`)
	}
	assert.Equal(t, "CraftKit - Free Tools for Makers", Title(""))
}
