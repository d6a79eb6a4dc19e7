package policy

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const intro = `%s ("we", "us", or "our") operates %s. This Privacy Policy explains how we collect, use, disclose, and safeguard your information when you visit our website.`

const (
	cookiesText  = "We use cookies and similar tracking technologies to track activity on our website. You can instruct your browser to refuse all cookies or to indicate when a cookie is being sent."
	securityText = "We implement appropriate technical and organizational security measures to protect your personal information. However, no method of transmission over the Internet is 100% secure."
)

const pageStyle = `body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 800px; margin: 0 auto; padding: 40px 20px; line-height: 1.7; color: #333; }
    h1 { margin-bottom: 10px; }
    h2 { margin-top: 30px; margin-bottom: 15px; font-size: 1.25rem; }
    ul { padding-left: 25px; }
    li { margin-bottom: 8px; }
    .date { color: #666; margin-bottom: 30px; }`

// htmlWriter accumulates markup and remembers the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) el(tag, text string) {
	h.raw("<" + tag + ">" + templ.EscapeString(text) + "</" + tag + ">")
}

func (h *htmlWriter) list(items []string) {
	h.raw("<ul>")
	for _, it := range items {
		h.el("li", it)
	}
	h.raw("</ul>")
}

func (h *htmlWriter) namedList(names, descs []string) {
	h.raw("<ul>")
	for i := range names {
		h.raw("<li><strong>" + templ.EscapeString(names[i]) + "</strong> &ndash; " + templ.EscapeString(descs[i]) + "</li>")
	}
	h.raw("</ul>")
}

// Body renders the policy as an HTML fragment.
func (d Document) Body() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div id="policy-preview">`)
		h.el("h1", "Privacy Policy")
		h.raw(`<p class="date">` + templ.EscapeString("Effective Date: "+d.EffectiveDate()) + `</p>`)
		h.el("p", fmt.Sprintf(intro, d.Name, d.URL))

		h.el("h2", "Information We Collect")
		h.el("p", "We may collect the following types of information:")
		h.list(d.Collected)

		h.el("h2", "How We Use Your Information")
		h.el("p", "We use the information we collect to:")
		h.list(d.Uses)

		if len(d.ThirdParties) > 0 {
			h.el("h2", "Third-Party Services")
			h.el("p", "We may share your information with third-party service providers:")
			names, descs := make([]string, 0, len(d.ThirdParties)), make([]string, 0, len(d.ThirdParties))
			for _, tp := range d.ThirdParties {
				names, descs = append(names, tp.Name), append(descs, tp.Description)
			}
			h.namedList(names, descs)
		}

		if d.Cookies {
			h.el("h2", "Cookies and Tracking")
			h.el("p", cookiesText)
		}

		if len(d.GDPR) > 0 {
			h.el("h2", "Your Rights Under GDPR")
			h.el("p", "If you are located in the EEA or UK, you have certain data protection rights:")
			names, descs := make([]string, 0, len(d.GDPR)), make([]string, 0, len(d.GDPR))
			for _, r := range d.GDPR {
				names, descs = append(names, r.Name), append(descs, r.Description)
			}
			h.namedList(names, descs)
		}

		if len(d.California) > 0 {
			h.el("h2", "California Privacy Rights")
			h.el("p", "If you are a California resident, you have the right to:")
			h.list(d.California)
		}

		h.el("h2", "Data Security")
		h.el("p", securityText)

		h.el("h2", "Contact Us")
		h.raw("<p>If you have any questions about this Privacy Policy, please contact us at:<br/><strong>" +
			templ.EscapeString(d.Name) + "</strong><br/>Email: " + templ.EscapeString(d.Email) +
			"<br/>Website: " + templ.EscapeString(d.URL) + "</p>")
		h.raw(`</div>`)
		return h.err
	})
}

// Page renders a standalone HTML document suitable for download.
func (d Document) Page() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n  <meta charset=\"UTF-8\">\n" +
			"  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
		h.raw("  <title>" + templ.EscapeString("Privacy Policy - "+d.Name) + "</title>\n")
		h.raw("  <style>\n    " + pageStyle + "\n  </style>\n</head>\n<body>\n")
		if h.err != nil {
			return h.err
		}
		if err := d.Body().Render(ctx, w); err != nil {
			return err
		}
		h.raw("\n</body>\n</html>\n")
		return h.err
	})
}

// Text renders the policy as plain text, one block per paragraph.
func (d Document) Text() string {
	var b strings.Builder
	para := func(s string) { b.WriteString(s + "\n\n") }
	bullets := func(items []string) {
		for _, it := range items {
			b.WriteString("• " + it + "\n")
		}
		b.WriteString("\n")
	}

	para("Privacy Policy")
	para("Effective Date: " + d.EffectiveDate())
	para(fmt.Sprintf(intro, d.Name, d.URL))

	para("Information We Collect")
	para("We may collect the following types of information:")
	bullets(d.Collected)

	para("How We Use Your Information")
	para("We use the information we collect to:")
	bullets(d.Uses)

	if len(d.ThirdParties) > 0 {
		para("Third-Party Services")
		para("We may share your information with third-party service providers:")
		items := make([]string, 0, len(d.ThirdParties))
		for _, tp := range d.ThirdParties {
			items = append(items, tp.Name+" – "+tp.Description)
		}
		bullets(items)
	}
	if d.Cookies {
		para("Cookies and Tracking")
		para(cookiesText)
	}
	if len(d.GDPR) > 0 {
		para("Your Rights Under GDPR")
		para("If you are located in the EEA or UK, you have certain data protection rights:")
		items := make([]string, 0, len(d.GDPR))
		for _, r := range d.GDPR {
			items = append(items, r.Name+" – "+r.Description)
		}
		bullets(items)
	}
	if len(d.California) > 0 {
		para("California Privacy Rights")
		para("If you are a California resident, you have the right to:")
		bullets(d.California)
	}
	para("Data Security")
	para(securityText)
	para("Contact Us")
	b.WriteString("If you have any questions about this Privacy Policy, please contact us at:\n")
	b.WriteString(d.Name + "\nEmail: " + d.Email + "\nWebsite: " + d.URL + "\n")
	return b.String()
}
