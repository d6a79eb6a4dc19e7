package policy

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Country selects jurisdiction-specific sections.
type Country string

const (
	CountryUS Country = "US"
	CountryUK Country = "UK"
	CountryEU Country = "EU"
	CountryCA Country = "CA"
	CountryAU Country = "AU"
)

// Countries lists the selectable jurisdictions.
var Countries = []Country{CountryUS, CountryUK, CountryEU, CountryCA, CountryAU}

// DownloadFilename is the suggested name of the standalone HTML file.
const DownloadFilename = "privacy-policy.html"

// ErrUnknownCountry is returned for jurisdictions outside Countries.
var ErrUnknownCountry = errors.New("unknown country")

// Options is the form state of the policy tool.
type Options struct {
	SiteName     string  `form:"siteName" json:"siteName"`
	SiteURL      string  `form:"siteUrl" json:"siteUrl"`
	ContactEmail string  `form:"contactEmail" json:"contactEmail" binding:"omitempty,email"`
	Country      Country `form:"country" json:"country"`

	CollectEmail     bool `form:"collectEmail" json:"collectEmail"`
	CollectName      bool `form:"collectName" json:"collectName"`
	CollectPayment   bool `form:"collectPayment" json:"collectPayment"`
	CollectLocation  bool `form:"collectLocation" json:"collectLocation"`
	CollectAnalytics bool `form:"collectAnalytics" json:"collectAnalytics"`

	UseGoogle    bool `form:"useGoogle" json:"useGoogle"`
	UseStripe    bool `form:"useStripe" json:"useStripe"`
	UseMailchimp bool `form:"useMailchimp" json:"useMailchimp"`
	UseSocial    bool `form:"useSocial" json:"useSocial"`
}

// DefaultOptions mirrors the initial state of the form.
func DefaultOptions() Options {
	return Options{
		Country:          CountryUS,
		CollectEmail:     true,
		CollectName:      true,
		CollectAnalytics: true,
		UseGoogle:        true,
	}
}

// ThirdParty is a disclosed service provider.
type ThirdParty struct {
	Name        string
	Description string
}

// Right is one named data-subject right.
type Right struct {
	Name        string
	Description string
}

// Document is the assembled policy, ready to render.
type Document struct {
	Name      string
	URL       string
	Email     string
	Effective time.Time

	Collected    []string
	Uses         []string
	ThirdParties []ThirdParty
	Cookies      bool
	GDPR         []Right
	California   []string
}

var gdprRights = []Right{
	{"Access", "Request copies of your personal data"},
	{"Rectification", "Request correction of inaccurate data"},
	{"Erasure", "Request deletion of your personal data"},
	{"Restriction", "Request restriction of processing"},
	{"Portability", "Request transfer of your data"},
	{"Objection", "Object to processing of your data"},
}

var californiaRights = []string{
	"Know what personal information we collect about you",
	"Request deletion of your personal information",
	"Opt-out of the sale of your personal information (we do not sell personal information)",
	"Non-discrimination for exercising your privacy rights",
}

// Build assembles the document for opts, effective on the given day.
func Build(opts Options, effective time.Time) (Document, error) {
	country := Country(strings.ToUpper(string(opts.Country)))
	if country == "" {
		country = CountryUS
	}
	known := false
	for _, c := range Countries {
		if c == country {
			known = true
		}
	}
	if !known {
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownCountry, opts.Country)
	}

	d := Document{
		Name:      orPlaceholder(opts.SiteName, "[Your Company]"),
		URL:       orPlaceholder(opts.SiteURL, "[your website]"),
		Email:     orPlaceholder(opts.ContactEmail, "[your email]"),
		Effective: effective,
		Cookies:   opts.CollectAnalytics,
	}

	if opts.CollectName {
		d.Collected = append(d.Collected, "Name and contact information")
	}
	if opts.CollectEmail {
		d.Collected = append(d.Collected, "Email address")
	}
	if opts.CollectPayment {
		d.Collected = append(d.Collected, "Payment and billing information")
	}
	if opts.CollectLocation {
		d.Collected = append(d.Collected, "Location data")
	}
	if opts.CollectAnalytics {
		d.Collected = append(d.Collected, "Usage data, cookies, and device information")
	}

	d.Uses = []string{
		"Provide, operate, and maintain our website",
		"Improve, personalize, and expand our website",
		"Understand and analyze how you use our website",
		"Communicate with you, including for customer service and updates",
	}
	if opts.CollectPayment {
		d.Uses = append(d.Uses, "Process transactions and send related information")
	}
	if opts.UseMailchimp {
		d.Uses = append(d.Uses, "Send you marketing and promotional communications (with your consent)")
	}

	if opts.UseGoogle {
		d.ThirdParties = append(d.ThirdParties, ThirdParty{"Google Analytics", "for website analytics and performance monitoring"})
	}
	if opts.UseStripe {
		d.ThirdParties = append(d.ThirdParties, ThirdParty{"Stripe", "for secure payment processing"})
	}
	if opts.UseMailchimp {
		d.ThirdParties = append(d.ThirdParties, ThirdParty{"Email service providers", "for sending newsletters and marketing communications"})
	}
	if opts.UseSocial {
		d.ThirdParties = append(d.ThirdParties, ThirdParty{"Social media platforms", "for social sharing and authentication features"})
	}

	switch country {
	case CountryEU, CountryUK:
		d.GDPR = gdprRights
	case CountryUS, CountryCA:
		d.California = californiaRights
	}
	return d, nil
}

// EffectiveDate formats the effective date the way the document prints it.
func (d Document) EffectiveDate() string {
	return d.Effective.Format("January 2, 2006")
}

func orPlaceholder(s, placeholder string) string {
	if s = strings.TrimSpace(s); s == "" {
		return placeholder
	}
	return s
}
