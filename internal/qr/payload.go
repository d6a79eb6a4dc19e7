package qr

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Kind selects how the encoded text is built.
type Kind string

const (
	KindURL   Kind = "url"
	KindText  Kind = "text"
	KindWiFi  Kind = "wifi"
	KindVCard Kind = "vcard"
)

// Placeholders used when a field is left blank.
const (
	DefaultURL  = "https://example.com"
	DefaultText = "Hello World"
	DefaultSSID = "Network"
)

// ErrInvalidInput wraps every payload validation failure.
var ErrInvalidInput = errors.New("invalid QR input")

// WiFi describes a network join payload.
type WiFi struct {
	SSID     string `form:"ssid" json:"ssid"`
	Password string `form:"password" json:"password"`
	// Security is WPA, WEP or nopass.
	Security string `form:"security" json:"security"`
}

// VCard describes a contact card payload.
type VCard struct {
	FirstName string `form:"firstName" json:"firstName"`
	LastName  string `form:"lastName" json:"lastName"`
	Phone     string `form:"phone" json:"phone"`
	Email     string `form:"email" json:"email"`
	Company   string `form:"company" json:"company"`
}

// Request is the form input of the QR tool.
type Request struct {
	Kind Kind   `form:"kind" json:"kind"`
	URL  string `form:"url" json:"url"`
	Text string `form:"text" json:"text"`
	WiFi
	VCard
}

// Payload builds the string to encode for r.
func (r Request) Payload() (string, error) {
	switch r.Kind {
	case KindURL, "":
		if strings.TrimSpace(r.URL) == "" {
			return DefaultURL, nil
		}
		return NormalizeHTTPURL(r.URL)
	case KindText:
		if r.Text == "" {
			return DefaultText, nil
		}
		return r.Text, nil
	case KindWiFi:
		return r.WiFi.Payload()
	case KindVCard:
		return r.VCard.Payload(), nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, r.Kind)
	}
}

// Payload formats w as a WIFI: URI.
func (w WiFi) Payload() (string, error) {
	sec := strings.TrimSpace(w.Security)
	switch strings.ToUpper(sec) {
	case "", "WPA", "WPA2":
		sec = "WPA"
	case "WEP":
		sec = "WEP"
	case "NOPASS", "NONE":
		sec = "nopass"
	default:
		return "", fmt.Errorf("%w: unknown wifi security %q", ErrInvalidInput, w.Security)
	}
	ssid := w.SSID
	if ssid == "" {
		ssid = DefaultSSID
	}
	return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;;", sec, escapeWiFi(ssid), escapeWiFi(w.Password)), nil
}

// Payload formats v as a vCard 3.0 document.
func (v VCard) Payload() string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + v.LastName + ";" + v.FirstName,
		"FN:" + strings.TrimSpace(v.FirstName+" "+v.LastName),
		"TEL:" + v.Phone,
		"EMAIL:" + v.Email,
		"ORG:" + v.Company,
		"END:VCARD",
	}
	return strings.Join(lines, "\n")
}

var wifiEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, `:`, `\:`, `"`, `\"`)

func escapeWiFi(s string) string { return wifiEscaper.Replace(s) }

// NormalizeHTTPURL validates and normalizes a URL string for QR generation.
// It ensures an http/https scheme and a non-empty host, defaulting to https.
func NormalizeHTTPURL(s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", fmt.Errorf("%w: URL is required", ErrInvalidInput)
	}
	if len(v) > 4096 {
		return "", fmt.Errorf("%w: URL is too long", ErrInvalidInput)
	}
	if !strings.Contains(v, "://") {
		v = "https://" + v
	}
	u, err := url.ParseRequestURI(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: only http and https URLs are supported", ErrInvalidInput)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: URL must include a valid host", ErrInvalidInput)
	}
	return u.String(), nil
}
