package invoice

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// DateLayout is the wire format of invoice dates.
const DateLayout = "2006-01-02"

// Currencies lists the accepted currency symbols.
var Currencies = []string{"$", "€", "£", "¥"}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid invoice")

// LineItem is one billed row.
type LineItem struct {
	Description string  `json:"description"`
	Qty         float64 `json:"qty" binding:"gte=0"`
	Rate        float64 `json:"rate" binding:"gte=0"`
}

// Amount is qty × rate.
func (li LineItem) Amount() float64 { return li.Qty * li.Rate }

// Invoice is the complete form state of the invoice tool.
type Invoice struct {
	FromName    string     `json:"fromName"`
	FromAddress string     `json:"fromAddress"`
	ToName      string     `json:"toName"`
	ToAddress   string     `json:"toAddress"`
	Number      string     `json:"number"`
	Date        string     `json:"date"`
	DueDate     string     `json:"dueDate"`
	Currency    string     `json:"currency"`
	TaxRate     float64    `json:"taxRate" binding:"gte=0,lte=100"`
	Discount    float64    `json:"discount" binding:"gte=0"`
	Notes       string     `json:"notes"`
	Items       []LineItem `json:"items" binding:"dive"`
}

// Totals are the derived amounts.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// New returns a blank invoice dated now, due in 30 days, with a random number.
func New(now time.Time, rng *rand.Rand) Invoice {
	return Invoice{
		Number:   fmt.Sprintf("INV-%d", rng.Intn(9000)+1000),
		Date:     now.Format(DateLayout),
		DueDate:  now.AddDate(0, 0, 30).Format(DateLayout),
		Currency: "$",
		Items:    []LineItem{{Qty: 1}},
	}
}

// WithDefaults fills fields a client may omit.
func (inv Invoice) WithDefaults(now time.Time, rng *rand.Rand) Invoice {
	d := New(now, rng)
	if inv.Number == "" {
		inv.Number = d.Number
	}
	if inv.Date == "" {
		inv.Date = d.Date
	}
	if inv.DueDate == "" {
		inv.DueDate = d.DueDate
	}
	if inv.Currency == "" {
		inv.Currency = d.Currency
	}
	if len(inv.Items) == 0 {
		inv.Items = d.Items
	}
	return inv
}

// Validate checks the fields the renderer depends on.
func (inv Invoice) Validate() error {
	if len(inv.Items) == 0 {
		return fmt.Errorf("%w: at least one line item is required", ErrInvalid)
	}
	known := false
	for _, c := range Currencies {
		if inv.Currency == c {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("%w: unsupported currency %q", ErrInvalid, inv.Currency)
	}
	if inv.TaxRate < 0 || inv.TaxRate > 100 {
		return fmt.Errorf("%w: tax rate %v out of range", ErrInvalid, inv.TaxRate)
	}
	if inv.Discount < 0 {
		return fmt.Errorf("%w: negative discount", ErrInvalid)
	}
	for i, it := range inv.Items {
		if it.Qty < 0 || it.Rate < 0 {
			return fmt.Errorf("%w: line %d has a negative quantity or rate", ErrInvalid, i+1)
		}
	}
	for _, d := range []string{inv.Date, inv.DueDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(DateLayout, d); err != nil {
			return fmt.Errorf("%w: bad date %q", ErrInvalid, d)
		}
	}
	return nil
}

// Totals computes subtotal, tax and total. Tax applies after the discount.
func (inv Invoice) Totals() Totals {
	var subtotal float64
	for _, it := range inv.Items {
		subtotal += it.Amount()
	}
	taxable := subtotal - inv.Discount
	tax := taxable * (inv.TaxRate / 100)
	return Totals{Subtotal: subtotal, Tax: tax, Total: taxable + tax}
}

// Filename is the suggested download name.
func (inv Invoice) Filename() string {
	return "invoice-" + inv.Number + ".pdf"
}

// FormatDate renders a DateLayout date as "January 2, 2006"; unparsable
// input is returned unchanged.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("January 2, 2006")
}
