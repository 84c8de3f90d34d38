package domain

import "time"

// Invoice statuses as reported by the billing gateway.
const (
	InvoiceStatusDraft = "draft"
	InvoiceStatusOpen  = "open"
	InvoiceStatusPaid  = "paid"
	InvoiceStatusVoid  = "void"
)

// AccountParams carries the identity fields mirrored onto a new billing account.
type AccountParams struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// AccountUpdate carries a partial mirror of identity fields.
// Only non-nil fields are sent to the gateway.
type AccountUpdate struct {
	Name    *string
	Phone   *string
	Address *string
}

func (u AccountUpdate) Empty() bool {
	return u.Name == nil && u.Phone == nil && u.Address == nil
}

// LineItem is one charge component of an invoice.
// Amount is in minor currency units per unit of quantity.
type LineItem struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
}

// Total returns the charged amount of the line item in minor units.
func (li LineItem) Total() int64 {
	qty := li.Quantity
	if qty == 0 {
		qty = 1
	}

	return li.Amount * qty
}

// Invoice is the gateway-owned billing document. The service holds a
// reference only; AccountID identifies the owning billing account and is
// checked against the caller before an invoice is exposed.
type Invoice struct {
	ID              string    `json:"id"`
	AccountID       string    `json:"-"`
	Number          string    `json:"number,omitempty"`
	Status          string    `json:"status"`
	Currency        string    `json:"currency"`
	Total           int64     `json:"total"`
	AmountDue       int64     `json:"amountDue"`
	AmountPaid      int64     `json:"amountPaid"`
	Description     string    `json:"description,omitempty"`
	HostedURL       string    `json:"hostedInvoiceUrl,omitempty"`
	PDFURL          string    `json:"invoicePdf,omitempty"`
	PaymentIntentID string    `json:"-"`
	Created         time.Time `json:"created"`
}

// InvoicePage is one page of invoice summaries.
type InvoicePage struct {
	Invoices []*Invoice `json:"invoices"`
	HasMore  bool       `json:"hasMore"`
}

// PaymentIntent is the gateway's settlement record for a paid invoice,
// read-only from this system's perspective.
type PaymentIntent struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	ClientSecret   string `json:"clientSecret,omitempty"`
	RequiresAction bool   `json:"requiresAction"`
}

// PaymentMethod summarizes a gateway payment method. AccountID identifies
// the owning billing account.
type PaymentMethod struct {
	ID        string `json:"id"`
	AccountID string `json:"-"`
	Type      string `json:"type"`
	Brand     string `json:"brand,omitempty"`
	Last4     string `json:"last4,omitempty"`
	ExpMonth  int64  `json:"expMonth,omitempty"`
	ExpYear   int64  `json:"expYear,omitempty"`
	Created   int64  `json:"created,omitempty"`
}

// CheckoutResult is the normalized outcome of a successful checkout attempt.
type CheckoutResult struct {
	Success       bool           `json:"success"`
	Invoice       *Invoice       `json:"invoice"`
	PaymentIntent *PaymentIntent `json:"paymentIntent"`
	InvoiceURL    string         `json:"invoiceUrl"`
	InvoicePDF    string         `json:"invoicePdf"`
}
