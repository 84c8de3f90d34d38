package service

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v74"

	"github.com/shopcore/commerce-api/billing/domain"
)

func newInvoice(stripeInvoice *stripe.Invoice) *domain.Invoice {
	invoice := &domain.Invoice{
		ID:          stripeInvoice.ID,
		Number:      stripeInvoice.Number,
		Status:      string(stripeInvoice.Status),
		Currency:    string(stripeInvoice.Currency),
		Total:       stripeInvoice.Total,
		AmountDue:   stripeInvoice.AmountDue,
		AmountPaid:  stripeInvoice.AmountPaid,
		Description: stripeInvoice.Description,
		HostedURL:   stripeInvoice.HostedInvoiceURL,
		PDFURL:      stripeInvoice.InvoicePDF,
		Created:     time.Unix(stripeInvoice.Created, 0).UTC(),
	}

	if stripeInvoice.Customer != nil {
		invoice.AccountID = stripeInvoice.Customer.ID
	}

	if stripeInvoice.PaymentIntent != nil {
		invoice.PaymentIntentID = stripeInvoice.PaymentIntent.ID
	}

	return invoice
}

func newPaymentIntent(pi *stripe.PaymentIntent) *domain.PaymentIntent {
	return &domain.PaymentIntent{
		ID:             pi.ID,
		Status:         string(pi.Status),
		Amount:         pi.Amount,
		Currency:       string(pi.Currency),
		ClientSecret:   pi.ClientSecret,
		RequiresAction: pi.Status == stripe.PaymentIntentStatusRequiresAction,
	}
}

// CreateLineItem fires one pending invoice item against the account. The
// gateway keeps the pending-item context itself; the items are swept into
// the next invoice created for the account.
func (g *StripeGateway) CreateLineItem(ctx context.Context, accountID, currency string, item domain.LineItem) error {
	quantity := item.Quantity
	if quantity == 0 {
		quantity = 1
	}

	params := &stripe.InvoiceItemParams{
		Customer:    stripe.String(accountID),
		Currency:    stripe.String(currency),
		Description: stripe.String(item.Description),
		UnitAmount:  stripe.Int64(item.Amount),
		Quantity:    stripe.Int64(quantity),
	}

	if _, err := g.stripeClient.InvoiceItems.New(params); err != nil {
		return g.translate(ctx, "create line item", err)
	}

	return nil
}

// CreateInvoice creates a draft invoice bound to the account, configured for
// automatic collection and requesting strong authentication on card charges.
func (g *StripeGateway) CreateInvoice(ctx context.Context, accountID, idempotencyKey string) (*domain.Invoice, error) {
	params := &stripe.InvoiceParams{
		Customer:         stripe.String(accountID),
		CollectionMethod: stripe.String(string(stripe.InvoiceCollectionMethodChargeAutomatically)),
		AutoAdvance:      stripe.Bool(false),
		PaymentSettings: &stripe.InvoicePaymentSettingsParams{
			PaymentMethodOptions: &stripe.InvoicePaymentSettingsPaymentMethodOptionsParams{
				Card: &stripe.InvoicePaymentSettingsPaymentMethodOptionsCardParams{
					RequestThreeDSecure: stripe.String("automatic"),
				},
			},
		},
	}

	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	invoice, err := g.stripeClient.Invoices.New(params)
	if err != nil {
		return nil, g.translate(ctx, "create invoice", err)
	}

	return newInvoice(invoice), nil
}

func (g *StripeGateway) FinalizeInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := g.stripeClient.Invoices.FinalizeInvoice(invoiceID, &stripe.InvoiceFinalizeInvoiceParams{})
	if err != nil {
		return nil, g.translate(ctx, "finalize invoice", err)
	}

	return newInvoice(invoice), nil
}

// PayInvoice pays the invoice with the given method explicitly, never relying
// on the account default, so the attempt stays self-contained.
func (g *StripeGateway) PayInvoice(ctx context.Context, invoiceID, methodID string) (*domain.Invoice, error) {
	invoice, err := g.stripeClient.Invoices.Pay(invoiceID, &stripe.InvoicePayParams{
		PaymentMethod: stripe.String(methodID),
	})
	if err != nil {
		return nil, g.translate(ctx, "pay invoice", err)
	}

	return newInvoice(invoice), nil
}

func (g *StripeGateway) RetrievePaymentIntent(ctx context.Context, intentID string) (*domain.PaymentIntent, error) {
	pi, err := g.stripeClient.PaymentIntents.Get(intentID, nil)
	if err != nil {
		return nil, g.translate(ctx, "retrieve payment intent", err)
	}

	return newPaymentIntent(pi), nil
}

func (g *StripeGateway) ListInvoices(ctx context.Context, accountID string, limit int64, startingAfter string) (*domain.InvoicePage, error) {
	params := &stripe.InvoiceListParams{
		Customer: stripe.String(accountID),
	}
	params.Limit = stripe.Int64(limit)

	if startingAfter != "" {
		params.StartingAfter = stripe.String(startingAfter)
	}

	page := &domain.InvoicePage{
		Invoices: make([]*domain.Invoice, 0, limit),
	}

	invoiceIter := g.stripeClient.Invoices.List(params)

	for int64(len(page.Invoices)) < limit && invoiceIter.Next() {
		page.Invoices = append(page.Invoices, newInvoice(invoiceIter.Invoice()))
	}

	if err := invoiceIter.Err(); err != nil {
		return nil, g.translate(ctx, "list invoices", err)
	}

	if meta := invoiceIter.List().GetListMeta(); meta != nil {
		page.HasMore = meta.HasMore
	}

	return page, nil
}

func (g *StripeGateway) RetrieveInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := g.stripeClient.Invoices.Get(invoiceID, nil)
	if err != nil {
		if isResourceMissing(err) {
			return nil, ErrInvoiceNotFound
		}

		return nil, g.translate(ctx, "retrieve invoice", err)
	}

	return newInvoice(invoice), nil
}

func (g *StripeGateway) SendInvoiceEmail(ctx context.Context, invoiceID string) error {
	if _, err := g.stripeClient.Invoices.SendInvoice(invoiceID, &stripe.InvoiceSendInvoiceParams{}); err != nil {
		if isResourceMissing(err) {
			return ErrInvoiceNotFound
		}

		return g.translate(ctx, "send invoice email", err)
	}

	return nil
}
