package service

import (
	"context"

	"github.com/qmuntal/stateless"
	"golang.org/x/sync/errgroup"

	"github.com/shopcore/commerce-api/billing/domain"
)

// Checkout attempt states. Steps are strictly sequential; no step is ever
// retried or skipped, and a failed transition abandons the attempt with the
// invoice left in whatever state it reached.
const (
	stateStart            = "start"
	stateMethodReady      = "method_ready"
	stateItemsCreated     = "items_created"
	stateInvoiceCreated   = "invoice_created"
	stateInvoiceFinalized = "invoice_finalized"
	stateInvoicePaid      = "invoice_paid"
	stateDone             = "done"
)

const (
	triggerPrepareMethod   = "prepare_method"
	triggerCreateItems     = "create_items"
	triggerCreateInvoice   = "create_invoice"
	triggerFinalizeInvoice = "finalize_invoice"
	triggerPayInvoice      = "pay_invoice"
	triggerRetrieveIntent  = "retrieve_intent"
)

var checkoutTriggers = []string{
	triggerPrepareMethod,
	triggerCreateItems,
	triggerCreateInvoice,
	triggerFinalizeInvoice,
	triggerPayInvoice,
	triggerRetrieveIntent,
}

// CreatePayment runs the flat single-amount checkout flow. It derives a
// single implicit-quantity line item and shares the multi-item machine.
func (s *BillingService) CreatePayment(ctx context.Context, input domain.PaymentInput) (*domain.CheckoutResult, error) {
	return s.CreatePaymentWithItems(ctx, domain.ItemsPaymentInput{
		AccountID:       input.AccountID,
		PaymentMethodID: input.PaymentMethodID,
		Currency:        input.Currency,
		Items: []domain.LineItem{
			{Amount: input.Amount, Description: input.Description, Quantity: 1},
		},
		SaveMethod:     input.SaveMethod,
		IdempotencyKey: input.IdempotencyKey,
	})
}

// CreatePaymentWithItems runs a checkout attempt for the given line items.
func (s *BillingService) CreatePaymentWithItems(ctx context.Context, input domain.ItemsPaymentInput) (*domain.CheckoutResult, error) {
	if err := validateCheckoutInput(&input); err != nil {
		return nil, err
	}

	run := &checkoutRun{svc: s, input: input}

	if err := run.fire(ctx); err != nil {
		return nil, err
	}

	return &domain.CheckoutResult{
		Success:       true,
		Invoice:       run.invoice,
		PaymentIntent: run.intent,
		InvoiceURL:    run.invoice.HostedURL,
		InvoicePDF:    run.invoice.PDFURL,
	}, nil
}

// validateCheckoutInput defends against invalid input reaching the gateway,
// regardless of upstream request validation. It also normalizes the currency
// and defaults missing quantities to 1.
func validateCheckoutInput(input *domain.ItemsPaymentInput) error {
	if input.AccountID == "" {
		return ErrMissingAccount
	}

	if input.PaymentMethodID == "" {
		return ErrInvalidPaymentMethod
	}

	if len(input.Items) == 0 {
		return ErrNoLineItems
	}

	for i := range input.Items {
		if input.Items[i].Amount <= 0 {
			return ErrInvalidAmount
		}

		if input.Items[i].Quantity < 0 {
			return ErrInvalidQuantity
		}

		if input.Items[i].Quantity == 0 {
			input.Items[i].Quantity = 1
		}
	}

	currency, err := normalizeCurrency(input.Currency)
	if err != nil {
		return err
	}

	input.Currency = currency

	return nil
}

// checkoutRun carries the state accumulated across one checkout attempt.
type checkoutRun struct {
	svc     *BillingService
	input   domain.ItemsPaymentInput
	invoice *domain.Invoice
	intent  *domain.PaymentIntent
}

// fire walks the attempt through the state machine. Each transition performs
// exactly one external step; the first failing transition aborts the attempt.
func (r *checkoutRun) fire(ctx context.Context) error {
	machine := stateless.NewStateMachine(stateStart)

	machine.Configure(stateStart).
		Permit(triggerPrepareMethod, stateMethodReady)

	machine.Configure(stateMethodReady).
		OnEntryFrom(triggerPrepareMethod, r.prepareMethod).
		Permit(triggerCreateItems, stateItemsCreated)

	machine.Configure(stateItemsCreated).
		OnEntryFrom(triggerCreateItems, r.createItems).
		Permit(triggerCreateInvoice, stateInvoiceCreated)

	machine.Configure(stateInvoiceCreated).
		OnEntryFrom(triggerCreateInvoice, r.createInvoice).
		Permit(triggerFinalizeInvoice, stateInvoiceFinalized)

	machine.Configure(stateInvoiceFinalized).
		OnEntryFrom(triggerFinalizeInvoice, r.finalizeInvoice).
		Permit(triggerPayInvoice, stateInvoicePaid)

	machine.Configure(stateInvoicePaid).
		OnEntryFrom(triggerPayInvoice, r.payInvoice).
		Permit(triggerRetrieveIntent, stateDone)

	machine.Configure(stateDone).
		OnEntryFrom(triggerRetrieveIntent, r.retrieveIntent)

	for _, trigger := range checkoutTriggers {
		if err := machine.FireCtx(ctx, trigger); err != nil {
			return err
		}
	}

	return nil
}

// prepareMethod attaches the payment method and sets it as the account
// default when persistence was requested. A failure here aborts the whole
// attempt before any invoice exists, so an unattached method is never charged.
func (r *checkoutRun) prepareMethod(ctx context.Context, _ ...interface{}) error {
	if !r.input.SaveMethod {
		return nil
	}

	if err := r.svc.gateway.AttachPaymentMethod(ctx, r.input.PaymentMethodID, r.input.AccountID); err != nil {
		return err
	}

	return r.svc.gateway.SetDefaultPaymentMethod(ctx, r.input.AccountID, r.input.PaymentMethodID)
}

// createItems fires the pending line items. Items are independent and
// unordered, so they are created concurrently, but all of them strictly
// before the invoice is created.
func (r *checkoutRun) createItems(ctx context.Context, _ ...interface{}) error {
	grp, grpCtx := errgroup.WithContext(ctx)

	for _, item := range r.input.Items {
		item := item

		grp.Go(func() error {
			return r.svc.gateway.CreateLineItem(grpCtx, r.input.AccountID, r.input.Currency, item)
		})
	}

	return grp.Wait()
}

func (r *checkoutRun) createInvoice(ctx context.Context, _ ...interface{}) error {
	invoice, err := r.svc.gateway.CreateInvoice(ctx, r.input.AccountID, r.input.IdempotencyKey)
	if err != nil {
		return err
	}

	r.invoice = invoice

	return nil
}

// finalizeInvoice checks the returned state instead of discarding it: an
// invoice that did not land in "open" must not be paid.
func (r *checkoutRun) finalizeInvoice(ctx context.Context, _ ...interface{}) error {
	invoice, err := r.svc.gateway.FinalizeInvoice(ctx, r.invoice.ID)
	if err != nil {
		return err
	}

	if invoice.Status != domain.InvoiceStatusOpen {
		r.svc.loggerProvider(ctx).Errorf("invoice %s finalized to status %q", invoice.ID, invoice.Status)
		return ErrInvoiceNotOpen
	}

	r.invoice = invoice

	return nil
}

func (r *checkoutRun) payInvoice(ctx context.Context, _ ...interface{}) error {
	invoice, err := r.svc.gateway.PayInvoice(ctx, r.invoice.ID, r.input.PaymentMethodID)
	if err != nil {
		return err
	}

	r.invoice = invoice

	return nil
}

func (r *checkoutRun) retrieveIntent(ctx context.Context, _ ...interface{}) error {
	if r.invoice.PaymentIntentID == "" {
		return nil
	}

	intent, err := r.svc.gateway.RetrievePaymentIntent(ctx, r.invoice.PaymentIntentID)
	if err != nil {
		return err
	}

	r.intent = intent

	return nil
}
