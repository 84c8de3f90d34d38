//go:generate mockery --output=./mocks --all
package iface

import (
	"context"

	"github.com/shopcore/commerce-api/billing/domain"
)

// Gateway is the typed, failure-translated surface of the external billing
// provider. Implementations translate processor errors into the billing
// service error set; callers never see raw transport failures.
type Gateway interface {
	// Billing account lifecycle
	CreateBillingAccount(ctx context.Context, params domain.AccountParams) (string, error)
	UpdateBillingAccount(ctx context.Context, accountID string, update domain.AccountUpdate) error
	// DeleteBillingAccount is best-effort cleanup. Failures are logged by the
	// implementation and never surfaced to the caller.
	DeleteBillingAccount(ctx context.Context, accountID string)

	// Payment methods
	AttachPaymentMethod(ctx context.Context, methodID, accountID string) error
	SetDefaultPaymentMethod(ctx context.Context, accountID, methodID string) error
	ListPaymentMethods(ctx context.Context, accountID string) ([]*domain.PaymentMethod, error)
	RetrievePaymentMethod(ctx context.Context, methodID string) (*domain.PaymentMethod, error)
	DetachPaymentMethod(ctx context.Context, methodID string) error

	// Invoicing
	CreateLineItem(ctx context.Context, accountID, currency string, item domain.LineItem) error
	CreateInvoice(ctx context.Context, accountID, idempotencyKey string) (*domain.Invoice, error)
	FinalizeInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	PayInvoice(ctx context.Context, invoiceID, methodID string) (*domain.Invoice, error)
	RetrievePaymentIntent(ctx context.Context, intentID string) (*domain.PaymentIntent, error)
	ListInvoices(ctx context.Context, accountID string, limit int64, startingAfter string) (*domain.InvoicePage, error)
	RetrieveInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	SendInvoiceEmail(ctx context.Context, invoiceID string) error
}
