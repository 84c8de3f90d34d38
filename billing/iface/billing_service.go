package iface

import (
	"context"

	"github.com/shopcore/commerce-api/billing/domain"
)

// Billing is the service surface consumed by the HTTP handlers.
type Billing interface {
	CreatePayment(ctx context.Context, input domain.PaymentInput) (*domain.CheckoutResult, error)
	CreatePaymentWithItems(ctx context.Context, input domain.ItemsPaymentInput) (*domain.CheckoutResult, error)

	ListInvoices(ctx context.Context, accountID string, limit int64, startingAfter string) (*domain.InvoicePage, error)
	GetInvoice(ctx context.Context, accountID, invoiceID string) (*domain.Invoice, error)
	SendInvoice(ctx context.Context, accountID, invoiceID string) error

	ListPaymentMethods(ctx context.Context, accountID string) ([]*domain.PaymentMethod, error)
	DetachPaymentMethod(ctx context.Context, accountID, methodID string) error
}
