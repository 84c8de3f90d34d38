package service

import (
	"context"

	"github.com/shopcore/commerce-api/billing/domain"
)

const (
	defaultInvoicePageSize = 10
	maxInvoicePageSize     = 100
)

func (s *BillingService) ListInvoices(ctx context.Context, accountID string, limit int64, startingAfter string) (*domain.InvoicePage, error) {
	if accountID == "" {
		return nil, ErrMissingAccount
	}

	if limit <= 0 {
		limit = defaultInvoicePageSize
	}

	if limit > maxInvoicePageSize {
		limit = maxInvoicePageSize
	}

	return s.gateway.ListInvoices(ctx, accountID, limit, startingAfter)
}

// GetInvoice retrieves an invoice and verifies the caller's billing account
// owns it. A foreign invoice is reported as not found, never as forbidden,
// so its existence does not leak.
func (s *BillingService) GetInvoice(ctx context.Context, accountID, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.gateway.RetrieveInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if invoice.AccountID != accountID {
		s.loggerProvider(ctx).Warningf("invoice %s requested by non-owning account %s", invoiceID, accountID)
		return nil, ErrInvoiceNotFound
	}

	return invoice, nil
}

func (s *BillingService) SendInvoice(ctx context.Context, accountID, invoiceID string) error {
	if _, err := s.GetInvoice(ctx, accountID, invoiceID); err != nil {
		return err
	}

	return s.gateway.SendInvoiceEmail(ctx, invoiceID)
}
