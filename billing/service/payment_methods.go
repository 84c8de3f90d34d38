package service

import (
	"context"

	"github.com/shopcore/commerce-api/billing/domain"
)

func (s *BillingService) ListPaymentMethods(ctx context.Context, accountID string) ([]*domain.PaymentMethod, error) {
	if accountID == "" {
		return nil, ErrMissingAccount
	}

	return s.gateway.ListPaymentMethods(ctx, accountID)
}

// DetachPaymentMethod detaches a payment method after verifying it belongs
// to the caller's billing account. A foreign method is reported as not found
// and left attached.
func (s *BillingService) DetachPaymentMethod(ctx context.Context, accountID, methodID string) error {
	method, err := s.gateway.RetrievePaymentMethod(ctx, methodID)
	if err != nil {
		return err
	}

	if method.AccountID != accountID {
		s.loggerProvider(ctx).Warningf("payment method %s requested by non-owning account %s", methodID, accountID)
		return ErrPaymentMethodNotFound
	}

	return s.gateway.DetachPaymentMethod(ctx, methodID)
}
