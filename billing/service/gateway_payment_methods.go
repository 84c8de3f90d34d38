package service

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	"github.com/shopcore/commerce-api/billing/domain"
)

func newPaymentMethod(stripePM *stripe.PaymentMethod) *domain.PaymentMethod {
	pm := &domain.PaymentMethod{
		ID:      stripePM.ID,
		Type:    string(stripePM.Type),
		Created: stripePM.Created,
	}

	if stripePM.Customer != nil {
		pm.AccountID = stripePM.Customer.ID
	}

	if stripePM.Card != nil {
		pm.Brand = string(stripePM.Card.Brand)
		pm.Last4 = stripePM.Card.Last4
		pm.ExpMonth = stripePM.Card.ExpMonth
		pm.ExpYear = stripePM.Card.ExpYear
	}

	return pm
}

func (g *StripeGateway) AttachPaymentMethod(ctx context.Context, methodID, accountID string) error {
	_, err := g.stripeClient.PaymentMethods.Attach(methodID, &stripe.PaymentMethodAttachParams{
		Customer: stripe.String(accountID),
	})
	if err != nil {
		return g.translate(ctx, "attach payment method", err)
	}

	return nil
}

func (g *StripeGateway) SetDefaultPaymentMethod(ctx context.Context, accountID, methodID string) error {
	_, err := g.stripeClient.Customers.Update(accountID, &stripe.CustomerParams{
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(methodID),
		},
	})
	if err != nil {
		return g.translate(ctx, "set default payment method", err)
	}

	return nil
}

func (g *StripeGateway) ListPaymentMethods(ctx context.Context, accountID string) ([]*domain.PaymentMethod, error) {
	paymentMethods := make([]*domain.PaymentMethod, 0)

	pmIter := g.stripeClient.PaymentMethods.List(&stripe.PaymentMethodListParams{
		Customer: stripe.String(accountID),
	})

	for pmIter.Next() {
		paymentMethods = append(paymentMethods, newPaymentMethod(pmIter.PaymentMethod()))
	}

	if err := pmIter.Err(); err != nil {
		return nil, g.translate(ctx, "list payment methods", err)
	}

	return paymentMethods, nil
}

func (g *StripeGateway) RetrievePaymentMethod(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	pm, err := g.stripeClient.PaymentMethods.Get(methodID, nil)
	if err != nil {
		if isResourceMissing(err) {
			return nil, ErrPaymentMethodNotFound
		}

		return nil, g.translate(ctx, "retrieve payment method", err)
	}

	return newPaymentMethod(pm), nil
}

func (g *StripeGateway) DetachPaymentMethod(ctx context.Context, methodID string) error {
	_, err := g.stripeClient.PaymentMethods.Detach(methodID, &stripe.PaymentMethodDetachParams{})
	if err != nil {
		if isResourceMissing(err) {
			return ErrPaymentMethodNotFound
		}

		return g.translate(ctx, "detach payment method", err)
	}

	return nil
}
