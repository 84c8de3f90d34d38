package service

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	"github.com/shopcore/commerce-api/billing/domain"
)

// CreateBillingAccount creates the gateway-side customer record mirroring
// the local identity and returns its opaque id.
func (g *StripeGateway) CreateBillingAccount(ctx context.Context, params domain.AccountParams) (string, error) {
	customerParams := &stripe.CustomerParams{
		Name:  stripe.String(params.Name),
		Email: stripe.String(params.Email),
	}

	if params.Phone != "" {
		customerParams.Phone = stripe.String(params.Phone)
	}

	if params.Address != "" {
		customerParams.Address = &stripe.AddressParams{
			Line1: stripe.String(params.Address),
		}
	}

	customer, err := g.stripeClient.Customers.New(customerParams)
	if err != nil {
		return "", g.translate(ctx, "create billing account", err)
	}

	return customer.ID, nil
}

// UpdateBillingAccount mirrors changed identity fields onto the billing
// account. Only the fields present in the update are sent.
func (g *StripeGateway) UpdateBillingAccount(ctx context.Context, accountID string, update domain.AccountUpdate) error {
	if update.Empty() {
		return nil
	}

	customerParams := &stripe.CustomerParams{}

	if update.Name != nil {
		customerParams.Name = stripe.String(*update.Name)
	}

	if update.Phone != nil {
		customerParams.Phone = stripe.String(*update.Phone)
	}

	if update.Address != nil {
		customerParams.Address = &stripe.AddressParams{
			Line1: stripe.String(*update.Address),
		}
	}

	if _, err := g.stripeClient.Customers.Update(accountID, customerParams); err != nil {
		return g.translate(ctx, "update billing account", err)
	}

	return nil
}

// DeleteBillingAccount removes the gateway-side customer record. Deletion is
// best-effort cleanup, never a transactional requirement: failures are logged
// and swallowed so they cannot mask the primary outcome.
func (g *StripeGateway) DeleteBillingAccount(ctx context.Context, accountID string) {
	if _, err := g.stripeClient.Customers.Del(accountID, nil); err != nil {
		g.loggerProvider(ctx).Errorf("error deleting billing account %s: %v", accountID, err)
	}
}
