package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v74"

	"github.com/shopcore/commerce-api/logger"
)

// StripeGateway implements iface.Gateway on top of the stripe bindings.
// Every call translates processor failures into the service error set:
// card declines become ErrPaymentRejected carrying the processor message,
// everything else is logged in full and collapsed to ErrGatewayUnavailable.
type StripeGateway struct {
	loggerProvider logger.Provider
	stripeClient   *Client
}

func NewStripeGateway(loggerProvider logger.Provider, stripeClient *Client) *StripeGateway {
	return &StripeGateway{
		loggerProvider: loggerProvider,
		stripeClient:   stripeClient,
	}
}

func (g *StripeGateway) translate(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}

	l := g.loggerProvider(ctx)

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
		l.Warningf("%s: card declined: %s (%s)", op, stripeErr.Msg, stripeErr.DeclineCode)
		return fmt.Errorf("%w: %s", ErrPaymentRejected, stripeErr.Msg)
	}

	l.Errorf("%s: gateway call failed: %v", op, err)

	return ErrGatewayUnavailable
}

func isResourceMissing(err error) bool {
	var stripeErr *stripe.Error
	return errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing
}
