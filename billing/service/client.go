package service

import (
	"errors"

	"github.com/stripe/stripe-go/v74/client"

	"github.com/shopcore/commerce-api/common"
)

var ErrMissingAPIKey = errors.New("missing stripe api key")

// Client wraps the stripe bindings with the account configuration used by
// the gateway.
type Client struct {
	*client.API
}

func NewStripeClient() (*Client, error) {
	apiKey := common.GetEnv("STRIPE_API_KEY", "")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	var stripeClient client.API

	stripeClient.Init(apiKey, nil)

	return &Client{
		&stripeClient,
	}, nil
}
