package service

import (
	"errors"
)

var (
	// ErrPaymentRejected is the one failure class whose processor message is
	// surfaced to the caller; the card holder can act on it.
	ErrPaymentRejected = errors.New("payment rejected")

	// ErrGatewayUnavailable covers every other processor or transport failure.
	// Detail is logged server side only.
	ErrGatewayUnavailable = errors.New("billing gateway unavailable")

	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")

	ErrInvalidAmount        = errors.New("amount must be a positive integer in minor currency units")
	ErrInvalidQuantity      = errors.New("quantity must be a positive integer")
	ErrInvalidCurrency      = errors.New("currency must be a 3-letter code")
	ErrNoLineItems          = errors.New("at least one line item is required")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrMissingAccount       = errors.New("missing billing account")
	ErrInvoiceNotOpen       = errors.New("invoice did not finalize to an open state")
)
