package service

import (
	"strings"
	"unicode"

	"github.com/shopcore/commerce-api/billing/iface"
	"github.com/shopcore/commerce-api/logger"
)

// BillingService composes gateway calls into the checkout flows and the
// invoice / payment-method queries, enforcing ownership before any resource
// is exposed or mutated.
type BillingService struct {
	loggerProvider logger.Provider
	gateway        iface.Gateway
}

func NewBillingService(loggerProvider logger.Provider, gateway iface.Gateway) *BillingService {
	return &BillingService{
		loggerProvider: loggerProvider,
		gateway:        gateway,
	}
}

// normalizeCurrency validates and lowercases a 3-letter currency code.
func normalizeCurrency(currency string) (string, error) {
	if len(currency) != 3 {
		return "", ErrInvalidCurrency
	}

	for _, r := range currency {
		if !unicode.IsLetter(r) {
			return "", ErrInvalidCurrency
		}
	}

	return strings.ToLower(currency), nil
}
