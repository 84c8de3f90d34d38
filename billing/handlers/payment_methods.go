package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/commerce-api/framework/web"
)

// ListPaymentMethods returns the customer's saved card payment methods.
func (h *Billing) ListPaymentMethods(ctx *gin.Context) error {
	accountID, err := h.billingAccountID(ctx)
	if err != nil {
		return err
	}

	methods, err := h.service.ListPaymentMethods(ctx, accountID)
	if err != nil {
		return translateBillingError(err)
	}

	return web.Respond(ctx, methods, http.StatusOK)
}

// DetachPaymentMethod removes a saved payment method from the customer's
// billing account.
func (h *Billing) DetachPaymentMethod(ctx *gin.Context) error {
	accountID, err := h.billingAccountID(ctx)
	if err != nil {
		return err
	}

	if err := h.service.DetachPaymentMethod(ctx, accountID, ctx.Param("paymentMethodID")); err != nil {
		return translateBillingError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}
