package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/commerce-api/framework/web"
)

// ListInvoices returns a page of the customer's invoices.
func (h *Billing) ListInvoices(ctx *gin.Context) error {
	accountID, err := h.billingAccountID(ctx)
	if err != nil {
		return err
	}

	var limit int64

	if raw := ctx.Query("limit"); raw != "" {
		limit, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
		}
	}

	page, err := h.service.ListInvoices(ctx, accountID, limit, ctx.Query("startingAfter"))
	if err != nil {
		return translateBillingError(err)
	}

	return web.Respond(ctx, page, http.StatusOK)
}

// GetInvoice returns one of the customer's invoices.
func (h *Billing) GetInvoice(ctx *gin.Context) error {
	accountID, err := h.billingAccountID(ctx)
	if err != nil {
		return err
	}

	invoice, err := h.service.GetInvoice(ctx, accountID, ctx.Param("invoiceID"))
	if err != nil {
		return translateBillingError(err)
	}

	return web.Respond(ctx, invoice, http.StatusOK)
}

// SendInvoice emails the hosted invoice to the customer.
func (h *Billing) SendInvoice(ctx *gin.Context) error {
	accountID, err := h.billingAccountID(ctx)
	if err != nil {
		return err
	}

	if err := h.service.SendInvoice(ctx, accountID, ctx.Param("invoiceID")); err != nil {
		return translateBillingError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}
