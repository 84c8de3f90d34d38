package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/commerce-api/billing/domain"
	"github.com/shopcore/commerce-api/framework/web"
)

const defaultCurrency = "usd"

type paymentRequest struct {
	Amount          int64  `json:"amount" binding:"required,min=1"`
	Currency        string `json:"currency"`
	Description     string `json:"description"`
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
	// The wire format carries savePaymentMethod as a string: "true" keeps
	// the method attached, any other value does not.
	SavePaymentMethod string `json:"savePaymentMethod"`
	IdempotencyKey    string `json:"idempotencyKey"`
}

type lineItemRequest struct {
	Amount      int64  `json:"amount" binding:"required,min=1"`
	Description string `json:"description"`
	Quantity    int64  `json:"quantity" binding:"min=0"`
}

type itemsPaymentRequest struct {
	Items             []lineItemRequest `json:"items" binding:"required,min=1,dive"`
	Currency          string            `json:"currency"`
	PaymentMethodID   string            `json:"paymentMethodId" binding:"required"`
	SavePaymentMethod string            `json:"savePaymentMethod"`
	IdempotencyKey    string            `json:"idempotencyKey"`
}

func saveMethodRequested(value string) bool {
	return value == "true"
}

// CreatePayment charges a single amount to the customer's billing account.
func (h *Billing) CreatePayment(ctx *gin.Context) error {
	var req paymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	accountID, err := h.billingAccountID(ctx)
	if err != nil {
		return err
	}

	if req.Currency == "" {
		req.Currency = defaultCurrency
	}

	result, err := h.service.CreatePayment(ctx, domain.PaymentInput{
		AccountID:       accountID,
		PaymentMethodID: req.PaymentMethodID,
		Currency:        req.Currency,
		Amount:          req.Amount,
		Description:     req.Description,
		SaveMethod:      saveMethodRequested(req.SavePaymentMethod),
		IdempotencyKey:  req.IdempotencyKey,
	})
	if err != nil {
		return translateBillingError(err)
	}

	return web.Respond(ctx, result, http.StatusCreated)
}

// CreatePaymentWithItems charges an itemized order as a single invoice.
func (h *Billing) CreatePaymentWithItems(ctx *gin.Context) error {
	var req itemsPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	accountID, err := h.billingAccountID(ctx)
	if err != nil {
		return err
	}

	if req.Currency == "" {
		req.Currency = defaultCurrency
	}

	items := make([]domain.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.LineItem{
			Amount:      item.Amount,
			Description: item.Description,
			Quantity:    item.Quantity,
		})
	}

	result, err := h.service.CreatePaymentWithItems(ctx, domain.ItemsPaymentInput{
		AccountID:       accountID,
		PaymentMethodID: req.PaymentMethodID,
		Currency:        req.Currency,
		Items:           items,
		SaveMethod:      saveMethodRequested(req.SavePaymentMethod),
		IdempotencyKey:  req.IdempotencyKey,
	})
	if err != nil {
		return translateBillingError(err)
	}

	return web.Respond(ctx, result, http.StatusCreated)
}
