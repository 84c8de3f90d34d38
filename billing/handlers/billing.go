package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/commerce-api/billing/iface"
	"github.com/shopcore/commerce-api/billing/service"
	customerDal "github.com/shopcore/commerce-api/customer/dal"
	"github.com/shopcore/commerce-api/framework/connection"
	"github.com/shopcore/commerce-api/framework/mid"
	"github.com/shopcore/commerce-api/framework/web"
	"github.com/shopcore/commerce-api/logger"
)

var errNoBillingAccount = errors.New("customer has no billing account")

type Billing struct {
	loggerProvider logger.Provider
	customersDAL   customerDal.Customers
	service        iface.Billing
}

func NewBilling(loggerProvider logger.Provider, conn *connection.Connection) *Billing {
	customersDAL := customerDal.NewCustomersFirestoreWithClient(conn.Firestore)

	stripeClient, err := service.NewStripeClient()
	if err != nil {
		panic(err)
	}

	gateway := service.NewStripeGateway(loggerProvider, stripeClient)
	billingService := service.NewBillingService(loggerProvider, gateway)

	return &Billing{
		loggerProvider,
		customersDAL,
		billingService,
	}
}

// billingAccountID resolves the authenticated customer's billing account.
// Requests from customers whose billing provisioning was rolled back are
// rejected before any gateway call.
func (h *Billing) billingAccountID(ctx *gin.Context) (string, error) {
	customerID := ctx.GetString(mid.CtxCustomerIDKey)

	customer, err := h.customersDAL.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, customerDal.ErrNotFound) {
			return "", web.NewRequestError(err, http.StatusNotFound)
		}

		return "", web.NewRequestError(err, http.StatusInternalServerError)
	}

	if customer.BillingAccountID == "" {
		return "", web.NewRequestError(errNoBillingAccount, http.StatusConflict)
	}

	return customer.BillingAccountID, nil
}

func translateBillingError(err error) error {
	switch {
	case errors.Is(err, service.ErrPaymentRejected):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, service.ErrGatewayUnavailable):
		return web.NewRequestError(err, http.StatusInternalServerError)
	case errors.Is(err, service.ErrInvoiceNotFound),
		errors.Is(err, service.ErrPaymentMethodNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, service.ErrInvoiceNotOpen):
		return web.NewRequestError(err, http.StatusConflict)
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidCurrency),
		errors.Is(err, service.ErrNoLineItems),
		errors.Is(err, service.ErrInvalidPaymentMethod):
		return web.NewRequestError(err, http.StatusBadRequest)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
