package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopcore/commerce-api/billing/domain"
	"github.com/shopcore/commerce-api/billing/iface/mocks"
	"github.com/shopcore/commerce-api/billing/service"
	testtools "github.com/shopcore/commerce-api/common/test_tools"
	customerDal "github.com/shopcore/commerce-api/customer/dal"
	dalMocks "github.com/shopcore/commerce-api/customer/dal/mocks"
	customerDomain "github.com/shopcore/commerce-api/customer/domain"
	"github.com/shopcore/commerce-api/framework/web"
	"github.com/shopcore/commerce-api/logger"
)

const (
	testCustomerID = "cust001"
	testAccountID  = "cus_billing001"
	testMethodID   = "pm_test001"
	testInvoiceID  = "in_test001"
)

type fields struct {
	customersDAL dalMocks.Customers
	service      mocks.Billing
}

func newHandler(f *fields) *Billing {
	return &Billing{
		loggerProvider: logger.FromContext,
		customersDAL:   &f.customersDAL,
		service:        &f.service,
	}
}

func authedCtx(t *testing.T, body map[string]interface{}) *gin.Context {
	return testtools.GenerateAuthenticatedCtx(t, body, testCustomerID, "jamie@example.com")
}

func onCustomerWithAccount(f *fields) {
	f.customersDAL.On("GetCustomer", mock.AnythingOfType("*gin.Context"), testCustomerID).
		Return(&customerDomain.Customer{ID: testCustomerID, BillingAccountID: testAccountID}, nil)
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()

	var webErr *web.Error

	require.Error(t, err)
	require.ErrorAs(t, err, &webErr)
	assert.Equal(t, status, webErr.Status)
}

func TestCreatePaymentHandler(t *testing.T) {
	validBody := map[string]interface{}{
		"amount":          1999,
		"paymentMethodId": testMethodID,
		"description":     "annual plan",
	}

	tests := []struct {
		name           string
		body           map[string]interface{}
		on             func(f *fields)
		wantErr        bool
		expectedStatus int
	}{
		{
			name: "happy path defaults currency to usd",
			body: validBody,
			on: func(f *fields) {
				onCustomerWithAccount(f)
				f.service.On("CreatePayment", mock.AnythingOfType("*gin.Context"), mock.MatchedBy(func(input domain.PaymentInput) bool {
					return input.AccountID == testAccountID &&
						input.Currency == "usd" &&
						input.Amount == 1999
				})).
					Return(&domain.CheckoutResult{Invoice: &domain.Invoice{ID: testInvoiceID}}, nil).
					Once()
			},
		},
		{
			name: "save flag true requests keeping the method",
			body: map[string]interface{}{
				"amount":            1999,
				"paymentMethodId":   testMethodID,
				"savePaymentMethod": "true",
			},
			on: func(f *fields) {
				onCustomerWithAccount(f)
				f.service.On("CreatePayment", mock.AnythingOfType("*gin.Context"), mock.MatchedBy(func(input domain.PaymentInput) bool {
					return input.SaveMethod
				})).
					Return(&domain.CheckoutResult{Success: true, Invoice: &domain.Invoice{ID: testInvoiceID}}, nil).
					Once()
			},
		},
		{
			name: "save flag other than true does not save",
			body: map[string]interface{}{
				"amount":            1999,
				"paymentMethodId":   testMethodID,
				"savePaymentMethod": "yes",
			},
			on: func(f *fields) {
				onCustomerWithAccount(f)
				f.service.On("CreatePayment", mock.AnythingOfType("*gin.Context"), mock.MatchedBy(func(input domain.PaymentInput) bool {
					return !input.SaveMethod
				})).
					Return(&domain.CheckoutResult{Success: true, Invoice: &domain.Invoice{ID: testInvoiceID}}, nil).
					Once()
			},
		},
		{
			name:           "zero amount rejected by binding",
			body:           map[string]interface{}{"amount": 0, "paymentMethodId": testMethodID},
			wantErr:        true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing payment method",
			body:           map[string]interface{}{"amount": 100},
			wantErr:        true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "card declined",
			body: validBody,
			on: func(f *fields) {
				onCustomerWithAccount(f)
				f.service.On("CreatePayment", mock.AnythingOfType("*gin.Context"), mock.AnythingOfType("domain.PaymentInput")).
					Return(nil, service.ErrPaymentRejected).
					Once()
			},
			wantErr:        true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "gateway down",
			body: validBody,
			on: func(f *fields) {
				onCustomerWithAccount(f)
				f.service.On("CreatePayment", mock.AnythingOfType("*gin.Context"), mock.AnythingOfType("domain.PaymentInput")).
					Return(nil, service.ErrGatewayUnavailable).
					Once()
			},
			wantErr:        true,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "customer without billing account",
			body: validBody,
			on: func(f *fields) {
				f.customersDAL.On("GetCustomer", mock.AnythingOfType("*gin.Context"), testCustomerID).
					Return(&customerDomain.Customer{ID: testCustomerID}, nil)
			},
			wantErr:        true,
			expectedStatus: http.StatusConflict,
		},
		{
			name: "deleted customer",
			body: validBody,
			on: func(f *fields) {
				f.customersDAL.On("GetCustomer", mock.AnythingOfType("*gin.Context"), testCustomerID).
					Return(nil, customerDal.ErrNotFound)
			},
			wantErr:        true,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fields{}
			if tt.on != nil {
				tt.on(f)
			}

			h := newHandler(f)
			ctx := authedCtx(t, tt.body)

			err := h.CreatePayment(ctx)
			if tt.wantErr {
				requireStatus(t, err, tt.expectedStatus)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, http.StatusCreated, ctx.Writer.Status())
		})
	}
}

func TestCreatePaymentWithItemsHandler(t *testing.T) {
	t.Run("items forwarded to the service", func(t *testing.T) {
		f := &fields{}
		onCustomerWithAccount(f)

		f.service.On("CreatePaymentWithItems", mock.AnythingOfType("*gin.Context"), mock.MatchedBy(func(input domain.ItemsPaymentInput) bool {
			return len(input.Items) == 2 &&
				input.Items[0].Amount == 300 &&
				input.Items[1].Quantity == 2 &&
				input.IdempotencyKey == "order-42"
		})).
			Return(&domain.CheckoutResult{Invoice: &domain.Invoice{ID: testInvoiceID}}, nil).
			Once()

		h := newHandler(f)
		ctx := authedCtx(t, map[string]interface{}{
			"paymentMethodId": testMethodID,
			"idempotencyKey":  "order-42",
			"items": []map[string]interface{}{
				{"amount": 300, "description": "sticker pack"},
				{"amount": 200, "description": "mug", "quantity": 2},
			},
		})

		require.NoError(t, h.CreatePaymentWithItems(ctx))
		assert.Equal(t, http.StatusCreated, ctx.Writer.Status())

		f.service.AssertExpectations(t)
	})

	t.Run("empty items rejected by binding", func(t *testing.T) {
		f := &fields{}
		h := newHandler(f)

		ctx := authedCtx(t, map[string]interface{}{
			"paymentMethodId": testMethodID,
			"items":           []map[string]interface{}{},
		})

		requireStatus(t, h.CreatePaymentWithItems(ctx), http.StatusBadRequest)

		f.service.AssertNumberOfCalls(t, "CreatePaymentWithItems", 0)
	})
}
