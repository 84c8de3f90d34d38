package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopcore/commerce-api/billing/domain"
	"github.com/shopcore/commerce-api/billing/iface/mocks"
	"github.com/shopcore/commerce-api/logger"
)

func TestGetInvoice(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		accountID   string
		on          func(gateway *mocks.Gateway)
		expectedErr error
	}{
		{
			name:      "owner gets the invoice",
			accountID: testAccountID,
			on: func(gateway *mocks.Gateway) {
				gateway.On("RetrieveInvoice", ctx, testInvoiceID).
					Return(&domain.Invoice{ID: testInvoiceID, AccountID: testAccountID}, nil)
			},
		},
		{
			name:      "foreign invoice reported as not found",
			accountID: "cus_other",
			on: func(gateway *mocks.Gateway) {
				gateway.On("RetrieveInvoice", ctx, testInvoiceID).
					Return(&domain.Invoice{ID: testInvoiceID, AccountID: testAccountID}, nil)
			},
			expectedErr: ErrInvoiceNotFound,
		},
		{
			name:      "missing invoice",
			accountID: testAccountID,
			on: func(gateway *mocks.Gateway) {
				gateway.On("RetrieveInvoice", ctx, testInvoiceID).
					Return(nil, ErrInvoiceNotFound)
			},
			expectedErr: ErrInvoiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &mocks.Gateway{}
			tt.on(gateway)

			svc := NewBillingService(logger.FromContext, gateway)

			invoice, err := svc.GetInvoice(ctx, tt.accountID, testInvoiceID)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, invoice)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testInvoiceID, invoice.ID)
		})
	}
}

func TestSendInvoice_ChecksOwnershipFirst(t *testing.T) {
	ctx := context.Background()
	gateway := &mocks.Gateway{}

	gateway.On("RetrieveInvoice", ctx, testInvoiceID).
		Return(&domain.Invoice{ID: testInvoiceID, AccountID: testAccountID}, nil)

	svc := NewBillingService(logger.FromContext, gateway)

	err := svc.SendInvoice(ctx, "cus_other", testInvoiceID)
	require.ErrorIs(t, err, ErrInvoiceNotFound)

	gateway.AssertNotCalled(t, "SendInvoiceEmail", mock.Anything, mock.Anything)
}

func TestSendInvoice_Owner(t *testing.T) {
	ctx := context.Background()
	gateway := &mocks.Gateway{}

	gateway.On("RetrieveInvoice", ctx, testInvoiceID).
		Return(&domain.Invoice{ID: testInvoiceID, AccountID: testAccountID}, nil)
	gateway.On("SendInvoiceEmail", ctx, testInvoiceID).Return(nil).Once()

	svc := NewBillingService(logger.FromContext, gateway)

	err := svc.SendInvoice(ctx, testAccountID, testInvoiceID)
	require.NoError(t, err)

	gateway.AssertExpectations(t)
}

func TestListInvoices_Limits(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		limit         int64
		expectedLimit int64
	}{
		{name: "default page size", limit: 0, expectedLimit: 10},
		{name: "negative falls back to default", limit: -5, expectedLimit: 10},
		{name: "explicit limit kept", limit: 25, expectedLimit: 25},
		{name: "capped at maximum", limit: 500, expectedLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &mocks.Gateway{}
			gateway.On("ListInvoices", ctx, testAccountID, tt.expectedLimit, "").
				Return(&domain.InvoicePage{}, nil).
				Once()

			svc := NewBillingService(logger.FromContext, gateway)

			_, err := svc.ListInvoices(ctx, testAccountID, tt.limit, "")
			require.NoError(t, err)

			gateway.AssertExpectations(t)
		})
	}
}

func TestListInvoices_MissingAccount(t *testing.T) {
	gateway := &mocks.Gateway{}
	svc := NewBillingService(logger.FromContext, gateway)

	_, err := svc.ListInvoices(context.Background(), "", 10, "")
	require.ErrorIs(t, err, ErrMissingAccount)

	gateway.AssertNumberOfCalls(t, "ListInvoices", 0)
}
