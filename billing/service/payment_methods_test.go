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

func TestDetachPaymentMethod(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		accountID   string
		on          func(gateway *mocks.Gateway)
		assertOn    func(t *testing.T, gateway *mocks.Gateway)
		expectedErr error
	}{
		{
			name:      "owner detaches",
			accountID: testAccountID,
			on: func(gateway *mocks.Gateway) {
				gateway.On("RetrievePaymentMethod", ctx, testMethodID).
					Return(&domain.PaymentMethod{ID: testMethodID, AccountID: testAccountID}, nil)
				gateway.On("DetachPaymentMethod", ctx, testMethodID).Return(nil).Once()
			},
		},
		{
			name:      "foreign method reported as not found and left attached",
			accountID: "cus_other",
			on: func(gateway *mocks.Gateway) {
				gateway.On("RetrievePaymentMethod", ctx, testMethodID).
					Return(&domain.PaymentMethod{ID: testMethodID, AccountID: testAccountID}, nil)
			},
			assertOn: func(t *testing.T, gateway *mocks.Gateway) {
				gateway.AssertNotCalled(t, "DetachPaymentMethod", mock.Anything, mock.Anything)
			},
			expectedErr: ErrPaymentMethodNotFound,
		},
		{
			name:      "unknown method",
			accountID: testAccountID,
			on: func(gateway *mocks.Gateway) {
				gateway.On("RetrievePaymentMethod", ctx, testMethodID).
					Return(nil, ErrPaymentMethodNotFound)
			},
			expectedErr: ErrPaymentMethodNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &mocks.Gateway{}
			tt.on(gateway)

			svc := NewBillingService(logger.FromContext, gateway)

			err := svc.DetachPaymentMethod(ctx, tt.accountID, testMethodID)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}

			if tt.assertOn != nil {
				tt.assertOn(t, gateway)
			}

			gateway.AssertExpectations(t)
		})
	}
}

func TestListPaymentMethods(t *testing.T) {
	ctx := context.Background()
	gateway := &mocks.Gateway{}

	methods := []*domain.PaymentMethod{
		{ID: testMethodID, AccountID: testAccountID, Brand: "visa", Last4: "4242"},
	}
	gateway.On("ListPaymentMethods", ctx, testAccountID).Return(methods, nil).Once()

	svc := NewBillingService(logger.FromContext, gateway)

	got, err := svc.ListPaymentMethods(ctx, testAccountID)
	require.NoError(t, err)
	assert.Equal(t, methods, got)

	_, err = svc.ListPaymentMethods(ctx, "")
	require.ErrorIs(t, err, ErrMissingAccount)

	gateway.AssertExpectations(t)
}
