package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	testtools "github.com/shopcore/commerce-api/common/test_tools"
	"github.com/shopcore/commerce-api/customer/domain"
	"github.com/shopcore/commerce-api/customer/iface/mocks"
	"github.com/shopcore/commerce-api/customer/service"
	"github.com/shopcore/commerce-api/framework/web"
	"github.com/shopcore/commerce-api/logger"
)

const (
	testCustomerID = "cust001"
	testEmail      = "jamie@example.com"
)

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()

	var webErr *web.Error

	require.Error(t, err)
	require.ErrorAs(t, err, &webErr)
	assert.Equal(t, status, webErr.Status)
}

func TestCustomersHandler_Register(t *testing.T) {
	body := map[string]interface{}{
		"name":     "Jamie Doe",
		"email":    testEmail,
		"password": "hunter2!hunter2",
	}

	type fields struct {
		service mocks.CustomerService
	}

	tests := []struct {
		name           string
		body           map[string]interface{}
		on             func(f *fields)
		wantErr        bool
		expectedStatus int
	}{
		{
			name: "happy path",
			body: body,
			on: func(f *fields) {
				f.service.On("Register", mock.AnythingOfType("*gin.Context"), mock.AnythingOfType("domain.RegisterInput")).
					Return(&domain.Session{Token: "jwt", Customer: &domain.Customer{ID: testCustomerID}}, nil).
					Once()
			},
		},
		{
			name:           "missing email",
			body:           map[string]interface{}{"name": "Jamie", "password": "hunter2!hunter2"},
			wantErr:        true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password",
			body:           map[string]interface{}{"name": "Jamie", "email": testEmail, "password": "short"},
			wantErr:        true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "email taken",
			body: body,
			on: func(f *fields) {
				f.service.On("Register", mock.AnythingOfType("*gin.Context"), mock.AnythingOfType("domain.RegisterInput")).
					Return(nil, service.ErrEmailTaken).
					Once()
			},
			wantErr:        true,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{service: mocks.CustomerService{}}
			if tt.on != nil {
				tt.on(&f)
			}

			h := &Customers{
				loggerProvider: logger.FromContext,
				service:        &f.service,
			}

			ctx := testtools.GenerateCtxWithJSONAndParams(t, tt.body, nil)

			err := h.Register(ctx)
			if tt.wantErr {
				requireStatus(t, err, tt.expectedStatus)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, http.StatusCreated, ctx.Writer.Status())
		})
	}
}

func TestCustomersHandler_Login(t *testing.T) {
	type fields struct {
		service mocks.CustomerService
	}

	tests := []struct {
		name           string
		body           map[string]interface{}
		on             func(f *fields)
		wantErr        bool
		expectedStatus int
	}{
		{
			name: "happy path",
			body: map[string]interface{}{"email": testEmail, "password": "hunter2!hunter2"},
			on: func(f *fields) {
				f.service.On("Login", mock.AnythingOfType("*gin.Context"), testEmail, "hunter2!hunter2").
					Return(&domain.Session{Token: "jwt", Customer: &domain.Customer{ID: testCustomerID}}, nil).
					Once()
			},
		},
		{
			name: "bad credentials",
			body: map[string]interface{}{"email": testEmail, "password": "wrong-password"},
			on: func(f *fields) {
				f.service.On("Login", mock.AnythingOfType("*gin.Context"), testEmail, "wrong-password").
					Return(nil, service.ErrInvalidCredentials).
					Once()
			},
			wantErr:        true,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed email",
			body:           map[string]interface{}{"email": "not-an-email", "password": "hunter2!hunter2"},
			wantErr:        true,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{service: mocks.CustomerService{}}
			if tt.on != nil {
				tt.on(&f)
			}

			h := &Customers{
				loggerProvider: logger.FromContext,
				service:        &f.service,
			}

			ctx := testtools.GenerateCtxWithJSONAndParams(t, tt.body, nil)

			err := h.Login(ctx)
			if tt.wantErr {
				requireStatus(t, err, tt.expectedStatus)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, ctx.Writer.Status())
		})
	}
}

func TestCustomersHandler_Profile(t *testing.T) {
	t.Run("get profile", func(t *testing.T) {
		serviceMock := mocks.CustomerService{}
		serviceMock.On("GetProfile", mock.AnythingOfType("*gin.Context"), testCustomerID).
			Return(&domain.Customer{ID: testCustomerID, Email: testEmail}, nil).
			Once()

		h := &Customers{loggerProvider: logger.FromContext, service: &serviceMock}

		ctx := testtools.GenerateAuthenticatedCtx(t, nil, testCustomerID, testEmail)

		require.NoError(t, h.GetProfile(ctx))
		assert.Equal(t, http.StatusOK, ctx.Writer.Status())
	})

	t.Run("get profile of deleted customer", func(t *testing.T) {
		serviceMock := mocks.CustomerService{}
		serviceMock.On("GetProfile", mock.AnythingOfType("*gin.Context"), testCustomerID).
			Return(nil, service.ErrCustomerNotFound).
			Once()

		h := &Customers{loggerProvider: logger.FromContext, service: &serviceMock}

		ctx := testtools.GenerateAuthenticatedCtx(t, nil, testCustomerID, testEmail)

		requireStatus(t, h.GetProfile(ctx), http.StatusNotFound)
	})

	t.Run("patch profile", func(t *testing.T) {
		serviceMock := mocks.CustomerService{}
		serviceMock.On("UpdateProfile", mock.AnythingOfType("*gin.Context"), testCustomerID, mock.AnythingOfType("domain.ProfileUpdate")).
			Return(&domain.Customer{ID: testCustomerID, Name: "Jamie Q. Doe"}, nil).
			Once()

		h := &Customers{loggerProvider: logger.FromContext, service: &serviceMock}

		ctx := testtools.GenerateAuthenticatedCtx(t, map[string]interface{}{"name": "Jamie Q. Doe"}, testCustomerID, testEmail)

		require.NoError(t, h.UpdateProfile(ctx))
		assert.Equal(t, http.StatusOK, ctx.Writer.Status())
	})

	t.Run("patch with only unknown fields returns the unchanged profile", func(t *testing.T) {
		serviceMock := mocks.CustomerService{}
		serviceMock.On("UpdateProfile", mock.AnythingOfType("*gin.Context"), testCustomerID, domain.ProfileUpdate{}).
			Return(&domain.Customer{ID: testCustomerID, Name: "Jamie Doe"}, nil).
			Once()

		h := &Customers{loggerProvider: logger.FromContext, service: &serviceMock}

		ctx := testtools.GenerateAuthenticatedCtx(t, map[string]interface{}{"email": "other@example.com", "role": "admin"}, testCustomerID, testEmail)

		require.NoError(t, h.UpdateProfile(ctx))
		assert.Equal(t, http.StatusOK, ctx.Writer.Status())
	})

	t.Run("delete account", func(t *testing.T) {
		serviceMock := mocks.CustomerService{}
		serviceMock.On("DeleteAccount", mock.AnythingOfType("*gin.Context"), testCustomerID).
			Return(nil).
			Once()

		h := &Customers{loggerProvider: logger.FromContext, service: &serviceMock}

		ctx := testtools.GenerateAuthenticatedCtx(t, nil, testCustomerID, testEmail)

		require.NoError(t, h.DeleteAccount(ctx))
	})

	t.Run("delete account internal failure", func(t *testing.T) {
		serviceMock := mocks.CustomerService{}
		serviceMock.On("DeleteAccount", mock.AnythingOfType("*gin.Context"), testCustomerID).
			Return(errors.New("firestore unavailable")).
			Once()

		h := &Customers{loggerProvider: logger.FromContext, service: &serviceMock}

		ctx := testtools.GenerateAuthenticatedCtx(t, nil, testCustomerID, testEmail)

		requireStatus(t, h.DeleteAccount(ctx), http.StatusInternalServerError)
	})
}

func TestCustomersHandler_AvatarURL(t *testing.T) {
	t.Run("stored picture", func(t *testing.T) {
		serviceMock := mocks.CustomerService{}
		serviceMock.On("AvatarURL", mock.AnythingOfType("*gin.Context"), testCustomerID).
			Return("https://storage.example.com/signed", nil).
			Once()

		h := &Customers{loggerProvider: logger.FromContext, service: &serviceMock}

		ctx := testtools.GenerateAuthenticatedCtx(t, nil, testCustomerID, testEmail)

		require.NoError(t, h.GetAvatarURL(ctx))
		assert.Equal(t, http.StatusOK, ctx.Writer.Status())
	})

	t.Run("no picture", func(t *testing.T) {
		serviceMock := mocks.CustomerService{}
		serviceMock.On("AvatarURL", mock.AnythingOfType("*gin.Context"), testCustomerID).
			Return("", service.ErrNoAvatar).
			Once()

		h := &Customers{loggerProvider: logger.FromContext, service: &serviceMock}

		ctx := testtools.GenerateAuthenticatedCtx(t, nil, testCustomerID, testEmail)

		requireStatus(t, h.GetAvatarURL(ctx), http.StatusNotFound)
	})
}
