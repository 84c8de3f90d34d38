package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authService "github.com/shopcore/commerce-api/auth/service"
	avatarService "github.com/shopcore/commerce-api/avatar/service"
	billingService "github.com/shopcore/commerce-api/billing/service"
	"github.com/shopcore/commerce-api/customer/dal"
	"github.com/shopcore/commerce-api/customer/domain"
	"github.com/shopcore/commerce-api/customer/iface"
	"github.com/shopcore/commerce-api/customer/service"
	"github.com/shopcore/commerce-api/framework/connection"
	"github.com/shopcore/commerce-api/framework/mid"
	"github.com/shopcore/commerce-api/framework/web"
	"github.com/shopcore/commerce-api/logger"
)

type Customers struct {
	loggerProvider logger.Provider
	service        iface.CustomerService
}

func NewCustomers(loggerProvider logger.Provider, conn *connection.Connection, tokens *authService.Tokens) *Customers {
	customersDAL := dal.NewCustomersFirestoreWithClient(conn.Firestore)

	stripeClient, err := billingService.NewStripeClient()
	if err != nil {
		panic(err)
	}

	gateway := billingService.NewStripeGateway(loggerProvider, stripeClient)
	avatars := avatarService.NewAvatarService(loggerProvider, conn)

	customerService := service.NewCustomerService(loggerProvider, customersDAL, gateway, avatars, tokens)

	return &Customers{
		loggerProvider,
		customerService,
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a customer together with its billing account.
func (h *Customers) Register(ctx *gin.Context) error {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	session, err := h.service.Register(ctx, domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return translateCustomerError(err)
	}

	return web.Respond(ctx, session, http.StatusCreated)
}

// Login verifies credentials and issues a token.
func (h *Customers) Login(ctx *gin.Context) error {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	session, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		return translateCustomerError(err)
	}

	return web.Respond(ctx, session, http.StatusOK)
}

// GetProfile returns the authenticated customer's record.
func (h *Customers) GetProfile(ctx *gin.Context) error {
	customerID := ctx.GetString(mid.CtxCustomerIDKey)

	customer, err := h.service.GetProfile(ctx, customerID)
	if err != nil {
		return translateCustomerError(err)
	}

	return web.Respond(ctx, customer, http.StatusOK)
}

// UpdateProfile patches name, phone and address. Email and password are not
// editable here.
func (h *Customers) UpdateProfile(ctx *gin.Context) error {
	customerID := ctx.GetString(mid.CtxCustomerIDKey)

	var update domain.ProfileUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	customer, err := h.service.UpdateProfile(ctx, customerID, update)
	if err != nil {
		return translateCustomerError(err)
	}

	return web.Respond(ctx, customer, http.StatusOK)
}

// DeleteAccount removes the customer and its billing account mirror.
func (h *Customers) DeleteAccount(ctx *gin.Context) error {
	customerID := ctx.GetString(mid.CtxCustomerIDKey)

	if err := h.service.DeleteAccount(ctx, customerID); err != nil {
		return translateCustomerError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func translateCustomerError(err error) error {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials):
		return web.NewRequestError(err, http.StatusUnauthorized)
	case errors.Is(err, service.ErrCustomerNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, service.ErrNoAvatar):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, avatarService.ErrUnsupportedImageType):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, billingService.ErrGatewayUnavailable):
		return web.NewRequestError(err, http.StatusInternalServerError)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
