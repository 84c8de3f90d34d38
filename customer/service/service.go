package service

import (
	"context"
	"errors"
	"strings"
	"time"

	authService "github.com/shopcore/commerce-api/auth/service"
	avatarIface "github.com/shopcore/commerce-api/avatar/iface"
	billingIface "github.com/shopcore/commerce-api/billing/iface"
	"github.com/shopcore/commerce-api/billing/domain"
	"github.com/shopcore/commerce-api/customer/dal"
	customerDomain "github.com/shopcore/commerce-api/customer/domain"
	"github.com/shopcore/commerce-api/logger"
)

// CustomerService owns the customer records and keeps the billing account
// mirror consistent with them. The local record is the source of truth for
// identity; the billing account is a mirror that is created, updated and
// deleted alongside it.
type CustomerService struct {
	loggerProvider logger.Provider
	customersDAL   dal.Customers
	gateway        billingIface.Gateway
	avatars        avatarIface.Avatars
	tokens         *authService.Tokens
}

func NewCustomerService(
	loggerProvider logger.Provider,
	customersDAL dal.Customers,
	gateway billingIface.Gateway,
	avatars avatarIface.Avatars,
	tokens *authService.Tokens,
) *CustomerService {
	return &CustomerService{
		loggerProvider: loggerProvider,
		customersDAL:   customersDAL,
		gateway:        gateway,
		avatars:        avatars,
		tokens:         tokens,
	}
}

// Register creates the billing account first and the local record second.
// If the local write fails, the freshly created billing account is deleted
// so no orphaned mirror survives a failed registration.
func (s *CustomerService) Register(ctx context.Context, input customerDomain.RegisterInput) (*customerDomain.Session, error) {
	l := s.loggerProvider(ctx)

	email := normalizeEmail(input.Email)

	if _, err := s.customersDAL.GetCustomerByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, dal.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := authService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	accountID, err := s.gateway.CreateBillingAccount(ctx, domain.AccountParams{
		Name:    input.Name,
		Email:   email,
		Phone:   input.Phone,
		Address: input.Address,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	customer := &customerDomain.Customer{
		Name:             input.Name,
		Email:            email,
		PasswordHash:     passwordHash,
		Phone:            input.Phone,
		Address:          input.Address,
		BillingAccountID: accountID,
		TimeCreated:      now,
		TimeModified:     now,
	}

	customerID, err := s.customersDAL.CreateCustomer(ctx, customer)
	if err != nil {
		l.Warningf("rolling back billing account %s after failed registration: %s", accountID, err)
		s.gateway.DeleteBillingAccount(ctx, accountID)

		if errors.Is(err, dal.ErrEmailExists) {
			return nil, ErrEmailTaken
		}

		return nil, err
	}

	customer.ID = customerID

	l.SetLabel(logger.LabelCustomerID, customerID)
	l.Infof("registered customer %s with billing account %s", customerID, accountID)

	return s.newSession(customer)
}

// Login verifies the credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *CustomerService) Login(ctx context.Context, email, password string) (*customerDomain.Session, error) {
	customer, err := s.customersDAL.GetCustomerByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, dal.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if !authService.CheckPassword(customer.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return s.newSession(customer)
}

func (s *CustomerService) GetProfile(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
	customer, err := s.customersDAL.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, dal.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}

		return nil, err
	}

	return customer, nil
}

func (s *CustomerService) newSession(customer *customerDomain.Customer) (*customerDomain.Session, error) {
	token, err := s.tokens.Issue(customer.ID, customer.Email)
	if err != nil {
		return nil, err
	}

	return &customerDomain.Session{
		Token:    token,
		Customer: customer,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
