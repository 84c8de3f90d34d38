//go:generate mockery --output=./mocks --all
package iface

import (
	"context"
	"io"

	"github.com/shopcore/commerce-api/customer/domain"
)

// CustomerService owns the customer identity records and keeps the external
// billing account mirror consistent with them.
type CustomerService interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.Session, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	GetProfile(ctx context.Context, customerID string) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, customerID string, update domain.ProfileUpdate) (*domain.Customer, error)
	DeleteAccount(ctx context.Context, customerID string) error
	UploadAvatar(ctx context.Context, customerID, contentType string, body io.Reader) error
	AvatarURL(ctx context.Context, customerID string) (string, error)
}
