//go:generate mockery --output=./mocks --all
package dal

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/shopcore/commerce-api/customer/domain"
)

// Customers is used to interact with customers stored on Firestore.
type Customers interface {
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) (string, error)
	UpdateCustomer(ctx context.Context, customerID string, updates []firestore.Update) error
	DeleteCustomer(ctx context.Context, customerID string) error
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
}
