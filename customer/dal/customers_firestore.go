package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shopcore/commerce-api/customer/domain"
	"github.com/shopcore/commerce-api/framework/connection"
)

const customersCollection = "customers"

var (
	ErrNotFound    = errors.New("customer not found")
	ErrEmailExists = errors.New("email already registered")
)

// CustomersFirestore is used to interact with customers stored on Firestore.
type CustomersFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewCustomersFirestore returns a new CustomersFirestore instance with given project id.
func NewCustomersFirestore(ctx context.Context, projectID string) (*CustomersFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewCustomersFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewCustomersFirestoreWithClient returns a new CustomersFirestore using given client.
func NewCustomersFirestoreWithClient(fun connection.FirestoreFromContextFun) *CustomersFirestore {
	return &CustomersFirestore{
		firestoreClientFun: fun,
	}
}

func (d *CustomersFirestore) GetRef(ctx context.Context, ID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(customersCollection).Doc(ID)
}

// GetCustomer returns customer's data.
func (d *CustomersFirestore) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	if customerID == "" {
		return nil, ErrNotFound
	}

	snap, err := d.GetRef(ctx, customerID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}

		return nil, err
	}

	var customer domain.Customer

	if err := snap.DataTo(&customer); err != nil {
		return nil, err
	}

	customer.ID = snap.Ref.ID

	return &customer, nil
}

// GetCustomerByEmail returns the customer registered under the given email.
func (d *CustomersFirestore) GetCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	iter := d.firestoreClientFun(ctx).
		Collection(customersCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	var customer domain.Customer

	if err := snap.DataTo(&customer); err != nil {
		return nil, err
	}

	customer.ID = snap.Ref.ID

	return &customer, nil
}

// CreateCustomer stores a new customer. The email uniqueness check and the
// write run in a single transaction so two concurrent registrations of the
// same email cannot both commit.
func (d *CustomersFirestore) CreateCustomer(ctx context.Context, customer *domain.Customer) (string, error) {
	fs := d.firestoreClientFun(ctx)
	ref := fs.Collection(customersCollection).NewDoc()

	err := fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		query := fs.Collection(customersCollection).
			Where("email", "==", customer.Email).
			Limit(1)

		snaps, err := tx.Documents(query).GetAll()
		if err != nil {
			return err
		}

		if len(snaps) > 0 {
			return ErrEmailExists
		}

		return tx.Create(ref, customer)
	})
	if err != nil {
		return "", err
	}

	return ref.ID, nil
}

func (d *CustomersFirestore) UpdateCustomer(ctx context.Context, customerID string, updates []firestore.Update) error {
	if _, err := d.GetRef(ctx, customerID).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}

		return err
	}

	return nil
}

func (d *CustomersFirestore) DeleteCustomer(ctx context.Context, customerID string) error {
	if _, err := d.GetRef(ctx, customerID).Delete(ctx); err != nil {
		return err
	}

	return nil
}

// ListCustomers streams the full collection, used by the scheduled export.
func (d *CustomersFirestore) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	iter := d.firestoreClientFun(ctx).Collection(customersCollection).Documents(ctx)
	defer iter.Stop()

	var customers []*domain.Customer

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var customer domain.Customer

		if err := snap.DataTo(&customer); err != nil {
			return nil, err
		}

		customer.ID = snap.Ref.ID

		customers = append(customers, &customer)
	}

	return customers, nil
}
