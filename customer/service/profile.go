package service

import (
	"context"
	"errors"
	"io"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/hashicorp/go-multierror"

	"github.com/shopcore/commerce-api/billing/domain"
	"github.com/shopcore/commerce-api/customer/dal"
	customerDomain "github.com/shopcore/commerce-api/customer/domain"
)

// UpdateProfile applies the patch to the local record first, then mirrors
// the changed fields onto the billing account. A mirror failure is logged
// and does not fail the update; the local record is the source of truth.
func (s *CustomerService) UpdateProfile(ctx context.Context, customerID string, update customerDomain.ProfileUpdate) (*customerDomain.Customer, error) {
	// Patches touching none of the editable fields are a no-op; the caller
	// still gets the current profile back.
	if update.Empty() {
		return s.GetProfile(ctx, customerID)
	}

	customer, err := s.GetProfile(ctx, customerID)
	if err != nil {
		return nil, err
	}

	updates := []firestore.Update{
		{Path: "timeModified", Value: time.Now().UTC()},
	}

	if update.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *update.Name})
	}

	if update.Phone != nil {
		updates = append(updates, firestore.Update{Path: "phone", Value: *update.Phone})
	}

	if update.Address != nil {
		updates = append(updates, firestore.Update{Path: "address", Value: *update.Address})
	}

	if err := s.customersDAL.UpdateCustomer(ctx, customerID, updates); err != nil {
		if errors.Is(err, dal.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}

		return nil, err
	}

	if customer.BillingAccountID != "" {
		mirror := domain.AccountUpdate{
			Name:    update.Name,
			Phone:   update.Phone,
			Address: update.Address,
		}

		if err := s.gateway.UpdateBillingAccount(ctx, customer.BillingAccountID, mirror); err != nil {
			s.loggerProvider(ctx).Warningf("billing account %s mirror update failed: %s", customer.BillingAccountID, err)
		}
	}

	return s.GetProfile(ctx, customerID)
}

// DeleteAccount removes the billing account mirror and the stored avatar on
// a best-effort basis, then deletes the local record. Cleanup failures are
// logged and never block the local delete.
func (s *CustomerService) DeleteAccount(ctx context.Context, customerID string) error {
	customer, err := s.GetProfile(ctx, customerID)
	if err != nil {
		return err
	}

	var cleanupErrs error

	if customer.BillingAccountID != "" {
		s.gateway.DeleteBillingAccount(ctx, customer.BillingAccountID)
	}

	if customer.AvatarObject != "" {
		if err := s.avatars.Delete(ctx, customer.AvatarObject); err != nil {
			cleanupErrs = multierror.Append(cleanupErrs, err)
		}
	}

	if cleanupErrs != nil {
		s.loggerProvider(ctx).Warningf("cleanup for customer %s: %s", customerID, cleanupErrs)
	}

	return s.customersDAL.DeleteCustomer(ctx, customerID)
}

// UploadAvatar stores the picture and records its object name.
func (s *CustomerService) UploadAvatar(ctx context.Context, customerID, contentType string, body io.Reader) error {
	if _, err := s.GetProfile(ctx, customerID); err != nil {
		return err
	}

	object, err := s.avatars.Upload(ctx, customerID, contentType, body)
	if err != nil {
		return err
	}

	return s.customersDAL.UpdateCustomer(ctx, customerID, []firestore.Update{
		{Path: "avatarObject", Value: object},
		{Path: "timeModified", Value: time.Now().UTC()},
	})
}

// AvatarURL returns a short-lived download link for the customer's picture.
func (s *CustomerService) AvatarURL(ctx context.Context, customerID string) (string, error) {
	customer, err := s.GetProfile(ctx, customerID)
	if err != nil {
		return "", err
	}

	if customer.AvatarObject == "" {
		return "", ErrNoAvatar
	}

	return s.avatars.SignedURL(ctx, customer.AvatarObject)
}
