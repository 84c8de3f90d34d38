//go:generate mockery --output=./mocks --all
package iface

import (
	"context"
	"io"
)

// Avatars stores and serves customer profile pictures.
type Avatars interface {
	// Upload stores the picture and returns the object name to persist on
	// the customer record. Re-uploading overwrites the previous picture.
	Upload(ctx context.Context, customerID, contentType string, body io.Reader) (string, error)

	// SignedURL returns a short-lived download link for the stored object.
	SignedURL(ctx context.Context, object string) (string, error)

	// Delete removes the stored object.
	Delete(ctx context.Context, object string) error
}
